// Package usecase はusersフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"log/slog"

	"user_backend/internal/feature/users/domain/entity"
	"user_backend/internal/shared/apperror"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// FindAll はすべてのユーザーをストア順で取得します。
	FindAll(ctx context.Context) ([]entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByUsername は指定されたユーザー名に一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// ExistsByUsername は指定されたユーザー名の行が存在するかを返します。
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByID は指定されたIDの行が存在するかを返します。
	ExistsByID(ctx context.Context, id uint) (bool, error)

	// Save はユーザーを永続化します。IDが未設定なら挿入、設定済みなら更新です。
	// ストアが割り当てたフィールドは呼び出し後にエンティティへ反映されます。
	Save(ctx context.Context, user *entity.User) error

	// DeleteByID は指定されたIDの行を削除します。行が存在しない場合は何もしません。
	DeleteByID(ctx context.Context, id uint) error
}

// UserUsecase はユーザーリソースのビジネスロジックを実装します。
// 存在チェックとユーザー名の一意性をここで強制し、違反は
// apperror.InvalidArgumentErrorとして上位層へ伝播します。
type UserUsecase struct {
	users UserRepository
}

// NewUserUsecase はUserUsecaseの新しいインスタンスを生成します。
func NewUserUsecase(users UserRepository) *UserUsecase {
	return &UserUsecase{users: users}
}

// GetAllUsers はすべてのユーザーをストア順で返します。
func (u *UserUsecase) GetAllUsers(ctx context.Context) ([]entity.User, error) {
	return u.users.FindAll(ctx)
}

// GetUserByID はIDでユーザーを取得します。
// ユーザーが存在しない場合、InvalidArgumentErrorを返します。
func (u *UserUsecase) GetUserByID(ctx context.Context, id uint) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperror.NewInvalidArgument("user not found. id: %d", id)
		}
		return nil, err
	}
	return user, nil
}

// GetUserByUsername はユーザー名でユーザーを取得します。
// ユーザーが存在しない場合、InvalidArgumentErrorを返します。
func (u *UserUsecase) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	user, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperror.NewInvalidArgument("user not found. username: %s", username)
		}
		return nil, err
	}
	return user, nil
}

// CreateUser は新規ユーザーを作成します。
// ユーザー名が既に使われている場合、InvalidArgumentErrorを返します。
// ID・作成/更新タイムスタンプはストアが割り当て、返却エンティティに反映されます。
func (u *UserUsecase) CreateUser(ctx context.Context, username, email, phone string) (*entity.User, error) {
	exists, err := u.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.NewInvalidArgument("username already exists: %s", username)
	}

	user := &entity.User{
		Username: username,
		Email:    email,
		Phone:    phone,
	}
	if err := u.users.Save(ctx, user); err != nil {
		// 存在チェックと挿入の間のレースはユニークインデックスが捕捉する
		if errors.Is(err, ErrUsernameTaken) {
			return nil, apperror.NewInvalidArgument("username already exists: %s", username)
		}
		return nil, err
	}

	slog.Info("user created", "id", user.ID, "username", user.Username)
	return user, nil
}

// UpdateUser は既存ユーザーのメールアドレスと電話番号を更新します。
// ユーザー名とIDは変更しません。更新は明示的なSaveで書き戻され、
// ストアがUpdatedAtを更新します。
func (u *UserUsecase) UpdateUser(ctx context.Context, id uint, email, phone string) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperror.NewInvalidArgument("user not found. id: %d", id)
		}
		return nil, err
	}

	user.UpdateInfo(email, phone)
	if err := u.users.Save(ctx, user); err != nil {
		return nil, err
	}

	slog.Info("user updated", "id", user.ID)
	return user, nil
}

// DeleteUser は指定されたIDのユーザーを削除します（ハードデリート）。
// ユーザーが存在しない場合、InvalidArgumentErrorを返します。
func (u *UserUsecase) DeleteUser(ctx context.Context, id uint) error {
	exists, err := u.users.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.NewInvalidArgument("user not found. id: %d", id)
	}

	if err := u.users.DeleteByID(ctx, id); err != nil {
		return err
	}

	slog.Info("user deleted", "id", id)
	return nil
}
