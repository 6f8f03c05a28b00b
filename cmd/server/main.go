package main

import (
	"log"

	"github.com/joho/godotenv"

	"user_backend/internal/app/router"
	usersadapters "user_backend/internal/feature/users/adapters"
	usershandler "user_backend/internal/feature/users/transport/handler"
	usersusecase "user_backend/internal/feature/users/usecase"
	"user_backend/internal/platform/db"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// db
	gormDB := db.OpenDB()

	// Repository
	userRepo := usersadapters.NewUserMySQL(gormDB)

	// Usecase
	userUC := usersusecase.NewUserUsecase(userRepo)

	// Handler
	userH := usershandler.NewUserHandler(userUC)

	// ルータ生成
	r := router.NewRouter(userH)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
