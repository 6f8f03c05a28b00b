package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"user_backend/internal/app/middleware"
	userhandler "user_backend/internal/feature/users/transport/handler"
	platformhandler "user_backend/internal/platform/http/handler"
)

// NewRouter はすべてのルートを登録したginエンジンを生成します。
// エラーレンダリングはErrorHandlerミドルウェアに一元化されています。
func NewRouter(userHandler *userhandler.UserHandler) *gin.Engine {
	r := gin.Default()

	r.Use(cors.Default())
	r.Use(middleware.ErrorHandler())

	users := r.Group("/api/users")
	{
		// 導通確認用
		users.GET("/health", platformhandler.Health)

		users.GET("", userHandler.GetAllUsers)
		users.GET("/:id", userHandler.GetUserByID)
		users.GET("/username/:username", userHandler.GetUserByUsername)
		users.POST("", userHandler.CreateUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	return r
}
