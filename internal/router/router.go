package router

import (
	"board/internal/handler"
	"board/internal/middleware"
	"board/internal/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitRouter(post *handler.PostHandler, cfg pkg.Config) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	pkg.RegisterValidations()

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.Recovery(cfg.Debug))
	r.Use(cors.Default())
	r.Use(middleware.ErrorHandler(cfg.Debug))

	postGroup := r.Group("/api/v1/posts")
	{
		postGroup.GET("", post.ListPosts)
		postGroup.GET("/:id", post.GetPost)
		postGroup.POST("", post.CreatePost)
		postGroup.PUT("/:id", post.UpdatePost)
		postGroup.DELETE("/:id", post.DeletePost)
	}

	return r
}
