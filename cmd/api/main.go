package main

import (
	"log"

	"board/internal/handler"
	"board/internal/model"
	"board/internal/pkg"
	"board/internal/repository/mysql"
	"board/internal/router"
	"board/internal/service"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()
	cfg := pkg.LoadConfig()

	if err := mysql.InitDB(cfg.DSN); err != nil {
		log.Fatalf("connect mysql: %v", err)
	}
	defer mysql.Close()

	if err := mysql.DB.AutoMigrate(&model.Post{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	repo := mysql.NewPostRepository(mysql.DB)
	svc := service.NewPostService(repo, pkg.NewBcryptHasher())
	post := handler.NewPostHandler(svc)

	r := router.InitRouter(post, cfg)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
