package main

import (
	"context"
	"database/sql"
	"log"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/binay-tripathy/CareerTree/config"
	connRepository "github.com/binay-tripathy/CareerTree/internal/connection/repository"
	connUsecase "github.com/binay-tripathy/CareerTree/internal/connection/usecase"
	msgRepository "github.com/binay-tripathy/CareerTree/internal/message/repository"
	msgUsecase "github.com/binay-tripathy/CareerTree/internal/message/usecase"
	postRepository "github.com/binay-tripathy/CareerTree/internal/post/repository"
	postUsecase "github.com/binay-tripathy/CareerTree/internal/post/usecase"
	"github.com/binay-tripathy/CareerTree/internal/server"
	userRepository "github.com/binay-tripathy/CareerTree/internal/user/repository"
	userUsecase "github.com/binay-tripathy/CareerTree/internal/user/usecase"
	"github.com/binay-tripathy/CareerTree/pkg/logger"
)

func main() {
	v, err := config.LoadConfig("config")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	appLogger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(cfg.Bun.DSN))
	sqlDB := sql.OpenDB(connector)
	db := bun.NewDB(sqlDB, pgdialect.New())
	defer db.Close()

	if err := db.PingContext(context.Background()); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	userRepo := userRepository.NewUserRepository(db, *appLogger)
	connRepo := connRepository.NewConnectionRepository(db, *appLogger)
	msgRepo := msgRepository.NewMessageRepository(db, *appLogger)
	postRepo := postRepository.NewPostRepository(db, *appLogger)

	users := userUsecase.NewUserUsecase(userRepo, *appLogger, *cfg)
	connections := connUsecase.NewConnectionUsecase(connRepo, userRepo, *appLogger)
	messages := msgUsecase.NewMessageUsecase(msgRepo, connections, *appLogger)
	posts := postUsecase.NewPostUsecase(postRepo, userRepo, *appLogger)

	srv := server.New(*cfg, db, appLogger, users, connections, messages, posts)
	if err := srv.Run(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
