package app

import (
	"homehealhub/internal/config"
	"homehealhub/internal/db"
	"homehealhub/internal/handlers"
	"homehealhub/internal/repository"
	"homehealhub/internal/routes"
	"homehealhub/internal/services"

	"github.com/gorilla/mux"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}

	// Репозитории
	blogRepo := repository.NewBlogArticleRepo(conn)

	// Сервисы
	publishSvc := services.NewPublishService(blogRepo, cfg)
	authSvc := services.NewAuthService(cfg)
	indexSvc := services.NewIndexService(cfg)
	contentSvc := services.NewContentService(cfg)

	// Хендлеры
	authHandler := handlers.NewAuthHandler(authSvc)
	blogHandler := handlers.NewBlogHandler(indexSvc, contentSvc, cfg)
	publishHandler := handlers.NewPublishHandler(publishSvc)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, cfg, authHandler, blogHandler, publishHandler)

	return router, nil
}
