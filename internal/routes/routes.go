package routes

import (
	"homehealhub/internal/config"
	"homehealhub/internal/handlers"
	"homehealhub/internal/middleware"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	blogHandler *handlers.BlogHandler,
	publishHandler *handlers.PublishHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging)
	router.Use(middleware.Recoverer)

	// --- Ресурсы ридера (фиксированные адреса) ---
	router.HandleFunc("/blogs/blogs.json", publishHandler.Index).Methods("GET")
	router.HandleFunc("/blogs/{id:[0-9]+}.md", publishHandler.Content).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()

	// --- Публичные маршруты ---
	api.HandleFunc("/login", authHandler.Login).Methods("POST")

	api.HandleFunc("/blog", blogHandler.ListArticles).Methods("GET")
	api.HandleFunc("/blog/categories", blogHandler.Categories).Methods("GET")
	api.HandleFunc("/blog/{id:[0-9]+}", blogHandler.GetArticle).Methods("GET")

	// --- Защищённые JWT ---
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.JWTAuth(cfg.JWTSecret))
	admin.Use(middleware.OnlyRole("admin"))

	admin.HandleFunc("/blogs", publishHandler.Create).Methods("POST")
	admin.HandleFunc("/blogs/preview", publishHandler.Preview).Methods("POST")
	admin.HandleFunc("/blogs/{id:[0-9]+}", publishHandler.Update).Methods("PATCH")
	admin.HandleFunc("/blogs/{id:[0-9]+}", publishHandler.Delete).Methods("DELETE")
}
