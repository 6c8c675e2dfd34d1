package handlers

import (
	"net/http"
	"strconv"

	"homehealhub/internal/config"
	"homehealhub/internal/logger"
	"homehealhub/internal/markdown"
	"homehealhub/internal/models"
	"homehealhub/internal/services"
	helpers "homehealhub/internal/utils/helpres"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// BlogHandler — читательская сторона. На каждый запрос собирается свежий
// вьюер: индекс грузится заново, между запросами ничего не кэшируется.
type BlogHandler struct {
	index      services.IndexLoader
	content    services.ContentLoader
	categories []string
}

func NewBlogHandler(index services.IndexLoader, content services.ContentLoader, cfg *config.Config) *BlogHandler {
	return &BlogHandler{
		index:      index,
		content:    content,
		categories: cfg.BlogCategories,
	}
}

type articleResponse struct {
	models.Article
	ContentHTML string `json:"contentHtml"`
}

// ListArticles godoc
// @Summary Список статей блога с поиском и фильтром по категории
// @Tags blog
// @Produce json
// @Param search query string false "Подстрока для поиска по заголовку и анонсу"
// @Param category query string false "Категория (по умолчанию All)"
// @Success 200 {array} models.ArticleSummary
// @Router /api/blog [get]
func (h *BlogHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	search := r.URL.Query().Get("search")
	category := r.URL.Query().Get("category")
	if category == "" {
		category = services.CategoryAll
	}

	viewer := services.NewViewer(h.index, h.content)
	viewer.Mount(r.Context())

	visible := services.FilterSummaries(viewer.Summaries(), search, category)

	log.Info("Блог: список статей",
		zap.Int("total", len(viewer.Summaries())),
		zap.Int("visible", len(visible)),
		zap.String("category", category),
		zap.Int("search_len", len(search)),
	)
	helpers.JSON(w, http.StatusOK, visible)
}

// Categories godoc
// @Summary Признанные категории статей
// @Tags blog
// @Produce json
// @Success 200 {array} string
// @Router /api/blog/categories [get]
func (h *BlogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	helpers.JSON(w, http.StatusOK, h.categories)
}

// GetArticle godoc
// @Summary Открыть статью: метаданные, Markdown и готовый HTML
// @Tags blog
// @Produce json
// @Param id path int true "ID статьи"
// @Success 200 {object} handlers.articleResponse
// @Failure 404 {string} string "Не найдено"
// @Router /api/blog/{id} [get]
func (h *BlogHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	log := logger.WithCtx(r.Context())

	viewer := services.NewViewer(h.index, h.content)
	viewer.Mount(r.Context())
	viewer.Open(r.Context(), id)

	state := viewer.State()
	if state.OpenArticle == nil {
		// id не из индекса — вьюер промолчал, для API это 404
		log.Warn("Блог: статья не найдена в индексе", zap.Int("article_id", id))
		helpers.Error(w, http.StatusNotFound, "Статья не найдена")
		return
	}

	log.Info("Блог: статья открыта", zap.Int("article_id", id))
	helpers.JSON(w, http.StatusOK, articleResponse{
		Article:     *state.OpenArticle,
		ContentHTML: markdown.Convert(state.OpenArticle.Content),
	})
}
