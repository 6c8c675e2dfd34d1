package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"homehealhub/internal/logger"
	"homehealhub/internal/models"
	"homehealhub/internal/services"
	helpers "homehealhub/internal/utils/helpres"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PublishHandler struct {
	svc services.PublishService
}

func NewPublishHandler(svc services.PublishService) *PublishHandler {
	return &PublishHandler{svc: svc}
}

// Index godoc
// @Summary Индекс статей блога (ресурс ридера)
// @Description Плоский JSON-массив без конверта — ровно то, что парсит ридер
// @Tags publish
// @Produce json
// @Success 200 {array} models.ArticleSummary
// @Router /blogs/blogs.json [get]
func (h *PublishHandler) Index(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	list, err := h.svc.Index(r.Context())
	if err != nil {
		log.Error("Издатель: ошибка отдачи индекса", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// Content godoc
// @Summary Тело статьи в Markdown (ресурс ридера)
// @Tags publish
// @Produce plain
// @Param id path int true "ID статьи"
// @Success 200 {string} string "text/markdown"
// @Failure 404 {string} string "Не найдено"
// @Router /blogs/{id}.md [get]
func (h *PublishHandler) Content(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	log := logger.WithCtx(r.Context())

	content, err := h.svc.Content(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Warn("Издатель: статья не найдена", zap.Int("article_id", id))
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		log.Error("Издатель: ошибка отдачи контента", zap.Int("article_id", id), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	_, _ = w.Write([]byte(content))
}

// Create godoc
// @Summary Создать статью (только admin)
// @Description JSON-тело или цельный Markdown-файл с фронтматтером (Content-Type: text/markdown)
// @Tags admin-blog
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.CreateBlogArticleRequest true "Данные статьи"
// @Success 201 {object} map[string]int
// @Failure 400 {string} string "Ошибка запроса"
// @Router /api/admin/blogs [post]
func (h *PublishHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	log.Info("Запрос на создание статьи блога")

	var (
		id  int
		err error
	)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "text/markdown") {
		raw, readErr := io.ReadAll(r.Body)
		if readErr != nil {
			log.Warn("Невалидное тело при создании статьи", zap.Error(readErr))
			helpers.Error(w, http.StatusBadRequest, "Невалидное тело запроса")
			return
		}
		id, err = h.svc.CreateFromMarkdown(r.Context(), raw)
	} else {
		var req models.CreateBlogArticleRequest
		if decErr := json.NewDecoder(r.Body).Decode(&req); decErr != nil {
			log.Warn("Невалидный JSON при создании статьи", zap.Error(decErr))
			helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
			return
		}
		id, err = h.svc.Create(r.Context(), req)
	}

	if err != nil {
		log.Error("Ошибка создания статьи блога", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	log.Info("Статья блога создана", zap.Int("article_id", id))
	helpers.JSON(w, http.StatusCreated, map[string]int{"id": id})
}

// Update godoc
// @Summary Обновить статью (только admin)
// @Tags admin-blog
// @Security ApiKeyAuth
// @Accept json
// @Param id path int true "ID статьи"
// @Param input body models.CreateBlogArticleRequest true "Новое содержимое"
// @Success 200 {string} string "Обновлено"
// @Router /api/admin/blogs/{id} [patch]
func (h *PublishHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	log := logger.WithCtx(r.Context())
	log.Info("Запрос на обновление статьи блога", zap.Int("article_id", id))

	var req models.CreateBlogArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный JSON при обновлении статьи", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	if err := h.svc.Update(r.Context(), id, req); err != nil {
		log.Error("Ошибка обновления статьи блога", zap.Int("article_id", id), zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	log.Info("Статья блога обновлена", zap.Int("article_id", id))
	helpers.JSON(w, http.StatusOK, "Обновлено")
}

// Delete godoc
// @Summary Удалить статью (только admin)
// @Tags admin-blog
// @Security ApiKeyAuth
// @Param id path int true "ID статьи"
// @Success 200 {string} string "Удалено"
// @Router /api/admin/blogs/{id} [delete]
func (h *PublishHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	log := logger.WithCtx(r.Context())
	log.Info("Запрос на удаление статьи блога", zap.Int("article_id", id))

	if err := h.svc.Delete(r.Context(), id); err != nil {
		log.Error("Ошибка удаления статьи блога", zap.Int("article_id", id), zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка удаления")
		return
	}

	log.Info("Статья блога удалена", zap.Int("article_id", id))
	helpers.JSON(w, http.StatusOK, "Удалено")
}

// Preview godoc
// @Summary Предпросмотр статьи (только admin)
// @Description Конвертирует Markdown и возвращает очищенный HTML без сохранения
// @Tags admin-blog
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body map[string]string true "Markdown статьи"
// @Success 200 {object} map[string]string
// @Failure 400 {string} string "Ошибка запроса"
// @Router /api/admin/blogs/preview [post]
func (h *PublishHandler) Preview(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	type reqT struct {
		Content string `json:"content"`
	}
	var req reqT
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный JSON при предпросмотре", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	html := h.svc.PreviewHTML(req.Content)

	log.Info("Предпросмотр статьи готов")
	helpers.JSON(w, http.StatusOK, map[string]string{"contentHtml": html})
}
