package services

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"homehealhub/internal/config"
	"homehealhub/internal/logger"
	"homehealhub/internal/models"

	"go.uber.org/zap"
)

// IndexLoader отдаёт манифест статей. Любой сбой — пустой список:
// потеря индекса деградирует до «ничего не найдено», не до ошибки.
type IndexLoader interface {
	LoadIndex(ctx context.Context) []models.ArticleSummary
}

type IndexService struct {
	baseURL string
	client  *http.Client
}

func NewIndexService(cfg *config.Config) *IndexService {
	return &IndexService{
		baseURL: strings.TrimRight(cfg.BlogSourceURL, "/"),
		// без Timeout: зависший запрос висит до отмены контекста вызывающего
		client: &http.Client{},
	}
}

func (s *IndexService) LoadIndex(ctx context.Context) []models.ArticleSummary {
	log := logger.WithCtx(ctx)
	url := s.baseURL + "/blogs.json"
	log.Debug("Индекс: загрузка", zap.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Error("Индекс: не удалось собрать запрос", zap.Error(err))
		return []models.ArticleSummary{}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		log.Error("Индекс: ошибка запроса", zap.Error(err))
		return []models.ArticleSummary{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error("Индекс: неуспешный статус", zap.Int("status", resp.StatusCode))
		return []models.ArticleSummary{}
	}

	var list []models.ArticleSummary
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		log.Error("Индекс: невалидный JSON", zap.Error(err))
		return []models.ArticleSummary{}
	}
	if list == nil {
		list = []models.ArticleSummary{}
	}

	log.Debug("Индекс: загружен", zap.Int("count", len(list)))
	return list
}
