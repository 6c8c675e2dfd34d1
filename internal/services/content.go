package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"homehealhub/internal/config"
	"homehealhub/internal/logger"
	"homehealhub/internal/models"

	"go.uber.org/zap"
)

// ErrorPlaceholder подставляется вместо тела статьи, когда загрузка не
// удалась. Сам по себе валидный Markdown — вьюеру всегда есть что рендерить.
const ErrorPlaceholder = "## Error Loading Content\n\nSorry, we couldn't load this article content. Please try again later."

// ContentLoader забирает тело одной статьи по уже известным метаданным.
// Никогда не возвращает ошибку: сбой кодируется заглушкой в Content.
type ContentLoader interface {
	LoadContent(ctx context.Context, summary models.ArticleSummary) models.Article
}

type ContentService struct {
	baseURL string
	client  *http.Client
}

func NewContentService(cfg *config.Config) *ContentService {
	return &ContentService{
		baseURL: strings.TrimRight(cfg.BlogSourceURL, "/"),
		// без Timeout, как и у индекса
		client: &http.Client{},
	}
}

func (s *ContentService) LoadContent(ctx context.Context, summary models.ArticleSummary) models.Article {
	log := logger.WithCtx(ctx)
	url := fmt.Sprintf("%s/%d.md", s.baseURL, summary.ID)
	log.Debug("Контент: загрузка", zap.Int("article_id", summary.ID), zap.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Error("Контент: не удалось собрать запрос", zap.Int("article_id", summary.ID), zap.Error(err))
		return models.Article{ArticleSummary: summary, Content: ErrorPlaceholder}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		log.Error("Контент: ошибка запроса", zap.Int("article_id", summary.ID), zap.Error(err))
		return models.Article{ArticleSummary: summary, Content: ErrorPlaceholder}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error("Контент: неуспешный статус",
			zap.Int("article_id", summary.ID),
			zap.Int("status", resp.StatusCode),
		)
		return models.Article{ArticleSummary: summary, Content: ErrorPlaceholder}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Контент: ошибка чтения тела", zap.Int("article_id", summary.ID), zap.Error(err))
		return models.Article{ArticleSummary: summary, Content: ErrorPlaceholder}
	}

	log.Debug("Контент: загружен", zap.Int("article_id", summary.ID), zap.Int("size", len(body)))
	return models.Article{ArticleSummary: summary, Content: string(body)}
}
