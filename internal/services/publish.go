package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"homehealhub/internal/config"
	"homehealhub/internal/logger"
	"homehealhub/internal/markdown"
	"homehealhub/internal/models"
	"homehealhub/internal/repository"

	"github.com/adrg/frontmatter"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// PublishService — издательская сторона: хранит статьи и отдаёт ридеру
// blogs.json и {id}.md в тех самых фиксированных местах.
type PublishService interface {
	Index(ctx context.Context) ([]models.ArticleSummary, error)
	Content(ctx context.Context, id int) (string, error)
	Create(ctx context.Context, req models.CreateBlogArticleRequest) (int, error)
	CreateFromMarkdown(ctx context.Context, raw []byte) (int, error)
	Update(ctx context.Context, id int, req models.CreateBlogArticleRequest) error
	Delete(ctx context.Context, id int) error
	PreviewHTML(md string) string
}

type publishService struct {
	repo       repository.BlogArticleRepo
	policy     *bluemonday.Policy
	categories map[string]struct{}
}

func NewPublishService(repo repository.BlogArticleRepo, cfg *config.Config) PublishService {
	p := bluemonday.UGCPolicy()
	p.AllowElements("img")
	p.AllowAttrs("src", "alt", "style").OnElements("img")
	p.AllowAttrs("style").Globally()
	p.AllowAttrs("target", "rel").OnElements("a")

	cats := make(map[string]struct{}, len(cfg.BlogCategories))
	for _, c := range cfg.BlogCategories {
		if c == CategoryAll {
			continue // "All" — значение фильтра, не категория статьи
		}
		cats[c] = struct{}{}
	}

	return &publishService{repo: repo, policy: p, categories: cats}
}

// PreviewHTML конвертирует Markdown и чистит результат: предпросмотр
// приходит по сети от админа, а не из хранилища.
func (s *publishService) PreviewHTML(md string) string {
	log := logger.WithCtx(context.Background())
	clean := s.policy.Sanitize(markdown.Convert(md))
	// безопасно логируем только длины
	log.Debug("Предпросмотр статьи",
		zap.Int("raw_len", len(md)),
		zap.Int("clean_len", len(clean)),
	)
	return clean
}

func (s *publishService) Index(ctx context.Context) ([]models.ArticleSummary, error) {
	log := logger.WithCtx(ctx)

	list, err := s.repo.ListSummaries(ctx)
	if err != nil {
		log.Error("Издатель: ошибка получения индекса (repo)", zap.Error(err))
		return nil, err
	}

	log.Debug("Издатель: индекс получен", zap.Int("count", len(list)))
	return list, nil
}

func (s *publishService) Content(ctx context.Context, id int) (string, error) {
	log := logger.WithCtx(ctx)

	content, err := s.repo.GetContent(ctx, id)
	if err != nil {
		log.Warn("Издатель: контент не найден (repo)", zap.Int("article_id", id), zap.Error(err))
		return "", err
	}

	log.Debug("Издатель: контент получен", zap.Int("article_id", id), zap.Int("size", len(content)))
	return content, nil
}

func (s *publishService) Create(ctx context.Context, req models.CreateBlogArticleRequest) (int, error) {
	log := logger.WithCtx(ctx)
	log.Info("Издатель: создание статьи",
		zap.String("title", strings.TrimSpace(req.Title)),
		zap.String("category", req.Category),
		zap.Int("tags_count", len(req.Tags)),
	)

	article, err := s.validate(req)
	if err != nil {
		log.Warn("Издатель: валидация не пройдена", zap.Error(err))
		return 0, err
	}

	id, err := s.repo.Create(ctx, article)
	if err != nil {
		log.Error("Издатель: ошибка создания статьи (repo)", zap.Error(err))
		return 0, err
	}

	log.Info("Издатель: статья создана", zap.Int("article_id", id))
	return id, nil
}

// CreateFromMarkdown принимает статью одним файлом: YAML-фронтматтер
// с метаданными, ниже — тело в Markdown.
func (s *publishService) CreateFromMarkdown(ctx context.Context, raw []byte) (int, error) {
	log := logger.WithCtx(ctx)

	var meta struct {
		Title    string   `yaml:"title"`
		Author   string   `yaml:"author"`
		Date     string   `yaml:"date"`
		Category string   `yaml:"category"`
		Excerpt  string   `yaml:"excerpt"`
		ReadTime string   `yaml:"readTime"`
		Tags     []string `yaml:"tags"`
	}

	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		log.Warn("Издатель: невалидный фронтматтер", zap.Error(err))
		return 0, errors.New("невалидный фронтматтер: " + err.Error())
	}

	return s.Create(ctx, models.CreateBlogArticleRequest{
		Title:       meta.Title,
		Author:      meta.Author,
		PublishDate: meta.Date,
		Category:    meta.Category,
		Excerpt:     meta.Excerpt,
		ReadTime:    meta.ReadTime,
		Tags:        meta.Tags,
		Content:     string(body),
	})
}

func (s *publishService) Update(ctx context.Context, id int, req models.CreateBlogArticleRequest) error {
	log := logger.WithCtx(ctx)
	log.Info("Издатель: обновление статьи", zap.Int("article_id", id))

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		log.Error("Издатель: ошибка проверки существования (repo)", zap.Int("article_id", id), zap.Error(err))
		return err
	}
	if !exists {
		log.Warn("Издатель: статья для обновления не найдена", zap.Int("article_id", id))
		return errors.New("не найдено")
	}

	article, err := s.validate(req)
	if err != nil {
		log.Warn("Издатель: валидация не пройдена", zap.Error(err))
		return err
	}

	if err := s.repo.Update(ctx, id, article); err != nil {
		log.Error("Издатель: ошибка обновления статьи (repo)", zap.Int("article_id", id), zap.Error(err))
		return err
	}

	log.Info("Издатель: статья обновлена", zap.Int("article_id", id))
	return nil
}

func (s *publishService) Delete(ctx context.Context, id int) error {
	log := logger.WithCtx(ctx)
	log.Info("Издатель: удаление статьи", zap.Int("article_id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("Издатель: ошибка удаления статьи (repo)", zap.Int("article_id", id), zap.Error(err))
		return err
	}

	log.Info("Издатель: статья удалена", zap.Int("article_id", id))
	return nil
}

func (s *publishService) validate(req models.CreateBlogArticleRequest) (*models.Article, error) {
	title := strings.TrimSpace(req.Title)
	if l := utf8.RuneCountInString(title); l < 3 || l > 255 {
		return nil, errors.New("длина заголовка должна быть от 3 до 255 символов")
	}
	if body := strings.TrimSpace(req.Content); body == "" || utf8.RuneCountInString(body) < 30 {
		return nil, errors.New("контент слишком короткий")
	}
	if len(req.Tags) > 5 {
		return nil, errors.New("максимум 5 тегов")
	}
	if _, ok := s.categories[req.Category]; !ok {
		return nil, errors.New("неизвестная категория: " + req.Category)
	}

	return &models.Article{
		ArticleSummary: models.ArticleSummary{
			Title:       title,
			Author:      strings.TrimSpace(req.Author),
			PublishDate: strings.TrimSpace(req.PublishDate),
			Category:    req.Category,
			Excerpt:     strings.TrimSpace(req.Excerpt),
			ReadTime:    strings.TrimSpace(req.ReadTime),
			Tags:        normalizeTags(req.Tags),
		},
		Content: req.Content,
	}, nil
}

func normalizeTags(in []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(in))
	for _, t := range in {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
