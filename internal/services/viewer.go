package services

import (
	"context"

	"homehealhub/internal/logger"
	"homehealhub/internal/models"

	"go.uber.org/zap"
)

// Viewer — машина состояний читалки: Closed → IndexLoading → Idle ⇄
// ContentLoading(id) → Open. Каждый Viewer живёт один «визит»: индекс
// грузится один раз, между монтированиями ничего не кэшируется.
//
// Все методы синхронны и зовутся с одной горутины — как колбэки на одной
// очереди событий у первоисточника. Гонки «запоздавший ответ перетирает
// новое состояние» здесь не возникает конструктивно; защиты от
// конкурентных вызовов нет.
type Viewer struct {
	index   IndexLoader
	content ContentLoader

	summaries []models.ArticleSummary
	state     models.ViewerState
}

func NewViewer(index IndexLoader, content ContentLoader) *Viewer {
	return &Viewer{
		index:   index,
		content: content,
		state:   models.ViewerState{IsIndexLoading: true},
	}
}

// Mount загружает индекс. IsIndexLoading переходит в false ровно один раз;
// повторный Mount — no-op.
func (v *Viewer) Mount(ctx context.Context) {
	if !v.state.IsIndexLoading {
		return
	}
	v.summaries = v.index.LoadIndex(ctx)
	v.state.IsIndexLoading = false

	logger.WithCtx(ctx).Debug("Вьюер: смонтирован", zap.Int("count", len(v.summaries)))
}

// Summaries возвращает загруженный индекс (рабочий набор списка).
func (v *Viewer) Summaries() []models.ArticleSummary {
	return v.summaries
}

// Open открывает статью по id. Неизвестный id — молчаливый no-op: id
// приходят только из загруженного индекса, но загрузчик обязан защищаться
// независимо от дисциплины вызова. Открытие поверх уже открытой статьи
// замещает её без предварительного Close.
func (v *Viewer) Open(ctx context.Context, id int) {
	summary, ok := v.lookup(id)
	if !ok {
		logger.WithCtx(ctx).Warn("Вьюер: открытие неизвестной статьи", zap.Int("article_id", id))
		return
	}

	v.state.LoadingArticleID = &id
	v.state.IsContentLoading = true
	defer func() {
		v.state.LoadingArticleID = nil
		v.state.IsContentLoading = false
	}()

	// успех и заглушка об ошибке приходят одним и тем же путём:
	// отдельного терминального состояния «failed» нет
	article := v.content.LoadContent(ctx, summary)
	v.state.OpenArticle = &article
}

// Close закрывает открытую статью.
func (v *Viewer) Close() {
	v.state.OpenArticle = nil
}

// State — снимок текущего состояния.
func (v *Viewer) State() models.ViewerState {
	return v.state
}

func (v *Viewer) lookup(id int) (models.ArticleSummary, bool) {
	for _, s := range v.summaries {
		if s.ID == id {
			return s, true
		}
	}
	return models.ArticleSummary{}, false
}
