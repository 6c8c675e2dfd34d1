package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"homehealhub/internal/config"
	"homehealhub/internal/models"
)

// Мок-загрузчики (заглушки)
type mockIndexLoader struct {
	list  []models.ArticleSummary
	calls int
}

func (m *mockIndexLoader) LoadIndex(_ context.Context) []models.ArticleSummary {
	m.calls++
	return m.list
}

type mockContentLoader struct {
	calls  int
	lastID int
	onLoad func(models.ArticleSummary)
}

func (m *mockContentLoader) LoadContent(_ context.Context, summary models.ArticleSummary) models.Article {
	m.calls++
	m.lastID = summary.ID
	if m.onLoad != nil {
		m.onLoad(summary)
	}
	return models.Article{ArticleSummary: summary, Content: "# loaded"}
}

func testIndex() []models.ArticleSummary {
	return []models.ArticleSummary{
		{ID: 1, Title: "Oxygen Setup", Category: "Equipment"},
		{ID: 2, Title: "Family Tips", Category: "Training"},
	}
}

func TestViewer_MountSettlesExactlyOnce(t *testing.T) {
	index := &mockIndexLoader{list: testIndex()}
	v := NewViewer(index, &mockContentLoader{})

	if !v.State().IsIndexLoading {
		t.Fatal("до Mount ожидался IsIndexLoading=true")
	}

	v.Mount(context.Background())
	if v.State().IsIndexLoading {
		t.Fatal("после Mount ожидался IsIndexLoading=false")
	}
	if len(v.Summaries()) != 2 {
		t.Fatalf("рабочий набор не загружен: %d", len(v.Summaries()))
	}

	// повторный Mount — no-op
	v.Mount(context.Background())
	if index.calls != 1 {
		t.Fatalf("индекс должен грузиться один раз, загружен %d", index.calls)
	}
}

func TestViewer_OpenKnownID(t *testing.T) {
	content := &mockContentLoader{}
	v := NewViewer(&mockIndexLoader{list: testIndex()}, content)
	v.Mount(context.Background())

	v.Open(context.Background(), 2)

	st := v.State()
	if st.OpenArticle == nil || st.OpenArticle.ID != 2 {
		t.Fatalf("статья не открыта: %+v", st.OpenArticle)
	}
	if st.OpenArticle.Content != "# loaded" {
		t.Fatalf("контент не перенесён: %q", st.OpenArticle.Content)
	}
	if st.LoadingArticleID != nil || st.IsContentLoading {
		t.Fatal("флаги загрузки должны быть сброшены после открытия")
	}
	if content.calls != 1 || content.lastID != 2 {
		t.Fatalf("загрузчик контента вызван неверно: calls=%d id=%d", content.calls, content.lastID)
	}
}

func TestViewer_LoadingFlagsDuringFetch(t *testing.T) {
	content := &mockContentLoader{}
	v := NewViewer(&mockIndexLoader{list: testIndex()}, content)
	content.onLoad = func(summary models.ArticleSummary) {
		st := v.State()
		if !st.IsContentLoading {
			t.Error("во время загрузки ожидался IsContentLoading=true")
		}
		if st.LoadingArticleID == nil || *st.LoadingArticleID != summary.ID {
			t.Errorf("LoadingArticleID должен указывать на загружаемую статью: %v", st.LoadingArticleID)
		}
	}
	v.Mount(context.Background())

	v.Open(context.Background(), 1)
}

func TestViewer_OpenUnknownIDIsNoop(t *testing.T) {
	content := &mockContentLoader{}
	v := NewViewer(&mockIndexLoader{list: testIndex()}, content)
	v.Mount(context.Background())

	before := v.State()
	v.Open(context.Background(), 99)
	after := v.State()

	if content.calls != 0 {
		t.Fatal("для неизвестного id не должно быть сетевого вызова")
	}
	if after.OpenArticle != nil || after.IsContentLoading || after.LoadingArticleID != nil {
		t.Fatalf("состояние не должно меняться: до %+v, после %+v", before, after)
	}
}

func TestViewer_OpenReplacesWithoutClose(t *testing.T) {
	v := NewViewer(&mockIndexLoader{list: testIndex()}, &mockContentLoader{})
	v.Mount(context.Background())

	v.Open(context.Background(), 1)
	v.Open(context.Background(), 2)

	st := v.State()
	if st.OpenArticle == nil || st.OpenArticle.ID != 2 {
		t.Fatalf("открытие поверх открытой должно замещать: %+v", st.OpenArticle)
	}
}

func TestViewer_Close(t *testing.T) {
	v := NewViewer(&mockIndexLoader{list: testIndex()}, &mockContentLoader{})
	v.Mount(context.Background())
	v.Open(context.Background(), 1)

	v.Close()

	if v.State().OpenArticle != nil {
		t.Fatal("после Close статья должна быть закрыта")
	}
}

// Сбой сети у настоящего загрузчика: вьюер всё равно приходит в Open,
// контент — фиксированная заглушка.
func TestViewer_OpenWithFailingContentService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	content := NewContentService(&config.Config{BlogSourceURL: srv.URL})
	v := NewViewer(&mockIndexLoader{list: testIndex()}, content)
	v.Mount(context.Background())

	v.Open(context.Background(), 1)

	st := v.State()
	if st.OpenArticle == nil {
		t.Fatal("сбой загрузки не должен оставлять вьюер без статьи")
	}
	if st.OpenArticle.Content != ErrorPlaceholder {
		t.Fatalf("ожидалась заглушка, получено %q", st.OpenArticle.Content)
	}
	if st.IsContentLoading || st.LoadingArticleID != nil {
		t.Fatal("флаги загрузки должны сбрасываться и на пути ошибки")
	}
}
