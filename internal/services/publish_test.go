package services

import (
	"context"
	"strings"
	"testing"

	"homehealhub/internal/config"
	"homehealhub/internal/models"
)

// Мок-репозиторий (заглушка)
type mockBlogRepo struct {
	nextID  int
	created *models.Article
	updated *models.Article
	content map[int]string
}

func newMockBlogRepo() *mockBlogRepo {
	return &mockBlogRepo{nextID: 1, content: map[int]string{}}
}

func (m *mockBlogRepo) ListSummaries(_ context.Context) ([]models.ArticleSummary, error) {
	return []models.ArticleSummary{}, nil
}

func (m *mockBlogRepo) GetContent(_ context.Context, id int) (string, error) {
	return m.content[id], nil
}

func (m *mockBlogRepo) Create(_ context.Context, a *models.Article) (int, error) {
	m.created = a
	id := m.nextID
	m.nextID++
	return id, nil
}

func (m *mockBlogRepo) Update(_ context.Context, id int, a *models.Article) error {
	m.updated = a
	return nil
}

func (m *mockBlogRepo) Delete(_ context.Context, id int) error { return nil }

func (m *mockBlogRepo) Exists(_ context.Context, id int) (bool, error) {
	_, ok := m.content[id]
	return ok, nil
}

func testConfig() *config.Config {
	return &config.Config{
		BlogCategories: []string{"All", "Equipment", "Training", "Monitoring", "General"},
	}
}

func validRequest() models.CreateBlogArticleRequest {
	return models.CreateBlogArticleRequest{
		Title:       "Setting Up Home Oxygen Equipment",
		Author:      "Dr. Sarah Mitchell",
		PublishDate: "2025-03-14",
		Category:    "Equipment",
		Excerpt:     "A step-by-step walkthrough",
		ReadTime:    "8 min read",
		Tags:        []string{"Oxygen", "safety", "oxygen"},
		Content:     "# Setting Up\n\nStart with the concentrator and check the tubing.",
	}
}

func TestPublishCreate_Valid(t *testing.T) {
	repo := newMockBlogRepo()
	svc := NewPublishService(repo, testConfig())

	id, err := svc.Create(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("ошибка создания: %v", err)
	}
	if id != 1 || repo.created == nil {
		t.Fatal("статья не сохранена")
	}
	// теги нормализуются: нижний регистр, без дублей
	if len(repo.created.Tags) != 2 || repo.created.Tags[0] != "oxygen" || repo.created.Tags[1] != "safety" {
		t.Fatalf("теги не нормализованы: %v", repo.created.Tags)
	}
}

func TestPublishCreate_ValidationErrors(t *testing.T) {
	svc := NewPublishService(newMockBlogRepo(), testConfig())

	cases := []struct {
		name   string
		mutate func(*models.CreateBlogArticleRequest)
	}{
		{"короткий заголовок", func(r *models.CreateBlogArticleRequest) { r.Title = "ab" }},
		{"пустой контент", func(r *models.CreateBlogArticleRequest) { r.Content = "  " }},
		{"слишком много тегов", func(r *models.CreateBlogArticleRequest) {
			r.Tags = []string{"a", "b", "c", "d", "e", "f"}
		}},
		{"неизвестная категория", func(r *models.CreateBlogArticleRequest) { r.Category = "Gardening" }},
		{"категория All", func(r *models.CreateBlogArticleRequest) { r.Category = "All" }},
	}

	for _, c := range cases {
		req := validRequest()
		c.mutate(&req)
		if _, err := svc.Create(context.Background(), req); err == nil {
			t.Errorf("%s: ожидалась ошибка валидации", c.name)
		}
	}
}

func TestPublishCreateFromMarkdown(t *testing.T) {
	repo := newMockBlogRepo()
	svc := NewPublishService(repo, testConfig())

	raw := `---
title: Home Oxygen Basics
author: Dr. Sarah Mitchell
date: "2025-03-14"
category: Equipment
excerpt: Concentrators, tubing and safety checks
readTime: 8 min read
tags:
  - oxygen
  - safety
---
# Home Oxygen Basics

Start with the concentrator and check the tubing.`

	id, err := svc.CreateFromMarkdown(context.Background(), []byte(raw))
	if err != nil {
		t.Fatalf("ошибка импорта: %v", err)
	}
	if id != 1 {
		t.Fatalf("неожиданный id: %d", id)
	}
	if repo.created.Title != "Home Oxygen Basics" || repo.created.Category != "Equipment" {
		t.Fatalf("фронтматтер распарсен неверно: %+v", repo.created.ArticleSummary)
	}
	if !strings.HasPrefix(repo.created.Content, "# Home Oxygen Basics") {
		t.Fatalf("тело должно идти без фронтматтера: %q", repo.created.Content)
	}
}

func TestPublishPreviewHTML(t *testing.T) {
	svc := NewPublishService(newMockBlogRepo(), testConfig())

	html := svc.PreviewHTML("# Care Basics\n\n<script>alert(1)</script>**bold**")

	if !strings.Contains(html, "<h1") || !strings.Contains(html, "Care Basics") {
		t.Fatalf("заголовок потерян при предпросмотре: %q", html)
	}
	if strings.Contains(html, "<script") {
		t.Fatalf("скрипт должен вычищаться: %q", html)
	}
	if !strings.Contains(html, "<strong") {
		t.Fatalf("жирный должен пережить санитайзер: %q", html)
	}
}
