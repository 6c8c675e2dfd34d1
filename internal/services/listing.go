package services

import (
	"strings"

	"homehealhub/internal/models"
)

// CategoryAll — значение фильтра, пропускающее любую категорию.
const CategoryAll = "All"

// FilterSummaries — чистая выборка видимого подмножества индекса: категория
// "All" или точное совпадение, И пустой поиск или регистронезависимое
// вхождение в заголовок либо анонс. Порядок индекса сохраняется,
// ранжирования нет.
func FilterSummaries(list []models.ArticleSummary, search, category string) []models.ArticleSummary {
	q := strings.ToLower(search)

	out := make([]models.ArticleSummary, 0, len(list))
	for _, s := range list {
		matchesSearch := q == "" ||
			strings.Contains(strings.ToLower(s.Title), q) ||
			strings.Contains(strings.ToLower(s.Excerpt), q)
		matchesCategory := category == CategoryAll || s.Category == category

		if matchesSearch && matchesCategory {
			out = append(out, s)
		}
	}
	return out
}
