package models

// ArticleSummary — одна запись индекса blogs.json. Метаданных достаточно
// для карточки в списке, но не для чтения.
type ArticleSummary struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	PublishDate string   `json:"publishDate"`
	Category    string   `json:"category"`
	Excerpt     string   `json:"excerpt"`
	ReadTime    string   `json:"readTime"`
	Tags        []string `json:"tags"`
}

// Article — полная статья: метаданные плюс тело в Markdown.
// Content пуст до загрузки; после неудачной загрузки содержит
// фиксированную заглушку (тоже валидный Markdown).
type Article struct {
	ArticleSummary
	Content string `json:"content,omitempty"`
}

// ViewerState — транзитное состояние вьюера. Одновременно грузится
// не более одной статьи.
type ViewerState struct {
	OpenArticle      *Article
	IsIndexLoading   bool
	LoadingArticleID *int
	IsContentLoading bool
}

// swagger:model CreateBlogArticleRequest
type CreateBlogArticleRequest struct {
	Title       string   `json:"title"       example:"Setting Up Home Oxygen Equipment"`
	Author      string   `json:"author"      example:"Dr. Sarah Mitchell"`
	PublishDate string   `json:"publishDate" example:"2025-03-14"`
	Category    string   `json:"category"    example:"Equipment"`
	Excerpt     string   `json:"excerpt"     example:"A step-by-step walkthrough for families"`
	ReadTime    string   `json:"readTime"    example:"8 min read"`
	Tags        []string `json:"tags"        example:"oxygen,safety,equipment"`
	Content     string   `json:"content"     example:"# Setting Up Home Oxygen\n\nStart with..."`
}
