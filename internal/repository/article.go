package repository

import (
	"context"
	"homehealhub/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BlogArticleRepo interface {
	ListSummaries(ctx context.Context) ([]models.ArticleSummary, error)
	GetContent(ctx context.Context, id int) (string, error)
	Create(ctx context.Context, a *models.Article) (int, error)
	Update(ctx context.Context, id int, a *models.Article) error
	Delete(ctx context.Context, id int) error
	Exists(ctx context.Context, id int) (bool, error)
}

type blogArticleRepo struct {
	db *pgxpool.Pool
}

func NewBlogArticleRepo(db *pgxpool.Pool) BlogArticleRepo {
	return &blogArticleRepo{db: db}
}

func (r *blogArticleRepo) ListSummaries(ctx context.Context) ([]models.ArticleSummary, error) {
	query := `SELECT id, title, author, publish_date, category, excerpt, read_time, tags
	          FROM blog_articles ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]models.ArticleSummary, 0)
	for rows.Next() {
		var s models.ArticleSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.Author, &s.PublishDate, &s.Category, &s.Excerpt, &s.ReadTime, &s.Tags); err != nil {
			return nil, err
		}
		if s.Tags == nil {
			s.Tags = []string{}
		}
		list = append(list, s)
	}

	return list, rows.Err()
}

func (r *blogArticleRepo) GetContent(ctx context.Context, id int) (string, error) {
	var content string
	err := r.db.QueryRow(ctx, `SELECT content FROM blog_articles WHERE id = $1`, id).Scan(&content)
	return content, err
}

func (r *blogArticleRepo) Create(ctx context.Context, a *models.Article) (int, error) {
	query := `INSERT INTO blog_articles (title, author, publish_date, category, excerpt, read_time, tags, content)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	var id int
	err := r.db.QueryRow(ctx, query,
		a.Title, a.Author, a.PublishDate, a.Category, a.Excerpt, a.ReadTime, a.Tags, a.Content,
	).Scan(&id)
	return id, err
}

func (r *blogArticleRepo) Update(ctx context.Context, id int, a *models.Article) error {
	query := `UPDATE blog_articles
	          SET title = $1, author = $2, publish_date = $3, category = $4, excerpt = $5, read_time = $6, tags = $7, content = $8
	          WHERE id = $9`
	_, err := r.db.Exec(ctx, query,
		a.Title, a.Author, a.PublishDate, a.Category, a.Excerpt, a.ReadTime, a.Tags, a.Content, id,
	)
	return err
}

func (r *blogArticleRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM blog_articles WHERE id = $1`, id)
	return err
}

func (r *blogArticleRepo) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM blog_articles WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}
