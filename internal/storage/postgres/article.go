package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"course_revisions/internal/domain"
)

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// FindByWikiAndPageID locks and returns the article, or domain.ErrNotFound.
func (s *ArticleStore) FindByWikiAndPageID(ctx context.Context, wikiID, pageID int64) (*domain.Article, error) {
	query := `
		SELECT id, wiki_id, mw_page_id, title, namespace, title_as_of, created_at, updated_at
		FROM articles
		WHERE wiki_id = $1 AND mw_page_id = $2
		FOR UPDATE`

	var article domain.Article
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &article, query, wikiID, pageID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (s *ArticleStore) Create(ctx context.Context, article *domain.Article) (int64, error) {
	query := `
		INSERT INTO articles (wiki_id, mw_page_id, title, namespace, title_as_of)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		article.WikiID,
		article.PageID,
		article.Title,
		article.Namespace,
		article.TitleAsOf,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *ArticleStore) UpdateTitle(ctx context.Context, article *domain.Article) error {
	query := `
		UPDATE articles
		SET title = $2, namespace = $3, title_as_of = $4, updated_at = NOW()
		WHERE id = $1`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		article.ID,
		article.Title,
		article.Namespace,
		article.TitleAsOf,
	)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
