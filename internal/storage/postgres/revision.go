package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"course_revisions/internal/domain"
)

type RevisionStore struct {
	db *sqlx.DB
}

func NewRevisionStore(db *sqlx.DB) *RevisionStore {
	return &RevisionStore{db: db}
}

func (s *RevisionStore) Exists(ctx context.Context, wikiID, revID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM revisions WHERE wiki_id = $1 AND mw_rev_id = $2)`

	var exists bool
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &exists, query, wikiID, revID)
	return exists, err
}

func (s *RevisionStore) Create(ctx context.Context, revision *domain.Revision) (int64, error) {
	query := `
		INSERT INTO revisions (wiki_id, mw_rev_id, mw_page_id, article_id, user_id, characters, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		revision.WikiID,
		revision.RevID,
		revision.PageID,
		revision.ArticleID,
		revision.UserID,
		revision.Characters,
		revision.Date,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
