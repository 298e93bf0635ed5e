package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type ArticleCourseStore struct {
	db *sqlx.DB
}

func NewArticleCourseStore(db *sqlx.DB) *ArticleCourseStore {
	return &ArticleCourseStore{db: db}
}

func (s *ArticleCourseStore) Link(ctx context.Context, articleID, courseID int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"INSERT INTO articles_courses (article_id, course_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		articleID, courseID,
	)
	return err
}
