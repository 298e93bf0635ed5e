package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"course_revisions/internal/domain"
)

type WikiStore struct {
	db *sqlx.DB
}

func NewWikiStore(db *sqlx.DB) *WikiStore {
	return &WikiStore{db: db}
}

func (s *WikiStore) FindOrCreate(ctx context.Context, language, project string) (*domain.Wiki, error) {
	exec := GetExecutor(ctx, s.db)
	wiki := domain.Wiki{Language: language, Project: project}

	err := exec.QueryRowxContext(ctx, `
		INSERT INTO wikis (language, project)
		VALUES ($1, $2)
		ON CONFLICT (language, project) DO NOTHING
		RETURNING id`,
		language, project,
	).Scan(&wiki.ID)

	if errors.Is(err, sql.ErrNoRows) {
		err = exec.QueryRowxContext(ctx,
			"SELECT id FROM wikis WHERE language = $1 AND project = $2",
			language, project,
		).Scan(&wiki.ID)
	}

	if err != nil {
		return nil, err
	}
	return &wiki, nil
}
