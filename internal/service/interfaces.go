package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"course_revisions/internal/domain"
)

type CourseStore interface {
	ListForUpdate(ctx context.Context, now time.Time, grace time.Duration) ([]domain.Course, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Course, error)
	ListEnrollments(ctx context.Context, courseID int64) ([]domain.Enrollment, error)
	ClearNeedsUpdate(ctx context.Context, courseID int64) error
	RefreshCounts(ctx context.Context, course *domain.Course, wikiIDs []int64) (domain.CourseCounts, error)
	// SyncCursor returns the timestamp of the newest revision stored for the
	// course, user and wiki, or the zero time before the first import.
	SyncCursor(ctx context.Context, courseID, userID, wikiID int64) (time.Time, error)
	AdvanceSyncCursor(ctx context.Context, courseID, userID, wikiID int64, at time.Time) error
}

type WikiStore interface {
	FindOrCreate(ctx context.Context, language, project string) (*domain.Wiki, error)
}

type ArticleStore interface {
	FindByWikiAndPageID(ctx context.Context, wikiID, pageID int64) (*domain.Article, error)
	Create(ctx context.Context, article *domain.Article) (int64, error)
	UpdateTitle(ctx context.Context, article *domain.Article) error
}

type RevisionStore interface {
	Exists(ctx context.Context, wikiID, revID int64) (bool, error)
	Create(ctx context.Context, revision *domain.Revision) (int64, error)
}

type ArticleCourseStore interface {
	Link(ctx context.Context, articleID, courseID int64) error
}

type SyncStateStore interface {
	Get(ctx context.Context, sourceID string) (*domain.SyncState, error)
	Update(ctx context.Context, state *domain.SyncState) error
}

type Source interface {
	ID() string
	Name() string
	FetchRevisions(ctx context.Context, wiki domain.Wiki, username string, since time.Time) ([]domain.SourceRevision, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	PublishCourseSynced(ctx context.Context, course *domain.Course, result *domain.CourseSyncResult) error
	Close() error
}
