package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"course_revisions/internal/config"
	"course_revisions/internal/domain"
)

type SyncService struct {
	source         Source
	courses        CourseStore
	wikis          WikiStore
	articles       ArticleStore
	revisions      RevisionStore
	articleCourses ArticleCourseStore
	syncState      SyncStateStore
	txManager      TransactionManager
	publisher      Publisher
	logger         *slog.Logger
	config         config.SyncConfig

	trackedNamespaces map[int]struct{}
	now               func() time.Time
}

func NewSyncService(
	source Source,
	courses CourseStore,
	wikis WikiStore,
	articles ArticleStore,
	revisions RevisionStore,
	articleCourses ArticleCourseStore,
	syncState SyncStateStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncService {
	tracked := make(map[int]struct{}, len(cfg.TrackedNamespaces))
	for _, ns := range cfg.TrackedNamespaces {
		tracked[ns] = struct{}{}
	}

	return &SyncService{
		source:            source,
		courses:           courses,
		wikis:             wikis,
		articles:          articles,
		revisions:         revisions,
		articleCourses:    articleCourses,
		syncState:         syncState,
		txManager:         txManager,
		publisher:         publisher,
		logger:            logger.With("source", source.ID()),
		config:            cfg,
		trackedNamespaces: tracked,
		now:               time.Now,
	}
}

// Sync runs a pass over every course that needs an update or is active.
func (s *SyncService) Sync(ctx context.Context) (*domain.SyncStats, error) {
	return s.ImportNewRevisions(ctx, nil)
}

// ImportCoursesByID runs a pass over an explicit set of courses.
func (s *SyncService) ImportCoursesByID(ctx context.Context, ids []int64) (*domain.SyncStats, error) {
	courses, err := s.courses.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get courses: %w", err)
	}
	if len(courses) != len(ids) {
		s.logger.Warn("some requested courses were not found",
			"requested", len(ids),
			"found", len(courses),
		)
	}
	if courses == nil {
		courses = []domain.Course{}
	}
	return s.ImportNewRevisions(ctx, courses)
}

// ImportNewRevisions imports new revisions for the given courses. A nil
// slice selects courses flagged needs_update or currently active.
func (s *SyncService) ImportNewRevisions(ctx context.Context, courses []domain.Course) (*domain.SyncStats, error) {
	startTime := time.Now()

	if courses == nil {
		var err error
		courses, err = s.courses.ListForUpdate(ctx, s.now(), s.config.PostCourseGrace)
		if err != nil {
			return nil, fmt.Errorf("list courses: %w", err)
		}
	}

	s.logger.Info("starting import",
		"source_name", s.source.Name(),
		"courses", len(courses),
	)

	stats := &domain.SyncStats{SourceID: s.source.ID()}
	if len(courses) == 0 {
		stats.Duration = time.Since(startTime)
		return stats, nil
	}

	defaults, err := s.defaultWikis(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve default wikis: %w", err)
	}

	for i := range courses {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		course := &courses[i]
		result := s.importCourse(ctx, course, defaults)
		stats.Add(result)

		if s.publisher != nil {
			if err := s.publisher.PublishCourseSynced(ctx, course, result); err != nil {
				s.logger.Error("failed to publish course sync", "course_id", course.ID, "error", err)
				stats.Errors++
			} else {
				stats.Published++
			}
		}
	}

	if err := s.updateSyncState(ctx, stats); err != nil {
		return stats, fmt.Errorf("update sync state: %w", err)
	}

	stats.Duration = time.Since(startTime)

	s.logger.Info("import completed",
		"courses", stats.Courses,
		"users", stats.Users,
		"fetched", stats.Fetched,
		"new_revisions", stats.NewRevisions,
		"new_articles", stats.NewArticles,
		"updated_articles", stats.UpdatedArticles,
		"skipped", stats.Skipped,
		"errors", stats.Errors,
		"published", stats.Published,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *SyncService) importCourse(ctx context.Context, course *domain.Course, defaults []domain.Wiki) *domain.CourseSyncResult {
	logger := s.logger.With("course_id", course.ID, "course", course.Slug)
	result := &domain.CourseSyncResult{CourseID: course.ID}

	if err := course.Validate(); err != nil {
		logger.Error("skipping course", "error", err)
		result.Errors++
		return result
	}

	enrollments, err := s.courses.ListEnrollments(ctx, course.ID)
	if err != nil {
		logger.Error("failed to list enrollments", "error", err)
		result.Errors++
		return result
	}

	wikis := course.Wikis
	if len(wikis) == 0 {
		wikis = defaults
	}

	members := uniqueMembers(enrollments)
	result.Users = len(members)

	for _, member := range members {
		for _, wiki := range wikis {
			if ctx.Err() != nil {
				result.Errors++
				return result
			}
			s.importUserWiki(ctx, logger, course, member, wiki, result)
		}
	}

	wikiIDs := make([]int64, len(wikis))
	for i, w := range wikis {
		wikiIDs[i] = w.ID
	}

	counts, err := s.courses.RefreshCounts(ctx, course, wikiIDs)
	if err != nil {
		logger.Error("failed to refresh course counts", "error", err)
		result.Errors++
	} else {
		result.Counts = counts
	}

	if err := s.courses.ClearNeedsUpdate(ctx, course.ID); err != nil {
		logger.Error("failed to clear needs_update", "error", err)
		result.Errors++
	} else {
		course.NeedsUpdate = false
	}

	logger.Info("course imported",
		"users", result.Users,
		"fetched", result.Fetched,
		"new_revisions", result.NewRevisions,
		"revision_count", result.Counts.RevisionCount,
		"article_count", result.Counts.ArticleCount,
		"errors", result.Errors,
	)

	return result
}

func (s *SyncService) importUserWiki(
	ctx context.Context,
	logger *slog.Logger,
	course *domain.Course,
	member domain.Enrollment,
	wiki domain.Wiki,
	result *domain.CourseSyncResult,
) {
	logger = logger.With("user", member.Username, "wiki", wiki.Key())

	cursor, err := s.courses.SyncCursor(ctx, course.ID, member.UserID, wiki.ID)
	if err != nil {
		logger.Error("failed to read sync cursor", "error", err)
		result.Errors++
		return
	}
	since := cursor
	if since.IsZero() {
		since = course.Start.Add(-s.config.HistoryLookback)
	}

	revisions, err := s.source.FetchRevisions(ctx, wiki, member.Username, since)
	if err != nil {
		logger.Warn("failed to fetch revisions", "since", since, "error", err)
		result.Errors++
		return
	}
	result.Fetched += len(revisions)

	// The cursor only moves past revisions that were stored, so a failed
	// revision and everything after it is fetched again next pass.
	var stored time.Time
	for _, rev := range revisions {
		if err := rev.Validate(); err != nil {
			logger.Warn("skipping revision", "rev_id", rev.RevID, "error", err)
			result.Skipped++
			continue
		}

		out, err := s.upsertRevision(ctx, course, member, wiki, rev)
		if err != nil {
			logger.Error("failed to store revision", "rev_id", rev.RevID, "error", err)
			result.Errors++
			break
		}
		stored = rev.Timestamp

		if out.newRevision {
			result.NewRevisions++
		} else {
			result.ExistingRevisions++
		}
		if out.newArticle {
			result.NewArticles++
		}
		if out.renamedArticle {
			result.UpdatedArticles++
		}
	}

	if stored.After(cursor) {
		if err := s.courses.AdvanceSyncCursor(ctx, course.ID, member.UserID, wiki.ID, stored); err != nil {
			logger.Error("failed to advance sync cursor", "error", err)
			result.Errors++
		}
	}
}

func (s *SyncService) updateSyncState(ctx context.Context, stats *domain.SyncStats) error {
	state, err := s.syncState.Get(ctx, s.source.ID())
	if err != nil {
		return err
	}

	state.SourceID = s.source.ID()
	state.LastSyncedAt = s.now()
	state.TotalSynced += int64(stats.NewRevisions)
	state.LastErrors = int64(stats.Errors)

	return s.syncState.Update(ctx, state)
}

func (s *SyncService) defaultWikis(ctx context.Context) ([]domain.Wiki, error) {
	wikis := make([]domain.Wiki, 0, len(s.config.DefaultWikis))
	for _, key := range s.config.DefaultWikis {
		language, project, err := config.ParseWikiKey(key)
		if err != nil {
			return nil, err
		}
		wiki, err := s.wikis.FindOrCreate(ctx, language, project)
		if err != nil {
			return nil, fmt.Errorf("wiki %s: %w", key, err)
		}
		wikis = append(wikis, *wiki)
	}
	return wikis, nil
}

// uniqueMembers collapses multiple enrollments of one user into one,
// preferring a counted role so the user's edits still count.
func uniqueMembers(enrollments []domain.Enrollment) []domain.Enrollment {
	index := make(map[int64]int, len(enrollments))
	members := make([]domain.Enrollment, 0, len(enrollments))

	for _, e := range enrollments {
		i, seen := index[e.UserID]
		if !seen {
			index[e.UserID] = len(members)
			members = append(members, e)
			continue
		}
		if e.Role.Counted() && !members[i].Role.Counted() {
			members[i] = e
		}
	}
	return members
}
