package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"course_revisions/internal/domain"
)

type CourseStore struct {
	db *sqlx.DB
}

func NewCourseStore(db *sqlx.DB) *CourseStore {
	return &CourseStore{db: db}
}

const courseColumns = `id, slug, start_at, end_at, needs_update, revision_count, character_sum, article_count, user_count`

// ListForUpdate returns courses flagged needs_update and courses whose window
// is open at now or closed less than grace ago.
func (s *CourseStore) ListForUpdate(ctx context.Context, now time.Time, grace time.Duration) ([]domain.Course, error) {
	query := `
		SELECT ` + courseColumns + `
		FROM courses
		WHERE needs_update
		   OR (start_at <= $1 AND end_at >= $2)
		ORDER BY id`

	// EndOfDay(end) + grace >= now holds exactly when end falls on or after
	// the calendar day of now - grace.
	cutoff := domain.StartOfDay(now.Add(-grace))

	var courses []domain.Course
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &courses, query, now, cutoff); err != nil {
		return nil, fmt.Errorf("select courses: %w", err)
	}
	if err := s.attachWikis(ctx, courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *CourseStore) GetByIDs(ctx context.Context, ids []int64) ([]domain.Course, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = ANY($1) ORDER BY id`

	var courses []domain.Course
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &courses, query, pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("select courses: %w", err)
	}
	if err := s.attachWikis(ctx, courses); err != nil {
		return nil, err
	}
	return courses, nil
}

type courseWiki struct {
	CourseID int64 `db:"course_id"`
	domain.Wiki
}

func (s *CourseStore) attachWikis(ctx context.Context, courses []domain.Course) error {
	if len(courses) == 0 {
		return nil
	}

	ids := make([]int64, len(courses))
	index := make(map[int64]int, len(courses))
	for i, c := range courses {
		ids[i] = c.ID
		index[c.ID] = i
	}

	query := `
		SELECT cw.course_id, w.id, w.language, w.project
		FROM courses_wikis cw
		INNER JOIN wikis w ON w.id = cw.wiki_id
		WHERE cw.course_id = ANY($1)
		ORDER BY cw.course_id, w.id`

	var rows []courseWiki
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, pq.Array(ids)); err != nil {
		return fmt.Errorf("select course wikis: %w", err)
	}

	for _, r := range rows {
		i := index[r.CourseID]
		courses[i].Wikis = append(courses[i].Wikis, r.Wiki)
	}
	return nil
}

func (s *CourseStore) ListEnrollments(ctx context.Context, courseID int64) ([]domain.Enrollment, error) {
	query := `
		SELECT cu.course_id, cu.user_id, u.username, cu.role
		FROM courses_users cu
		INNER JOIN users u ON u.id = cu.user_id
		WHERE cu.course_id = $1
		ORDER BY cu.id`

	var enrollments []domain.Enrollment
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &enrollments, query, courseID)
	return enrollments, err
}

func (s *CourseStore) ClearNeedsUpdate(ctx context.Context, courseID int64) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"UPDATE courses SET needs_update = FALSE, updated_at = NOW() WHERE id = $1",
		courseID,
	)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

// RefreshCounts recomputes the cached course aggregates from stored rows.
// Only revisions by students on the given wikis inside the course window
// count.
func (s *CourseStore) RefreshCounts(ctx context.Context, course *domain.Course, wikiIDs []int64) (domain.CourseCounts, error) {
	query := `
		WITH students AS (
			SELECT DISTINCT user_id FROM courses_users WHERE course_id = $1 AND role = $2
		), revs AS (
			SELECT COUNT(*) AS revision_count,
			       COALESCE(SUM(GREATEST(r.characters, 0)), 0) AS character_sum
			FROM revisions r
			INNER JOIN students st ON st.user_id = r.user_id
			WHERE r.date >= $3 AND r.date <= $4
			  AND r.wiki_id = ANY($5)
		)
		UPDATE courses SET
			revision_count = revs.revision_count,
			character_sum = revs.character_sum,
			article_count = (SELECT COUNT(*) FROM articles_courses WHERE course_id = $1),
			user_count = (SELECT COUNT(*) FROM students),
			updated_at = NOW()
		FROM revs
		WHERE courses.id = $1
		RETURNING courses.revision_count, courses.character_sum, courses.article_count, courses.user_count`

	var counts domain.CourseCounts
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &counts, query,
		course.ID,
		domain.RoleStudent,
		course.Start,
		// postgres rounds to microseconds; 23:59:59.999999999 would become midnight
		course.WindowEnd().Truncate(time.Microsecond),
		pq.Array(wikiIDs),
	)
	if err != nil {
		return domain.CourseCounts{}, err
	}

	course.RevisionCount = counts.RevisionCount
	course.CharacterSum = counts.CharacterSum
	course.ArticleCount = counts.ArticleCount
	course.UserCount = counts.UserCount
	return counts, nil
}

func (s *CourseStore) SyncCursor(ctx context.Context, courseID, userID, wikiID int64) (time.Time, error) {
	query := `
		SELECT last_revision_at
		FROM course_sync_cursors
		WHERE course_id = $1 AND user_id = $2 AND wiki_id = $3`

	var at time.Time
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &at, query, courseID, userID, wikiID)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return at.UTC(), nil
}

// AdvanceSyncCursor moves the cursor forward to at; it never moves back.
func (s *CourseStore) AdvanceSyncCursor(ctx context.Context, courseID, userID, wikiID int64, at time.Time) error {
	query := `
		INSERT INTO course_sync_cursors (course_id, user_id, wiki_id, last_revision_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (course_id, user_id, wiki_id) DO UPDATE SET
			last_revision_at = GREATEST(course_sync_cursors.last_revision_at, EXCLUDED.last_revision_at),
			updated_at = NOW()`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, courseID, userID, wikiID, at)
	return err
}
