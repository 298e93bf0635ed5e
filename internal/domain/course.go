package domain

import "time"

type Role int

const (
	RoleStudent Role = iota
	RoleInstructor
	RoleOnlineVolunteer
	RoleCampusVolunteer
	RoleStaff
)

func (r Role) String() string {
	switch r {
	case RoleStudent:
		return "student"
	case RoleInstructor:
		return "instructor"
	case RoleOnlineVolunteer:
		return "online_volunteer"
	case RoleCampusVolunteer:
		return "campus_volunteer"
	case RoleStaff:
		return "staff"
	default:
		return "unknown"
	}
}

// Counted reports whether edits by this role count toward course metrics.
func (r Role) Counted() bool {
	return r == RoleStudent
}

type Course struct {
	ID            int64     `db:"id"`
	Slug          string    `db:"slug"`
	Start         time.Time `db:"start_at"`
	End           time.Time `db:"end_at"`
	NeedsUpdate   bool      `db:"needs_update"`
	RevisionCount int64     `db:"revision_count"`
	CharacterSum  int64     `db:"character_sum"`
	ArticleCount  int64     `db:"article_count"`
	UserCount     int64     `db:"user_count"`
	Wikis         []Wiki    `db:"-"`
}

// Validate checks the start <= end invariant.
func (c Course) Validate() error {
	if c.End.Before(c.Start) {
		return ErrInvalidCourse
	}
	return nil
}

// WindowEnd is the last instant that still counts toward the course.
func (c Course) WindowEnd() time.Time {
	return EndOfDay(c.End)
}

// InWindow reports whether a revision made at ts counts toward the course.
// The end date is inclusive of the whole calendar day.
func (c Course) InWindow(ts time.Time) bool {
	return !ts.Before(c.Start) && !ts.After(c.WindowEnd())
}

// ActiveAt reports whether the course is running at now, or ended no more
// than grace ago.
func (c Course) ActiveAt(now time.Time, grace time.Duration) bool {
	return !now.Before(c.Start) && !now.After(c.WindowEnd().Add(grace))
}

// EndOfDay returns the last nanosecond of t's calendar day in UTC.
func EndOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
}

type User struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
}

// Enrollment links a user to a course in a role (courses_users).
type Enrollment struct {
	CourseID int64  `db:"course_id"`
	UserID   int64  `db:"user_id"`
	Username string `db:"username"`
	Role     Role   `db:"role"`
}

// CourseCounts are the cached aggregates recomputed after each pass.
type CourseCounts struct {
	RevisionCount int64 `db:"revision_count" json:"revision_count"`
	CharacterSum  int64 `db:"character_sum" json:"character_sum"`
	ArticleCount  int64 `db:"article_count" json:"article_count"`
	UserCount     int64 `db:"user_count" json:"user_count"`
}

// StartOfDay returns midnight UTC of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
