package domain

import "time"

// SyncStats holds statistics about an import pass.
type SyncStats struct {
	SourceID          string
	Courses           int
	Users             int
	Fetched           int
	NewRevisions      int
	ExistingRevisions int
	NewArticles       int
	UpdatedArticles   int
	Skipped           int
	Errors            int
	Published         int
	Duration          time.Duration
}

// Add folds a per-course result into the pass totals.
func (s *SyncStats) Add(r *CourseSyncResult) {
	s.Courses++
	s.Users += r.Users
	s.Fetched += r.Fetched
	s.NewRevisions += r.NewRevisions
	s.ExistingRevisions += r.ExistingRevisions
	s.NewArticles += r.NewArticles
	s.UpdatedArticles += r.UpdatedArticles
	s.Skipped += r.Skipped
	s.Errors += r.Errors
}

// CourseSyncResult describes what one course's pass did.
type CourseSyncResult struct {
	CourseID          int64
	Users             int
	Fetched           int
	NewRevisions      int
	ExistingRevisions int
	NewArticles       int
	UpdatedArticles   int
	Skipped           int
	Errors            int
	Counts            CourseCounts
}

// SyncState is the per-source bookkeeping row updated after every pass.
type SyncState struct {
	ID           int64     `db:"id"`
	SourceID     string    `db:"source_id"`
	LastSyncedAt time.Time `db:"last_synced_at"`
	TotalSynced  int64     `db:"total_synced"`
	LastErrors   int64     `db:"last_errors"`
}
