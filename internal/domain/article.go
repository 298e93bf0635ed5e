package domain

import "time"

// Mainspace is the namespace of encyclopedic articles.
const Mainspace = 0

type Wiki struct {
	ID       int64  `db:"id"`
	Language string `db:"language"`
	Project  string `db:"project"`
}

// Key returns the "language.project" form used in configuration.
func (w Wiki) Key() string {
	return w.Language + "." + w.Project
}

type Article struct {
	ID        int64     `db:"id"`
	WikiID    int64     `db:"wiki_id"`
	PageID    int64     `db:"mw_page_id"`
	Title     string    `db:"title"`
	Namespace int       `db:"namespace"`
	TitleAsOf time.Time `db:"title_as_of"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Revision struct {
	ID         int64     `db:"id"`
	WikiID     int64     `db:"wiki_id"`
	RevID      int64     `db:"mw_rev_id"`
	PageID     int64     `db:"mw_page_id"`
	ArticleID  int64     `db:"article_id"`
	UserID     int64     `db:"user_id"`
	Characters int64     `db:"characters"`
	Date       time.Time `db:"date"`
	CreatedAt  time.Time `db:"created_at"`
}

// SourceRevision is a single contribution as reported by the external
// revision source, before it is bound to stored users and articles.
type SourceRevision struct {
	RevID      int64
	PageID     int64
	Title      string
	Namespace  int
	Timestamp  time.Time
	Characters int64
}

// Validate reports ErrInvalidRevision when a fetched record is missing a
// field needed to store it.
func (r SourceRevision) Validate() error {
	switch {
	case r.RevID <= 0:
		return invalidRevision("missing revision id")
	case r.PageID <= 0:
		return invalidRevision("missing page id")
	case r.Title == "":
		return invalidRevision("missing title")
	case r.Timestamp.IsZero():
		return invalidRevision("missing timestamp")
	}
	return nil
}
