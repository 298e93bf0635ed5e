package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"course_revisions/internal/domain"
)

// memStore is an in-memory implementation of every store the service uses.
type memStore struct {
	courses     map[int64]*domain.Course
	enrollments []domain.Enrollment
	wikis       []domain.Wiki
	articles    map[int64]*domain.Article
	revisions   map[int64]*domain.Revision
	links       map[[2]int64]struct{}
	state       *domain.SyncState
	cursors     map[[3]int64]time.Time
	failCreate  map[int64]error
	nextID      int64
}

func newMemStore() *memStore {
	return &memStore{
		courses:    map[int64]*domain.Course{},
		articles:   map[int64]*domain.Article{},
		revisions:  map[int64]*domain.Revision{},
		links:      map[[2]int64]struct{}{},
		cursors:    map[[3]int64]time.Time{},
		failCreate: map[int64]error{},
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) addCourse(c domain.Course) *domain.Course {
	if c.ID == 0 {
		c.ID = m.id()
	}
	m.courses[c.ID] = &c
	return &c
}

func (m *memStore) enroll(courseID int64, user domain.User, role domain.Role) {
	m.enrollments = append(m.enrollments, domain.Enrollment{
		CourseID: courseID,
		UserID:   user.ID,
		Username: user.Username,
		Role:     role,
	})
}

func (m *memStore) ListForUpdate(_ context.Context, now time.Time, grace time.Duration) ([]domain.Course, error) {
	var out []domain.Course
	for _, c := range m.sortedCourses() {
		if c.NeedsUpdate || c.ActiveAt(now, grace) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *memStore) GetByIDs(_ context.Context, ids []int64) ([]domain.Course, error) {
	var out []domain.Course
	for _, id := range ids {
		if c, ok := m.courses[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *memStore) ListEnrollments(_ context.Context, courseID int64) ([]domain.Enrollment, error) {
	var out []domain.Enrollment
	for _, e := range m.enrollments {
		if e.CourseID == courseID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memStore) ClearNeedsUpdate(_ context.Context, courseID int64) error {
	c, ok := m.courses[courseID]
	if !ok {
		return domain.ErrNotFound
	}
	c.NeedsUpdate = false
	return nil
}

func (m *memStore) RefreshCounts(_ context.Context, course *domain.Course, wikiIDs []int64) (domain.CourseCounts, error) {
	onWiki := map[int64]bool{}
	for _, id := range wikiIDs {
		onWiki[id] = true
	}
	counted := map[int64]bool{}
	for _, e := range m.enrollments {
		if e.CourseID == course.ID && e.Role.Counted() {
			counted[e.UserID] = true
		}
	}

	var counts domain.CourseCounts
	counts.UserCount = int64(len(counted))
	for _, r := range m.revisions {
		if counted[r.UserID] && onWiki[r.WikiID] && course.InWindow(r.Date) {
			counts.RevisionCount++
			if r.Characters > 0 {
				counts.CharacterSum += r.Characters
			}
		}
	}
	for link := range m.links {
		if link[1] == course.ID {
			counts.ArticleCount++
		}
	}

	if c, ok := m.courses[course.ID]; ok {
		c.RevisionCount = counts.RevisionCount
		c.CharacterSum = counts.CharacterSum
		c.ArticleCount = counts.ArticleCount
		c.UserCount = counts.UserCount
	}
	return counts, nil
}

func (m *memStore) SyncCursor(_ context.Context, courseID, userID, wikiID int64) (time.Time, error) {
	return m.cursors[[3]int64{courseID, userID, wikiID}], nil
}

func (m *memStore) AdvanceSyncCursor(_ context.Context, courseID, userID, wikiID int64, at time.Time) error {
	key := [3]int64{courseID, userID, wikiID}
	if at.After(m.cursors[key]) {
		m.cursors[key] = at
	}
	return nil
}

func (m *memStore) FindOrCreate(_ context.Context, language, project string) (*domain.Wiki, error) {
	for _, w := range m.wikis {
		if w.Language == language && w.Project == project {
			return &w, nil
		}
	}
	w := domain.Wiki{ID: m.id(), Language: language, Project: project}
	m.wikis = append(m.wikis, w)
	return &w, nil
}

func (m *memStore) FindByWikiAndPageID(_ context.Context, wikiID, pageID int64) (*domain.Article, error) {
	for _, a := range m.articles {
		if a.WikiID == wikiID && a.PageID == pageID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memStore) Create(_ context.Context, article *domain.Article) (int64, error) {
	for _, a := range m.articles {
		if a.WikiID == article.WikiID && a.PageID == article.PageID {
			return 0, fmt.Errorf("duplicate article (%d, %d)", a.WikiID, a.PageID)
		}
	}
	cp := *article
	cp.ID = m.id()
	m.articles[cp.ID] = &cp
	return cp.ID, nil
}

func (m *memStore) UpdateTitle(_ context.Context, article *domain.Article) error {
	a, ok := m.articles[article.ID]
	if !ok {
		return domain.ErrNotFound
	}
	a.Title = article.Title
	a.Namespace = article.Namespace
	a.TitleAsOf = article.TitleAsOf
	return nil
}

func (m *memStore) Link(_ context.Context, articleID, courseID int64) error {
	m.links[[2]int64{articleID, courseID}] = struct{}{}
	return nil
}

func (m *memStore) Get(_ context.Context, sourceID string) (*domain.SyncState, error) {
	if m.state == nil {
		return &domain.SyncState{SourceID: sourceID}, nil
	}
	cp := *m.state
	return &cp, nil
}

func (m *memStore) Update(_ context.Context, state *domain.SyncState) error {
	cp := *state
	m.state = &cp
	return nil
}

func (m *memStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *memStore) revisionsByUser(userID int64) int {
	n := 0
	for _, r := range m.revisions {
		if r.UserID == userID {
			n++
		}
	}
	return n
}

func (m *memStore) sortedCourses() []*domain.Course {
	out := make([]*domain.Course, 0, len(m.courses))
	for _, c := range m.courses {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// memRevisions adapts memStore to RevisionStore; its Create collides with
// ArticleStore.Create on the same receiver.
type memRevisions struct{ *memStore }

func (r memRevisions) Exists(_ context.Context, wikiID, revID int64) (bool, error) {
	for _, rev := range r.revisions {
		if rev.WikiID == wikiID && rev.RevID == revID {
			return true, nil
		}
	}
	return false, nil
}

func (r memRevisions) Create(_ context.Context, revision *domain.Revision) (int64, error) {
	if err, ok := r.failCreate[revision.RevID]; ok {
		delete(r.failCreate, revision.RevID)
		return 0, err
	}
	for _, rev := range r.revisions {
		if rev.WikiID == revision.WikiID && rev.RevID == revision.RevID {
			return 0, fmt.Errorf("duplicate revision (%d, %d)", rev.WikiID, rev.RevID)
		}
	}
	cp := *revision
	cp.ID = r.id()
	r.revisions[cp.ID] = &cp
	return cp.ID, nil
}

// fakeSource serves canned contributions keyed by username and wiki.
type fakeSource struct {
	contribs map[string]map[string][]domain.SourceRevision
	errs     map[string]error
	calls    []fetchCall
}

type fetchCall struct {
	username string
	wiki     string
	since    time.Time
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		contribs: map[string]map[string][]domain.SourceRevision{},
		errs:     map[string]error{},
	}
}

func (f *fakeSource) add(username, wiki string, revs ...domain.SourceRevision) {
	if f.contribs[username] == nil {
		f.contribs[username] = map[string][]domain.SourceRevision{}
	}
	f.contribs[username][wiki] = append(f.contribs[username][wiki], revs...)
}

func (f *fakeSource) ID() string   { return "fake" }
func (f *fakeSource) Name() string { return "Fake Source" }

func (f *fakeSource) FetchRevisions(_ context.Context, wiki domain.Wiki, username string, since time.Time) ([]domain.SourceRevision, error) {
	f.calls = append(f.calls, fetchCall{username: username, wiki: wiki.Key(), since: since})
	if err := f.errs[username]; err != nil {
		return nil, err
	}
	var out []domain.SourceRevision
	for _, r := range f.contribs[username][wiki.Key()] {
		if !r.Timestamp.Before(since) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}
