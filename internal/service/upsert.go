package service

import (
	"context"
	"errors"
	"fmt"

	"course_revisions/internal/domain"
)

type upsertOutcome struct {
	newArticle     bool
	renamedArticle bool
	newRevision    bool
	linked         bool
}

// upsertRevision stores one fetched revision and its article inside a single
// transaction. Existing revisions are never modified.
func (s *SyncService) upsertRevision(
	ctx context.Context,
	course *domain.Course,
	member domain.Enrollment,
	wiki domain.Wiki,
	rev domain.SourceRevision,
) (upsertOutcome, error) {
	var out upsertOutcome

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		article, err := s.findOrCreateArticle(txCtx, wiki.ID, rev, &out)
		if err != nil {
			return err
		}

		exists, err := s.revisions.Exists(txCtx, wiki.ID, rev.RevID)
		if err != nil {
			return fmt.Errorf("check revision: %w", err)
		}
		if !exists {
			_, err := s.revisions.Create(txCtx, &domain.Revision{
				WikiID:     wiki.ID,
				RevID:      rev.RevID,
				PageID:     rev.PageID,
				ArticleID:  article.ID,
				UserID:     member.UserID,
				Characters: rev.Characters,
				Date:       rev.Timestamp,
			})
			if err != nil {
				return fmt.Errorf("create revision: %w", err)
			}
			out.newRevision = true
		}

		if s.counts(course, member, article, rev) {
			if err := s.articleCourses.Link(txCtx, article.ID, course.ID); err != nil {
				return fmt.Errorf("link article to course: %w", err)
			}
			out.linked = true
		}

		return nil
	})

	return out, err
}

func (s *SyncService) findOrCreateArticle(
	ctx context.Context,
	wikiID int64,
	rev domain.SourceRevision,
	out *upsertOutcome,
) (*domain.Article, error) {
	article, err := s.articles.FindByWikiAndPageID(ctx, wikiID, rev.PageID)
	if errors.Is(err, domain.ErrNotFound) {
		article = &domain.Article{
			WikiID:    wikiID,
			PageID:    rev.PageID,
			Title:     rev.Title,
			Namespace: rev.Namespace,
			TitleAsOf: rev.Timestamp,
		}
		id, err := s.articles.Create(ctx, article)
		if err != nil {
			return nil, fmt.Errorf("create article: %w", err)
		}
		article.ID = id
		out.newArticle = true
		return article, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find article: %w", err)
	}

	// Titles only move forward in time; an older revision never renames.
	if rev.Timestamp.After(article.TitleAsOf) {
		renamed := article.Title != rev.Title || article.Namespace != rev.Namespace
		article.Title = rev.Title
		article.Namespace = rev.Namespace
		article.TitleAsOf = rev.Timestamp
		if err := s.articles.UpdateTitle(ctx, article); err != nil {
			return nil, fmt.Errorf("update article title: %w", err)
		}
		out.renamedArticle = renamed
	}

	return article, nil
}

// counts reports whether the revision contributes to the course's
// ArticlesCourses rows.
func (s *SyncService) counts(course *domain.Course, member domain.Enrollment, article *domain.Article, rev domain.SourceRevision) bool {
	if !member.Role.Counted() || !course.InWindow(rev.Timestamp) {
		return false
	}
	_, tracked := s.trackedNamespaces[article.Namespace]
	return tracked
}
