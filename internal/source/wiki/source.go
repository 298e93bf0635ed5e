package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"course_revisions/internal/domain"
)

const (
	SourceID   = "mediawiki"
	SourceName = "MediaWiki user contributions"
)

// Config holds MediaWiki source configuration.
type Config struct {
	BaseURLTemplate string
	UserAgent       string
	Limit           int
	Timeout         time.Duration
	MaxAttempts     int
	InitialBackoff  time.Duration
	MaxBackoff      time.Duration
}

// Source fetches user contributions from the MediaWiki action API.
type Source struct {
	httpClient      *http.Client
	baseURLTemplate string
	userAgent       string
	limit           int
	maxAttempts     int
	initialBackoff  time.Duration
	maxBackoff      time.Duration
	logger          *slog.Logger
}

// New creates a new MediaWiki source.
func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURLTemplate: cfg.BaseURLTemplate,
		userAgent:       cfg.UserAgent,
		limit:           cfg.Limit,
		maxAttempts:     max(cfg.MaxAttempts, 1),
		initialBackoff:  cfg.InitialBackoff,
		maxBackoff:      cfg.MaxBackoff,
		logger:          logger.With("source", SourceID),
	}
}

// ID returns the source identifier.
func (s *Source) ID() string {
	return SourceID
}

// Name returns human-readable name.
func (s *Source) Name() string {
	return SourceName
}

// FetchRevisions returns the user's contributions on the wiki made at or
// after since, oldest first. Malformed entries are dropped.
func (s *Source) FetchRevisions(ctx context.Context, wiki domain.Wiki, username string, since time.Time) ([]domain.SourceRevision, error) {
	endpoint := fmt.Sprintf(s.baseURLTemplate, wiki.Language, wiki.Project)
	logger := s.logger.With("wiki", wiki.Key(), "user", username)

	var all []Contribution
	cont := map[string]string{}

	for page := 0; ; page++ {
		resp, err := s.fetchPage(ctx, endpoint, s.params(username, since, cont))
		if err != nil {
			return nil, fmt.Errorf("fetch page %d: %w", page, err)
		}

		if resp.Query != nil {
			all = append(all, resp.Query.UserContribs...)
		}

		logger.Debug("fetched page",
			"page", page,
			"total", len(all),
		)

		if len(resp.Continue) == 0 {
			break
		}
		cont = resp.Continue
	}

	return s.transform(logger, all), nil
}

func (s *Source) params(username string, since time.Time, cont map[string]string) url.Values {
	q := url.Values{}
	q.Set("action", "query")
	q.Set("list", "usercontribs")
	q.Set("format", "json")
	q.Set("formatversion", "2")
	q.Set("ucuser", username)
	q.Set("ucdir", "newer")
	q.Set("ucprop", "ids|title|timestamp|size|sizediff|flags")
	q.Set("uclimit", strconv.Itoa(s.limit))
	if !since.IsZero() {
		q.Set("ucstart", since.UTC().Format(time.RFC3339))
	}
	for k, v := range cont {
		q.Set(k, v)
	}
	return q
}

func (s *Source) fetchPage(ctx context.Context, endpoint string, params url.Values) (*APIResponse, error) {
	reqURL := endpoint + "?" + params.Encode()

	var resp *APIResponse
	var err error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		resp, err = s.doRequest(ctx, reqURL)
		if err == nil {
			return resp, nil
		}

		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return nil, err
		}

		if attempt == s.maxAttempts {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", s.maxAttempts, err)
}

func (s *Source) doRequest(ctx context.Context, reqURL string) (*APIResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if apiResp.Error != nil {
		return nil, apiResp.Error
	}

	return &apiResp, nil
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}

// transform converts contributions into revisions. Records that cannot be
// stored are passed through with their missing fields zeroed; the caller
// validates and counts them.
func (s *Source) transform(logger *slog.Logger, contribs []Contribution) []domain.SourceRevision {
	revisions := make([]domain.SourceRevision, 0, len(contribs))

	for _, c := range contribs {
		rev := domain.SourceRevision{
			RevID:     c.RevID,
			PageID:    c.PageID,
			Title:     c.Title,
			Namespace: c.Namespace,
		}

		ts, err := time.Parse(time.RFC3339, c.Timestamp)
		if err != nil {
			logger.Debug("failed to parse timestamp",
				"rev_id", c.RevID,
				"timestamp", c.Timestamp,
			)
		} else {
			rev.Timestamp = ts.UTC()
		}

		switch {
		case c.SizeDiff != nil:
			rev.Characters = *c.SizeDiff
		case c.New:
			rev.Characters = c.Size
		}

		revisions = append(revisions, rev)
	}

	sort.SliceStable(revisions, func(i, j int) bool {
		return revisions[i].Timestamp.Before(revisions[j].Timestamp)
	})

	return revisions
}
