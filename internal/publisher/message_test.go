package publisher

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course_revisions/internal/domain"
)

func TestNewCourseSyncMessage(t *testing.T) {
	course := &domain.Course{ID: 7, Slug: "Uni/Course"}
	result := &domain.CourseSyncResult{
		CourseID:     7,
		NewRevisions: 3,
		NewArticles:  1,
		Errors:       2,
		Counts:       domain.CourseCounts{RevisionCount: 10, CharacterSum: 500, ArticleCount: 4, UserCount: 2},
	}

	before := time.Now().UTC()
	msg := NewCourseSyncMessage(course, result)

	assert.Equal(t, ActionCourseSynced, msg.Action)
	assert.Equal(t, int64(7), msg.CourseID)
	assert.Equal(t, "Uni/Course", msg.Slug)
	assert.Equal(t, 3, msg.NewRevisions)
	assert.Equal(t, 2, msg.Errors)
	assert.Equal(t, result.Counts, msg.Counts)
	assert.False(t, msg.Timestamp.Before(before))
}

func TestCourseSyncMessage_JSONShape(t *testing.T) {
	msg := CourseSyncMessage{
		Action:   ActionCourseSynced,
		CourseID: 1,
		Slug:     "s",
		Counts:   domain.CourseCounts{RevisionCount: 2},
	}

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(body, &fields))
	assert.Equal(t, "course_synced", fields["action"])
	assert.Equal(t, float64(1), fields["course_id"])
	assert.Contains(t, fields, "new_revisions")
	counts, ok := fields["counts"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), counts["revision_count"])
}
