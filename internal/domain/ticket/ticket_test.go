package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

func TestNewTicket(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		status      string
		priority    string
		creatorID   uint
		wantErr     bool
	}{
		{
			name:        "valid ticket with defaults",
			title:       "Broken login",
			description: "Cannot log in since this morning",
			creatorID:   1,
		},
		{
			name:        "valid ticket with explicit fields",
			title:       "Slow dashboard",
			description: "Loading takes 30s",
			status:      "in-progress",
			priority:    "high",
			creatorID:   2,
		},
		{
			name:        "missing title",
			description: "desc",
			creatorID:   1,
			wantErr:     true,
		},
		{
			name:        "whitespace-only title",
			title:       "   ",
			description: "desc",
			creatorID:   1,
			wantErr:     true,
		},
		{
			name:        "title too long",
			title:       strings.Repeat("a", 201),
			description: "desc",
			creatorID:   1,
			wantErr:     true,
		},
		{
			name:      "missing description",
			title:     "title",
			creatorID: 1,
			wantErr:   true,
		},
		{
			name:        "missing creator",
			title:       "title",
			description: "desc",
			wantErr:     true,
		},
		{
			name:        "invalid status",
			title:       "title",
			description: "desc",
			status:      "resolved",
			creatorID:   1,
			wantErr:     true,
		},
		{
			name:        "invalid priority",
			title:       "title",
			description: "desc",
			priority:    "critical",
			creatorID:   1,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := NewTicket(tt.title, tt.description, tt.status, tt.priority, tt.creatorID, nil, nil)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.creatorID, tk.CreatorID())
			assert.NotNil(t, tk.Tags())
			assert.False(t, tk.CreatedAt().IsZero())
		})
	}
}

func TestNewTicketDefaults(t *testing.T) {
	tk, err := NewTicket("T1", "D1", "", "", 1, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, vo.StatusOpen, tk.Status())
	assert.Equal(t, vo.PriorityMedium, tk.Priority())
	assert.Nil(t, tk.AssigneeID())
	assert.Empty(t, tk.Tags())
}

func TestTicketApply(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	uintPtr := func(u uint) *uint { return &u }

	newTicket := func(t *testing.T) *Ticket {
		tk, err := NewTicket("original title", "original description", "", "", 1, nil, []string{"billing"})
		require.NoError(t, err)
		require.NoError(t, tk.SetID(7))
		return tk
	}

	t.Run("unspecified fields are untouched", func(t *testing.T) {
		tk := newTicket(t)
		err := tk.Apply(Patch{Status: strPtr("closed")})
		require.NoError(t, err)

		assert.Equal(t, "original title", tk.Title())
		assert.Equal(t, "original description", tk.Description())
		assert.Equal(t, vo.StatusClosed, tk.Status())
		assert.Equal(t, []string{"billing"}, tk.Tags())
	})

	t.Run("full patch overwrites all mutable fields", func(t *testing.T) {
		tk := newTicket(t)
		err := tk.Apply(Patch{
			Title:       strPtr("new title"),
			Description: strPtr("new description"),
			Status:      strPtr("in-progress"),
			Priority:    strPtr("urgent"),
			AssigneeID:  uintPtr(9),
			Tags:        []string{"vip", "billing"},
		})
		require.NoError(t, err)

		assert.Equal(t, "new title", tk.Title())
		assert.Equal(t, "new description", tk.Description())
		assert.Equal(t, vo.StatusInProgress, tk.Status())
		assert.Equal(t, vo.PriorityUrgent, tk.Priority())
		require.NotNil(t, tk.AssigneeID())
		assert.Equal(t, uint(9), *tk.AssigneeID())
		assert.Equal(t, []string{"vip", "billing"}, tk.Tags())
	})

	t.Run("any status may move to any other status", func(t *testing.T) {
		tk := newTicket(t)
		require.NoError(t, tk.Apply(Patch{Status: strPtr("closed")}))
		require.NoError(t, tk.Apply(Patch{Status: strPtr("open")}))
		require.NoError(t, tk.Apply(Patch{Status: strPtr("in-progress")}))
		assert.Equal(t, vo.StatusInProgress, tk.Status())
	})

	t.Run("zero assignee clears the assignment", func(t *testing.T) {
		tk := newTicket(t)
		require.NoError(t, tk.Apply(Patch{AssigneeID: uintPtr(5)}))
		require.NotNil(t, tk.AssigneeID())

		require.NoError(t, tk.Apply(Patch{AssigneeID: uintPtr(0)}))
		assert.Nil(t, tk.AssigneeID())
	})

	t.Run("invalid field aborts without partial mutation", func(t *testing.T) {
		tk := newTicket(t)
		err := tk.Apply(Patch{
			Title:  strPtr("would-be title"),
			Status: strPtr("bogus"),
		})
		require.Error(t, err)
		assert.Equal(t, "original title", tk.Title())
		assert.Equal(t, vo.StatusOpen, tk.Status())
	})

	t.Run("apply bumps updatedAt", func(t *testing.T) {
		tk := newTicket(t)
		before := tk.UpdatedAt()
		time.Sleep(time.Millisecond)
		require.NoError(t, tk.Apply(Patch{Title: strPtr("changed")}))
		assert.True(t, tk.UpdatedAt().After(before))
	})
}

func TestTicketSetID(t *testing.T) {
	tk, err := NewTicket("T", "D", "", "", 1, nil, nil)
	require.NoError(t, err)

	require.NoError(t, tk.SetID(3))
	assert.Error(t, tk.SetID(4), "ID must be immutable once set")
	assert.Equal(t, uint(3), tk.ID())
}
