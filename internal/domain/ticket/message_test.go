package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		ticketID uint
		authorID uint
		want     string
		wantErr  bool
	}{
		{"valid message", "Thanks, looking into it", 1, 2, "Thanks, looking into it", false},
		{"content is trimmed", "  padded  ", 1, 2, "padded", false},
		{"empty content", "", 1, 2, "", true},
		{"whitespace-only content", "   \t ", 1, 2, "", true},
		{"missing ticket", "hello", 0, 2, "", true},
		{"missing author", "hello", 1, 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMessage(tt.content, tt.ticketID, tt.authorID)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Content())
			assert.Equal(t, tt.ticketID, m.TicketID())
			assert.Equal(t, tt.authorID, m.AuthorID())
		})
	}
}

func TestMessageUpdateContent(t *testing.T) {
	m, err := NewMessage("first", 1, 2)
	require.NoError(t, err)

	require.NoError(t, m.UpdateContent("  second  "))
	assert.Equal(t, "second", m.Content())

	assert.Error(t, m.UpdateContent("  "))
	assert.Equal(t, "second", m.Content(), "failed update must not clear content")
}
