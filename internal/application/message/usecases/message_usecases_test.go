package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

var testLog = logger.NewLogger()

func testTicket(t *testing.T, id uint) *ticket.Ticket {
	t.Helper()
	entity, err := ticket.ReconstructTicket(
		id, "Broken keyboard", "Keys everywhere",
		vo.StatusOpen, vo.PriorityMedium,
		2, nil, nil,
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return entity
}

func testMessage(t *testing.T, id, ticketID, authorID uint) *ticket.Message {
	t.Helper()
	entity, err := ticket.ReconstructMessage(id, "Tried turning it off and on", ticketID, authorID, time.Now(), time.Now())
	require.NoError(t, err)
	return entity
}

func testAuthor(t *testing.T, id uint) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(id, "author@example.com", "hash", user.RoleUser, time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

func authorLookup(t *testing.T, id uint) func(ctx context.Context, ids []uint) (map[uint]*user.User, error) {
	author := testAuthor(t, id)
	return func(ctx context.Context, ids []uint) (map[uint]*user.User, error) {
		return map[uint]*user.User{id: author}, nil
	}
}

func TestCreateMessageRequiresExistingTicket(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return nil, errors.NewNotFoundError("Ticket not found")
		},
	}
	saved := false
	messageRepo := &mockMessageRepository{
		SaveFunc: func(ctx context.Context, msg *ticket.Message) error {
			saved = true
			return nil
		},
	}
	uc := NewCreateMessageUseCase(messageRepo, ticketRepo, &mockUserRepository{}, &mockPublisher{}, testLog)

	_, err := uc.Execute(context.Background(), CreateMessageCommand{
		Actor:    user.Actor{ID: 5},
		TicketID: 404,
		Content:  "hello",
	})

	assert.True(t, errors.IsNotFoundError(err))
	assert.False(t, saved)
}

func TestCreateMessagePublishesEventWithTicketSummary(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return testTicket(t, 11), nil
		},
	}
	messageRepo := &mockMessageRepository{
		SaveFunc: func(ctx context.Context, msg *ticket.Message) error {
			return msg.SetID(31)
		},
	}
	userRepo := &mockUserRepository{FindByIDsFunc: authorLookup(t, 5)}
	pub := &mockPublisher{}
	uc := NewCreateMessageUseCase(messageRepo, ticketRepo, userRepo, pub, testLog)

	view, err := uc.Execute(context.Background(), CreateMessageCommand{
		Actor:    user.Actor{ID: 5},
		TicketID: 11,
		Content:  "  trimmed content  ",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(31), view.ID)
	assert.Equal(t, "trimmed content", view.Content)
	require.NotNil(t, view.Ticket)
	assert.Equal(t, "Broken keyboard", view.Ticket.Title)
	require.NotNil(t, view.Author)
	assert.Equal(t, uint(5), view.Author.ID)

	require.Len(t, pub.Events, 1)
	assert.Equal(t, ticket.EventMessageCreated, pub.Events[0].Name)
	assert.Equal(t, uint(11), pub.Events[0].TicketID)
}

func TestUpdateMessageAuthorOnlyNoAdminOverride(t *testing.T) {
	tests := []struct {
		name    string
		actor   user.Actor
		allowed bool
	}{
		{"author may update", user.Actor{ID: 5, Role: user.RoleUser}, true},
		{"admin may not update another user's message", user.Actor{ID: 99, Role: user.RoleAdmin}, false},
		{"stranger forbidden", user.Actor{ID: 6, Role: user.RoleUser}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messageRepo := &mockMessageRepository{
				FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Message, error) {
					return testMessage(t, 31, 11, 5), nil
				},
			}
			ticketRepo := &mockTicketRepository{
				FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
					return testTicket(t, 11), nil
				},
			}
			userRepo := &mockUserRepository{FindByIDsFunc: authorLookup(t, 5)}
			uc := NewUpdateMessageUseCase(messageRepo, ticketRepo, userRepo, testLog)

			view, err := uc.Execute(context.Background(), UpdateMessageCommand{
				Actor:     tt.actor,
				MessageID: 31,
				Content:   "edited",
			})

			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, "edited", view.Content)
			} else {
				assert.True(t, errors.IsForbiddenError(err))
			}
		})
	}
}

func TestDeleteMessageAuthorOnly(t *testing.T) {
	messageRepo := &mockMessageRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Message, error) {
			return testMessage(t, 31, 11, 5), nil
		},
	}
	uc := NewDeleteMessageUseCase(messageRepo, testLog)

	err := uc.Execute(context.Background(), DeleteMessageCommand{
		Actor:     user.Actor{ID: 99, Role: user.RoleAdmin},
		MessageID: 31,
	})
	assert.True(t, errors.IsForbiddenError(err))

	err = uc.Execute(context.Background(), DeleteMessageCommand{
		Actor:     user.Actor{ID: 5, Role: user.RoleUser},
		MessageID: 31,
	})
	assert.NoError(t, err)
}

func TestListMessagesUnknownTicket(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return nil, errors.NewNotFoundError("Ticket not found")
		},
	}
	uc := NewListMessagesUseCase(&mockMessageRepository{}, ticketRepo, &mockUserRepository{}, testLog)

	_, err := uc.Execute(context.Background(), ListMessagesQuery{TicketID: 404, Pagination: utils.Pagination{Page: 1, Limit: 10}})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestListMessagesPopulatesAuthorsAndSummary(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return testTicket(t, 11), nil
		},
	}
	messageRepo := &mockMessageRepository{
		ListByTicketIDFunc: func(ctx context.Context, ticketID uint, page, limit int) ([]*ticket.Message, int64, error) {
			return []*ticket.Message{testMessage(t, 32, 11, 5), testMessage(t, 31, 11, 5)}, 2, nil
		},
	}
	userRepo := &mockUserRepository{FindByIDsFunc: authorLookup(t, 5)}
	uc := NewListMessagesUseCase(messageRepo, ticketRepo, userRepo, testLog)

	result, err := uc.Execute(context.Background(), ListMessagesQuery{TicketID: 11, Pagination: utils.Pagination{Page: 1, Limit: 10}})

	require.NoError(t, err)
	require.Len(t, result.Messages, 2)
	assert.EqualValues(t, 2, result.Total)
	assert.Equal(t, "Broken keyboard", result.Messages[0].Ticket.Title)
	assert.Equal(t, "author@example.com", result.Messages[1].Author.Email)
}
