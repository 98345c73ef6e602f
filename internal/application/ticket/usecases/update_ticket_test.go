package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
)

func reconstructTestTicket(t *testing.T, ticketID, userID string) *ticket.Ticket {
	t.Helper()
	now := time.Now().UTC()
	tk, err := ticket.ReconstructTicket(ticketID, "title", "desc", "a@b.com", nil,
		vo.StatusOpen, vo.PriorityMedium, userID, now.Add(-time.Hour), now)
	require.NoError(t, err)
	return tk
}

func TestUpdateTicketUseCase_Execute(t *testing.T) {
	t.Run("builds merge map from present fields only", func(t *testing.T) {
		var gotFields ticket.UpdateFields
		repo := &mockTicketRepository{
			UpdateForUserFunc: func(ctx context.Context, ticketID, userID string, fields ticket.UpdateFields) error {
				gotFields = fields
				return nil
			},
			GetByIDForUserFunc: func(ctx context.Context, ticketID, userID string) (*ticket.Ticket, error) {
				return reconstructTestTicket(t, ticketID, userID), nil
			},
		}

		uc := NewUpdateTicketUseCase(repo, newMockLogger())
		_, err := uc.Execute(context.Background(), UpdateTicketCommand{
			TicketID: "t1",
			UserID:   "u1",
			Title:    "New title",
			Status:   "resolved",
		})

		require.NoError(t, err)
		assert.Equal(t, "New title", gotFields["title"])
		assert.Equal(t, "resolved", gotFields["status"])
		assert.Contains(t, gotFields, "updated_at")
		assert.NotContains(t, gotFields, "description")
		assert.NotContains(t, gotFields, "email")
		assert.NotContains(t, gotFields, "phone")
		assert.NotContains(t, gotFields, "priority")
		assert.NotContains(t, gotFields, "id")
		assert.NotContains(t, gotFields, "user_id")
		assert.NotContains(t, gotFields, "created_at")
	})

	t.Run("empty strings are skipped, present phone is applied", func(t *testing.T) {
		empty := ""
		var gotFields ticket.UpdateFields
		repo := &mockTicketRepository{
			UpdateForUserFunc: func(ctx context.Context, ticketID, userID string, fields ticket.UpdateFields) error {
				gotFields = fields
				return nil
			},
			GetByIDForUserFunc: func(ctx context.Context, ticketID, userID string) (*ticket.Ticket, error) {
				return reconstructTestTicket(t, ticketID, userID), nil
			},
		}

		uc := NewUpdateTicketUseCase(repo, newMockLogger())
		_, err := uc.Execute(context.Background(), UpdateTicketCommand{
			TicketID: "t1",
			UserID:   "u1",
			Title:    "",
			Phone:    &empty,
		})

		require.NoError(t, err)
		assert.NotContains(t, gotFields, "title")
		assert.Contains(t, gotFields, "phone")
		assert.Contains(t, gotFields, "updated_at")
	})

	t.Run("invalid enum values fail before touching the repository", func(t *testing.T) {
		called := false
		repo := &mockTicketRepository{
			UpdateForUserFunc: func(ctx context.Context, ticketID, userID string, fields ticket.UpdateFields) error {
				called = true
				return nil
			},
		}

		uc := NewUpdateTicketUseCase(repo, newMockLogger())

		_, err := uc.Execute(context.Background(), UpdateTicketCommand{TicketID: "t1", UserID: "u1", Status: "reopened"})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))

		_, err = uc.Execute(context.Background(), UpdateTicketCommand{TicketID: "t1", UserID: "u1", Priority: "critical"})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))

		assert.False(t, called)
	})

	t.Run("zero matched rows maps to not found", func(t *testing.T) {
		repo := &mockTicketRepository{
			UpdateForUserFunc: func(ctx context.Context, ticketID, userID string, fields ticket.UpdateFields) error {
				return errors.NewNotFoundError("Ticket not found")
			},
		}

		uc := NewUpdateTicketUseCase(repo, newMockLogger())
		_, err := uc.Execute(context.Background(), UpdateTicketCommand{TicketID: "missing", UserID: "u1", Title: "x"})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("returns the re-fetched ticket", func(t *testing.T) {
		repo := &mockTicketRepository{
			GetByIDForUserFunc: func(ctx context.Context, ticketID, userID string) (*ticket.Ticket, error) {
				return reconstructTestTicket(t, "t1", "u1"), nil
			},
		}

		uc := NewUpdateTicketUseCase(repo, newMockLogger())
		result, err := uc.Execute(context.Background(), UpdateTicketCommand{TicketID: "t1", UserID: "u1", Title: "x"})

		require.NoError(t, err)
		assert.Equal(t, "t1", result.ID)
		assert.Equal(t, "u1", result.UserID)
	})
}
