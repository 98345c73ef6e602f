package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
)

func TestCreateTicketUseCase_Execute(t *testing.T) {
	phone := "+1-555-0100"

	t.Run("creates ticket with defaults", func(t *testing.T) {
		var saved *ticket.Ticket
		repo := &mockTicketRepository{
			SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				saved = tk
				return nil
			},
		}

		uc := NewCreateTicketUseCase(repo, newMockLogger())
		result, err := uc.Execute(context.Background(), CreateTicketCommand{
			Title:       "Login broken",
			Description: "Cannot sign in since yesterday",
			Email:       "user@example.com",
			Phone:       &phone,
			UserID:      "u1",
		})

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, saved.ID(), result.ID)
		assert.Equal(t, "open", result.Status)
		assert.Equal(t, "medium", result.Priority)
		assert.Equal(t, "u1", result.UserID)
		require.NotNil(t, result.Phone)
		assert.Equal(t, phone, *result.Phone)
	})

	t.Run("honors explicit priority", func(t *testing.T) {
		repo := &mockTicketRepository{}
		uc := NewCreateTicketUseCase(repo, newMockLogger())

		result, err := uc.Execute(context.Background(), CreateTicketCommand{
			Title:       "Outage",
			Description: "Everything is down",
			Email:       "user@example.com",
			Priority:    "urgent",
			UserID:      "u1",
		})

		require.NoError(t, err)
		assert.Equal(t, "urgent", result.Priority)
		assert.Equal(t, "open", result.Status)
	})

	t.Run("missing required fields", func(t *testing.T) {
		tests := []struct {
			name string
			cmd  CreateTicketCommand
		}{
			{name: "no title", cmd: CreateTicketCommand{Description: "d", Email: "e@x.com", UserID: "u1"}},
			{name: "no description", cmd: CreateTicketCommand{Title: "t", Email: "e@x.com", UserID: "u1"}},
			{name: "no email", cmd: CreateTicketCommand{Title: "t", Description: "d", UserID: "u1"}},
		}

		uc := NewCreateTicketUseCase(&mockTicketRepository{}, newMockLogger())
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Execute(context.Background(), tt.cmd)
				require.Error(t, err)
				appErr := errors.GetAppError(err)
				require.NotNil(t, appErr)
				assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
				assert.Equal(t, "Title, description, and email are required", appErr.Message)
			})
		}
	})

	t.Run("invalid priority", func(t *testing.T) {
		uc := NewCreateTicketUseCase(&mockTicketRepository{}, newMockLogger())
		_, err := uc.Execute(context.Background(), CreateTicketCommand{
			Title:       "t",
			Description: "d",
			Email:       "e@x.com",
			Priority:    "critical",
			UserID:      "u1",
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		repo := &mockTicketRepository{
			SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				return errors.NewInternalError("db down")
			},
		}

		uc := NewCreateTicketUseCase(repo, newMockLogger())
		_, err := uc.Execute(context.Background(), CreateTicketCommand{
			Title:       "t",
			Description: "d",
			Email:       "e@x.com",
			UserID:      "u1",
		})

		require.Error(t, err)
		assert.False(t, errors.IsValidationError(err))
	})
}
