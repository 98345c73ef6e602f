package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc           func(ctx context.Context, t *ticket.Ticket) error
	GetByIDForUserFunc func(ctx context.Context, ticketID, userID string) (*ticket.Ticket, error)
	ListByUserFunc     func(ctx context.Context, userID string) ([]*ticket.Ticket, error)
	UpdateForUserFunc  func(ctx context.Context, ticketID, userID string, fields ticket.UpdateFields) error
	DeleteForUserFunc  func(ctx context.Context, ticketID, userID string) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByIDForUser(ctx context.Context, ticketID, userID string) (*ticket.Ticket, error) {
	if m.GetByIDForUserFunc != nil {
		return m.GetByIDForUserFunc(ctx, ticketID, userID)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByUser(ctx context.Context, userID string) ([]*ticket.Ticket, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockTicketRepository) UpdateForUser(ctx context.Context, ticketID, userID string, fields ticket.UpdateFields) error {
	if m.UpdateForUserFunc != nil {
		return m.UpdateForUserFunc(ctx, ticketID, userID, fields)
	}
	return nil
}

func (m *mockTicketRepository) DeleteForUser(ctx context.Context, ticketID, userID string) error {
	if m.DeleteForUserFunc != nil {
		return m.DeleteForUserFunc(ctx, ticketID, userID)
	}
	return nil
}

type mockLogger struct{}

func newMockLogger() logger.Interface { return &mockLogger{} }

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
