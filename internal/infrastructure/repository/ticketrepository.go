package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
)

// allowedTicketUpdateColumns whitelists the columns an update map may touch
// so a stray key can never reach the SQL layer.
var allowedTicketUpdateColumns = map[string]bool{
	"title":       true,
	"description": true,
	"email":       true,
	"phone":       true,
	"status":      true,
	"priority":    true,
	"updated_at":  true,
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(gdb *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return nil
}

func (r *TicketRepository) GetByIDForUser(ctx context.Context, ticketID, userID string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("id = ? AND user_id = ?", ticketID, userID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			// Absent and foreign-owned are indistinguishable on purpose.
			return nil, errors.NewNotFoundError("Ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) ListByUser(ctx context.Context, userID string) ([]*ticket.Ticket, error) {
	var ticketModels []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ticketModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i := range ticketModels {
		t, err := r.mapper.ToDomain(&ticketModels[i])
		if err != nil {
			return nil, err
		}
		tickets[i] = t
	}

	return tickets, nil
}

func (r *TicketRepository) UpdateForUser(ctx context.Context, ticketID, userID string, fields ticket.UpdateFields) error {
	if len(fields) == 0 {
		return nil
	}

	columns := make(map[string]interface{}, len(fields))
	for key, value := range fields {
		if !allowedTicketUpdateColumns[key] {
			return fmt.Errorf("unexpected ticket update column: %s", key)
		}
		columns[key] = value
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ? AND user_id = ?", ticketID, userID).
		Updates(columns)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("Ticket not found")
	}

	return nil
}

func (r *TicketRepository) DeleteForUser(ctx context.Context, ticketID, userID string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Where("id = ? AND user_id = ?", ticketID, userID).
		Delete(&models.TicketModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("Ticket not found")
	}

	return nil
}
