package models

type TicketModel struct {
	ID          string  `gorm:"primaryKey;size:32"`
	Title       string  `gorm:"size:200;not null"`
	Description string  `gorm:"type:text;not null"`
	Email       string  `gorm:"size:255;not null"`
	Phone       *string `gorm:"size:50"`
	Status      string  `gorm:"size:20;not null;index"`
	Priority    string  `gorm:"size:20;not null;index"`
	UserID      string  `gorm:"size:32;not null;index"`
	CreatedAt   int64   `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt   int64   `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}
