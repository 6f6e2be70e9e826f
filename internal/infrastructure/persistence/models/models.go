// Package models contains the gorm persistence models. Relationships are
// managed by application logic; there are no foreign key constraints.
package models

type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:20;not null;default:user"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}

// TicketModel rows carry a FULLTEXT index over (title, description, tags),
// created by migration, used for relevance-ranked search.
type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
	Status      string `gorm:"size:20;not null;index:idx_tickets_status_created,priority:1"`
	Priority    string `gorm:"size:20;not null;index"`
	CreatorID   uint   `gorm:"not null;index"`
	AssigneeID  *uint  `gorm:"index"`
	Tags        string `gorm:"type:text"` // JSON-encoded string array
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index:idx_tickets_status_created,priority:2"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketModel) TableName() string {
	return "tickets"
}

type MessageModel struct {
	ID        uint   `gorm:"primaryKey"`
	Content   string `gorm:"type:text;not null"`
	TicketID  uint   `gorm:"not null;index:idx_messages_ticket_created,priority:1"`
	AuthorID  uint   `gorm:"not null;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index:idx_messages_ticket_created,priority:2"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (MessageModel) TableName() string {
	return "messages"
}
