package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationModel mirrors the 'notifications' table. Data carries the
// payload forwarded to push consumers as a JSONB column.
type NotificationModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Type      string         `gorm:"type:varchar(30);not null"`
	Title     string         `gorm:"type:varchar(200);not null"`
	Body      string         `gorm:"type:text"`
	Data      datatypes.JSON `gorm:"type:jsonb"`
	IsRead    bool           `gorm:"not null;default:false;index"`
	CreatedAt time.Time      `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
