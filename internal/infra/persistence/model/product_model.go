package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. Service listings share this table,
// discriminated by the Kind column.
type ProductModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreID              uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind                 string    `gorm:"type:varchar(20);not null;default:'PRODUCT';index"`
	Title                string    `gorm:"type:varchar(200);not null"`
	Description          string    `gorm:"type:text"`
	Price                float64   `gorm:"type:numeric(12,2);not null;default:0"`
	Currency             string    `gorm:"type:varchar(3);not null;default:'TWD'"`
	Status               string    `gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	ScheduledPublishAt   *time.Time `gorm:"index"`
	ScheduledUnpublishAt *time.Time `gorm:"index"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
	DeletedAt            *time.Time `gorm:"index"`

	Variations []ProductVariationModel `gorm:"foreignKey:ProductID"`
	Media      []ProductMediaModel     `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductVariationModel mirrors the 'product_variations' table.
type ProductVariationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Value     string    `gorm:"type:varchar(100);not null"`
	Price     float64   `gorm:"type:numeric(12,2);not null;default:0"`
	Stock     int       `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (ProductVariationModel) TableName() string {
	return "product_variations"
}

// ProductMediaModel mirrors the 'product_media' table.
type ProductMediaModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind        string    `gorm:"type:varchar(20);not null"`
	URL         string    `gorm:"type:varchar(500);not null"`
	ContentType string    `gorm:"type:varchar(100)"`
	SizeBytes   int64     `gorm:"not null;default:0"`
	Position    int       `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (ProductMediaModel) TableName() string {
	return "product_media"
}
