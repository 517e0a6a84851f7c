package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Name         string    `gorm:"not null" json:"name"`
	OnHandQty    float64   `gorm:"not null;default:0" json:"on_hand_qty"`
	Unit         *string   `json:"unit"`
	UnitCategory *string   `json:"unit_category"`                     // weight, volume, count
	Density      float64   `gorm:"not null;default:1" json:"density"` // g/ml

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
