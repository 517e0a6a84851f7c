// File: entities/recipe.go
package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Name        string    `gorm:"not null" json:"name"`
	PrepMinutes int       `json:"prep_minutes"`
	CookMinutes int       `json:"cook_minutes"`
	ImageURL    string    `json:"image_url,omitempty"`

	User         *User               `gorm:"foreignKey:UserID"`
	Ingredients  []*RecipeIngredient `gorm:"foreignKey:RecipeID"`
	Instructions []*Instruction      `gorm:"foreignKey:RecipeID"`
	Timestamp
}

func (r *Recipe) TotalMinutes() int {
	return r.PrepMinutes + r.CookMinutes
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

type RecipeIngredient struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID    uuid.UUID `gorm:"type:uuid;index;not null" json:"recipe_id"`
	InventoryID uuid.UUID `gorm:"type:uuid;index;not null" json:"inventory_id"`
	Amount      *float64  `json:"amount"`
	Unit        *string   `json:"unit"` // nil means the inventory item's unit
	Note        *string   `json:"note"`
	Position    int       `json:"position"`

	Recipe    *Recipe        `gorm:"foreignKey:RecipeID"`
	Inventory *InventoryItem `gorm:"foreignKey:InventoryID"`
	Timestamp
}

func (i *RecipeIngredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// Instruction is one step of a recipe. Step numbers of a recipe are always 1..N.
type Instruction struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_instruction_recipe_step" json:"recipe_id"`
	StepNumber int       `gorm:"not null;uniqueIndex:idx_instruction_recipe_step" json:"step_number"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	Detail     *string   `gorm:"type:text" json:"detail"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	Timestamp
}

func (i *Instruction) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
