package models

import "time"

// Dish sale status values stored in the status column.
const (
	StatusDisable = 0
	StatusEnable  = 1
)

type Dish struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	CategoryID  uint         `gorm:"not null;index" json:"category_id"`
	Category    DishCategory `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Name        string       `gorm:"type:varchar(255);not null" json:"name"`
	Price       float64      `gorm:"type:decimal(10,2);not null" json:"price"`
	Image       string       `gorm:"type:varchar(255)" json:"image"`
	Description string       `gorm:"type:text" json:"description"`
	Status      int          `gorm:"not null" json:"status"`
	Flavors     []DishFlavor `gorm:"foreignKey:DishID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"flavors"`
	CreatedAt   time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null" json:"updated_at"`
}
