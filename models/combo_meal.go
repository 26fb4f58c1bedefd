package models

import "time"

// ComboMeal is a bundled product sold as one cart line item. The cart only
// ever reads it; the full combo lifecycle lives outside this service.
type ComboMeal struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Image       string    `gorm:"type:varchar(255)" json:"image"`
	Description string    `gorm:"type:text" json:"description"`
	Status      int       `gorm:"not null" json:"status"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// ComboMealDish links a combo meal to the dishes it bundles. Dish deletion
// must be refused while any such link exists.
type ComboMealDish struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	ComboMealID uint `gorm:"not null;index" json:"combo_meal_id"`
	DishID      uint `gorm:"not null;index" json:"dish_id"`
	Copies      int  `gorm:"not null;default:1" json:"copies"`
}
