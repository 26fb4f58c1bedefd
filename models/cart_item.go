package models

import "time"

// Cart item source types stored in the item_type column.
const (
	CartItemDish  = "DISH"
	CartItemCombo = "COMBO"
)

// CartItem is one line of a user's cart: a quantity of a single dish or
// combo meal, with the product snapshot (name, image, unit amount) taken at
// first add. The composite unique index serializes concurrent adds of the
// same product: the race loser gets a duplicate-key error and retries as a
// quantity increment.
type CartItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_cart_user_item" json:"user_id"`
	ItemType   string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_cart_user_item" json:"item_type"`
	ItemID     uint      `gorm:"not null;uniqueIndex:idx_cart_user_item" json:"item_id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Image      string    `gorm:"type:varchar(255)" json:"image"`
	UnitAmount float64   `gorm:"type:decimal(10,2);not null" json:"unit_amount"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

// CartRef is the tagged variant built once at the request boundary: exactly
// one of dish or combo meal, never both, never neither.
type CartRef struct {
	Kind string
	ID   uint
}

func DishRef(id uint) CartRef {
	return CartRef{Kind: CartItemDish, ID: id}
}

func ComboRef(id uint) CartRef {
	return CartRef{Kind: CartItemCombo, ID: id}
}
