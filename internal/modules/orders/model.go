package orders

import "time"

// Order stores the total exactly as the caller supplied it; it is never
// recomputed from the items.
type Order struct {
	ID             string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Total          float64   `gorm:"column:total" json:"total"`
	IdempotencyKey *string   `gorm:"column:idempotency_key;size:64;uniqueIndex" json:"-"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"-"`
}

func (Order) TableName() string { return "orders" }

type OrderItem struct {
	ID        string    `gorm:"column:id;primaryKey;size:36" json:"-"`
	OrderID   string    `gorm:"column:order_id;size:36;index" json:"-"`
	ProductID string    `gorm:"column:product_id;size:36" json:"id"`
	Quantity  int       `gorm:"column:quantity" json:"quantity"`
	CreatedAt time.Time `gorm:"column:created_at" json:"-"`
}

func (OrderItem) TableName() string { return "order_items" }

// Line is one product reference inside a create request. Product IDs are not
// checked against the products table.
type Line struct {
	ProductID string
	Quantity  int
}
