package products

import "time"

// Product is immutable after creation; there is no update or delete path.
type Product struct {
	ID        string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Name      string    `gorm:"column:name;size:255" json:"name"`
	Price     float64   `gorm:"column:price" json:"price"`
	CreatedAt time.Time `gorm:"column:created_at" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"-"`
}

func (Product) TableName() string { return "products" }
