package cart

// Item is a single cart line. Quantity is implicitly 1; adding the same
// product twice yields two separate entries.
type Item struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Cart is an ordered sequence of items. Insertion order is display order.
type Cart struct {
	Items []Item `json:"items"`
}

func New() Cart {
	return Cart{Items: []Item{}}
}

// Add appends an item. No dedupe, no quantity merge, always succeeds.
func Add(c Cart, it Item) Cart {
	items := make([]Item, 0, len(c.Items)+1)
	items = append(items, c.Items...)
	items = append(items, it)
	return Cart{Items: items}
}

// Remove drops every entry whose ID matches productID. A miss is a no-op.
func Remove(c Cart, productID string) Cart {
	items := make([]Item, 0, len(c.Items))
	for _, it := range c.Items {
		if it.ID == productID {
			continue
		}
		items = append(items, it)
	}
	return Cart{Items: items}
}

// Empty resets the cart. Idempotent.
func Empty(Cart) Cart {
	return New()
}

// Total sums item prices, one unit per entry.
func Total(c Cart) float64 {
	var sum float64
	for _, it := range c.Items {
		sum += it.Price
	}
	return sum
}

func Count(c Cart) int { return len(c.Items) }
