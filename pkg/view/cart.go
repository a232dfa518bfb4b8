package view

// CartItem is one rendered cart row.
type CartItem struct {
	ProductID string
	Name      string
	Price     float64
	PriceStr  string
}

// CartPage is the view model for the cart markup embedded in the storefront
// and the /cart page. Purely a function of the session cart snapshot.
type CartPage struct {
	Items    []CartItem
	Count    int
	Total    float64
	TotalStr string
}
