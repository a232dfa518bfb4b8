package view

// ProductCard is one product tile on the storefront.
type ProductCard struct {
	ID       string
	Name     string
	Price    float64
	PriceStr string
}

type HomePage struct {
	Products []ProductCard
	Cart     CartPage
}
