package view

import "fmt"

// Money formats an amount for display. Prices in this system are bare
// numbers with no currency dimension, so the symbol is fixed.
func Money(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
