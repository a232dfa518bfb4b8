package handlers

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/faizaniiiking/Ecommerce/internal/modules/cart"
	"github.com/faizaniiiking/Ecommerce/pkg/view"
)

func randHex(nBytes int) string {
	b := make([]byte, nBytes)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func cartPage(c cart.Cart) view.CartPage {
	vm := view.CartPage{Items: make([]view.CartItem, 0, len(c.Items))}
	for _, it := range c.Items {
		vm.Items = append(vm.Items, view.CartItem{
			ProductID: it.ID,
			Name:      it.Name,
			Price:     it.Price,
			PriceStr:  view.Money(it.Price),
		})
	}
	vm.Count = cart.Count(c)
	vm.Total = cart.Total(c)
	vm.TotalStr = view.Money(vm.Total)
	return vm
}
