package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/JAX838/delight-vision-sounds/internal/formatter"
	"github.com/JAX838/delight-vision-sounds/internal/models"
)

var (
	_ list.Item = productItem{}
	_ list.Item = cartItem{}
)

// productItem wraps [models.Product] to implement [list.Item].
type productItem struct {
	product  models.Product
	currency string
}

func (i productItem) FilterValue() string { return i.product.Name }
func (i productItem) Title() string       { return i.product.Name }
func (i productItem) Description() string {
	desc := fmt.Sprintf("%s • %s", formatter.Amount(i.currency, i.product.Price), i.product.CategoryName())
	if !i.product.InStock() {
		desc = fmt.Sprintf("%s • out of stock", desc)
	}
	return desc
}

// cartItem wraps [models.CartLine] to implement [list.Item].
type cartItem struct {
	line     models.CartLine
	currency string
}

func (i cartItem) FilterValue() string { return i.line.Name }
func (i cartItem) Title() string       { return i.line.Name }
func (i cartItem) Description() string {
	return fmt.Sprintf("%d x %s = %s",
		i.line.Quantity,
		formatter.Amount(i.currency, i.line.UnitPrice),
		formatter.Amount(i.currency, i.line.Subtotal()),
	)
}
