package inventory

import "github.com/shopspring/decimal"

// StockValue valor total en estoque de un producto: Precio * Cantidad.
func StockValue(price decimal.Decimal, quantity int) decimal.Decimal {
	if quantity <= 0 {
		return decimal.Zero
	}
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}
