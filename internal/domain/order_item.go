package domain

// OrderItem is a line item in an order. PriceAtPurchase is the price
// snapshot taken when the order was placed; it is never re-derived from the
// current product price.
type OrderItem struct {
	OrderItemID     string `json:"order_item_id"`
	OrderID         string `json:"order_id"`
	ProductID       string `json:"product_id"`
	Quantity        int    `json:"quantity"`
	PriceAtPurchase string `json:"price_at_purchase"`
}

// Units returns the line quantity, treating missing or non-positive values
// as a single unit.
func (i *OrderItem) Units() int {
	if i.Quantity < 1 {
		return 1
	}
	return i.Quantity
}

// SoldItem is an order item with its single-level embedded product, as
// returned by the store's item→product relation.
type SoldItem struct {
	OrderItem
	Product *Product `json:"product,omitempty"`
}
