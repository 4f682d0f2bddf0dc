package domain

import "time"

// Product is a catalog entry. Price is the current list price as a decimal
// string; order lines carry their own purchase-time snapshot.
type Product struct {
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Price     string    `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}
