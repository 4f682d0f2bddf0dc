package domain

import "time"

// Payment status values stored on an order.
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

// Shipping status values stored on an order.
const (
	ShippingPending   = "pending"
	ShippingShipped   = "shipped"
	ShippingDelivered = "delivered"
	ShippingReturned  = "returned"
)

// StatusUnknown buckets rows whose status column is empty or unrecognized.
const StatusUnknown = "unknown"

// Order is a customer order as stored by the record store. Monetary amounts
// travel as decimal strings and are converted exactly once, at the
// aggregation boundary; a malformed amount counts as zero in statistics but
// stays visible in raw listings.
type Order struct {
	OrderID              string    `json:"order_id"`
	UserID               string    `json:"user_id"`
	OrderDate            time.Time `json:"order_date"`
	TotalAmount          string    `json:"total_amount"`
	Currency             string    `json:"currency"`
	PaymentStatus        string    `json:"payment_status"`
	ShippingAddressLine1 string    `json:"shipping_address_line1,omitempty"`
	ShippingAddressLine2 *string   `json:"shipping_address_line2,omitempty"`
	ShippingCity         string    `json:"shipping_city,omitempty"`
	ShippingState        string    `json:"shipping_state,omitempty"`
	ShippingZipCode      string    `json:"shipping_zip_code,omitempty"`
	ShippingCountry      string    `json:"shipping_country,omitempty"`
	ShippingStatus       string    `json:"shipping_status"`
	TrackingNumber       *string   `json:"tracking_number,omitempty"`
	ShippingProvider     *string   `json:"shipping_provider,omitempty"`
	CustomerRating       *int      `json:"customer_rating,omitempty"`
	CustomerReview       *string   `json:"customer_review,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// OrderWithUser is an order with its single-level embedded user, as returned
// by the store's order→user relation.
type OrderWithUser struct {
	Order
	User *User `json:"user,omitempty"`
}

// StatusPair is the projection used by the order-status report: just the two
// status columns of an order.
type StatusPair struct {
	PaymentStatus  string `json:"payment_status"`
	ShippingStatus string `json:"shipping_status"`
}

// RatedOrder is the projection used by the rating reports: the customer
// rating and the creation time it is bucketed by.
type RatedOrder struct {
	CustomerRating *int      `json:"customer_rating"`
	CreatedAt      time.Time `json:"created_at"`
}

// ValidRating returns the rating when it is in the 1..5 range.
func (o RatedOrder) ValidRating() (int, bool) {
	if o.CustomerRating == nil || *o.CustomerRating < 1 || *o.CustomerRating > 5 {
		return 0, false
	}
	return *o.CustomerRating, true
}

// ReviewedOrder is the projection used by the review reports: the identity,
// review, and shipping-state columns of an order carrying review text.
type ReviewedOrder struct {
	OrderID        string    `json:"order_id"`
	UserID         string    `json:"user_id"`
	CustomerRating *int      `json:"customer_rating"`
	CustomerReview *string   `json:"customer_review"`
	ShippingStatus string    `json:"shipping_status"`
	CreatedAt      time.Time `json:"created_at"`
}

// ValidRating returns the rating when it is in the 1..5 range.
func (o ReviewedOrder) ValidRating() (int, bool) {
	if o.CustomerRating == nil || *o.CustomerRating < 1 || *o.CustomerRating > 5 {
		return 0, false
	}
	return *o.CustomerRating, true
}

// HasReview reports whether the order carries review text.
func (o ReviewedOrder) HasReview() bool {
	return o.CustomerReview != nil
}
