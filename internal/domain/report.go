package domain

import "time"

// Sentinel values substituted when a join target is missing. They never
// represent real domain data.
const (
	UnknownUser    = "Unknown User"
	NoEmail        = "No Email"
	UnknownProduct = "Unknown Product"
	NotAvailable   = "N/A"
)

// RecentOrder is a dashboard row: an order enriched with its customer's
// name and email.
type RecentOrder struct {
	OrderID        string    `json:"order_id"`
	CustomerName   string    `json:"customer_name"`
	CustomerEmail  string    `json:"customer_email"`
	OrderDate      time.Time `json:"order_date"`
	TotalAmount    string    `json:"total_amount"`
	Currency       string    `json:"currency"`
	PaymentStatus  string    `json:"payment_status"`
	ShippingStatus string    `json:"shipping_status"`
	TrackingNumber string    `json:"tracking_number"`
}

// DashboardSnapshot is the overview report payload. Fields backed by a
// failed fan-out query degrade to zero values rather than failing the
// report.
type DashboardSnapshot struct {
	TotalOrders     int           `json:"total_orders"`
	Revenue         float64       `json:"revenue"`
	ActiveCustomers int           `json:"active_customers"`
	Products        int           `json:"products"`
	WeeklyOrders    int           `json:"weekly_orders"`
	MonthlyOrders   int           `json:"monthly_orders"`
	RecentOrders    []RecentOrder `json:"recent_orders"`
}

// DailyStat accumulates order count and revenue for one calendar day.
type DailyStat struct {
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// Period is an inclusive [start, end] reporting window.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// AnalyticsReport is the month-to-date time series, keyed by YYYY-MM-DD.
type AnalyticsReport struct {
	DailyStats map[string]DailyStat `json:"daily_stats"`
	Period     Period               `json:"period"`
}

// ProductStat is one row of the top-products ranking.
type ProductStat struct {
	ProductID     string  `json:"product_id"`
	Name          string  `json:"name"`
	CurrentPrice  string  `json:"current_price"`
	TotalQuantity int     `json:"total_quantity"`
	TotalOrders   int     `json:"total_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// StatusReport holds the payment and shipping status distributions over all
// orders.
type StatusReport struct {
	PaymentStatusDistribution  map[string]int `json:"payment_status_distribution"`
	ShippingStatusDistribution map[string]int `json:"shipping_status_distribution"`
	TotalOrders                int            `json:"total_orders"`
}

// RecentActivity counts review activity over the trailing 30 days. The
// bucket predicates overlap: an order can land in several buckets or none.
// The JSON keys are part of the dashboard contract.
type RecentActivity struct {
	NewReviews  int `json:"newReviews"`
	UnderReview int `json:"underreview"`
	Flagged     int `json:"flagged"`
	Published   int `json:"published"`
}

// ReviewRecord is a review joined to its reviewer and a product label.
type ReviewRecord struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	OrderID     string `json:"orderid"`
	Rating      *int   `json:"rating"`
	Review      string `json:"reviews"`
	ProductName string `json:"product_name"`
}

// RatingReport is the rating dashboard payload.
type RatingReport struct {
	OverallRating      float64        `json:"overall_rating"`
	RatingDistribution map[string]int `json:"rating_distribution"`
	RecentActivity     RecentActivity `json:"recent_activity"`
	AllReviews         []ReviewRecord `json:"allreviews"`
}

// MonthlyRating is one point of the monthly rating trend, keyed by YYYY-MM.
type MonthlyRating struct {
	Month   string  `json:"month"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// RatingStats is the rating trend payload.
type RatingStats struct {
	MonthlyAverages []MonthlyRating `json:"monthlyAverages"`
	TotalReviews    int             `json:"totalReviews"`
}

// ProductReview is one review row of the per-product report.
type ProductReview struct {
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	OrderID   string    `json:"orderid"`
	Rating    *int      `json:"rating"`
	Review    string    `json:"reviews"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductReviewReport is the per-product review payload. A product with no
// order lines yields the empty-but-successful shape.
type ProductReviewReport struct {
	ProductReviews []ProductReview `json:"product_reviews"`
	AverageRating  float64         `json:"average_rating"`
	TotalReviews   int             `json:"total_reviews"`
}
