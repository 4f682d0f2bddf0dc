package analytics

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/utafrali/storefront-insights/internal/domain"
)

// ParseAmount converts a decimal string from the store into a decimal value.
// Unparsable or empty amounts count as zero; the originating row is not
// rejected and stays visible in raw listings.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// SumAmounts adds decimal strings at full precision. Round only at the
// output boundary, via Round2.
func SumAmounts(values []string) decimal.Decimal {
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(ParseAmount(v))
	}
	return sum
}

// Round2 rounds a decimal to two places, half away from zero, and returns
// it as a float for the wire.
func Round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// RoundFloat2 rounds a float to two decimal places, half up.
func RoundFloat2(x float64) float64 {
	return math.Round(x*100) / 100
}

// ratingCarrier is any order projection exposing its customer rating.
type ratingCarrier interface {
	ValidRating() (int, bool)
}

// ValidRatings extracts the ratings in the 1..5 range from the given rows.
// Out-of-range ratings are excluded from both the sum and the denominator of
// any average computed over the result.
func ValidRatings[T ratingCarrier](rows []T) []int {
	var ratings []int
	for _, r := range rows {
		if v, ok := r.ValidRating(); ok {
			ratings = append(ratings, v)
		}
	}
	return ratings
}

// AverageRating returns the arithmetic mean of the given ratings at full
// precision, or exactly 0 for an empty list. Callers round at the output
// boundary.
func AverageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return float64(sum) / float64(len(ratings))
}

// RatingDistribution counts ratings per bucket 1..5. All five keys are
// always present, even when zero.
func RatingDistribution(ratings []int) map[string]int {
	dist := make(map[string]int, 5)
	for b := 1; b <= 5; b++ {
		dist[strconv.Itoa(b)] = 0
	}
	for _, r := range ratings {
		if r >= 1 && r <= 5 {
			dist[strconv.Itoa(r)]++
		}
	}
	return dist
}

// StatusDistribution counts occurrences per status string. The bucket set
// is open, discovered from the data; empty statuses accumulate under the
// "unknown" bucket.
func StatusDistribution(statuses []string) map[string]int {
	dist := make(map[string]int)
	for _, s := range statuses {
		if s == "" {
			s = domain.StatusUnknown
		}
		dist[s]++
	}
	return dist
}

// TopProducts folds sold line items into per-product cumulative statistics
// and returns up to n products ranked by cumulative revenue, descending.
// Ties keep the order in which products were first seen (stable sort).
// Revenue is accumulated at full precision from the purchase-time price
// snapshots and rounded to two places only on the returned rows.
func TopProducts(items []domain.SoldItem, n int) []domain.ProductStat {
	type acc struct {
		stat    domain.ProductStat
		revenue decimal.Decimal
	}

	groups := make(map[string]*acc, len(items))
	var order []string

	for i := range items {
		item := &items[i]
		g, ok := groups[item.ProductID]
		if !ok {
			name := "Unknown"
			price := "0"
			if item.Product != nil {
				name = item.Product.Name
				price = item.Product.Price
			}
			g = &acc{stat: domain.ProductStat{
				ProductID:    item.ProductID,
				Name:         name,
				CurrentPrice: price,
			}}
			groups[item.ProductID] = g
			order = append(order, item.ProductID)
		}

		units := item.Units()
		g.stat.TotalQuantity += units
		g.stat.TotalOrders++
		g.revenue = g.revenue.Add(ParseAmount(item.PriceAtPurchase).Mul(decimal.NewFromInt(int64(units))))
	}

	ranked := make([]*acc, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, groups[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].revenue.GreaterThan(ranked[j].revenue)
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}

	stats := make([]domain.ProductStat, len(ranked))
	for i, g := range ranked {
		g.stat.TotalRevenue = Round2(g.revenue)
		stats[i] = g.stat
	}
	return stats
}

// DailyStats buckets orders by calendar day (YYYY-MM-DD), accumulating order
// count and revenue per bucket. Revenue is summed at full precision and
// rounded on the returned buckets.
func DailyStats(orders []domain.Order) map[string]domain.DailyStat {
	type acc struct {
		orders  int
		revenue decimal.Decimal
	}

	buckets := make(map[string]*acc)
	for i := range orders {
		day := orders[i].OrderDate.Format("2006-01-02")
		b, ok := buckets[day]
		if !ok {
			b = &acc{}
			buckets[day] = b
		}
		b.orders++
		b.revenue = b.revenue.Add(ParseAmount(orders[i].TotalAmount))
	}

	stats := make(map[string]domain.DailyStat, len(buckets))
	for day, b := range buckets {
		stats[day] = domain.DailyStat{Orders: b.orders, Revenue: Round2(b.revenue)}
	}
	return stats
}

// MonthlyRatingAverages buckets rated orders by calendar month (YYYY-MM,
// from the order's creation time) and returns per-month average rating and
// count, sorted descending by month key and truncated to maxMonths. Only
// ratings in the 1..5 range contribute; a month with no valid rating is
// dropped rather than reported as zero.
func MonthlyRatingAverages(orders []domain.RatedOrder, maxMonths int) []domain.MonthlyRating {
	type acc struct {
		total int
		count int
	}

	buckets := make(map[string]*acc)
	for i := range orders {
		rating, ok := orders[i].ValidRating()
		if !ok {
			continue
		}
		month := orders[i].CreatedAt.Format("2006-01")
		b, ok := buckets[month]
		if !ok {
			b = &acc{}
			buckets[month] = b
		}
		b.total += rating
		b.count++
	}

	averages := make([]domain.MonthlyRating, 0, len(buckets))
	for month, b := range buckets {
		averages = append(averages, domain.MonthlyRating{
			Month:   month,
			Average: RoundFloat2(float64(b.total) / float64(b.count)),
			Count:   b.count,
		})
	}
	sort.Slice(averages, func(i, j int) bool {
		return averages[i].Month > averages[j].Month
	})

	if maxMonths > 0 && len(averages) > maxMonths {
		averages = averages[:maxMonths]
	}
	return averages
}

// CountRecentActivity buckets reviewed orders created at or after since.
// The predicates overlap on purpose: they mirror the dashboard's existing
// semantics, so an order can land in several buckets or in none.
func CountRecentActivity(orders []domain.ReviewedOrder, since time.Time) domain.RecentActivity {
	var activity domain.RecentActivity
	for i := range orders {
		o := &orders[i]
		if o.CreatedAt.Before(since) {
			continue
		}
		hasReview := o.HasReview()
		hasRating := o.CustomerRating != nil

		if hasReview && !hasRating {
			activity.NewReviews++
		}
		if hasReview && hasRating && o.ShippingStatus == domain.ShippingShipped {
			activity.UnderReview++
		}
		if hasRating && *o.CustomerRating <= 2 {
			activity.Flagged++
		}
		if hasReview && hasRating && o.ShippingStatus == domain.ShippingDelivered {
			activity.Published++
		}
	}
	return activity
}

// ProductLabel resolves the display label for an order's line items: the
// first item's product name, suffixed with the count of additional lines
// when the order has more than one. When no item or product resolves, the
// label is the "Unknown Product" sentinel.
func ProductLabel(items []domain.OrderItem, products map[string]domain.Product) string {
	if len(items) == 0 {
		return domain.UnknownProduct
	}
	p, ok := products[items[0].ProductID]
	if !ok {
		return domain.UnknownProduct
	}
	if len(items) > 1 {
		return fmt.Sprintf("%s (+%d more)", p.Name, len(items)-1)
	}
	return p.Name
}
