package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/utafrali/storefront-insights/internal/analytics"
	"github.com/utafrali/storefront-insights/internal/domain"
	"github.com/utafrali/storefront-insights/internal/repository"
	apperrors "github.com/utafrali/storefront-insights/pkg/errors"
	"github.com/utafrali/storefront-insights/pkg/logger"
)

// Hard limits on report inputs. Reports are bounded by these, not by
// caller-supplied pagination.
const (
	recentOrdersLimit  = 20
	allReviewsLimit    = 100
	ratedOrdersLimit   = 1000
	topProductsLimit   = 10
	monthlyTrendLimit  = 12
	recentActivityDays = 30
)

// ReportService assembles the dashboard reports. Each report is computed per
// request from the record store; nothing is cached or shared across requests.
//
// Failure policy: queries inside a fan-out degrade to documented defaults and
// are logged with their query name. A report fails as a whole only when its
// base data cannot be fetched at all.
type ReportService struct {
	orders   repository.OrderRepository
	items    repository.OrderItemRepository
	users    repository.UserRepository
	products repository.ProductRepository
	logger   *slog.Logger
	now      func() time.Time
}

// NewReportService creates a new report service.
func NewReportService(
	orders repository.OrderRepository,
	items repository.OrderItemRepository,
	users repository.UserRepository,
	products repository.ProductRepository,
	log *slog.Logger,
) *ReportService {
	return &ReportService{
		orders:   orders,
		items:    items,
		users:    users,
		products: products,
		logger:   log,
		now:      time.Now,
	}
}

func (s *ReportService) log(ctx context.Context) *slog.Logger {
	return logger.WithContext(ctx, s.logger)
}

// Overview assembles the dashboard snapshot: monthly order count and revenue,
// customer and product counts, weekly order count, and today's recent orders.
// The six queries run concurrently; any one of them failing degrades its
// field to a zero value. Only all six failing makes the report unavailable.
func (s *ReportService) Overview(ctx context.Context) (*domain.DashboardSnapshot, error) {
	now := s.now()
	day := analytics.DayWindow(now)
	week := analytics.WeekWindow(now)
	month := analytics.MonthWindow(now)
	log := s.log(ctx)

	monthlyOrders := analytics.Dispatch(ctx, log, "monthly orders", func(ctx context.Context) ([]domain.Order, error) {
		return s.orders.ListBetween(ctx, month.Start, month.End)
	})
	recentOrders := analytics.Dispatch(ctx, log, "recent orders", func(ctx context.Context) ([]domain.OrderWithUser, error) {
		return s.orders.ListRecentWithUsers(ctx, day.Start, day.End, recentOrdersLimit)
	})
	counts := analytics.Settle(ctx, log, []analytics.Query[int]{
		{Name: "monthly order count", Run: func(ctx context.Context) (int, error) {
			return s.orders.CountBetween(ctx, month.Start, month.End)
		}},
		{Name: "customer count", Run: func(ctx context.Context) (int, error) {
			return s.users.Count(ctx)
		}},
		{Name: "product count", Run: func(ctx context.Context) (int, error) {
			return s.products.Count(ctx)
		}},
		{Name: "weekly order count", Run: func(ctx context.Context) (int, error) {
			return s.orders.CountBetween(ctx, week.Start, week.End)
		}},
	})

	monthlyCountO, customerCountO, productCountO, weeklyCountO := counts[0], counts[1], counts[2], counts[3]
	monthlyOrdersO := monthlyOrders.Wait()
	recentOrdersO := recentOrders.Wait()

	if monthlyCountO.Failed() && monthlyOrdersO.Failed() && customerCountO.Failed() &&
		productCountO.Failed() && weeklyCountO.Failed() && recentOrdersO.Failed() {
		return nil, apperrors.ReportUnavailable("dashboard overview", errors.Join(
			monthlyCountO.Err(), monthlyOrdersO.Err(), customerCountO.Err(),
			productCountO.Err(), weeklyCountO.Err(), recentOrdersO.Err(),
		))
	}

	orders := monthlyOrdersO.ValueOr([]domain.Order{})
	amounts := make([]string, len(orders))
	for i := range orders {
		amounts[i] = orders[i].TotalAmount
	}

	recent := make([]domain.RecentOrder, 0, recentOrdersLimit)
	for _, o := range recentOrdersO.ValueOr([]domain.OrderWithUser{}) {
		recent = append(recent, formatRecentOrder(o))
	}

	return &domain.DashboardSnapshot{
		TotalOrders:     monthlyCountO.ValueOr(0),
		Revenue:         analytics.Round2(analytics.SumAmounts(amounts)),
		ActiveCustomers: customerCountO.ValueOr(0),
		Products:        productCountO.ValueOr(0),
		WeeklyOrders:    weeklyCountO.ValueOr(0),
		MonthlyOrders:   monthlyCountO.ValueOr(0),
		RecentOrders:    recent,
	}, nil
}

func formatRecentOrder(o domain.OrderWithUser) domain.RecentOrder {
	name := domain.NotAvailable
	email := domain.NotAvailable
	if o.User != nil {
		if full := o.User.FullName(); full != "" {
			name = full
		}
		if o.User.Email != "" {
			email = o.User.Email
		}
	}

	tracking := domain.NotAvailable
	if o.TrackingNumber != nil && *o.TrackingNumber != "" {
		tracking = *o.TrackingNumber
	}

	return domain.RecentOrder{
		OrderID:        o.OrderID,
		CustomerName:   name,
		CustomerEmail:  email,
		OrderDate:      o.OrderDate,
		TotalAmount:    o.TotalAmount,
		Currency:       o.Currency,
		PaymentStatus:  o.PaymentStatus,
		ShippingStatus: o.ShippingStatus,
		TrackingNumber: tracking,
	}
}

// Analytics assembles the month-to-date daily order/revenue time series.
func (s *ReportService) Analytics(ctx context.Context) (*domain.AnalyticsReport, error) {
	month := analytics.MonthWindow(s.now())

	orders, err := s.orders.ListBetween(ctx, month.Start, month.End)
	if err != nil {
		return nil, apperrors.ReportUnavailable("analytics", err)
	}

	return &domain.AnalyticsReport{
		DailyStats: analytics.DailyStats(orders),
		Period:     domain.Period{Start: month.Start, End: month.End},
	}, nil
}

// TopProducts returns up to ten products ranked by revenue over the current
// month.
func (s *ReportService) TopProducts(ctx context.Context) ([]domain.ProductStat, error) {
	month := analytics.MonthWindow(s.now())

	items, err := s.items.ListSoldBetween(ctx, month.Start, month.End)
	if err != nil {
		return nil, apperrors.ReportUnavailable("top products", err)
	}

	return analytics.TopProducts(items, topProductsLimit), nil
}

// OrderStatus returns the payment and shipping status distributions over all
// orders.
func (s *ReportService) OrderStatus(ctx context.Context) (*domain.StatusReport, error) {
	pairs, err := s.orders.ListStatuses(ctx)
	if err != nil {
		return nil, apperrors.ReportUnavailable("order status", err)
	}

	payment := make([]string, len(pairs))
	shipping := make([]string, len(pairs))
	for i, p := range pairs {
		payment[i] = p.PaymentStatus
		shipping[i] = p.ShippingStatus
	}

	return &domain.StatusReport{
		PaymentStatusDistribution:  analytics.StatusDistribution(payment),
		ShippingStatusDistribution: analytics.StatusDistribution(shipping),
		TotalOrders:                len(pairs),
	}, nil
}

// RatingDashboard assembles the rating report: overall average and
// distribution over every valid rating, 30-day review activity counters, and
// the hundred most recent reviews joined to their reviewers and products.
// The two base order queries are fatal on error; the user, item, and product
// enrichment queries degrade to sentinel values.
func (s *ReportService) RatingDashboard(ctx context.Context) (*domain.RatingReport, error) {
	log := s.log(ctx)

	rated := analytics.Dispatch(ctx, log, "rated orders", func(ctx context.Context) ([]domain.RatedOrder, error) {
		return s.orders.ListRated(ctx, 0)
	})
	reviewed := analytics.Dispatch(ctx, log, "reviewed orders", func(ctx context.Context) ([]domain.ReviewedOrder, error) {
		return s.orders.ListReviewed(ctx, 0)
	})

	ratedO := rated.Wait()
	reviewedO := reviewed.Wait()
	if ratedO.Failed() || reviewedO.Failed() {
		return nil, apperrors.ReportUnavailable("ratings", errors.Join(ratedO.Err(), reviewedO.Err()))
	}

	ratedOrders := ratedO.ValueOr(nil)
	reviewedOrders := reviewedO.ValueOr(nil)

	ratings := analytics.ValidRatings(ratedOrders)
	since := s.now().AddDate(0, 0, -recentActivityDays)

	recent := reviewedOrders
	if len(recent) > allReviewsLimit {
		recent = recent[:allReviewsLimit]
	}

	return &domain.RatingReport{
		OverallRating:      analytics.RoundFloat2(analytics.AverageRating(ratings)),
		RatingDistribution: analytics.RatingDistribution(ratings),
		RecentActivity:     analytics.CountRecentActivity(reviewedOrders, since),
		AllReviews:         s.buildReviewRecords(ctx, recent),
	}, nil
}

// buildReviewRecords joins reviewed orders to their users, line items, and
// products. Each enrichment query that fails degrades its column to the
// documented sentinel instead of failing the report.
func (s *ReportService) buildReviewRecords(ctx context.Context, orders []domain.ReviewedOrder) []domain.ReviewRecord {
	log := s.log(ctx)

	userIDs := analytics.UniqueKeys(orders, func(o domain.ReviewedOrder) string { return o.UserID })
	orderIDs := analytics.UniqueKeys(orders, func(o domain.ReviewedOrder) string { return o.OrderID })

	users := analytics.Dispatch(ctx, log, "review users", func(ctx context.Context) ([]domain.User, error) {
		return s.users.ListByIDs(ctx, userIDs)
	})
	items := analytics.Dispatch(ctx, log, "review order items", func(ctx context.Context) ([]domain.OrderItem, error) {
		return s.items.ListByOrderIDs(ctx, orderIDs)
	})

	allItems := items.Wait().ValueOr([]domain.OrderItem{})
	productIDs := analytics.UniqueKeys(allItems, func(i domain.OrderItem) string { return i.ProductID })

	var allProducts []domain.Product
	if len(productIDs) > 0 {
		products, err := s.products.ListByIDs(ctx, productIDs)
		if err != nil {
			log.ErrorContext(ctx, "report query failed",
				slog.String("query", "review products"),
				slog.String("error", err.Error()),
			)
		} else {
			allProducts = products
		}
	}

	userByID := analytics.BuildLookup(users.Wait().ValueOr([]domain.User{}), func(u domain.User) string { return u.UserID })
	itemsByOrder := analytics.GroupBy(allItems, func(i domain.OrderItem) string { return i.OrderID })
	productByID := analytics.BuildLookup(allProducts, func(p domain.Product) string { return p.ProductID })

	records := make([]domain.ReviewRecord, 0, len(orders))
	for i := range orders {
		o := &orders[i]

		username := domain.UnknownUser
		email := domain.NoEmail
		if u, ok := userByID[o.UserID]; ok {
			if full := u.FullName(); full != "" {
				username = full
			}
			if u.Email != "" {
				email = u.Email
			}
		}

		records = append(records, domain.ReviewRecord{
			Username:    username,
			Email:       email,
			OrderID:     o.OrderID,
			Rating:      o.CustomerRating,
			Review:      derefString(o.CustomerReview),
			ProductName: analytics.ProductLabel(itemsByOrder[o.OrderID], productByID),
		})
	}
	return records
}

// RatingStats returns the monthly average-rating trend over the most recent
// rated orders: up to twelve months, newest first, plus the total count of
// rated orders considered.
func (s *ReportService) RatingStats(ctx context.Context) (*domain.RatingStats, error) {
	orders, err := s.orders.ListRated(ctx, ratedOrdersLimit)
	if err != nil {
		return nil, apperrors.ReportUnavailable("rating stats", err)
	}

	return &domain.RatingStats{
		MonthlyAverages: analytics.MonthlyRatingAverages(orders, monthlyTrendLimit),
		TotalReviews:    len(orders),
	}, nil
}

// ProductReviews assembles the review report for one product. A product with
// no order lines yields the empty-but-successful shape. The item and order
// queries are fatal on error; the user join degrades to sentinels.
func (s *ReportService) ProductReviews(ctx context.Context, productID string) (*domain.ProductReviewReport, error) {
	items, err := s.items.ListByProductID(ctx, productID)
	if err != nil {
		return nil, apperrors.ReportUnavailable("product reviews", err)
	}
	if len(items) == 0 {
		return &domain.ProductReviewReport{ProductReviews: []domain.ProductReview{}}, nil
	}

	orderIDs := analytics.UniqueKeys(items, func(i domain.OrderItem) string { return i.OrderID })
	orders, err := s.orders.ListReviewedByIDs(ctx, orderIDs)
	if err != nil {
		return nil, apperrors.ReportUnavailable("product reviews", err)
	}

	userIDs := analytics.UniqueKeys(orders, func(o domain.ReviewedOrder) string { return o.UserID })
	users := analytics.Dispatch(ctx, s.log(ctx), "product review users", func(ctx context.Context) ([]domain.User, error) {
		return s.users.ListByIDs(ctx, userIDs)
	})
	userByID := analytics.BuildLookup(users.Wait().ValueOr([]domain.User{}), func(u domain.User) string { return u.UserID })

	reviews := make([]domain.ProductReview, 0, len(orders))
	for i := range orders {
		o := &orders[i]

		username := domain.UnknownUser
		email := domain.NoEmail
		if u, ok := userByID[o.UserID]; ok {
			if full := u.FullName(); full != "" {
				username = full
			}
			if u.Email != "" {
				email = u.Email
			}
		}

		reviews = append(reviews, domain.ProductReview{
			Username:  username,
			Email:     email,
			OrderID:   o.OrderID,
			Rating:    o.CustomerRating,
			Review:    derefString(o.CustomerReview),
			CreatedAt: o.CreatedAt,
		})
	}

	return &domain.ProductReviewReport{
		ProductReviews: reviews,
		AverageRating:  analytics.RoundFloat2(analytics.AverageRating(analytics.ValidRatings(orders))),
		TotalReviews:   len(orders),
	}, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
