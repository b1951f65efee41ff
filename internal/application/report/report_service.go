package report

import (
	"context"

	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/catalog"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/identity"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/ordering"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// inexpensiveCeiling is the highest price shown on the inexpensive
// products report
var inexpensiveCeiling = decimal.NewFromInt(999)

// OrderReportRow is one order on the orders report
type OrderReportRow struct {
	OrderID      uuid.UUID
	CustomerName string
	ItemCount    int
	Total        string
}

// OrdersReport holds the data rendered by the orders report template
type OrdersReport struct {
	Title  string
	Status string
	Rows   []OrderReportRow
}

// ProductReportRow is one product on the inexpensive products report
type ProductReportRow struct {
	Name     string
	Price    string
	Quantity int
	Location string
}

// ProductsReport holds the data rendered by the products report template
type ProductsReport struct {
	Title string
	Rows  []ProductReportRow
}

// ReportService assembles read models for the HTML reports
type ReportService struct {
	orders    ordering.OrderRepository
	products  catalog.ProductRepository
	customers identity.CustomerRepository
}

// NewReportService creates a new report service
func NewReportService(
	orders ordering.OrderRepository,
	products catalog.ProductRepository,
	customers identity.CustomerRepository,
) *ReportService {
	return &ReportService{
		orders:    orders,
		products:  products,
		customers: customers,
	}
}

// OrdersByStatus builds the report of orders in the given state with a
// per-order total across line item product prices
func (s *ReportService) OrdersByStatus(ctx context.Context, status ordering.OrderStatus) (*OrdersReport, error) {
	orders, err := s.orders.FindByStatus(ctx, status)
	if err != nil {
		return nil, err
	}

	title := "Completed Orders"
	if status == ordering.OrderStatusOpen {
		title = "Incomplete Orders"
	}

	report := &OrdersReport{
		Title:  title,
		Status: string(status),
		Rows:   make([]OrderReportRow, 0, len(orders)),
	}

	// Customer lookups repeat across orders, so memoize names
	names := make(map[uuid.UUID]string)

	for i := range orders {
		order := &orders[i]

		name, ok := names[order.CustomerID]
		if !ok {
			customer, err := s.customers.FindByID(ctx, order.CustomerID)
			if err != nil {
				return nil, err
			}
			if customer.User != nil {
				name = customer.User.FullName()
			}
			names[order.CustomerID] = name
		}

		total := decimal.Zero
		for j := range order.LineItems {
			if order.LineItems[j].Product != nil {
				total = total.Add(order.LineItems[j].Product.Price)
			}
		}

		report.Rows = append(report.Rows, OrderReportRow{
			OrderID:      order.ID,
			CustomerName: name,
			ItemCount:    len(order.LineItems),
			Total:        total.StringFixed(2),
		})
	}

	return report, nil
}

// InexpensiveProducts builds the report of products priced at or below
// the ceiling
func (s *ReportService) InexpensiveProducts(ctx context.Context) (*ProductsReport, error) {
	products, err := s.products.FindPricedAtMost(ctx, inexpensiveCeiling)
	if err != nil {
		return nil, err
	}

	report := &ProductsReport{
		Title: "Inexpensive Products",
		Rows:  make([]ProductReportRow, 0, len(products)),
	}
	for i := range products {
		report.Rows = append(report.Rows, ProductReportRow{
			Name:     products[i].Name,
			Price:    products[i].Price.StringFixed(2),
			Quantity: products[i].Quantity,
			Location: products[i].Location,
		})
	}
	return report, nil
}
