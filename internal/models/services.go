package models

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/mock_api.go . OrderAPI
type OrderAPI interface {
	VendorOrders(ctx context.Context, query OrderQuery) (*OrdersPage, error)

	UpdateOrderStatus(ctx context.Context, update StatusUpdate) (*Order, error)

	FinancialBreakdown(ctx context.Context, page, pageSize int, search string) ([]FinancialRow, error)

	SalesReport(ctx context.Context, start, end time.Time) (*SalesReport, error)
}

//go:generate mockgen -destination=mocks/mock_store.go . OrderStore
type OrderStore interface {
	State() OrdersState

	Subscribe(listener func(OrdersState))

	Fetch(ctx context.Context, query OrderQuery) error

	UpdateStatus(ctx context.Context, update StatusUpdate) (*Order, error)
}

//go:generate mockgen -destination=mocks/mock_token.go . TokenService
type TokenService interface {
	Token() (string, error)

	VendorID() (string, error)
}

//go:generate mockgen -destination=mocks/mock_notifier.go . Notifier
type Notifier interface {
	Success(message string)

	Error(message string)
}
