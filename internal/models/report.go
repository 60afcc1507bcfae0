package models

import (
	"github.com/Renal37/go-vendor-panel/internal/utils"
)

// FinancialRow строка финансовой разбивки по заказу продавца.
type FinancialRow struct {
	OrderID       string            `json:"orderId"`
	Date          utils.RFC3339Date `json:"date"`
	SubTotal      float64           `json:"subTotal"`
	ShippingFee   float64           `json:"shippingFee"`
	Commission    float64           `json:"commission"`
	NetPayout     float64           `json:"netPayout"`
	PaymentStatus PaymentStatus     `json:"paymentStatus,omitempty"`
}

// SalesReport агрегированный отчёт о продажах за период.
type SalesReport struct {
	StartDate     utils.RFC3339Date   `json:"startDate"`
	EndDate       utils.RFC3339Date   `json:"endDate"`
	TotalOrders   int                 `json:"totalOrders"`
	TotalSales    float64             `json:"totalSales"`
	TotalShipping float64             `json:"totalShipping"`
	ByStatus      map[OrderStatus]int `json:"byStatus,omitempty"`
}
