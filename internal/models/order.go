package models

import (
	"github.com/Renal37/go-vendor-panel/internal/utils"
)

// OrderStatus статус доставки заказа. Ось оплаты (PaymentStatus) независима.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusInTransit OrderStatus = "in-transit"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusReturned  OrderStatus = "returned"
)

var knownOrderStatuses = map[OrderStatus]struct{}{
	OrderStatusPending:   {},
	OrderStatusConfirmed: {},
	OrderStatusReady:     {},
	OrderStatusShipped:   {},
	OrderStatusInTransit: {},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
	OrderStatusReturned:  {},
}

// IsValidOrderStatus проверяет, входит ли статус в таксономию заказа.
func IsValidOrderStatus(status OrderStatus) bool {
	_, exists := knownOrderStatuses[status]
	return exists
}

// PaymentStatus статус оплаты заказа. Поле может отсутствовать в ответе сервера.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPending PaymentStatus = "pending"
)

// OrderType определяет вкладку, к которой относится заказ, и обязательность
// выбора транспорта при подтверждении.
type OrderType string

const (
	// OrderTypeIntracity внутригородская доставка за 15 минут.
	OrderTypeIntracity OrderType = "1"
	// OrderTypeMarketplace межгородская доставка маркетплейса.
	OrderTypeMarketplace OrderType = "2"
)

// Типы транспорта, доступные при подтверждении заказа маркетплейса.
const (
	VehicleBike = "bike"
	VehicleVan  = "van"

	// DefaultVehicleType используется, если тип транспорта не был передан.
	DefaultVehicleType = VehicleBike
)

// Location адрес с необязательными координатами.
type Location struct {
	Street    string   `json:"street,omitempty"`
	City      string   `json:"city,omitempty"`
	State     string   `json:"state,omitempty"`
	Country   string   `json:"country,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// LegStatus статус одного плеча маршрута. Жизненный цикл плеча независим
// от статуса родительского заказа.
type LegStatus string

const (
	LegStatusPending        LegStatus = "pending"
	LegStatusDriverAssigned LegStatus = "driver-assigned"
	LegStatusPicked         LegStatus = "picked"
	LegStatusInTransit      LegStatus = "in-transit"
	LegStatusDelivered      LegStatus = "delivered"
	LegStatusCancelled      LegStatus = "cancelled"
)

// RejectedDriver водитель, отказавшийся от плеча, с причиной отказа.
type RejectedDriver struct {
	DriverID string `json:"driverId"`
	Reason   string `json:"reason"`
}

// Leg одно плечо многоэтапного маршрута доставки.
type Leg struct {
	// Sequence порядковый номер плеча, начиная с 1. Порядок только
	// отображается, на клиенте не проверяется.
	Sequence        int                `json:"sequence"`
	Status          LegStatus          `json:"status"`
	From            Location           `json:"from"`
	To              Location           `json:"to"`
	DriverID        string             `json:"driverId,omitempty"`
	RejectedDrivers []RejectedDriver   `json:"rejectedDrivers,omitempty"`
	Cost            float64            `json:"cost,omitempty"`
	StartedAt       *utils.RFC3339Date `json:"startedAt,omitempty"`
	CompletedAt     *utils.RFC3339Date `json:"completedAt,omitempty"`
	VehicleType     string             `json:"vehicleType,omitempty"`
}

// LineItem позиция заказа.
type LineItem struct {
	ProductID  string  `json:"productId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	TotalPrice float64 `json:"totalPrice"`
}

// Party ссылка на участника заказа (покупатель либо продавец).
// Из этого рабочего процесса поля доступны только для чтения.
type Party struct {
	ID    string `json:"_id"`
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Order центральная сущность панели продавца. Создаётся только на сервере:
// клиент читает страницы заказов и запрашивает смену статуса.
type Order struct {
	// ID идентификатор хранения, по нему заказ заменяется в массиве на месте.
	ID string `json:"_id"`
	// OrderID бизнес-идентификатор заказа.
	OrderID string `json:"orderId"`

	Type          OrderType     `json:"type"`
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus,omitempty"`

	SubTotal    float64 `json:"subTotal"`
	ShippingFee float64 `json:"shippingFee"`
	GrandTotal  float64 `json:"grandTotal"`

	Items []LineItem `json:"items"`
	// Legs пустой срез означает, что маршрут ещё не построен.
	Legs []Leg `json:"legs"`

	Pickup Location `json:"pickup"`
	Drop   Location `json:"drop"`

	Customer Party `json:"customer"`
	Vendor   Party `json:"vendor"`

	CreatedAt utils.RFC3339Date `json:"createdAt"`
}

// AssignedDriverID возвращает водителя первого плеча маршрута.
// Пустая строка означает, что водитель ещё не назначен.
func (o Order) AssignedDriverID() string {
	if len(o.Legs) == 0 {
		return ""
	}
	return o.Legs[0].DriverID
}
