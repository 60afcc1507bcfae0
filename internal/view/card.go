package view

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/Renal37/go-vendor-panel/internal/models"
)

// Определяем ошибки карточки заказа.
var (
	ErrEmptyRejectReason  = errors.New("причина отклонения не заполнена")
	ErrUnknownVehicleType = errors.New("недопустимый тип транспорта")
)

// Kind рабочий процесс, в котором показана карточка.
type Kind string

const (
	// KindRequest карточка в списке новых запросов.
	KindRequest Kind = "request"
	// KindWorkflow карточка в общем списке заказов.
	KindWorkflow Kind = "workflow"
)

// Modal варианты модального окна карточки. Поле одно, поэтому инвариант
// «открыто не более одного модального окна» обеспечен конструкцией.
type Modal string

const (
	ModalNone     Modal = ""
	ModalInvoice  Modal = "invoice"
	ModalDriver   Modal = "driver"
	ModalProducts Modal = "products"
	ModalRoute    Modal = "route"
	ModalVehicle  Modal = "vehicle"
	ModalReject   Modal = "reject"
)

// Action действие, доступное на карточке заказа.
type Action string

const (
	ActionApprove      Action = "approve"
	ActionReject       Action = "reject"
	ActionMarkReady    Action = "mark-ready"
	ActionViewInvoice  Action = "view-invoice"
	ActionChatCustomer Action = "chat-customer"
	ActionViewDriver   Action = "view-driver"
	ActionChatDriver   Action = "chat-driver"
)

type statusDispatcher interface {
	ChangeOrderStatus(ctx context.Context, order models.Order, status models.OrderStatus, reason, vehicleType string) error
}

// Card карточка одного заказа: набор доступных действий зависит от пары
// (рабочий процесс, статус), детальные представления открываются в модальных
// окнах. Легальность перехода окончательно проверяет сервер; карточка лишь
// не показывает заведомо недоступные действия.
type Card struct {
	order      models.Order
	kind       Kind
	dispatcher statusDispatcher

	mu           sync.Mutex
	modal        Modal
	rejectReason string
}

// NewCard создает карточку заказа для заданного рабочего процесса.
func NewCard(order models.Order, kind Kind, dispatcher statusDispatcher) *Card {
	return &Card{order: order, kind: kind, dispatcher: dispatcher}
}

// Order возвращает заказ карточки.
func (c *Card) Order() models.Order {
	return c.order
}

// Actions возвращает действия, доступные для текущей пары (процесс, статус).
// Счёт и чат с покупателем доступны всегда; действия с водителем появляются,
// когда на первом плече назначен водитель.
func (c *Card) Actions() []Action {
	actions := []Action{}

	if c.kind == KindRequest {
		switch c.order.Status {
		case models.OrderStatusPending:
			actions = append(actions, ActionApprove, ActionReject)
		case models.OrderStatusConfirmed:
			actions = append(actions, ActionMarkReady)
		}
	}

	actions = append(actions, ActionViewInvoice, ActionChatCustomer)

	if c.order.AssignedDriverID() != "" {
		actions = append(actions, ActionViewDriver, ActionChatDriver)
	}

	return actions
}

// Modal возвращает открытое модальное окно карточки.
func (c *Card) Modal() Modal {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.modal
}

// OpenModal открывает модальное окно, закрывая открытое ранее.
func (c *Card) OpenModal(modal Modal) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.modal = modal
}

// CloseModal закрывает модальное окно карточки.
func (c *Card) CloseModal() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.modal = ModalNone
}

// Approve подтверждает запрос. Для заказа маркетплейса переход откладывается
// до выбора транспорта: вместо отправки открывается модальное окно выбора.
// Внутригородской заказ подтверждается сразу без дополнительной нагрузки.
func (c *Card) Approve(ctx context.Context) error {
	if c.order.Type == models.OrderTypeMarketplace {
		c.OpenModal(ModalVehicle)
		return nil
	}

	return c.dispatcher.ChangeOrderStatus(ctx, c.order, models.OrderStatusConfirmed, "", "")
}

// ConfirmVehicle завершает подтверждение заказа маркетплейса выбранным
// транспортом. Модальное окно закрывается независимо от исхода отправки.
func (c *Card) ConfirmVehicle(ctx context.Context, vehicleType string) error {
	if vehicleType != models.VehicleBike && vehicleType != models.VehicleVan {
		return ErrUnknownVehicleType
	}

	defer c.CloseModal()

	return c.dispatcher.ChangeOrderStatus(ctx, c.order, models.OrderStatusConfirmed, "", vehicleType)
}

// OpenReject открывает модальное окно с причиной отклонения.
func (c *Card) OpenReject() {
	c.OpenModal(ModalReject)
}

// SetRejectReason обновляет текст причины отклонения.
func (c *Card) SetRejectReason(reason string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rejectReason = reason
}

// RejectReason возвращает текущий текст причины отклонения.
func (c *Card) RejectReason() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.rejectReason
}

// CanConfirmReject сообщает, активна ли кнопка подтверждения отклонения:
// причина обязана быть непустой после обрезки пробелов.
func (c *Card) CanConfirmReject() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return strings.TrimSpace(c.rejectReason) != ""
}

// ConfirmReject отклоняет запрос с указанной причиной. Модальное окно
// закрывается и поле причины очищается независимо от исхода отправки:
// об ошибке уведомляет отправляющая сторона.
func (c *Card) ConfirmReject(ctx context.Context) error {
	c.mu.Lock()
	reason := strings.TrimSpace(c.rejectReason)
	c.mu.Unlock()

	if reason == "" {
		// Кнопка отключена при пустой причине; прямой вызов также не проходит.
		return ErrEmptyRejectReason
	}

	defer func() {
		c.mu.Lock()
		c.modal = ModalNone
		c.rejectReason = ""
		c.mu.Unlock()
	}()

	return c.dispatcher.ChangeOrderStatus(ctx, c.order, models.OrderStatusCancelled, reason, "")
}

// MarkReady переводит подтверждённый заказ в готовность без дополнительной
// нагрузки.
func (c *Card) MarkReady(ctx context.Context) error {
	return c.dispatcher.ChangeOrderStatus(ctx, c.order, models.OrderStatusReady, "", "")
}
