package view

import (
	"context"
	"testing"

	"github.com/Renal37/go-vendor-panel/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dispatchCall одна зафиксированная отправка смены статуса.
type dispatchCall struct {
	order       models.Order
	status      models.OrderStatus
	reason      string
	vehicleType string
}

// fakeDispatcher записывает отправки вместо обращения к хранилищу.
type fakeDispatcher struct {
	calls []dispatchCall
	err   error
}

func (f *fakeDispatcher) ChangeOrderStatus(_ context.Context, order models.Order, status models.OrderStatus, reason, vehicleType string) error {
	f.calls = append(f.calls, dispatchCall{order: order, status: status, reason: reason, vehicleType: vehicleType})
	return f.err
}

func TestCardActions(t *testing.T) {
	testCases := []struct {
		testName string
		order    models.Order
		kind     Kind
		expected []Action
	}{
		{
			testName: "Ожидающий запрос предлагает подтверждение и отклонение",
			order:    models.Order{Status: models.OrderStatusPending},
			kind:     KindRequest,
			expected: []Action{ActionApprove, ActionReject, ActionViewInvoice, ActionChatCustomer},
		},
		{
			testName: "Подтверждённый запрос предлагает отметку готовности",
			order:    models.Order{Status: models.OrderStatusConfirmed},
			kind:     KindRequest,
			expected: []Action{ActionMarkReady, ActionViewInvoice, ActionChatCustomer},
		},
		{
			testName: "В общем списке переходы не предлагаются",
			order:    models.Order{Status: models.OrderStatusPending},
			kind:     KindWorkflow,
			expected: []Action{ActionViewInvoice, ActionChatCustomer},
		},
		{
			testName: "Назначенный водитель добавляет действия с водителем",
			order: models.Order{
				Status: models.OrderStatusShipped,
				Legs:   []models.Leg{{Sequence: 1, DriverID: "d-9"}},
			},
			kind:     KindWorkflow,
			expected: []Action{ActionViewInvoice, ActionChatCustomer, ActionViewDriver, ActionChatDriver},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			card := NewCard(tc.order, tc.kind, &fakeDispatcher{})
			assert.Equal(t, tc.expected, card.Actions())
		})
	}
}

// Внутригородской заказ подтверждается сразу, без модального окна выбора
// транспорта и без дополнительной нагрузки.
func TestApproveIntracityDispatchesDirectly(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	card := NewCard(models.Order{
		ID:      "a1",
		OrderID: "ORD-1",
		Type:    models.OrderTypeIntracity,
		Status:  models.OrderStatusPending,
	}, KindRequest, dispatcher)

	require.NoError(t, card.Approve(context.Background()))

	require.Len(t, dispatcher.calls, 1)
	assert.Equal(t, models.OrderStatusConfirmed, dispatcher.calls[0].status)
	assert.Empty(t, dispatcher.calls[0].vehicleType)
	assert.Equal(t, ModalNone, card.Modal())
}

// Подтверждение заказа маркетплейса откладывается до выбора транспорта.
func TestApproveMarketplaceDefersToVehicleModal(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	card := NewCard(models.Order{
		ID:      "a2",
		OrderID: "ORD-2",
		Type:    models.OrderTypeMarketplace,
		Status:  models.OrderStatusPending,
	}, KindRequest, dispatcher)

	require.NoError(t, card.Approve(context.Background()))

	// Отправки ещё не было, открыто окно выбора транспорта.
	assert.Empty(t, dispatcher.calls)
	assert.Equal(t, ModalVehicle, card.Modal())

	require.NoError(t, card.ConfirmVehicle(context.Background(), models.VehicleVan))

	require.Len(t, dispatcher.calls, 1)
	assert.Equal(t, models.OrderStatusConfirmed, dispatcher.calls[0].status)
	assert.Equal(t, models.VehicleVan, dispatcher.calls[0].vehicleType)
	assert.Equal(t, ModalNone, card.Modal())
}

func TestConfirmVehicleRejectsUnknownType(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	card := NewCard(models.Order{Type: models.OrderTypeMarketplace}, KindRequest, dispatcher)

	err := card.ConfirmVehicle(context.Background(), "car")

	assert.ErrorIs(t, err, ErrUnknownVehicleType)
	assert.Empty(t, dispatcher.calls)
}

// Пустая причина блокирует подтверждение отклонения: отправка не выполняется.
func TestRejectRequiresReason(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	card := NewCard(models.Order{OrderID: "ORD-1"}, KindRequest, dispatcher)

	card.OpenReject()
	assert.False(t, card.CanConfirmReject())

	card.SetRejectReason("   ")
	assert.False(t, card.CanConfirmReject())

	err := card.ConfirmReject(context.Background())
	assert.ErrorIs(t, err, ErrEmptyRejectReason)
	assert.Empty(t, dispatcher.calls)
}

// Отклонение несёт обрезанную причину, а окно и поле очищаются после отправки.
func TestRejectDispatchesWithReason(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	card := NewCard(models.Order{OrderID: "ORD-1"}, KindRequest, dispatcher)

	card.OpenReject()
	card.SetRejectReason("  слишком далеко  ")
	require.True(t, card.CanConfirmReject())

	require.NoError(t, card.ConfirmReject(context.Background()))

	require.Len(t, dispatcher.calls, 1)
	assert.Equal(t, models.OrderStatusCancelled, dispatcher.calls[0].status)
	assert.Equal(t, "слишком далеко", dispatcher.calls[0].reason)
	assert.Equal(t, ModalNone, card.Modal())
	assert.Empty(t, card.RejectReason())
}

// Поле причины очищается и при неудачной отправке: об ошибке уведомляет
// отправляющая сторона.
func TestRejectClearsReasonOnFailure(t *testing.T) {
	dispatcher := &fakeDispatcher{err: assert.AnError}
	card := NewCard(models.Order{OrderID: "ORD-1"}, KindRequest, dispatcher)

	card.OpenReject()
	card.SetRejectReason("дубликат")

	err := card.ConfirmReject(context.Background())

	assert.Error(t, err)
	assert.Equal(t, ModalNone, card.Modal())
	assert.Empty(t, card.RejectReason())
}

func TestMarkReady(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	card := NewCard(models.Order{
		OrderID: "ORD-1",
		Status:  models.OrderStatusConfirmed,
	}, KindRequest, dispatcher)

	require.NoError(t, card.MarkReady(context.Background()))

	require.Len(t, dispatcher.calls, 1)
	assert.Equal(t, models.OrderStatusReady, dispatcher.calls[0].status)
	assert.Empty(t, dispatcher.calls[0].vehicleType)
}

// Открытие нового модального окна закрывает предыдущее: одновременно
// открыто не более одного.
func TestSingleModalInvariant(t *testing.T) {
	card := NewCard(models.Order{}, KindWorkflow, &fakeDispatcher{})

	card.OpenModal(ModalInvoice)
	assert.Equal(t, ModalInvoice, card.Modal())

	card.OpenModal(ModalRoute)
	assert.Equal(t, ModalRoute, card.Modal())

	card.CloseModal()
	assert.Equal(t, ModalNone, card.Modal())
}
