package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Renal37/go-vendor-panel/internal/models"
	mock_models "github.com/Renal37/go-vendor-panel/internal/models/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPage(orders []models.Order, total int) *models.OrdersPage {
	return &models.OrdersPage{
		Data:         orders,
		TotalRecords: total,
		CurrentPage:  1,
		PageSize:     models.DefaultPageSize,
	}
}

func testOrders() []models.Order {
	return []models.Order{
		{ID: "a1", OrderID: "ORD-1", Status: models.OrderStatusPending, Type: models.OrderTypeIntracity, Legs: []models.Leg{}},
		{ID: "a2", OrderID: "ORD-2", Status: models.OrderStatusConfirmed, Type: models.OrderTypeMarketplace, Legs: []models.Leg{}},
	}
}

// Повторная выборка с теми же параметрами не накапливает заказы:
// каждая выборка заменяет массив целиком.
func TestFetchIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	apiMock := mock_models.NewMockOrderAPI(ctrl)
	notifierMock := mock_models.NewMockNotifier(ctrl)

	apiMock.EXPECT().
		VendorOrders(gomock.Any(), gomock.Any()).
		Return(testPage(testOrders(), 2), nil).
		Times(2)

	store := NewOrderStoreService(apiMock, notifierMock)

	require.NoError(t, store.Fetch(context.Background(), models.OrderQuery{}))
	first := store.State()

	require.NoError(t, store.Fetch(context.Background(), models.OrderQuery{}))
	second := store.State()

	assert.Equal(t, first.Orders, second.Orders)
	assert.Len(t, second.Orders, 2)
	assert.Equal(t, 2, second.TotalRecords)
	assert.Equal(t, models.LoadSucceeded, second.Status)
}

// Неудачная выборка оставляет устаревшие, но валидные данные на месте
// и поднимает уведомление об ошибке.
func TestFetchFailureKeepsStaleOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	apiMock := mock_models.NewMockOrderAPI(ctrl)
	notifierMock := mock_models.NewMockNotifier(ctrl)

	gomock.InOrder(
		apiMock.EXPECT().
			VendorOrders(gomock.Any(), gomock.Any()).
			Return(testPage(testOrders(), 2), nil),
		apiMock.EXPECT().
			VendorOrders(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("boom")),
	)
	notifierMock.EXPECT().Error(gomock.Any())

	store := NewOrderStoreService(apiMock, notifierMock)

	require.NoError(t, store.Fetch(context.Background(), models.OrderQuery{}))
	require.Error(t, store.Fetch(context.Background(), models.OrderQuery{}))

	state := store.State()
	assert.Equal(t, models.LoadFailed, state.Status)
	assert.Equal(t, "boom", state.Err)
	assert.Len(t, state.Orders, 2)
	assert.Equal(t, 2, state.TotalRecords)
}

// Итоги пагинации берутся из ответа сервера без пересчёта.
func TestFetchTakesServerPagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	apiMock := mock_models.NewMockOrderAPI(ctrl)
	notifierMock := mock_models.NewMockNotifier(ctrl)

	apiMock.EXPECT().
		VendorOrders(gomock.Any(), gomock.Any()).
		Return(&models.OrdersPage{
			Data:         testOrders(),
			TotalRecords: 25,
			CurrentPage:  3,
			PageSize:     10,
		}, nil)

	store := NewOrderStoreService(apiMock, notifierMock)
	require.NoError(t, store.Fetch(context.Background(), models.OrderQuery{Page: 3, PageSize: 10}))

	state := store.State()
	assert.Equal(t, 25, state.TotalRecords)
	assert.Equal(t, 3, state.CurrentPage)
	assert.Equal(t, 10, state.PageSize)
}

// Устаревший ответ медленной выборки не затирает результат более новой.
func TestStaleFetchResponseIsDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	apiMock := mock_models.NewMockOrderAPI(ctrl)
	notifierMock := mock_models.NewMockNotifier(ctrl)

	slowStarted := make(chan struct{})
	release := make(chan struct{})

	staleOrders := []models.Order{{ID: "stale", OrderID: "ORD-STALE", Legs: []models.Leg{}}}
	freshOrders := []models.Order{{ID: "fresh", OrderID: "ORD-FRESH", Legs: []models.Leg{}}}

	apiMock.EXPECT().
		VendorOrders(gomock.Any(), queryWithSearch("old")).
		DoAndReturn(func(context.Context, models.OrderQuery) (*models.OrdersPage, error) {
			close(slowStarted)
			<-release
			return testPage(staleOrders, 1), nil
		})
	apiMock.EXPECT().
		VendorOrders(gomock.Any(), queryWithSearch("new")).
		Return(testPage(freshOrders, 1), nil)

	store := NewOrderStoreService(apiMock, notifierMock)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = store.Fetch(context.Background(), models.OrderQuery{Search: "old"})
	}()

	<-slowStarted
	require.NoError(t, store.Fetch(context.Background(), models.OrderQuery{Search: "new"}))

	close(release)
	wg.Wait()

	state := store.State()
	require.Len(t, state.Orders, 1)
	assert.Equal(t, "fresh", state.Orders[0].ID)
}

// Успешная смена статуса заменяет заказ в массиве на месте, не меняя его позицию.
func TestUpdateStatusReplacesOrderInPlace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	apiMock := mock_models.NewMockOrderAPI(ctrl)
	notifierMock := mock_models.NewMockNotifier(ctrl)

	updated := testOrders()[0]
	updated.Status = models.OrderStatusConfirmed

	apiMock.EXPECT().
		VendorOrders(gomock.Any(), gomock.Any()).
		Return(testPage(testOrders(), 2), nil)
	apiMock.EXPECT().
		UpdateOrderStatus(gomock.Any(), gomock.Any()).
		Return(&updated, nil)
	notifierMock.EXPECT().Success(gomock.Any())

	store := NewOrderStoreService(apiMock, notifierMock)
	require.NoError(t, store.Fetch(context.Background(), models.OrderQuery{}))

	_, err := store.UpdateStatus(context.Background(), models.StatusUpdate{
		OrderID:  "ORD-1",
		Status:   models.OrderStatusConfirmed,
		VendorID: "v-1",
	})
	require.NoError(t, err)

	state := store.State()
	require.Len(t, state.Orders, 2)
	assert.Equal(t, "a1", state.Orders[0].ID)
	assert.Equal(t, models.OrderStatusConfirmed, state.Orders[0].Status)
	assert.Equal(t, "a2", state.Orders[1].ID)
	assert.Equal(t, models.LoadSucceeded, state.UpdateStatus)
}

// Неудачная смена статуса не оставляет частичных изменений в массиве.
func TestUpdateStatusFailureLeavesOrdersUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	apiMock := mock_models.NewMockOrderAPI(ctrl)
	notifierMock := mock_models.NewMockNotifier(ctrl)

	apiMock.EXPECT().
		VendorOrders(gomock.Any(), gomock.Any()).
		Return(testPage(testOrders(), 2), nil)
	apiMock.EXPECT().
		UpdateOrderStatus(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("transition is not allowed"))
	notifierMock.EXPECT().Error(gomock.Any())

	store := NewOrderStoreService(apiMock, notifierMock)
	require.NoError(t, store.Fetch(context.Background(), models.OrderQuery{}))

	_, err := store.UpdateStatus(context.Background(), models.StatusUpdate{
		OrderID:  "ORD-1",
		Status:   models.OrderStatusConfirmed,
		VendorID: "v-1",
	})
	require.Error(t, err)

	state := store.State()
	assert.Equal(t, models.OrderStatusPending, state.Orders[0].Status)
	assert.Equal(t, models.LoadFailed, state.UpdateStatus)
	// Статус выборки списка не зависит от статуса мутации.
	assert.Equal(t, models.LoadSucceeded, state.Status)
}

// Статус вне таксономии отклоняется до обращения к сети.
func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	apiMock := mock_models.NewMockOrderAPI(ctrl)
	notifierMock := mock_models.NewMockNotifier(ctrl)

	store := NewOrderStoreService(apiMock, notifierMock)

	_, err := store.UpdateStatus(context.Background(), models.StatusUpdate{
		OrderID: "ORD-1",
		Status:  "teleported",
	})
	assert.ErrorIs(t, err, ErrUnknownOrderStatus)
}

// Пропущенный тип транспорта заменяется значением по умолчанию.
func TestUpdateStatusDefaultsVehicleType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	apiMock := mock_models.NewMockOrderAPI(ctrl)
	notifierMock := mock_models.NewMockNotifier(ctrl)

	updated := testOrders()[0]
	apiMock.EXPECT().
		UpdateOrderStatus(gomock.Any(), models.StatusUpdate{
			OrderID:     "ORD-1",
			Status:      models.OrderStatusConfirmed,
			VendorID:    "v-1",
			VehicleType: models.DefaultVehicleType,
		}).
		Return(&updated, nil)
	notifierMock.EXPECT().Success(gomock.Any())

	store := NewOrderStoreService(apiMock, notifierMock)

	_, err := store.UpdateStatus(context.Background(), models.StatusUpdate{
		OrderID:  "ORD-1",
		Status:   models.OrderStatusConfirmed,
		VendorID: "v-1",
	})
	require.NoError(t, err)
}

// Подписчики получают снимок после каждого перехода состояния.
func TestSubscribeReceivesSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	apiMock := mock_models.NewMockOrderAPI(ctrl)
	notifierMock := mock_models.NewMockNotifier(ctrl)

	apiMock.EXPECT().
		VendorOrders(gomock.Any(), gomock.Any()).
		Return(testPage(testOrders(), 2), nil)

	store := NewOrderStoreService(apiMock, notifierMock)

	var statuses []models.LoadState
	store.Subscribe(func(state models.OrdersState) {
		statuses = append(statuses, state.Status)
	})

	require.NoError(t, store.Fetch(context.Background(), models.OrderQuery{}))

	assert.Equal(t, []models.LoadState{models.LoadLoading, models.LoadSucceeded}, statuses)
}

// queryWithSearch матчер выборки по строке поиска.
type searchMatcher struct {
	search string
}

func queryWithSearch(search string) gomock.Matcher {
	return searchMatcher{search: search}
}

func (m searchMatcher) Matches(x interface{}) bool {
	query, ok := x.(models.OrderQuery)
	return ok && query.Search == m.search
}

func (m searchMatcher) String() string {
	return "query with search " + m.search
}
