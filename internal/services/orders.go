package services

import (
	"context"
	"errors"
	"sync"

	"github.com/Renal37/go-vendor-panel/internal/logger"
	"github.com/Renal37/go-vendor-panel/internal/models"
	"go.uber.org/zap"
)

// Определяем ошибки, связанные с хранилищем заказов.
var (
	ErrUnknownOrderStatus = errors.New("недопустимый статус заказа")
)

type orderAPI interface {
	VendorOrders(ctx context.Context, query models.OrderQuery) (*models.OrdersPage, error)

	UpdateOrderStatus(ctx context.Context, update models.StatusUpdate) (*models.Order, error)
}

type storeNotifier interface {
	Success(message string)

	Error(message string)
}

// OrderStoreService единственный владелец массива заказов. Представления
// читают снимки состояния и отправляют намерения; массив напрямую они не
// изменяют. Выборка заменяет массив целиком, смена статуса заменяет один
// заказ на месте по идентификатору хранения.
type OrderStoreService struct {
	api      orderAPI
	notifier storeNotifier

	mu        sync.Mutex
	state     models.OrdersState
	listeners []func(models.OrdersState)

	// issued номер последней выданной выборки. Ответ с меньшим номером
	// устарел и отбрасывается, чтобы медленный запрос не затёр свежие данные.
	issued uint64
}

// NewOrderStoreService создает хранилище заказов поверх клиента платформы.
func NewOrderStoreService(api orderAPI, notifier storeNotifier) *OrderStoreService {
	return &OrderStoreService{
		api:      api,
		notifier: notifier,
		state: models.OrdersState{
			Orders:        []models.Order{},
			Status:        models.LoadIdle,
			UpdateStatus:  models.LoadIdle,
			CurrentPage:   models.DefaultPage,
			PageSize:      models.DefaultPageSize,
			SortKey:       models.DefaultSortKey,
			SortDirection: models.SortDesc,
		},
	}
}

// State возвращает снимок текущего состояния хранилища.
func (s *OrderStoreService) State() models.OrdersState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

// Subscribe регистрирует подписчика на изменения состояния. Подписчики
// вызываются после каждого перехода состояния со свежим снимком.
func (s *OrderStoreService) Subscribe(listener func(models.OrdersState)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = append(s.listeners, listener)
}

// Fetch выполняет ровно один сетевой вызов и заменяет массив заказов
// страницей из ответа. Итоги пагинации берутся из ответа сервера как есть.
// При ошибке массив остаётся прежним: устаревшие данные лучше пустого списка.
func (s *OrderStoreService) Fetch(ctx context.Context, query models.OrderQuery) error {
	query = query.Normalize()

	s.mu.Lock()
	s.issued++
	seq := s.issued
	s.state.Status = models.LoadLoading
	s.state.SortKey = query.SortKey
	s.state.SortDirection = query.SortDirection
	s.mu.Unlock()
	s.publish()

	page, err := s.api.VendorOrders(ctx, query)

	s.mu.Lock()
	if seq != s.issued {
		// Пока шёл запрос, была выдана более новая выборка.
		s.mu.Unlock()
		logger.Log.Info("stale fetch response discarded",
			zap.Uint64("seq", seq),
			zap.Int("page", query.Page),
		)
		return nil
	}

	if err != nil {
		s.state.Status = models.LoadFailed
		s.state.Err = err.Error()
		s.mu.Unlock()
		s.publish()

		logger.Log.Error("failed to fetch vendor orders", zap.Error(err))
		s.notifier.Error("Не удалось загрузить заказы: " + err.Error())

		return err
	}

	s.state.Orders = page.Data
	s.state.TotalRecords = page.TotalRecords
	s.state.CurrentPage = page.CurrentPage
	s.state.PageSize = page.PageSize
	s.state.Status = models.LoadSucceeded
	s.state.Err = ""
	s.mu.Unlock()
	s.publish()

	return nil
}

// UpdateStatus запрашивает смену статуса заказа. При успехе заказ заменяется
// в массиве на месте по идентификатору хранения; повторная выборка не
// выполняется — если нужна ресинхронизация пагинации и фильтров, вызывающая
// сторона запрашивает её явно. При ошибке массив не трогается.
func (s *OrderStoreService) UpdateStatus(ctx context.Context, update models.StatusUpdate) (*models.Order, error) {
	if !models.IsValidOrderStatus(update.Status) {
		return nil, ErrUnknownOrderStatus
	}

	if update.VehicleType == "" {
		update.VehicleType = models.DefaultVehicleType
	}

	s.mu.Lock()
	s.state.UpdateStatus = models.LoadLoading
	s.mu.Unlock()
	s.publish()

	order, err := s.api.UpdateOrderStatus(ctx, update)

	if err != nil {
		s.mu.Lock()
		s.state.UpdateStatus = models.LoadFailed
		s.mu.Unlock()
		s.publish()

		logger.Log.Error("failed to update order status",
			zap.String("orderID", update.OrderID),
			zap.String("status", string(update.Status)),
			zap.Error(err),
		)
		s.notifier.Error("Не удалось изменить статус заказа: " + err.Error())

		return nil, err
	}

	s.mu.Lock()
	for i := range s.state.Orders {
		if s.state.Orders[i].ID == order.ID {
			// Позиция заказа в массиве стабильна при обновлении на месте.
			s.state.Orders[i] = *order
			break
		}
	}
	s.state.UpdateStatus = models.LoadSucceeded
	s.mu.Unlock()
	s.publish()

	logger.Log.Info("order status updated",
		zap.String("orderID", update.OrderID),
		zap.String("status", string(update.Status)),
	)
	s.notifier.Success("Статус заказа обновлён")

	return order, nil
}

// snapshot собирает копию состояния. Вызывается под мьютексом.
func (s *OrderStoreService) snapshot() models.OrdersState {
	state := s.state
	state.Orders = make([]models.Order, len(s.state.Orders))
	copy(state.Orders, s.state.Orders)
	return state
}

// publish рассылает свежий снимок всем подписчикам вне мьютекса.
func (s *OrderStoreService) publish() {
	s.mu.Lock()
	state := s.snapshot()
	listeners := make([]func(models.OrdersState), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, listener := range listeners {
		listener(state)
	}
}
