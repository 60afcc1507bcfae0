package view

import (
	"context"
	"math"
	"sync"

	"github.com/Renal37/go-vendor-panel/internal/logger"
	"github.com/Renal37/go-vendor-panel/internal/models"
	"github.com/Renal37/go-vendor-panel/internal/services"
	"go.uber.org/zap"
)

// Variant вариант списка заказов.
type Variant string

const (
	// VariantAllOrders вкладка со всеми заказами продавца.
	VariantAllOrders Variant = "orders"
	// VariantRequests вкладка с новыми запросами (ожидающие и подтверждённые).
	VariantRequests Variant = "requests"
)

// requestStatuses статусы, которыми по умолчанию ограничен список запросов.
var requestStatuses = []string{
	string(models.OrderStatusPending),
	string(models.OrderStatusConfirmed),
}

// ListController владеет локальным состоянием списка заказов: активной
// вкладкой, фильтром по статусу, строкой поиска и пагинацией. Любое
// изменение этих параметров запускает ровно одну выборку с сбросом на
// первую страницу; ввод поиска дополнительно проходит через дебаунс.
type ListController struct {
	ctx     context.Context
	variant Variant
	store   models.OrderStore
	tokens  models.TokenService
	search  *services.Debouncer

	mu              sync.Mutex
	tab             models.OrderType
	statuses        []string
	searchText      string
	committedSearch string
	page            int
	pageSize        int
	sortKey         string
	sortDir         models.SortDirection
	loadingOrderID  string
}

// NewListController создает контроллер списка для заданного варианта.
// Контекст используется задачами дебаунса, переживающими вызов SetSearch.
func NewListController(ctx context.Context, variant Variant, store models.OrderStore, tokens models.TokenService, debounce *services.Debouncer) *ListController {
	c := &ListController{
		ctx:      ctx,
		variant:  variant,
		store:    store,
		tokens:   tokens,
		search:   debounce,
		tab:      models.OrderTypeIntracity,
		page:     models.DefaultPage,
		pageSize: models.DefaultPageSize,
		sortKey:  models.DefaultSortKey,
		sortDir:  models.SortDesc,
	}

	if variant == VariantRequests {
		c.statuses = append([]string{}, requestStatuses...)
	}

	return c
}

// Query собирает параметры выборки из текущего состояния контроллера.
// Для поиска используется применённое после дебаунса значение.
func (c *ListController) Query() models.OrderQuery {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.queryLocked()
}

func (c *ListController) queryLocked() models.OrderQuery {
	return models.OrderQuery{
		Page:          c.page,
		PageSize:      c.pageSize,
		SortKey:       c.sortKey,
		SortDirection: c.sortDir,
		Search:        c.committedSearch,
		Status:        append([]string{}, c.statuses...),
		Type:          c.tab,
	}
}

// Refresh запускает выборку с текущими параметрами.
func (c *ListController) Refresh(ctx context.Context) error {
	return c.store.Fetch(ctx, c.Query())
}

// SetTab переключает вкладку и перезапрашивает список с первой страницы.
func (c *ListController) SetTab(ctx context.Context, tab models.OrderType) error {
	c.mu.Lock()
	c.tab = tab
	c.page = models.DefaultPage
	c.mu.Unlock()

	return c.Refresh(ctx)
}

// SetStatusFilter меняет фильтр по статусу и перезапрашивает список с первой
// страницы. Пустой список статусов означает «без фильтра».
func (c *ListController) SetStatusFilter(ctx context.Context, statuses ...string) error {
	c.mu.Lock()
	c.statuses = append([]string{}, statuses...)
	c.page = models.DefaultPage
	c.mu.Unlock()

	return c.Refresh(ctx)
}

// SetSort меняет сортировку и перезапрашивает список.
func (c *ListController) SetSort(ctx context.Context, key string, dir models.SortDirection) error {
	c.mu.Lock()
	c.sortKey = key
	c.sortDir = dir
	c.mu.Unlock()

	return c.Refresh(ctx)
}

// SetPageSize задаёт размер страницы для последующих выборок.
func (c *ListController) SetPageSize(size int) {
	if size <= 0 {
		return
	}

	c.mu.Lock()
	c.pageSize = size
	c.mu.Unlock()
}

// SetPage переходит на страницу и перезапрашивает список.
func (c *ListController) SetPage(ctx context.Context, page int) error {
	if page < models.DefaultPage {
		page = models.DefaultPage
	}

	c.mu.Lock()
	c.page = page
	c.mu.Unlock()

	return c.Refresh(ctx)
}

// SetSearch обновляет сырую строку поиска. Выборка запускается только после
// того, как ввод будет стабилен в течение интервала дебаунса, и использует
// последнее введённое значение; быстрый набор не порождает запрос на каждое
// нажатие.
func (c *ListController) SetSearch(text string) {
	c.mu.Lock()
	c.searchText = text
	c.mu.Unlock()

	c.search.Call(func() {
		c.mu.Lock()
		c.committedSearch = text
		c.page = models.DefaultPage
		c.mu.Unlock()

		if err := c.store.Fetch(c.ctx, c.Query()); err != nil {
			logger.Log.Error("debounced search fetch failed", zap.Error(err))
		}
	})
}

// SearchText возвращает сырое значение строки поиска.
func (c *ListController) SearchText() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.searchText
}

// LoadingOrderID возвращает идентификатор заказа, для которого сейчас
// выполняется смена статуса; спиннер показывает только его карточка.
func (c *ListController) LoadingOrderID() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.loadingOrderID
}

// ChangeOrderStatus отправляет смену статуса заказа. Идентификатор продавца
// выводится из токена заново перед каждым действием; без токена операция
// прерывается до отправки. Флаг загрузки карточки снимается в любом случае,
// а после успешной смены список перезапрашивается с текущими параметрами,
// чтобы заказ, выпавший из активного фильтра, исчез из представления.
func (c *ListController) ChangeOrderStatus(ctx context.Context, order models.Order, status models.OrderStatus, reason, vehicleType string) error {
	vendorID, err := c.tokens.VendorID()
	if err != nil {
		logger.Log.Error("vendor identity is unavailable, status change aborted",
			zap.String("orderID", order.OrderID),
			zap.Error(err),
		)
		return err
	}

	c.mu.Lock()
	c.loadingOrderID = order.ID
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		if c.loadingOrderID == order.ID {
			c.loadingOrderID = ""
		}
		c.mu.Unlock()
	}()

	_, err = c.store.UpdateStatus(ctx, models.StatusUpdate{
		OrderID:     order.OrderID,
		Status:      status,
		VendorID:    vendorID,
		VehicleType: vehicleType,
		Reason:      reason,
	})
	if err != nil {
		return err
	}

	return c.Refresh(ctx)
}

// Pagination состояние элементов управления пагинацией.
type Pagination struct {
	CurrentPage int
	TotalPages  int
	// Visible элементы управления показываются, только если страниц больше одной.
	Visible bool
	HasPrev bool
	HasNext bool
}

// Pagination вычисляет состояние пагинации по серверным итогам из хранилища.
func (c *ListController) Pagination() Pagination {
	state := c.store.State()

	totalPages := 0
	if state.PageSize > 0 {
		totalPages = int(math.Ceil(float64(state.TotalRecords) / float64(state.PageSize)))
	}

	return Pagination{
		CurrentPage: state.CurrentPage,
		TotalPages:  totalPages,
		Visible:     totalPages > 1,
		HasPrev:     state.CurrentPage > 1,
		HasNext:     state.CurrentPage < totalPages,
	}
}
