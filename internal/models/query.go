package models

// Ограничения пагинации, применяемые перед каждым запросом списка.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	// DefaultSortKey ключ сортировки по умолчанию для списков заказов.
	DefaultSortKey = "createdAt"
)

// SortDirection направление сортировки списка.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// OrderQuery параметры выборки страницы заказов. Значения эфемерны и
// принадлежат представлению; хранилище их не запоминает между запросами.
type OrderQuery struct {
	Page          int           `json:"page"`
	PageSize      int           `json:"pageSize"`
	SortKey       string        `json:"sortKey"`
	SortDirection SortDirection `json:"sortDirection"`
	Search        string        `json:"search"`
	// Status пустой срез означает «без фильтра по статусу».
	Status []string  `json:"status,omitempty"`
	Type   OrderType `json:"type"`
}

// Normalize приводит параметры выборки к допустимым значениям.
func (q OrderQuery) Normalize() OrderQuery {
	if q.Page < DefaultPage {
		q.Page = DefaultPage
	}
	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	if q.SortKey == "" {
		q.SortKey = DefaultSortKey
	}
	if q.SortDirection != SortAsc && q.SortDirection != SortDesc {
		q.SortDirection = SortDesc
	}
	return q
}

// OrdersPage страница заказов в том виде, в котором её вернул сервер.
// Хранилище не пересчитывает серверные итоги пагинации.
type OrdersPage struct {
	Data         []Order `json:"data"`
	TotalRecords int     `json:"totalRecords"`
	CurrentPage  int     `json:"currentPage"`
	PageSize     int     `json:"pageSize"`
}

// StatusUpdate запрос на смену статуса заказа. VendorID обязателен и
// выводится из токена заново при каждом изменяющем действии.
type StatusUpdate struct {
	OrderID     string      `json:"orderId"`
	Status      OrderStatus `json:"status"`
	VendorID    string      `json:"vendorId"`
	VehicleType string      `json:"vehicleType"`
	// Reason имеет смысл только при переводе заказа в cancelled.
	Reason string `json:"reason,omitempty"`
}
