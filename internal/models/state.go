package models

// LoadState состояние асинхронной операции хранилища.
type LoadState string

const (
	LoadIdle      LoadState = "idle"
	LoadLoading   LoadState = "loading"
	LoadSucceeded LoadState = "succeeded"
	LoadFailed    LoadState = "failed"
)

// OrdersState снимок состояния хранилища заказов. Status относится к выборке
// списка, UpdateStatus — к смене статуса заказа; оба независимы.
type OrdersState struct {
	Orders       []Order
	Status       LoadState
	UpdateStatus LoadState
	// Err сообщение последней неудачной выборки, пустая строка при её отсутствии.
	Err           string
	TotalRecords  int
	CurrentPage   int
	PageSize      int
	SortKey       string
	SortDirection SortDirection
}
