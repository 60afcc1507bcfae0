package api

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Renal37/go-vendor-panel/internal/logger"
	"github.com/Renal37/go-vendor-panel/internal/models"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// genericFailureMessage используется, когда сервер не сообщил причину ошибки.
const genericFailureMessage = "запрос к платформе завершился ошибкой"

var errUnexpectedResponse = errors.New("неожиданный формат ответа платформы")

// APIError бизнес-ошибка, которую платформа вернула вместе с HTTP-статусом.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("платформа вернула %d: %s", e.StatusCode, e.Message)
}

// errorBody тело ошибки платформы.
type errorBody struct {
	Message string `json:"message"`
}

type tokenSource interface {
	Token() (string, error)
}

// Client клиент REST API платформы. Все вызовы выполняются с bearer-токеном,
// если тот доступен в локальном хранилище; отсутствие токена не мешает
// операциям чтения и проверяется вызывающей стороной перед мутациями.
type Client struct {
	http *resty.Client
}

// New создает клиент платформы для заданного базового адреса.
func New(baseURL string, timeout time.Duration, tokens tokenSource) *Client {
	hc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	hc.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		token, err := tokens.Token()
		if err != nil {
			// Запросы чтения допустимы без токена.
			return nil
		}
		req.SetHeader("Authorization", "Bearer "+token)
		return nil
	})

	hc.OnAfterResponse(logger.RequestLogger)

	return &Client{http: hc}
}

// VendorOrders запрашивает страницу заказов продавца по заданным параметрам.
func (c *Client) VendorOrders(ctx context.Context, query models.OrderQuery) (*models.OrdersPage, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(query.Normalize()).
		SetResult(&models.OrdersPage{}).
		SetError(&errorBody{}).
		Post("/order/vendor-orders")

	if err != nil {
		return nil, fmt.Errorf("failed to fetch vendor orders: %w", err)
	}

	if res.IsError() {
		return nil, apiErrorFrom(res)
	}

	page, ok := res.Result().(*models.OrdersPage)
	if !ok {
		return nil, errUnexpectedResponse
	}

	// Необязательные поля получают документированные значения по умолчанию,
	// чтобы не проверять их на nil в каждой точке использования.
	if page.Data == nil {
		page.Data = []models.Order{}
	}
	for i := range page.Data {
		if page.Data[i].Legs == nil {
			page.Data[i].Legs = []models.Leg{}
		}
		if page.Data[i].Items == nil {
			page.Data[i].Items = []models.LineItem{}
		}
	}

	return page, nil
}

// UpdateOrderStatus запрашивает смену статуса заказа и возвращает
// представление заказа, которым ответил сервер.
func (c *Client) UpdateOrderStatus(ctx context.Context, update models.StatusUpdate) (*models.Order, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(update).
		SetResult(&models.Order{}).
		SetError(&errorBody{}).
		Post("/order/update-status")

	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	if res.IsError() {
		return nil, apiErrorFrom(res)
	}

	order, ok := res.Result().(*models.Order)
	if !ok {
		return nil, errUnexpectedResponse
	}

	if order.Legs == nil {
		order.Legs = []models.Leg{}
	}

	return order, nil
}

// financialBreakdownResponse конверт ответа финансовой разбивки.
type financialBreakdownResponse struct {
	Data []models.FinancialRow `json:"data"`
}

// FinancialBreakdown запрашивает страницу финансовой разбивки продавца.
func (c *Client) FinancialBreakdown(ctx context.Context, page, pageSize int, search string) ([]models.FinancialRow, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"page":     fmt.Sprint(page),
			"pageSize": fmt.Sprint(pageSize),
			"search":   search,
		}).
		SetResult(&financialBreakdownResponse{}).
		SetError(&errorBody{}).
		Get("/order/vendor-financial-breakdown")

	if err != nil {
		return nil, fmt.Errorf("failed to fetch financial breakdown: %w", err)
	}

	if res.IsError() {
		return nil, apiErrorFrom(res)
	}

	body, ok := res.Result().(*financialBreakdownResponse)
	if !ok {
		return nil, errUnexpectedResponse
	}

	if body.Data == nil {
		return []models.FinancialRow{}, nil
	}

	return body.Data, nil
}

// SalesReport запрашивает агрегированный отчёт о продажах за период.
func (c *Client) SalesReport(ctx context.Context, start, end time.Time) (*models.SalesReport, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"startDate": start.Format(time.RFC3339),
			"endDate":   end.Format(time.RFC3339),
		}).
		SetResult(&models.SalesReport{}).
		SetError(&errorBody{}).
		Get("/report/sales")

	if err != nil {
		return nil, fmt.Errorf("failed to fetch sales report: %w", err)
	}

	if res.IsError() {
		return nil, apiErrorFrom(res)
	}

	report, ok := res.Result().(*models.SalesReport)
	if !ok {
		return nil, errUnexpectedResponse
	}

	return report, nil
}

// apiErrorFrom собирает APIError из ответа сервера. Если тело не содержит
// сообщения, подставляется общая формулировка.
func apiErrorFrom(res *resty.Response) error {
	message := genericFailureMessage

	if body, ok := res.Error().(*errorBody); ok && body.Message != "" {
		message = body.Message
	}

	logger.Log.Error("platform returned an error",
		zap.Int("status", res.StatusCode()),
		zap.String("message", message),
	)

	return &APIError{StatusCode: res.StatusCode(), Message: message}
}
