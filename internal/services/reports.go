package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Renal37/go-vendor-panel/internal/models"
)

var ErrInvalidReportPeriod = errors.New("начальная дата периода позже конечной")

type reportAPI interface {
	FinancialBreakdown(ctx context.Context, page, pageSize int, search string) ([]models.FinancialRow, error)

	SalesReport(ctx context.Context, start, end time.Time) (*models.SalesReport, error)
}

// ReportService отчётные выборки панели: финансовая разбивка по заказам и
// агрегированный отчёт о продажах за период.
type ReportService struct {
	api reportAPI
}

// NewReportService создает новый экземпляр ReportService.
func NewReportService(api reportAPI) *ReportService {
	return &ReportService{api: api}
}

// FinancialBreakdown возвращает страницу финансовой разбивки продавца.
func (r *ReportService) FinancialBreakdown(ctx context.Context, page, pageSize int, search string) ([]models.FinancialRow, error) {
	if page < models.DefaultPage {
		page = models.DefaultPage
	}
	if pageSize <= 0 {
		pageSize = models.DefaultPageSize
	}

	rows, err := r.api.FinancialBreakdown(ctx, page, pageSize, search)
	if err != nil {
		return nil, fmt.Errorf("не удалось получить финансовую разбивку: %w", err)
	}

	return rows, nil
}

// Sales возвращает отчёт о продажах за заданный период.
func (r *ReportService) Sales(ctx context.Context, start, end time.Time) (*models.SalesReport, error) {
	if start.After(end) {
		return nil, ErrInvalidReportPeriod
	}

	report, err := r.api.SalesReport(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("не удалось получить отчёт о продажах: %w", err)
	}

	return report, nil
}
