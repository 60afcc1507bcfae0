package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Renal37/go-vendor-panel/internal/api"
	"github.com/Renal37/go-vendor-panel/internal/logger"
	"github.com/Renal37/go-vendor-panel/internal/models"
	"github.com/Renal37/go-vendor-panel/internal/services"
	"github.com/Renal37/go-vendor-panel/internal/utils"
	"github.com/Renal37/go-vendor-panel/internal/view"
)

// refreshInterval период фоновой ресинхронизации списка заказов.
const refreshInterval = 30 * time.Second

func main() {
	ctx := context.Background()
	config := NewConfig()

	if err := logger.Initialize(config.logLevel, config.env); err != nil {
		log.Fatalf("Logger wasn't initialized due to %s", err)
	}

	tokens := services.NewTokenService(services.NewFileTokenStorage(config.tokenPath))
	client := api.New(config.apiEndpoint, config.httpTimeout, tokens)
	notifier := services.NewNotifyService()
	store := services.NewOrderStoreService(client, notifier)
	reports := services.NewReportService(client)
	debouncer := services.NewDebouncer(config.searchDebounce)

	store.Subscribe(func(state models.OrdersState) {
		if state.Status != models.LoadSucceeded {
			return
		}
		fmt.Printf("-- заказы: %d из %d, страница %d --\n",
			len(state.Orders), state.TotalRecords, state.CurrentPage)
		for _, order := range state.Orders {
			fmt.Printf("%s\t%s\t%s\t%.2f\tмаршрут %d%%\n",
				order.OrderID, order.Status, order.PaymentStatus,
				order.GrandTotal, view.Progress(order.Legs))
		}
	})

	requests := view.NewListController(ctx, view.VariantRequests, store, tokens, debouncer)
	requests.SetPageSize(config.pageSize)

	utils.HandleTerminationProcess(func() {
		debouncer.Stop()
	})

	if err := requests.Refresh(ctx); err != nil {
		log.Printf("Initial fetch failed due to %s", err)
	}

	if report, err := reports.Sales(ctx, time.Now().AddDate(0, 0, -7), time.Now()); err == nil {
		fmt.Printf("-- продажи за неделю: %d заказов на %.2f --\n",
			report.TotalOrders, report.TotalSales)
	}

	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for range ticker.C {
		if err := requests.Refresh(ctx); err != nil {
			log.Printf("Periodic refresh failed due to %s", err)
		}
	}
}
