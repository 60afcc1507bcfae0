package services

import (
	"sync"
	"time"

	"github.com/Renal37/go-vendor-panel/internal/logger"
	"github.com/Renal37/go-vendor-panel/internal/models"
	"go.uber.org/zap"
)

// defaultFeedLimit максимальное число уведомлений, хранимых в ленте.
const defaultFeedLimit = 50

// NotifyService лента неблокирующих уведомлений. Хранилище и представления
// сообщают сюда об исходе операций; счётчик непрочитанных всегда вычисляется
// строгим подсчётом по ленте и отдельно не кешируется.
type NotifyService struct {
	mu    sync.Mutex
	feed  []models.Notification
	limit int
}

// NewNotifyService создает новый экземпляр NotifyService.
func NewNotifyService() *NotifyService {
	return &NotifyService{limit: defaultFeedLimit}
}

// Success добавляет уведомление об успешной операции.
func (n *NotifyService) Success(message string) {
	n.push(models.NotificationSuccess, message)
}

// Error добавляет уведомление об ошибке.
func (n *NotifyService) Error(message string) {
	n.push(models.NotificationError, message)
}

// Info добавляет информационное уведомление.
func (n *NotifyService) Info(message string) {
	n.push(models.NotificationInfo, message)
}

// Recent возвращает копию ленты уведомлений, новые в конце.
func (n *NotifyService) Recent() []models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	feed := make([]models.Notification, len(n.feed))
	copy(feed, n.feed)
	return feed
}

// UnreadCount возвращает число непрочитанных уведомлений.
func (n *NotifyService) UnreadCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	count := 0
	for _, item := range n.feed {
		if !item.Read {
			count++
		}
	}
	return count
}

// MarkAllRead помечает все уведомления прочитанными.
func (n *NotifyService) MarkAllRead() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i := range n.feed {
		n.feed[i].Read = true
	}
}

func (n *NotifyService) push(level models.NotificationLevel, message string) {
	n.mu.Lock()
	n.feed = append(n.feed, models.Notification{
		Level:     level,
		Message:   message,
		CreatedAt: time.Now(),
	})
	if len(n.feed) > n.limit {
		n.feed = n.feed[len(n.feed)-n.limit:]
	}
	n.mu.Unlock()

	logger.Log.Info("notification",
		zap.String("level", string(level)),
		zap.String("message", message),
	)
}
