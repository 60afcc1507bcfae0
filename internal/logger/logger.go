package logger

import (
	"fmt"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Log глобальный логгер, инициализируется функцией Initialize.
// По умолчанию используется заглушка zap.NewNop(), которая ничего не выводит.
var Log *zap.Logger = zap.NewNop()

// Initialize инициализирует логгер с заданным уровнем логирования и средой
// выполнения ("development" или "production").
func Initialize(level, env string) error {
	logLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return fmt.Errorf("ошибка парсинга уровня логирования: %w", err)
	}

	var config zap.Config

	if env == "development" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}

	config.Level = logLevel

	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("ошибка построения логгера: %w", err)
	}

	Log = logger

	return nil
}

// RequestLogger хук resty, логирующий каждый запрос к платформе:
// URL, метод, длительность и код статуса ответа.
func RequestLogger(_ *resty.Client, res *resty.Response) error {
	Log.Info("Запрос к платформе выполнен",
		zap.String("URL", res.Request.URL),
		zap.String("метод", res.Request.Method),
		zap.Duration("длительность", res.Time()),
		zap.Int("статус", res.StatusCode()),
	)

	return nil
}
