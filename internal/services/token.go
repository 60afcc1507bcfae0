package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Определяем пользовательские ошибки для работы с локальным токеном.
var (
	ErrTokenIsMissing   = errors.New("токен авторизации отсутствует")
	ErrTokenIsInvalid   = errors.New("токен недействителен")
	ErrNoVendorIdentity = errors.New("токен не содержит идентификатор продавца")
)

type tokenStorage interface {
	Load() (string, error)
}

// FileTokenStorage читает bearer-токен из локального файла —
// клиентского аналога постоянного хранилища браузера.
type FileTokenStorage struct {
	path string
}

func NewFileTokenStorage(path string) *FileTokenStorage {
	return &FileTokenStorage{path: path}
}

// Load возвращает содержимое файла токена без окружающих пробелов.
func (s *FileTokenStorage) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrTokenIsMissing
		}
		return "", fmt.Errorf("не удалось прочитать файл токена: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrTokenIsMissing
	}

	return token, nil
}

// TokenService извлекает идентификатор продавца из локально сохранённого
// JWT. Подпись токена не проверяется: клиент лишь читает claims, проверка
// остаётся за сервером.
type TokenService struct {
	storage tokenStorage
}

// NewTokenService создает новый экземпляр TokenService поверх хранилища токена.
func NewTokenService(storage tokenStorage) *TokenService {
	return &TokenService{storage: storage}
}

// Token возвращает сырой bearer-токен из хранилища.
func (t *TokenService) Token() (string, error) {
	raw, err := t.storage.Load()
	if err != nil {
		return "", err
	}

	// Хранилище может содержать токен вместе со схемой заголовка.
	return strings.TrimSpace(strings.TrimPrefix(raw, "Bearer ")), nil
}

// VendorID декодирует токен и возвращает идентификатор продавца.
// Идентификатор выводится заново при каждом изменяющем действии:
// кешированное значение между действиями не используется.
func (t *TokenService) VendorID() (string, error) {
	token, err := t.Token()
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("%w: %s", ErrTokenIsInvalid, err)
	}

	// Сервер кладёт идентификатор в vendorId, более старые токены — в id.
	for _, key := range []string{"vendorId", "id"} {
		if value, exists := claims[key]; exists {
			return claimToString(value)
		}
	}

	return "", ErrNoVendorIdentity
}

// claimToString приводит значение claim к строковому идентификатору.
func claimToString(value any) (string, error) {
	switch v := value.(type) {
	case string:
		if v == "" {
			return "", ErrNoVendorIdentity
		}
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", ErrNoVendorIdentity
	}
}
