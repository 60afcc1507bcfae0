package view

import (
	"math"
	"sort"

	"github.com/Renal37/go-vendor-panel/internal/models"
)

// Progress возвращает процент прохождения маршрута: доля доставленных плеч,
// округлённая до целого. Для пустого маршрута прогресс равен нулю.
func Progress(legs []models.Leg) int {
	if len(legs) == 0 {
		return 0
	}

	delivered := 0
	for _, leg := range legs {
		if leg.Status == models.LegStatusDelivered {
			delivered++
		}
	}

	return int(math.Round(100 * float64(delivered) / float64(len(legs))))
}

// SortedLegs возвращает копию плеч, упорядоченную по порядковому номеру.
// Непрерывность номеров на клиенте не проверяется, порядок только отображается.
func SortedLegs(legs []models.Leg) []models.Leg {
	sorted := make([]models.Leg, len(legs))
	copy(sorted, legs)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Sequence < sorted[j].Sequence
	})

	return sorted
}

// Badge бейдж статуса плеча.
type Badge struct {
	Label string
	Icon  string
}

var legBadges = map[models.LegStatus]Badge{
	models.LegStatusPending:        {Label: "Ожидает", Icon: "clock"},
	models.LegStatusDriverAssigned: {Label: "Водитель назначен", Icon: "user-check"},
	models.LegStatusPicked:         {Label: "Забран", Icon: "package"},
	models.LegStatusInTransit:      {Label: "В пути", Icon: "truck"},
	models.LegStatusDelivered:      {Label: "Доставлен", Icon: "check-circle"},
	models.LegStatusCancelled:      {Label: "Отменён", Icon: "x-circle"},
}

// LegBadge возвращает бейдж для статуса плеча. Неизвестный статус даёт
// нейтральный бейдж с исходной строкой статуса вместо ошибки.
func LegBadge(status models.LegStatus) Badge {
	if badge, known := legBadges[status]; known {
		return badge
	}

	return Badge{Label: string(status), Icon: "circle"}
}
