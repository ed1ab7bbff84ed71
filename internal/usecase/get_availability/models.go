package get_availability

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// Request запрос на получение сетки слотов
type Request struct {
	BarberID  int64
	ServiceID int64
	Date      time.Time // календарная дата в часовом поясе салона
}

// Response сетка слотов на дату
type Response struct {
	Date                   time.Time
	BarberID               int64
	ServiceID              int64
	ServiceDurationMinutes int
	Timezone               string
	Slots                  []domain.AvailabilitySlot
}

// AvailableCount возвращает количество свободных слотов
func (r *Response) AvailableCount() int {
	count := 0
	for _, s := range r.Slots {
		if s.Available {
			count++
		}
	}
	return count
}
