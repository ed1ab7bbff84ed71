package get_next_available

import "github.com/m04kA/SMC-BarberBooking/internal/domain"

// Request запрос на поиск ближайшего свободного слота
type Request struct {
	BarberID  int64
	ServiceID int64
}

// Response результат поиска; Slot == nil, если в окне записи ничего нет
type Response struct {
	BarberID     int64
	ServiceID    int64
	MaxDaysAhead int
	Slot         *domain.NextSlot
}
