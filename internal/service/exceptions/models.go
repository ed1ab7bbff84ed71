package exceptions

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// CreateRequest запрос на закрытие дня
type CreateRequest struct {
	BarberID int64     // 0 - весь салон
	Date     time.Time // календарная дата
	Reason   *string
}

// ListRequest запрос на список исключений в диапазоне дат включительно
type ListRequest struct {
	BarberID int64
	From     time.Time
	To       time.Time
}

// ExceptionResponse исключение расписания
type ExceptionResponse struct {
	ID        int64     `json:"id"`
	BarberID  int64     `json:"barberId"`
	Date      string    `json:"date"`
	IsClosed  bool      `json:"isClosed"`
	ShopWide  bool      `json:"shopWide"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func fromDomain(ex *domain.ScheduleException) ExceptionResponse {
	return ExceptionResponse{
		ID:        ex.ID,
		BarberID:  ex.BarberID,
		Date:      ex.Date.Format(domain.DateFormat),
		IsClosed:  ex.IsClosed,
		ShopWide:  ex.BarberID == 0,
		Reason:    ex.Reason,
		CreatedAt: ex.CreatedAt,
	}
}
