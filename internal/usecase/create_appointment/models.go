package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	BarberID    int64
	ServiceID   int64
	Date        time.Time        // календарная дата в часовом поясе салона
	Time        types.TimeString // начало слота, "14:30"
	ClientName  string
	ClientEmail string
	ClientPhone string
	Notes       *string
}

// Response модель ответа с созданной записью
type Response struct {
	ID               int64
	ConfirmationCode string
	BarberID         int64
	BarberName       string
	ServiceID        int64
	ServiceName      string
	DurationMinutes  int
	StartAt          time.Time
	EndAt            time.Time
	Status           string
	ClientName       string
	ClientEmail      string
	CreatedAt        time.Time
}
