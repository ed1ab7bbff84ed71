package list_exceptions

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/service/exceptions"
)

// ExceptionListResponse HTTP response model
type ExceptionListResponse struct {
	Exceptions []exceptions.ExceptionResponse `json:"exceptions"`
}

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(barberID int64, fromStr, toStr string) (*exceptions.ListRequest, error) {
	if fromStr == "" || toStr == "" {
		return nil, errors.New("from and to are required")
	}
	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		return nil, fmt.Errorf("invalid from: %w", err)
	}
	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		return nil, fmt.Errorf("invalid to: %w", err)
	}
	return &exceptions.ListRequest{
		BarberID: barberID,
		From:     from,
		To:       to,
	}, nil
}
