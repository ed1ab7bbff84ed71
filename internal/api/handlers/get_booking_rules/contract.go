package get_booking_rules

import "github.com/m04kA/SMC-BarberBooking/internal/service/catalog/models"

type RulesProvider interface {
	BookingRules() models.BookingRulesResponse
}
