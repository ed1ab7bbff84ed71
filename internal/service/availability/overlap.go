package availability

import "github.com/m04kA/SMC-BarberBooking/internal/domain"

// Overlaps проверяет пересечение двух интервалов.
//
// В исключающем режиме интервалы полуоткрытые: [09:00,10:00) и [10:00,11:00)
// не пересекаются. Во включающем режиме общая граница считается конфликтом.
func Overlaps(a, b domain.Interval, inclusive bool) bool {
	if inclusive {
		return !a.Start.After(b.End) && !b.Start.After(a.End)
	}
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}
