package domain

import "fmt"

// ServiceCategory группа услуг на странице записи
type ServiceCategory string

const (
	CategoryHaircut   ServiceCategory = "haircut"
	CategoryShave     ServiceCategory = "shave"
	CategoryStyling   ServiceCategory = "styling"
	CategorySpecialty ServiceCategory = "specialty"
	CategoryPackage   ServiceCategory = "package"
)

// ParseServiceCategory преобразует строку в известную категорию
func ParseServiceCategory(s string) (ServiceCategory, error) {
	switch ServiceCategory(s) {
	case CategoryHaircut:
		return CategoryHaircut, nil
	case CategoryShave:
		return CategoryShave, nil
	case CategoryStyling:
		return CategoryStyling, nil
	case CategorySpecialty:
		return CategorySpecialty, nil
	case CategoryPackage:
		return CategoryPackage, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
}

// Label возвращает название категории для отображения
func (c ServiceCategory) Label() string {
	switch c {
	case CategoryHaircut:
		return "Haircuts"
	case CategoryShave:
		return "Shaves"
	case CategoryStyling:
		return "Styling"
	case CategorySpecialty:
		return "Specialty Services"
	case CategoryPackage:
		return "Packages"
	default:
		return string(c)
	}
}

// Barber представляет барбера, к которому можно записаться
type Barber struct {
	ID           int64
	Name         string
	Slug         string
	Title        *string
	Bio          *string
	Specialties  []string
	IsActive     bool
	Order        int
	WorkingHours WorkingHours
}

// Service представляет услугу; ее длительность задает размер слота
type Service struct {
	ID              int64
	Name            string
	Slug            string
	Description     *string
	DurationMinutes int
	Price           float64
	Category        ServiceCategory
	IsActive        bool
	Order           int
}
