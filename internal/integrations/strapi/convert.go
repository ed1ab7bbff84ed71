package strapi

import (
	"fmt"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

func toDomainBarber(e entry[BarberAttributes]) (*domain.Barber, error) {
	b := &domain.Barber{
		ID:          e.ID,
		Name:        e.Attributes.Name,
		Slug:        e.Attributes.Slug,
		Title:       e.Attributes.Title,
		Bio:         e.Attributes.Bio,
		Specialties: e.Attributes.Specialties,
		IsActive:    e.Attributes.IsActive,
		Order:       e.Attributes.Order,
	}

	if wh := e.Attributes.WorkingHours; wh != nil {
		days := []struct {
			src *DaySchedule
			dst *domain.DaySchedule
		}{
			{wh.Monday, &b.WorkingHours.Monday},
			{wh.Tuesday, &b.WorkingHours.Tuesday},
			{wh.Wednesday, &b.WorkingHours.Wednesday},
			{wh.Thursday, &b.WorkingHours.Thursday},
			{wh.Friday, &b.WorkingHours.Friday},
			{wh.Saturday, &b.WorkingHours.Saturday},
			{wh.Sunday, &b.WorkingHours.Sunday},
		}
		for _, d := range days {
			if d.src == nil {
				continue
			}
			day, err := toDomainDay(d.src)
			if err != nil {
				return nil, fmt.Errorf("barber id=%d: %w", e.ID, err)
			}
			*d.dst = day
		}
	}

	if err := b.WorkingHours.Validate(); err != nil {
		return nil, fmt.Errorf("barber id=%d: %w", e.ID, err)
	}
	return b, nil
}

func toDomainDay(src *DaySchedule) (domain.DaySchedule, error) {
	day := domain.DaySchedule{Enabled: src.Enabled}
	if !src.Enabled {
		return day, nil
	}

	var err error
	if src.Start != nil {
		if day.Start, err = parseTime(*src.Start); err != nil {
			return day, err
		}
	}
	if src.End != nil {
		if day.End, err = parseTime(*src.End); err != nil {
			return day, err
		}
	}
	for _, br := range src.Breaks {
		start, err := parseTime(br.Start)
		if err != nil {
			return day, err
		}
		end, err := parseTime(br.End)
		if err != nil {
			return day, err
		}
		day.Breaks = append(day.Breaks, domain.BreakInterval{Start: *start, End: *end})
	}
	return day, nil
}

// parseTime принимает "HH:mm" и формат time-поля Strapi "HH:mm:ss.SSS"
func parseTime(s string) (*types.TimeString, error) {
	if len(s) > 5 && s[5] == ':' {
		s = s[:5]
	}
	t, err := types.NewTimeStringFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSchedule, err)
	}
	return &t, nil
}

func toDomainService(e entry[ServiceAttributes]) (*domain.Service, error) {
	category, err := domain.ParseServiceCategory(e.Attributes.Category)
	if err != nil {
		return nil, fmt.Errorf("service id=%d: %w", e.ID, err)
	}
	if e.Attributes.DurationMinutes <= 0 {
		return nil, fmt.Errorf("service id=%d: non-positive duration %d", e.ID, e.Attributes.DurationMinutes)
	}
	return &domain.Service{
		ID:              e.ID,
		Name:            e.Attributes.Name,
		Slug:            e.Attributes.Slug,
		Description:     e.Attributes.Description,
		DurationMinutes: e.Attributes.DurationMinutes,
		Price:           e.Attributes.Price,
		Category:        category,
		IsActive:        e.Attributes.IsActive,
		Order:           e.Attributes.Order,
	}, nil
}
