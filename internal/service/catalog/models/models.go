package models

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/ptr"
)

// DayScheduleResponse расписание барбера на день недели
type DayScheduleResponse struct {
	Enabled bool            `json:"enabled"`
	Start   *string         `json:"start,omitempty"`
	End     *string         `json:"end,omitempty"`
	Breaks  []BreakResponse `json:"breaks,omitempty"`
}

// BreakResponse перерыв внутри рабочего дня
type BreakResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// BarberResponse данные барбера
type BarberResponse struct {
	ID           int64                          `json:"id"`
	Name         string                         `json:"name"`
	Slug         string                         `json:"slug"`
	Title        string                         `json:"title,omitempty"`
	Bio          string                         `json:"bio,omitempty"`
	Specialties  []string                       `json:"specialties"`
	WorkingHours map[string]DayScheduleResponse `json:"workingHours"`
}

// ServiceResponse данные услуги
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Slug            string  `json:"slug"`
	Description     string  `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`
	CategoryLabel   string  `json:"categoryLabel"`
}

// BookingRulesResponse правила записи салона
type BookingRulesResponse struct {
	SlotIntervalMinutes int    `json:"slotIntervalMinutes"`
	LeadTimeHours       int    `json:"leadTimeHours"`
	BufferMinutes       int    `json:"bufferMinutes"`
	MaxDaysAhead        int    `json:"maxDaysAhead"`
	Timezone            string `json:"timezone"`
}

// FromDomainBarber конвертирует domain модель в DTO
func FromDomainBarber(b *domain.Barber) BarberResponse {
	specialties := b.Specialties
	if specialties == nil {
		specialties = []string{}
	}

	hours := make(map[string]DayScheduleResponse, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		hours[weekdayKey(day)] = fromDomainDay(b.WorkingHours.ForWeekday(day))
	}

	return BarberResponse{
		ID:           b.ID,
		Name:         b.Name,
		Slug:         b.Slug,
		Title:        ptr.Value(b.Title),
		Bio:          ptr.Value(b.Bio),
		Specialties:  specialties,
		WorkingHours: hours,
	}
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Slug:            s.Slug,
		Description:     ptr.Value(s.Description),
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		Category:        string(s.Category),
		CategoryLabel:   s.Category.Label(),
	}
}

// FromDomainRules конвертирует правила записи в DTO
func FromDomainRules(r domain.BookingRules) BookingRulesResponse {
	tz := "UTC"
	if r.Location != nil {
		tz = r.Location.String()
	}
	return BookingRulesResponse{
		SlotIntervalMinutes: r.SlotIntervalMinutes,
		LeadTimeHours:       r.LeadTimeHours,
		BufferMinutes:       r.BufferMinutes,
		MaxDaysAhead:        r.MaxDaysAhead,
		Timezone:            tz,
	}
}

func fromDomainDay(d domain.DaySchedule) DayScheduleResponse {
	resp := DayScheduleResponse{Enabled: d.IsOpen()}
	if !resp.Enabled {
		return resp
	}
	start, end := d.Start.String(), d.End.String()
	resp.Start = &start
	resp.End = &end
	for _, br := range d.Breaks {
		resp.Breaks = append(resp.Breaks, BreakResponse{Start: br.Start.String(), End: br.End.String()})
	}
	return resp
}

func weekdayKey(day time.Weekday) string {
	switch day {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	default:
		return "sunday"
	}
}
