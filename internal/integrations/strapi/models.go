package strapi

// Strapi v4 оборачивает записи в {data: {id, attributes}}

type singleResponse[T any] struct {
	Data *entry[T] `json:"data"`
}

type listResponse[T any] struct {
	Data []entry[T] `json:"data"`
}

type entry[T any] struct {
	ID         int64 `json:"id"`
	Attributes T     `json:"attributes"`
}

// BarberAttributes атрибуты коллекции barbers
type BarberAttributes struct {
	Name         string        `json:"name"`
	Slug         string        `json:"slug"`
	Title        *string       `json:"title"`
	Bio          *string       `json:"bio"`
	Specialties  []string      `json:"specialties"`
	IsActive     bool          `json:"isActive"`
	Order        int           `json:"order"`
	WorkingHours *WorkingHours `json:"workingHours"`
}

// WorkingHours компонент рабочих часов барбера
type WorkingHours struct {
	Monday    *DaySchedule `json:"monday"`
	Tuesday   *DaySchedule `json:"tuesday"`
	Wednesday *DaySchedule `json:"wednesday"`
	Thursday  *DaySchedule `json:"thursday"`
	Friday    *DaySchedule `json:"friday"`
	Saturday  *DaySchedule `json:"saturday"`
	Sunday    *DaySchedule `json:"sunday"`
}

type DaySchedule struct {
	Enabled bool        `json:"enabled"`
	Start   *string     `json:"start"`
	End     *string     `json:"end"`
	Breaks  []TimeRange `json:"breaks"`
}

type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ServiceAttributes атрибуты коллекции services
type ServiceAttributes struct {
	Name            string  `json:"name"`
	Slug            string  `json:"slug"`
	Description     *string `json:"description"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	IsActive        bool    `json:"isActive"`
	Order           int     `json:"order"`
	Category        string  `json:"category"`
}

// ErrorResponse модель ошибки Strapi
type ErrorResponse struct {
	Error struct {
		Status  int    `json:"status"`
		Name    string `json:"name"`
		Message string `json:"message"`
	} `json:"error"`
}
