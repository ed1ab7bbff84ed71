package mailer

// AppointmentEmail данные для писем о записи
type AppointmentEmail struct {
	ClientName       string
	ClientEmail      string
	ClientPhone      string
	BarberName       string
	ServiceName      string
	Date             string // "Monday, March 10, 2025"
	Time             string // "2:30 PM"
	ConfirmationCode string
	Reason           string // причина отмены, если есть
}

// Типы писем, используются как label метрики
const (
	KindConfirmation = "confirmation"
	KindShopNotice   = "shop_notice"
	KindCancellation = "cancellation"
)
