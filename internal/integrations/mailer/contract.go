package mailer

import "gopkg.in/gomail.v2"

// Dialer отправляет подготовленные письма; *gomail.Dialer удовлетворяет интерфейсу
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// MetricsCollector учитывает результат отправки
type MetricsCollector interface {
	IncEmail(kind string, ok bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
