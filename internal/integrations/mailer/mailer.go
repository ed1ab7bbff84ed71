package mailer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

// Mailer отправляет письма о записях через SMTP.
// Ошибки отправки логируются и не прерывают бронирование.
type Mailer struct {
	dialer      Dialer
	from        string
	shopAddress string
	shopName    string
	metrics     MetricsCollector
	log         Logger
}

// Config параметры отправителя
type Config struct {
	From        string
	ShopAddress string // адрес для уведомлений салону; пустой - уведомление не отправляется
	ShopName    string
}

// NewSMTPDialer создает gomail-диалер
func NewSMTPDialer(host string, port int, username, password string) *gomail.Dialer {
	return gomail.NewDialer(host, port, username, password)
}

func New(dialer Dialer, cfg Config, metrics MetricsCollector, log Logger) *Mailer {
	return &Mailer{
		dialer:      dialer,
		from:        cfg.From,
		shopAddress: cfg.ShopAddress,
		shopName:    cfg.ShopName,
		metrics:     metrics,
		log:         log,
	}
}

// SendAppointmentConfirmation отправляет подтверждение клиенту и уведомление салону.
// Письма независимы: ошибка первого не отменяет второе.
func (m *Mailer) SendAppointmentConfirmation(ctx context.Context, data AppointmentEmail) error {
	clientErr := m.send(ctx, KindConfirmation, data.ClientEmail,
		fmt.Sprintf("Appointment Confirmed - %s at %s", data.Date, data.Time),
		confirmationTemplate, data)

	if m.shopAddress == "" {
		return clientErr
	}
	shopErr := m.send(ctx, KindShopNotice, m.shopAddress,
		fmt.Sprintf("New Appointment: %s", data.ClientName),
		shopNoticeTemplate, data)

	return errors.Join(clientErr, shopErr)
}

// SendCancellation уведомляет клиента об отмене записи
func (m *Mailer) SendCancellation(ctx context.Context, data AppointmentEmail) error {
	return m.send(ctx, KindCancellation, data.ClientEmail,
		fmt.Sprintf("Appointment Cancelled - %s at %s", data.Date, data.Time),
		cancellationTemplate, data)
}

func (m *Mailer) send(ctx context.Context, kind, to, subject string, tpl *template.Template, data AppointmentEmail) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := render(tpl, templateData{AppointmentEmail: data, ShopName: m.shopName, ShopAddress: m.shopAddress})
	if err != nil {
		m.metrics.IncEmail(kind, false)
		return fmt.Errorf("mailer: render %s: %w", kind, err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.metrics.IncEmail(kind, false)
		m.log.Error("Mailer: failed to send %s email to %s: %v", kind, to, err)
		return fmt.Errorf("mailer: send %s: %w", kind, err)
	}

	m.metrics.IncEmail(kind, true)
	m.log.Info("Mailer: %s email sent to %s", kind, to)
	return nil
}

func render(tpl *template.Template, data templateData) (string, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Noop используется, когда отправка писем выключена в конфиге
type Noop struct{}

func (Noop) SendAppointmentConfirmation(context.Context, AppointmentEmail) error { return nil }
func (Noop) SendCancellation(context.Context, AppointmentEmail) error            { return nil }
