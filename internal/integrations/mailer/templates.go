package mailer

import "html/template"

type templateData struct {
	AppointmentEmail
	ShopName    string
	ShopAddress string
}

var confirmationTemplate = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif; line-height: 1.6; color: #1A1A1A;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
      <h1>{{.ShopName}}</h1>
      <p>Your appointment is confirmed.</p>
      <p>Hi {{.ClientName}},</p>
      <p>Thank you for booking with us! We're looking forward to seeing you.</p>
      <h2>Appointment Details</h2>
      <p><strong>Barber:</strong> {{.BarberName}}</p>
      <p><strong>Service:</strong> {{.ServiceName}}</p>
      <p><strong>Date:</strong> {{.Date}}</p>
      <p><strong>Time:</strong> {{.Time}}</p>
      <p><strong>Confirmation Code:</strong><br><span style="font-size: 24px; letter-spacing: 2px;">{{.ConfirmationCode}}</span></p>
      <p>Please bring your confirmation code and arrive 5 minutes early.</p>
      <p><strong>Cancellation Policy:</strong> Please provide at least 24 hours notice if you need to cancel or reschedule.</p>
      {{if .ShopAddress}}<p style="color: #666; font-size: 12px;">Questions? Contact us at {{.ShopAddress}}</p>{{end}}
    </div>
  </body>
</html>`))

var shopNoticeTemplate = template.Must(template.New("shop_notice").Parse(`<h2>New Appointment Booked</h2>
<p><strong>Client:</strong> {{.ClientName}} ({{.ClientEmail}}, {{.ClientPhone}})</p>
<p><strong>Barber:</strong> {{.BarberName}}</p>
<p><strong>Service:</strong> {{.ServiceName}}</p>
<p><strong>Date/Time:</strong> {{.Date}} at {{.Time}}</p>
<p><strong>Confirmation Code:</strong> {{.ConfirmationCode}}</p>`))

var cancellationTemplate = template.Must(template.New("cancellation").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif; line-height: 1.6; color: #1A1A1A;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
      <h1>{{.ShopName}}</h1>
      <p>Hi {{.ClientName}},</p>
      <p>Your appointment on {{.Date}} at {{.Time}} ({{.ServiceName}} with {{.BarberName}}) has been cancelled.</p>
      {{if .Reason}}<p><strong>Reason:</strong> {{.Reason}}</p>{{end}}
      <p>Confirmation code: {{.ConfirmationCode}}</p>
      <p>We hope to see you another time.</p>
    </div>
  </body>
</html>`))
