package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`
<p>Hi {{.Name}},</p>
<p>Thanks for reaching out. We received your immigration assessment request and
our team will review it shortly. You will hear from us once an attorney has
looked at your case.</p>
<p>— The Casemark team</p>
`))

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendConfirmation emails the lead that their submission was received.
func (s *EmailSender) SendConfirmation(to, name string) error {
	var body bytes.Buffer
	if err := confirmationTmpl.Execute(&body, ConfirmationEmailData{Name: name}); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("We received your request, %s", name))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
