package mailer

import (
	"fmt"

	"github.com/wneessen/go-mail"
)

// ConfirmationData feeds the quote confirmation mail body.
type ConfirmationData struct {
	Code        string
	Destination string
	Price       string
}

// Mailer sends the two transactional mails the service needs: the
// authorization code notice and the quote confirmation with the identity
// document attached.
type Mailer interface {
	SendCode(to, subject, code string) error
	SendConfirmation(to, subject string, data ConfirmationData, attachmentPath string) error
}

type SMTPMailer struct {
	host      string
	port      int
	user      string
	password  string
	fromName  string
	fromEmail string
}

func NewSMTPMailer(host string, port int, user, password, fromName, fromEmail string) *SMTPMailer {
	return &SMTPMailer{
		host:      host,
		port:      port,
		user:      user,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

func (m *SMTPMailer) SendCode(to, subject, code string) error {
	msg, err := m.newMessage(to, subject)
	if err != nil {
		return err
	}
	msg.SetBodyString(mail.TypeTextHTML, codeBody(code))
	return m.send(msg)
}

func (m *SMTPMailer) SendConfirmation(to, subject string, data ConfirmationData, attachmentPath string) error {
	msg, err := m.newMessage(to, subject)
	if err != nil {
		return err
	}
	msg.SetBodyString(mail.TypeTextHTML, confirmationBody(data))
	if attachmentPath != "" {
		msg.AttachFile(attachmentPath)
	}
	return m.send(msg)
}

func (m *SMTPMailer) newMessage(to, subject string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(fmt.Sprintf("%s <%s>", m.fromName, m.fromEmail)); err != nil {
		return nil, fmt.Errorf("error al configurar remitente: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("error al configurar destinatario: %w", err)
	}
	msg.Subject(subject)
	return msg, nil
}

func (m *SMTPMailer) send(msg *mail.Msg) error {
	client, err := mail.NewClient(m.host,
		mail.WithPort(m.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.user),
		mail.WithPassword(m.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("error al crear cliente SMTP (host=%s port=%d): %w", m.host, m.port, err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("error al enviar correo (host=%s port=%d): %w", m.host, m.port, err)
	}
	return nil
}

func codeBody(code string) string {
	return fmt.Sprintf(`<html><body>
<h2>Codigo de autenticacion</h2>
<p>Tu codigo de autenticacion es: <strong>%s</strong></p>
<p>Si no solicitaste este codigo ignora este correo.</p>
</body></html>`, code)
}

func confirmationBody(data ConfirmationData) string {
	return fmt.Sprintf(`<html><body>
<h2>Confirmacion de cotizacion</h2>
<p>Tu cotizacion ha sido aprobada.</p>
<ul>
<li>Destino: %s</li>
<li>Precio: %s</li>
<li>Codigo de autorizacion: %s</li>
</ul>
<p>Se adjunta el documento de identidad recibido.</p>
</body></html>`, data.Destination, data.Price, data.Code)
}
