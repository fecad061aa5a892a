package mailer_module

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"backend/configs"
)

const confirmationSubject = "You're on the waitlist"

const confirmationTemplate = `<html>
  <body style="font-family: sans-serif; color: #1a1a1a;">
    <h2>Hi %s,</h2>
    <p>Thanks for signing up — %s is on the waitlist.</p>
    <p>We'll reach out as soon as a spot opens up. No action needed on your side.</p>
    <p style="color: #777;">— The team</p>
  </body>
</html>`

// sender matches gomail's Dialer so tests can swap in a fake transport.
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type Service struct {
	dialer sender
	from   string
	log    *zap.Logger
}

func NewService(log *zap.Logger) *Service {
	port, err := strconv.Atoi(configs.SmtpPort)
	if err != nil {
		log.Warn("mailer: invalid SMTP_PORT, falling back to 587",
			zap.String("value", configs.SmtpPort))
		port = 587
	}
	return &Service{
		dialer: gomail.NewDialer(configs.SmtpHost, port, configs.SmtpUser, configs.SmtpPassword),
		from:   configs.MailFrom,
		log:    log,
	}
}

// SendConfirmation delivers the signup confirmation. Best effort: the caller
// logs and swallows any error, it never reaches the submitter.
func (s *Service) SendConfirmation(name, email, company string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", confirmationSubject)
	m.SetBody("text/html", confirmationBody(name, company))
	return s.dialer.DialAndSend(m)
}

func confirmationBody(name, company string) string {
	return fmt.Sprintf(confirmationTemplate, name, company)
}
