package mailing

import (
	"Meal-Planner/domain"
	"Meal-Planner/internal/utils"
	"bytes"
	"html/template"
	"strconv"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

type (
	Mailer interface {
		SendMail(toEmail string, subject string, body string) error
	}

	smtpMailer struct{}
)

func NewMailer() Mailer {
	return &smtpMailer{}
}

func (m *smtpMailer) SendMail(toEmail string, subject string, body string) error {
	return SendMail(toEmail, subject, body)
}

func SendMail(toEmail string, subject string, body string) error {
	emailConfig := LoadMailConfig()

	mailer := gomail.NewMessage()
	mailer.SetAddressHeader("From", emailConfig.SMTPEmail, emailConfig.SMTPSender)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)

	port, err := strconv.Atoi(emailConfig.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		emailConfig.SMTPHost,
		port,
		emailConfig.SMTPEmail,
		emailConfig.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}

var shoppingListTemplate = template.Must(template.New("shopping_list").Parse(`<h2>Shopping list for {{.RecipeName}}</h2>
<ul>
{{- range .Items}}
<li>{{.Name}}: {{.Display}}</li>
{{- end}}
</ul>
{{- if .Mismatched}}
<p>Check these by hand, their units do not match your pantry:</p>
<ul>
{{- range .Mismatched}}
<li>{{.}}</li>
{{- end}}
</ul>
{{- end}}`))

func ShoppingListBody(list domain.ShoppingList) (string, error) {
	var buf bytes.Buffer
	if err := shoppingListTemplate.Execute(&buf, list); err != nil {
		return "", err
	}
	return buf.String(), nil
}
