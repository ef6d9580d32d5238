package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for email links (e.g., "http://localhost:8080")
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendTicketStatusEmail(to, ticketCode, subject, body string) error {
	ticketURL := fmt.Sprintf("%s/tickets/%s", s.config.BaseURL, ticketCode)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>%s</h2>
			<p>%s</p>
			<p><a href="%s">View ticket %s</a></p>
			<p>Or copy and paste this URL into your browser:</p>
			<p>%s</p>
		</body>
		</html>
	`, subject, body, ticketURL, ticketCode, ticketURL)

	plainBody := fmt.Sprintf(`
%s

%s

View the ticket at:
%s
	`, subject, body, ticketURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendArticlePublishedEmail(to, companyName, articleTitle string, articleID uint) error {
	articleURL := fmt.Sprintf("%s/help-center/articles/%d", s.config.BaseURL, articleID)

	subject := fmt.Sprintf("New article from %s", companyName)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>%s published a new article</h2>
			<p><a href="%s">%s</a></p>
			<p>Or copy and paste this URL into your browser:</p>
			<p>%s</p>
			<p>You are receiving this because you follow %s. Unfollow the company to stop these notifications.</p>
		</body>
		</html>
	`, companyName, articleURL, articleTitle, articleURL, companyName)

	plainBody := fmt.Sprintf(`
%s published a new article: %s

Read it at:
%s

You are receiving this because you follow %s. Unfollow the company to stop these notifications.
	`, companyName, articleTitle, articleURL, companyName)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
