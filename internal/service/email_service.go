package service

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// EmailService sends transactional email via Amazon SES
type EmailService struct {
	client     *sesv2.Client
	fromEmail  string
	fromName   string
	appBaseURL string
	enabled    bool
}

// NewEmailService creates a new email service. Without a configured sender
// identity the service is disabled and sends become logged no-ops.
func NewEmailService(awsRegion, fromEmail, fromName, appBaseURL string) (*EmailService, error) {
	if fromEmail == "" {
		log.Println("Email service disabled: SES_FROM_EMAIL not configured")
		return &EmailService{enabled: false}, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Printf("Email service enabled: from=%s, region=%s", fromEmail, awsRegion)

	return &EmailService{
		client:     sesv2.NewFromConfig(cfg),
		fromEmail:  fromEmail,
		fromName:   fromName,
		appBaseURL: appBaseURL,
		enabled:    true,
	}, nil
}

// IsEnabled returns whether the email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.enabled
}

// SendPasswordResetEmail sends the reset link for a password-reset token
func (s *EmailService) SendPasswordResetEmail(ctx context.Context, toEmail, toName, resetToken string) error {
	if !s.enabled {
		log.Printf("Skipping email send (service disabled): password reset to %s", toEmail)
		return nil
	}

	resetLink := fmt.Sprintf("%s/reset_password/%s", s.appBaseURL, resetToken)

	subject := "Вiдновлення пароля — Elevix"
	textBody := fmt.Sprintf(`Вітаємо, %s!

Щоб вiдновити пароль, перейдіть за посиланням:
%s

Посилання дійсне протягом 1 години.

Якщо ви не запитували відновлення пароля, просто проігноруйте цей лист.

---
Цей лист надіслано автоматично, не відповідайте на нього.
`, toName, resetLink)

	htmlBody := fmt.Sprintf(`<p>Вітаємо, %s!</p>
<p>Щоб вiдновити пароль, перейдіть за посиланням:</p>
<p><a href="%s">Вiдновити пароль</a></p>
<p><strong>Посилання дійсне протягом 1 години.</strong></p>
<p>Якщо ви не запитували відновлення пароля, просто проігноруйте цей лист.</p>
`, toName, resetLink)

	return s.sendEmail(ctx, toEmail, subject, htmlBody, textBody)
}

// SendWelcomeEmail greets a newly registered member
func (s *EmailService) SendWelcomeEmail(ctx context.Context, toEmail, toName string) error {
	if !s.enabled {
		log.Printf("Skipping email send (service disabled): welcome to %s", toEmail)
		return nil
	}

	subject := "Ласкаво просимо до Elevix!"
	textBody := fmt.Sprintf(`Вітаємо, %s!

Дякуємо за реєстрацію у спортзалі Elevix. Обирайте послуги, бронюйте тренування
та слідкуйте за розкладом у своєму кабінеті.

Увійти: %s/login
`, toName, s.appBaseURL)

	htmlBody := fmt.Sprintf(`<p>Вітаємо, %s!</p>
<p>Дякуємо за реєстрацію у спортзалі Elevix. Обирайте послуги, бронюйте тренування
та слідкуйте за розкладом у своєму кабінеті.</p>
<p><a href="%s/login">Увійти</a></p>
`, toName, s.appBaseURL)

	return s.sendEmail(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *EmailService) sendEmail(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}

	log.Printf("Email sent: to=%s, subject=%s", toEmail, subject)
	return nil
}
