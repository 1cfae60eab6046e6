// internal/email/crm.go
package email

// CredentialsData fills the template mailed to newly created staff accounts.
type CredentialsData struct {
	Role     string
	Email    string
	Password string
}

// SendCredentials mails a newly created admin/supervisor/salesperson their
// generated login credentials.
func (s *Service) SendCredentials(to string, data CredentialsData) error {
	return s.SendEmail(EmailData{
		To:           to,
		FromName:     "Dealdesk CRM",
		Subject:      "Your CRM Account Credentials",
		TemplateName: "credentials",
		TemplateData: data,
	})
}

// PasswordResetData fills the password-reset OTP template.
type PasswordResetData struct {
	OTP string
}

// SendPasswordResetOTP mails the one-time code for a password reset. The code
// expires 15 minutes after issue.
func (s *Service) SendPasswordResetOTP(to string, data PasswordResetData) error {
	return s.SendEmail(EmailData{
		To:           to,
		FromName:     "Dealdesk CRM",
		Subject:      "Password Reset OTP",
		TemplateName: "password_reset",
		TemplateData: data,
	})
}
