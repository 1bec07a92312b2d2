package mail

import (
	"fmt"
	"net/smtp"

	"github.com/Akashnaii/Breadbox/config"
	"github.com/Akashnaii/Breadbox/pkg/logger"
)

// OTPKind distinguishes the first code sent at registration from a
// resent one; only the email copy differs.
type OTPKind string

const (
	OTPKindRegister OTPKind = "register"
	OTPKindResend   OTPKind = "resend"
)

// Notifier is the outbound mail boundary. All sends are fire-and-forget:
// a delivery failure never fails the request that triggered it, it is
// only logged.
type Notifier interface {
	SendOTP(to, name, code string, kind OTPKind, role string)
	SendProfileUpdated(to, name string, updatedFields map[string]string, role string)
	SendPasswordChanged(to, name, role string)
	SendAccountDeleted(to, name, role string)
}

// SMTPNotifier delivers mail over SMTP (gmail-style submission).
// With no credentials configured it degrades to logging the message,
// which keeps local development working without a mail account.
type SMTPNotifier struct {
	cfg config.SMTPConfig
}

func NewSMTPNotifier(cfg config.SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg}
}

func (n *SMTPNotifier) SendOTP(to, name, code string, kind OTPKind, role string) {
	subject := fmt.Sprintf("Verify Your BreadBox %s Account", role)
	if kind == OTPKindResend {
		subject = fmt.Sprintf("Resend OTP - BreadBox %s Verification", role)
	}
	n.dispatch(to, subject, otpEmailBody(name, code, kind, role))
}

func (n *SMTPNotifier) SendProfileUpdated(to, name string, updatedFields map[string]string, role string) {
	subject := fmt.Sprintf("BreadBox %s Account Update", role)
	n.dispatch(to, subject, updateEmailBody(name, updatedFields, role))
}

func (n *SMTPNotifier) SendPasswordChanged(to, name, role string) {
	subject := fmt.Sprintf("BreadBox %s Password Update", role)
	n.dispatch(to, subject, passwordEmailBody(name, role))
}

func (n *SMTPNotifier) SendAccountDeleted(to, name, role string) {
	subject := fmt.Sprintf("BreadBox %s Account Deletion", role)
	n.dispatch(to, subject, deletionEmailBody(to, name, role))
}

// dispatch sends asynchronously, best-effort.
func (n *SMTPNotifier) dispatch(to, subject, htmlBody string) {
	go func() {
		if n.cfg.From == "" || n.cfg.Password == "" {
			logger.Info("[DEV MODE] Email suppressed, no SMTP credentials", map[string]interface{}{
				"to":      to,
				"subject": subject,
			})
			return
		}

		message := []byte(fmt.Sprintf(
			"From: \"BreadBox\" <%s>\r\n"+
				"To: %s\r\n"+
				"Subject: %s\r\n"+
				"MIME-Version: 1.0\r\n"+
				"Content-Type: text/html; charset=UTF-8\r\n"+
				"\r\n"+
				"%s",
			n.cfg.From, to, subject, htmlBody,
		))

		auth := smtp.PlainAuth("", n.cfg.From, n.cfg.Password, n.cfg.Host)
		addr := n.cfg.Host + ":" + n.cfg.Port

		if err := smtp.SendMail(addr, auth, n.cfg.From, []string{to}, message); err != nil {
			logger.Error("Failed to send email", err, map[string]interface{}{
				"to":      to,
				"subject": subject,
			})
			return
		}

		logger.Info("Email sent", map[string]interface{}{
			"to":      to,
			"subject": subject,
		})
	}()
}
