package mail

import (
	"fmt"
	"html"
	"sort"
	"strings"
	"time"
)

// HTML bodies for the four message kinds. Layout follows the BreadBox
// brand mails: yellow header, white card, grey footer.

const (
	wrapperTop = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background-color: #f4c430; padding: 20px; text-align: center; color: #fff;">
    <h1>BreadBox</h1>
  </div>
  <div style="padding: 20px; background-color: #fff;">`

	buttonStyle = `padding: 10px 20px; background-color: #f4c430; color: #fff; text-decoration: none;`
)

func wrapperBottom() string {
	return fmt.Sprintf(`</div>
  <div style="text-align: center; color: #777;">
    <p>BreadBox &copy; %d</p>
  </div>
</div>`, time.Now().Year())
}

func otpEmailBody(name, code string, kind OTPKind, role string) string {
	intro := "Thank you for choosing BreadBox! Please use the OTP below to verify your email."
	if kind == OTPKindResend {
		intro = fmt.Sprintf("New OTP for %s email verification.", role)
	}
	return wrapperTop + fmt.Sprintf(`
    <h2>Verify Your BreadBox %s Account</h2>
    <p>Dear %s,</p>
    <p>%s</p>
    <div style="font-size: 24px; font-weight: bold; color: #f4c430; text-align: center;">%s</div>
    <p>Valid for 10 minutes. Do not share.</p>
    <a href="https://breadbox.com/verify" style="%s">Verify Now</a>`,
		html.EscapeString(role), html.EscapeString(name), intro, code, buttonStyle) + wrapperBottom()
}

func updateEmailBody(name string, updatedFields map[string]string, role string) string {
	keys := make([]string, 0, len(updatedFields))
	for k := range updatedFields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var items strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&items, "<li><strong>%s:</strong> %s</li>",
			html.EscapeString(k), html.EscapeString(updatedFields[k]))
	}

	return wrapperTop + fmt.Sprintf(`
    <h2>%s Account Updated</h2>
    <p>Dear %s,</p>
    <p>Your BreadBox %s account was updated.</p>
    <ul>%s</ul>
    <a href="https://breadbox.com/%s-dashboard" style="%s">Go to Dashboard</a>`,
		html.EscapeString(role), html.EscapeString(name), html.EscapeString(role),
		items.String(), strings.ToLower(role), buttonStyle) + wrapperBottom()
}

func passwordEmailBody(name, role string) string {
	return wrapperTop + fmt.Sprintf(`
    <h2>Password Updated</h2>
    <p>Dear %s,</p>
    <p>Your BreadBox %s account password was updated.</p>
    <a href="https://breadbox.com/%s-dashboard" style="%s">Go to Dashboard</a>`,
		html.EscapeString(name), html.EscapeString(role), strings.ToLower(role), buttonStyle) + wrapperBottom()
}

func deletionEmailBody(email, name, role string) string {
	return wrapperTop + fmt.Sprintf(`
    <h2>%s Account Deleted</h2>
    <p>Dear %s,</p>
    <p>Your BreadBox %s account (%s) was deleted.</p>
    <p>Sorry to see you go! Rejoin anytime.</p>
    <a href="https://breadbox.com" style="%s">Visit BreadBox</a>`,
		html.EscapeString(role), html.EscapeString(name), html.EscapeString(role),
		html.EscapeString(email), buttonStyle) + wrapperBottom()
}
