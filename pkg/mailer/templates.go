package mailer

import "fmt"

func greeting(name string) string {
	if name == "" {
		return "there"
	}
	return name
}

// WelcomeEmail renders the subject, text, and HTML bodies for the
// account-created notification.
func WelcomeEmail(name string) (subject, text, html string) {
	name = greeting(name)
	subject = "Welcome to FGC Platform"
	text = fmt.Sprintf("Hi %s,\n\nYour account has been created. You can now log in and set up your profile.\n\n— FGC Platform", name)
	html = fmt.Sprintf(`<p>Hi %s,</p><p>Your account has been created. You can now log in and set up your profile.</p><p>— FGC Platform</p>`, name)
	return
}

// PasswordChangedEmail renders the notification sent after a successful
// password change.
func PasswordChangedEmail(name string) (subject, text, html string) {
	name = greeting(name)
	subject = "Your password was changed"
	text = fmt.Sprintf("Hi %s,\n\nYour password was just changed. If this wasn't you, contact support immediately.\n\n— FGC Platform", name)
	html = fmt.Sprintf(`<p>Hi %s,</p><p>Your password was just changed. If this wasn't you, contact support immediately.</p><p>— FGC Platform</p>`, name)
	return
}
