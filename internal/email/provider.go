package email

// Provider sends outgoing mail. Services depend on this interface so
// tests can swap in a recorder and development can run without SMTP.
type Provider interface {
	Send(email *Email) error
}
