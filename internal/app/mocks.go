package app

import "fitclub_backend/internal/email"

// noopEmailProvider stands in when SMTP is not configured, so local
// development does not need a mail server.
type noopEmailProvider struct{}

func (p *noopEmailProvider) Send(msg *email.Email) error { return nil }
