package email

// Attachment is an in-memory file attached to an outgoing message.
type Attachment struct {
	Name        string
	Content     []byte
	ContentType string
}

// Email is one outgoing message.
type Email struct {
	To          []string
	Subject     string
	Body        string
	HTMLBody    string
	Attachments []Attachment
}
