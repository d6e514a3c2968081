package domain

import "time"

// Message is a contact-us submission. Append-only.
type Message struct {
	ID      string
	Name    string
	Email   string
	Message string
	SentAt  time.Time
}
