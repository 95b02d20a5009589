package domain

import "time"

// ContactSubmission is a contact-form entry. No field is required; whatever
// subset the client sends is stored as-is.
type ContactSubmission struct {
	FullName  string    `bson:"fullName"`
	Email     string    `bson:"email"`
	Message   string    `bson:"message"`
	City      string    `bson:"city"`
	CreatedAt time.Time `bson:"created_at"`
}
