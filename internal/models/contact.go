package models

// ContactMessage is a message submitted through the contact form. It is
// delivered and then discarded.
type ContactMessage struct {
	FullName string `json:"fullName" validate:"notblank,trimmin=2"`
	Email    string `json:"email" validate:"notblank,strict_email"`
	Phone    string `json:"phone" validate:"phone10"`
	Subject  string `json:"subject" validate:"notblank,trimmin=3"`
	Message  string `json:"message" validate:"notblank,trimmin=10"`
}
