package subscriber

import "time"

// NewSubscriber is a validated registration request.
type NewSubscriber struct {
	Name  Name
	Email Email
}

// New pairs two already validated values.
func New(name Name, email Email) NewSubscriber {
	return NewSubscriber{Name: name, Email: email}
}

// Form is the raw, unvalidated submission.
type Form struct {
	Name  string `form:"name"`
	Email string `form:"email"`
}

// FromForm validates the name first, then the email, and returns the first
// failure. When both fields are invalid the error is always ErrInvalidName.
func FromForm(f Form) (NewSubscriber, error) {
	name, err := ParseName(f.Name)
	if err != nil {
		return NewSubscriber{}, err
	}
	email, err := ParseEmail(f.Email)
	if err != nil {
		return NewSubscriber{}, err
	}
	return New(name, email), nil
}

// Record is the persisted form of a subscriber. Email is unique across the
// store; Created is written once, on first insert.
type Record struct {
	Email   string
	Name    string
	Created time.Time
}
