// Package contact validates and records contact form submissions.
package contact

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client-facing validation errors. Their messages are returned verbatim in
// the 400 response body.
var (
	ErrMissingFields = errors.New("All fields are required")
	ErrInvalidEmail  = errors.New("Invalid email format")
)

// emailPattern wants text before a single @, a dot after the @ with text on
// both sides, and no whitespace. It is not RFC 5322.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Submission is the JSON body posted by the contact form.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Validate checks presence of every field, then the email format.
// Fields are not trimmed: a single space counts as present.
func (s Submission) Validate() error {
	if s.Name == "" || s.Email == "" || s.Message == "" {
		return ErrMissingFields
	}
	if !ValidEmail(s.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidEmail reports whether addr passes the contact form's email rule.
func ValidEmail(addr string) bool {
	return emailPattern.MatchString(addr)
}

// Message is an accepted submission with its identity and arrival time.
type Message struct {
	ID         string
	Name       string
	Email      string
	Body       string
	ReceivedAt time.Time
	RemoteIP   string
}

// NewMessage stamps s with a fresh ID and the current time.
func NewMessage(s Submission, remoteIP string) Message {
	return Message{
		ID:         uuid.NewString(),
		Name:       s.Name,
		Email:      s.Email,
		Body:       s.Message,
		ReceivedAt: time.Now().UTC(),
		RemoteIP:   remoteIP,
	}
}

// Recorder stores or forwards accepted messages.
type Recorder interface {
	Record(ctx context.Context, m Message) error
}

// LogRecorder writes each message to a zap logger.
type LogRecorder struct {
	Log *zap.Logger
}

// Record logs m at info level.
func (r LogRecorder) Record(_ context.Context, m Message) error {
	r.Log.Info("contact form submission",
		zap.String("id", m.ID),
		zap.String("name", m.Name),
		zap.String("email", m.Email),
		zap.String("message", m.Body),
		zap.String("remote_ip", m.RemoteIP),
		zap.Time("timestamp", m.ReceivedAt),
	)
	return nil
}

// Recorders fans a message out to several recorders in order, stopping at
// the first error.
type Recorders []Recorder

// Record implements Recorder.
func (rs Recorders) Record(ctx context.Context, m Message) error {
	for _, r := range rs {
		if err := r.Record(ctx, m); err != nil {
			return err
		}
	}
	return nil
}
