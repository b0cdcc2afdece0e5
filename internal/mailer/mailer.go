package mailer

import (
	"context"
	"fmt"
)

// Attachment is one file in the outgoing bundle, fully buffered.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Message is a single outbound email. Attachments are sent in slice order.
type Message struct {
	To          string
	Subject     string
	HTMLBody    string
	Attachments []Attachment
}

// Mailer delivers a message to its recipient. Implementations must either
// accept the full bundle or fail; there is no partial delivery and no retry.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Kind distinguishes delivery failures the operator must fix (credentials)
// from ones worth resubmitting later.
type Kind string

const (
	KindAuth      Kind = "AUTH"
	KindTransient Kind = "TRANSIENT"
)

// DeliveryError wraps a transport error with its classification.
type DeliveryError struct {
	Kind Kind
	Err  error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery failed (%s): %v", e.Kind, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }
