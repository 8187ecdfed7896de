package client

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Message - модель письма, уходит в почтовый шлюз
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type MailService interface {
	Send(ctx context.Context, message Message) error
}

var (
	ErrServiceUnavailable = errors.New("mail gateway unavailable")
	ErrMessageRejected    = errors.New("message rejected by gateway")
)

type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded"
}

func NewRateLimitError(headers http.Header) *RateLimitError {
	return &RateLimitError{
		RetryAfter: ParseRetryAfter(headers),
	}
}
