// Package voice defines the speech-to-text seam for the chat input. The
// recognizer is an opaque text producer; nothing about audio capture or
// recognition is specified here.
package voice

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when no recognizer is configured.
var ErrUnavailable = errors.New("voice input unavailable")

// Recognizer converts one spoken utterance into text for the chat input.
type Recognizer interface {
	Transcribe(ctx context.Context) (string, error)
}

// Disabled is the default Recognizer; it always reports unavailability.
type Disabled struct{}

func (Disabled) Transcribe(context.Context) (string, error) {
	return "", ErrUnavailable
}
