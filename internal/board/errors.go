package board

import (
	"errors"
	"fmt"
)

// Kind classifies an expected failure so callers can tell the user whether
// to fix their input, retry, or give up.
type Kind int

const (
	// KindTransport is the catch-all for gateway-level faults.
	KindTransport Kind = iota
	// KindMissingField means title or content was empty after trimming.
	KindMissingField
	// KindInvalidMediaType means the thumbnail payload is not an image.
	KindInvalidMediaType
	// KindSizeLimitExceeded means the thumbnail payload is over the limit.
	KindSizeLimitExceeded
	// KindUploadFailed means the blob store rejected the thumbnail write.
	KindUploadFailed
	// KindURLResolutionFailed means the upload succeeded but no public URL
	// could be produced for it.
	KindURLResolutionFailed
	// KindNotFound means no post matched the requested id.
	KindNotFound
	// KindTimeout means a remote call exceeded the gateway deadline.
	KindTimeout
)

// Error is an expected failure from a lifecycle operation. The message is
// safe to show to the user; the cause is for logs.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func newError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// KindOf extracts the failure kind from err, defaulting to KindTransport
// for anything that is not a board error.
func KindOf(err error) Kind {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindTransport
}

// UserMessage returns the user-facing message for err.
func UserMessage(err error) string {
	var be *Error
	if errors.As(err, &be) {
		return be.Message
	}
	return "unexpected error"
}
