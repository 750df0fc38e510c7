package infra

import (
	"errors"

	"venuebook/internal/pkg/errs"
)

type GatewayErrorKind string

// Gateway-specific error kinds. Transport covers network failures, timeouts
// and undecodable responses; the rest categorize remote rejections by status.
const (
	KindConflict       GatewayErrorKind = "CONFLICT"
	KindUnauthorized   GatewayErrorKind = "UNAUTHORIZED"
	KindInvalidPayload GatewayErrorKind = "INVALID_PAYLOAD"
	KindNotFound       GatewayErrorKind = "NOT_FOUND"
	KindRemoteFailure  GatewayErrorKind = "REMOTE_FAILURE"
	KindTransport      GatewayErrorKind = "TRANSPORT"
)

type GatewayError struct {
	Kind GatewayErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e GatewayError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e GatewayError) Unwrap() error {
	return e.err
}

// Message is the human-readable text surfaced to the user; the workflow does
// not interpret error bodies beyond this.
func (e GatewayError) Message() string {
	return e.msg
}

func WrapGatewayErr(msg string, err error, kind GatewayErrorKind) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return GatewayError{Kind: kind, msg: msg, err: err}
}

func NewGatewayErr(msg string, kind GatewayErrorKind) error {
	return GatewayError{Kind: kind, msg: msg}
}

func IsKind(err error, kind GatewayErrorKind) bool {
	var e GatewayError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// IsTransport distinguishes infrastructure failures from business rejections
// for logging. Both abort a submission the same way.
func IsTransport(err error) bool {
	return IsKind(err, KindTransport)
}

func GatewayMessage(err error) string {
	var e GatewayError
	if errors.As(err, &e) {
		return e.Message()
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
