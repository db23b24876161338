package errmap

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	msgUnauthorized = "Your session has expired. Please sign in again."
	msgForbidden    = "You do not have permission to perform this action."
	msgNotFound     = "The requested record was not found."
	msgServerError  = "A server error occurred. Please try again later."

	// DefaultLoginRoute is where an expired session gets sent.
	DefaultLoginRoute = "/login"
	// DefaultRedirectDelay leaves the toast readable before the redirect fires.
	DefaultRedirectDelay = 2 * time.Second
)

// StatusError carries an explicit HTTP status code alongside the message, so
// callers that know the code do not have to rely on message sniffing.
type StatusError struct {
	Code int
	Err  error
}

func (e *StatusError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("status %d", e.Code)
}

func (e *StatusError) Unwrap() error { return e.Err }

// Notice is what the UI should show for a failed operation.
type Notice struct {
	Message       string        `json:"message"`
	Severity      string        `json:"severity"`
	Redirect      string        `json:"redirect,omitempty"`
	RedirectAfter time.Duration `json:"redirectAfter,omitempty"`
}

// Mapper translates errors into user-facing notices.
type Mapper struct {
	LoginRoute    string
	RedirectDelay time.Duration
}

func New() Mapper {
	return Mapper{LoginRoute: DefaultLoginRoute, RedirectDelay: DefaultRedirectDelay}
}

// Map turns err into a Notice. A structured StatusError is honored first;
// otherwise the message text is scanned for the four status substrings the
// frontend has always special-cased. Anything else shows the raw message.
func (m Mapper) Map(err error) Notice {
	if err == nil {
		return Notice{}
	}

	code := 0
	var se *StatusError
	if errors.As(err, &se) {
		code = se.Code
	} else {
		msg := err.Error()
		switch {
		case strings.Contains(msg, "401"):
			code = 401
		case strings.Contains(msg, "403"):
			code = 403
		case strings.Contains(msg, "404"):
			code = 404
		case strings.Contains(msg, "500"):
			code = 500
		}
	}

	switch code {
	case 401:
		return Notice{
			Message:       msgUnauthorized,
			Severity:      "error",
			Redirect:      m.LoginRoute,
			RedirectAfter: m.RedirectDelay,
		}
	case 403:
		return Notice{Message: msgForbidden, Severity: "error"}
	case 404:
		return Notice{Message: msgNotFound, Severity: "error"}
	case 500:
		return Notice{Message: msgServerError, Severity: "error"}
	default:
		return Notice{Message: err.Error(), Severity: "error"}
	}
}
