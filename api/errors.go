package api

import (
	"encoding/json"
	"errors"
)

type ErrorKind int

const (
	// KindBusiness is a domain rejection from the backend (insufficient
	// stock, invalid transition, declined payment). Its message is shown to
	// the user verbatim.
	KindBusiness ErrorKind = iota
	// KindTransport covers network failures and 5xx responses. The user gets
	// a generic retry message; the detail only goes to the log.
	KindTransport
	// KindUnauthorized is a 401 from any endpoint. The client tears the
	// session down when it sees one.
	KindUnauthorized
)

const (
	msgTryAgainLater   = "Something went wrong. Please try again later."
	msgSessionExpired  = "Your session has expired. Please log in again."
	msgRequestRejected = "Request was rejected by the server."
)

type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindUnauthorized
}

func IsBusiness(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindBusiness
}

// extractMessage pulls the richest human-readable message out of an error
// body. The gateway services use "error" for domain failures and "message"
// for informational responses, in that order of usefulness.
func extractMessage(body []byte) string {
	var parsed struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Error != "" {
			return parsed.Error
		}
		if parsed.Message != "" {
			return parsed.Message
		}
	}
	return msgRequestRejected
}
