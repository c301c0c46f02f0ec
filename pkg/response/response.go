package response

import (
	"encoding/json"
	"io"
)

// DefaultErrorMessage is used when a failure carries no message.
const DefaultErrorMessage = "unexpected error"

// NewOK builds a success envelope.
func NewOK(command string, result any, next ...NextAction) Envelope {
	return Envelope{
		OK:          true,
		Command:     command,
		Result:      result,
		NextActions: next,
	}
}

// NewFailure builds a failure document from err.
func NewFailure(err error) Failure {
	msg := DefaultErrorMessage
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return Failure{OK: false, Error: msg}
}

// Write encodes env as one JSON document followed by a newline.
func Write(w io.Writer, env Envelope) error {
	return encode(w, env)
}

// WriteError encodes the failure document for err.
func WriteError(w io.Writer, err error) error {
	return encode(w, NewFailure(err))
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
