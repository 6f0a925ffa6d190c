package ai

import (
	"errors"
	"fmt"

	"github.com/promptlab/llmbridge/internal/utils"
)

// ErrorKind classifies adapter failures into the four stages where a provider
// call can go wrong.
type ErrorKind string

const (
	// ErrTransport covers connection-level failures: DNS, refused
	// connections, timeouts, broken pipes.
	ErrTransport ErrorKind = "transport"
	// ErrProtocol covers non-2xx HTTP responses.
	ErrProtocol ErrorKind = "protocol"
	// ErrDecode covers malformed or unexpectedly shaped response JSON.
	ErrDecode ErrorKind = "decode"
	// ErrSemantic covers structurally valid but unusable responses:
	// no choices/candidates, usage-metadata-only embeddings, or an
	// operation the provider does not support.
	ErrSemantic ErrorKind = "semantic"
)

// Error is the structured failure type shared by every adapter. It carries a
// kind tag and the original cause so callers can branch on the failure stage
// with errors.As instead of parsing formatted strings. Formatting happens only
// here, at the boundary.
type Error struct {
	Kind     ErrorKind
	Provider ProviderName
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s error: %v", e.Provider, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// SemanticError builds a semantic-kind *Error from a plain description.
func SemanticError(provider ProviderName, format string, args ...any) *Error {
	return &Error{Kind: ErrSemantic, Provider: provider, Err: fmt.Errorf(format, args...)}
}

// ClassifyError wraps an HTTP-layer failure from utils.DoPostSync into an
// *Error with the matching kind: StatusError maps to protocol, DecodeError to
// decode, anything else to transport. Errors that are already classified pass
// through untouched.
func ClassifyError(provider ProviderName, err error) *Error {
	var already *Error
	if errors.As(err, &already) {
		return already
	}

	kind := ErrTransport
	var statusErr *utils.StatusError
	var decodeErr *utils.DecodeError
	switch {
	case errors.As(err, &statusErr):
		kind = ErrProtocol
	case errors.As(err, &decodeErr):
		kind = ErrDecode
	}

	return &Error{Kind: kind, Provider: provider, Err: err}
}
