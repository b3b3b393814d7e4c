package api

import "fmt"

// CallErrorKind различает причины неудачного обращения к OpenAI API.
// Любая из них нефатальна: вызывающий код деградирует к fallback значению.
type CallErrorKind string

const (
	ErrUnauthorized  CallErrorKind = "unauthorized"
	ErrTimeout       CallErrorKind = "timeout"
	ErrUnreachable   CallErrorKind = "unreachable"
	ErrProvider      CallErrorKind = "provider_error"
	ErrEmptyResponse CallErrorKind = "empty_response"
)

// CallError представляет типизированную ошибку обращения к модели
type CallError struct {
	Kind    CallErrorKind
	Message string
	cause   error
}

func (e *CallError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("openai call failed (%s): %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("openai call failed (%s)", e.Kind)
}

func (e *CallError) Unwrap() error {
	return e.cause
}

func newCallError(kind CallErrorKind, message string, cause error) *CallError {
	return &CallError{Kind: kind, Message: message, cause: cause}
}
