// Package response defines the envelope every villa operation answers with.
package response

import "net/http"

// Envelope is the uniform answer of every operation. Values are built per call and never shared.
type Envelope struct {
	StatusCode    int      `json:"statusCode"`
	IsSuccess     bool     `json:"isSuccess"`
	ErrorMessages []string `json:"errorMessages"`
	Result        any      `json:"result,omitempty"`
}

// New returns a fresh successful envelope with an empty error list.
func New() Envelope {
	return Envelope{StatusCode: http.StatusOK, IsSuccess: true, ErrorMessages: []string{}}
}

// OK returns a 200 envelope carrying result.
func OK(result any) Envelope {
	e := New()
	e.Result = result
	return e
}

// Created returns a 201 envelope carrying the created result.
func Created(result any) Envelope {
	e := New()
	e.StatusCode = http.StatusCreated
	e.Result = result
	return e
}

// NoContent returns a successful 204 envelope without a result.
func NoContent() Envelope {
	e := New()
	e.StatusCode = http.StatusNoContent
	return e
}

// Fail returns an unsuccessful envelope with status and messages.
func Fail(status int, messages ...string) Envelope {
	e := New()
	e.StatusCode = status
	e.IsSuccess = false
	e.ErrorMessages = append(e.ErrorMessages, messages...)
	return e
}

// BadRequest returns a 400 envelope with messages.
func BadRequest(messages ...string) Envelope {
	return Fail(http.StatusBadRequest, messages...)
}

// NotFound returns a 404 envelope with messages.
func NotFound(messages ...string) Envelope {
	return Fail(http.StatusNotFound, messages...)
}

// Internal folds an unexpected failure into the envelope, keeping its text for diagnostics.
func Internal(err error) Envelope {
	return Fail(http.StatusInternalServerError, err.Error())
}

// HasBody reports whether the envelope should be written as a response body.
func (e Envelope) HasBody() bool {
	return e.StatusCode != http.StatusNoContent
}
