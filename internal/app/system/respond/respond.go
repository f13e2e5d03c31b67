// internal/app/system/respond/respond.go
//
// Package respond writes the JSON envelope every clubhub endpoint returns:
//
//	{ "success": bool, "data"?: any, "error"?: string }
package respond

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

// MaxBodyBytes caps request bodies accepted by Decode.
const MaxBodyBytes = 1 << 20

// Envelope is the response wrapper.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// JSON writes env with the given status code.
func JSON(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

// OK writes 200 with data.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, Envelope{Success: true, Data: data})
}

// Created writes 201 with data.
func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, Envelope{Success: true, Data: data})
}

// Fail writes a failure envelope carrying msg.
func Fail(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, Envelope{Success: false, Error: msg})
}

// BodyError is returned by Decode for bodies the client must fix.
// Its message is safe to show to the caller.
type BodyError struct {
	Msg string
}

func (e *BodyError) Error() string { return e.Msg }

// Decode reads a single JSON object from r's body into dst.
// Bodies larger than MaxBodyBytes are rejected.
func Decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.Is(err, io.EOF):
			return &BodyError{Msg: "Request body is empty."}
		case errors.As(err, &maxErr):
			return &BodyError{Msg: "Request body is too large."}
		case errors.As(err, &typeErr) && typeErr.Field != "":
			return &BodyError{Msg: "Field " + typeErr.Field + " has the wrong type."}
		default:
			return &BodyError{Msg: "Request body must be valid JSON."}
		}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return &BodyError{Msg: "Request body must contain a single JSON object."}
	}
	return nil
}

// IsBodyError reports whether err came from Decode rejecting the body.
func IsBodyError(err error) (string, bool) {
	var be *BodyError
	if errors.As(err, &be) {
		return strings.TrimSpace(be.Msg), true
	}
	return "", false
}
