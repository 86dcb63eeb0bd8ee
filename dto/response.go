package dto

import "errors"

// Custom errors
var (
	ErrNoFileProvided = errors.New("no bill file provided")
	ErrFileTooLarge   = errors.New("bill file exceeds the maximum allowed size")
	ErrNoTextContent  = errors.New("no text could be extracted from the document")
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Code      int    `json:"code"`
}
