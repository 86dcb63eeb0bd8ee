package dto

import (
	"errors"
	"mime/multipart"
)

// ExtractBillRequest represents the incoming multipart upload.
type ExtractBillRequest struct {
	File     *multipart.FileHeader `form:"file" binding:"required"`
	Password string                `form:"password"`
}

// Validate performs basic validation on the request.
func (r *ExtractBillRequest) Validate(maxFileSize int64) error {
	if r.File == nil {
		return ErrNoFileProvided
	}
	if r.File.Size > maxFileSize {
		return ErrFileTooLarge
	}
	return nil
}

// ExtractTextRequest carries text that already went through an external
// text-acquisition step.
type ExtractTextRequest struct {
	Text string `json:"text" binding:"required"`
}

// Validate checks the text payload.
func (r *ExtractTextRequest) Validate() error {
	if r.Text == "" {
		return errors.New("text is required")
	}
	return nil
}
