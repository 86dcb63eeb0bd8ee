package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kmdeleon/vendorbill-extraction/dto"
	"github.com/kmdeleon/vendorbill-extraction/service"
)

type BillHandler struct {
	billService *service.BillService
	maxFileSize int64
	log         zerolog.Logger
}

func NewBillHandler(billService *service.BillService, maxFileSize int64, log zerolog.Logger) *BillHandler {
	return &BillHandler{
		billService: billService,
		maxFileSize: maxFileSize,
		log:         log,
	}
}

// ExtractBill handles POST /bills/extract: a multipart PDF upload with
// an optional password for encrypted documents.
func (h *BillHandler) ExtractBill(c *gin.Context) {
	requestID := uuid.NewString()
	log := h.log.With().Str("request_id", requestID).Logger()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, requestID, dto.ErrNoFileProvided)
		return
	}

	request := &dto.ExtractBillRequest{
		File:     fileHeader,
		Password: c.PostForm("password"),
	}
	if err := request.Validate(h.maxFileSize); err != nil {
		h.sendError(c, http.StatusBadRequest, requestID, err)
		return
	}

	log.Info().Str("filename", fileHeader.Filename).Int64("size", fileHeader.Size).Msg("received bill extraction request")

	doc, err := h.billService.ExtractFromUpload(request.File, request.Password)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, dto.ErrNoTextContent) {
			status = http.StatusUnprocessableEntity
		}
		log.Error().Err(err).Msg("bill extraction failed")
		h.sendError(c, status, requestID, err)
		return
	}

	log.Info().
		Int("items", len(doc.Lines.Items)).
		Int("expenses", len(doc.Lines.Expenses)).
		Int("rejected_rows", doc.Diagnostics.RejectedRowCount).
		Msg("bill extraction completed")
	c.JSON(http.StatusOK, doc)
}

// ExtractBillText handles POST /bills/extract-text: plain text from a
// caller that already ran its own text acquisition.
func (h *BillHandler) ExtractBillText(c *gin.Context) {
	requestID := uuid.NewString()

	var request dto.ExtractTextRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.sendError(c, http.StatusBadRequest, requestID, err)
		return
	}
	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, requestID, err)
		return
	}

	doc, err := h.billService.ExtractFromText(request.Text)
	if err != nil {
		h.log.Error().Str("request_id", requestID).Err(err).Msg("text extraction failed")
		h.sendError(c, http.StatusUnprocessableEntity, requestID, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// sendError sends a structured error response.
func (h *BillHandler) sendError(c *gin.Context, statusCode int, requestID string, err error) {
	c.JSON(statusCode, dto.ErrorResponse{
		Error:     "EXTRACTION_FAILED",
		Message:   err.Error(),
		RequestID: requestID,
		Code:      statusCode,
	})
}
