package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kmdeleon/vendorbill-extraction/dto"
	"github.com/kmdeleon/vendorbill-extraction/utils/billtext"
)

// BillService drives one extraction per request: acquire text from the
// uploaded document, then run the field-extraction engine over it.
type BillService struct {
	pdfProcessor PDFProcessor
	parser       *billtext.Parser
	log          zerolog.Logger
}

func NewBillService(pdfProcessor PDFProcessor, parser *billtext.Parser, log zerolog.Logger) *BillService {
	return &BillService{
		pdfProcessor: pdfProcessor,
		parser:       parser,
		log:          log,
	}
}

// ExtractFromUpload reads the uploaded bill, acquires its text and
// returns the extracted record. A failed or empty text acquisition is
// the one fatal path: no partial record is emitted for it.
func (s *BillService) ExtractFromUpload(fileHeader *multipart.FileHeader, password string) (*dto.ExtractedDocument, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", fileHeader.Filename, err)
	}
	defer f.Close()

	fileBytes, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", fileHeader.Filename, err)
	}

	text, err := s.pdfProcessor.ExtractText(fileBytes, password)
	if err != nil {
		return nil, fmt.Errorf("text acquisition failed for %s: %w", fileHeader.Filename, err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: %s", dto.ErrNoTextContent, fileHeader.Filename)
	}

	s.log.Info().Str("filename", fileHeader.Filename).Int("text_len", len(text)).Msg("text acquired, running extraction")
	return s.ExtractFromText(text)
}

// ExtractFromText runs the engine over already-acquired text.
func (s *BillService) ExtractFromText(text string) (*dto.ExtractedDocument, error) {
	if strings.TrimSpace(text) == "" {
		return nil, dto.ErrNoTextContent
	}
	doc := s.parser.Parse(text)
	if doc.Diagnostics.FallbackLineSynthesized {
		s.log.Warn().Msg("extraction degraded to a synthesized fallback line")
	}
	return &doc, nil
}
