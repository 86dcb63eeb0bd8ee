package service

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmdeleon/vendorbill-extraction/dto"
	"github.com/kmdeleon/vendorbill-extraction/utils/billtext"
)

// stubPDFProcessor returns canned text instead of reading a real PDF.
type stubPDFProcessor struct {
	text string
	err  error
}

func (s *stubPDFProcessor) ExtractText(pdfData []byte, password string) (string, error) {
	return s.text, s.err
}

func newTestService(proc PDFProcessor) *BillService {
	return NewBillService(proc, billtext.NewParser(zerolog.Nop()), zerolog.Nop())
}

func buildFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func TestExtractFromText(t *testing.T) {
	svc := newTestService(nil)

	doc, err := svc.ExtractFromText("Vendor: Acme Supplies Inc.\nSummary\nTax PHP12.00\nAmount PHP112.00\n")

	require.NoError(t, err)
	require.NotNil(t, doc.Header.PartyName)
	assert.Equal(t, "Acme Supplies Inc.", *doc.Header.PartyName)
	require.Len(t, doc.Lines.Expenses, 1)
	assert.Equal(t, billtext.SentinelAccountName, doc.Lines.Expenses[0].AccountName)
}

func TestExtractFromTextEmpty(t *testing.T) {
	svc := newTestService(nil)

	doc, err := svc.ExtractFromText("   \n  ")

	assert.Nil(t, doc)
	assert.ErrorIs(t, err, dto.ErrNoTextContent)
}

func TestExtractFromUpload(t *testing.T) {
	svc := newTestService(&stubPDFProcessor{text: "Vendor: Meralco\nBill # 4411\n"})
	fileHeader := buildFileHeader(t, "bill.pdf", []byte("%PDF-1.7 fake"))

	doc, err := svc.ExtractFromUpload(fileHeader, "")

	require.NoError(t, err)
	require.NotNil(t, doc.Header.PartyName)
	assert.Equal(t, "Meralco", *doc.Header.PartyName)
	require.NotNil(t, doc.Header.DocNumber)
	assert.Equal(t, "4411", *doc.Header.DocNumber)
}

func TestExtractFromUploadEmptyText(t *testing.T) {
	svc := newTestService(&stubPDFProcessor{text: "  "})
	fileHeader := buildFileHeader(t, "scanned.pdf", []byte("%PDF-1.7 fake"))

	doc, err := svc.ExtractFromUpload(fileHeader, "")

	assert.Nil(t, doc)
	assert.ErrorIs(t, err, dto.ErrNoTextContent)
}

func TestExtractFromUploadAcquisitionFailure(t *testing.T) {
	svc := newTestService(&stubPDFProcessor{err: assert.AnError})
	fileHeader := buildFileHeader(t, "broken.pdf", []byte("not a pdf"))

	doc, err := svc.ExtractFromUpload(fileHeader, "")

	assert.Nil(t, doc)
	assert.ErrorIs(t, err, assert.AnError)
}
