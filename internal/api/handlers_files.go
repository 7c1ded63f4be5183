package api

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "sheetdesk/internal/errors"
	"sheetdesk/internal/metrics"
	"sheetdesk/models"
)

const uploadField = "file"

// Accepted spreadsheet suffixes. Matching is case-sensitive.
var excelExtensions = []string{".xlsx", ".xls"}

type uploadResponse struct {
	Message  string          `json:"message"`
	Filename string          `json:"filename"`
	Headers  []string        `json:"headers"`
	Data     []models.Record `json:"data"`
}

// handleUpload parses an uploaded spreadsheet and returns its headers and rows
func (s *Server) handleUpload(c *gin.Context) {
	header, err := c.FormFile(uploadField)
	if c.Request.MultipartForm != nil {
		defer c.Request.MultipartForm.RemoveAll()
	}
	if err != nil {
		metrics.ObserveUpload(metrics.UploadRejected, 0)
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			s.fail(c, apperrors.PayloadTooLarge(s.maxUploadBytes))
		case hasFormValue(c, uploadField):
			// a file input submitted without a selection arrives as a plain form value
			s.fail(c, apperrors.ValidationError("No file selected"))
		default:
			s.fail(c, apperrors.ValidationError("No file part in the request"))
		}
		return
	}

	filename := header.Filename
	if filename == "" {
		metrics.ObserveUpload(metrics.UploadRejected, 0)
		s.fail(c, apperrors.ValidationError("No file selected"))
		return
	}
	if !hasExcelExtension(filename) {
		metrics.ObserveUpload(metrics.UploadRejected, 0)
		s.requestLogger(c).Warn("[handleUpload] rejected file with unsupported extension: %s", filename)
		s.fail(c, apperrors.UnsupportedTypeError("Invalid file type. Please upload an Excel file (.xlsx or .xls)"))
		return
	}

	data, err := readUpload(header)
	if err != nil {
		metrics.ObserveUpload(metrics.UploadFailed, 0)
		s.fail(c, apperrors.ProcessingError(err))
		return
	}

	wb, err := s.reader.ReadWorkbook(c.Request.Context(), data)
	if err != nil {
		metrics.ObserveUpload(metrics.UploadFailed, 0)
		s.fail(c, apperrors.ProcessingError(err))
		return
	}

	metrics.ObserveUpload(metrics.UploadProcessed, len(wb.Records))
	s.requestLogger(c).Info("[handleUpload] processed file %s (%s, %d columns, %d records)",
		filename, wb.Format, len(wb.Headers), len(wb.Records))

	c.JSON(http.StatusOK, uploadResponse{
		Message:  "File processed successfully",
		Filename: filename,
		Headers:  wb.Headers,
		Data:     wb.Records,
	})
}

func hasExcelExtension(filename string) bool {
	for _, ext := range excelExtensions {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}

func hasFormValue(c *gin.Context, field string) bool {
	if c.Request.MultipartForm == nil {
		return false
	}
	_, ok := c.Request.MultipartForm.Value[field]
	return ok
}

// readUpload buffers the whole uploaded file
func readUpload(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
