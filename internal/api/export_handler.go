package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/courseforge-api/internal/api/shared"
	"github.com/phrazzld/courseforge-api/internal/domain"
	"github.com/phrazzld/courseforge-api/internal/export"
	"github.com/phrazzld/courseforge-api/internal/formatter"
)

// ExportContentRequest represents the request body for exporting previously
// generated content.
type ExportContentRequest struct {
	TopicTitle  string          `json:"topic_title" validate:"required"`
	ContentType string          `json:"content_type" validate:"required"`
	Columns     []string        `json:"columns" validate:"required,min=1"`
	Rows        []formatter.Row `json:"rows"`
}

// ExportHandler handles spreadsheet and JSON export HTTP requests
type ExportHandler struct {
	validator *validator.Validate
	logger    *slog.Logger
	now       func() time.Time
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		validator: validator.New(),
		logger:    logger,
		now:       time.Now,
	}
}

// ExportExcel handles POST /api/export/excel requests and streams back a
// styled workbook as a download.
func (h *ExportHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	content, req, ok := h.decodeContent(w, r)
	if !ok {
		return
	}

	buf, err := export.WriteExcel(content, req.TopicTitle)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.InfoContext(r.Context(), "exported workbook",
		"content_type", content.ContentType,
		"row_count", len(content.Rows),
		"size_bytes", buf.Len(),
		"trace_id", shared.GetTraceID(r.Context()))

	filename := export.Filename(req.TopicTitle, string(content.ContentType), "xlsx")
	w.Header().Set("Content-Type", export.ExcelMIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)

	if _, err := buf.WriteTo(w); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to stream workbook", "error", err)
	}
}

// ExportJSON handles POST /api/export/json requests and streams back the
// content wrapped in a metadata envelope.
func (h *ExportHandler) ExportJSON(w http.ResponseWriter, r *http.Request) {
	content, req, ok := h.decodeContent(w, r)
	if !ok {
		return
	}

	data, err := export.WriteJSON(content, req.TopicTitle, h.now())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	filename := export.Filename(req.TopicTitle, string(content.ContentType), "json")
	w.Header().Set("Content-Type", export.JSONMIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(data); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to stream JSON export", "error", err)
	}
}

// decodeContent parses and validates the export request body into formatted
// content. On failure it writes the error response and returns ok=false.
func (h *ExportHandler) decodeContent(
	w http.ResponseWriter,
	r *http.Request,
) (*formatter.FormattedContent, *ExportContentRequest, bool) {
	var req ExportContentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return nil, nil, false
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: missing or invalid fields")
		return nil, nil, false
	}

	contentType, err := domain.ParseContentType(req.ContentType)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return nil, nil, false
	}

	return &formatter.FormattedContent{
		ContentType: contentType,
		Columns:     req.Columns,
		Rows:        req.Rows,
	}, &req, true
}
