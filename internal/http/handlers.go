package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"emissioni/internal/chart"
	"emissioni/internal/core"
	"emissioni/internal/sheet"
	"emissioni/internal/uploads"
)

// MIME type offered back on download, matching what the upload control
// accepts.
const spreadsheetMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "path", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	data := struct {
		MaxUploadMB int64
	}{
		MaxUploadMB: s.maxUploadBytes >> 20,
	}
	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", "error", err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleUpload runs the whole pipeline for one uploaded workbook:
// decode, validate required columns, aggregate by month, store the
// result for the chart and download links.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	filename, data, err := parseUploadRequest(w, r, s.maxUploadBytes)
	if err != nil {
		slog.WarnContext(r.Context(), "Upload request rejected", "error", err)
		observeUpload("bad_request", len(data))
		NewHTMXResponse().
			Status(http.StatusBadRequest).
			ErrorBody("Nessun file ricevuto. Seleziona un file Excel e riprova.").
			Write(w)
		return
	}

	table, err := sheet.Decode(data)
	if err != nil {
		// Malformed bytes are the uncaught tier: no dedicated message,
		// just the generic error surface.
		slog.ErrorContext(r.Context(), "Workbook decode failed", "error", err, "file_name", filename, "file_bytes", len(data))
		observeUpload("decode_error", len(data))
		NewHTMXResponse().
			Status(http.StatusInternalServerError).
			ErrorBody("Impossibile leggere il file caricato.").
			Write(w)
		return
	}

	readings, err := sheet.Readings(table)
	switch {
	case errors.Is(err, core.ErrMissingDateColumn), errors.Is(err, core.ErrMissingCO2Column):
		// The one user-recoverable error: stop before aggregation.
		slog.WarnContext(r.Context(), "Required columns missing", "error", err, "file_name", filename, "columns", strings.Join(table.Columns, ","))
		observeUpload("missing_columns", len(data))
		NewHTMXResponse().
			Status(http.StatusUnprocessableEntity).
			ErrorBody("Il file Excel deve contenere le colonne 'Date' e 'CO2'.").
			Write(w)
		return
	case err != nil:
		slog.ErrorContext(r.Context(), "Reading extraction failed", "error", err, "file_name", filename)
		observeUpload("parse_error", len(data))
		NewHTMXResponse().
			Status(http.StatusInternalServerError).
			ErrorBody("Errore durante l'elaborazione del file.").
			Write(w)
		return
	}

	buckets := core.AggregateMonthly(readings)
	id := s.store.Put(uploads.Upload{
		Filename: filename,
		Data:     data,
		Buckets:  buckets,
	})

	observeUpload("ok", len(data))
	slog.InfoContext(r.Context(), "Upload processed",
		"upload_id", id,
		"file_name", filename,
		"file_bytes", len(data),
		"rows", len(readings),
		"months", len(buckets))

	body, err := s.renderReport(id, filename, buckets)
	if err != nil {
		slog.ErrorContext(r.Context(), "Report template execution failed", "error", err, "template", "report.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	NewHTMXResponse().
		Trigger("upload:completed", map[string]string{"id": id}).
		Body(body).
		Write(w)
}

func (s *Server) renderReport(id, filename string, buckets []core.MonthlyBucket) ([]byte, error) {
	if s.templates == nil {
		return nil, errors.New("templates not loaded")
	}

	data := struct {
		ID       string
		Filename string
		Months   int
		Total    string
	}{
		ID:       id,
		Filename: filename,
		Months:   len(buckets),
		Total:    fmt.Sprintf("%.2f", core.TotalOf(buckets)),
	}

	var buf strings.Builder
	if err := s.templates.ExecuteTemplate(&buf, "report.html", data); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}

// handleChart serves the rendered line chart page for one upload.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/chart/")
	up, ok := s.store.Get(id)
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := chart.RenderLine(w, "Emissioni CO₂ mensili", up.Buckets); err != nil {
		slog.ErrorContext(r.Context(), "Chart rendering failed", "error", err, "upload_id", id)
	}
}

// handleDownload offers the originally uploaded bytes back verbatim.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/download/")
	up, ok := s.store.Get(id)
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", spreadsheetMIME)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", sanitizeFilename(up.Filename)))
	_, _ = w.Write(up.Data)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	status := "ready"
	httpStatus := http.StatusOK
	checks := make(map[string]any)

	if s.templates == nil {
		checks["templates"] = "failed: templates not loaded"
		status = "not_ready"
		httpStatus = http.StatusServiceUnavailable
	} else {
		checks["templates"] = "ok"
	}

	checks["uploads"] = map[string]any{
		"entries": s.store.Len(),
		"status":  "ok",
	}
	checks["rate_limiter"] = map[string]any{
		"active_clients": s.rateLimiter.activeClients(),
		"status":         "ok",
	}

	w.WriteHeader(httpStatus)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
		"checks":    checks,
	})
}
