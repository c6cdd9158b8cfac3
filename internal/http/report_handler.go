package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"holiday-reportbot/internal/domain"
	"holiday-reportbot/internal/report"
	"holiday-reportbot/internal/service"

	"go.uber.org/zap"
)

// ReportHandler 管理端回报汇总
type ReportHandler struct {
	Reports service.ReportService
	Logger  *zap.Logger
}

func NewReportHandler(reports service.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{Reports: reports, Logger: logger}
}

type reportQuery struct {
	reportType domain.ReportTypeID
	class      int
	date       time.Time
}

// parseReportQuery ?type=1&class=3&date=2024-05-01（date 省略为今天）
func parseReportQuery(r *http.Request) (reportQuery, error) {
	q := r.URL.Query()
	var out reportQuery

	out.reportType = domain.ReportTypeID(parseInt(q.Get("type"), 0))
	if !out.reportType.Valid() {
		return out, fmt.Errorf("invalid report type %q", q.Get("type"))
	}

	if q.Get("class") == "" {
		return out, errors.New("class is required")
	}
	out.class = parseInt(q.Get("class"), -1)
	if out.class < 0 {
		return out, fmt.Errorf("invalid class %q", q.Get("class"))
	}

	if d := q.Get("date"); d != "" {
		date, err := time.Parse("2006-01-02", d)
		if err != nil {
			return out, fmt.Errorf("invalid date %q", d)
		}
		out.date = date
	}
	return out, nil
}

// Summary GET /api/v1/reports/summary
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	q, err := parseReportQuery(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Fail(err.Error()))
		return
	}
	style := r.URL.Query().Get("style")
	if _, err := report.ParseStyle(style, q.reportType); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail(err.Error()))
		return
	}

	resp, err := h.Reports.Summary(r.Context(), service.SummaryRequest{
		ReportTypeID: q.reportType,
		ClassNumber:  q.class,
		Date:         q.date,
		Style:        style,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(resp))
}

// Export GET /api/v1/reports/export，回传 xlsx
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	q, err := parseReportQuery(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Fail(err.Error()))
		return
	}

	resp, err := h.Reports.Entries(r.Context(), service.EntriesRequest{
		ReportTypeID: q.reportType,
		ClassNumber:  q.class,
		Date:         q.date,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	data, err := GenerateReportExport(resp.ReportType, resp.Items)
	if err != nil {
		h.Logger.Error("Failed to generate report export", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("failed to generate export"))
		return
	}

	filename := fmt.Sprintf("report-%s-class%d-%s.xlsx", resp.ReportType.ID, q.class, resp.Date.Format("20060102"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// ListReportTypes GET /api/v1/report-types
func (h *ReportHandler) ListReportTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.Reports.ReportTypes(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(types))
}

func (h *ReportHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrReportTypeNotFound) {
		writeJSON(w, http.StatusNotFound, Fail(err.Error()))
		return
	}
	h.Logger.Error("Report query failed",
		zap.String("request_id", RequestIDFromContext(r.Context())),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	writeJSON(w, http.StatusInternalServerError, Fail("internal server error"))
}
