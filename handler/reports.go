package handler

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/urbanfix/urbanfix"
	"github.com/urbanfix/urbanfix/geo"
	"github.com/urbanfix/urbanfix/http/middleware"
	"github.com/urbanfix/urbanfix/http/req"
	"github.com/urbanfix/urbanfix/http/resp"
	"github.com/urbanfix/urbanfix/http/router"
	"github.com/urbanfix/urbanfix/postgres"
)

// The ReportStorer is the slice of report persistence handlers rely on.
type ReportStorer interface {
	All(filter postgres.ReportFilter) ([]urbanfix.Report, error)
	Count(filter postgres.ReportFilter) (int64, error)
	Counties() ([]postgres.CountyCount, error)
	Create(report *urbanfix.Report) error
	Delete(id uint) error
	FindByID(id uint) (urbanfix.Report, error)
	UpdateStatus(id uint, status urbanfix.ReportStatus) error
}

// A ReportsHandler owns the report endpoints.
type ReportsHandler struct {
	d       *resp.Responder
	p       *req.Parser
	reports ReportStorer
	locator geo.Locator
}

func NewReportsHandler(d *resp.Responder, p *req.Parser, reports ReportStorer, locator geo.Locator) *ReportsHandler {
	return &ReportsHandler{d: d, p: p, reports: reports, locator: locator}
}

type createReportBody struct {
	Category    string  `json:"category" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Severity    int     `json:"severity" validate:"gte=1,lte=5"`
	Lat         float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng         float64 `json:"lng" validate:"required,gte=-180,lte=180"`
}

type reportFilterParams struct {
	County   string `schema:"county"`
	Status   string `schema:"status" validate:"omitempty,oneof=submitted in-progress resolved"`
	Username string `schema:"username"`
}

type updateStatusBody struct {
	Status urbanfix.ReportStatus `json:"status" validate:"required,enum"`
}

// Create files a new report under the authenticated user,
// resolving locality and county from the coordinates.
func (h *ReportsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body createReportBody
	if err := h.p.ParseBody(r.Body, &body); err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	user, _ := middleware.CurrentUser(r.Context())

	report := urbanfix.Report{
		Category:    body.Category,
		Description: body.Description,
		Severity:    body.Severity,
		Lat:         body.Lat,
		Lng:         body.Lng,
		Status:      urbanfix.ReportSubmitted,
		Username:    user.Username,
	}

	// A geocoder outage never blocks a submission.
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	place, err := h.locator.Locate(ctx, body.Lat, body.Lng)
	if err != nil {
		place = geo.Place{Locality: geo.UnknownPlace, County: geo.UnknownPlace}
	}
	report.Locality = place.Locality
	report.County = place.County

	if err := h.reports.Create(&report); err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	h.d.Json(w, r, resp.Code(http.StatusCreated), resp.Data(report))
}

// List returns reports matching the query filters, most recent first.
func (h *ReportsHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}

	reports, err := h.reports.All(filter)
	if err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	h.d.Json(w, r, resp.Data(reports))
}

// Get returns a single report by ID.
func (h *ReportsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := router.ParamAs[uint](r, "id")
	if err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	report, err := h.reports.FindByID(id)
	if err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	h.d.Json(w, r, resp.Data(report))
}

// Count returns the number of reports matching the query filters.
func (h *ReportsHandler) Count(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}

	count, err := h.reports.Count(filter)
	if err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	h.d.Json(w, r, resp.Data(map[string]int64{"count": count}))
}

// Counties returns per-county report counts for the authority dashboard.
func (h *ReportsHandler) Counties(w http.ResponseWriter, r *http.Request) {
	counts, err := h.reports.Counties()
	if err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	h.d.Json(w, r, resp.Data(counts))
}

// UpdateStatus moves a report through the triage workflow.
func (h *ReportsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := router.ParamAs[uint](r, "id")
	if err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	var body updateStatusBody
	if err := h.p.ParseBody(r.Body, &body); err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	if err := h.reports.UpdateStatus(id, body.Status); err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	h.d.Json(w, r, resp.Data(nil))
}

// Delete removes a report.
func (h *ReportsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := router.ParamAs[uint](r, "id")
	if err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	if err := h.reports.Delete(id); err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	h.d.Json(w, r, resp.Data(nil))
}

// ExportCSV streams every report matching the filters as CSV,
// for offline triage by authority staff.
func (h *ReportsHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}

	reports, err := h.reports.All(filter)
	if err != nil {
		respondErr(h.d, w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="reports.csv"`)

	cw := csv.NewWriter(w)
	cw.Write([]string{"id", "created_at", "category", "description", "severity", "lat", "lng", "locality", "county", "status", "username"})
	for _, report := range reports {
		cw.Write([]string{
			fmt.Sprint(report.ID),
			report.CreatedAt.Format(time.RFC3339),
			report.Category,
			report.Description,
			fmt.Sprint(report.Severity),
			fmt.Sprint(report.Lat),
			fmt.Sprint(report.Lng),
			report.Locality,
			report.County,
			report.Status.String(),
			report.Username,
		})
	}
	cw.Flush()
}

func (h *ReportsHandler) parseFilter(w http.ResponseWriter, r *http.Request) (postgres.ReportFilter, bool) {
	var params reportFilterParams
	if err := h.p.ParseQueryParams(r.URL.Query(), &params); err != nil {
		respondErr(h.d, w, r, err)
		return postgres.ReportFilter{}, false
	}

	return postgres.ReportFilter{
		County:   params.County,
		Status:   urbanfix.ReportStatus(params.Status),
		Username: params.Username,
	}, true
}
