package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"github.com/csg33k/roster/internal/app"
	"github.com/csg33k/roster/internal/domain"
	"github.com/csg33k/roster/internal/observability"
	"github.com/csg33k/roster/internal/templates"
	"github.com/csg33k/roster/internal/validator"
)

type Handler struct {
	session *app.Session
	logger  *zap.Logger
	metrics *observability.Metrics
}

func New(session *app.Session, logger *zap.Logger, metrics *observability.Metrics) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{session: session, logger: logger, metrics: metrics}
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.index)
	mux.HandleFunc("GET /employees", h.workspace)
	mux.HandleFunc("POST /view/search", h.search)
	mux.HandleFunc("POST /view/filters", h.applyFilters)
	mux.HandleFunc("DELETE /view/filters", h.clearFilters)
	mux.HandleFunc("POST /view/sort", h.setSort)
	mux.HandleFunc("POST /view/page-size", h.setPageSize)
	mux.HandleFunc("POST /view/page/{n}", h.goToPage)
	mux.HandleFunc("GET /employees/new", h.openAdd)
	mux.HandleFunc("GET /employees/{id}/edit", h.openEdit)
	mux.HandleFunc("POST /employees/form/cancel", h.cancel)
	mux.HandleFunc("POST /employees", h.submit)
	mux.HandleFunc("DELETE /employees/{id}", h.deleteEmployee)
	mux.HandleFunc("GET /employees/report.pdf", h.report)
	mux.HandleFunc("GET /healthz", h.healthz)
	if h.metrics != nil {
		mux.Handle("GET /metrics", h.metrics.Handler())
	}
	return mux
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	h.metrics.RecordRender("index")
	render(w, r, templates.Index(h.session.Screen()))
}

func (h *Handler) workspace(w http.ResponseWriter, r *http.Request) {
	h.renderWorkspace(w, r, h.session.Screen())
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	h.renderWorkspace(w, r, h.session.Search(r.FormValue("search")))
}

func (h *Handler) applyFilters(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	h.renderWorkspace(w, r, h.session.ApplyFilters(domain.Filters{
		Name:       r.FormValue("filter_name"),
		Department: r.FormValue("filter_department"),
		Role:       r.FormValue("filter_role"),
	}))
}

func (h *Handler) clearFilters(w http.ResponseWriter, r *http.Request) {
	h.renderWorkspace(w, r, h.session.ClearFilters())
}

func (h *Handler) setSort(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	h.renderWorkspace(w, r, h.session.SetSort(r.FormValue("sort")))
}

// setPageSize re-renders the unchanged workspace when the size is rejected.
func (h *Handler) setPageSize(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	sc, err := h.session.SetPageSize(r.FormValue("page_size"))
	if err != nil && !errors.Is(err, app.ErrInvalidPageSize) {
		http.Error(w, err.Error(), 500)
		return
	}
	h.renderWorkspace(w, r, sc)
}

func (h *Handler) goToPage(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(r.PathValue("n"))
	if err != nil {
		http.Error(w, "invalid page", 400)
		return
	}
	h.renderWorkspace(w, r, h.session.GoToPage(n))
}

func (h *Handler) openAdd(w http.ResponseWriter, r *http.Request) {
	h.renderWorkspace(w, r, h.session.OpenAdd())
}

func (h *Handler) openEdit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", 400)
		return
	}
	h.renderWorkspace(w, r, h.session.OpenEdit(id))
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) {
	h.renderWorkspace(w, r, h.session.Cancel())
}

// submit answers a rejected record with 200 so htmx still swaps the form
// back in; the HX-Trigger header raises the alert on the page.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	sc := h.session.Submit(parseEmployeeForm(r))
	if sc.Rejected {
		trigger, err := json.Marshal(map[string]string{"validationFailed": validator.Message})
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		w.Header().Set("HX-Trigger", string(trigger))
	}
	h.renderWorkspace(w, r, sc)
}

func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", 400)
		return
	}
	h.renderWorkspace(w, r, h.session.Delete(id))
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.session.Report(r.Context(), &buf); err != nil {
		h.logger.Error("report generation failed", zap.Error(err))
		http.Error(w, err.Error(), 500)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="employee-roster.pdf"`)
	w.Write(buf.Bytes())
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

func (h *Handler) renderWorkspace(w http.ResponseWriter, r *http.Request, sc app.Screen) {
	h.metrics.RecordRender("workspace")
	render(w, r, templates.Workspace(sc))
}

// parseEmployeeForm reads the record form. Values are passed on untrimmed;
// the form controller normalizes them.
func parseEmployeeForm(r *http.Request) domain.FormFields {
	return domain.FormFields{
		ID:         r.FormValue("id"),
		FirstName:  r.FormValue("first_name"),
		LastName:   r.FormValue("last_name"),
		Email:      r.FormValue("email"),
		Department: r.FormValue("department"),
		Role:       r.FormValue("role"),
	}
}

// render writes a templ component to the response.
func render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), 500)
	}
}

func pathID(r *http.Request, key string) (int64, error) {
	return strconv.ParseInt(r.PathValue(key), 10, 64)
}
