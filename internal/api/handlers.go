// Package api serves the job listing read interface as JSON.
package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/amishk599/careerfeed/internal/filter"
	"github.com/amishk599/careerfeed/internal/jobs"
	"github.com/amishk599/careerfeed/internal/model"
)

// Reader is the subset of jobs.Service the API needs.
type Reader interface {
	List(ctx context.Context, order jobs.Order) []model.Job
	JobBySlug(ctx context.Context, slug string) (model.Job, bool)
	Slugs(ctx context.Context) []string
	Departments(ctx context.Context) []string
	Locations(ctx context.Context) []string
}

var _ Reader = (*jobs.Service)(nil)

// JobsReply is the list response.
type JobsReply struct {
	Order string      `json:"order"`
	Count int         `json:"count"`
	Jobs  []model.Job `json:"jobs"`
}

// ErrorReply is returned for every non-2xx response.
type ErrorReply struct {
	Error string `json:"error"`
}

type handlers struct {
	reader Reader
}

func (h *handlers) listJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	order, err := jobs.ParseOrder(q.Get("order"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	list := h.reader.List(r.Context(), order)
	criteria := filter.Criteria{
		Department: q.Get("department"),
		Location:   q.Get("location"),
		Query:      q.Get("q"),
	}
	list = filter.Apply(list, criteria)

	render.JSON(w, r, JobsReply{Order: string(order), Count: len(list), Jobs: list})
}

func (h *handlers) getJob(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	job, ok := h.reader.JobBySlug(r.Context(), slug)
	if !ok {
		writeError(w, r, http.StatusNotFound, "job not found")
		return
	}
	render.JSON(w, r, job)
}

func (h *handlers) slugs(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.reader.Slugs(r.Context()))
}

func (h *handlers) departments(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.reader.Departments(r.Context()))
}

func (h *handlers) locations(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.reader.Locations(r.Context()))
}

func healthz(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, ErrorReply{Error: msg})
}
