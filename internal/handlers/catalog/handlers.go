// Package catalog serves the static reference documents the UI
// populates its dropdowns from: specialties, job listings, and the
// finance parameters document.
package catalog

import (
	"net/http"

	apihttp "salarycast/internal/http"
	"salarycast/internal/models"
)

// Handler serves the loaded dataset.
type Handler struct {
	Dataset *models.Dataset
}

// New creates a catalog handler over a fully loaded dataset.
func New(ds *models.Dataset) *Handler {
	return &Handler{Dataset: ds}
}

// HandleSpecialties serves the specialty records.
func (h *Handler) HandleSpecialties(w http.ResponseWriter, r *http.Request) {
	apihttp.WriteJSON(w, http.StatusOK, h.Dataset.Specialties)
}

// HandleJobs serves job listings, optionally filtered by ?specialty=KEY.
func (h *Handler) HandleJobs(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("specialty")
	if key != "" && h.Dataset.SpecialtyByKey(key) == nil {
		apihttp.Error(w, "unknown specialty: "+key, http.StatusNotFound)
		return
	}
	jobs := h.Dataset.JobsForSpecialty(key)
	if jobs == nil {
		jobs = []models.Job{}
	}
	apihttp.WriteJSON(w, http.StatusOK, jobs)
}

// HandleFinanceParams serves the finance parameters document so the UI
// can display the defaults it will submit back.
func (h *Handler) HandleFinanceParams(w http.ResponseWriter, r *http.Request) {
	apihttp.WriteJSON(w, http.StatusOK, h.Dataset.Finance)
}
