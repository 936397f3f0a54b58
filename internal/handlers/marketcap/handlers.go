// Package marketcap serves the regional payroll market-cap estimate.
package marketcap

import (
	"net/http"
	"strconv"

	apihttp "salarycast/internal/http"
	"salarycast/internal/models"
	"salarycast/internal/services/marketcap"
)

// Handler serves estimates derived from the loaded dataset, with query
// parameter overrides for scenario exploration.
type Handler struct {
	Dataset *models.Dataset
}

// New creates a marketcap handler.
func New(ds *models.Dataset) *Handler {
	return &Handler{Dataset: ds}
}

// Response bundles the baseline estimate with the alternative-salary
// scenario sweep.
type Response struct {
	Baseline  marketcap.Result   `json:"baseline"`
	Scenarios []marketcap.Result `json:"scenarios"`
}

// HandleEstimate serves GET /api/marketcap. Query parameters n_active,
// avg_salary, high_percentile and high_salary override the figures
// derived from the dataset.
func (h *Handler) HandleEstimate(w http.ResponseWriter, r *http.Request) {
	params := marketcap.ParamsFromDataset(h.Dataset)
	q := r.URL.Query()

	if v := q.Get("n_active"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			apihttp.Error(w, "invalid n_active: "+v, http.StatusBadRequest)
			return
		}
		params.ActiveDoctors = n
	}
	overrides := []struct {
		key  string
		dest *float64
	}{
		{"avg_salary", &params.AvgSalary},
		{"high_percentile", &params.HighPercentile},
		{"high_salary", &params.HighSalary},
	}
	for _, o := range overrides {
		if v := q.Get(o.key); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil || f < 0 {
				apihttp.Error(w, "invalid "+o.key+": "+v, http.StatusBadRequest)
				return
			}
			*o.dest = f
		}
	}

	apihttp.WriteJSON(w, http.StatusOK, &Response{
		Baseline:  marketcap.Estimate(params),
		Scenarios: marketcap.Scenarios(params, []float64{params.AvgSalary, 55000, 65000}),
	})
}
