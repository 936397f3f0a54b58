// Package projector exposes the projection engine over the JSON API.
// Each request is mapped into an immutable engine config, run, and
// discarded; no state survives between invocations.
package projector

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	apihttp "salarycast/internal/http"
	"salarycast/internal/models"
	"salarycast/internal/report"
	"salarycast/internal/services/projection"
	"salarycast/internal/services/summary"
)

// Handler runs projections against the loaded finance parameters.
type Handler struct {
	Dataset *models.Dataset
	Summary *summary.Service
}

// New creates a projector handler.
func New(ds *models.Dataset) *Handler {
	return &Handler{Dataset: ds, Summary: summary.New()}
}

// Request carries the user-adjustable values and toggles from the UI.
// Rate fields are pointers so an omitted field falls back to the
// finance document default rather than to zero.
type Request struct {
	BaseGross        float64  `json:"base_gross"`
	Years            int      `json:"years"`
	SalaryInflation  *float64 `json:"salary_inflation,omitempty"`
	InvestmentReturn *float64 `json:"investment_return,omitempty"`
	InflationRate    *float64 `json:"inflation_rate,omitempty"`

	House          bool    `json:"house"`
	HousePrice     float64 `json:"house_price,omitempty"`
	HouseStartYear int     `json:"house_start_year,omitempty"`

	Car          bool    `json:"car"`
	CarPrice     float64 `json:"car_price,omitempty"`
	CarStartYear int     `json:"car_start_year,omitempty"`

	Family           bool    `json:"family"`
	FamilyAnnualCost float64 `json:"family_annual_cost,omitempty"`
}

// Response is the engine output plus everything the chart layer needs
// to render it: 1-based year labels, the KPI snapshot, and a scenario
// id for correlating chart updates.
type Response struct {
	ScenarioID string             `json:"scenario_id"`
	YearLabels []string           `json:"year_labels"`
	Series     *projection.Result `json:"series"`
	Summary    *summary.Snapshot  `json:"summary"`
}

// buildConfig assembles the engine config for one request: finance
// document values first, request overrides on top, defaults applied
// once. The returned config is never reused across requests.
func (h *Handler) buildConfig(req *Request) (*projection.Config, error) {
	fin := &h.Dataset.Finance

	cfg := &projection.Config{
		BaseGross:          req.BaseGross,
		Years:              req.Years,
		SalaryInflation:    fin.SalaryInflation,
		TaxBrackets:        fin.Brackets(),
		SocialSecurityRate: fin.SocialSecurityRate,
		SocialSecurityCap:  fin.SocialSecurityCap,
		InvestmentReturn:   fin.InvestmentReturn,
		InflationRate:      fin.InflationRate,
		Toggles: projection.Toggles{
			House:  req.House,
			Car:    req.Car,
			Family: req.Family,
		},
		FamilyAnnualCost: req.FamilyAnnualCost,
	}

	if req.SalaryInflation != nil {
		cfg.SalaryInflation = *req.SalaryInflation
	}
	if req.InvestmentReturn != nil {
		cfg.InvestmentReturn = *req.InvestmentReturn
	}
	if req.InflationRate != nil {
		cfg.InflationRate = *req.InflationRate
	}

	if req.House {
		cfg.Mortgage = &projection.LoanSpec{
			Price:              req.HousePrice,
			DepositFraction:    fin.MortgageDefaults.DepositFraction,
			OneOffCostFraction: fin.MortgageDefaults.OneOffCostFraction,
			AnnualRate:         fin.MortgageDefaults.AnnualRate,
			TermYears:          fin.MortgageDefaults.TermYears,
			StartYear:          req.HouseStartYear,
		}
	}
	if req.Car {
		cfg.Car = &projection.LoanSpec{
			Price:      req.CarPrice,
			AnnualRate: fin.CarDefaults.AnnualRate,
			TermYears:  fin.CarDefaults.TermYears,
			StartYear:  req.CarStartYear,
		}
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// HandleProjection runs one projection for a POSTed request body.
func (h *Handler) HandleProjection(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := apihttp.DecodeJSON(r, &req); err != nil {
		apihttp.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	h.respond(w, &req, func(cfg *projection.Config, result *projection.Result) {
		apihttp.WriteJSON(w, http.StatusOK, &Response{
			ScenarioID: uuid.NewString(),
			YearLabels: apihttp.YearLabels(cfg.Years),
			Series:     result,
			Summary:    h.Summary.Summarize(cfg, result),
		})
	})
}

// HandleReport runs a projection from query parameters and renders it
// as a downloadable PDF.
func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	req, err := requestFromQuery(r)
	if err != nil {
		apihttp.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.respond(w, req, func(cfg *projection.Config, result *projection.Result) {
		pdf, err := report.Render(cfg, result, h.Summary.Summarize(cfg, result))
		if err != nil {
			apihttp.Error(w, "report generation failed: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="projection.pdf"`)
		w.Write(pdf)
	})
}

// respond builds the config, runs the engine, and hands the result to
// render. Configuration problems map to 400; the engine has no other
// failure mode.
func (h *Handler) respond(w http.ResponseWriter, req *Request, render func(*projection.Config, *projection.Result)) {
	cfg, err := h.buildConfig(req)
	if err != nil {
		apihttp.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	result, err := projection.NewCalculator(cfg).Run()
	if err != nil {
		apihttp.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	render(cfg, result)
}

// requestFromQuery parses the report query string into a Request.
func requestFromQuery(r *http.Request) (*Request, error) {
	q := r.URL.Query()
	req := &Request{}
	var err error

	if req.BaseGross, err = queryFloat(q.Get("base_gross")); err != nil {
		return nil, err
	}
	if req.Years, err = queryInt(q.Get("years")); err != nil {
		return nil, err
	}

	req.House = q.Get("house") == "1"
	req.Car = q.Get("car") == "1"
	req.Family = q.Get("family") == "1"

	if req.HousePrice, err = queryFloat(q.Get("house_price")); err != nil {
		return nil, err
	}
	if req.HouseStartYear, err = queryInt(q.Get("house_start_year")); err != nil {
		return nil, err
	}
	if req.CarPrice, err = queryFloat(q.Get("car_price")); err != nil {
		return nil, err
	}
	if req.CarStartYear, err = queryInt(q.Get("car_start_year")); err != nil {
		return nil, err
	}
	if req.FamilyAnnualCost, err = queryFloat(q.Get("family_annual_cost")); err != nil {
		return nil, err
	}
	return req, nil
}

func queryFloat(v string) (float64, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.ParseFloat(v, 64)
}

func queryInt(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}
