package models

// Job is one job listing record from jobs.json. SalaryGrossMax is nil
// when the listing publishes a single figure instead of a range.
type Job struct {
	Title          string   `json:"title"`
	Employer       string   `json:"employer"`
	SalaryGrossMin float64  `json:"salary_gross_min"`
	SalaryGrossMax *float64 `json:"salary_gross_max,omitempty"`
	Contract       string   `json:"contract"`
	Source         string   `json:"source"`
	SpecialtyKey   string   `json:"specialty_key"`
}

// MidSalary returns the midpoint of the published range, or the single
// published figure when no upper bound is given.
func (j *Job) MidSalary() float64 {
	if j.SalaryGrossMax == nil {
		return j.SalaryGrossMin
	}
	return (j.SalaryGrossMin + *j.SalaryGrossMax) / 2
}
