package models

// Specialty is one medical specialty record from specialties.json.
type Specialty struct {
	Key          string  `json:"key"`
	Name         string  `json:"name"`
	HoursPerWeek float64 `json:"hours_per_week"`
	DoctorsEst   int     `json:"doctors_est"`
}
