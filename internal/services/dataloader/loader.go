// Package dataloader loads the static JSON documents the projector is
// configured from: specialty records, job listings, and the finance
// parameters document.
package dataloader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"

	"salarycast/internal/models"
)

// Document filenames inside the data directory.
const (
	SpecialtiesFile = "specialties.json"
	JobsFile        = "jobs.json"
	FinanceFile     = "finance.json"
)

// DataLoader reads the three configuration documents from a directory.
type DataLoader struct {
	DataDirectory string
}

// New creates a new DataLoader rooted at dataDirectory.
func New(dataDirectory string) *DataLoader {
	return &DataLoader{DataDirectory: dataDirectory}
}

// Load reads all three documents. The load is all-or-nothing: if any
// document fails to read, parse, or validate, Load returns nil and a
// single aggregate error naming every failure, never partial data.
func (dl *DataLoader) Load() (*models.Dataset, error) {
	ds := &models.Dataset{}
	var failures []string

	if err := dl.readJSON(SpecialtiesFile, &ds.Specialties); err != nil {
		failures = append(failures, err.Error())
	}
	if err := dl.readJSON(JobsFile, &ds.Jobs); err != nil {
		failures = append(failures, err.Error())
	}
	if err := dl.readJSON(FinanceFile, &ds.Finance); err != nil {
		failures = append(failures, err.Error())
	} else if err := ds.Finance.Validate(); err != nil {
		failures = append(failures, fmt.Sprintf("%s: %v", FinanceFile, err))
	}

	if len(failures) > 0 {
		return nil, fmt.Errorf("data load failed: %s", strings.Join(failures, "; "))
	}
	return ds, nil
}

// readJSON reads and unmarshals one document into v.
func (dl *DataLoader) readJSON(filename string, v interface{}) error {
	path := filepath.Join(dl.DataDirectory, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%s: %v", filename, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %v", filename, err)
	}
	return nil
}
