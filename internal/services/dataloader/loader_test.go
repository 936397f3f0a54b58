package dataloader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"salarycast/internal/testutil"
)

func TestLoad(t *testing.T) {
	dl := New(testutil.TestDataDir())
	ds, err := dl.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(ds.Specialties) == 0 {
		t.Error("no specialties loaded")
	}
	if len(ds.Jobs) == 0 {
		t.Error("no jobs loaded")
	}
	if len(ds.Finance.TaxBrackets) == 0 {
		t.Error("no tax brackets loaded")
	}

	sp := ds.SpecialtyByKey("dermatology")
	if sp == nil {
		t.Fatal("dermatology specialty not found")
	}
	if sp.DoctorsEst <= 0 {
		t.Errorf("dermatology doctors_est = %d, want > 0", sp.DoctorsEst)
	}

	jobs := ds.JobsForSpecialty("dermatology")
	if len(jobs) != 1 {
		t.Fatalf("got %d dermatology jobs, want 1", len(jobs))
	}
	if mid := jobs[0].MidSalary(); mid != 110000 {
		t.Errorf("dermatology mid salary = %v, want 110000", mid)
	}
}

func TestLoad_OpenEndedSalary(t *testing.T) {
	dl := New(testutil.TestDataDir())
	ds, err := dl.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	jobs := ds.JobsForSpecialty("cardiology")
	if len(jobs) != 1 {
		t.Fatalf("got %d cardiology jobs, want 1", len(jobs))
	}
	if jobs[0].SalaryGrossMax != nil {
		t.Errorf("expected nil salary_gross_max, got %v", *jobs[0].SalaryGrossMax)
	}
	if mid := jobs[0].MidSalary(); mid != 105000 {
		t.Errorf("mid salary without range = %v, want the published minimum 105000", mid)
	}
}

func TestLoad_AggregateFailure(t *testing.T) {
	// Only one of the three documents present: the load must fail as a
	// whole and the error must name every missing document.
	dir := t.TempDir()
	src, err := os.ReadFile(filepath.Join(testutil.TestDataDir(), SpecialtiesFile))
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, SpecialtiesFile), src, 0644); err != nil {
		t.Fatal(err)
	}

	ds, err := New(dir).Load()
	if err == nil {
		t.Fatal("expected aggregate error, got nil")
	}
	if ds != nil {
		t.Error("partial dataset returned alongside error")
	}
	for _, missing := range []string{JobsFile, FinanceFile} {
		if !strings.Contains(err.Error(), missing) {
			t.Errorf("aggregate error %q does not mention %s", err, missing)
		}
	}
}

func TestLoad_MalformedFinanceDocument(t *testing.T) {
	dir := t.TempDir()
	copyDoc := func(name string) {
		t.Helper()
		src, err := os.ReadFile(filepath.Join(testutil.TestDataDir(), name))
		if err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), src, 0644); err != nil {
			t.Fatal(err)
		}
	}
	copyDoc(SpecialtiesFile)
	copyDoc(JobsFile)

	// Bounded final bracket: rejected at load time, not at compute time.
	bad := `{"tax_brackets": [{"upper_bound": 20000, "rate": 0.2}], "social_security_rate": 0.06,
		"mortgage_defaults": {"annual_rate": 0.03, "term_years": 30},
		"car_defaults": {"annual_rate": 0.05, "term_years": 5}}`
	if err := os.WriteFile(filepath.Join(dir, FinanceFile), []byte(bad), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := New(dir).Load(); err == nil {
		t.Fatal("expected error for bounded final bracket")
	}
}
