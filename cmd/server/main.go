package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"salarycast/internal/config"
	catalogh "salarycast/internal/handlers/catalog"
	marketcaph "salarycast/internal/handlers/marketcap"
	projectorh "salarycast/internal/handlers/projector"
	apihttp "salarycast/internal/http"
	"salarycast/internal/services/dataloader"
	"salarycast/internal/version"
)

var (
	cfg       *config.Config
	catalog   *catalogh.Handler
	projector *projectorh.Handler
	marketcap *marketcaph.Handler
)

func main() {
	cfg = config.Load()
	log.Printf("Starting salarycast %s on %s", version.Get().Short(), cfg.ListenAddr)
	log.Printf("Data directory: %s", cfg.DataDirectory)

	if err := SetupDependencies(cfg); err != nil {
		// Aggregate load failure: the engine must never run against
		// partial configuration, so refuse to start.
		log.Fatalf("Startup failed: %v", err)
	}

	router := SetupRouter()
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, router))
}

// SetupDependencies loads the data documents and wires the handlers
func SetupDependencies(c *config.Config) error {
	dataset, err := dataloader.New(c.DataDirectory).Load()
	if err != nil {
		return err
	}
	log.Printf("Loaded %d specialties, %d jobs", len(dataset.Specialties), len(dataset.Jobs))

	catalog = catalogh.New(dataset)
	projector = projectorh.New(dataset)
	marketcap = marketcaph.New(dataset)
	return nil
}

// SetupRouter builds the chi router with all routes and middleware
func SetupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	// Static browser UI
	if _, err := os.Stat(cfg.StaticDirectory); err == nil {
		fileServer := http.FileServer(http.Dir(cfg.StaticDirectory))
		r.Handle("/static/*", http.StripPrefix("/static/", fileServer))
	}
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/", http.StatusTemporaryRedirect)
	})

	// Reference documents
	r.Get("/api/specialties", catalog.HandleSpecialties)
	r.Get("/api/jobs", catalog.HandleJobs)
	r.Get("/api/config", catalog.HandleFinanceParams)

	// Projection
	r.Post("/api/projection", projector.HandleProjection)
	r.Get("/api/report.pdf", projector.HandleReport)

	// Market cap
	r.Get("/api/marketcap", marketcap.HandleEstimate)

	// Service endpoints
	r.Get("/api/health", handleHealth)
	r.Get("/api/version", handleVersion)

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	apihttp.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleVersion(w http.ResponseWriter, r *http.Request) {
	apihttp.WriteJSON(w, http.StatusOK, version.Get())
}
