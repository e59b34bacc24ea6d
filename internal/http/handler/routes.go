package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lcaapi/internal/database"
	"lcaapi/internal/http/middleware"
	"lcaapi/internal/service"
	"lcaapi/internal/storage"
)

// Deps are the collaborators the HTTP routes need.
type Deps struct {
	DB         database.Pinger
	Store      storage.Storage
	Calculator *service.Calculator
	Scenarios  service.ScenarioService
	Reports    service.ReportService
	// Gatherer backs /metrics; prometheus.DefaultGatherer when nil.
	Gatherer prometheus.Gatherer
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	gatherer := d.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	app.Get("/", GetIntroduction())
	app.Get("/healthz", LivenessProbe())
	app.Get("/health", HealthCheck(d.DB, d.Store))
	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := app.Group("/api/v1")

	api.Get("/inventory/defaults", GetDefaultInventory())
	api.Post("/calculate", Calculate(d.Calculator))
	api.Post("/analysis", AnalyzeInventory(d.Calculator))
	api.Post("/breakdown", BreakdownInventory(d.Calculator))
	api.Post("/report.csv", RenderReport(d.Calculator))

	scenarios := api.Group("/scenarios")
	scenarios.Get("/", ListScenarios(d.Scenarios))
	scenarios.Post("/", CreateScenario(d.Scenarios))
	scenarios.Get("/:id", GetScenario(d.Scenarios))
	scenarios.Put("/:id", UpdateScenario(d.Scenarios))
	scenarios.Delete("/:id", DeleteScenario(d.Scenarios))
	scenarios.Get("/:id/result", ScenarioResult(d.Scenarios))
	scenarios.Get("/:id/analysis", ScenarioAnalysis(d.Scenarios))
	scenarios.Get("/:id/breakdown", ScenarioBreakdown(d.Scenarios))
	scenarios.Post("/:id/reports", GenerateReport(d.Reports))
	scenarios.Get("/:id/reports", ListReports(d.Reports))

	reports := api.Group("/reports")
	reports.Get("/:id", GetReport(d.Reports))
	reports.Delete("/:id", DeleteReport(d.Reports))
	reports.Get("/:id/download", DownloadReport(d.Reports))
}
