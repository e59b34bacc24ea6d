package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"

	"lcaapi/internal/lca"
	"lcaapi/internal/model"
	"lcaapi/internal/repository"
	"lcaapi/internal/storage"
)

// ErrReportNotFound is returned when a report ID is unknown.
var ErrReportNotFound = errors.New("report not found")

// ReportView is a report with a time-limited download URL.
type ReportView struct {
	model.Report
	DownloadURL string    `json:"download_url"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// ReportService defines the use cases for CSV reports.
type ReportService interface {
	// Generate computes the scenario, uploads its CSV report and records it.
	// The uploaded object is removed again if the record cannot be saved.
	Generate(ctx context.Context, scenarioID string) (*model.Report, error)

	// Get returns report metadata and a presigned download URL.
	Get(ctx context.Context, id string) (*ReportView, error)

	// ListByScenario returns the reports generated from a scenario.
	ListByScenario(ctx context.Context, scenarioID string) ([]model.Report, error)

	// Open streams the CSV content of a report. The caller closes the reader.
	Open(ctx context.Context, id string) (io.ReadCloser, *model.Report, error)

	// Delete removes a report from both storage and repository.
	Delete(ctx context.Context, id string) error
}

type reportService struct {
	store     storage.Storage
	reports   repository.ReportRepository
	scenarios repository.ScenarioRepository
	calc      *Calculator
	urlExpiry time.Duration
	now       func() time.Time
}

// NewReportService constructs a new ReportService.
func NewReportService(
	store storage.Storage,
	reports repository.ReportRepository,
	scenarios repository.ScenarioRepository,
	calc *Calculator,
	urlExpiry time.Duration,
) ReportService {
	return &reportService{
		store:     store,
		reports:   reports,
		scenarios: scenarios,
		calc:      calc,
		urlExpiry: urlExpiry,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *reportService) Generate(ctx context.Context, scenarioID string) (*model.Report, error) {
	if scenarioID == "" {
		return nil, ErrIDRequired
	}
	sc, err := s.scenarios.FindByID(ctx, scenarioID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	res, err := s.calc.Compute(ctx, sc.Inventory)
	if err != nil {
		return nil, err
	}
	content, err := lca.RenderCSV(res)
	if err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}

	id := uuid.NewString()
	key := path.Join("reports", id+".csv")

	objInfo, err := s.store.Put(ctx, key, bytes.NewReader(content), storage.PutOptions{
		Size:        int64(len(content)),
		ContentType: lca.ReportContentType,
		Metadata: map[string]string{
			"scenario-id": sc.ID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	stored, err := s.reports.Create(ctx, &model.Report{
		ID:          id,
		ScenarioID:  sc.ID,
		StoragePath: objInfo.Key,
		Size:        objInfo.Size,
		TotalKgCO2:  res.Total,
		CreatedAt:   s.now(),
	})
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *reportService) find(ctx context.Context, id string) (*model.Report, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	rep, err := s.reports.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return rep, nil
}

func (s *reportService) Get(ctx context.Context, id string) (*ReportView, error) {
	rep, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	u, err := s.store.PresignGet(ctx, rep.StoragePath, s.urlExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign report: %w", err)
	}
	return &ReportView{
		Report:      *rep,
		DownloadURL: u,
		ExpiresAt:   s.now().Add(s.urlExpiry),
	}, nil
}

func (s *reportService) ListByScenario(ctx context.Context, scenarioID string) ([]model.Report, error) {
	if scenarioID == "" {
		return nil, ErrIDRequired
	}
	return s.reports.ListByScenario(ctx, scenarioID)
}

func (s *reportService) Open(ctx context.Context, id string) (io.ReadCloser, *model.Report, error) {
	rep, err := s.find(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rc, _, err := s.store.Get(ctx, rep.StoragePath)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, nil, ErrReportNotFound
		}
		return nil, nil, fmt.Errorf("open report: %w", err)
	}
	return rc, rep, nil
}

// Delete removes the object first; if that fails the row is kept so the object stays reachable.
func (s *reportService) Delete(ctx context.Context, id string) error {
	rep, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, rep.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return s.reports.Delete(ctx, id)
}
