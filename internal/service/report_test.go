package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lcaapi/internal/lca"
	"lcaapi/internal/model"
	repoMocks "lcaapi/internal/repository/mocks"
	"lcaapi/internal/storage"
	storeMocks "lcaapi/internal/storage/mocks"
)

type reportDeps struct {
	store     *storeMocks.MockStorage
	reports   *repoMocks.MockReportRepository
	scenarios *repoMocks.MockScenarioRepository
}

func newReportService(t *testing.T) (ReportService, reportDeps) {
	t.Helper()
	d := reportDeps{
		store:     new(storeMocks.MockStorage),
		reports:   new(repoMocks.MockReportRepository),
		scenarios: new(repoMocks.MockScenarioRepository),
	}
	svc := NewReportService(d.store, d.reports, d.scenarios, newTestCalculator(t), 15*time.Minute)
	return svc, d
}

func (d reportDeps) assertExpectations(t *testing.T) {
	d.store.AssertExpectations(t)
	d.reports.AssertExpectations(t)
	d.scenarios.AssertExpectations(t)
}

func isReportKey(key string) bool {
	return strings.HasPrefix(key, "reports/") && strings.HasSuffix(key, ".csv")
}

func TestReportService_Generate(t *testing.T) {
	ctx := context.Background()
	scenario := &model.Scenario{ID: "scn-1", Inventory: lca.DefaultInventory()}

	tests := []struct {
		name       string
		scenarioID string
		setupMocks func(d reportDeps)
		wantErr    error
		wantErrMsg string
	}{
		{
			name:       "happy path",
			scenarioID: "scn-1",
			setupMocks: func(d reportDeps) {
				d.scenarios.On("FindByID", ctx, "scn-1").Return(scenario, nil)
				d.store.On("Put", ctx, mock.MatchedBy(isReportKey), mock.Anything, mock.MatchedBy(func(opt storage.PutOptions) bool {
					return opt.ContentType == "text/csv" && opt.Size > 0 && opt.Metadata["scenario-id"] == "scn-1"
				})).Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutOptions) storage.ObjectInfo {
					body, _ := io.ReadAll(r)
					return storage.ObjectInfo{Key: key, Size: int64(len(body)), ContentType: opt.ContentType}
				}, nil)
				d.reports.On("Create", ctx, mock.MatchedBy(func(r *model.Report) bool {
					return r.ScenarioID == "scn-1" && isReportKey(r.StoragePath) &&
						r.StoragePath == "reports/"+r.ID+".csv" && r.Size > 0 &&
						r.TotalKgCO2 > 32.38 && r.TotalKgCO2 < 32.39
				})).Return(&model.Report{ID: "rep-1", ScenarioID: "scn-1"}, nil)
			},
		},
		{
			name:       "validation - empty scenario id",
			setupMocks: func(d reportDeps) {},
			wantErr:    ErrIDRequired,
		},
		{
			name:       "scenario not found",
			scenarioID: "missing",
			setupMocks: func(d reportDeps) {
				d.scenarios.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name:       "stored inventory no longer valid",
			scenarioID: "scn-bad",
			setupMocks: func(d reportDeps) {
				inv := lca.DefaultInventory()
				inv.LoadCapacityL = 0
				d.scenarios.On("FindByID", ctx, "scn-bad").Return(&model.Scenario{ID: "scn-bad", Inventory: inv}, nil)
			},
			wantErr: lca.ErrInvalidInventory,
		},
		{
			name:       "storage error",
			scenarioID: "scn-1",
			setupMocks: func(d reportDeps) {
				d.scenarios.On("FindByID", ctx, "scn-1").Return(scenario, nil)
				d.store.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
					Return(storage.ObjectInfo{}, errors.New("storage fail"))
			},
			wantErrMsg: "upload to storage: storage fail",
		},
		{
			name:       "repository error with successful rollback",
			scenarioID: "scn-1",
			setupMocks: func(d reportDeps) {
				d.scenarios.On("FindByID", ctx, "scn-1").Return(scenario, nil)
				d.store.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
					Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutOptions) storage.ObjectInfo {
						return storage.ObjectInfo{Key: key}
					}, nil)
				d.reports.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))
				d.store.On("Delete", ctx, mock.MatchedBy(isReportKey)).Return(nil)
			},
			wantErrMsg: "db save failed: db fail",
		},
		{
			name:       "repository error with failed rollback",
			scenarioID: "scn-1",
			setupMocks: func(d reportDeps) {
				d.scenarios.On("FindByID", ctx, "scn-1").Return(scenario, nil)
				d.store.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
					Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutOptions) storage.ObjectInfo {
						return storage.ObjectInfo{Key: key}
					}, nil)
				d.reports.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))
				d.store.On("Delete", ctx, mock.Anything).Return(errors.New("delete fail"))
			},
			wantErrMsg: "rollback delete failed: delete fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newReportService(t)
			tt.setupMocks(d)

			rep, err := svc.Generate(ctx, tt.scenarioID)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, rep)
			case tt.wantErrMsg != "":
				assert.ErrorContains(t, err, tt.wantErrMsg)
			default:
				assert.NoError(t, err)
				assert.Equal(t, "rep-1", rep.ID)
			}
			d.assertExpectations(t)
		})
	}
}

func TestReportService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		svc, d := newReportService(t)
		d.reports.On("FindByID", ctx, "rep-1").
			Return(&model.Report{ID: "rep-1", StoragePath: "reports/rep-1.csv"}, nil)
		d.store.On("PresignGet", ctx, "reports/rep-1.csv", 15*time.Minute).
			Return("https://minio.local/reports/rep-1.csv?sig", nil)

		view, err := svc.Get(ctx, "rep-1")

		require.NoError(t, err)
		assert.Equal(t, "rep-1", view.ID)
		assert.Equal(t, "https://minio.local/reports/rep-1.csv?sig", view.DownloadURL)
		assert.True(t, view.ExpiresAt.After(time.Now()))
		d.assertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		svc, d := newReportService(t)
		d.reports.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)

		_, err := svc.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrReportNotFound)
	})

	t.Run("presign error", func(t *testing.T) {
		svc, d := newReportService(t)
		d.reports.On("FindByID", ctx, "rep-1").
			Return(&model.Report{ID: "rep-1", StoragePath: "reports/rep-1.csv"}, nil)
		d.store.On("PresignGet", ctx, mock.Anything, mock.Anything).Return("", errors.New("no creds"))

		_, err := svc.Get(ctx, "rep-1")
		assert.ErrorContains(t, err, "presign report: no creds")
	})
}

func TestReportService_Open(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		svc, d := newReportService(t)
		d.reports.On("FindByID", ctx, "rep-1").
			Return(&model.Report{ID: "rep-1", StoragePath: "reports/rep-1.csv"}, nil)
		d.store.On("Get", ctx, "reports/rep-1.csv").
			Return(io.NopCloser(strings.NewReader("Metric,Value (kg CO2)\n")), storage.ObjectInfo{}, nil)

		rc, rep, err := svc.Open(ctx, "rep-1")
		require.NoError(t, err)
		defer rc.Close()

		body, _ := io.ReadAll(rc)
		assert.Equal(t, "Metric,Value (kg CO2)\n", string(body))
		assert.Equal(t, "rep-1", rep.ID)
	})

	t.Run("storage error", func(t *testing.T) {
		svc, d := newReportService(t)
		d.reports.On("FindByID", ctx, "rep-1").
			Return(&model.Report{ID: "rep-1", StoragePath: "reports/rep-1.csv"}, nil)
		d.store.On("Get", ctx, "reports/rep-1.csv").Return(nil, storage.ObjectInfo{}, errors.New("gone"))

		_, _, err := svc.Open(ctx, "rep-1")
		assert.ErrorContains(t, err, "open report: gone")
	})

	t.Run("object missing from bucket", func(t *testing.T) {
		svc, d := newReportService(t)
		d.reports.On("FindByID", ctx, "rep-1").
			Return(&model.Report{ID: "rep-1", StoragePath: "reports/rep-1.csv"}, nil)
		d.store.On("Get", ctx, "reports/rep-1.csv").
			Return(nil, storage.ObjectInfo{}, fmt.Errorf("get reports/rep-1.csv: %w", storage.ErrObjectNotFound))

		_, _, err := svc.Open(ctx, "rep-1")
		assert.ErrorIs(t, err, ErrReportNotFound)
	})
}

func TestReportService_ListByScenario(t *testing.T) {
	ctx := context.Background()
	svc, d := newReportService(t)
	d.reports.On("ListByScenario", ctx, "scn-1").Return([]model.Report{{ID: "a"}, {ID: "b"}}, nil)

	got, err := svc.ListByScenario(ctx, "scn-1")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = svc.ListByScenario(ctx, "")
	assert.ErrorIs(t, err, ErrIDRequired)
}

func TestReportService_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         string
		setupMocks func(d reportDeps)
		wantErr    error
		wantErrMsg string
	}{
		{
			name: "happy path",
			id:   "rep-1",
			setupMocks: func(d reportDeps) {
				d.reports.On("FindByID", ctx, "rep-1").Return(&model.Report{ID: "rep-1", StoragePath: "reports/rep-1.csv"}, nil)
				d.store.On("Delete", ctx, "reports/rep-1.csv").Return(nil)
				d.reports.On("Delete", ctx, "rep-1").Return(nil)
			},
		},
		{
			name:       "validation - empty id",
			setupMocks: func(d reportDeps) {},
			wantErr:    ErrIDRequired,
		},
		{
			name: "not found",
			id:   "missing",
			setupMocks: func(d reportDeps) {
				d.reports.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrReportNotFound,
		},
		{
			name: "storage delete error keeps row",
			id:   "rep-1",
			setupMocks: func(d reportDeps) {
				d.reports.On("FindByID", ctx, "rep-1").Return(&model.Report{ID: "rep-1", StoragePath: "p"}, nil)
				d.store.On("Delete", ctx, "p").Return(errors.New("storage fail"))
			},
			wantErrMsg: "delete storage: storage fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newReportService(t)
			tt.setupMocks(d)

			err := svc.Delete(ctx, tt.id)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrMsg != "":
				assert.ErrorContains(t, err, tt.wantErrMsg)
			default:
				assert.NoError(t, err)
			}
			d.assertExpectations(t)
		})
	}
}
