package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lcaapi/internal/lca"
	"lcaapi/internal/model"
	"lcaapi/internal/repository"
	repoMocks "lcaapi/internal/repository/mocks"
)

func newTestCalculator(t *testing.T) *Calculator {
	t.Helper()
	calc, err := NewCalculator(prometheus.NewRegistry())
	require.NoError(t, err)
	return calc
}

func TestCalculator_Compute(t *testing.T) {
	calc := newTestCalculator(t)
	ctx := context.Background()

	res, err := calc.Compute(ctx, lca.DefaultInventory())
	require.NoError(t, err)
	assert.InDelta(t, 32.3815, res.Total, 1e-9)

	bad := lca.DefaultInventory()
	bad.LoadCapacityL = 0
	_, err = calc.Compute(ctx, bad)
	assert.ErrorIs(t, err, lca.ErrInvalidInventory)

	assert.Equal(t, 1.0, testutil.ToFloat64(calc.calculations.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(calc.calculations.WithLabelValues("invalid")))

	overflow := lca.DefaultInventory()
	overflow.LoadCapacityL = 1e-320
	_, err = calc.Compute(ctx, overflow)
	assert.ErrorIs(t, err, lca.ErrInvalidInventory)
	assert.Equal(t, 1.0, testutil.ToFloat64(calc.calculations.WithLabelValues("ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(calc.calculations.WithLabelValues("invalid")))
}

func TestNewCalculator_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewCalculator(reg)
	require.NoError(t, err)

	_, err = NewCalculator(reg)
	assert.Error(t, err)
}

func TestScenarioService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		inputName  string
		inventory  func() model.Inventory
		setupMocks func(mRepo *repoMocks.MockScenarioRepository)
		wantErr    error
		wantErrMsg string
	}{
		{
			name:      "happy path",
			inputName: "  baseline  ",
			inventory: lca.DefaultInventory,
			setupMocks: func(mRepo *repoMocks.MockScenarioRepository) {
				mRepo.On("Create", ctx, mock.MatchedBy(func(s *model.Scenario) bool {
					return s.ID != "" && s.Name == "baseline" && s.CreatedAt.Equal(s.UpdatedAt)
				})).Return(&model.Scenario{ID: "gen-id", Name: "baseline"}, nil)
			},
		},
		{
			name:       "validation - empty name",
			inputName:  "   ",
			inventory:  lca.DefaultInventory,
			setupMocks: func(mRepo *repoMocks.MockScenarioRepository) {},
			wantErr:    ErrNameRequired,
		},
		{
			name:      "validation - invalid inventory",
			inputName: "broken",
			inventory: func() model.Inventory {
				inv := lca.DefaultInventory()
				inv.MethanolL = -1
				return inv
			},
			setupMocks: func(mRepo *repoMocks.MockScenarioRepository) {},
			wantErr:    lca.ErrInvalidInventory,
		},
		{
			name:      "validation - emissions overflow",
			inputName: "huge",
			inventory: func() model.Inventory {
				inv := lca.DefaultInventory()
				inv.LoadCapacityL = 1e-320
				return inv
			},
			setupMocks: func(mRepo *repoMocks.MockScenarioRepository) {},
			wantErr:    lca.ErrInvalidInventory,
		},
		{
			name:      "repository error",
			inputName: "baseline",
			inventory: lca.DefaultInventory,
			setupMocks: func(mRepo *repoMocks.MockScenarioRepository) {
				mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))
			},
			wantErrMsg: "save scenario: db fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockScenarioRepository)
			svc := NewScenarioService(mRepo, newTestCalculator(t))
			tt.setupMocks(mRepo)

			sc, err := svc.Create(ctx, tt.inputName, tt.inventory())

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, sc)
			case tt.wantErrMsg != "":
				assert.ErrorContains(t, err, tt.wantErrMsg)
			default:
				assert.NoError(t, err)
				assert.Equal(t, "gen-id", sc.ID)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestScenarioService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("pagination boundary - zero limit uses default", func(t *testing.T) {
		mRepo := new(repoMocks.MockScenarioRepository)
		svc := NewScenarioService(mRepo, newTestCalculator(t))
		mRepo.On("List", ctx, repository.PageQuery{Limit: 10, Offset: 0}).
			Return(&repository.PageResult[model.Scenario]{Items: []model.Scenario{{ID: "1"}}, Total: 1}, nil)

		res, err := svc.List(ctx, 0, -5)

		require.NoError(t, err)
		assert.Equal(t, 1, res.Total)
		assert.Len(t, res.Items, 1)
		mRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mRepo := new(repoMocks.MockScenarioRepository)
		svc := NewScenarioService(mRepo, newTestCalculator(t))
		mRepo.On("List", ctx, mock.Anything).Return(nil, errors.New("db fail"))

		_, err := svc.List(ctx, 5, 0)
		assert.Error(t, err)
	})
}

func TestScenarioService_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         string
		setupMocks func(mRepo *repoMocks.MockScenarioRepository)
		wantErr    error
	}{
		{
			name: "happy path",
			id:   "valid-id",
			setupMocks: func(mRepo *repoMocks.MockScenarioRepository) {
				mRepo.On("FindByID", ctx, "valid-id").Return(&model.Scenario{ID: "valid-id"}, nil)
			},
		},
		{
			name:       "validation - empty id",
			setupMocks: func(mRepo *repoMocks.MockScenarioRepository) {},
			wantErr:    ErrIDRequired,
		},
		{
			name: "not found - mapping sql.ErrNoRows",
			id:   "missing-id",
			setupMocks: func(mRepo *repoMocks.MockScenarioRepository) {
				mRepo.On("FindByID", ctx, "missing-id").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "not found - mapping repository.ErrNotFound",
			id:   "missing-ddb",
			setupMocks: func(mRepo *repoMocks.MockScenarioRepository) {
				mRepo.On("FindByID", ctx, "missing-ddb").Return(nil, repository.ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockScenarioRepository)
			svc := NewScenarioService(mRepo, newTestCalculator(t))
			tt.setupMocks(mRepo)

			sc, err := svc.Get(ctx, tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, sc)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.id, sc.ID)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestScenarioService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mRepo := new(repoMocks.MockScenarioRepository)
		svc := NewScenarioService(mRepo, newTestCalculator(t))
		mRepo.On("Update", ctx, mock.MatchedBy(func(s *model.Scenario) bool {
			return s.ID == "id-1" && s.Name == "renamed" && !s.UpdatedAt.IsZero()
		})).Return(&model.Scenario{ID: "id-1", Name: "renamed"}, nil)

		sc, err := svc.Update(ctx, "id-1", "renamed", lca.DefaultInventory())

		require.NoError(t, err)
		assert.Equal(t, "renamed", sc.Name)
		mRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockScenarioRepository)
		svc := NewScenarioService(mRepo, newTestCalculator(t))
		mRepo.On("Update", ctx, mock.Anything).Return(nil, sql.ErrNoRows)

		_, err := svc.Update(ctx, "id-1", "renamed", lca.DefaultInventory())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("invalid inventory", func(t *testing.T) {
		svc := NewScenarioService(new(repoMocks.MockScenarioRepository), newTestCalculator(t))
		inv := lca.DefaultInventory()
		inv.LoadCapacityL = 0

		_, err := svc.Update(ctx, "id-1", "renamed", inv)
		assert.ErrorIs(t, err, lca.ErrInvalidInventory)
	})

	t.Run("empty id", func(t *testing.T) {
		svc := NewScenarioService(new(repoMocks.MockScenarioRepository), newTestCalculator(t))
		_, err := svc.Update(ctx, "", "renamed", lca.DefaultInventory())
		assert.ErrorIs(t, err, ErrIDRequired)
	})
}

func TestScenarioService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mRepo := new(repoMocks.MockScenarioRepository)
		svc := NewScenarioService(mRepo, newTestCalculator(t))
		mRepo.On("FindByID", ctx, "id-1").Return(&model.Scenario{ID: "id-1"}, nil)
		mRepo.On("Delete", ctx, "id-1").Return(nil)

		assert.NoError(t, svc.Delete(ctx, "id-1"))
		mRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockScenarioRepository)
		svc := NewScenarioService(mRepo, newTestCalculator(t))
		mRepo.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)

		assert.ErrorIs(t, svc.Delete(ctx, "missing"), ErrNotFound)
		mRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestScenarioService_ComputedViews(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockScenarioRepository)
	svc := NewScenarioService(mRepo, newTestCalculator(t))

	sc := &model.Scenario{ID: "id-1", Inventory: lca.DefaultInventory(), CreatedAt: time.Now()}
	mRepo.On("FindByID", ctx, "id-1").Return(sc, nil)
	mRepo.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)

	res, err := svc.Result(ctx, "id-1")
	require.NoError(t, err)
	assert.InDelta(t, 32.3815, res.Total, 1e-9)

	a, err := svc.Analysis(ctx, "id-1")
	require.NoError(t, err)
	assert.Len(t, a.Findings, 4)

	b, err := svc.Breakdown(ctx, "id-1")
	require.NoError(t, err)
	assert.Len(t, b.Slices, 4)

	_, err = svc.Result(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
