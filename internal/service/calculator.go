package service

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"lcaapi/internal/lca"
	"lcaapi/internal/model"
)

// Calculator runs the LCA engine with metrics and tracing around it.
type Calculator struct {
	calculations *prometheus.CounterVec
	tracer       trace.Tracer
}

// NewCalculator registers the calculation counter on reg.
func NewCalculator(reg prometheus.Registerer) (*Calculator, error) {
	c := &Calculator{
		calculations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lca_calculations_total",
				Help: "Total number of LCA calculations by outcome.",
			},
			[]string{"outcome"},
		),
		tracer: otel.Tracer("lcaapi/service"),
	}
	if err := reg.Register(c.calculations); err != nil {
		return nil, err
	}
	return c, nil
}

// Compute validates inv and returns its stage emissions.
func (c *Calculator) Compute(ctx context.Context, inv model.Inventory) (lca.Result, error) {
	_, span := c.tracer.Start(ctx, "lca.Compute")
	defer span.End()

	res, err := lca.Compute(inv)
	if err != nil {
		outcome := "error"
		if errors.Is(err, lca.ErrInvalidInventory) {
			outcome = "invalid"
		}
		c.calculations.WithLabelValues(outcome).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return lca.Result{}, err
	}

	c.calculations.WithLabelValues("ok").Inc()
	span.SetAttributes(attribute.Float64("lca.total_kg_co2", res.Total))
	return res, nil
}

// Analyze computes inv and interprets the result.
func (c *Calculator) Analyze(ctx context.Context, inv model.Inventory) (*lca.Analysis, error) {
	res, err := c.Compute(ctx, inv)
	if err != nil {
		return nil, err
	}
	a := lca.Analyze(res)
	return &a, nil
}

// Breakdown computes inv and returns its per-stage chart data.
func (c *Calculator) Breakdown(ctx context.Context, inv model.Inventory) (*lca.Breakdown, error) {
	res, err := c.Compute(ctx, inv)
	if err != nil {
		return nil, err
	}
	b := lca.BreakdownOf(res)
	return &b, nil
}
