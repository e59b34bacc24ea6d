// Package lca computes cradle-to-grave CO2 emissions of biofuel made from
// waste cooking oil (WCO), per functional unit of 1 MJ.
//
// The life cycle is split into stages: raw material acquisition (stage 1),
// production and purification (stage 2), distribution (stage 3) and
// end-of-life (stage 5). The use phase (stage 4) carries no inventory inputs
// and contributes nothing.
package lca

import (
	"math"

	"lcaapi/internal/model"
)

// Metric labels, in report order.
const (
	LabelStage1 = "Stage 1 - Raw Material Acquisition (kg CO2)"
	LabelStage2 = "Stage 2 - Production & Purification (kg CO2)"
	LabelStage3 = "Stage 3 - Distribution (kg CO2)"
	LabelStage5 = "Stage 5 - End-of-Life (kg CO2)"
	LabelTotal  = "Total (kg CO2 per 1 MJ)"
)

// Result holds per-stage emissions in kg CO2 per functional unit.
type Result struct {
	Stage1 float64 `json:"stage1"`
	Stage2 float64 `json:"stage2"`
	Stage3 float64 `json:"stage3"`
	Stage5 float64 `json:"stage5"`
	Total  float64 `json:"total"`
}

// Metric is a labelled emission value.
type Metric struct {
	Label string  `json:"metric"`
	Value float64 `json:"value"`
}

// Compute validates inv and returns its stage emissions. Inputs whose
// emissions overflow float64 are rejected as invalid.
func Compute(inv model.Inventory) (Result, error) {
	if err := Validate(inv); err != nil {
		return Result{}, err
	}

	// Collection transport is prorated by how much of a load the WCO fills.
	stage1 := inv.WCOVolumeL/inv.LoadCapacityL*inv.CollectionDistanceKM*inv.WCOCollectionEF +
		inv.MethanolL*inv.MethanolEF +
		inv.KOHKG*inv.KOHEF

	stage2 := inv.ReactionEnergyKWh*inv.EnergyEF +
		inv.PurificationWaterL*inv.WastewaterTreatEF +
		inv.DryingEnergyKWh*inv.EnergyEF

	stage3 := inv.DistributionDistanceKM * inv.WCOCollectionEF * (1.0 / inv.LoadCapacityL)

	stage5 := inv.GlycerolKG*inv.GlycerolDisposalEF +
		inv.WastewaterL*inv.WastewaterTreatEF

	res := Result{
		Stage1: stage1,
		Stage2: stage2,
		Stage3: stage3,
		Stage5: stage5,
		Total:  stage1 + stage2 + stage3 + stage5,
	}
	// Finite inputs can still overflow, e.g. a subnormal load capacity.
	for _, m := range res.Metrics() {
		if math.IsNaN(m.Value) || math.IsInf(m.Value, 0) {
			return Result{}, &ValidationError{Field: "total", Reason: "overflows"}
		}
	}
	return res, nil
}

// Metrics returns the stage emissions followed by the total.
func (r Result) Metrics() []Metric {
	return []Metric{
		{Label: LabelStage1, Value: r.Stage1},
		{Label: LabelStage2, Value: r.Stage2},
		{Label: LabelStage3, Value: r.Stage3},
		{Label: LabelStage5, Value: r.Stage5},
		{Label: LabelTotal, Value: r.Total},
	}
}
