package lca

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"lcaapi/internal/model"
)

// ErrInvalidInventory is wrapped by every ValidationError.
var ErrInvalidInventory = errors.New("invalid inventory")

// ValidationError reports the first inventory field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidInventory, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInventory }

// DefaultFactors returns the placeholder emission factors.
func DefaultFactors() model.EmissionFactors {
	return model.EmissionFactors{
		WCOCollectionEF:    0.3,
		MethanolEF:         1.5,
		KOHEF:              2.0,
		EnergyEF:           0.5,
		WastewaterTreatEF:  0.2,
		GlycerolDisposalEF: 0.1,
	}
}

// DefaultInventory returns the baseline inventory for 1 MJ of WCO biofuel.
func DefaultInventory() model.Inventory {
	return model.Inventory{
		FunctionalUnitMJ:       1.0,
		WCOVolumeL:             30.0,
		CollectionDistanceKM:   24.6,
		MethanolL:              8.54,
		KOHKG:                  0.45,
		ReactionEnergyKWh:      0.06,
		PurificationWaterL:     27.0,
		DryingEnergyKWh:        1.0,
		DistributionDistanceKM: 223.0,
		LoadCapacityL:          200.0,
		GlycerolKG:             5.0,
		WastewaterL:            54.0,
		EmissionFactors:        DefaultFactors(),
	}
}

type field struct {
	name  string
	value float64
}

func fields(inv model.Inventory) []field {
	return []field{
		{"fu_mj", inv.FunctionalUnitMJ},
		{"wco_volume_l", inv.WCOVolumeL},
		{"collection_distance_km", inv.CollectionDistanceKM},
		{"methanol_l", inv.MethanolL},
		{"koh_kg", inv.KOHKG},
		{"reaction_energy_kwh", inv.ReactionEnergyKWh},
		{"purification_water_l", inv.PurificationWaterL},
		{"drying_energy_kwh", inv.DryingEnergyKWh},
		{"distribution_distance_km", inv.DistributionDistanceKM},
		{"load_capacity_l", inv.LoadCapacityL},
		{"glycerol_kg", inv.GlycerolKG},
		{"wastewater_l", inv.WastewaterL},
		{"wco_collection_ef", inv.WCOCollectionEF},
		{"methanol_ef", inv.MethanolEF},
		{"koh_ef", inv.KOHEF},
		{"energy_ef", inv.EnergyEF},
		{"wastewater_treat_ef", inv.WastewaterTreatEF},
		{"glycerol_disposal_ef", inv.GlycerolDisposalEF},
	}
}

// Validate checks that every quantity is finite and non-negative, and that
// the functional unit and load capacity are strictly positive.
func Validate(inv model.Inventory) error {
	for _, f := range fields(inv) {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &ValidationError{Field: f.name, Reason: "must be a finite number"}
		}
		if f.value < 0 {
			return &ValidationError{Field: f.name, Reason: "must not be negative"}
		}
	}
	if inv.FunctionalUnitMJ == 0 {
		return &ValidationError{Field: "fu_mj", Reason: "must be greater than zero"}
	}
	if inv.LoadCapacityL == 0 {
		return &ValidationError{Field: "load_capacity_l", Reason: "must be greater than zero"}
	}
	return nil
}

// LoadInventory decodes a YAML inventory on top of the defaults, so absent
// keys keep their default values, and validates the result. Unknown keys
// are rejected.
func LoadInventory(r io.Reader) (model.Inventory, error) {
	inv := DefaultInventory()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&inv); err != nil && !errors.Is(err, io.EOF) {
		return model.Inventory{}, fmt.Errorf("decode inventory: %w", err)
	}
	if err := Validate(inv); err != nil {
		return model.Inventory{}, err
	}
	return inv, nil
}

// MarshalInventory encodes inv as YAML.
func MarshalInventory(w io.Writer, inv model.Inventory) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(inv); err != nil {
		return err
	}
	return enc.Close()
}
