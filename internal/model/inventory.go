package model

// EmissionFactors converts inventory quantities into kg CO2.
type EmissionFactors struct {
	WCOCollectionEF    float64 `json:"wco_collection_ef" yaml:"wco_collection_ef"`       // kg CO2 per km
	MethanolEF         float64 `json:"methanol_ef" yaml:"methanol_ef"`                   // kg CO2 per L of methanol
	KOHEF              float64 `json:"koh_ef" yaml:"koh_ef"`                             // kg CO2 per kg of KOH
	EnergyEF           float64 `json:"energy_ef" yaml:"energy_ef"`                       // kg CO2 per kWh
	WastewaterTreatEF  float64 `json:"wastewater_treat_ef" yaml:"wastewater_treat_ef"`   // kg CO2 per L of wastewater
	GlycerolDisposalEF float64 `json:"glycerol_disposal_ef" yaml:"glycerol_disposal_ef"` // kg CO2 per kg glycerol
}

// Inventory is the life-cycle inventory of WCO biofuel for one functional unit.
// Emission factors are flattened into the same JSON/YAML object.
type Inventory struct {
	FunctionalUnitMJ float64 `json:"fu_mj" yaml:"fu_mj"`

	// Stage 1: raw material acquisition
	WCOVolumeL           float64 `json:"wco_volume_l" yaml:"wco_volume_l"`
	CollectionDistanceKM float64 `json:"collection_distance_km" yaml:"collection_distance_km"`
	MethanolL            float64 `json:"methanol_l" yaml:"methanol_l"`
	KOHKG                float64 `json:"koh_kg" yaml:"koh_kg"`

	// Stage 2: production and purification
	ReactionEnergyKWh  float64 `json:"reaction_energy_kwh" yaml:"reaction_energy_kwh"`
	PurificationWaterL float64 `json:"purification_water_l" yaml:"purification_water_l"`
	DryingEnergyKWh    float64 `json:"drying_energy_kwh" yaml:"drying_energy_kwh"`

	// Stage 3: distribution
	DistributionDistanceKM float64 `json:"distribution_distance_km" yaml:"distribution_distance_km"`
	LoadCapacityL          float64 `json:"load_capacity_l" yaml:"load_capacity_l"`

	// End-of-life
	GlycerolKG  float64 `json:"glycerol_kg" yaml:"glycerol_kg"`
	WastewaterL float64 `json:"wastewater_l" yaml:"wastewater_l"`

	EmissionFactors `yaml:",inline"`
}
