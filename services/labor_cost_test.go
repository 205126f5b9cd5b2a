package services

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 0.001
}

func TestCalcLaborCost_BaseOnly(t *testing.T) {
	// TRS tier 3 at $25/hr: multiplier 1.8 + 0.2 = 2.0.
	attrs := AttributeSet{Role: RoleTRS, Tier: 3, Leadership: LeadershipNone}
	comp := Compensation{BaseHourlyRate: 25}

	lc := CalcLaborCost(attrs, comp)

	if !almostEqual(lc.BaseMultiplier, 2.0) {
		t.Errorf("BaseMultiplier = %v, want 2.0", lc.BaseMultiplier)
	}
	if !almostEqual(lc.BaseCost, 50.0) {
		t.Errorf("BaseCost = %v, want 50.0", lc.BaseCost)
	}
	if !almostEqual(lc.TrueHourlyCost, 50.0) {
		t.Errorf("TrueHourlyCost = %v, want 50.0", lc.TrueHourlyCost)
	}
	if !almostEqual(lc.BillingRate, 125.0) {
		t.Errorf("BillingRate = %v, want 125.0", lc.BillingRate)
	}
	if !almostEqual(lc.ProfitMargin, 60.0) {
		t.Errorf("ProfitMargin = %v, want 60.0", lc.ProfitMargin)
	}
}

func TestCalcLaborCost_WithPremiums(t *testing.T) {
	// Same base as above plus supervisor (+5.00) and E3 (+3.50).
	attrs := AttributeSet{
		Role:           RoleTRS,
		Tier:           3,
		Leadership:     LeadershipSupervisor,
		EquipmentCerts: []EquipmentLevel{EquipmentE3},
	}
	comp := Compensation{BaseHourlyRate: 25}

	lc := CalcLaborCost(attrs, comp)

	if !almostEqual(lc.LeadershipPremium, 5.0) {
		t.Errorf("LeadershipPremium = %v, want 5.0", lc.LeadershipPremium)
	}
	if !almostEqual(lc.EquipmentPremium, 3.5) {
		t.Errorf("EquipmentPremium = %v, want 3.5", lc.EquipmentPremium)
	}
	if !almostEqual(lc.TrueHourlyCost, 58.5) {
		t.Errorf("TrueHourlyCost = %v, want 58.5", lc.TrueHourlyCost)
	}
	if !almostEqual(lc.BillingRate, 146.25) {
		t.Errorf("BillingRate = %v, want 146.25", lc.BillingRate)
	}
}

func TestCalcLaborCost_AllPremiumsItemized(t *testing.T) {
	attrs := AttributeSet{
		Role:           RoleATC,
		Tier:           2,
		Leadership:     LeadershipTeamLeader,
		EquipmentCerts: []EquipmentLevel{EquipmentE1, EquipmentE2}, // 1.0 + 2.0
		Driver:         DriverD2,                                   // 2.5
		Certifications: []Certification{CertISA, CertCPR},          // 3.0 + 0.5
		CrossTraining:  []CrossTraining{{Role: RoleTRS, Tier: 2}},  // 1.0
	}
	comp := Compensation{BaseHourlyRate: 20}

	lc := CalcLaborCost(attrs, comp)

	// Base: 20 * (1.8 + 0.1) = 38.0
	if !almostEqual(lc.BaseCost, 38.0) {
		t.Errorf("BaseCost = %v, want 38.0", lc.BaseCost)
	}
	if !almostEqual(lc.EquipmentPremium, 3.0) {
		t.Errorf("EquipmentPremium = %v, want 3.0", lc.EquipmentPremium)
	}
	if !almostEqual(lc.DriverPremium, 2.5) {
		t.Errorf("DriverPremium = %v, want 2.5", lc.DriverPremium)
	}
	if !almostEqual(lc.CertPremium, 3.5) {
		t.Errorf("CertPremium = %v, want 3.5", lc.CertPremium)
	}
	if !almostEqual(lc.CrossTrainingPremium, 1.0) {
		t.Errorf("CrossTrainingPremium = %v, want 1.0", lc.CrossTrainingPremium)
	}

	want := 38.0 + 2.0 + 3.0 + 2.5 + 3.5 + 1.0
	if !almostEqual(lc.TrueHourlyCost, want) {
		t.Errorf("TrueHourlyCost = %v, want %v", lc.TrueHourlyCost, want)
	}
	if !almostEqual(lc.BillingRate, want*2.5) {
		t.Errorf("BillingRate = %v, want %v", lc.BillingRate, want*2.5)
	}
}

func TestCalcLaborCost_NoDriverNoPremium(t *testing.T) {
	attrs := AttributeSet{Role: RoleADM, Tier: 1, Leadership: LeadershipNone}
	lc := CalcLaborCost(attrs, Compensation{BaseHourlyRate: 18})
	if lc.DriverPremium != 0 {
		t.Errorf("DriverPremium = %v, want 0", lc.DriverPremium)
	}
}

func TestCalcLaborCost_ZeroRate(t *testing.T) {
	attrs := AttributeSet{Role: RoleATC, Tier: 1, Leadership: LeadershipNone}
	lc := CalcLaborCost(attrs, Compensation{})
	if lc.ProfitMargin != 0 {
		t.Errorf("ProfitMargin = %v, want 0 for zero billing rate", lc.ProfitMargin)
	}
}

func TestCalcLaborCost_MarginConstantAtFixedMarkup(t *testing.T) {
	// At a 2.5x markup the margin is always 60% when cost is positive.
	rates := []float64{12, 25, 38.5, 100}
	for _, r := range rates {
		lc := CalcLaborCost(AttributeSet{Role: RoleTRS, Tier: 2, Leadership: LeadershipNone}, Compensation{BaseHourlyRate: r})
		if !almostEqual(lc.ProfitMargin, 60.0) {
			t.Errorf("rate %v: ProfitMargin = %v, want 60.0", r, lc.ProfitMargin)
		}
	}
}

func TestLaborCostProjections(t *testing.T) {
	lc := LaborCost{TrueHourlyCost: 50}
	if !almostEqual(lc.AnnualCost(), 104000) {
		t.Errorf("AnnualCost() = %v, want 104000", lc.AnnualCost())
	}
	if !almostEqual(lc.OvertimeCost(), 75) {
		t.Errorf("OvertimeCost() = %v, want 75", lc.OvertimeCost())
	}
}

func TestCalcLaborCost_Deterministic(t *testing.T) {
	attrs := AttributeSet{
		Role: RoleESR, Tier: 4, Leadership: LeadershipManager,
		EquipmentCerts: []EquipmentLevel{EquipmentE4},
		Driver:         DriverDH,
		Certifications: []Certification{CertEMR, CertOSH},
	}
	comp := Compensation{BaseHourlyRate: 32}

	first := CalcLaborCost(attrs, comp)
	for i := 0; i < 5; i++ {
		if got := CalcLaborCost(attrs, comp); got != first {
			t.Fatalf("call %d produced different result: %+v vs %+v", i, got, first)
		}
	}
}
