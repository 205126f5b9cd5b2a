package services

import (
	"sort"
	"testing"
)

func activityNames(activities []Activity) []string {
	names := make([]string, len(activities))
	for i, a := range activities {
		names[i] = a.Name
	}
	return names
}

func containsActivity(activities []Activity, name string) bool {
	for _, a := range activities {
		if a.Name == name {
			return true
		}
	}
	return false
}

func TestEligibleActivities_MinimumCase(t *testing.T) {
	// No add-ons at tier 1: the universal list minus the tier-2-gated
	// equipment inspection. Never empty.
	attrs := AttributeSet{Role: RoleADM, Tier: 1, Leadership: LeadershipNone}

	got := EligibleActivities(attrs)

	want := []string{
		"Break Time", "Documentation/Reporting", "Safety Briefing",
		"Setup/Breakdown", "Transport/Travel", "Weather Delay",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d activities %v, want %d", len(got), activityNames(got), len(want))
	}
	for _, name := range want {
		if !containsActivity(got, name) {
			t.Errorf("missing universal activity %q", name)
		}
	}
	if containsActivity(got, "Equipment Inspection") {
		t.Error("tier 1 should not receive the tier-2 equipment inspection")
	}
}

func TestEligibleActivities_UniversalTierGate(t *testing.T) {
	attrs := AttributeSet{Role: RoleADM, Tier: 2, Leadership: LeadershipNone}
	got := EligibleActivities(attrs)
	if !containsActivity(got, "Equipment Inspection") {
		t.Error("tier 2 should receive equipment inspection")
	}
}

func TestEligibleActivities_RoleTableTierGate(t *testing.T) {
	tier1 := EligibleActivities(AttributeSet{Role: RoleATC, Tier: 1, Leadership: LeadershipNone})
	if !containsActivity(tier1, "Tree Assessment/Diagnosis") {
		t.Error("ATC tier 1 should receive tree assessment")
	}
	if containsActivity(tier1, "Pruning Operations") {
		t.Error("ATC tier 1 should not receive tier-2 pruning")
	}

	tier2 := EligibleActivities(AttributeSet{Role: RoleATC, Tier: 2, Leadership: LeadershipNone})
	if !containsActivity(tier2, "Pruning Operations") {
		t.Error("ATC tier 2 should receive pruning")
	}
	if containsActivity(tier2, "Consulting/Client Education") {
		t.Error("ATC tier 2 should not receive tier-4 consulting")
	}
}

func TestEligibleActivities_TierMonotonicity(t *testing.T) {
	// Raising the tier never removes an activity.
	for _, role := range []Role{RoleATC, RoleTRS, RoleEQO, RoleLCL} {
		prev := map[string]bool{}
		for tier := MinTier; tier <= MaxTier; tier++ {
			got := EligibleActivities(AttributeSet{Role: role, Tier: tier, Leadership: LeadershipNone})
			for name := range prev {
				if !containsActivity(got, name) {
					t.Errorf("%s tier %d lost activity %q held at tier %d", role, tier, name, tier-1)
				}
			}
			prev = map[string]bool{}
			for _, a := range got {
				prev[a.Name] = true
			}
		}
	}
}

func TestEligibleActivities_LeadershipCumulative(t *testing.T) {
	base := AttributeSet{Role: RoleTRS, Tier: 4}

	tests := []struct {
		name       string
		leadership LeadershipLevel
		want       []string
		notWant    []string
	}{
		{
			"team_leader", LeadershipTeamLeader,
			[]string{"Crew Coordination", "Task Assignment"},
			[]string{"Project Planning", "Strategic Planning"},
		},
		{
			"supervisor_includes_team_leader", LeadershipSupervisor,
			[]string{"Crew Coordination", "Project Planning", "Safety Oversight"},
			[]string{"Strategic Planning"},
		},
		{
			"manager_includes_all_below", LeadershipManager,
			[]string{"Crew Coordination", "Project Planning", "Strategic Planning", "Business Development"},
			nil,
		},
		{
			"director_matches_manager_grants", LeadershipDirector,
			[]string{"Crew Coordination", "Project Planning", "Strategic Planning"},
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := base
			attrs.Leadership = tt.leadership
			got := EligibleActivities(attrs)
			for _, name := range tt.want {
				if !containsActivity(got, name) {
					t.Errorf("%s missing %q", tt.leadership, name)
				}
			}
			for _, name := range tt.notWant {
				if containsActivity(got, name) {
					t.Errorf("%s should not receive %q", tt.leadership, name)
				}
			}
		})
	}
}

func TestEligibleActivities_EquipmentAdditive(t *testing.T) {
	attrs := AttributeSet{
		Role: RoleEQO, Tier: 4, Leadership: LeadershipNone,
		EquipmentCerts: []EquipmentLevel{EquipmentE1, EquipmentE4},
	}
	got := EligibleActivities(attrs)

	if !containsActivity(got, "Hand Tool Operations") {
		t.Error("E1 holder missing hand tool operations")
	}
	if !containsActivity(got, "Complex Machinery Operation") {
		t.Error("E4 holder missing complex machinery operation")
	}
	if containsActivity(got, "Chipper Operations") {
		t.Error("should not receive E2 chipper operations without E2")
	}
}

func TestEligibleActivities_DriverContribution(t *testing.T) {
	attrs := AttributeSet{Role: RoleTRS, Tier: 3, Leadership: LeadershipNone, Driver: DriverD2}
	got := EligibleActivities(attrs)

	if !containsActivity(got, "CDL Vehicle Operation") {
		t.Error("D2 holder missing CDL vehicle operation")
	}
	if containsActivity(got, "Vehicle Operation") {
		t.Error("D2 holder should not receive the D1 contribution")
	}

	noDriver := EligibleActivities(AttributeSet{Role: RoleTRS, Tier: 3, Leadership: LeadershipNone})
	if containsActivity(noDriver, "CDL Vehicle Operation") {
		t.Error("driver activity present without a driver classification")
	}
}

func TestEligibleActivities_CertificationContributions(t *testing.T) {
	attrs := AttributeSet{
		Role: RoleTRS, Tier: 4, Leadership: LeadershipNone,
		Certifications: []Certification{CertCRA, CertOSH, CertCPR},
	}
	got := EligibleActivities(attrs)

	if !containsActivity(got, "Crane Operations") {
		t.Error("CRA holder missing crane operations")
	}
	if !containsActivity(got, "Safety Training Delivery") {
		t.Error("OSH holder missing safety training delivery")
	}

	// CPR contributes a premium but no activities; the list must be the
	// same with or without it.
	without := attrs
	without.Certifications = []Certification{CertCRA, CertOSH}
	if len(EligibleActivities(without)) != len(got) {
		t.Error("CPR certification changed the activity list")
	}
}

func TestEligibleActivities_CrossTrainingVariants(t *testing.T) {
	attrs := AttributeSet{
		Role: RoleADM, Tier: 2, Leadership: LeadershipNone,
		CrossTraining: []CrossTraining{{Role: RoleSTG, Tier: 1}},
	}
	got := EligibleActivities(attrs)

	var variant *Activity
	for i := range got {
		if got[i].Name == "Cross-Train: Stump Grinding" {
			variant = &got[i]
			break
		}
	}
	if variant == nil {
		t.Fatalf("missing cross-training variant, got %v", activityNames(got))
	}
	if variant.Category != CategoryTraining {
		t.Errorf("variant category = %q, want %q", variant.Category, CategoryTraining)
	}
	if len(variant.AllowedRoles) != 1 || variant.AllowedRoles[0] != RoleSTG {
		t.Errorf("variant allowed roles = %v, want [STG]", variant.AllowedRoles)
	}
	if variant.Icon != crossTrainIcon || variant.Color != crossTrainColor {
		t.Errorf("variant markers = %q/%q, want fixed cross-train markers", variant.Icon, variant.Color)
	}

	// The cross-trained tier gates the source table, not the primary tier.
	if containsActivity(got, "Cross-Train: Site Restoration") {
		t.Error("tier-1 cross-training should not include the tier-2 site restoration")
	}
}

func TestEligibleActivities_Deduplication(t *testing.T) {
	// Duplicate held attributes must not produce duplicate entries.
	attrs := AttributeSet{
		Role: RoleEQO, Tier: 3, Leadership: LeadershipNone,
		EquipmentCerts: []EquipmentLevel{EquipmentE1, EquipmentE1},
		Certifications: []Certification{CertOSH, CertOSH},
	}
	got := EligibleActivities(attrs)

	seen := map[string]int{}
	for _, a := range got {
		seen[a.key()]++
	}
	for k, n := range seen {
		if n > 1 {
			t.Errorf("duplicate catalog entry (%d copies): %s", n, k)
		}
	}
}

func TestEligibleActivities_SortedByCategoryThenName(t *testing.T) {
	attrs := AttributeSet{
		Role: RoleTRS, Tier: 5, Leadership: LeadershipDirector,
		EquipmentCerts: []EquipmentLevel{EquipmentE2, EquipmentE3},
		Driver:         DriverD3,
		Certifications: []Certification{CertCRA, CertOSH},
		CrossTraining:  []CrossTraining{{Role: RoleATC, Tier: 3}},
	}
	got := EligibleActivities(attrs)

	sorted := sort.SliceIsSorted(got, func(i, j int) bool {
		if got[i].Category != got[j].Category {
			return got[i].Category < got[j].Category
		}
		return got[i].Name < got[j].Name
	})
	if !sorted {
		t.Errorf("catalog not sorted by (category, name): %v", activityNames(got))
	}
}

func TestEligibleActivities_Deterministic(t *testing.T) {
	attrs := AttributeSet{
		Role: RoleESR, Tier: 4, Leadership: LeadershipSupervisor,
		EquipmentCerts: []EquipmentLevel{EquipmentE1, EquipmentE2},
		Driver:         DriverDH,
		Certifications: []Certification{CertEMR, CertOSH},
		CrossTraining:  []CrossTraining{{Role: RoleTRS, Tier: 2}},
	}

	first := EligibleActivities(attrs)
	for run := 0; run < 5; run++ {
		got := EligibleActivities(attrs)
		if len(got) != len(first) {
			t.Fatalf("run %d: %d activities, want %d", run, len(got), len(first))
		}
		for i := range got {
			if got[i].key() != first[i].key() {
				t.Fatalf("run %d: position %d differs: %q vs %q", run, i, got[i].Name, first[i].Name)
			}
		}
	}
}

func TestEligibleActivities_SharedActivitiesDeduped(t *testing.T) {
	// EQO and MNT share maintenance activities; holding EQO with MNT
	// cross-training must not duplicate them, while the cross-train
	// variants (re-tagged) remain distinct entries.
	attrs := AttributeSet{
		Role: RoleEQO, Tier: 3, Leadership: LeadershipNone,
		CrossTraining: []CrossTraining{{Role: RoleEQO, Tier: 3}},
	}
	got := EligibleActivities(attrs)

	native := 0
	variants := 0
	for _, a := range got {
		if a.Name == "Equipment Maintenance" {
			native++
		}
		if a.Name == "Cross-Train: Equipment Maintenance" {
			variants++
		}
	}
	if native != 1 {
		t.Errorf("native equipment maintenance count = %d, want 1", native)
	}
	if variants != 1 {
		t.Errorf("cross-train variant count = %d, want 1", variants)
	}
}
