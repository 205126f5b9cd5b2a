package services

import "testing"

func TestBuildQualificationCode(t *testing.T) {
	tests := []struct {
		name  string
		attrs AttributeSet
		want  string
	}{
		{
			"role_and_tier_only",
			AttributeSet{Role: RoleTRS, Tier: 3, Leadership: LeadershipNone},
			"TRS3",
		},
		{
			"leadership_suffix",
			AttributeSet{Role: RoleTRS, Tier: 3, Leadership: LeadershipSupervisor},
			"TRS3+S",
		},
		{
			"empty_leadership_treated_as_none",
			AttributeSet{Role: RoleATC, Tier: 1},
			"ATC1",
		},
		{
			"full_stack",
			AttributeSet{
				Role:           RoleTRS,
				Tier:           4,
				Leadership:     LeadershipTeamLeader,
				EquipmentCerts: []EquipmentLevel{EquipmentE3, EquipmentE2},
				Driver:         DriverD2,
				Certifications: []Certification{CertOSH, CertISA},
				CrossTraining:  []CrossTraining{{Role: RoleATC, Tier: 2}},
			},
			"TRS4+L+E2+E3+D2+ISA+OSHX-ATC2",
		},
		{
			"equipment_sorted_regardless_of_input_order",
			AttributeSet{
				Role: RoleEQO, Tier: 2, Leadership: LeadershipNone,
				EquipmentCerts: []EquipmentLevel{EquipmentE4, EquipmentE1, EquipmentE3},
			},
			"EQO2+E1+E3+E4",
		},
		{
			"certs_sorted_regardless_of_input_order",
			AttributeSet{
				Role: RoleATC, Tier: 5, Leadership: LeadershipNone,
				Certifications: []Certification{CertTRA, CertCPR, CertISA},
			},
			"ATC5+CPR+ISA+TRA",
		},
		{
			"cross_training_keeps_insertion_order",
			AttributeSet{
				Role: RoleLCL, Tier: 2, Leadership: LeadershipNone,
				CrossTraining: []CrossTraining{
					{Role: RoleSTG, Tier: 2},
					{Role: RoleMUL, Tier: 1},
				},
			},
			"LCL2X-STG2X-MUL1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildQualificationCode(tt.attrs)
			if got != tt.want {
				t.Errorf("BuildQualificationCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildQualificationCode_InputNotMutated(t *testing.T) {
	certs := []Certification{CertTRA, CertISA}
	equipment := []EquipmentLevel{EquipmentE2, EquipmentE1}
	attrs := AttributeSet{
		Role: RoleATC, Tier: 3, Leadership: LeadershipNone,
		EquipmentCerts: equipment,
		Certifications: certs,
	}

	BuildQualificationCode(attrs)

	if certs[0] != CertTRA || certs[1] != CertISA {
		t.Errorf("certification slice mutated: %v", certs)
	}
	if equipment[0] != EquipmentE2 || equipment[1] != EquipmentE1 {
		t.Errorf("equipment slice mutated: %v", equipment)
	}
}
