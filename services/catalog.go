// Package services provides the workforce and equipment cost engines,
// the qualification code builder, the activity eligibility engine, and
// the export helpers built on top of them.
package services

import "fmt"

// Role is one of the fixed primary role codes an employee can hold.
type Role string

const (
	RoleATC Role = "ATC" // Arborist Tree Care
	RoleTRS Role = "TRS" // Tree Removal Specialist
	RoleFOR Role = "FOR" // Forestry Specialist
	RoleLCL Role = "LCL" // Land Clearing
	RoleMUL Role = "MUL" // Mulching Specialist
	RoleSTG Role = "STG" // Stump Grinding
	RoleESR Role = "ESR" // Emergency Response
	RoleLSC Role = "LSC" // Landscape
	RoleEQO Role = "EQO" // Equipment Operator
	RoleMNT Role = "MNT" // Maintenance
	RoleSAL Role = "SAL" // Sales
	RolePMC Role = "PMC" // Project Management
	RoleADM Role = "ADM" // Administration
	RoleFIN Role = "FIN" // Finance
	RoleSAF Role = "SAF" // Safety
	RoleTEC Role = "TEC" // Technical
)

// AllRoles lists every role code in catalog order.
var AllRoles = []Role{
	RoleATC, RoleTRS, RoleFOR, RoleLCL, RoleMUL, RoleSTG, RoleESR, RoleLSC,
	RoleEQO, RoleMNT, RoleSAL, RolePMC, RoleADM, RoleFIN, RoleSAF, RoleTEC,
}

var roleNames = map[Role]string{
	RoleATC: "Arborist Tree Care",
	RoleTRS: "Tree Removal Specialist",
	RoleFOR: "Forestry Specialist",
	RoleLCL: "Land Clearing",
	RoleMUL: "Mulching Specialist",
	RoleSTG: "Stump Grinding",
	RoleESR: "Emergency Response",
	RoleLSC: "Landscape",
	RoleEQO: "Equipment Operator",
	RoleMNT: "Maintenance",
	RoleSAL: "Sales",
	RolePMC: "Project Management",
	RoleADM: "Administration",
	RoleFIN: "Finance",
	RoleSAF: "Safety",
	RoleTEC: "Technical",
}

// roleBaseMultipliers maps each role to its base rate multiplier.
var roleBaseMultipliers = map[Role]float64{
	RoleATC: 1.8, RoleTRS: 1.8, // skilled tree work
	RoleFOR: 1.7, RoleMUL: 1.7, // forestry operations
	RoleLCL: 1.6, RoleSTG: 1.6, // ground operations
	RoleESR: 2.0, // emergency premium
	RoleLSC: 1.5,
	RoleEQO: 1.7,
	RoleMNT: 1.9,
	RoleSAL: 1.4, RolePMC: 1.4,
	RoleADM: 1.3, RoleFIN: 1.3,
	RoleSAF: 1.6, RoleTEC: 1.6,
}

func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

func (r Role) Name() string {
	return roleNames[r]
}

// BaseMultiplier returns the role's base rate multiplier, or 0 for an
// unknown role.
func (r Role) BaseMultiplier() float64 {
	return roleBaseMultipliers[r]
}

// Tier bounds for the five-step skill ladder.
const (
	MinTier = 1
	MaxTier = 5
)

var tierMultipliers = map[int]float64{
	1: 0.0, // entry level
	2: 0.1,
	3: 0.2,
	4: 0.4,
	5: 0.6, // expert
}

// TierMultiplier returns the additive multiplier for a tier. Out-of-range
// tiers fall back to 0.1 rather than failing; callers validate tier range
// at the input boundary.
func TierMultiplier(tier int) float64 {
	if m, ok := tierMultipliers[tier]; ok {
		return m
	}
	return 0.1
}

// LeadershipLevel is an employee's leadership role, if any. The non-none
// values double as the qualification code suffix tokens.
type LeadershipLevel string

const (
	LeadershipNone       LeadershipLevel = "None"
	LeadershipTeamLeader LeadershipLevel = "+L"
	LeadershipSupervisor LeadershipLevel = "+S"
	LeadershipManager    LeadershipLevel = "+M"
	LeadershipDirector   LeadershipLevel = "+D"
)

// AllLeadershipLevels lists the leadership levels in ascending rank order.
var AllLeadershipLevels = []LeadershipLevel{
	LeadershipNone, LeadershipTeamLeader, LeadershipSupervisor,
	LeadershipManager, LeadershipDirector,
}

var leadershipNames = map[LeadershipLevel]string{
	LeadershipNone:       "No Leadership Role",
	LeadershipTeamLeader: "Team Leader",
	LeadershipSupervisor: "Supervisor",
	LeadershipManager:    "Manager",
	LeadershipDirector:   "Director",
}

// leadershipPremiums maps each level to its flat hourly premium.
var leadershipPremiums = map[LeadershipLevel]float64{
	LeadershipNone:       0,
	LeadershipTeamLeader: 2.0,
	LeadershipSupervisor: 5.0,
	LeadershipManager:    10.0,
	LeadershipDirector:   15.0,
}

var leadershipRanks = map[LeadershipLevel]int{
	LeadershipNone:       0,
	LeadershipTeamLeader: 1,
	LeadershipSupervisor: 2,
	LeadershipManager:    3,
	LeadershipDirector:   4,
}

func (l LeadershipLevel) Valid() bool {
	_, ok := leadershipNames[l]
	return ok
}

func (l LeadershipLevel) Name() string {
	return leadershipNames[l]
}

func (l LeadershipLevel) Premium() float64 {
	return leadershipPremiums[l]
}

// AtLeast reports whether l is the given level or higher. Leadership is
// cumulative: a director holds every lower level's grants.
func (l LeadershipLevel) AtLeast(min LeadershipLevel) bool {
	return leadershipRanks[l] >= leadershipRanks[min]
}

// EquipmentLevel is an equipment operation certification tier. The value
// is the qualification code suffix token.
type EquipmentLevel string

const (
	EquipmentE1 EquipmentLevel = "+E1" // basic equipment
	EquipmentE2 EquipmentLevel = "+E2" // intermediate equipment
	EquipmentE3 EquipmentLevel = "+E3" // advanced equipment
	EquipmentE4 EquipmentLevel = "+E4" // specialized equipment
)

var AllEquipmentLevels = []EquipmentLevel{EquipmentE1, EquipmentE2, EquipmentE3, EquipmentE4}

var equipmentLevelNames = map[EquipmentLevel]string{
	EquipmentE1: "Basic Equipment Operation",
	EquipmentE2: "Intermediate Equipment",
	EquipmentE3: "Advanced Equipment",
	EquipmentE4: "Specialized Equipment",
}

var equipmentLevelPremiums = map[EquipmentLevel]float64{
	EquipmentE1: 1.0,
	EquipmentE2: 2.0,
	EquipmentE3: 3.5,
	EquipmentE4: 5.0,
}

func (e EquipmentLevel) Valid() bool {
	_, ok := equipmentLevelNames[e]
	return ok
}

func (e EquipmentLevel) Name() string {
	return equipmentLevelNames[e]
}

func (e EquipmentLevel) Premium() float64 {
	return equipmentLevelPremiums[e]
}

// DriverClass is an employee's driver classification. At most one is held.
type DriverClass string

const (
	DriverD1 DriverClass = "+D1" // standard license
	DriverD2 DriverClass = "+D2" // CDL class B
	DriverD3 DriverClass = "+D3" // CDL class A
	DriverDH DriverClass = "+DH" // hazmat endorsement
)

var AllDriverClasses = []DriverClass{DriverD1, DriverD2, DriverD3, DriverDH}

var driverClassNames = map[DriverClass]string{
	DriverD1: "Standard Driver's License",
	DriverD2: "Commercial Class B License",
	DriverD3: "Commercial Class A License",
	DriverDH: "Hazmat Endorsement",
}

var driverClassPremiums = map[DriverClass]float64{
	DriverD1: 1.0,
	DriverD2: 2.5,
	DriverD3: 4.0,
	DriverDH: 6.0,
}

func (d DriverClass) Valid() bool {
	_, ok := driverClassNames[d]
	return ok
}

func (d DriverClass) Name() string {
	return driverClassNames[d]
}

func (d DriverClass) Premium() float64 {
	return driverClassPremiums[d]
}

// Certification is a professional certification from the fixed catalog.
// The value is the qualification code suffix token.
type Certification string

const (
	CertISA Certification = "+ISA" // ISA Certified Arborist
	CertTRA Certification = "+TRA" // Tree Risk Assessment
	CertMUN Certification = "+MUN" // Municipal Specialist
	CertUTL Certification = "+UTL" // Utility Specialist
	CertCRA Certification = "+CRA" // Climbing Risk Assessment
	CertOSH Certification = "+OSH" // OSHA Safety
	CertCPR Certification = "+CPR" // CPR/First Aid
	CertPPE Certification = "+PPE" // PPE Specialist
	CertRFW Certification = "+RFW" // Right of Way
	CertEMR Certification = "+EMR" // Emergency Medical Response
)

var AllCertifications = []Certification{
	CertISA, CertTRA, CertMUN, CertUTL, CertCRA,
	CertOSH, CertCPR, CertPPE, CertRFW, CertEMR,
}

var certificationNames = map[Certification]string{
	CertISA: "ISA Certified Arborist",
	CertTRA: "Tree Risk Assessment Qualified",
	CertMUN: "Municipal Specialist",
	CertUTL: "Utility Specialist",
	CertCRA: "Climbing Risk Assessment",
	CertOSH: "OSHA Safety Certified",
	CertCPR: "CPR/First Aid Certified",
	CertPPE: "PPE Specialist",
	CertRFW: "Right of Way Certified",
	CertEMR: "Emergency Medical Response",
}

var certificationPremiums = map[Certification]float64{
	CertISA: 3.0,
	CertTRA: 2.5,
	CertMUN: 2.0,
	CertUTL: 2.0,
	CertCRA: 1.5,
	CertOSH: 1.0,
	CertCPR: 0.5,
	CertPPE: 0.5,
	CertRFW: 1.5,
	CertEMR: 2.0,
}

func (c Certification) Valid() bool {
	_, ok := certificationNames[c]
	return ok
}

func (c Certification) Name() string {
	return certificationNames[c]
}

func (c Certification) Premium() float64 {
	return certificationPremiums[c]
}

// crossTrainingTierRate is the flat hourly premium per cross-training tier.
const crossTrainingTierRate = 0.5

// CrossTraining is a secondary role/tier grant layered onto an employee's
// primary role.
type CrossTraining struct {
	Role Role `json:"role"`
	Tier int  `json:"tier"`
}

// Code returns the qualification code token, e.g. "X-TRS3".
func (ct CrossTraining) Code() string {
	return fmt.Sprintf("X-%s%d", ct.Role, ct.Tier)
}

func (ct CrossTraining) Premium() float64 {
	return float64(ct.Tier) * crossTrainingTierRate
}

// AttributeSet is the complete set of qualifications describing one
// employee. It is owned by the employee record; every derived value
// (cost, qualification code, activity list) is recomputed from it on
// each mutation.
type AttributeSet struct {
	Role            Role             `json:"role"`
	Tier            int              `json:"tier"`
	Leadership      LeadershipLevel  `json:"leadership"`
	EquipmentCerts  []EquipmentLevel `json:"equipment_certs"`
	Driver          DriverClass      `json:"driver,omitempty"` // empty when no classification held
	Certifications  []Certification  `json:"certifications"`
	CrossTraining   []CrossTraining  `json:"cross_training"`
	Specializations []string         `json:"specializations"`
}

// Validate checks the closed-enumeration invariants. The tier fallback in
// TierMultiplier is deliberately more forgiving; Validate is the strict
// input boundary used by handlers.
func (a AttributeSet) Validate() error {
	if !a.Role.Valid() {
		return fmt.Errorf("unknown role %q", a.Role)
	}
	if a.Tier < MinTier || a.Tier > MaxTier {
		return fmt.Errorf("tier %d out of range [%d,%d]", a.Tier, MinTier, MaxTier)
	}
	if !a.Leadership.Valid() {
		return fmt.Errorf("unknown leadership level %q", a.Leadership)
	}
	for _, e := range a.EquipmentCerts {
		if !e.Valid() {
			return fmt.Errorf("unknown equipment certification %q", e)
		}
	}
	if a.Driver != "" && !a.Driver.Valid() {
		return fmt.Errorf("unknown driver classification %q", a.Driver)
	}
	for _, c := range a.Certifications {
		if !c.Valid() {
			return fmt.Errorf("unknown certification %q", c)
		}
	}
	for _, ct := range a.CrossTraining {
		if !ct.Role.Valid() {
			return fmt.Errorf("unknown cross-training role %q", ct.Role)
		}
		if ct.Tier < MinTier || ct.Tier > MaxTier {
			return fmt.Errorf("cross-training tier %d out of range [%d,%d]", ct.Tier, MinTier, MaxTier)
		}
	}
	return nil
}

// TotalCertifications counts every held add-on qualification.
func (a AttributeSet) TotalCertifications() int {
	return len(a.EquipmentCerts) + len(a.Certifications) + len(a.CrossTraining)
}
