package services

// Declarative eligibility rule tables for the activity engine. Rules live
// here as data so the rule set can be extended or audited without
// touching the generation pipeline in activities.go.

// universalActivities are available to every role, gated only by tier.
var universalActivities = []Activity{
	{
		Name: "Transport/Travel", Category: CategoryTransport,
		Billable: true, RequiresLocation: true,
		Safety: SafetyLow, Icon: "car.fill", Color: "blue",
		MinTier: 1,
	},
	{
		Name: "Setup/Breakdown", Category: CategorySetup,
		Billable: true, RequiresLocation: true, RequiresEquipment: true,
		Safety: SafetyMedium, Icon: "wrench.and.screwdriver", Color: "orange",
		MinTier: 1,
	},
	{
		Name: "Safety Briefing", Category: CategorySafety,
		RequiresLocation: true,
		Safety:           SafetyLow, Icon: "shield.checkered", Color: "red",
		MinTier: 1,
	},
	{
		Name: "Equipment Inspection", Category: CategoryEquipment,
		RequiresEquipment: true,
		Safety:            SafetyLow, Icon: "checkmark.shield", Color: "green",
		MinTier: 2,
	},
	{
		Name: "Documentation/Reporting", Category: CategoryDocumentation,
		Billable: true,
		Safety:   SafetyLow, Icon: "doc.text", Color: "gray",
		MinTier: 1,
	},
	{
		Name: "Break Time", Category: CategoryAdministrative,
		Safety:  SafetyLow, Icon: "cup.and.saucer", Color: "gray",
		MinTier: 1,
	},
	{
		Name: "Weather Delay", Category: CategoryAdministrative,
		RequiresLocation: true,
		Safety:           SafetyLow, Icon: "cloud.rain", Color: "blue",
		MinTier: 1,
	},
}

// roleActivityTables hold each role's field activities, gated by minimum
// tier. Tables are deliberately uneven: office roles have none, and not
// every field role has an entry at every tier.
var roleActivityTables = map[Role][]Activity{
	RoleATC: {
		{
			Name: "Tree Assessment/Diagnosis", Category: CategoryCoreWork,
			Billable: true, RequiresLocation: true,
			Safety: SafetyLow, Icon: "tree.circle", Color: "green",
			AllowedRoles: []Role{RoleATC}, MinTier: 1,
		},
		{
			Name: "Pruning Operations", Category: CategoryCoreWork,
			Billable: true, RequiresLocation: true, RequiresEquipment: true,
			Safety: SafetyHigh, Icon: "scissors.circle", Color: "green",
			AllowedRoles: []Role{RoleATC}, MinTier: 2,
		},
		{
			Name: "Plant Health Care", Category: CategoryCoreWork,
			Billable: true, RequiresLocation: true, RequiresEquipment: true,
			Safety: SafetyMedium, Icon: "leaf.fill", Color: "green",
			AllowedRoles: []Role{RoleATC}, MinTier: 3,
		},
		{
			Name: "Soil Testing/Treatment", Category: CategoryCoreWork,
			Billable: true, RequiresLocation: true, RequiresEquipment: true,
			Safety: SafetyMedium, Icon: "flask.fill", Color: "brown",
			AllowedRoles: []Role{RoleATC}, MinTier: 3,
		},
		{
			Name: "Species Identification", Category: CategoryCoreWork,
			Billable: true, RequiresLocation: true,
			Safety: SafetyLow, Icon: "eye.fill", Color: "green",
			AllowedRoles: []Role{RoleATC}, MinTier: 3,
		},
		{
			Name: "Consulting/Client Education", Category: CategoryClient,
			Billable: true,
			Safety:   SafetyLow, Icon: "person.2.wave.2", Color: "blue",
			AllowedRoles: []Role{RoleATC}, MinTier: 4,
		},
	},
	RoleTRS: {
		{
			Name: "Rigging Setup", Category: CategorySetup,
			Billable: true, RequiresLocation: true, RequiresEquipment: true,
			Safety: SafetyHigh, Icon: "link.circle", Color: "orange",
			AllowedRoles: []Role{RoleTRS}, MinTier: 2,
		},
		{
			Name: "Cutting/Sectioning", Category: CategoryCoreWork,
			Billable: true, RequiresLocation: true, RequiresEquipment: true,
			Safety: SafetyHigh, Icon: "scissors.circle", Color: "orange",
			AllowedRoles: []Role{RoleTRS}, MinTier: 2,
		},
		{
			Name: "Climbing Operations", Category: CategoryCoreWork,
			Billable: true, RequiresLocation: true, RequiresEquipment: true,
			Safety: SafetyExtreme, Icon: "person.fill", Color: "red",
			AllowedRoles: []Role{RoleTRS}, MinTier: 3,
		},
		{
			Name: "Hazard Assessment", Category: CategorySafety,
			Billable: true, RequiresLocation: true,
			Safety: SafetyMedium, Icon: "exclamationmark.triangle", Color: "red",
			AllowedRoles: []Role{RoleTRS}, MinTier: 3,
		},
		{
			Name: "Emergency Response", Category: CategoryEmergency,
			Billable: true, RequiresLocation: true, RequiresEquipment: true,
			Safety: SafetyExtreme, Icon: "exclamationmark.octagon.fill", Color: "red",
			AllowedRoles: []Role{RoleTRS, RoleESR}, MinTier: 4,
		},
	},
	RoleFOR: {
		{
			Name: "Land Assessment", Category: CategoryCoreWork,
			Billable: true, RequiresLocation: true,
			Safety: SafetyMedium, Icon: "map.fill", Color: "green",
			AllowedRoles: []Role{RoleFOR}, MinTier: 1,
		},
		{
			Name: "Forest Planning", Category: CategoryCoreWork,
			Billable: true, RequiresLocation: true,
			Safety: SafetyLow, Icon: "tree.circle", Color: "green",
			AllowedRoles: []Role{RoleFOR}, MinTier: 3,
		},
		{
			Name: "Habitat Management", Category: CategoryCoreWork,
			Billable: true, RequiresLocation: true, RequiresEquipment: true,
			Safety: SafetyMedium, Icon: "leaf.circle", Color: "green",
			AllowedRoles: []Role{RoleFOR}, MinTier: 4,
		},
	},
	RoleLCL: {
		{
			Name: "Site Preparation", Category: CategoryCoreWork,
			Billable: true, RequiresLocation: true, RequiresEquipment: true,
			Safety: SafetyHigh, Icon: "hammer.fill", Color: "orange",
			AllowedRoles: []Role{RoleLCL}, MinTier: 1,
		},
		{
			Name: "Excavation Operations", Category: CategoryCoreWork,
			Billable: true, RequiresLocation: true, RequiresEquipment: true,
			Safety: SafetyHigh, Icon: "scoop", Color: "brown",
			AllowedRoles: []Role{RoleLCL}, MinTier: 2,
			RequiredEquipment: []EquipmentLevel{EquipmentE2},
		},
		{
			Name: "Grading/Leveling", Category: CategoryCoreWork,
			Billable: true, RequiresLocation: true, RequiresEquipment: true,
			Safety: SafetyMedium, Icon: "level.fill", Color: "yellow",
			AllowedRoles: []Role{RoleLCL}, MinTier: 3,
			RequiredEquipment: []EquipmentLevel{EquipmentE3},
		},
	},
	RoleMUL: {
		{
			Name: "Mulching Operations", Category: CategoryCoreWork,
			Billable: true, RequiresLocation: true, RequiresEquipment: true,
			Safety: SafetyHigh, Icon: "leaf.fill", Color: "brown",
			AllowedRoles: []Role{RoleMUL}, MinTier: 1,
		},
		{
			Name: "Material Processing", Category: CategoryCoreWork,
			Billable: true, RequiresLocation: true, RequiresEquipment: true,
			Safety: SafetyMedium, Icon: "arrow.3.trianglepath", Color: "green",
			AllowedRoles: []Role{RoleMUL}, MinTier: 2,
		},
		{
			Name: "Quality Control", Category: CategoryCoreWork,
			Billable: true, RequiresLocation: true,
			Safety: SafetyLow, Icon: "checkmark.seal", Color: "blue",
			AllowedRoles: []Role{RoleMUL}, MinTier: 3,
		},
	},
	RoleSTG: {
		{
			Name: "Stump Grinding", Category: CategoryCoreWork,
			Billable: true, RequiresLocation: true, RequiresEquipment: true,
			Safety: SafetyHigh, Icon: "circle.grid.hex", Color: "orange",
			AllowedRoles: []Role{RoleSTG}, MinTier: 1,
		},
		{
			Name: "Clean-up Operations", Category: CategoryCoreWork,
			Billable: true, RequiresLocation: true, RequiresEquipment: true,
			Safety: SafetyMedium, Icon: "trash.fill", Color: "gray",
			AllowedRoles: []Role{RoleSTG}, MinTier: 1,
		},
		{
			Name: "Site Restoration", Category: CategoryCoreWork,
			Billable: true, RequiresLocation: true, RequiresEquipment: true,
			Safety: SafetyMedium, Icon: "leaf.circle", Color: "green",
			AllowedRoles: []Role{RoleSTG}, MinTier: 2,
		},
	},
	RoleESR: {
		{
			Name: "Emergency Assessment", Category: CategoryEmergency,
			Billable: true, RequiresLocation: true,
			Safety: SafetyHigh, Icon: "exclamationmark.triangle.fill", Color: "red",
			AllowedRoles: []Role{RoleESR}, MinTier: 1,
		},
		{
			Name: "Storm Cleanup", Category: CategoryEmergency,
			Billable: true, RequiresLocation: true, RequiresEquipment: true,
			Safety: SafetyHigh, Icon: "cloud.bolt.rain.fill", Color: "purple",
			AllowedRoles: []Role{RoleESR}, MinTier: 1,
		},
		{
			Name: "Hazard Mitigation", Category: CategoryEmergency,
			Billable: true, RequiresLocation: true, RequiresEquipment: true,
			Safety: SafetyExtreme, Icon: "shield.fill", Color: "red",
			AllowedRoles: []Role{RoleESR}, MinTier: 2,
		},
	},
	RoleEQO: {
		{
			Name: "Equipment Operation", Category: CategoryCoreWork,
			Billable: true, RequiresLocation: true, RequiresEquipment: true,
			Safety: SafetyHigh, Icon: "gear.circle", Color: "purple",
			AllowedRoles: []Role{RoleEQO}, MinTier: 1,
		},
		{
			Name: "Pre-Operation Inspection", Category: CategoryEquipment,
			RequiresEquipment: true,
			Safety:            SafetyMedium, Icon: "checkmark.circle", Color: "green",
			AllowedRoles: []Role{RoleEQO}, MinTier: 1,
		},
		{
			Name: "Fueling/Servicing", Category: CategoryMaintenance,
			RequiresEquipment: true,
			Safety:            SafetyMedium, Icon: "fuelpump", Color: "yellow",
			AllowedRoles: []Role{RoleEQO, RoleMNT}, MinTier: 1,
		},
		{
			Name: "Equipment Maintenance", Category: CategoryMaintenance,
			RequiresEquipment: true,
			Safety:            SafetyMedium, Icon: "wrench.fill", Color: "brown",
			AllowedRoles: []Role{RoleEQO, RoleMNT}, MinTier: 2,
		},
		{
			Name: "Troubleshooting", Category: CategoryMaintenance,
			RequiresEquipment: true,
			Safety:            SafetyLow, Icon: "questionmark.circle", Color: "orange",
			AllowedRoles: []Role{RoleEQO, RoleMNT}, MinTier: 3,
		},
	},
}

// Leadership grants are cumulative: a manager receives the team-leader
// and supervisor tables as well.
var teamLeaderActivities = []Activity{
	{
		Name: "Crew Coordination", Category: CategoryLeadership,
		Billable: true, RequiresLocation: true,
		Safety: SafetyLow, Icon: "person.3.sequence", Color: "gold",
		MinTier: 2, RequiredLeadership: LeadershipTeamLeader,
	},
	{
		Name: "Task Assignment", Category: CategoryLeadership,
		Safety:  SafetyLow, Icon: "list.clipboard", Color: "blue",
		MinTier: 2, RequiredLeadership: LeadershipTeamLeader,
	},
}

var supervisorActivities = []Activity{
	{
		Name: "Project Planning", Category: CategoryLeadership,
		Billable: true,
		Safety:   SafetyLow, Icon: "calendar.badge.plus", Color: "blue",
		MinTier: 3, RequiredLeadership: LeadershipSupervisor,
	},
	{
		Name: "Performance Review", Category: CategoryAdministrative,
		Safety:  SafetyLow, Icon: "star.circle", Color: "gold",
		MinTier: 3, RequiredLeadership: LeadershipSupervisor,
	},
	{
		Name: "Safety Oversight", Category: CategorySafety,
		RequiresLocation: true,
		Safety:           SafetyLow, Icon: "eye.circle", Color: "red",
		MinTier: 3, RequiredLeadership: LeadershipSupervisor,
	},
}

var managerActivities = []Activity{
	{
		Name: "Strategic Planning", Category: CategoryAdministrative,
		Safety:  SafetyLow, Icon: "chart.line.uptrend.xyaxis", Color: "purple",
		MinTier: 4, RequiredLeadership: LeadershipManager,
	},
	{
		Name: "Business Development", Category: CategoryClient,
		Safety:  SafetyLow, Icon: "briefcase.fill", Color: "blue",
		MinTier: 4, RequiredLeadership: LeadershipManager,
	},
}

// Equipment contributions are additive per held level, not just the
// highest level.
var equipmentActivityTables = map[EquipmentLevel][]Activity{
	EquipmentE1: {
		{
			Name: "Hand Tool Operations", Category: CategoryCoreWork,
			Billable: true, RequiresLocation: true, RequiresEquipment: true,
			Safety: SafetyMedium, Icon: "hammer", Color: "brown",
			MinTier: 1, RequiredEquipment: []EquipmentLevel{EquipmentE1},
		},
	},
	EquipmentE2: {
		{
			Name: "Chipper Operations", Category: CategoryCoreWork,
			Billable: true, RequiresLocation: true, RequiresEquipment: true,
			Safety: SafetyHigh, Icon: "tornado", Color: "orange",
			AllowedRoles: []Role{RoleMUL, RoleTRS, RoleLCL}, MinTier: 2,
			RequiredEquipment: []EquipmentLevel{EquipmentE2},
		},
	},
	EquipmentE3: {
		{
			Name: "Bucket Truck Operations", Category: CategoryCoreWork,
			Billable: true, RequiresLocation: true, RequiresEquipment: true,
			Safety: SafetyExtreme, Icon: "car.rear.fill", Color: "red",
			AllowedRoles: []Role{RoleTRS, RoleATC}, MinTier: 3,
			RequiredEquipment: []EquipmentLevel{EquipmentE3},
		},
	},
	EquipmentE4: {
		{
			Name: "Complex Machinery Operation", Category: CategoryCoreWork,
			Billable: true, RequiresLocation: true, RequiresEquipment: true,
			Safety: SafetyExtreme, Icon: "gear.circle.fill", Color: "purple",
			AllowedRoles: []Role{RoleEQO, RoleLCL}, MinTier: 4,
			RequiredEquipment: []EquipmentLevel{EquipmentE4},
		},
	},
}

// Only one driver classification is ever held, so driver contributions
// are not cumulative.
var driverActivityTables = map[DriverClass][]Activity{
	DriverD1: {
		{
			Name: "Vehicle Operation", Category: CategoryTransport,
			Billable: true, RequiresLocation: true,
			Safety: SafetyMedium, Icon: "car.circle", Color: "blue",
			MinTier: 1,
		},
	},
	DriverD2: {
		{
			Name: "CDL Vehicle Operation", Category: CategoryTransport,
			Billable: true, RequiresLocation: true,
			Safety: SafetyMedium, Icon: "truck.box", Color: "blue",
			MinTier: 2,
		},
	},
	DriverD3: {
		{
			Name: "Heavy Equipment Transport", Category: CategoryTransport,
			Billable: true, RequiresLocation: true, RequiresEquipment: true,
			Safety: SafetyHigh, Icon: "truck.pickup", Color: "orange",
			MinTier: 3,
		},
	},
	DriverDH: {
		{
			Name: "Hazmat Transport", Category: CategoryTransport,
			Billable: true, RequiresLocation: true, RequiresEquipment: true,
			Safety: SafetyExtreme, Icon: "exclamationmark.triangle.fill", Color: "red",
			MinTier: 4,
		},
	},
}

// Only a subset of professional certifications unlock activities; the
// rest contribute premiums only.
var certificationActivityTables = map[Certification][]Activity{
	CertCRA: {
		{
			Name: "Crane Operations", Category: CategoryCoreWork,
			Billable: true, RequiresLocation: true, RequiresEquipment: true,
			Safety: SafetyExtreme, Icon: "arrow.up.and.down.and.arrow.left.and.right", Color: "red",
			AllowedRoles: []Role{RoleTRS, RoleLCL}, MinTier: 4,
			RequiredCerts: []Certification{CertCRA},
		},
	},
	CertISA: {
		{
			Name: "Professional Consultation", Category: CategoryClient,
			Billable: true,
			Safety:   SafetyLow, Icon: "graduationcap.fill", Color: "blue",
			AllowedRoles: []Role{RoleATC, RoleFOR}, MinTier: 3,
			RequiredCerts: []Certification{CertISA},
		},
	},
	CertOSH: {
		{
			Name: "Safety Training Delivery", Category: CategoryTraining,
			Safety:  SafetyLow, Icon: "person.wave.2.fill", Color: "red",
			MinTier: 3, RequiredCerts: []Certification{CertOSH},
		},
	},
}
