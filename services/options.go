package services

// CatalogOption is one selectable qualification value with its display
// name and hourly premium, for client-side pickers.
type CatalogOption struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Premium float64 `json:"premium"`
}

// RoleOptions returns the selectable roles with their base multipliers
// in the premium slot.
func RoleOptions() []CatalogOption {
	opts := make([]CatalogOption, 0, len(AllRoles))
	for _, r := range AllRoles {
		opts = append(opts, CatalogOption{
			Code:    string(r),
			Name:    r.Name(),
			Premium: r.BaseMultiplier(),
		})
	}
	return opts
}

// LeadershipOptions returns the selectable leadership levels.
func LeadershipOptions() []CatalogOption {
	opts := make([]CatalogOption, 0, len(AllLeadershipLevels))
	for _, l := range AllLeadershipLevels {
		opts = append(opts, CatalogOption{
			Code:    string(l),
			Name:    l.Name(),
			Premium: l.Premium(),
		})
	}
	return opts
}

// EquipmentLevelOptions returns the selectable equipment certifications.
func EquipmentLevelOptions() []CatalogOption {
	opts := make([]CatalogOption, 0, len(AllEquipmentLevels))
	for _, e := range AllEquipmentLevels {
		opts = append(opts, CatalogOption{
			Code:    string(e),
			Name:    e.Name(),
			Premium: e.Premium(),
		})
	}
	return opts
}

// DriverClassOptions returns the selectable driver classifications.
func DriverClassOptions() []CatalogOption {
	opts := make([]CatalogOption, 0, len(AllDriverClasses))
	for _, d := range AllDriverClasses {
		opts = append(opts, CatalogOption{
			Code:    string(d),
			Name:    d.Name(),
			Premium: d.Premium(),
		})
	}
	return opts
}

// CertificationOptions returns the selectable professional certifications.
func CertificationOptions() []CatalogOption {
	opts := make([]CatalogOption, 0, len(AllCertifications))
	for _, c := range AllCertifications {
		opts = append(opts, CatalogOption{
			Code:    string(c),
			Name:    c.Name(),
			Premium: c.Premium(),
		})
	}
	return opts
}

// MaintenanceLevelOptions returns the maintenance levels with their
// annual percentage of purchase price in the premium slot.
func MaintenanceLevelOptions() []CatalogOption {
	opts := make([]CatalogOption, 0, len(AllMaintenanceLevels))
	for _, m := range AllMaintenanceLevels {
		opts = append(opts, CatalogOption{
			Code:    string(m),
			Name:    string(m),
			Premium: m.Percentage(),
		})
	}
	return opts
}

// UsagePatternOptions returns the usage patterns with their default
// annual hours in the premium slot.
func UsagePatternOptions() []CatalogOption {
	opts := make([]CatalogOption, 0, len(AllUsagePatterns))
	for _, u := range AllUsagePatterns {
		opts = append(opts, CatalogOption{
			Code:    string(u),
			Name:    string(u),
			Premium: u.DefaultHoursPerDay() * float64(u.DefaultDaysPerYear()),
		})
	}
	return opts
}
