package services

import (
	"fmt"
	"sort"
)

// ActivityCategory groups loggable activities. The value doubles as the
// display label and the primary sort key of the generated catalog.
type ActivityCategory string

const (
	CategoryAdministrative ActivityCategory = "Administrative"
	CategoryClient         ActivityCategory = "Client"
	CategoryCoreWork       ActivityCategory = "Core Work"
	CategoryDocumentation  ActivityCategory = "Documentation"
	CategoryEmergency      ActivityCategory = "Emergency"
	CategoryEquipment      ActivityCategory = "Equipment"
	CategoryLeadership     ActivityCategory = "Leadership"
	CategoryMaintenance    ActivityCategory = "Maintenance"
	CategorySafety         ActivityCategory = "Safety"
	CategorySetup          ActivityCategory = "Setup"
	CategoryTraining       ActivityCategory = "Training"
	CategoryTransport      ActivityCategory = "Transport"
)

// SafetyLevel rates the risk of an activity.
type SafetyLevel string

const (
	SafetyLow     SafetyLevel = "Low Risk"
	SafetyMedium  SafetyLevel = "Medium Risk"
	SafetyHigh    SafetyLevel = "High Risk"
	SafetyExtreme SafetyLevel = "Extreme Risk"
)

// Activity is one loggable work activity from the generated catalog,
// together with its declarative eligibility predicate. A nil AllowedRoles
// means every role may perform it; an empty RequiredCerts means no
// additional certification is needed.
type Activity struct {
	Name              string           `json:"name"`
	Category          ActivityCategory `json:"category"`
	Billable          bool             `json:"billable"`
	RequiresLocation  bool             `json:"requires_location"`
	RequiresEquipment bool             `json:"requires_equipment"`
	Safety            SafetyLevel      `json:"safety"`
	Icon              string           `json:"icon"`
	Color             string           `json:"color"`

	AllowedRoles       []Role           `json:"allowed_roles,omitempty"`
	MinTier            int              `json:"min_tier"`
	RequiredCerts      []Certification  `json:"required_certs,omitempty"`
	RequiredEquipment  []EquipmentLevel `json:"required_equipment,omitempty"`
	RequiredLeadership LeadershipLevel  `json:"required_leadership,omitempty"`
}

// key is the structural identity used for de-duplication. Two activities
// that differ in any field (a cross-train variant vs. a native grant, for
// example) are distinct catalog entries.
func (a Activity) key() string {
	return fmt.Sprintf("%v", a)
}

// Cross-training variants are re-tagged with fixed markers so they are
// distinguishable from native role grants.
const (
	crossTrainPrefix = "Cross-Train: "
	crossTrainIcon   = "arrow.triangle.2.circlepath"
	crossTrainColor  = "purple"
)

// EligibleActivities generates the complete catalog of work activities
// the holder of the given attribute set may log time against.
//
// The pipeline unions the universal list, the primary role's tier-gated
// table, cumulative leadership grants, one contribution per held
// equipment level, the driver classification's contribution, per-held
// certification contributions, and re-tagged cross-training variants of
// each cross-trained role's table. Duplicates are removed by structural
// equality and the result is sorted by (category, name), so repeated
// calls with the same input produce the same ordered list.
//
// An attribute set with no add-ons still yields the universal list; this
// is the minimum case, not an error.
func EligibleActivities(attrs AttributeSet) []Activity {
	var out []Activity

	for _, a := range universalActivities {
		if attrs.Tier >= a.MinTier {
			out = append(out, a)
		}
	}

	out = append(out, roleActivities(attrs.Role, attrs.Tier)...)

	if attrs.Leadership.AtLeast(LeadershipTeamLeader) {
		out = append(out, teamLeaderActivities...)
	}
	if attrs.Leadership.AtLeast(LeadershipSupervisor) {
		out = append(out, supervisorActivities...)
	}
	if attrs.Leadership.AtLeast(LeadershipManager) {
		out = append(out, managerActivities...)
	}

	for _, level := range attrs.EquipmentCerts {
		out = append(out, equipmentActivityTables[level]...)
	}

	if attrs.Driver != "" {
		out = append(out, driverActivityTables[attrs.Driver]...)
	}

	for _, cert := range attrs.Certifications {
		out = append(out, certificationActivityTables[cert]...)
	}

	for _, ct := range attrs.CrossTraining {
		for _, a := range roleActivities(ct.Role, ct.Tier) {
			out = append(out, crossTrainVariant(a, ct))
		}
	}

	return dedupeAndSort(out)
}

// roleActivities returns the primary-role table entries whose minimum
// tier the given tier meets. Role tables are intentionally heterogeneous;
// roles without field activity tables return nothing.
func roleActivities(role Role, tier int) []Activity {
	var out []Activity
	for _, a := range roleActivityTables[role] {
		if tier >= a.MinTier {
			out = append(out, a)
		}
	}
	return out
}

// crossTrainVariant re-tags a role activity as a cross-training grant:
// prefixed name, training category, fixed markers, and an allowed-role
// set restricted to the cross-trained role only.
func crossTrainVariant(a Activity, ct CrossTraining) Activity {
	return Activity{
		Name:              crossTrainPrefix + a.Name,
		Category:          CategoryTraining,
		Billable:          a.Billable,
		RequiresLocation:  a.RequiresLocation,
		RequiresEquipment: a.RequiresEquipment,
		Safety:            a.Safety,
		Icon:              crossTrainIcon,
		Color:             crossTrainColor,
		AllowedRoles:      []Role{ct.Role},
		MinTier:           ct.Tier,
	}
}

func dedupeAndSort(activities []Activity) []Activity {
	seen := make(map[string]struct{}, len(activities))
	out := activities[:0]
	for _, a := range activities {
		k := a.key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out
}
