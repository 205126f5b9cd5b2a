package services

import (
	"fmt"
	"sort"
	"strings"
)

// BuildQualificationCode serializes an attribute set into its compact
// display code, e.g. "TRS3+S+E2+E3+D2+ISA+OSHX-ATC2".
//
// Composition order is fixed: role+tier, leadership (when held), equipment
// certifications sorted by their own code, driver classification,
// professional certifications sorted by their own code, then cross-training
// records in stored order. Sorted groups make the code independent of the
// order attributes were added; cross-training keeps insertion order.
//
// There is no decoder: suffix tokens are not self-delimiting, so the code
// is one-directional by design.
func BuildQualificationCode(attrs AttributeSet) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s%d", attrs.Role, attrs.Tier))

	if attrs.Leadership != LeadershipNone && attrs.Leadership != "" {
		b.WriteString(string(attrs.Leadership))
	}

	equipment := make([]EquipmentLevel, len(attrs.EquipmentCerts))
	copy(equipment, attrs.EquipmentCerts)
	sort.Slice(equipment, func(i, j int) bool { return equipment[i] < equipment[j] })
	for _, e := range equipment {
		b.WriteString(string(e))
	}

	if attrs.Driver != "" {
		b.WriteString(string(attrs.Driver))
	}

	certs := make([]Certification, len(attrs.Certifications))
	copy(certs, attrs.Certifications)
	sort.Slice(certs, func(i, j int) bool { return certs[i] < certs[j] })
	for _, c := range certs {
		b.WriteString(string(c))
	}

	for _, ct := range attrs.CrossTraining {
		b.WriteString(ct.Code())
	}

	return b.String()
}
