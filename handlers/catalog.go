package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"fieldops/services"
)

// HandleCatalog returns every selectable qualification and equipment
// option with display names and premiums, so client pickers never
// hard-code the rate tables.
func HandleCatalog(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, map[string]any{
			"roles":              services.RoleOptions(),
			"leadership_levels":  services.LeadershipOptions(),
			"equipment_levels":   services.EquipmentLevelOptions(),
			"driver_classes":     services.DriverClassOptions(),
			"certifications":     services.CertificationOptions(),
			"maintenance_levels": services.MaintenanceLevelOptions(),
			"usage_patterns":     services.UsagePatternOptions(),
		})
	}
}
