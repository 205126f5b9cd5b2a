package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"fieldops/services"
)

// ── Definition structs ───────────────────────────────────────────────────

type employeeDef struct {
	name           string
	email          string
	phone          string
	hireDate       string
	baseHourlyRate float64
	role           services.Role
	tier           int
	leadership     services.LeadershipLevel
	equipmentCerts []services.EquipmentLevel
	driver         services.DriverClass
	certifications []services.Certification
	crossTraining  []services.CrossTraining
}

type equipmentDef struct {
	name                string
	makeModel           string
	serialNumber        string
	purchasePrice       float64
	yearsOfService      int
	resaleValue         float64
	dailyFuelCost       float64
	maintenanceLevel    services.MaintenanceLevel
	annualInsuranceCost float64
	usagePattern        services.UsagePattern
	daysPerYear         int
	hoursPerDay         float64
}

type customerDef struct {
	name          string
	contactPerson string
	email         string
	phone         string
	address       string
}

type loadoutDef struct {
	name             string
	description      string
	employeeNames    []string
	equipmentNames   []string
	markupMultiplier float64
}

// Seed populates all collections with a realistic land-clearing company
// roster. It is safe to call on every startup because it returns early
// if any employee records already exist.
func Seed(app *pocketbase.PocketBase) error {
	// ── idempotency: skip if employees already exist ─────────────────
	employeesCol, err := app.FindCollectionByNameOrId("employees")
	if err != nil {
		return fmt.Errorf("seed: could not find employees collection: %w", err)
	}
	existing, err := app.FindAllRecords(employeesCol)
	if err != nil {
		return fmt.Errorf("seed: could not query employees: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: employees collection is empty – inserting seed data …")

	// ── lookup helper collections ────────────────────────────────────
	equipmentCol, err := app.FindCollectionByNameOrId("equipment")
	if err != nil {
		return fmt.Errorf("seed: could not find equipment collection: %w", err)
	}
	customersCol, err := app.FindCollectionByNameOrId("customers")
	if err != nil {
		return fmt.Errorf("seed: could not find customers collection: %w", err)
	}
	loadoutsCol, err := app.FindCollectionByNameOrId("loadouts")
	if err != nil {
		return fmt.Errorf("seed: could not find loadouts collection: %w", err)
	}

	// ── helper: create employee with derived values ──────────────────
	employeeIDs := map[string]string{}
	employeeCosts := map[string]float64{}
	createEmployee := func(d employeeDef) error {
		r := core.NewRecord(employeesCol)
		r.Set("name", d.name)
		r.Set("email", d.email)
		r.Set("phone", d.phone)
		r.Set("hire_date", d.hireDate)
		r.Set("active", true)
		r.Set("role", string(d.role))
		r.Set("tier", d.tier)
		r.Set("leadership", string(d.leadership))

		certs := make([]string, len(d.equipmentCerts))
		for i, e := range d.equipmentCerts {
			certs[i] = string(e)
		}
		r.Set("equipment_certs", certs)

		if d.driver != "" {
			r.Set("driver", string(d.driver))
		}

		profCerts := make([]string, len(d.certifications))
		for i, c := range d.certifications {
			profCerts[i] = string(c)
		}
		r.Set("certifications", profCerts)
		r.Set("cross_training", d.crossTraining)

		r.Set("base_hourly_rate", d.baseHourlyRate)
		r.Set("overtime_multiplier", 1.5)

		if err := services.ApplyEmployeeDerived(r); err != nil {
			return fmt.Errorf("seed: derive employee %q: %w", d.name, err)
		}
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save employee %q: %w", d.name, err)
		}
		employeeIDs[d.name] = r.Id
		employeeCosts[d.name] = r.GetFloat("true_hourly_cost")
		return nil
	}

	// ── helper: create equipment with derived values ─────────────────
	equipmentIDs := map[string]string{}
	equipmentCosts := map[string]float64{}
	createEquipment := func(d equipmentDef) error {
		r := core.NewRecord(equipmentCol)
		r.Set("name", d.name)
		r.Set("make_model", d.makeModel)
		r.Set("serial_number", d.serialNumber)
		r.Set("active", true)
		r.Set("purchase_price", d.purchasePrice)
		r.Set("years_of_service", d.yearsOfService)
		r.Set("estimated_resale_value", d.resaleValue)
		r.Set("daily_fuel_cost", d.dailyFuelCost)
		r.Set("maintenance_level", string(d.maintenanceLevel))
		r.Set("annual_insurance_cost", d.annualInsuranceCost)
		r.Set("usage_pattern", string(d.usagePattern))
		r.Set("days_per_year", d.daysPerYear)
		r.Set("hours_per_day", d.hoursPerDay)

		if err := services.ApplyEquipmentDerived(r); err != nil {
			return fmt.Errorf("seed: derive equipment %q: %w", d.name, err)
		}
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save equipment %q: %w", d.name, err)
		}
		equipmentIDs[d.name] = r.Id
		equipmentCosts[d.name] = r.GetFloat("hourly_cost")
		return nil
	}

	// ── helper: create customer ──────────────────────────────────────
	createCustomer := func(d customerDef) error {
		r := core.NewRecord(customersCol)
		r.Set("name", d.name)
		r.Set("contact_person", d.contactPerson)
		r.Set("email", d.email)
		r.Set("phone", d.phone)
		r.Set("address", d.address)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save customer %q: %w", d.name, err)
		}
		return nil
	}

	// ── helper: create loadout with resolved costs ───────────────────
	createLoadout := func(d loadoutDef) error {
		r := core.NewRecord(loadoutsCol)
		r.Set("name", d.name)
		r.Set("description", d.description)
		r.Set("markup_multiplier", d.markupMultiplier)

		var memberIDs []string
		var memberCosts []float64
		for _, name := range d.employeeNames {
			memberIDs = append(memberIDs, employeeIDs[name])
			memberCosts = append(memberCosts, employeeCosts[name])
		}
		r.Set("employees", memberIDs)

		var machineIDs []string
		var machineCosts []float64
		for _, name := range d.equipmentNames {
			machineIDs = append(machineIDs, equipmentIDs[name])
			machineCosts = append(machineCosts, equipmentCosts[name])
		}
		r.Set("equipment", machineIDs)

		cost := services.CalcLoadoutCost(memberCosts, machineCosts, services.PricingFromRecord(r))
		services.ApplyLoadoutDerived(r, cost)

		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save loadout %q: %w", d.name, err)
		}
		return nil
	}

	// ── Employees ────────────────────────────────────────────────────
	employees := []employeeDef{
		{
			name: "Marcus Webb", email: "marcus@ridgelineland.com", phone: "352-555-0141",
			hireDate: "2019-03-11", baseHourlyRate: 28,
			role: services.RoleTRS, tier: 4, leadership: services.LeadershipSupervisor,
			equipmentCerts: []services.EquipmentLevel{services.EquipmentE2, services.EquipmentE3},
			driver:         services.DriverD3,
			certifications: []services.Certification{services.CertISA, services.CertCRA, services.CertOSH},
		},
		{
			name: "Dana Foss", email: "dana@ridgelineland.com", phone: "352-555-0152",
			hireDate: "2021-06-01", baseHourlyRate: 25,
			role: services.RoleMUL, tier: 3, leadership: services.LeadershipTeamLeader,
			equipmentCerts: []services.EquipmentLevel{services.EquipmentE2},
			driver:         services.DriverD2,
			certifications: []services.Certification{services.CertOSH, services.CertCPR},
			crossTraining:  []services.CrossTraining{{Role: services.RoleSTG, Tier: 2}},
		},
		{
			name: "Luis Herrera", email: "luis@ridgelineland.com", phone: "352-555-0163",
			hireDate: "2022-02-14", baseHourlyRate: 22,
			role: services.RoleLCL, tier: 2, leadership: services.LeadershipNone,
			equipmentCerts: []services.EquipmentLevel{services.EquipmentE1, services.EquipmentE2},
			driver:         services.DriverD1,
			certifications: []services.Certification{services.CertPPE},
		},
		{
			name: "Priya Nair", email: "priya@ridgelineland.com", phone: "352-555-0174",
			hireDate: "2020-09-20", baseHourlyRate: 26,
			role: services.RoleATC, tier: 3, leadership: services.LeadershipNone,
			certifications: []services.Certification{services.CertISA, services.CertTRA},
		},
		{
			name: "Tom Aldridge", email: "tom@ridgelineland.com", phone: "352-555-0185",
			hireDate: "2018-01-08", baseHourlyRate: 30,
			role: services.RoleEQO, tier: 4, leadership: services.LeadershipNone,
			equipmentCerts: []services.EquipmentLevel{
				services.EquipmentE1, services.EquipmentE2,
				services.EquipmentE3, services.EquipmentE4,
			},
			driver:         services.DriverDH,
			certifications: []services.Certification{services.CertOSH},
			crossTraining:  []services.CrossTraining{{Role: services.RoleMNT, Tier: 2}},
		},
		{
			name: "Grace Okafor", email: "grace@ridgelineland.com", phone: "352-555-0196",
			hireDate: "2023-04-03", baseHourlyRate: 20,
			role: services.RoleADM, tier: 2, leadership: services.LeadershipNone,
		},
	}
	for _, d := range employees {
		if err := createEmployee(d); err != nil {
			return err
		}
	}

	// ── Equipment ────────────────────────────────────────────────────
	machines := []equipmentDef{
		{
			name: "Forestry Mulcher 1", makeModel: "CAT 299D3 XE Land Management", serialNumber: "CAT299-8841",
			purchasePrice: 145000, yearsOfService: 7, resaleValue: 43500,
			dailyFuelCost: 180, maintenanceLevel: services.MaintenanceIntensive,
			annualInsuranceCost: 4200, usagePattern: services.UsageHeavy,
			daysPerYear: 250, hoursPerDay: 10,
		},
		{
			name: "Chipper 1", makeModel: "Bandit 15XP", serialNumber: "BND15-2217",
			purchasePrice: 62000, yearsOfService: 8, resaleValue: 12400,
			dailyFuelCost: 95, maintenanceLevel: services.MaintenanceStandard,
			annualInsuranceCost: 1800, usagePattern: services.UsageModerate,
			daysPerYear: 200, hoursPerDay: 6,
		},
		{
			name: "Stump Grinder 1", makeModel: "Vermeer SC552", serialNumber: "VRM552-0190",
			purchasePrice: 48000, yearsOfService: 6, resaleValue: 9600,
			dailyFuelCost: 70, maintenanceLevel: services.MaintenanceStandard,
			annualInsuranceCost: 1500, usagePattern: services.UsageLight,
			daysPerYear: 150, hoursPerDay: 3,
		},
		{
			name: "Bucket Truck 1", makeModel: "Altec LR760 on Ford F750", serialNumber: "ALT760-5532",
			purchasePrice: 185000, yearsOfService: 10, resaleValue: 55000,
			dailyFuelCost: 120, maintenanceLevel: services.MaintenancePreventive,
			annualInsuranceCost: 6800, usagePattern: services.UsageModerate,
			daysPerYear: 200, hoursPerDay: 6,
		},
	}
	for _, d := range machines {
		if err := createEquipment(d); err != nil {
			return err
		}
	}

	// ── Customers ────────────────────────────────────────────────────
	customers := []customerDef{
		{
			name: "Suwannee River Ranch LLC", contactPerson: "Earl Johnston",
			email: "earl@suwanneeranch.com", phone: "386-555-0121",
			address: "14800 County Road 49, Live Oak, FL 32060",
		},
		{
			name: "Brightwater Development Group", contactPerson: "Sandra Liu",
			email: "sliu@brightwaterdev.com", phone: "904-555-0187",
			address: "2210 Riverside Ave, Jacksonville, FL 32204",
		},
		{
			name: "Alachua County Public Works", contactPerson: "Dept. Coordinator",
			email: "row@alachuacounty.us", phone: "352-555-0100",
			address: "5620 NW 120th Ln, Gainesville, FL 32653",
		},
	}
	for _, d := range customers {
		if err := createCustomer(d); err != nil {
			return err
		}
	}

	// ── Loadouts ─────────────────────────────────────────────────────
	loadouts := []loadoutDef{
		{
			name:        "Mulching Crew A",
			description: "Primary forestry mulching crew for clearing jobs up to 10 acres.",
			employeeNames: []string{
				"Dana Foss", "Luis Herrera", "Tom Aldridge",
			},
			equipmentNames:   []string{"Forestry Mulcher 1", "Chipper 1"},
			markupMultiplier: 2.5,
		},
		{
			name:        "Tree Removal Crew",
			description: "Technical removal crew for hazard trees and tight-access lots.",
			employeeNames: []string{
				"Marcus Webb", "Priya Nair", "Luis Herrera",
			},
			equipmentNames:   []string{"Bucket Truck 1", "Chipper 1", "Stump Grinder 1"},
			markupMultiplier: 2.5,
		},
	}
	for _, d := range loadouts {
		if err := createLoadout(d); err != nil {
			return err
		}
	}

	log.Printf("seed: inserted %d employees, %d machines, %d customers, %d loadouts\n",
		len(employees), len(machines), len(customers), len(loadouts))
	return nil
}
