package seed

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// OrganizationData is one organization of organizations.yaml. Parent refers to another
// organization by name, declared earlier in the file or already stored.
type OrganizationData struct {
	Name       string   `yaml:"name"`
	Type       string   `yaml:"type"`
	Parent     string   `yaml:"parent,omitempty"`
	Vision     string   `yaml:"vision,omitempty"`
	Mission    string   `yaml:"mission,omitempty"`
	CoreValues []string `yaml:"core_values,omitempty"`
}

type MembershipData struct {
	Organization string `yaml:"organization"`
	Role         string `yaml:"role"`
}

type UserData struct {
	Username    string           `yaml:"username"`
	FirstName   string           `yaml:"first_name"`
	LastName    string           `yaml:"last_name"`
	Email       string           `yaml:"email"`
	Memberships []MembershipData `yaml:"memberships,omitempty"`
}

type ProgramData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	IsDefault   bool   `yaml:"is_default"`
}

type InitiativeFeedData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	IsActive    *bool  `yaml:"is_active,omitempty"`
}

type ObjectiveData struct {
	Title           string               `yaml:"title"`
	Description     string               `yaml:"description,omitempty"`
	Weight          float64              `yaml:"weight"`
	IsDefault       bool                 `yaml:"is_default"`
	Programs        []ProgramData        `yaml:"programs,omitempty"`
	InitiativeFeeds []InitiativeFeedData `yaml:"initiative_feeds,omitempty"`
}

type PerDiemData struct {
	Amount                  float64 `yaml:"amount"`
	HardshipAllowanceAmount float64 `yaml:"hardship_allowance_amount"`
}

type AccommodationData struct {
	ServiceType string  `yaml:"service_type"`
	Price       float64 `yaml:"price"`
}

type LocationData struct {
	Name           string              `yaml:"name"`
	Region         string              `yaml:"region"`
	IsHardshipArea bool                `yaml:"is_hardship_area"`
	PerDiem        *PerDiemData        `yaml:"per_diem,omitempty"`
	Accommodations []AccommodationData `yaml:"accommodations,omitempty"`
}

// TransportData is a priced route between two locations referenced by name
type TransportData struct {
	Origin      string  `yaml:"origin"`
	Destination string  `yaml:"destination"`
	TripType    string  `yaml:"trip_type,omitempty"`
	Price       float64 `yaml:"price"`
}

type CostData struct {
	CostType string  `yaml:"cost_type"`
	Price    float64 `yaml:"price"`
}

type PrintingCostData struct {
	DocumentType string  `yaml:"document_type"`
	PricePerPage float64 `yaml:"price_per_page"`
}

type SupervisorCostData struct {
	CostType string  `yaml:"cost_type"`
	Amount   float64 `yaml:"amount"`
}

type ProcurementItemData struct {
	Category  string  `yaml:"category"`
	Name      string  `yaml:"name"`
	Unit      string  `yaml:"unit,omitempty"`
	UnitPrice float64 `yaml:"unit_price"`
}

type AssumptionData struct {
	ActivityType string  `yaml:"activity_type"`
	Location     string  `yaml:"location"`
	CostType     string  `yaml:"cost_type"`
	Amount       float64 `yaml:"amount"`
	Description  string  `yaml:"description,omitempty"`
}

// File structures
type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type ObjectivesFile struct {
	StrategicObjectives []ObjectiveData `yaml:"strategic_objectives"`
}

type LocationsFile struct {
	Locations      []LocationData  `yaml:"locations"`
	LandTransports []TransportData `yaml:"land_transports,omitempty"`
	AirTransports  []TransportData `yaml:"air_transports,omitempty"`
}

type CostsFile struct {
	ParticipantCosts           []CostData            `yaml:"participant_costs,omitempty"`
	SessionCosts               []CostData            `yaml:"session_costs,omitempty"`
	PrintingCosts              []PrintingCostData    `yaml:"printing_costs,omitempty"`
	SupervisorCosts            []SupervisorCostData  `yaml:"supervisor_costs,omitempty"`
	ProcurementItems           []ProcurementItemData `yaml:"procurement_items,omitempty"`
	ActivityCostingAssumptions []AssumptionData      `yaml:"activity_costing_assumptions,omitempty"`
}

// Data is the merged content of every seed file found under a directory
type Data struct {
	Organizations OrganizationsFile
	Users         UsersFile
	Objectives    ObjectivesFile
	Locations     LocationsFile
	Costs         CostsFile
}

// ReadDir walks dir and merges every organizations, users, strategic_objectives,
// locations and costs YAML file it finds, in lexical path order.
func ReadDir(dir string) (*Data, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("seed directory %s: %w", dir, err)
	}

	data := &Data{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := data.merge(strings.TrimSuffix(d.Name(), ext), content); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (d *Data) merge(kind string, content []byte) error {
	switch kind {
	case "organizations":
		var file OrganizationsFile
		if err := yaml.Unmarshal(content, &file); err != nil {
			return err
		}
		d.Organizations.Organizations = append(d.Organizations.Organizations, file.Organizations...)
	case "users":
		var file UsersFile
		if err := yaml.Unmarshal(content, &file); err != nil {
			return err
		}
		d.Users.Users = append(d.Users.Users, file.Users...)
	case "strategic_objectives":
		var file ObjectivesFile
		if err := yaml.Unmarshal(content, &file); err != nil {
			return err
		}
		d.Objectives.StrategicObjectives = append(d.Objectives.StrategicObjectives, file.StrategicObjectives...)
	case "locations":
		var file LocationsFile
		if err := yaml.Unmarshal(content, &file); err != nil {
			return err
		}
		d.Locations.Locations = append(d.Locations.Locations, file.Locations...)
		d.Locations.LandTransports = append(d.Locations.LandTransports, file.LandTransports...)
		d.Locations.AirTransports = append(d.Locations.AirTransports, file.AirTransports...)
	case "costs":
		var file CostsFile
		if err := yaml.Unmarshal(content, &file); err != nil {
			return err
		}
		d.Costs.ParticipantCosts = append(d.Costs.ParticipantCosts, file.ParticipantCosts...)
		d.Costs.SessionCosts = append(d.Costs.SessionCosts, file.SessionCosts...)
		d.Costs.PrintingCosts = append(d.Costs.PrintingCosts, file.PrintingCosts...)
		d.Costs.SupervisorCosts = append(d.Costs.SupervisorCosts, file.SupervisorCosts...)
		d.Costs.ProcurementItems = append(d.Costs.ProcurementItems, file.ProcurementItems...)
		d.Costs.ActivityCostingAssumptions = append(d.Costs.ActivityCostingAssumptions, file.ActivityCostingAssumptions...)
	}
	// unknown files are ignored
	return nil
}
