package models

import (
	"github.com/google/uuid"
)

// Location is a place activities can be costed against
type Location struct {
	BaseModel
	Name           string `json:"name" gorm:"not null;size:255;uniqueIndex" validate:"required,min=1,max=255"`
	Region         string `json:"region" gorm:"not null;size:50;index" validate:"required,max=50"`
	IsHardshipArea bool   `json:"is_hardship_area" gorm:"default:false"`
}

// TableName returns the table name for Location
func (Location) TableName() string {
	return "locations"
}

// LandTransport is the price of a land trip between two locations
type LandTransport struct {
	BaseModel
	OriginID      uuid.UUID `json:"origin_id" gorm:"type:uuid;not null;index" validate:"required"`
	DestinationID uuid.UUID `json:"destination_id" gorm:"type:uuid;not null;index" validate:"required"`
	TripType      TripType  `json:"trip_type" gorm:"type:varchar(10);not null;default:'SINGLE'" validate:"required,oneof=SINGLE ROUND"`
	Price         float64   `json:"price" gorm:"type:numeric(12,2);not null;default:0" validate:"gte=0"`

	// Relationships
	Origin      *Location `json:"origin,omitempty" gorm:"foreignKey:OriginID;constraint:OnDelete:CASCADE"`
	Destination *Location `json:"destination,omitempty" gorm:"foreignKey:DestinationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for LandTransport
func (LandTransport) TableName() string {
	return "land_transports"
}

// AirTransport is the price of a flight between two locations
type AirTransport struct {
	BaseModel
	OriginID      uuid.UUID `json:"origin_id" gorm:"type:uuid;not null;index" validate:"required"`
	DestinationID uuid.UUID `json:"destination_id" gorm:"type:uuid;not null;index" validate:"required"`
	Price         float64   `json:"price" gorm:"type:numeric(12,2);not null;default:0" validate:"gte=0"`

	// Relationships
	Origin      *Location `json:"origin,omitempty" gorm:"foreignKey:OriginID;constraint:OnDelete:CASCADE"`
	Destination *Location `json:"destination,omitempty" gorm:"foreignKey:DestinationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AirTransport
func (AirTransport) TableName() string {
	return "air_transports"
}

// PerDiem is the daily allowance paid at a location
type PerDiem struct {
	BaseModel
	LocationID              uuid.UUID `json:"location_id" gorm:"type:uuid;not null;index" validate:"required"`
	Amount                  float64   `json:"amount" gorm:"type:numeric(12,2);not null;default:0" validate:"gte=0"`
	HardshipAllowanceAmount float64   `json:"hardship_allowance_amount" gorm:"type:numeric(12,2);not null;default:0" validate:"gte=0"`

	// Relationships
	Location *Location `json:"location,omitempty" gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PerDiem
func (PerDiem) TableName() string {
	return "per_diems"
}

// Accommodation is the price of a lodging or catering service at a location
type Accommodation struct {
	BaseModel
	LocationID  uuid.UUID                `json:"location_id" gorm:"type:uuid;not null;index" validate:"required"`
	ServiceType AccommodationServiceType `json:"service_type" gorm:"type:varchar(20);not null" validate:"required,oneof=LUNCH HALL_REFRESHMENT DINNER BED FULL_BOARD"`
	Price       float64                  `json:"price" gorm:"type:numeric(12,2);not null;default:0" validate:"gte=0"`

	// Relationships
	Location *Location `json:"location,omitempty" gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Accommodation
func (Accommodation) TableName() string {
	return "accommodations"
}

// ParticipantCost is a per participant material cost
type ParticipantCost struct {
	BaseModel
	CostType string  `json:"cost_type" gorm:"type:varchar(20);not null" validate:"required,oneof=FLASH_DISK STATIONARY ALL"`
	Price    float64 `json:"price" gorm:"type:numeric(12,2);not null;default:0" validate:"gte=0"`
}

// TableName returns the table name for ParticipantCost
func (ParticipantCost) TableName() string {
	return "participant_costs"
}

// SessionCost is a per session material cost
type SessionCost struct {
	BaseModel
	CostType string  `json:"cost_type" gorm:"type:varchar(20);not null" validate:"required,oneof=FLIP_CHART MARKER TONER_PAPER ALL"`
	Price    float64 `json:"price" gorm:"type:numeric(12,2);not null;default:0" validate:"gte=0"`
}

// TableName returns the table name for SessionCost
func (SessionCost) TableName() string {
	return "session_costs"
}

// PrintingCost is the per page price of a printed document type
type PrintingCost struct {
	BaseModel
	DocumentType string  `json:"document_type" gorm:"type:varchar(20);not null" validate:"required,oneof=MANUAL BOOKLET LEAFLET BROCHURE"`
	PricePerPage float64 `json:"price_per_page" gorm:"type:numeric(12,2);not null;default:0" validate:"gte=0"`
}

// TableName returns the table name for PrintingCost
func (PrintingCost) TableName() string {
	return "printing_costs"
}

// SupervisorCost is a supervision allowance
type SupervisorCost struct {
	BaseModel
	CostType string  `json:"cost_type" gorm:"type:varchar(20);not null" validate:"required,oneof=MOBILE_CARD_300 STATIONARY ALL"`
	Amount   float64 `json:"amount" gorm:"type:numeric(12,2);not null;default:0" validate:"gte=0"`
}

// TableName returns the table name for SupervisorCost
func (SupervisorCost) TableName() string {
	return "supervisor_costs"
}

// ProcurementItem is a priced item of the procurement catalogue
type ProcurementItem struct {
	BaseModel
	Category  string  `json:"category" gorm:"not null;size:100;index" validate:"required,max=100"`
	Name      string  `json:"name" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	Unit      string  `json:"unit" gorm:"size:50" validate:"max=50"`
	UnitPrice float64 `json:"unit_price" gorm:"type:numeric(12,2);not null;default:0" validate:"gte=0"`
}

// TableName returns the table name for ProcurementItem
func (ProcurementItem) TableName() string {
	return "procurement_items"
}

// ActivityCostingAssumption is a default unit cost used when estimating an activity type
type ActivityCostingAssumption struct {
	BaseModel
	ActivityType ActivityType `json:"activity_type" gorm:"type:varchar(20);not null;index" validate:"required,oneof=Training Meeting Workshop Printing Supervision Procurement Other"`
	Location     string       `json:"location" gorm:"type:varchar(20);not null;default:'Addis_Ababa'" validate:"required,oneof=Addis_Ababa Other"`
	CostType     string       `json:"cost_type" gorm:"size:100;not null" validate:"required,max=100"`
	Amount       float64      `json:"amount" gorm:"type:numeric(12,2);not null;default:0" validate:"gte=0"`
	Description  string       `json:"description" gorm:"type:text"`
}

// TableName returns the table name for ActivityCostingAssumption
func (ActivityCostingAssumption) TableName() string {
	return "activity_costing_assumptions"
}
