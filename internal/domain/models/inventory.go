package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AnimalType enumerates the kinds of animals the farm keeps.
type AnimalType string

const (
	AnimalSheep   AnimalType = "sheep"
	AnimalHog     AnimalType = "hog"
	AnimalCattle  AnimalType = "cattle"
	AnimalChicken AnimalType = "chicken"
	AnimalDog     AnimalType = "dog"
)

// InventoryStatus enumerates commercial states of an inventory record.
// Transitions are unconstrained; any status may follow any other.
type InventoryStatus string

const (
	StatusAvailable InventoryStatus = "available"
	StatusWeaned    InventoryStatus = "weaned"
	StatusBreeding  InventoryStatus = "breeding"
	StatusMarket    InventoryStatus = "market"
	StatusSold      InventoryStatus = "sold"
	StatusArchived  InventoryStatus = "archived"
)

// InventoryStatuses lists every valid inventory status, in form-control order.
var InventoryStatuses = []InventoryStatus{
	StatusAvailable, StatusWeaned, StatusBreeding, StatusMarket, StatusSold, StatusArchived,
}

// ValidInventoryStatus reports whether s is a member of the closed enumeration.
func ValidInventoryStatus(s string) bool {
	for _, v := range InventoryStatuses {
		if string(v) == s {
			return true
		}
	}
	return false
}

// HealthRecord is a nested health event on an inventory record.
type HealthRecord struct {
	ID           string          `json:"id,omitempty"`
	Date         string          `json:"date"`
	Type         string          `json:"type"` // vaccination, treatment, checkup, injury
	Description  string          `json:"description"`
	Veterinarian string          `json:"veterinarian,omitempty"`
	Cost         decimal.Decimal `json:"cost"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at,omitempty"`
}

// InventoryItem is one animal in the farm's working inventory.
type InventoryItem struct {
	ID                 string          `json:"id"`
	AnimalID           string          `json:"animal_id"` // farm-assigned tag
	AnimalType         AnimalType      `json:"animal_type"`
	Breed              string          `json:"breed"`
	Bloodline          string          `json:"bloodline"`
	Sex                string          `json:"sex"`        // M, F, E (ewe), R (ram)
	BirthType          string          `json:"birth_type"` // Sg, Tw, Tr, Nat
	DateOfBirth        string          `json:"date_of_birth"`
	RegistrationNumber string          `json:"registration_number,omitempty"`
	SireName           string          `json:"sire_name,omitempty"`
	SireTag            string          `json:"sire_tag,omitempty"`
	DamName            string          `json:"dam_name,omitempty"`
	DamTag             string          `json:"dam_tag,omitempty"`
	CurrentWeight      FlexFloat       `json:"current_weight,omitempty"`
	WeightUnit         string          `json:"weight_unit,omitempty"` // lbs, kg
	Status             InventoryStatus `json:"status"`
	HealthRecords      []HealthRecord  `json:"health_records"`
	SalePrice          decimal.Decimal `json:"sale_price"`
	EstimatedValue     decimal.Decimal `json:"estimated_value"`
	BlockchainID       string          `json:"blockchain_id,omitempty"`
	Location           string          `json:"location,omitempty"`
	Notes              string          `json:"notes,omitempty"`
	Photos             []string        `json:"photos"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// RecordID returns the immutable collection identity.
func (i InventoryItem) RecordID() string { return i.ID }

// CreatedTime returns the record creation timestamp.
func (i InventoryItem) CreatedTime() time.Time { return i.CreatedAt }
