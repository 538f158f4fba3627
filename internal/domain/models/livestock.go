package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Livestock is a public catalog animal with registry pedigree details.
// The public pages read these; the admin UI writes them.
type Livestock struct {
	ID                 string          `json:"id"`
	AnimalType         AnimalType      `json:"animal_type"`
	TagNumber          string          `json:"tag_number"`
	BirthType          string          `json:"birth_type,omitempty"`    // Sg, Tw, Tr, Nat
	BreedingType       string          `json:"breeding_type,omitempty"` // Nat, AI, ET
	Genotype           string          `json:"genotype,omitempty"`      // RR, QR, QQ, N/A
	DateOfBirth        string          `json:"date_of_birth,omitempty"`
	Sex                string          `json:"sex,omitempty"`
	SireName           string          `json:"sire_name,omitempty"`
	SireTag            string          `json:"sire_tag,omitempty"`
	DamName            string          `json:"dam_name,omitempty"`
	DamTag             string          `json:"dam_tag,omitempty"`
	RegistrationNumber string          `json:"registration_number,omitempty"`
	FlockID            string          `json:"flock_id,omitempty"`
	CoatType           string          `json:"coat_type,omitempty"` // A, B, C, N/A
	BloodPercentage    FlexFloat       `json:"blood_percentage,omitempty"`
	Inspected          bool            `json:"inspected,omitempty"`
	Weight             FlexFloat       `json:"weight,omitempty"`
	Color              string          `json:"color,omitempty"`
	Bloodline          string          `json:"bloodline,omitempty"`
	Price              decimal.Decimal `json:"price"`
	Status             string          `json:"status"` // available, sold, breeding_stock, not_for_sale
	Photos             []string        `json:"photos"`
	Description        string          `json:"description,omitempty"`
	HealthNotes        string          `json:"health_records,omitempty"`
	NFTMinted          bool            `json:"nft_minted"`
	NFTTokenID         string          `json:"nft_token_id,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// RecordID returns the immutable collection identity.
func (l Livestock) RecordID() string { return l.ID }

// CreatedTime returns the record creation timestamp.
func (l Livestock) CreatedTime() time.Time { return l.CreatedAt }
