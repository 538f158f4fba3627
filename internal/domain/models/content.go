package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InquiryType enumerates contact form inquiry kinds.
type InquiryType string

const (
	InquiryGeneral InquiryType = "general"
	InquiryAnimal  InquiryType = "animal_inquiry"
	InquiryOffer   InquiryType = "offer"
)

// ContactStatus enumerates submission triage states.
type ContactStatus string

const (
	ContactNew       ContactStatus = "new"
	ContactRead      ContactStatus = "read"
	ContactResponded ContactStatus = "responded"
)

// ContactSubmission is an inbound message from the public contact form.
type ContactSubmission struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone,omitempty"`
	Message     string          `json:"message"`
	InquiryType InquiryType     `json:"inquiry_type"`
	AnimalID    string          `json:"animal_id,omitempty"`
	OfferAmount decimal.Decimal `json:"offer_amount,omitempty"`
	Status      ContactStatus   `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// RecordID returns the immutable collection identity.
func (c ContactSubmission) RecordID() string { return c.ID }

// CreatedTime returns the record creation timestamp.
func (c ContactSubmission) CreatedTime() time.Time { return c.CreatedAt }

// BlogPost is one entry in the blog content document.
type BlogPost struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	Author        string   `json:"author,omitempty"`
	PublishedDate string   `json:"published_date,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Featured      bool     `json:"featured,omitempty"`
}

// AboutContent is the singleton about-page document, edited wholesale.
type AboutContent struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mission   string    `json:"mission,omitempty"`
	History   string    `json:"history,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BlogContent is the singleton blog document holding all posts.
type BlogContent struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Posts     []BlogPost `json:"posts"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Settings is the singleton site settings document.
type Settings struct {
	ID                   string    `json:"id"`
	USDAAPIKey           string    `json:"usda_api_key,omitempty"`
	EmailAPIKey          string    `json:"email_api_key,omitempty"`
	TickerAPIKey         string    `json:"ticker_api_key,omitempty"`
	LivestockAPIKey      string    `json:"livestock_api_key,omitempty"`
	PolygonWalletAddress string    `json:"polygon_wallet_address,omitempty"`
	PolygonAPIKey        string    `json:"polygon_api_key,omitempty"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// NFTStatus enumerates minting lifecycle states.
type NFTStatus string

const (
	NFTPending NFTStatus = "pending"
	NFTMinting NFTStatus = "minting"
	NFTMinted  NFTStatus = "minted"
	NFTFailed  NFTStatus = "failed"
)

// NFTRecord is a stubbed blockchain certificate record, pending external
// wallet configuration. Minting never leaves the pending state here.
type NFTRecord struct {
	ID              string    `json:"id"`
	LivestockID     string    `json:"livestock_id"`
	TokenID         string    `json:"token_id,omitempty"`
	ContractAddress string    `json:"contract_address,omitempty"`
	TransactionHash string    `json:"transaction_hash,omitempty"`
	MetadataURI     string    `json:"metadata_uri,omitempty"`
	Status          NFTStatus `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// RecordID returns the immutable collection identity.
func (n NFTRecord) RecordID() string { return n.ID }

// CreatedTime returns the record creation timestamp.
func (n NFTRecord) CreatedTime() time.Time { return n.CreatedAt }

// TickerQuote is one market price entry from the livestock price feed.
type TickerQuote struct {
	Price   decimal.Decimal `json:"price"`
	Change  decimal.Decimal `json:"change"`
	Updated time.Time       `json:"updated"`
}

// Ticker maps market name (sheep, hog, cattle) to its latest quote.
type Ticker map[string]TickerQuote
