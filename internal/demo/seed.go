// Package demo holds the canned example collections served the first time a
// demo session touches each resource. Demo writes persist only in the
// fallback store and never reach the backend.
package demo

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shilohridge/backoffice/internal/domain/models"
)

func money(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

var seedTime = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

// Inventory returns the demo livestock inventory.
func Inventory() []models.InventoryItem {
	return []models.InventoryItem{
		{
			ID:                 "demo-inv-1",
			AnimalID:           "KHSI-2025-001",
			AnimalType:         models.AnimalSheep,
			Breed:              "Katahdin",
			Bloodline:          "Pure Katahdin",
			Sex:                "R",
			BirthType:          "Sg",
			DateOfBirth:        "2023-03-15",
			RegistrationNumber: "KHSI-001-2025",
			SireName:           "Champion Ram",
			SireTag:            "KHSI-2022-045",
			DamName:            "Foundation Ewe",
			DamTag:             "KHSI-2022-012",
			CurrentWeight:      180,
			WeightUnit:         "lbs",
			Status:             models.StatusAvailable,
			SalePrice:          money("450"),
			EstimatedValue:     money("520"),
			Location:           "North pasture",
			Notes:              "Purebred Katahdin ram, excellent conformation and temperament.",
			HealthRecords: []models.HealthRecord{
				{
					ID:          "demo-hr-1",
					Date:        "2025-04-02",
					Type:        "vaccination",
					Description: "CDT booster",
					Cost:        money("18.50"),
					CreatedAt:   seedTime,
				},
			},
			Photos:    []string{"katahdin-ram.jpg"},
			CreatedAt: seedTime,
			UpdatedAt: seedTime,
		},
		{
			ID:             "demo-inv-2",
			AnimalID:       "KHSI-2025-002",
			AnimalType:     models.AnimalSheep,
			Breed:          "Katahdin",
			Bloodline:      "Pure Katahdin",
			Sex:            "E",
			BirthType:      "Tw",
			DateOfBirth:    "2023-04-22",
			CurrentWeight:  145,
			WeightUnit:     "lbs",
			Status:         models.StatusBreeding,
			SalePrice:      money("380"),
			EstimatedValue: money("420"),
			Location:       "Barn",
			Notes:          "Registered ewe with proven production record.",
			HealthRecords:  []models.HealthRecord{},
			Photos:         []string{"katahdin-ewe.jpg"},
			CreatedAt:      seedTime.Add(-24 * time.Hour),
			UpdatedAt:      seedTime.Add(-24 * time.Hour),
		},
		{
			ID:             "demo-inv-3",
			AnimalID:       "HOG-2025-014",
			AnimalType:     models.AnimalHog,
			Breed:          "Berkshire",
			Bloodline:      "Heritage Berkshire",
			Sex:            "M",
			BirthType:      "Nat",
			DateOfBirth:    "2024-11-08",
			CurrentWeight:  240,
			WeightUnit:     "lbs",
			Status:         models.StatusMarket,
			SalePrice:      money("275"),
			EstimatedValue: money("300"),
			Location:       "South lot",
			HealthRecords:  []models.HealthRecord{},
			Photos:         []string{},
			CreatedAt:      seedTime.Add(-48 * time.Hour),
			UpdatedAt:      seedTime.Add(-48 * time.Hour),
		},
	}
}

// Livestock returns the demo public catalog animals.
func Livestock() []models.Livestock {
	return []models.Livestock{
		{
			ID:                 "demo-ls-1",
			AnimalType:         models.AnimalSheep,
			TagNumber:          "KHSI-2025-001",
			BirthType:          "Sg",
			BreedingType:       "Nat",
			Genotype:           "RR",
			DateOfBirth:        "2023-03-15",
			Sex:                "R",
			SireName:           "Champion Ram",
			SireTag:            "KHSI-2022-045",
			DamName:            "Foundation Ewe",
			DamTag:             "KHSI-2022-012",
			RegistrationNumber: "KHSI-001-2025",
			FlockID:            "SHILOH-001",
			CoatType:           "A",
			BloodPercentage:    100,
			Inspected:          true,
			Weight:             180,
			Color:              "White",
			Bloodline:          "Pure Katahdin",
			Price:              money("450"),
			Status:             "available",
			Photos:             []string{"katahdin-ram.jpg"},
			Description:        "Purebred Katahdin ram, ready for breeding season.",
			CreatedAt:          seedTime,
			UpdatedAt:          seedTime,
		},
		{
			ID:          "demo-ls-2",
			AnimalType:  models.AnimalDog,
			TagNumber:   "PYRE-2025-001",
			DateOfBirth: "2022-06-10",
			Sex:         "M",
			Weight:      120,
			Color:       "White with gray patches",
			Bloodline:   "Pure Great Pyrenees",
			Price:       money("800"),
			Status:      "available",
			Photos:      []string{"great-pyrenees-male.jpg"},
			Description: "Livestock guardian, trained and proven.",
			CreatedAt:   seedTime.Add(-72 * time.Hour),
			UpdatedAt:   seedTime.Add(-72 * time.Hour),
		},
	}
}

// Customers returns the demo buyer list.
func Customers() []models.Customer {
	return []models.Customer{
		{
			ID:           "demo-cust-1",
			Name:         "John Smith",
			Address:      "123 Farm Rd",
			Email:        "john@example.com",
			Phone:        "555-0142",
			CustomerType: models.CustomerIndividual,
			CreatedAt:    seedTime,
			UpdatedAt:    seedTime,
		},
		{
			ID:           "demo-cust-2",
			Name:         "Prairie Breeders LLC",
			Address:      "40 Range Line Rd",
			Email:        "office@prairiebreeders.example",
			CustomerType: models.CustomerBreeder,
			CreatedAt:    seedTime.Add(-36 * time.Hour),
			UpdatedAt:    seedTime.Add(-36 * time.Hour),
		},
	}
}

// Sales returns the demo sales ledger.
func Sales() []models.SaleRecord {
	sale := models.SaleRecord{
		ID:         "demo-sale-1",
		InvoiceID:  "INV-20250601-DEMO0001",
		SaleDate:   "2025-06-01",
		CustomerID: "demo-cust-1",
		CustomerInfo: models.CustomerSnapshot{
			Name:    "John Smith",
			Address: "123 Farm Rd",
			Email:   "john@example.com",
			Phone:   "555-0142",
		},
		Items: []models.SaleItem{
			{
				InventoryID: "demo-inv-3",
				AnimalID:    "HOG-2025-014",
				AnimalType:  models.AnimalHog,
				Quantity:    1,
				UnitPrice:   money("275.00"),
				Description: "Market hog",
			},
		},
		SaleType:       "market",
		TaxAmount:      decimal.Zero,
		DiscountAmount: decimal.Zero,
		PaymentMethod:  "cash",
		PaymentStatus:  models.PaymentPaid,
		DeliveryStatus: models.DeliveryPickup,
		CreatedAt:      seedTime,
		UpdatedAt:      seedTime,
	}
	sale.ComputeTotals()
	return []models.SaleRecord{sale}
}

// Expenses returns the demo expense ledger.
func Expenses() []models.Expense {
	return []models.Expense{
		{
			ID:             "demo-exp-1",
			Category:       "feed_supplements",
			Description:    "Winter hay, 40 bales",
			Amount:         money("320.00"),
			Date:           "2025-05-12",
			VendorSupplier: "Hilltop Feed & Seed",
			PaymentMethod:  "check",
			PaymentStatus:  "paid",
			TaxDeductible:  true,
			Receipts:       []string{},
			CreatedAt:      seedTime,
			UpdatedAt:      seedTime,
		},
		{
			ID:                 "demo-exp-2",
			Category:           "veterinary_health",
			Description:        "Spring flock checkup",
			Amount:             money("185.00"),
			Date:               "2025-04-28",
			VendorSupplier:     "Valley Vet Clinic",
			PaymentMethod:      "credit_card",
			PaymentStatus:      "paid",
			IsRecurring:        true,
			RecurringFrequency: "quarterly",
			TaxDeductible:      true,
			Receipts:           []string{},
			CreatedAt:          seedTime.Add(-12 * time.Hour),
			UpdatedAt:          seedTime.Add(-12 * time.Hour),
		},
	}
}

// Revenue returns the demo revenue ledger.
func Revenue() []models.Revenue {
	return []models.Revenue{
		{
			ID:            "demo-rev-1",
			Type:          "livestock_sales",
			Description:   "Market hog sale",
			Amount:        money("275.00"),
			Date:          "2025-06-01",
			Source:        "John Smith",
			PaymentMethod: "cash",
			PaymentStatus: "received",
			CreatedAt:     seedTime,
			UpdatedAt:     seedTime,
		},
		{
			ID:            "demo-rev-2",
			Type:          "breeding_fees",
			Description:   "Ram service fee",
			Amount:        money("150.00"),
			Date:          "2025-05-20",
			Source:        "Prairie Breeders LLC",
			PaymentMethod: "check",
			PaymentStatus: "received",
			CreatedAt:     seedTime.Add(-6 * time.Hour),
			UpdatedAt:     seedTime.Add(-6 * time.Hour),
		},
	}
}

// Products returns the demo storefront catalog.
func Products() []models.Product {
	return []models.Product{
		{
			ID:                "demo-prod-1",
			Name:              "Farm Fresh Eggs",
			Category:          "eggs",
			Type:              "eggs",
			Description:       "Farm fresh eggs from pasture-raised heritage hens.",
			PricePerUnit:      money("8.00"),
			Unit:              "dozen",
			MinOrderQuantity:  1,
			IsAvailable:       true,
			EstimatedLeadTime: "1 week",
			Photos:            []string{},
			CreatedAt:         seedTime,
			UpdatedAt:         seedTime,
		},
		{
			ID:          "demo-prod-2",
			Name:        "Half Hog - Custom Cuts",
			Category:    "hog",
			Type:        "half_hog",
			Description: "Half of a pasture-raised hog with your choice of cuts.",
			Cuts: map[string]models.CutPricing{
				"loin":        {"normalized": money("3.50"), "premium": money("4.50")},
				"belly":       {"normalized": money("2.75"), "premium": money("3.75")},
				"shoulder":    {"normalized": money("3.00"), "premium": money("4.00")},
				"ham":         {"normalized": money("3.25"), "premium": money("4.25")},
				"ribs":        {"normalized": money("4.00"), "premium": money("5.00")},
				"ground_pork": {"normalized": money("2.50"), "premium": money("3.50")},
			},
			MinOrderQuantity:  1,
			IsAvailable:       true,
			EstimatedLeadTime: "2 weeks",
			Photos:            []string{},
			CreatedAt:         seedTime.Add(-24 * time.Hour),
			UpdatedAt:         seedTime.Add(-24 * time.Hour),
		},
	}
}

// Orders returns the demo pre-order list.
func Orders() []models.Order {
	order := models.Order{
		ID:              "demo-order-1",
		CustomerName:    "Mary Jensen",
		CustomerEmail:   "mary@example.com",
		CustomerPhone:   "555-0177",
		CustomerAddress: "88 Orchard Ln",
		OrderItems: []models.OrderItem{
			{ProductID: "demo-prod-1", Quantity: 3, PricePerUnit: money("8.00")},
		},
		Status:         models.OrderPending,
		DeliveryMethod: "pickup",
		CreatedAt:      seedTime,
		UpdatedAt:      seedTime,
	}
	order.ComputeTotal()
	return []models.Order{order}
}

// Contacts returns the demo contact submissions.
func Contacts() []models.ContactSubmission {
	return []models.ContactSubmission{
		{
			ID:          "demo-contact-1",
			Name:        "Dale Whitfield",
			Email:       "dale@example.com",
			Message:     "Interested in the Katahdin ram, is he still available?",
			InquiryType: models.InquiryAnimal,
			AnimalID:    "demo-ls-1",
			Status:      models.ContactNew,
			CreatedAt:   seedTime,
		},
	}
}

// NFTRecords returns the demo NFT certificate records.
func NFTRecords() []models.NFTRecord {
	return []models.NFTRecord{
		{
			ID:          "demo-nft-1",
			LivestockID: "demo-ls-1",
			Status:      models.NFTPending,
			CreatedAt:   seedTime,
			UpdatedAt:   seedTime,
		},
	}
}

// About returns the demo about-page document.
func About() models.AboutContent {
	return models.AboutContent{
		ID:        "about_page",
		Title:     "About Shiloh Ridge Farm",
		Content:   "Shiloh Ridge Farm is a family-owned ranch specializing in quality Katahdin sheep, live hogs, and select cattle.",
		Mission:   "To provide high-quality, ethically-raised livestock with complete registration and bloodline documentation.",
		History:   "Established in 2010, Shiloh Ridge Farm has been committed to integrity and honesty in livestock breeding and sales.",
		UpdatedAt: seedTime,
	}
}

// Blog returns the demo blog document.
func Blog() models.BlogContent {
	return models.BlogContent{
		ID:    "blog_page",
		Title: "Farm Blog",
		Posts: []models.BlogPost{
			{
				ID:            "katahdin-love",
				Title:         "Why we love Katahdin sheep at Shiloh Ridge Farm",
				Content:       "Katahdins shed their coats naturally, excel at mothering, and carry documented parasite resistance.",
				Author:        "Shiloh Ridge Farm",
				PublishedDate: "2025-10-27",
				Tags:          []string{"Katahdin", "sheep", "breeding"},
				Featured:      true,
			},
		},
		UpdatedAt: seedTime,
	}
}

// SiteSettings returns the demo settings document.
func SiteSettings() models.Settings {
	return models.Settings{
		ID:        "site_settings",
		UpdatedAt: seedTime,
	}
}

// MarketTicker returns the demo market price feed.
func MarketTicker() models.Ticker {
	return models.Ticker{
		"sheep":  {Price: money("2.85"), Change: money("0.05"), Updated: seedTime},
		"hog":    {Price: money("95.50"), Change: money("-1.25"), Updated: seedTime},
		"cattle": {Price: money("185.75"), Change: money("2.30"), Updated: seedTime},
	}
}
