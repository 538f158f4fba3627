package manager

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shilohridge/backoffice/internal/demo"
	"github.com/shilohridge/backoffice/internal/domain/models"
	"github.com/shilohridge/backoffice/internal/repository/fallback"
	"github.com/shilohridge/backoffice/internal/session"
	"github.com/shilohridge/backoffice/pkg/clients/farmapi"
)

// Registry bundles one manager per admin resource, all sharing the same
// session, client, and fallback store.
type Registry struct {
	Inventory *Collection[models.InventoryItem]
	Livestock *Collection[models.Livestock]
	Sales     *Collection[models.SaleRecord]
	Customers *Collection[models.Customer]
	Expenses  *Collection[models.Expense]
	Revenue   *Collection[models.Revenue]
	Products  *Collection[models.Product]
	Orders    *Collection[models.Order]
	Contacts  *Collection[models.ContactSubmission]
	NFT       *Collection[models.NFTRecord]
	About     *Document[models.AboutContent]
	Blog      *Document[models.BlogContent]
	Settings  *Document[models.Settings]
}

// NewRegistry wires every resource manager for an established session.
func NewRegistry(client *farmapi.Client, store fallback.Store, sess *session.Session, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		Inventory: NewCollection(inventoryDescriptor(), client, store, sess, logger.Named("manager.inventory")),
		Livestock: NewCollection(livestockDescriptor(), client, store, sess, logger.Named("manager.livestock")),
		Sales:     NewCollection(salesDescriptor(), client, store, sess, logger.Named("manager.sales")),
		Customers: NewCollection(customersDescriptor(), client, store, sess, logger.Named("manager.customers")),
		Expenses:  NewCollection(expensesDescriptor(), client, store, sess, logger.Named("manager.expenses")),
		Revenue:   NewCollection(revenueDescriptor(), client, store, sess, logger.Named("manager.revenue")),
		Products:  NewCollection(productsDescriptor(), client, store, sess, logger.Named("manager.products")),
		Orders:    NewCollection(ordersDescriptor(), client, store, sess, logger.Named("manager.orders")),
		Contacts:  NewCollection(contactsDescriptor(), client, store, sess, logger.Named("manager.contacts")),
		NFT:       NewCollection(nftDescriptor(), client, store, sess, logger.Named("manager.nft")),
		About:     NewDocument(aboutDescriptor(), client, store, sess, logger.Named("manager.about")),
		Blog:      NewDocument(blogDescriptor(), client, store, sess, logger.Named("manager.blog")),
		Settings:  NewDocument(settingsDescriptor(), client, store, sess, logger.Named("manager.settings")),
	}
}

func newID() string { return uuid.NewString() }

func inventoryDescriptor() Descriptor[models.InventoryItem] {
	return Descriptor[models.InventoryItem]{
		Key:  fallback.KeyInventory,
		Path: "/inventory",
		Stamp: func(item *models.InventoryItem, now time.Time) {
			if item.ID == "" {
				item.ID = newID()
			}
			if item.CreatedAt.IsZero() {
				item.CreatedAt = now
			}
			item.UpdatedAt = now
			if item.Status == "" {
				item.Status = models.StatusAvailable
			}
			if item.WeightUnit == "" {
				item.WeightUnit = "lbs"
			}
			if item.HealthRecords == nil {
				item.HealthRecords = []models.HealthRecord{}
			}
			if item.Photos == nil {
				item.Photos = []string{}
			}
		},
		Validate: func(item models.InventoryItem) error {
			if item.AnimalID == "" {
				return Invalidf("animal_id is required")
			}
			if item.AnimalType == "" {
				return Invalidf("animal_type is required")
			}
			if item.Breed == "" {
				return Invalidf("breed is required")
			}
			if item.Status != "" && !models.ValidInventoryStatus(string(item.Status)) {
				return Invalidf("invalid status %q", item.Status)
			}
			if item.SalePrice.IsNegative() || item.EstimatedValue.IsNegative() {
				return Invalidf("prices must not be negative")
			}
			return nil
		},
		SearchText: func(item models.InventoryItem) []string {
			return []string{item.AnimalID, item.Breed, item.Bloodline, item.Notes, item.Location}
		},
		Category:     func(item models.InventoryItem) string { return string(item.AnimalType) },
		Status:       func(item models.InventoryItem) string { return string(item.Status) },
		SortByNewest: true,
		Seed:         demo.Inventory,
	}
}

func livestockDescriptor() Descriptor[models.Livestock] {
	return Descriptor[models.Livestock]{
		Key:  fallback.KeyLivestock,
		Path: "/livestock",
		Stamp: func(item *models.Livestock, now time.Time) {
			if item.ID == "" {
				item.ID = newID()
			}
			if item.CreatedAt.IsZero() {
				item.CreatedAt = now
			}
			item.UpdatedAt = now
			if item.Status == "" {
				item.Status = "available"
			}
			if item.Photos == nil {
				item.Photos = []string{}
			}
		},
		Validate: func(item models.Livestock) error {
			if item.AnimalType == "" {
				return Invalidf("animal_type is required")
			}
			if item.TagNumber == "" {
				return Invalidf("tag_number is required")
			}
			if item.Price.IsNegative() {
				return Invalidf("price must not be negative")
			}
			return nil
		},
		SearchText: func(item models.Livestock) []string {
			return []string{item.TagNumber, item.Bloodline, item.Description, item.Color}
		},
		Category: func(item models.Livestock) string { return string(item.AnimalType) },
		Status:   func(item models.Livestock) string { return item.Status },
		Seed:     demo.Livestock,
	}
}

func salesDescriptor() Descriptor[models.SaleRecord] {
	return Descriptor[models.SaleRecord]{
		Key:  fallback.KeySales,
		Path: "/sales",
		Stamp: func(sale *models.SaleRecord, now time.Time) {
			if sale.ID == "" {
				sale.ID = newID()
			}
			if sale.InvoiceID == "" {
				sale.InvoiceID = models.NewInvoiceID(now)
			}
			if sale.SaleDate == "" {
				sale.SaleDate = now.Format("2006-01-02")
			}
			if sale.CreatedAt.IsZero() {
				sale.CreatedAt = now
			}
			sale.UpdatedAt = now
		},
		Validate: func(sale models.SaleRecord) error {
			if sale.CustomerID == "" {
				return Invalidf("customer_id is required")
			}
			if len(sale.Items) == 0 {
				return Invalidf("at least one line item is required")
			}
			if sale.TaxAmount.IsNegative() || sale.DiscountAmount.IsNegative() {
				return Invalidf("tax and discount must not be negative")
			}
			return nil
		},
		SearchText: func(sale models.SaleRecord) []string {
			return []string{sale.InvoiceID, sale.CustomerInfo.Name, sale.Notes}
		},
		Status:       func(sale models.SaleRecord) string { return string(sale.PaymentStatus) },
		SortByNewest: true, // sales listings sort newest first
		Seed:         demo.Sales,
	}
}

func customersDescriptor() Descriptor[models.Customer] {
	return Descriptor[models.Customer]{
		Key:  fallback.KeyCustomers,
		Path: "/sales/customers",
		Stamp: func(c *models.Customer, now time.Time) {
			if c.ID == "" {
				c.ID = newID()
			}
			if c.CreatedAt.IsZero() {
				c.CreatedAt = now
			}
			c.UpdatedAt = now
			if c.CustomerType == "" {
				c.CustomerType = models.CustomerIndividual
			}
		},
		Validate: func(c models.Customer) error {
			if c.Name == "" {
				return Invalidf("name is required")
			}
			if c.Address == "" {
				return Invalidf("address is required")
			}
			return nil
		},
		SearchText: func(c models.Customer) []string {
			return []string{c.Name, c.Address, c.Email, c.Phone}
		},
		Category:     func(c models.Customer) string { return string(c.CustomerType) },
		SortByNewest: true,
		Seed:         demo.Customers,
	}
}

func expensesDescriptor() Descriptor[models.Expense] {
	return Descriptor[models.Expense]{
		Key:  fallback.KeyExpenses,
		Path: "/accounting/expenses",
		Stamp: func(e *models.Expense, now time.Time) {
			if e.ID == "" {
				e.ID = newID()
			}
			if e.CreatedAt.IsZero() {
				e.CreatedAt = now
			}
			e.UpdatedAt = now
			if e.PaymentMethod == "" {
				e.PaymentMethod = "cash"
			}
			if e.PaymentStatus == "" {
				e.PaymentStatus = "paid"
			}
			if e.Receipts == nil {
				e.Receipts = []string{}
			}
		},
		Validate: func(e models.Expense) error {
			if e.Category == "" {
				return Invalidf("category is required")
			}
			if e.Description == "" {
				return Invalidf("description is required")
			}
			if err := validISODate(e.Date); err != nil {
				return err
			}
			if e.Amount.IsNegative() {
				return Invalidf("amount must not be negative")
			}
			return nil
		},
		SearchText: func(e models.Expense) []string {
			return []string{e.Description, e.VendorSupplier, e.Notes}
		},
		Category:     func(e models.Expense) string { return e.Category },
		Status:       func(e models.Expense) string { return e.PaymentStatus },
		SortByNewest: true,
		Seed:         demo.Expenses,
	}
}

func revenueDescriptor() Descriptor[models.Revenue] {
	return Descriptor[models.Revenue]{
		Key:  fallback.KeyRevenue,
		Path: "/accounting/revenue",
		Stamp: func(r *models.Revenue, now time.Time) {
			if r.ID == "" {
				r.ID = newID()
			}
			if r.CreatedAt.IsZero() {
				r.CreatedAt = now
			}
			r.UpdatedAt = now
			if r.PaymentMethod == "" {
				r.PaymentMethod = "cash"
			}
			if r.PaymentStatus == "" {
				r.PaymentStatus = "received"
			}
		},
		Validate: func(r models.Revenue) error {
			if r.Type == "" {
				return Invalidf("type is required")
			}
			if r.Description == "" {
				return Invalidf("description is required")
			}
			if err := validISODate(r.Date); err != nil {
				return err
			}
			if r.Amount.IsNegative() {
				return Invalidf("amount must not be negative")
			}
			return nil
		},
		SearchText: func(r models.Revenue) []string {
			return []string{r.Description, r.Source, r.Notes}
		},
		Category:     func(r models.Revenue) string { return r.Type },
		Status:       func(r models.Revenue) string { return r.PaymentStatus },
		SortByNewest: true,
		Seed:         demo.Revenue,
	}
}

func productsDescriptor() Descriptor[models.Product] {
	return Descriptor[models.Product]{
		Key:  fallback.KeyProducts,
		Path: "/products",
		Stamp: func(p *models.Product, now time.Time) {
			if p.ID == "" {
				p.ID = newID()
			}
			if p.CreatedAt.IsZero() {
				p.CreatedAt = now
			}
			p.UpdatedAt = now
			if p.MinOrderQuantity == 0 {
				p.MinOrderQuantity = 1
			}
			if p.Photos == nil {
				p.Photos = []string{}
			}
		},
		Validate: func(p models.Product) error {
			if p.Name == "" {
				return Invalidf("name is required")
			}
			if p.Category == "" {
				return Invalidf("category is required")
			}
			if p.Description == "" {
				return Invalidf("description is required")
			}
			if p.PricePerUnit.IsNegative() {
				return Invalidf("price_per_unit must not be negative")
			}
			return nil
		},
		SearchText: func(p models.Product) []string {
			return []string{p.Name, p.Description}
		},
		Category: func(p models.Product) string { return p.Category },
		Seed:     demo.Products,
	}
}

func ordersDescriptor() Descriptor[models.Order] {
	return Descriptor[models.Order]{
		Key:  fallback.KeyOrders,
		Path: "/orders",
		Stamp: func(o *models.Order, now time.Time) {
			if o.ID == "" {
				o.ID = newID()
			}
			if o.CreatedAt.IsZero() {
				o.CreatedAt = now
			}
			o.UpdatedAt = now
			if o.Status == "" {
				o.Status = models.OrderPending
			}
		},
		Validate: func(o models.Order) error {
			if o.CustomerName == "" {
				return Invalidf("customer_name is required")
			}
			if o.CustomerEmail == "" {
				return Invalidf("customer_email is required")
			}
			if len(o.OrderItems) == 0 {
				return Invalidf("at least one order item is required")
			}
			return nil
		},
		SearchText: func(o models.Order) []string {
			return []string{o.CustomerName, o.CustomerEmail, o.Notes}
		},
		Status:       func(o models.Order) string { return string(o.Status) },
		SortByNewest: true,
		Seed:         demo.Orders,
	}
}

func contactsDescriptor() Descriptor[models.ContactSubmission] {
	return Descriptor[models.ContactSubmission]{
		Key:  fallback.KeyContacts,
		Path: "/contact",
		Stamp: func(c *models.ContactSubmission, now time.Time) {
			if c.ID == "" {
				c.ID = newID()
			}
			if c.CreatedAt.IsZero() {
				c.CreatedAt = now
			}
			if c.Status == "" {
				c.Status = models.ContactNew
			}
			if c.InquiryType == "" {
				c.InquiryType = models.InquiryGeneral
			}
		},
		Validate: func(c models.ContactSubmission) error {
			if c.Name == "" {
				return Invalidf("name is required")
			}
			if c.Email == "" {
				return Invalidf("email is required")
			}
			if c.Message == "" {
				return Invalidf("message is required")
			}
			return nil
		},
		SearchText: func(c models.ContactSubmission) []string {
			return []string{c.Name, c.Email, c.Message}
		},
		Category:     func(c models.ContactSubmission) string { return string(c.InquiryType) },
		Status:       func(c models.ContactSubmission) string { return string(c.Status) },
		SortByNewest: true,
		Seed:         demo.Contacts,
	}
}

func nftDescriptor() Descriptor[models.NFTRecord] {
	return Descriptor[models.NFTRecord]{
		Key:  fallback.KeyNFT,
		Path: "/nft",
		Stamp: func(n *models.NFTRecord, now time.Time) {
			if n.ID == "" {
				n.ID = newID()
			}
			if n.CreatedAt.IsZero() {
				n.CreatedAt = now
			}
			n.UpdatedAt = now
			if n.Status == "" {
				n.Status = models.NFTPending
			}
		},
		Validate: func(n models.NFTRecord) error {
			if n.LivestockID == "" {
				return Invalidf("livestock_id is required")
			}
			return nil
		},
		Status:       func(n models.NFTRecord) string { return string(n.Status) },
		SortByNewest: true,
		Seed:         demo.NFTRecords,
	}
}

func aboutDescriptor() DocumentDescriptor[models.AboutContent] {
	return DocumentDescriptor[models.AboutContent]{
		Key:  fallback.KeyAbout,
		Path: "/about",
		Stamp: func(a *models.AboutContent, now time.Time) {
			if a.ID == "" {
				a.ID = "about_page"
			}
			a.UpdatedAt = now
		},
		Validate: func(a models.AboutContent) error {
			if a.Content == "" {
				return Invalidf("content is required")
			}
			return nil
		},
		Seed: demo.About,
	}
}

func blogDescriptor() DocumentDescriptor[models.BlogContent] {
	return DocumentDescriptor[models.BlogContent]{
		Key:  fallback.KeyBlog,
		Path: "/blog",
		Stamp: func(b *models.BlogContent, now time.Time) {
			if b.ID == "" {
				b.ID = "blog_page"
			}
			if b.Posts == nil {
				b.Posts = []models.BlogPost{}
			}
			b.UpdatedAt = now
		},
		Seed: demo.Blog,
	}
}

func settingsDescriptor() DocumentDescriptor[models.Settings] {
	return DocumentDescriptor[models.Settings]{
		Key:  fallback.KeySettings,
		Path: "/settings",
		Stamp: func(s *models.Settings, now time.Time) {
			if s.ID == "" {
				s.ID = "site_settings"
			}
			s.UpdatedAt = now
		},
		Seed: demo.SiteSettings,
	}
}

func validISODate(value string) error {
	if value == "" {
		return Invalidf("date is required")
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return Invalidf("date must be an ISO calendar date: %v", err)
	}
	return nil
}
