// Package fallback is the local key/value persistence layer behind the admin
// resource managers. It mirrors the last successful remote read per resource,
// serves as the primary store for demo sessions, and keeps the auth token
// between runs. Values persist until explicitly overwritten; there is no TTL
// or eviction.
package fallback

// Fixed bucket keys, one per resource plus the auth token and ticker cache.
const (
	KeyToken     = "admin_token"
	KeyInventory = "admin_inventory_data"
	KeyLivestock = "admin_livestock_data"
	KeySales     = "admin_sales_data"
	KeyCustomers = "admin_customers_data"
	KeyExpenses  = "admin_expenses_data"
	KeyRevenue   = "admin_revenue_data"
	KeyProducts  = "admin_products_data"
	KeyOrders    = "admin_orders_data"
	KeyContacts  = "admin_contacts_data"
	KeyNFT       = "admin_nft_data"
	KeyAbout     = "admin_about_data"
	KeyBlog      = "admin_blog_data"
	KeySettings  = "admin_settings_data"
	KeyTicker    = "market_ticker"
)

// Store is the fallback persistence contract. Payloads are serialized
// collections or documents; callers own the encoding.
type Store interface {
	// ReadCache returns the payload stored under key, and whether one exists.
	ReadCache(key string) ([]byte, bool, error)
	// WriteCache stores payload under key, replacing any previous value.
	WriteCache(key string, payload []byte) error
	// Delete removes the payload stored under key, if any.
	Delete(key string) error
	// Close releases underlying resources.
	Close() error
}
