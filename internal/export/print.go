package export

import (
	"bytes"
	"embed"
	"html/template"
	"time"

	"github.com/shilohridge/backoffice/internal/domain/models"
	"github.com/shilohridge/backoffice/internal/manager"
)

//go:embed templates/*.html
var templateFS embed.FS

var printTemplates = template.Must(template.New("print").Funcs(template.FuncMap{
	"now": func() string { return time.Now().Format("January 2, 2006") },
}).ParseFS(templateFS, "templates/*.html"))

// FarmIdentity is the letterhead printed on every document.
type FarmIdentity struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// DefaultIdentity is used when site settings carry no override.
var DefaultIdentity = FarmIdentity{
	Name:    "Shiloh Ridge Farm",
	Address: "Shiloh Ridge, TX",
	Email:   "info@shilohridgefarm.com",
}

// BillOfSale renders a printable bill of sale for a recorded sale. The buyer
// block must be complete before a legal document can be produced.
func BillOfSale(farm FarmIdentity, sale models.SaleRecord) ([]byte, error) {
	if sale.CustomerInfo.Name == "" {
		return nil, manager.Invalidf("buyer name is required on a bill of sale")
	}
	if sale.CustomerInfo.Address == "" {
		return nil, manager.Invalidf("buyer address is required on a bill of sale")
	}
	return render("bill_of_sale.html", struct {
		Farm FarmIdentity
		Sale models.SaleRecord
	}{farm, sale})
}

// InventoryList renders a printable animal roster, typically filtered to one
// animal type or status before printing.
func InventoryList(farm FarmIdentity, title string, items []models.InventoryItem) ([]byte, error) {
	return render("inventory_list.html", struct {
		Farm  FarmIdentity
		Title string
		Items []models.InventoryItem
	}{farm, title, items})
}

// NFTCertificate renders an ownership certificate for a minted animal token.
func NFTCertificate(farm FarmIdentity, animal models.Livestock, record models.NFTRecord) ([]byte, error) {
	if record.Status != models.NFTMinted {
		return nil, manager.Invalidf("certificate requires a minted token, got %q", record.Status)
	}
	return render("nft_certificate.html", struct {
		Farm   FarmIdentity
		Animal models.Livestock
		Record models.NFTRecord
	}{farm, animal, record})
}

func render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := printTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
