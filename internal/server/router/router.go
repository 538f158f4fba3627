package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shilohridge/backoffice/internal/domain/models"
	"github.com/shilohridge/backoffice/internal/manager"
	"github.com/shilohridge/backoffice/internal/server/handlers"
)

// Deps carries the handlers the router mounts.
type Deps struct {
	Holder     *handlers.Holder
	Auth       *handlers.AuthHandler
	Inventory  *handlers.InventoryHandler
	Sales      *handlers.SalesHandler
	Orders     *handlers.OrdersHandler
	Accounting *handlers.AccountingHandler
	Content    *handlers.ContentHandler
	Public     *handlers.PublicHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(deps Deps, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/ticker", deps.Content.Ticker)

	// Storefront reads, no auth.
	r.GET("/livestock", deps.Public.Livestock)
	r.GET("/livestock/:id", deps.Public.LivestockDetail)
	r.GET("/products", deps.Public.Products)
	r.GET("/about", deps.Public.About)
	r.GET("/blog", deps.Public.Blog)

	r.POST("/admin/login", deps.Auth.Login)
	r.POST("/admin/demo", deps.Auth.Demo)
	r.POST("/admin/logout", deps.Auth.Logout)
	r.GET("/admin/session", deps.Auth.Current)

	admin := r.Group("/admin", deps.Auth.Require)

	inventory := collection(deps.Holder, func(reg *manager.Registry) *manager.Collection[models.InventoryItem] { return reg.Inventory })
	inventoryGroup := admin.Group("/inventory")
	inventory.Routes(inventoryGroup)
	inventoryGroup.POST("/:id/health-records", deps.Inventory.AddHealthRecord)
	inventoryGroup.PATCH("/:id/status", deps.Inventory.UpdateStatus)

	collection(deps.Holder, func(reg *manager.Registry) *manager.Collection[models.Livestock] { return reg.Livestock }).
		Routes(admin.Group("/livestock"))

	sales := collection(deps.Holder, func(reg *manager.Registry) *manager.Collection[models.SaleRecord] { return reg.Sales })
	salesGroup := admin.Group("/sales")
	salesGroup.GET("", sales.List)
	salesGroup.POST("", deps.Sales.Create) // creation goes through the sales service
	salesGroup.GET("/:id", sales.Get)
	salesGroup.PUT("/:id", sales.Update)
	salesGroup.DELETE("/:id", sales.Delete)
	salesGroup.PATCH("/:id/payment-status", deps.Sales.PaymentStatus)
	salesGroup.PATCH("/:id/delivery-status", deps.Sales.DeliveryStatus)

	collection(deps.Holder, func(reg *manager.Registry) *manager.Collection[models.Customer] { return reg.Customers }).
		Routes(admin.Group("/customers"))
	collection(deps.Holder, func(reg *manager.Registry) *manager.Collection[models.Expense] { return reg.Expenses }).
		Routes(admin.Group("/expenses"))
	collection(deps.Holder, func(reg *manager.Registry) *manager.Collection[models.Revenue] { return reg.Revenue }).
		Routes(admin.Group("/revenue"))
	collection(deps.Holder, func(reg *manager.Registry) *manager.Collection[models.Product] { return reg.Products }).
		Routes(admin.Group("/products"))

	orders := collection(deps.Holder, func(reg *manager.Registry) *manager.Collection[models.Order] { return reg.Orders })
	ordersGroup := admin.Group("/orders")
	ordersGroup.GET("", orders.List)
	ordersGroup.POST("", deps.Orders.Create) // creation prices each line from the catalog
	ordersGroup.GET("/:id", orders.Get)
	ordersGroup.PUT("/:id", orders.Update)
	ordersGroup.DELETE("/:id", orders.Delete)
	ordersGroup.PATCH("/:id/status", deps.Orders.Status)

	contacts := collection(deps.Holder, func(reg *manager.Registry) *manager.Collection[models.ContactSubmission] { return reg.Contacts })
	contactsGroup := admin.Group("/contacts")
	contacts.Routes(contactsGroup)
	contactsGroup.PATCH("/:id/status", contacts.PatchStatus("/status", validContactStatus, func(c *models.ContactSubmission, status string) {
		c.Status = models.ContactStatus(status)
	}))

	nftGroup := admin.Group("/nft")
	collection(deps.Holder, func(reg *manager.Registry) *manager.Collection[models.NFTRecord] { return reg.NFT }).
		Routes(nftGroup)
	nftGroup.POST("/mint", deps.Content.Mint)

	document(deps.Holder, func(reg *manager.Registry) *manager.Document[models.AboutContent] { return reg.About }).
		Routes(admin.Group("/about"))
	document(deps.Holder, func(reg *manager.Registry) *manager.Document[models.BlogContent] { return reg.Blog }).
		Routes(admin.Group("/blog"))
	document(deps.Holder, func(reg *manager.Registry) *manager.Document[models.Settings] { return reg.Settings }).
		Routes(admin.Group("/settings"))

	accounting := admin.Group("/accounting")
	accounting.GET("/summary", deps.Accounting.Summary)
	accounting.GET("/monthly", deps.Accounting.Monthly)
	accounting.GET("/categories", deps.Accounting.Categories)

	exports := admin.Group("/exports")
	exports.GET("/inventory/:format", deps.Inventory.Export)
	exports.GET("/sales/:format", deps.Sales.Export)
	exports.GET("/expenses/:format", deps.Accounting.ExportExpenses)
	exports.GET("/revenue/:format", deps.Accounting.ExportRevenue)
	exports.GET("/workbook", deps.Inventory.Workbook)

	admin.POST("/uploads", deps.Content.Upload)

	printing := admin.Group("/print")
	printing.GET("/inventory", deps.Inventory.Print)
	printing.GET("/sales/:id", deps.Sales.BillOfSale)
	printing.GET("/nft/:id", deps.Content.NFTCertificate)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func collection[T manager.Record](holder *handlers.Holder, pick func(*manager.Registry) *manager.Collection[T]) *handlers.ResourceHandler[T] {
	return handlers.NewResourceHandler(func() (*manager.Collection[T], bool) {
		ws, ok := holder.Current()
		if !ok {
			return nil, false
		}
		return pick(ws.Registry), true
	}, nil)
}

func document[T any](holder *handlers.Holder, pick func(*manager.Registry) *manager.Document[T]) *handlers.DocumentHandler[T] {
	return handlers.NewDocumentHandler(func() (*manager.Document[T], bool) {
		ws, ok := holder.Current()
		if !ok {
			return nil, false
		}
		return pick(ws.Registry), true
	}, nil)
}

func validContactStatus(status string) bool {
	switch models.ContactStatus(status) {
	case models.ContactNew, models.ContactRead, models.ContactResponded:
		return true
	}
	return false
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
