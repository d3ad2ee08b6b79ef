// Package handler contains the storefront HTTP handlers.
package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/storefront/backend/internal/application/checkout"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// flashSessionName is the cookie session holding flash messages.
const flashSessionName = "storefront_session"

// StorefrontHandler serves the catalog page and the order-placement endpoint.
type StorefrontHandler struct {
	checkout *checkout.Service
	catalog  *catalog.Catalog
	sessions sessions.Store
}

// NewStorefrontHandler creates a new StorefrontHandler
func NewStorefrontHandler(svc *checkout.Service, cat *catalog.Catalog, store sessions.Store) *StorefrontHandler {
	return &StorefrontHandler{
		checkout: svc,
		catalog:  cat,
		sessions: store,
	}
}

// RegisterRoutes registers the storefront routes on the engine root.
func (h *StorefrontHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Index)
	r.POST("/order", h.PlaceOrder)
}

type productView struct {
	ID    string
	Name  string
	Price string
}

type lineView struct {
	Name      string
	Quantity  int
	LineTotal string
}

// Index renders the catalog page with a quantity input per product and any
// pending flash messages. It has no side effects.
func (h *StorefrontHandler) Index(c *gin.Context) {
	products := make([]productView, 0, h.catalog.Len())
	for _, p := range h.catalog.Products() {
		products = append(products, productView{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.Price.StringFixed(2),
		})
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Products": products,
		"Flashes":  h.consumeFlashes(c),
	})
}

// PlaceOrder handles a checkout form submission.
//
// Non-numeric or missing quantity fields are treated as zero, never as an
// error. Validation failures flash a message and redirect back to the catalog
// without persisting anything; a persistence failure renders an error page.
func (h *StorefrontHandler) PlaceOrder(c *gin.Context) {
	in := checkout.PlaceOrderInput{
		CustomerName:  c.PostForm("customer_name"),
		CustomerEmail: c.PostForm("customer_email"),
		Quantities:    make(map[string]int, h.catalog.Len()),
	}

	for _, p := range h.catalog.Products() {
		qty, err := strconv.Atoi(strings.TrimSpace(c.PostForm("qty_" + p.ID)))
		if err != nil {
			qty = 0
		}
		in.Quantities[p.ID] = qty
	}

	o, err := h.checkout.PlaceOrder(c.Request.Context(), in)
	if err != nil {
		if shared.IsValidation(err) {
			h.redirectWithFlash(c, err.Error())
			return
		}

		logger.GetGinLogger(c).Error("Order placement failed", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"Message": "We could not save your order. Please try again.",
		})
		return
	}

	h.renderConfirmation(c, o)
}

func (h *StorefrontHandler) renderConfirmation(c *gin.Context, o *order.Order) {
	lines := make([]lineView, len(o.Lines))
	for i, line := range o.Lines {
		lines[i] = lineView{
			Name:      line.ProductName,
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal.StringFixed(2),
		}
	}

	c.HTML(http.StatusOK, "confirm.html", gin.H{
		"OrderID": o.ID,
		"Name":    o.CustomerName,
		"Email":   o.CustomerEmail,
		"Lines":   lines,
		"Total":   o.TotalAmount.StringFixed(2),
	})
}

// redirectWithFlash stores a flash message and sends the browser back to the
// catalog page.
func (h *StorefrontHandler) redirectWithFlash(c *gin.Context, message string) {
	session, _ := h.sessions.Get(c.Request, flashSessionName)
	session.AddFlash(message)
	if err := session.Save(c.Request, c.Writer); err != nil {
		logger.GetGinLogger(c).Warn("Failed to save flash session", zap.Error(err))
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// consumeFlashes returns and clears any pending flash messages.
func (h *StorefrontHandler) consumeFlashes(c *gin.Context) []string {
	session, _ := h.sessions.Get(c.Request, flashSessionName)
	flashes := session.Flashes()
	if len(flashes) > 0 {
		if err := session.Save(c.Request, c.Writer); err != nil {
			logger.GetGinLogger(c).Warn("Failed to save flash session", zap.Error(err))
		}
	}

	messages := make([]string, 0, len(flashes))
	for _, f := range flashes {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}
