package server

import (
	"storefront/internal/handler"

	"github.com/labstack/echo/v4"
)

// Handlers はルート登録に必要なハンドラ一式。
type Handlers struct {
	Auth          *handler.AuthHandler
	PasswordReset *handler.PasswordResetHandler
	Product       *handler.ProductHandler
	VendorProduct *handler.VendorProductHandler
	Store         *handler.StoreHandler
	Cart          *handler.CartHandler
	Order         *handler.OrderHandler
	Review        *handler.ReviewHandler
}

func RegisterRoutes(e *echo.Echo, h Handlers) {
	h.Auth.RegisterRoutes(e)
	h.PasswordReset.RegisterRoutes(e)
	h.Product.RegisterRoutes(e)
	h.VendorProduct.RegisterRoutes(e)
	h.Store.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e)
	h.Order.RegisterRoutes(e)
	h.Review.RegisterRoutes(e)
}
