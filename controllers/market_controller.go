package controllers

import (
	"github.com/gin-gonic/gin"

	"flowermarket-backend/pkg/resp"
	"flowermarket-backend/services"
	"flowermarket-backend/utils"
)

// MarketController is the customer-facing surface: browse the catalogue,
// place orders, list own orders (the client cart counter syncs from it).
type MarketController struct {
	Products *services.ProductService
	Orders   *services.OrderService
}

func NewMarketController(products *services.ProductService, orders *services.OrderService) *MarketController {
	return &MarketController{Products: products, Orders: orders}
}

type PlaceOrderRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// GET /api/market/products
func (mc *MarketController) ListProducts(c *gin.Context) {
	products, err := mc.Products.ListActive()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, products)
}

// POST /api/market/orders
func (mc *MarketController) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := mc.Orders.Place(utils.CurrentUserID(c), req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /api/market/my-orders
func (mc *MarketController) MyOrders(c *gin.Context) {
	orders, err := mc.Orders.ListForCustomer(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}
