package controllers

import (
	"github.com/gin-gonic/gin"

	"flowermarket-backend/pkg/resp"
	"flowermarket-backend/services"
	"flowermarket-backend/utils"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// GET /api/prestataire/orders
func (oc *OrderController) List(c *gin.Context) {
	orders, err := oc.Orders.ListForVendor(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// PUT /api/prestataire/orders/:id
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Orders.UpdateStatus(utils.CurrentUserID(c), paramID(c, "id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, order)
}
