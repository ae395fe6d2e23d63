package controllers

import (
	"github.com/gin-gonic/gin"

	"flowermarket-backend/pkg/resp"
	"flowermarket-backend/services"
	"flowermarket-backend/utils"
)

type StoreController struct {
	Stores *services.StoreService
}

func NewStoreController(stores *services.StoreService) *StoreController {
	return &StoreController{Stores: stores}
}

type UpsertStoreRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
}

// GET /api/prestataire/store
func (sc *StoreController) GetMyStore(c *gin.Context) {
	store, err := sc.Stores.StoreFor(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if store == nil {
		resp.NotFound(c, "store not found")
		return
	}
	resp.OK(c, store)
}

// PUT /api/prestataire/store
func (sc *StoreController) Upsert(c *gin.Context) {
	var req UpsertStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	store, err := sc.Stores.Upsert(utils.CurrentUserID(c), services.UpsertStoreInput{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, store)
}
