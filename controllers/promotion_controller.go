package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"flowermarket-backend/pkg/resp"
	"flowermarket-backend/services"
	"flowermarket-backend/utils"
)

type PromotionController struct {
	Promotions *services.PromotionService
}

func NewPromotionController(promotions *services.PromotionService) *PromotionController {
	return &PromotionController{Promotions: promotions}
}

type CreatePromotionRequest struct {
	ProductID       uint      `json:"productId" binding:"required"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Code            string    `json:"code"`
	DiscountPercent float64   `json:"discountPercent"`
	StartAt         time.Time `json:"startAt"`
	EndAt           time.Time `json:"endAt"`
	UsageLimit      int       `json:"usageLimit"`
}

type UpdatePromotionRequest struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DiscountPercent float64   `json:"discountPercent"`
	StartAt         time.Time `json:"startAt"`
	EndAt           time.Time `json:"endAt"`
}

// GET /api/prestataire/promotions
func (pc *PromotionController) List(c *gin.Context) {
	promos, err := pc.Promotions.ListForVendor(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, promos)
}

// POST /api/prestataire/promotions
func (pc *PromotionController) Create(c *gin.Context) {
	var req CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	promo, err := pc.Promotions.Create(utils.CurrentUserID(c), services.CreatePromotionInput{
		ProductID:       req.ProductID,
		Title:           req.Title,
		Description:     req.Description,
		Code:            req.Code,
		DiscountPercent: req.DiscountPercent,
		StartAt:         req.StartAt,
		EndAt:           req.EndAt,
		UsageLimit:      req.UsageLimit,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, promo)
}

// PUT /api/prestataire/promotions/:id
func (pc *PromotionController) Update(c *gin.Context) {
	var req UpdatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	promo, err := pc.Promotions.Update(utils.CurrentUserID(c), paramID(c, "id"), services.UpdatePromotionInput{
		Title:           req.Title,
		Description:     req.Description,
		DiscountPercent: req.DiscountPercent,
		StartAt:         req.StartAt,
		EndAt:           req.EndAt,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, promo)
}

// DELETE /api/prestataire/promotions/:id
func (pc *PromotionController) Delete(c *gin.Context) {
	if err := pc.Promotions.Delete(utils.CurrentUserID(c), paramID(c, "id")); err != nil {
		respondError(c, err)
		return
	}
	resp.Message(c, "promotion deleted")
}
