package controllers

import (
	"github.com/gin-gonic/gin"

	"flowermarket-backend/pkg/resp"
	"flowermarket-backend/services"
	"flowermarket-backend/utils"
)

type ReviewController struct {
	Reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{Reviews: reviews}
}

type CreateReviewRequest struct {
	ProductID uint   `json:"productId" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

type UpdateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// GET /api/prestataire/reviews
func (rc *ReviewController) ListMine(c *gin.Context) {
	reviews, err := rc.Reviews.ListForVendor(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reviews)
}

// GET /api/market/products/:id/reviews
func (rc *ReviewController) ListForProduct(c *gin.Context) {
	reviews, err := rc.Reviews.ListForProduct(paramID(c, "id"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reviews)
}

// POST /api/reviews
func (rc *ReviewController) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review, err := rc.Reviews.Create(utils.CurrentUserID(c), req.ProductID, services.ReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, review)
}

// PUT /api/reviews/:id
func (rc *ReviewController) Update(c *gin.Context) {
	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review, err := rc.Reviews.Update(paramID(c, "id"), services.ReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, review)
}

// DELETE /api/reviews/:id
func (rc *ReviewController) Delete(c *gin.Context) {
	if err := rc.Reviews.Delete(paramID(c, "id")); err != nil {
		respondError(c, err)
		return
	}
	resp.Message(c, "review deleted")
}
