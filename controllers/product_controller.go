package controllers

import (
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"flowermarket-backend/pkg/resp"
	"flowermarket-backend/services"
	"flowermarket-backend/utils"
)

type ProductController struct {
	Products  *services.ProductService
	uploadDir string
}

func NewProductController(products *services.ProductService, uploadDir string) *ProductController {
	return &ProductController{Products: products, uploadDir: uploadDir}
}

type UpdateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	IsActive    bool    `json:"isActive"`
}

// GET /api/prestataire/products
func (pc *ProductController) List(c *gin.Context) {
	products, err := pc.Products.ListForVendor(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, products)
}

// POST /api/prestataire/products (multipart)
func (pc *ProductController) Create(c *gin.Context) {
	price, _ := strconv.ParseFloat(c.PostForm("price"), 64)
	stock, _ := strconv.Atoi(c.PostForm("stock"))

	// an uploaded file supersedes a provided URL
	imageURL := c.PostForm("imageUrl")
	if file, err := c.FormFile("image"); err == nil && file.Size > 0 {
		name := utils.UploadFilename(file.Filename)
		if err := c.SaveUploadedFile(file, filepath.Join(pc.uploadDir, name)); err != nil {
			resp.ServerError(c, err)
			return
		}
		imageURL = "/uploads/" + name
	}

	product, err := pc.Products.Create(utils.CurrentUserID(c), services.CreateProductInput{
		Name:        c.PostForm("name"),
		Price:       price,
		Stock:       stock,
		Category:    c.PostForm("category"),
		Description: c.PostForm("description"),
		ImageURL:    imageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, product)
}

// PUT /api/prestataire/products/:id
func (pc *ProductController) Update(c *gin.Context) {
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	product, err := pc.Products.Update(utils.CurrentUserID(c), paramID(c, "id"), services.UpdateProductInput{
		Name:        req.Name,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, product)
}

// DELETE /api/prestataire/products/:id
func (pc *ProductController) Delete(c *gin.Context) {
	if err := pc.Products.Delete(utils.CurrentUserID(c), paramID(c, "id")); err != nil {
		respondError(c, err)
		return
	}
	resp.Message(c, "product deleted")
}
