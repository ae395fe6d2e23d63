package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"flowermarket-backend/pkg/resp"
	"flowermarket-backend/services"
)

// respondError maps service sentinel errors onto the HTTP contract.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyStatus),
		errors.Is(err, services.ErrNoStore),
		errors.Is(err, services.ErrForeignProduct),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrEmailTaken):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrProductNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

func paramID(c *gin.Context, name string) uint {
	n, _ := strconv.ParseUint(c.Param(name), 10, 64)
	return uint(n)
}
