package controllers

import (
	"errors"
	"strconv"

	"servibook/pkg/resp"
	"servibook/services"

	"github.com/gin-gonic/gin"
)

// fail maps service errors to the JSON error envelope.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSlotFull):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalid):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

// uintParam parses a numeric path parameter like :id.
func uintParam(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(n), true
}
