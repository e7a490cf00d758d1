package handler

import (
	"errors"
	"net/http"

	"campus-nav/algo"
	"campus-nav/capability"
	"campus-nav/navigator"
	"campus-nav/registry"

	"github.com/gin-gonic/gin"
)

// respondError 把领域错误翻译成 HTTP 状态码和错误码
func respondError(c *gin.Context, err error) {
	var (
		notFound *algo.LocationNotFoundError
		noPath   *algo.NoPathError
		cfgErr   *registry.ConfigError
	)

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "location_not_found",
			"message": err.Error(),
			"name":    notFound.Name,
		})
	case errors.As(err, &noPath):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "no_path",
			"message": err.Error(),
		})
	case errors.As(err, &cfgErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "invalid_config",
			"message": err.Error(),
		})
	case errors.Is(err, navigator.ErrNotLoaded):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "not_loaded",
			"message": err.Error(),
		})
	case errors.Is(err, capability.ErrUnavailable):
		c.JSON(http.StatusNotImplemented, gin.H{
			"error":   "unavailable",
			"message": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": err.Error(),
		})
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "invalid_request",
		"message": message,
	})
}
