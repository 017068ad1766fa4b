package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwanjeronie/mailinglist/internal/pkg/apierr"
)

// OK sends a 200 response.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NotFoundMsg sends a 404 error with a custom message.
func NotFoundMsg(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": message})
}

// Err maps a classified error to its status code and writes the JSON error
// body. Unclassified errors count as persistence failures. Store failures are
// attached to the gin context so the request logger records the cause.
func Err(c *gin.Context, err error) {
	var apiErr *apierr.Error
	if !errors.As(err, &apiErr) {
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	switch apiErr.Kind {
	case apierr.KindValidation, apierr.KindDuplicate:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": apiErr.Message})
	case apierr.KindAuth:
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apiErr.Message})
	case apierr.KindNotFound:
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": apiErr.Message})
	default:
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": apiErr.Message})
	}
}
