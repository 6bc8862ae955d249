package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/healing-center/counseling-api/pkg/errors"
)

// List sends a listing payload shaped `{<key>: [...], "count": n}` where
// count is the total number of matching records.
func List(c *gin.Context, key string, items interface{}, count int) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, gin.H{key: items, "count": count})
}

// Created responds with HTTP 201 and the `{message, id}` creation contract.
func Created(c *gin.Context, message, id string) {
	c.JSON(http.StatusCreated, gin.H{"message": message, "id": id})
}

// JSON sends an arbitrary success payload.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, data)
}

// Error sends an error response. The body carries a generic message plus a
// machine-readable code; wrapped internals are never leaked to the client.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, gin.H{"error": appErr.Message, "code": appErr.Code})
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
