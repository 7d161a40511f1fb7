package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AJEETKSINGH1001/Ecommerce-APIs/internal/service"
)

// fail writes a structured error with a stable kind and a human-readable
// message, mapping the service taxonomy onto HTTP statuses.
func fail(c *gin.Context, err error) {
	kind := service.ErrKind(err)
	status := http.StatusInternalServerError
	switch kind {
	case service.KindValidation, service.KindEmptyCart, service.KindInsufficientStock:
		status = http.StatusBadRequest
	case service.KindAuthFailure:
		status = http.StatusUnauthorized
	case service.KindNotFound:
		status = http.StatusNotFound
	case service.KindConflict:
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"kind": string(kind), "error": err.Error()})
}

func userID(c *gin.Context) uint { return c.GetUint("userID") }
