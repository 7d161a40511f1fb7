package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AJEETKSINGH1001/Ecommerce-APIs/internal/service"
)

type Cart struct{ S service.CartService }

func NewCart(s service.CartService) *Cart { return &Cart{S: s} }

func (h *Cart) Add(c *gin.Context) {
	var req struct {
		ProductID uint `json:"product_id" binding:"required"`
		Qty       int  `json:"quantity" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
		return
	}
	it, err := h.S.Add(c.Request.Context(), userID(c), req.ProductID, req.Qty)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, it)
}

func (h *Cart) List(c *gin.Context) {
	lines, err := h.S.List(userID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, lines)
}

func (h *Cart) SetQuantity(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Qty int `json:"quantity" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
		return
	}
	it, err := h.S.SetQuantity(c.Request.Context(), userID(c), id, req.Qty)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, it)
}

func (h *Cart) Remove(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.S.Remove(userID(c), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Cart) Clear(c *gin.Context) {
	if err := h.S.Clear(userID(c)); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
