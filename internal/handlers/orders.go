package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AJEETKSINGH1001/Ecommerce-APIs/internal/service"
)

type Orders struct {
	Checkout service.CheckoutService
	S        service.OrderService
}

func NewOrders(checkout service.CheckoutService, s service.OrderService) *Orders {
	return &Orders{Checkout: checkout, S: s}
}

func (h *Orders) PlaceOrder(c *gin.Context) {
	res, err := h.Checkout.Checkout(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Orders) List(c *gin.Context) {
	orders, err := h.S.ListByUser(userID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Orders) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	o, err := h.S.Get(userID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// ItemHistory returns every item the user has ever ordered, flattened across
// orders, from the frozen snapshots.
func (h *Orders) ItemHistory(c *gin.Context) {
	items, err := h.S.ItemHistory(userID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Orders) Invoice(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	data, contentType, err := h.S.Invoice(userID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=invoice_order_%d.pdf", id))
	c.Data(http.StatusOK, contentType, data)
}
