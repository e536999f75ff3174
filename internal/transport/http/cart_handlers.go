package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/pixelcraft/internal/usecase"
	"github.com/Gunvolt24/pixelcraft/pkg/httpx"
)

// Тексты ответов корзины.
const (
	msgProductNotFound = "Produto não encontrado"
	msgInvalidProduct  = "Produto inválido"
	msgEmptyCart       = "Seu carrinho está vazio"
	msgInternal        = "internal server error"
)

// productID — id товара; старые клиенты присылают число.
type productID string

func (p *productID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*p = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = productID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	if _, err := strconv.ParseInt(n.String(), 10, 64); err != nil {
		return err
	}
	*p = productID(n.String())
	return nil
}

// cartRequest — тело POST /add-to-cart и /remove-from-cart; pc_id — прежнее имя поля.
type cartRequest struct {
	ProductID productID `json:"product_id"`
	PCID      productID `json:"pc_id"`
}

func (r cartRequest) id() string {
	if r.ProductID != "" {
		return string(r.ProductID)
	}
	return string(r.PCID)
}

func (h *Handler) addToCart(c *gin.Context) {
	var req cartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msgInvalidProduct})
		return
	}

	ctx, cancel := h.reqContext(c)
	defer cancel()

	count, err := h.cart.Add(ctx, httpx.SessionID(c), req.id())
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true, "cart_count": count})
	case errors.Is(err, usecase.ErrEmptyProductID):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msgInvalidProduct})
	case errors.Is(err, usecase.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": msgProductNotFound})
	default:
		h.log.Errorf(ctx, "cart.Add failed product_id=%s err=%v", req.id(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": msgInternal})
	}
}

func (h *Handler) removeFromCart(c *gin.Context) {
	var req cartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msgInvalidProduct})
		return
	}

	ctx, cancel := h.reqContext(c)
	defer cancel()

	count, err := h.cart.Remove(ctx, httpx.SessionID(c), req.id())
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true, "cart_count": count})
	case errors.Is(err, usecase.ErrEmptyProductID):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msgInvalidProduct})
	default:
		h.log.Errorf(ctx, "cart.Remove failed product_id=%s err=%v", req.id(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": msgInternal})
	}
}

func (h *Handler) viewCart(c *gin.Context) {
	ctx, cancel := h.reqContext(c)
	defer cancel()

	view, err := h.cart.View(ctx, httpx.SessionID(c))
	if err != nil {
		h.log.Errorf(ctx, "cart.View failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) cartCount(c *gin.Context) {
	ctx, cancel := h.reqContext(c)
	defer cancel()

	count, err := h.cart.Count(ctx, httpx.SessionID(c))
	if err != nil {
		h.log.Errorf(ctx, "cart.Count failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *Handler) checkout(c *gin.Context) {
	ctx, cancel := h.reqContext(c)
	defer cancel()

	view, err := h.cart.Checkout(ctx, httpx.SessionID(c))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"items": view.Items, "total": view.Total})
	case errors.Is(err, usecase.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgEmptyCart})
	default:
		h.log.Errorf(ctx, "cart.Checkout failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
	}
}
