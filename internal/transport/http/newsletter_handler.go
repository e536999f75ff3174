package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/pixelcraft/internal/usecase"
)

const msgNewsletterFailed = "Erro ao cadastrar e-mail"

type newsletterRequest struct {
	Email string `json:"email" form:"email"`
}

// subscribe — принимает JSON или форму; невалидный адрес отвечает 200 с success=false.
func (h *Handler) subscribe(c *gin.Context) {
	var req newsletterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": usecase.MsgInvalidEmail})
		return
	}

	ctx, cancel := h.reqContext(c)
	defer cancel()

	res, err := h.newsletter.Subscribe(ctx, req.Email)
	if err != nil {
		h.log.Errorf(ctx, "newsletter.Subscribe failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": msgNewsletterFailed})
		return
	}
	c.JSON(http.StatusOK, res)
}
