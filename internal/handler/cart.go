package handler

import (
	"equistore-backend/internal/apperr"
	"equistore-backend/internal/dto"
	"equistore-backend/internal/service"
	"net/http"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	ctx := c.Request().Context()

	cart, err := h.cartService.Get(ctx, c.Param("sessionId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.CartResponse{
		Success: true,
		Cart:    cart,
	})
}

func (h *CartHandler) ReplaceCart(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ReplaceCartRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validationf("invalid cart payload")
	}

	cart, err := h.cartService.Replace(ctx, c.Param("sessionId"), req.Items)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.CartResponse{
		Success: true,
		Cart:    cart,
	})
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.cartService.Clear(ctx, c.Param("sessionId")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
