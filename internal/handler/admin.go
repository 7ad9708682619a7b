package handler

import (
	"equistore-backend/internal/apperr"
	"equistore-backend/internal/dto"
	"equistore-backend/internal/service"
	"net/http"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	adminService service.AdminService
	orderService service.OrderService
}

func NewAdminHandler(adminService service.AdminService, orderService service.OrderService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		orderService: orderService,
	}
}

func (h *AdminHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validationf("invalid login payload")
	}

	resp, err := h.adminService.Login(req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orderService.ListAll(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.OrderListResponse{
		Success: true,
		Orders:  orders,
	})
}

func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validationf("invalid status payload")
	}

	order, err := h.orderService.UpdateStatus(ctx, c.Param("orderId"), req.Status)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.OrderResponse{
		Success: true,
		Order:   order,
	})
}
