package handler

import (
	"equistore-backend/internal/apperr"
	"equistore-backend/internal/dto"
	"equistore-backend/internal/service"
	"net/http"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderService   service.OrderService
	receiptService service.ReceiptService
}

func NewOrderHandler(orderService service.OrderService, receiptService service.ReceiptService) *OrderHandler {
	return &OrderHandler{
		orderService:   orderService,
		receiptService: receiptService,
	}
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validationf("invalid order payload")
	}

	order, err := h.orderService.Create(ctx, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.OrderResponse{
		Success: true,
		Order:   order,
	})
}

func (h *OrderHandler) TrackOrder(c echo.Context) error {
	ctx := c.Request().Context()

	orderID := c.Param("orderId")

	order, err := h.orderService.GetByOrderID(ctx, orderID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.TrackResponse{
		Success:      true,
		OrderID:      order.OrderID,
		Status:       order.Status,
		CustomerName: order.Customer.Name,
		Total:        order.Total,
		CreatedAt:    order.CreatedAt,
	})
}

func (h *OrderHandler) UploadReceipt(c echo.Context) error {
	ctx := c.Request().Context()

	orderID := c.Param("orderId")

	file, err := c.FormFile("receipt")
	if err != nil {
		return apperr.Validationf("missing receipt file")
	}

	fileURL, order, err := h.receiptService.Ingest(ctx, orderID, file)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.UploadReceiptResponse{
		Success: true,
		FileURL: fileURL,
		Order:   order,
	})
}
