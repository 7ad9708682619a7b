package server

import (
	"errors"
	"net/http"

	"equistore-backend/internal/apperr"
	"equistore-backend/internal/dto"
	"equistore-backend/internal/handler"
	custommw "equistore-backend/internal/middleware"
	"equistore-backend/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Server struct {
	echo         *echo.Echo
	orderHandler *handler.OrderHandler
	cartHandler  *handler.CartHandler
	adminHandler *handler.AdminHandler
	adminService service.AdminService
}

func NewServer(
	orderService service.OrderService,
	cartService service.CartService,
	adminService service.AdminService,
	receiptService service.ReceiptService,
	uploadDir string,
	logger *zap.Logger,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// uploaded receipts, read-only
	e.Static("/uploads", uploadDir)

	s := &Server{
		echo:         e,
		orderHandler: handler.NewOrderHandler(orderService, receiptService),
		cartHandler:  handler.NewCartHandler(cartService),
		adminHandler: handler.NewAdminHandler(adminService, orderService),
		adminService: adminService,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	s.echo.POST("/orders", s.orderHandler.CreateOrder)
	s.echo.POST("/upload-receipt/:orderId", s.orderHandler.UploadReceipt)
	s.echo.GET("/track/:orderId", s.orderHandler.TrackOrder)

	s.echo.GET("/cart/:sessionId", s.cartHandler.GetCart)
	s.echo.POST("/cart/:sessionId", s.cartHandler.ReplaceCart)
	s.echo.DELETE("/cart/:sessionId", s.cartHandler.ClearCart)

	// -------- admin --------
	admin := s.echo.Group("/admin")
	admin.POST("/login", s.adminHandler.Login)

	orders := admin.Group("/orders", custommw.AdminAuth(s.adminService))
	orders.GET("", s.adminHandler.ListOrders)
	orders.PUT("/:orderId/status", s.adminHandler.UpdateOrderStatus)
}

// errorHandler maps the error taxonomy onto the response envelope:
// every failure carries {"success":false,"message":...}.
func errorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "internal server error"

		var validationErr *apperr.ValidationError
		var httpErr *echo.HTTPError

		switch {
		case errors.As(err, &validationErr):
			status = http.StatusBadRequest
			message = validationErr.Msg
		case errors.Is(err, apperr.ErrNotFound):
			status = http.StatusNotFound
			message = "not found"
		case errors.Is(err, apperr.ErrUnauthorized):
			status = http.StatusUnauthorized
			message = "unauthorized"
		case errors.As(err, &httpErr):
			status = httpErr.Code
			if msg, ok := httpErr.Message.(string); ok {
				message = msg
			}
		default:
			logger.Error("request failed", zap.Error(err))
			message = err.Error()
		}

		if jsonErr := c.JSON(status, dto.ErrorResponse{Success: false, Message: message}); jsonErr != nil {
			logger.Error("write error response", zap.Error(jsonErr))
		}
	}
}

func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
