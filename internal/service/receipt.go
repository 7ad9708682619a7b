package service

import (
	"context"
	"equistore-backend/internal/model"
	"equistore-backend/internal/storage"
	"fmt"
	"mime/multipart"
	"strings"
)

type ReceiptService interface {
	Ingest(ctx context.Context, orderID string, file *multipart.FileHeader) (string, *model.Order, error)
}

type receiptServiceImpl struct {
	store        storage.ReceiptStore
	orderService OrderService
	baseURL      string
}

func NewReceiptService(store storage.ReceiptStore, orderService OrderService, baseURL string) ReceiptService {
	return &receiptServiceImpl{
		store:        store,
		orderService: orderService,
		baseURL:      strings.TrimRight(baseURL, "/"),
	}
}

// Ingest stores the uploaded image, builds its public URL and attaches it
// to the order, advancing the order to Pending Verification.
func (s *receiptServiceImpl) Ingest(ctx context.Context, orderID string, file *multipart.FileHeader) (string, *model.Order, error) {
	// reject unknown orders before writing anything to disk
	if _, err := s.orderService.GetByOrderID(ctx, orderID); err != nil {
		return "", nil, err
	}

	filename, err := s.store.Save(file)
	if err != nil {
		return "", nil, fmt.Errorf("save receipt: %w", err)
	}

	fileURL := s.baseURL + "/uploads/" + filename

	order, err := s.orderService.AttachReceipt(ctx, orderID, fileURL)
	if err != nil {
		return "", nil, err
	}

	return fileURL, order, nil
}
