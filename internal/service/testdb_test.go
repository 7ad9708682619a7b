package service_test

import (
	"testing"

	"equistore-backend/internal/model"
	"equistore-backend/internal/repository"
	"equistore-backend/internal/service"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Order{}, &model.Cart{}))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

func newOrderService(t *testing.T) service.OrderService {
	t.Helper()
	return service.NewOrderService(repository.NewOrderRepository(newTestDB(t)))
}
