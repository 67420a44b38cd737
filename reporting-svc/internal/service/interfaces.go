package service

import (
	"context"

	"anugerah-resto/reporting-svc/internal/domain"
	"anugerah-resto/reporting-svc/internal/storage"
)

type StoreInterface interface {
	RecordSale(day string, total float64, customerID string) error
	RecordCancellation(day string) error
}

type ReportsInterface interface {
	DailySales(day string) (*domain.DailySales, error)
	TopCustomers(limit int) ([]domain.CustomerSpend, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessOrder(msg domain.OrderMessage)
}

var _ StoreInterface = (*storage.Store)(nil)
var _ ReportsInterface = (*storage.Store)(nil)
var _ ConsumerInterface = (*Consumer)(nil)
