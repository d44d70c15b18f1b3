package service

import (
	"context"

	"github.com/rupeerewind/backend/internal/domain"
)

// DataRepository is re-exported from domain for convenience
type DataRepository = domain.DataRepository

// RateSource supplies the live rates used by history calculations
type RateSource interface {
	Rates(ctx context.Context) domain.LiveRates
}

// ProductPricer looks up then/now prices for free-text products
type ProductPricer interface {
	ProductPrice(ctx context.Context, name string, yearThen, yearNow int) domain.ProductPrice
}
