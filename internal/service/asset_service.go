package service

import (
	"context"
	"strings"

	"github.com/rupeerewind/backend/internal/domain"
	"github.com/rupeerewind/backend/internal/engine"
	"github.com/rupeerewind/backend/internal/refdata"
)

// AssetService compares asset and commodity prices across years
type AssetService struct {
	store  *refdata.Store
	pricer ProductPricer
}

// NewAssetService creates a new asset service. pricer may be nil, in which
// case free-text queries are rejected.
func NewAssetService(store *refdata.Store, pricer ProductPricer) *AssetService {
	return &AssetService{store: store, pricer: pricer}
}

// Compare prices a catalog benchmark, or a free-text product through the pricer
func (s *AssetService) Compare(ctx context.Context, req domain.AssetComparisonRequest) (domain.AssetComparison, error) {
	if req.YearNow == 0 {
		req.YearNow = s.store.CurrentYear
	}
	if req.YearThen <= 0 || req.YearThen > req.YearNow || req.YearNow > s.store.CurrentYear {
		return domain.AssetComparison{}, domain.ErrInvalidYear
	}
	if req.IncomeThen < 0 || req.IncomeNow < 0 {
		return domain.AssetComparison{}, domain.ErrInvalidAmount
	}

	if req.AssetID != "" {
		asset, ok := s.store.Asset(req.AssetID)
		if !ok {
			return domain.AssetComparison{}, domain.ErrUnknownAsset
		}
		return engine.CompareAsset(asset, req), nil
	}

	query := strings.TrimSpace(req.Query)
	if query == "" || s.pricer == nil {
		return domain.AssetComparison{}, domain.ErrUnknownAsset
	}
	price := s.pricer.ProductPrice(ctx, query, req.YearThen, req.YearNow)
	return engine.CompareProduct(price, req), nil
}

// Basket compares commodity quantities affordable then and now
func (s *AssetService) Basket(req domain.BasketRequest) ([]domain.CommodityQuantity, error) {
	if err := req.Validate(s.store.CurrentYear); err != nil {
		return nil, err
	}
	return engine.CommodityBasket(s.store, req.AmountThen, req.YearThen, req.AmountNow), nil
}

// TimeMachine values a past lump sum across the store's investable instruments
func (s *AssetService) TimeMachine(req domain.TimeMachineRequest) ([]domain.InvestmentOutcome, error) {
	if req.YearNow == 0 {
		req.YearNow = s.store.CurrentYear
	}
	if err := req.Validate(s.store.CurrentYear); err != nil {
		return nil, err
	}
	return engine.TimeMachine(s.store.Investments(), req.Amount, req.YearThen, req.YearNow), nil
}
