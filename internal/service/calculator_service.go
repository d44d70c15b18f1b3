package service

import (
	"context"
	"log"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/rupeerewind/backend/internal/domain"
	"github.com/rupeerewind/backend/internal/engine"
	"github.com/rupeerewind/backend/internal/refdata"
)

// CalculatorService runs history and future calculations against the
// reference store and records each one in the calculation log.
type CalculatorService struct {
	store      *refdata.Store
	rates      RateSource
	repo       DataRepository
	stressRate float64
	now        func() time.Time

	wgBg sync.WaitGroup // tracks background goroutines for graceful shutdown
}

// NewCalculatorService creates a new calculator service. rates may be nil,
// in which case table defaults are always used.
func NewCalculatorService(store *refdata.Store, rates RateSource, repo DataRepository, stressRate float64) *CalculatorService {
	return &CalculatorService{
		store:      store,
		rates:      rates,
		repo:       repo,
		stressRate: stressRate,
		now:        time.Now,
	}
}

// Store returns the reference catalog the service calculates against
func (s *CalculatorService) Store() *refdata.Store {
	return s.store
}

// WaitBackground blocks until all background save goroutines complete.
// Call during graceful shutdown to avoid dropped writes.
func (s *CalculatorService) WaitBackground() {
	s.wgBg.Wait()
}

// LiveRates returns the live rates, or an empty set when no source is configured
func (s *CalculatorService) LiveRates(ctx context.Context) domain.LiveRates {
	if s.rates == nil {
		return domain.LiveRates{}
	}
	return s.rates.Rates(ctx)
}

// History values a past amount in today's terms
func (s *CalculatorService) History(ctx context.Context, req domain.CalculationRequest) (domain.HistoryReport, error) {
	if err := req.Validate(s.store.CurrentYear); err != nil {
		return domain.HistoryReport{}, err
	}

	rates := s.LiveRates(ctx)
	result, chart := engine.History(s.store, req, rates.Overrides())

	report := domain.HistoryReport{
		ID:     uuid.NewString(),
		Result: result,
		Chart:  chart,
		Rates:  rates,
	}
	s.saveLog(report.ID, domain.ModeHistory, req, result)

	return report, nil
}

// Future projects a current amount forward. With shock set, the projection
// is also rerun at the configured stress inflation rate.
func (s *CalculatorService) Future(ctx context.Context, req domain.FutureCalculationRequest, shock bool) (domain.FutureReport, error) {
	if err := req.Validate(); err != nil {
		return domain.FutureReport{}, err
	}
	if req.BaseYear == 0 {
		req.BaseYear = s.now().Year()
	}

	result, chart := engine.Future(s.store, req)
	report := domain.FutureReport{
		ID:             uuid.NewString(),
		FutureScenario: domain.FutureScenario{Result: result, Chart: chart},
	}
	if shock {
		shocked, shockedChart := engine.Shock(s.store, req, s.stressRate)
		report.Shock = &domain.FutureScenario{Result: shocked, Chart: shockedChart}
	}
	s.saveLog(report.ID, domain.ModeFuture, req, result)

	return report, nil
}

// PersonalInflation computes a spending-weighted inflation rate
func (s *CalculatorService) PersonalInflation(shares map[string]float64) (domain.PersonalInflation, error) {
	return engine.PersonalInflation(s.store, shares)
}

// saveLog persists the calculation asynchronously (tracked for graceful shutdown)
func (s *CalculatorService) saveLog(id, mode string, req, result interface{}) {
	if s.repo == nil {
		return
	}

	s.wgBg.Add(1)
	go func() {
		defer s.wgBg.Done()

		reqJSON, err := json.Marshal(req)
		if err != nil {
			log.Printf("Failed to encode %s request for log: %v", mode, err)
			return
		}
		resJSON, err := json.Marshal(result)
		if err != nil {
			log.Printf("Failed to encode %s result for log: %v", mode, err)
			return
		}

		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		entry := domain.CalculationLog{
			ID:        id,
			Mode:      mode,
			Request:   reqJSON,
			Result:    resJSON,
			CreatedAt: s.now(),
		}
		if err := s.repo.SaveCalculationLog(bgCtx, entry); err != nil {
			log.Printf("Failed to save calculation log: %v", err)
		}
	}()
}
