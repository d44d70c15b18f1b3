// Command rewind runs a single history or future calculation and prints the
// report as JSON.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	json "github.com/goccy/go-json"

	"github.com/rupeerewind/backend/internal/domain"
	"github.com/rupeerewind/backend/internal/refdata"
	"github.com/rupeerewind/backend/internal/service"
)

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("rewind: %v", err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("rewind", flag.ContinueOnError)
	var (
		mode      = fs.String("mode", "history", "calculation mode: history or future")
		refFile   = fs.String("refdata", os.Getenv("REFERENCE_DATA_FILE"), "optional reference data override file")
		amount    = fs.Float64("amount", 0, "monthly amount in rupees")
		year      = fs.Int("year", 0, "origin year (history)")
		increment = fs.Float64("increment", 0, "annual increment percent (history)")
		lifestyle = fs.Bool("lifestyle", false, "add the lifestyle inflation buffer (history)")
		tier      = fs.String("tier", string(domain.TierSame), "city tier move: SAME, TIER2_TO_1, TIER1_TO_2 (history)")
		city      = fs.String("city", "", "catalog city name (history)")
		industry  = fs.String("industry", "", "industry id (history)")
		domainID  = fs.String("domain", "", "inflation domain id (history)")
		growth    = fs.Float64("growth", 10, "annual growth percent (future)")
		inflation = fs.Float64("inflation", 6, "annual inflation percent (future)")
		years     = fs.Int("years", 10, "projection horizon in years (future)")
		shock     = fs.Bool("shock", false, "add a stressed-inflation rerun (future)")
		stress    = fs.Float64("stress", 12, "stress inflation percent used with -shock")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := refdata.Load(*refFile)
	if err != nil {
		return err
	}
	calc := service.NewCalculatorService(store, nil, nil, *stress)
	ctx := context.Background()

	var report interface{}
	switch *mode {
	case "history":
		c := store.DefaultCity()
		if *city != "" {
			var ok bool
			if c, ok = store.City(*city); !ok {
				return fmt.Errorf("%w: %q", domain.ErrUnknownCity, *city)
			}
		}
		report, err = calc.History(ctx, domain.CalculationRequest{
			Amount:                 *amount,
			OriginYear:             *year,
			AnnualIncrementPct:     *increment,
			IncludeLifestyleBuffer: *lifestyle,
			CityTierMove:           domain.CityTierMove(*tier),
			City:                   c,
			IndustryID:             *industry,
			DomainID:               *domainID,
		})
	case "future":
		report, err = calc.Future(ctx, domain.FutureCalculationRequest{
			CurrentAmount: *amount,
			GrowthRate:    *growth,
			InflationRate: *inflation,
			Years:         *years,
		}, *shock)
	default:
		return fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
