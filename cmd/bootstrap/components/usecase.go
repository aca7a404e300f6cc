package components

import (
	"bagtrack/internal/domain/bag"
	"bagtrack/internal/pkg/clock"
	"bagtrack/internal/pkg/config"
	"bagtrack/internal/usecase/commands"
	"bagtrack/internal/usecase/queries"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.OTPConfig { return cfg.OTP },
	func(cfg config.Config) config.BatchConfig { return cfg.Batch },
	NewPriceCalculator,
	func(clk clock.Clock, calc bag.Calculator) *bag.Factory {
		return bag.NewFactory(clk, calc)
	},
)

// NewPriceCalculator parses the configured tax rate once at startup; a bad
// rate is a deployment error and must not come up mid-request.
func NewPriceCalculator(cfg config.Config) (bag.Calculator, error) {
	rate, err := decimal.NewFromString(cfg.Pricing.TaxRate)
	if err != nil {
		return nil, err
	}
	return bag.NewTaxedCalculator(rate), nil
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBagCommands,
		commands.NewBatchCommands,
		commands.NewLocationCommands,
		commands.NewServiceItemCommands,
		commands.NewTokenValidator,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBagQueries,
		queries.NewLocationQueries,
		queries.NewServiceItemQueries,
	),
)
