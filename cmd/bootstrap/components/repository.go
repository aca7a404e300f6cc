package components

import (
	"bagtrack/internal/infra/repository"
	"bagtrack/internal/infra/sms"
	"bagtrack/internal/usecase/commands"
	"bagtrack/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write side
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
			fx.As(new(queries.UserReadRepo)),
		),
		fx.Annotate(
			repository.NewOTPSessionRepository,
			fx.As(new(commands.OTPSessionRepository)),
		),
		fx.Annotate(
			repository.NewLocationRepository,
			fx.As(new(commands.LocationRepository)),
			fx.As(new(queries.LocationReadRepo)),
		),
		fx.Annotate(
			repository.NewServiceItemRepository,
			fx.As(new(commands.ServiceItemRepository)),
			fx.As(new(queries.ServiceItemReadRepo)),
		),
		fx.Annotate(
			repository.NewBagRepository,
			fx.As(new(commands.BagRepository)),
			fx.As(new(queries.BagReadRepo)),
		),
		fx.Annotate(
			sms.NewConsoleSender,
			fx.As(new(commands.SMSSender)),
		),
	),
)
