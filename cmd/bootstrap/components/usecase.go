package components

import (
	"barangay-reservation/internal/domain/reservation"
	"barangay-reservation/internal/pkg/clock"
	"barangay-reservation/internal/pkg/config"
	"barangay-reservation/internal/usecase"
	"barangay-reservation/internal/usecase/commands"
	"barangay-reservation/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) reservation.FeeCalculator {
		return reservation.NewFeeCalculator(cfg.Reservation.FeeMode)
	},
	NewCommandOptions,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewLifecycleCommands,
		commands.NewNotificationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewResourceQueries,
		queries.NewReservationQueries,
		queries.NewNotificationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewCommandOptions(cfg config.Config) commands.Options {
	return commands.Options{
		Policy: reservation.Policy{
			LeadTime: cfg.Reservation.LeadTime(),
			DraftTTL: cfg.Reservation.DraftTTL,
		},
		Location:   cfg.Reservation.Location(),
		SMSTimeout: cfg.Reservation.SMSTimeout,
	}
}
