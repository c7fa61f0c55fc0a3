package components

import (
	"acara-api/internal/pkg/jwt"
	"acara-api/internal/pkg/shortcode"
	"acara-api/internal/usecase"
	"acara-api/internal/usecase/commands"
	"acara-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	func() commands.CodeGenerator { return shortcode.NewCryptoGenerator() },
	func(s *jwt.Service) commands.JWTService { return s },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewOrderCommands,
		commands.NewEventCommands,
		commands.NewTicketCommands,
		commands.NewBannerCommands,
		commands.NewCategoryCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewOrderQueries,
		queries.NewEventQueries,
		queries.NewBannerQueries,
		queries.NewCategoryQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
