//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"florbot/internal"
	"florbot/internal/bot"
	"florbot/internal/commands"
	"florbot/internal/economy"
	"florbot/internal/gacha"
	"florbot/internal/identity"
	"florbot/internal/providers"
	"florbot/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewCacheProvider,
		providers.NewMetricsProvider,

		bot.NewNormalizer,
		identity.NewCanonicalizer,

		economy.NewZstdCompressor,
		economy.NewStore,
		economy.NewBackupWriter,
		economy.NewScheduler,

		gacha.NewCatalog,
		bot.NewClient,
		bot.NewResolver,
		commands.NewRegistry,
		bot.NewHandler,
		internal.NewApp,
	)

	return nil, nil
}
