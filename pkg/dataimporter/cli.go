package dataimporter

import (
	"time"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/trackmap/trackmap/pkg/database"
	"github.com/trackmap/trackmap/pkg/dataimporter/manager"
	"github.com/trackmap/trackmap/pkg/redis_client"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "data-importer",
		Usage: "Pull map snapshots from game servers and convert them",
		Subcommands: []*cli.Command{
			{
				Name:  "snapshot",
				Usage: "Import one dimension of a game server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "gameserver",
						Usage:    "Identifier of the registered game server",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "dimension",
						Usage:    "Dimension to import",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "repeat-every",
						Usage: "Repeat this import every X duration (eg. 5m)",
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					gameServer, err := manager.GetGameServer(c.String("gameserver"))
					if err != nil {
						return err
					}

					repeatEvery := c.String("repeat-every")
					var repeatDuration time.Duration
					if repeatEvery != "" {
						repeatDuration, err = time.ParseDuration(repeatEvery)
						if err != nil {
							return err
						}
					}

					for {
						startTime := time.Now()

						err := manager.ImportGameServer(gameServer, c.String("dimension"))
						if err != nil && err != manager.ErrStaleSnapshot {
							return err
						}
						if err == manager.ErrStaleSnapshot {
							log.Info().Msg("Snapshot was stale, nothing imported")
						}

						if repeatEvery == "" {
							break
						}

						executionDuration := time.Since(startTime)
						log.Info().Msgf("Operation took %s", executionDuration.String())

						waitTime := repeatDuration - executionDuration
						if waitTime.Seconds() > 0 {
							time.Sleep(waitTime)
						}
					}

					return nil
				},
			},
			{
				Name:  "all",
				Usage: "Import every dimension of every registered game server",
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					return manager.ImportAllGameServers()
				},
			},
			{
				Name:  "company-bindings",
				Usage: "Import a company bindings CSV file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Usage:    "Path to the CSV file",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					return manager.ImportCompanyBindings(c.String("file"))
				},
			},
			{
				Name:  "queue",
				Usage: "Queue an import job for every registered game server",
				Action: func(c *cli.Context) error {
					if err := redis_client.Connect(); err != nil {
						return err
					}

					for _, gameServer := range manager.GetRegisteredGameServers() {
						for _, dimension := range gameServer.Dimensions {
							err := PublishImportJob(ImportJob{
								GameServerRef: gameServer.Identifier,
								Dimension:     dimension,
							})
							if err != nil {
								return err
							}

							log.Info().
								Str("gameserver", gameServer.Identifier).
								Str("dimension", dimension).
								Msg("Queued import job")
						}
					}

					return nil
				},
			},
			{
				Name:  "consumer",
				Usage: "Run the snapshot import queue consumers",
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}
					if err := redis_client.Connect(); err != nil {
						return err
					}

					if err := StartConsumers(); err != nil {
						return err
					}

					select {}
				},
			},
			{
				Name:  "inspect",
				Usage: "Fetch a snapshot and pretty print it without importing",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "gameserver",
						Usage:    "Identifier of the registered game server",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "dimension",
						Usage:    "Dimension to fetch",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					gameServer, err := manager.GetGameServer(c.String("gameserver"))
					if err != nil {
						return err
					}

					snapshot, err := manager.FetchSnapshot(gameServer, c.String("dimension"))
					if err != nil {
						return err
					}

					pretty.Println(snapshot)

					return nil
				},
			},
		},
	}
}
