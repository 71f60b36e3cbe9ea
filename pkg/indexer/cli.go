package indexer

import (
	"github.com/rs/zerolog/log"
	"github.com/trackmap/trackmap/pkg/database"
	"github.com/trackmap/trackmap/pkg/elastic_client"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "indexer",
		Usage: "Indexes data into Elasticsearch",
		Subcommands: []*cli.Command{
			{
				Name:  "stations",
				Usage: "do an index of the Stations",
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}
					if err := elastic_client.Connect(true); err != nil {
						return err
					}

					IndexStations()

					elastic_client.WaitUntilQueueEmpty()

					log.Info().Msg("Index queue emptied")

					return nil
				},
			},
			{
				Name:  "routes",
				Usage: "do an index of the Routes",
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}
					if err := elastic_client.Connect(true); err != nil {
						return err
					}

					IndexRoutes()

					elastic_client.WaitUntilQueueEmpty()

					log.Info().Msg("Index queue emptied")

					return nil
				},
			},
		},
	}
}
