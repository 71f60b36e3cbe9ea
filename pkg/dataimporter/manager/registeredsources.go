package manager

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/trackmap/trackmap/pkg/dataimporter/datasets"
	"gopkg.in/yaml.v3"
)

func GetRegisteredGameServers() []datasets.GameServer {
	var registeredGameServers []datasets.GameServer

	err := filepath.Walk("data/datasources/",
		func(path string, fileInfo os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if fileInfo.IsDir() || filepath.Ext(path) != ".yaml" {
				return nil
			}

			log.Debug().Str("path", path).Msg("Loading datasources file")

			datasourceYaml, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			decoder := yaml.NewDecoder(bytes.NewReader(datasourceYaml))

			for {
				var gameServer datasets.GameServer
				if decoder.Decode(&gameServer) != nil {
					break
				}

				registeredGameServers = append(registeredGameServers, gameServer)
			}

			return nil
		})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load datasources directory")
	}

	return registeredGameServers
}

func GetGameServer(identifier string) (datasets.GameServer, error) {
	for _, gameServer := range GetRegisteredGameServers() {
		if gameServer.Identifier == identifier {
			return gameServer, nil
		}
	}

	return datasets.GameServer{}, errors.New("no registered game server with that identifier")
}
