package transforms

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

var transforms []*TransformDefinition

// SetupClient loads transform definitions from data/transforms/. The
// directory is optional - most deployments run without any overrides.
func SetupClient() {
	transforms = nil

	err := filepath.Walk("data/transforms/",
		func(path string, fileInfo os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if fileInfo.IsDir() || filepath.Ext(path) != ".yaml" {
				return nil
			}

			log.Debug().Str("path", path).Msg("Loading transforms file")

			transformYaml, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			decoder := yaml.NewDecoder(bytes.NewReader(transformYaml))

			for {
				var definition TransformDefinition
				if decoder.Decode(&definition) != nil {
					break
				}

				transforms = append(transforms, &definition)
			}

			return nil
		})
	if err != nil {
		log.Info().Msg("No transforms directory loaded")
	}
}

// RegisterDefinition adds a definition directly, bypassing the yaml files.
func RegisterDefinition(definition *TransformDefinition) {
	transforms = append(transforms, definition)
}
