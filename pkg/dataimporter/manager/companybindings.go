package manager

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/trackmap/trackmap/pkg/database"
	"github.com/trackmap/trackmap/pkg/dataimporter/formats/companycsv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ImportCompanyBindings loads an admin exported company bindings CSV and
// upserts each row into the companies collection.
func ImportCompanyBindings(filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	records, err := companycsv.Parse(file)
	if err != nil {
		return err
	}

	var operations []mongo.WriteModel

	for _, record := range records {
		company := record.ToCompany()

		bsonRep, err := bson.Marshal(bson.M{"$set": company})
		if err != nil {
			return err
		}

		updateModel := mongo.NewUpdateOneModel()
		updateModel.SetFilter(bson.M{"identifier": company.Identifier})
		updateModel.SetUpdate(bsonRep)
		updateModel.SetUpsert(true)

		operations = append(operations, updateModel)
	}

	if len(operations) == 0 {
		log.Info().Str("file", filePath).Msg("No company bindings to import")
		return nil
	}

	companiesCollection := database.GetCollection("companies")
	_, err = companiesCollection.BulkWrite(context.Background(), operations, &options.BulkWriteOptions{})
	if err != nil {
		return err
	}

	log.Info().Int("companies", len(operations)).Msg("Imported company bindings")

	return nil
}
