package manager

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/trackmap/trackmap/pkg/database"
	"github.com/trackmap/trackmap/pkg/dataimporter/datasets"
	"github.com/trackmap/trackmap/pkg/dataimporter/formats/mapsnapshot"
	"github.com/trackmap/trackmap/pkg/tdf"
	"github.com/trackmap/trackmap/pkg/transforms"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const snapshotFetchTimeout = 2 * time.Minute

var ErrStaleSnapshot = errors.New("snapshot is older than the last imported one")

// ImportAllGameServers pulls every dimension of every registered game server.
func ImportAllGameServers() error {
	for _, gameServer := range GetRegisteredGameServers() {
		for _, dimension := range gameServer.Dimensions {
			err := ImportGameServer(gameServer, dimension)
			if errors.Is(err, ErrStaleSnapshot) {
				log.Info().
					Str("gameserver", gameServer.Identifier).
					Str("dimension", dimension).
					Msg("Skipping stale snapshot")
				continue
			}
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// ImportGameServer fetches one dimension's map snapshot and upserts its
// records. Snapshots whose sequence is not newer than the last applied one
// are rejected with ErrStaleSnapshot so an out of order fetch can never
// overwrite fresher data.
func ImportGameServer(gameServer datasets.GameServer, dimension string) error {
	log.Info().
		Str("gameserver", gameServer.Identifier).
		Str("dimension", dimension).
		Msg("Importing map snapshot")

	snapshot, err := FetchSnapshot(gameServer, dimension)
	if err != nil {
		return err
	}

	lastSequence, err := lastImportedSequence(gameServer.Identifier, dimension)
	if err != nil {
		return err
	}

	if !SnapshotSupersedes(snapshot.Sequence, lastSequence) {
		return ErrStaleSnapshot
	}

	datasource := &tdf.DataSource{
		OriginalFormat: "mapsnapshot",
		Provider:       gameServer.Provider.Name,
		Dataset:        gameServer.Identifier,
		Identifier:     fmt.Sprintf("%d", snapshot.Sequence),
	}

	converter := mapsnapshot.NewConverter(gameServer.Identifier, dimension, datasource)

	importPool := pool.New().WithMaxGoroutines(4).WithErrors()

	importPool.Go(func() error {
		var records []interface{}
		for _, snapshotRoute := range snapshot.Routes {
			route := converter.Route(snapshotRoute)
			transforms.Transform(route)
			records = append(records, route)
		}

		return upsertRecords("routes", records, recordIdentifier)
	})

	importPool.Go(func() error {
		var records []interface{}
		for _, snapshotStation := range snapshot.Stations {
			station := converter.Station(snapshotStation)
			transforms.Transform(station)
			records = append(records, station)
		}

		return upsertRecords("stations", records, recordIdentifier)
	})

	importPool.Go(func() error {
		var records []interface{}
		for _, snapshotPlatform := range snapshot.Platforms {
			platform := converter.Platform(snapshotPlatform)
			transforms.Transform(platform)
			records = append(records, platform)
		}

		return upsertRecords("platforms", records, recordIdentifier)
	})

	importPool.Go(func() error {
		var records []interface{}
		for _, snapshotDepot := range snapshot.Depots {
			depot := converter.Depot(snapshotDepot)
			transforms.Transform(depot)
			records = append(records, depot)
		}

		return upsertRecords("depots", records, recordIdentifier)
	})

	if err := importPool.Wait(); err != nil {
		return err
	}

	err = recordImportRun(gameServer.Identifier, dimension, snapshot)
	if err != nil {
		return err
	}

	log.Info().
		Str("gameserver", gameServer.Identifier).
		Str("dimension", dimension).
		Int64("sequence", snapshot.Sequence).
		Int("routes", len(snapshot.Routes)).
		Int("stations", len(snapshot.Stations)).
		Int("platforms", len(snapshot.Platforms)).
		Int("depots", len(snapshot.Depots)).
		Msg("Imported map snapshot")

	return nil
}

// SnapshotSupersedes reports whether a snapshot with the given sequence should
// replace data imported at lastSequence. A sequence of zero from the server
// means it does not track sequences, so every snapshot is applied.
func SnapshotSupersedes(sequence int64, lastSequence int64) bool {
	if sequence == 0 {
		return true
	}

	return sequence > lastSequence
}

// FetchSnapshot downloads and decodes one dimension's map snapshot, retrying
// transient failures with exponential backoff.
func FetchSnapshot(gameServer datasets.GameServer, dimension string) (*mapsnapshot.Snapshot, error) {
	snapshotURL := fmt.Sprintf("%s/map/%s.json", gameServer.Endpoint, dimension)

	var snapshot *mapsnapshot.Snapshot

	operation := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), snapshotFetchTimeout)
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, snapshotURL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("snapshot request returned %s", resp.Status)
		}

		snapshot, err = mapsnapshot.Decode(resp.Body)
		return err
	}

	err := backoff.Retry(operation, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5))
	if err != nil {
		return nil, err
	}

	if snapshot.Dimension == "" {
		snapshot.Dimension = dimension
	}

	return snapshot, nil
}

func lastImportedSequence(gameServerRef string, dimension string) (int64, error) {
	importRunsCollection := database.GetCollection("import_runs")

	opts := options.FindOne().SetSort(bson.D{{Key: "sequence", Value: -1}})

	var lastRun datasets.ImportRun
	err := importRunsCollection.FindOne(context.Background(), bson.M{
		"gameserverref": gameServerRef,
		"dimension":     dimension,
	}, opts).Decode(&lastRun)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return lastRun.Sequence, nil
}

func recordImportRun(gameServerRef string, dimension string, snapshot *mapsnapshot.Snapshot) error {
	importRunsCollection := database.GetCollection("import_runs")

	_, err := importRunsCollection.InsertOne(context.Background(), datasets.ImportRun{
		GameServerRef: gameServerRef,
		Dimension:     dimension,
		Sequence:      snapshot.Sequence,

		CreationDateTime: time.Now(),

		RouteCount:    len(snapshot.Routes),
		StationCount:  len(snapshot.Stations),
		PlatformCount: len(snapshot.Platforms),
		DepotCount:    len(snapshot.Depots),
	})

	return err
}

func recordIdentifier(record interface{}) string {
	switch typed := record.(type) {
	case *tdf.Route:
		return typed.PrimaryIdentifier
	case *tdf.Station:
		return typed.PrimaryIdentifier
	case *tdf.Platform:
		return typed.PrimaryIdentifier
	case *tdf.Depot:
		return typed.PrimaryIdentifier
	}

	return ""
}

func upsertRecords(collectionName string, records []interface{}, identifier func(interface{}) string) error {
	if len(records) == 0 {
		return nil
	}

	var operations []mongo.WriteModel

	for _, record := range records {
		primaryIdentifier := identifier(record)
		if primaryIdentifier == "" {
			continue
		}

		bsonRep, err := bson.Marshal(bson.M{"$set": record})
		if err != nil {
			return err
		}

		updateModel := mongo.NewUpdateOneModel()
		updateModel.SetFilter(bson.M{"primaryidentifier": primaryIdentifier})
		updateModel.SetUpdate(bsonRep)
		updateModel.SetUpsert(true)

		operations = append(operations, updateModel)
	}

	collection := database.GetCollection(collectionName)
	_, err := collection.BulkWrite(context.Background(), operations, &options.BulkWriteOptions{})

	return err
}
