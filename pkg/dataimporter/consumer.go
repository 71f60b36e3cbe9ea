package dataimporter

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/adjust/rmq/v5"
	"github.com/rs/zerolog/log"
	"github.com/trackmap/trackmap/pkg/dataimporter/manager"
	"github.com/trackmap/trackmap/pkg/redis_client"
)

const numConsumers = 2
const batchSize = 20

func StartConsumers() error {
	log.Info().Msg("Starting snapshot import consumers")

	queue, err := redis_client.QueueConnection.OpenQueue(importQueueName)
	if err != nil {
		return err
	}
	if err := queue.StartConsuming(numConsumers*batchSize, 1*time.Second); err != nil {
		return err
	}

	for i := 0; i < numConsumers; i++ {
		_, err := queue.AddBatchConsumer(fmt.Sprintf("%s-%d", importQueueName, i), batchSize, 2*time.Second, NewBatchConsumer(i))
		if err != nil {
			return err
		}
	}

	return nil
}

type BatchConsumer struct {
	id int
}

func NewBatchConsumer(id int) *BatchConsumer {
	return &BatchConsumer{id: id}
}

func (consumer *BatchConsumer) Consume(batch rmq.Deliveries) {
	for _, payload := range batch.Payloads() {
		var job ImportJob
		if err := json.Unmarshal([]byte(payload), &job); err != nil {
			log.Error().Err(err).Msg("Failed to decode import job")
			continue
		}

		gameServer, err := manager.GetGameServer(job.GameServerRef)
		if err != nil {
			log.Error().Err(err).Str("gameserver", job.GameServerRef).Msg("Unknown game server in import job")
			continue
		}

		err = manager.ImportGameServer(gameServer, job.Dimension)
		if errors.Is(err, manager.ErrStaleSnapshot) {
			log.Info().
				Str("gameserver", job.GameServerRef).
				Str("dimension", job.Dimension).
				Msg("Skipping stale snapshot")
			continue
		}
		if err != nil {
			log.Error().Err(err).
				Str("gameserver", job.GameServerRef).
				Str("dimension", job.Dimension).
				Msg("Failed to import snapshot")
		}
	}

	if ackErrors := batch.Ack(); len(ackErrors) > 0 {
		for _, err := range ackErrors {
			log.Error().Err(err).Msg("Failed to ack import job")
		}
	}
}
