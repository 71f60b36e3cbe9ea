package dataimporter

import (
	"encoding/json"

	"github.com/trackmap/trackmap/pkg/redis_client"
)

const importQueueName = "snapshot-import-queue"

// ImportJob asks a consumer to import one dimension of one game server.
type ImportJob struct {
	GameServerRef string
	Dimension     string
}

func PublishImportJob(job ImportJob) error {
	queue, err := redis_client.QueueConnection.OpenQueue(importQueueName)
	if err != nil {
		return err
	}

	jobJSON, err := json.Marshal(job)
	if err != nil {
		return err
	}

	return queue.PublishBytes(jobJSON)
}
