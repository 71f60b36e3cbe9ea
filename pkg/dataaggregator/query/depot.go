package query

import "go.mongodb.org/mongo-driver/bson"

type Depot struct {
	PrimaryIdentifier string
}

func (d *Depot) ToBson() bson.M {
	if d.PrimaryIdentifier != "" {
		return bson.M{"primaryidentifier": d.PrimaryIdentifier}
	}

	return nil
}
