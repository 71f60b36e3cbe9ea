package query

import "go.mongodb.org/mongo-driver/bson"

type Station struct {
	PrimaryIdentifier string
}

func (s *Station) ToBson() bson.M {
	if s.PrimaryIdentifier != "" {
		return bson.M{"primaryidentifier": s.PrimaryIdentifier}
	}

	return nil
}
