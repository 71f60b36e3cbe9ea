package query

import "go.mongodb.org/mongo-driver/bson"

type RailSystem struct {
	Identifier string
}

func (r *RailSystem) ToBson() bson.M {
	if r.Identifier != "" {
		return bson.M{"identifier": r.Identifier}
	}

	return nil
}
