package global

import (
	"github.com/trackmap/trackmap/pkg/dataaggregator"
	"github.com/trackmap/trackmap/pkg/dataaggregator/source/databaselookup"
	"github.com/trackmap/trackmap/pkg/dataaggregator/source/variants"
)

func Setup() {
	dataaggregator.GlobalAggregator = dataaggregator.Aggregator{}

	dataaggregator.GlobalAggregator.RegisterSource(databaselookup.Source{})

	variantsSource := &variants.Source{}
	variantsSource.Setup()
	dataaggregator.GlobalAggregator.RegisterSource(variantsSource)
}
