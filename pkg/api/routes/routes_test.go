package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trackmap/trackmap/pkg/tdf"
)

func TestGroupRoutesByTitle(t *testing.T) {
	routes := []*tdf.Route{
		{PrimaryIdentifier: "line-1-up", DisplayName: "Line 1|Up", Color: 0xFF0000, TransportMode: tdf.TransportModeMetro},
		{PrimaryIdentifier: "line-1-down", DisplayName: "Line 1|Down", Color: 0xFF0000, TransportMode: tdf.TransportModeMetro},
		{PrimaryIdentifier: "line-2", DisplayName: "Line 2||Express", Color: 0x00FF00, TransportMode: tdf.TransportModeTrain},
	}

	groups := groupRoutesByTitle(routes)

	assert.Len(t, groups, 2)

	assert.Equal(t, "Line 1", groups[0].Title)
	assert.Equal(t, 2, groups[0].VariantCount)
	assert.Equal(t, []string{"line-1-up", "line-1-down"}, groups[0].VariantIdentifiers)
	assert.Equal(t, "#ff0000", groups[0].ColorHex)

	assert.Equal(t, "Line 2", groups[1].Title)
	assert.Equal(t, 1, groups[1].VariantCount)
}

func TestGroupRoutesByTitlePreservesFirstSeenOrder(t *testing.T) {
	routes := []*tdf.Route{
		{PrimaryIdentifier: "b", DisplayName: "Beta"},
		{PrimaryIdentifier: "a", DisplayName: "Alpha"},
		{PrimaryIdentifier: "b2", DisplayName: "Beta|Branch"},
	}

	groups := groupRoutesByTitle(routes)

	assert.Equal(t, "Beta", groups[0].Title)
	assert.Equal(t, "Alpha", groups[1].Title)
}

func TestGroupCompaniesByName(t *testing.T) {
	companies := []*tdf.Company{
		{Identifier: "acme-operator", Name: "ACME", Role: tdf.CompanyRoleOperator, SystemRefs: []string{"sys-1"}},
		{Identifier: "acme-builder", Name: "ACME", Role: tdf.CompanyRoleBuilder, SystemRefs: []string{"sys-2"}},
		{Identifier: "northern", Name: "Northern Rail Co", Role: tdf.CompanyRoleOperator},
	}

	groups := groupCompaniesByName(companies)

	assert.Len(t, groups, 2)
	assert.Equal(t, "ACME", groups[0].Name)
	assert.Len(t, groups[0].Bindings, 2)
	assert.Equal(t, "Northern Rail Co", groups[1].Name)
	assert.Len(t, groups[1].Bindings, 1)
}
