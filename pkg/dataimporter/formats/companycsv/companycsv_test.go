package companycsv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trackmap/trackmap/pkg/tdf"
)

const testCSV = `identifier,name,role,systems
acme-rail,Acme Rail Co,operator,emerald-overworld-sys1;emerald-overworld-sys2
bobco,BobCo Construction,Builder,emerald-overworld-sys1
solo,Solo Lines,,
`

func TestParse(t *testing.T) {
	records, err := Parse(strings.NewReader(testCSV))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "acme-rail", records[0].Identifier)
	assert.Equal(t, "Acme Rail Co", records[0].Name)
}

func TestToCompany(t *testing.T) {
	records, err := Parse(strings.NewReader(testCSV))
	require.NoError(t, err)

	operator := records[0].ToCompany()
	assert.Equal(t, tdf.CompanyRoleOperator, operator.Role)
	assert.Equal(t, []string{"emerald-overworld-sys1", "emerald-overworld-sys2"}, operator.SystemRefs)

	builder := records[1].ToCompany()
	assert.Equal(t, tdf.CompanyRole(tdf.CompanyRoleBuilder), builder.Role)
	assert.Equal(t, []string{"emerald-overworld-sys1"}, builder.SystemRefs)

	// blank role defaults to operator, blank systems stays empty
	solo := records[2].ToCompany()
	assert.Equal(t, tdf.CompanyRoleOperator, solo.Role)
	assert.Empty(t, solo.SystemRefs)
}
