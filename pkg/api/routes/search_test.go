package routes

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trackmap/trackmap/pkg/util"
)

func TestSearchQueryBody(t *testing.T) {
	var body struct {
		Query struct {
			MultiMatch struct {
				Query     string   `json:"query"`
				Fields    []string `json:"fields"`
				Fuzziness string   `json:"fuzziness"`
			} `json:"multi_match"`
		} `json:"query"`
		Size int `json:"size"`
	}

	require.NoError(t, json.Unmarshal(searchQueryBody(`Central "Station"`), &body))

	assert.Equal(t, `Central "Station"`, body.Query.MultiMatch.Query)
	assert.Equal(t, []string{"Name", "DisplayName"}, body.Query.MultiMatch.Fields)
	assert.Equal(t, "AUTO", body.Query.MultiMatch.Fuzziness)
	assert.Equal(t, 25, body.Size)
}

func TestSearchQueryBodyTruncatedRune(t *testing.T) {
	// the length trim is byte based so a multibyte name can be cut mid-rune
	searchTerm := util.TrimString(strings.Repeat("駅", 30), 64)

	assert.True(t, json.Valid(searchQueryBody(searchTerm)))
}
