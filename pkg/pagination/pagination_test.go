package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		skip    string
		limit   string
		want    Params
		wantErr string
	}{
		{name: "defaults", want: Params{Skip: 0, Limit: 20}},
		{name: "explicit", skip: "40", limit: "100", want: Params{Skip: 40, Limit: 100}},
		{name: "limit lower bound", limit: "1", want: Params{Limit: 1}},
		{name: "limit zero", limit: "0", wantErr: "limit must be between 1 and 100"},
		{name: "limit too large", limit: "101", wantErr: "limit must be between 1 and 100"},
		{name: "negative skip", skip: "-1", wantErr: "skip must be greater than or equal to 0"},
		{name: "non numeric", skip: "abc", wantErr: "skip must be an integer"},
		{name: "non numeric limit", limit: "ten", wantErr: "limit must be an integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.skip, tt.limit)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBounded(t *testing.T) {
	n, err := ParseBounded("days", "", 30, 1, 365)
	require.NoError(t, err)
	assert.Equal(t, 30, n)

	n, err = ParseBounded("days", "365", 30, 1, 365)
	require.NoError(t, err)
	assert.Equal(t, 365, n)

	_, err = ParseBounded("days", "0", 30, 1, 365)
	assert.EqualError(t, err, "days must be between 1 and 365")

	_, err = ParseBounded("days", "366", 30, 1, 365)
	assert.Error(t, err)

	_, err = ParseBounded("days", "1.5", 30, 1, 365)
	assert.EqualError(t, err, "days must be an integer")
}
