package source

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    String
		wantErr bool
	}{
		{name: "string", input: `"12345"`, want: "12345"},
		{name: "number", input: `12345`, want: "12345"},
		{name: "null", input: `null`, want: ""},
		{name: "object", input: `{"a":1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v struct {
				Value String `json:"value"`
			}
			err := json.Unmarshal([]byte(`{"value":`+tt.input+`}`), &v)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Value)
		})
	}
}

func TestResult(t *testing.T) {
	var empty Result
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, "", empty.Get("razon_social"))

	r := Result{}
	r.Set("razon_social", " EMPRESA ")
	r.Set("dv", "  ")
	assert.False(t, r.IsEmpty())
	assert.Equal(t, "EMPRESA", r.Get("razon_social"))
	assert.NotContains(t, r, "dv")
}

func TestUnavailableError(t *testing.T) {
	cause := errors.New("connection refused")
	err := error(NewUnavailable("datos.gov.co", cause))

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "datos.gov.co")

	var unavailable *UnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "datos.gov.co", unavailable.Source)
}
