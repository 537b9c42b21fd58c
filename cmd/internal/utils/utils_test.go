package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNITValid(t *testing.T) {
	tests := []struct {
		nit  string
		want bool
	}{
		{nit: "90012345", want: true},
		{nit: "900123456", want: true},
		{nit: "9001234567", want: true},
		{nit: "9001234", want: false},
		{nit: "90012345678", want: false},
		{nit: "900-123456", want: false},
		{nit: "900 123456", want: false},
		{nit: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.nit, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNITValid(tt.nit))
		})
	}
}

func TestSanitize(t *testing.T) {
	name := "  EMPRESA  "
	v := struct {
		NIT     string
		Name    *string
		Missing *string
		Tags    []string
		Count   int
	}{
		NIT:  " 900123456\n",
		Name: &name,
		Tags: []string{" a ", "b "},
	}

	Sanitize(&v)

	assert.Equal(t, "900123456", v.NIT)
	assert.Equal(t, "EMPRESA", *v.Name)
	assert.Nil(t, v.Missing)
	assert.Equal(t, []string{"a", "b"}, v.Tags)
}

func TestSanitize_PanicsOnNonPointer(t *testing.T) {
	assert.Panics(t, func() {
		Sanitize(struct{ NIT string }{NIT: "1"})
	})
}
