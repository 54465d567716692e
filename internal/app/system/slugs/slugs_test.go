package slugs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Manipur", "manipur"},
		{"Karbi Anglong", "karbi-anglong"},
		{"  Dima  Hasao ", "dima-hasao"},
		{"Lakhimpur (North)", "lakhimpur-north"},
		{"Ri-Bhoi", "ri-bhoi"},
		{"Café Région", "cafe-region"},
		{"--", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, From(tt.in), "From(%q)", tt.in)
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("majuli"))
	assert.True(t, Valid("east-khasi-hills"))
	assert.False(t, Valid("Majuli"))
	assert.False(t, Valid("east khasi hills"))
	assert.False(t, Valid(""))
}
