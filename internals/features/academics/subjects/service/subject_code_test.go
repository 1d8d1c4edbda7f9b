package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseSubjectCode(t *testing.T) {
	tests := []struct {
		name     string
		standard string
		want     string
	}{
		{"Social Science", "10", "SS-10"},
		{"Mathematics", "8", "M-8"},
		{"english", "5", "E-5"},
		{"Ilmu Pengetahuan Alam", "7", "IPA-7"},
		{"Mathematics", "", "M"},
		{"", "10", "SUB-10"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BaseSubjectCode(tt.name, tt.standard), "%q + %q", tt.name, tt.standard)
	}
}

func TestNextAvailableCode(t *testing.T) {
	taken := map[string]bool{}
	assert.Equal(t, "SS-10", NextAvailableCode("SS-10", taken))

	taken["SS-10"] = true
	assert.Equal(t, "SS-10-2", NextAvailableCode("SS-10", taken))

	taken["SS-10-2"] = true
	taken["SS-10-3"] = true
	assert.Equal(t, "SS-10-4", NextAvailableCode("SS-10", taken))
}
