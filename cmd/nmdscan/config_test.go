package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidConfigKey(t *testing.T) {
	for _, key := range configKeys {
		assert.True(t, validConfigKey(key), key)
	}
	assert.False(t, validConfigKey("annotate.tabel"))
	assert.False(t, validConfigKey(""))
}

func TestRunConfigSetRejectsUnknownKey(t *testing.T) {
	err := runConfigSet("annotate.tabel", "2")
	assert.ErrorContains(t, err, `unknown config key "annotate.tabel"`)
	assert.ErrorContains(t, err, "annotate.table")
}

func TestCoerceValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"true", true},
		{"yes", true},
		{"on", true},
		{"false", false},
		{"no", false},
		{"off", false},
		{"2", "2"},
		{"nmd.db", "nmd.db"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, coerceValue(tt.in), tt.in)
	}
}
