package nmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateStop(t *testing.T) {
	tests := []struct {
		name      string
		protein   string
		wantIdx   int
		wantNtPos int64
	}{
		{"stop at start", "*MAL", 0, 3},
		{"stop mid-sequence", "MA*L", 2, 9},
		{"first of several stops", "MA*L*", 2, 9},
		{"stop at end", "MAL*", 3, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ntPos, err := LocateStop(tt.protein)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIdx, idx)
			assert.Equal(t, tt.wantNtPos, ntPos)
		})
	}
}

func TestLocateStopMissing(t *testing.T) {
	_, _, err := LocateStop("MALKV")
	assert.ErrorIs(t, err, ErrNoStopCodon)

	_, _, err = LocateStop("")
	assert.ErrorIs(t, err, ErrNoStopCodon)
}
