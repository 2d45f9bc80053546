package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrequencyMHz_ToIntermediate(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  int64
	}{
		{name: "valid MHz frequency", input: 14.320, want: 14320000},
		{name: "valid MHz frequency with decimals", input: 7.074, want: 7074000},
		{name: "whole number MHz", input: 144, want: 144000000},
		{name: "very low frequency", input: 0.137, want: 137000},
		{name: "high VHF frequency", input: 146.520, want: 146520000},
		{name: "frequency requiring rounding", input: 14.3205, want: 14320500},
		{name: "zero", input: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FrequencyMHz{}.ToIntermediate(tt.input))
		})
	}
}

func TestFrequencyMHz_FromIntermediate(t *testing.T) {
	tests := []struct {
		name    string
		input   int64
		want    float64
		wantErr bool
	}{
		{name: "valid Hz frequency", input: 14320000, want: 14.32},
		{name: "whole MHz", input: 144000000, want: 144},
		{name: "zero frequency", input: 0, want: 0},
		{name: "negative frequency", input: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FrequencyMHz{}.FromIntermediate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestFrequencyRoundTrip(t *testing.T) {
	testCases := []float64{14.320, 7.074, 144.520, 50.313, 1.840}

	for _, freq := range testCases {
		hz := FrequencyMHz{}.ToIntermediate(freq)
		mhz, err := FrequencyMHz{}.FromIntermediate(hz)
		require.NoError(t, err)
		assert.InDelta(t, freq, mhz, 1e-9)
	}
}
