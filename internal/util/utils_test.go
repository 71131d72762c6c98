package util

import (
	"math"
	"testing"

	"schedsim/internal/core"
)

func TestCalculateAverageWait(t *testing.T) {
	tests := []struct {
		name  string
		table core.Table
		want  float64
	}{
		{
			name:  "three processes",
			table: core.Table{{Pid: 0, Wait: 0}, {Pid: 1, Wait: 5}, {Pid: 2, Wait: 8}},
			want:  13.0 / 3.0,
		},
		{
			name:  "single process",
			table: core.Table{{Pid: 0, Wait: 7}},
			want:  7,
		},
		{
			name:  "empty table",
			table: core.Table{},
			want:  0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateAverageWait(tt.table); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CalculateAverageWait() = %v, want %v", got, tt.want)
			}
		})
	}
}
