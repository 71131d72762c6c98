package schedulers

import (
	"testing"

	"schedsim/internal/core"
)

func TestFirstComeFirstServe(t *testing.T) {
	tests := []struct {
		name          string
		bursts        []int
		wantTotalTime int
		wantWaits     []int
	}{
		{
			name:          "three processes",
			bursts:        []int{5, 3, 8},
			wantTotalTime: 16,
			wantWaits:     []int{0, 5, 8},
		},
		{
			name:          "single process never waits",
			bursts:        []int{9},
			wantTotalTime: 9,
			wantWaits:     []int{0},
		},
		{
			name:          "zero burst process is skipped and never charged",
			bursts:        []int{4, 0, 2},
			wantTotalTime: 6,
			wantWaits:     []int{0, 0, 4},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := core.NewTable(tt.bursts)
			if err != nil {
				t.Fatalf("NewTable() error = %v", err)
			}

			if got := FirstComeFirstServe(table); got != tt.wantTotalTime {
				t.Errorf("FirstComeFirstServe() = %d, want %d", got, tt.wantTotalTime)
			}
			for i, proc := range table {
				if proc.BurstLeft != 0 {
					t.Errorf("P%d BurstLeft = %d, want 0", proc.Pid, proc.BurstLeft)
				}
				if proc.Wait != tt.wantWaits[i] {
					t.Errorf("P%d Wait = %d, want %d", proc.Pid, proc.Wait, tt.wantWaits[i])
				}
			}
		})
	}
}

// The second of two processes always waits exactly the first one's burst,
// regardless of which burst is longer.
func TestFirstComeFirstServe_SecondWaitsForFirst(t *testing.T) {
	tests := []struct {
		name   string
		bursts []int
	}{
		{"equal bursts", []int{2, 2}},
		{"short before long", []int{1, 9}},
		{"long before short", []int{7, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := core.NewTable(tt.bursts)
			if err != nil {
				t.Fatalf("NewTable() error = %v", err)
			}

			FirstComeFirstServe(table)
			if table[1].Wait != tt.bursts[0] {
				t.Errorf("P1 Wait = %d, want %d", table[1].Wait, tt.bursts[0])
			}
		})
	}
}
