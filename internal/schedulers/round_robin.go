package schedulers

import "schedsim/internal/core"

// nextRunnable scans circularly from current+1 and returns the index of the
// first process with burst left. When current is the sole survivor the scan
// wraps all the way around and returns current again. The second return is
// false once every process has finished.
func nextRunnable(table core.Table, current int) (int, bool) {
	if len(table) == 0 {
		return 0, false
	}

	start := (current + 1) % len(table)
	for offset := 0; offset < len(table); offset++ {
		idx := (start + offset) % len(table)
		if table[idx].BurstLeft > 0 {
			return idx, true
		}
	}
	return 0, false
}

// RoundRobin runs the table with a fixed time quantum, cycling through
// runnable processes in ascending pid order starting from the first one.
// Returns the total elapsed time, or 0 when the quantum is non-positive or
// nothing is runnable.
func RoundRobin(table core.Table, quantum int) int {
	if len(table) == 0 || quantum <= 0 || !table.HasWork() {
		return 0
	}

	current := 0
	for i := range table {
		if table[i].BurstLeft > 0 {
			current = i
			break
		}
	}

	totalTime := 0
	for {
		if remaining := table[current].BurstLeft; remaining > 0 {
			runTime := quantum
			if remaining < runTime {
				runTime = remaining
			}
			table.Run(current, runTime)
			totalTime += runTime
		}

		next, ok := nextRunnable(table, current)
		if !ok {
			break
		}
		current = next
	}

	return totalTime
}
