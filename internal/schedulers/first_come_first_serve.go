package schedulers

import "schedsim/internal/core"

// FirstComeFirstServe runs every process to completion in pid order and
// returns the total elapsed time. A process is never revisited once passed,
// so elapsed time equals the sum of the initial bursts.
func FirstComeFirstServe(table core.Table) int {
	totalTime := 0

	for i := range table {
		remaining := table[i].BurstLeft
		if remaining <= 0 {
			continue
		}
		table.Run(i, remaining)
		totalTime += remaining
	}

	return totalTime
}
