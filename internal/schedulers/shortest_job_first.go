package schedulers

import "schedsim/internal/core"

// ShortestJobFirst repeatedly picks the unfinished process with the smallest
// remaining burst (pid order breaks ties) and runs it to completion.
// Non-preemptive: all processes are present from time zero, so the pick
// order is decided entirely by the initial bursts.
func ShortestJobFirst(table core.Table) int {
	totalTime := 0

	for {
		shortest := -1
		for i := range table {
			if table[i].BurstLeft <= 0 {
				continue
			}
			if shortest == -1 || table[i].BurstLeft < table[shortest].BurstLeft {
				shortest = i
			}
		}
		if shortest == -1 {
			break
		}

		remaining := table[shortest].BurstLeft
		table.Run(shortest, remaining)
		totalTime += remaining
	}

	return totalTime
}
