package util

import "schedsim/internal/core"

func CalculateAverageWait(table core.Table) float64 {
	if len(table) == 0 {
		return 0
	}

	var waitSum float64
	for _, proc := range table {
		waitSum += float64(proc.Wait)
	}
	return waitSum / float64(len(table))
}
