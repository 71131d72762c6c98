package schedulers

import (
	"schedsim/internal/core"
	"schedsim/internal/responses"
	"schedsim/internal/util"
)

// GenerateResponse assembles the API response for a finished run. The
// original bursts are passed alongside the table because BurstLeft is zero
// after a scheduler terminates.
func GenerateResponse(algorithm string, bursts []int, table core.Table, totalTime int) responses.ScheduleResponse {
	details := make([]responses.ProcessResponse, len(table))
	for i, proc := range table {
		details[i] = responses.ProcessResponse{
			ProcessId:   proc.Pid,
			Burst:       bursts[i],
			WaitingTime: proc.Wait,
		}
	}

	return responses.ScheduleResponse{
		Algorithm:          algorithm,
		TotalTime:          totalTime,
		AverageWaitingTime: util.CalculateAverageWait(table),
		Details:            details,
	}
}
