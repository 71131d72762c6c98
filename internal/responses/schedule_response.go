package responses

type ProcessResponse struct {
	ProcessId   int `json:"process_id"`
	Burst       int `json:"burst"`
	WaitingTime int `json:"waiting_time"`
}
type ScheduleResponse struct {
	Algorithm          string            `json:"algorithm"`
	TotalTime          int               `json:"total_time"`
	AverageWaitingTime float64           `json:"average_waiting_time"`
	Details            []ProcessResponse `json:"details"`
}
