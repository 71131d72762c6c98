package requests

type ScheduleRequest struct {
	Bursts  []int `json:"bursts"`
	Quantum int   `json:"quantum,omitempty"`
}
