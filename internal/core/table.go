package core

import "errors"

// ErrNoProcesses is returned when a table is requested for an empty burst list.
var ErrNoProcesses = errors.New("no processes to schedule")

// PCB is the scheduling state of one process. Pid is its position in the
// original burst list and never changes.
type PCB struct {
	Pid       int
	BurstLeft int
	Wait      int
}

// Table holds one PCB per process, in arrival order.
type Table []PCB

// NewTable builds a table from a list of CPU bursts. Every process starts
// with zero accumulated wait.
func NewTable(bursts []int) (Table, error) {
	if len(bursts) == 0 {
		return nil, ErrNoProcesses
	}

	table := make(Table, len(bursts))
	for i, burst := range bursts {
		table[i] = PCB{Pid: i, BurstLeft: burst}
	}
	return table, nil
}

// Run executes process current for up to amount time units. The process runs
// for min(amount, BurstLeft), and every other process that still has burst
// left is charged that run time as wait. This is the only operation that
// mutates a table; the schedulers are sequences of Run calls.
//
// An out-of-range index, a non-positive amount, or a finished target is a
// no-op.
func (t Table) Run(current, amount int) {
	if current < 0 || current >= len(t) || amount <= 0 {
		return
	}
	if t[current].BurstLeft <= 0 {
		return
	}

	runTime := amount
	if t[current].BurstLeft < runTime {
		runTime = t[current].BurstLeft
	}

	t[current].BurstLeft -= runTime

	for i := range t {
		if i == current {
			continue
		}
		if t[i].BurstLeft > 0 {
			t[i].Wait += runTime
		}
	}
}

// HasWork reports whether any process still has burst left.
func (t Table) HasWork() bool {
	for i := range t {
		if t[i].BurstLeft > 0 {
			return true
		}
	}
	return false
}
