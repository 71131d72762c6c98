package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"schedsim/internal/core"
)

// WriteAccepted prints the algorithm banner and the accepted process list.
// Called before the scheduler runs, while BurstLeft still holds the input
// bursts.
func WriteAccepted(w io.Writer, banner string, table core.Table) {
	_, _ = fmt.Fprintf(w, "%s\n\n", banner)
	for _, proc := range table {
		_, _ = fmt.Fprintf(w, "Accepted P%d: Burst %d\n", proc.Pid, proc.BurstLeft)
	}
}

// WriteSchedule renders the per-process result table and the average wait
// line after a scheduler has terminated.
func WriteSchedule(w io.Writer, bursts []int, table core.Table, totalTime int, averageWait float64) {
	_, _ = fmt.Fprintln(w)

	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"ID", "Burst", "Wait"})
	rows := make([][]string, len(table))
	for i, proc := range table {
		rows[i] = []string{
			fmt.Sprint(proc.Pid),
			fmt.Sprint(bursts[i]),
			fmt.Sprint(proc.Wait),
		}
	}
	tw.AppendBulk(rows)
	tw.SetFooter([]string{"",
		fmt.Sprintf("Total\n%d", totalTime),
		fmt.Sprintf("Average\n%.2f", averageWait)})
	tw.Render()

	_, _ = fmt.Fprintf(w, "Average wait time: %.2f\n", averageWait)
}
