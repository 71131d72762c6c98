package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"schedsim/api"
	"schedsim/config"
	"schedsim/internal/core"
	"schedsim/internal/report"
	"schedsim/internal/schedulers"
	"schedsim/internal/util"
)

// algorithm is the mode selector, decided once from argv. Everything below
// the CLI boundary switches on this instead of the mode string.
type algorithm int

const (
	algFCFS algorithm = iota
	algRR
	algSJF
)

func main() {
	if len(os.Args) < 2 {
		failMissingArgs()
	}

	switch os.Args[1] {
	case "serve":
		serve()
	case "fcfs":
		simulate(algFCFS, os.Args[2:])
	case "rr":
		simulate(algRR, os.Args[2:])
	case "sjf":
		simulate(algSJF, os.Args[2:])
	default:
		failMissingArgs()
	}
}

// simulate runs one scheduling simulation from CLI arguments and prints the
// report to stdout. For rr the first argument is the quantum; the rest are
// bursts.
func simulate(alg algorithm, args []string) {
	quantum := 0
	if alg == algRR {
		if len(args) < 2 {
			failMissingArgs()
		}
		quantum = mustAtoi(args[0])
		args = args[1:]
	}
	if len(args) < 1 {
		failMissingArgs()
	}

	bursts := make([]int, len(args))
	for i, arg := range args {
		bursts[i] = mustAtoi(arg)
	}

	table, err := core.NewTable(bursts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	var banner string
	switch alg {
	case algFCFS:
		banner = "Using FCFS"
	case algRR:
		banner = fmt.Sprintf("Using RR(%d).", quantum)
	case algSJF:
		banner = "Using SJF"
	}
	report.WriteAccepted(os.Stdout, banner, table)

	var totalTime int
	switch alg {
	case algFCFS:
		totalTime = schedulers.FirstComeFirstServe(table)
	case algRR:
		totalTime = schedulers.RoundRobin(table, quantum)
	case algSJF:
		totalTime = schedulers.ShortestJobFirst(table)
	}

	report.WriteSchedule(os.Stdout, bursts, table, totalTime, util.CalculateAverageWait(table))
}

func serve() {
	cfg := config.GetSimulatorConfig()
	app := api.NewRouter(api.NewSchedulerHandlerImpl(cfg))

	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}

func failMissingArgs() {
	fmt.Fprintln(os.Stderr, "ERROR: Missing arguments")
	os.Exit(1)
}

func mustAtoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Invalid number %q\n", s)
		os.Exit(1)
	}
	return n
}
