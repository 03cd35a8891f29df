// Command timetable is a thin demo CLI over the timetabling core. It is
// not part of the core itself — spec section 1 explicitly places any
// presentation layer outside it — it exists only so the solver can be
// exercised without a database or config loader in front of it.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/coursecraft/timetable"
	"github.com/coursecraft/timetable/internal/ttevent"
	"github.com/coursecraft/timetable/internal/ttfixture"
	"github.com/coursecraft/timetable/internal/ttlog"
)

var (
	maxTime    = 15 * time.Second
	workers    = 8
	useBadFix  = false
	devLogging = false
)

func main() {
	cmdTimetable := &cobra.Command{
		Use:   "timetable",
		Short: "University timetabling solver",
		Long: "Solves a weekly university timetable against the embedded\n" +
			"Scenario A reference dataset (spec section 8).",
	}

	cmdSolve := &cobra.Command{
		Use:   "solve",
		Short: "solve the embedded fixture and print placements as JSON",
		Run:   CommandSolve,
	}
	cmdSolve.Flags().DurationVarP(&maxTime, "time", "t", maxTime, "wall-clock bound for the solver")
	cmdSolve.Flags().IntVarP(&workers, "workers", "w", workers, "num_search_workers recorded in the result (not forwarded to the solver backend)")
	cmdSolve.Flags().BoolVar(&useBadFix, "infeasible-fixture", useBadFix, "use Scenario F (every instructor available Sunday only) to demonstrate INFEASIBLE")
	cmdSolve.Flags().BoolVar(&devLogging, "dev", devLogging, "use human-readable console logging instead of JSON")
	cmdTimetable.AddCommand(cmdSolve)

	cmdDescribe := &cobra.Command{
		Use:   "describe",
		Short: "print the embedded fixture's event counts without solving",
		Run:   CommandDescribe,
	}
	cmdTimetable.AddCommand(cmdDescribe)

	if err := cmdTimetable.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// CommandSolve runs the core pipeline against the embedded fixture and
// prints the resulting placements (or the failure status) as JSON.
func CommandSolve(cmd *cobra.Command, args []string) {
	if len(args) > 0 {
		log.Fatalf("unknown option: %v", args)
	}

	env := ttlog.EnvProduction
	if devLogging {
		env = ttlog.EnvDevelopment
	}
	logger, err := ttlog.New(env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	in := ttfixture.ScenarioA()
	if useBadFix {
		in = ttfixture.ScenarioF()
	}
	in.Config.Limits.MaxTimeInSeconds = maxTime.Seconds()
	in.Config.Limits.NumSearchWorkers = workers

	ctx, cancel := context.WithTimeout(context.Background(), maxTime+5*time.Second)
	defer cancel()

	result, err := timetable.Solve(ctx, in, logger)
	if err != nil && !result.Status.Succeeded() {
		fmt.Fprintf(os.Stderr, "solve did not succeed: %v\n", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if encErr := enc.Encode(result); encErr != nil {
		log.Fatalf("failed to encode result: %v", encErr)
	}
}

// CommandDescribe prints how many events the embedded fixture generates,
// without invoking the solver.
func CommandDescribe(cmd *cobra.Command, args []string) {
	in := ttfixture.ScenarioA()
	arena := ttevent.Generate(in.Subjects)
	fmt.Printf("events: %d\n", len(arena.Events))
	fmt.Printf("cohort pairs: %d\n", len(arena.CohortPairs))
	fmt.Printf("subjects: %d\n", len(in.Subjects))
	fmt.Printf("rooms: %d\n", len(in.Rooms))
	fmt.Printf("instructors: %d\n", len(in.Instructors))
	fmt.Printf("days: %v\n", in.Config.Days)
	fmt.Printf("hours: [%d, %d)\n", in.Config.StartHour, in.Config.EndHour)
}
