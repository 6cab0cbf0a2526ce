// Command resolversim loads a scenario file and runs one seat's Judge and
// Draw phases (StartTurn) through the resolution engine, printing the
// resulting event log. It replaces the teacher's networked host/join CLI:
// transport, matchmaking and a live opponent are out of scope here (spec's
// Non-goals), so the only command is "run", and every choice is answered
// by alwaysPass rather than a second terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sanguo/resolver/internal/log"
	"github.com/sanguo/resolver/internal/resolve"
	"github.com/sanguo/resolver/internal/scenario"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "run":
		runScenario(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  resolversim run --scenario FILE [--seat N]")
}

func runScenario(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	path := fs.String("scenario", "scenario.yaml", "path to a scenario YAML file")
	seat := fs.Int("seat", 0, "seat whose turn to run")
	fs.Parse(args)

	g, err := scenario.Load(*path, resolve.BuiltinCatalog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewTextLogger(os.Stdout)
	moveSvc := &resolve.DefaultCardMoveService{}
	ctx := resolve.NewResolutionContext(g, resolve.NewStrictRuleService(), moveSvc, resolve.DefaultJudgementService{}, alwaysPass)
	ctx.Logger.Attach(logger)

	if err := resolve.StartTurn(ctx, resolve.Seat(*seat)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// alwaysPass is the CLI's default player-choice function: it never offers
// a response and never picks a non-default option. A real deployment
// wires in a network round-trip or UI prompt instead (spec §6).
func alwaysPass(req resolve.ChoiceRequest) resolve.ChoiceResult {
	return resolve.ChoiceResult{RequestID: req.ID, Seat: req.Seat, Passed: true}
}
