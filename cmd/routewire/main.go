// Command routewire loads a gate file and a netlist file, routes
// every net with a chosen pathfinder and ordering strategy, and
// prints a run summary (spec.md §6.2).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mrutjes/gridrouter/gate"
	"github.com/mrutjes/gridrouter/ioadapter"
	"github.com/mrutjes/gridrouter/netlist"
	"github.com/mrutjes/gridrouter/order"
	"github.com/mrutjes/gridrouter/pathfind"
	"github.com/mrutjes/gridrouter/report"
	"github.com/mrutjes/gridrouter/router"
)

func main() {
	gatesPath := flag.String("gates", "", "path to gate CSV file (chip,x,y)")
	netlistPath := flag.String("netlist", "", "path to netlist CSV file (chip_a,chip_b)")
	algorithm := flag.String("algorithm", "astar", "pathfinder: manhattan|dfs|lee|astar")
	orderName := flag.String("order", "random", "ordering strategy: random|busy|distance|qlearning")
	iterations := flag.Int("iterations", 10, "number of orderings to try")
	seed := flag.Int64("seed", 0, "RNG seed (0 selects the package default)")
	reportPath := flag.String("report", "", "optional path to write a CSV run report")
	flag.Parse()

	if *gatesPath == "" || *netlistPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: routewire -gates <file.csv> -netlist <file.csv> [-algorithm manhattan|dfs|lee|astar] [-order random|busy|distance|qlearning] [-iterations N] [-seed S]")
		os.Exit(1)
	}

	gateCoords, err := ioadapter.ReadGatesFile(*gatesPath)
	if err != nil {
		log.Printf("failed to read gates: %v", err)
		os.Exit(1)
	}
	gates, err := gate.NewSet(gateCoords)
	if err != nil {
		log.Printf("invalid gate set: %v", err)
		os.Exit(1)
	}
	log.Printf("loaded %d gates", gates.Len())

	netlistPairs, err := ioadapter.ReadNetlistFile(*netlistPath)
	if err != nil {
		log.Printf("failed to read netlist: %v", err)
		os.Exit(1)
	}
	nl, err := netlist.New(netlistPairs, gates.Len())
	if err != nil {
		log.Printf("invalid netlist: %v", err)
		os.Exit(1)
	}
	log.Printf("loaded %d nets", len(nl))

	r, err := selectRouter(*algorithm)
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	src, err := selectOrdering(*orderName, nl, gates, *iterations, *seed)
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	ctl := router.New(gates, nl, r, router.WithLogger(log.Default()))
	result, runErr := ctl.Run(src)
	summary := report.FromResult(result, runErr)

	log.Printf("attempted=%d succeeded=%d success_rate=%.2f best_cost=%d",
		summary.Attempted, summary.Succeeded, summary.SuccessRate, summary.BestCost)

	if *reportPath != "" {
		if err := ioadapter.WriteRunReportFile(*reportPath, summary); err != nil {
			log.Printf("failed to write report: %v", err)
		}
	}
}

func selectRouter(name string) (pathfind.Router, error) {
	switch name {
	case "manhattan":
		return pathfind.Manhattan{}, nil
	case "dfs":
		return pathfind.DFS{}, nil
	case "lee":
		return pathfind.Lee{}, nil
	case "astar":
		return pathfind.AStar{}, nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q", name)
	}
}

func selectOrdering(name string, nl netlist.Netlist, gates *gate.Set, iterations int, seed int64) (order.Source, error) {
	switch name {
	case "random":
		return order.NewRandom(nl, iterations, seed)
	case "busy":
		return order.NewBusyNode(nl, iterations, seed)
	case "distance":
		return order.NewDistance(nl, gates, iterations, seed)
	case "qlearning":
		return order.NewQLearning(nl, iterations, seed)
	default:
		return nil, fmt.Errorf("unknown ordering %q", name)
	}
}
