package main

import (
	"fmt"
	"os"
)

// Version is set at build time via ldflags
var Version = "dev"

const (
	daemonAddr = "http://127.0.0.1:7641"
	pidFile    = "alpsbenchd.pid"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "start":
		err = cmdStart()
	case "stop":
		err = cmdStop()
	case "status":
		err = cmdStatus()
	case "logs":
		err = cmdLogs()
	case "resolve":
		err = cmdResolve(os.Args[2:])
	case "band":
		err = cmdBand(os.Args[2:])
	case "factor":
		err = cmdFactor(os.Args[2:])
	case "points":
		err = cmdPoints(os.Args[2:])
	case "summary":
		err = cmdSummary(os.Args[2:])
	case "validate":
		err = cmdValidate(os.Args[2:])
	case "mcp":
		err = cmdMCP()
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Printf("alpsbench %s\n", Version)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`alpsbench - ALPS MEG benchmark resolution

Usage:
  alpsbench <command> [arguments]

Daemon Commands:
  start           Start the alpsbench daemon
  stop            Stop the alpsbench daemon
  status          Show daemon status
  logs            View daemon logs

Benchmark Commands:
  resolve         Resolve a subject label and score to a benchmark
  band            Look up the A-Level band for a score
  factor          Look up a subject value-added factor
  points          Convert a BTEC 2010 grade string to points
  summary         Build an academic summary from a student record file

Table Commands:
  validate        Run consistency checks over the benchmark tables

Integration Commands:
  mcp             Start MCP server (stdio transport)

Other:
  help            Show this help message
  version         Show version information

Examples:
  alpsbench start                               # Start daemon
  alpsbench resolve "A - Biology" 7.75          # Resolve at the 75th percentile
  alpsbench resolve "IB HL - Maths" 8.4 -p 90   # Resolve at the 90th
  alpsbench band 6.2                            # Band lookup
  alpsbench points DIP "D*D*"                   # BTEC 2010 grade points
  alpsbench summary student.json                # Summarize a CRM export
  alpsbench validate                            # Check table consistency`)
}
