package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/studentcoach/alpsbench/internal/benchmark"
	"github.com/studentcoach/alpsbench/internal/config"
	"github.com/studentcoach/alpsbench/internal/domain"
	"github.com/studentcoach/alpsbench/internal/profile"
	"github.com/studentcoach/alpsbench/internal/tables"
)

// loadStore loads the benchmark tables, honoring a configured directory
// override. The CLI resolves locally so a daemon does not need to be running.
func loadStore() (*tables.Store, error) {
	cfg, err := config.LoadLocalConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.Tables.Dir != "" {
		return tables.LoadDir(cfg.Tables.Dir)
	}
	return tables.Load()
}

// parsePercentileFlag resolves the -p flag, defaulting to the standard
// benchmarking percentile.
func parsePercentileFlag(raw string) (domain.Percentile, error) {
	if raw == "" {
		return domain.StandardPercentile, nil
	}
	return domain.ParsePercentile(raw)
}

// cmdResolve resolves a subject label and score to a full benchmark
func cmdResolve(args []string) error {
	fs := flag.NewFlagSet("resolve", flag.ExitOnError)
	percentileFlag := fs.String("p", "", "benchmark percentile: 60, 75, 90 or 100 (default 75)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 2 {
		return fmt.Errorf("usage: alpsbench resolve <label> <score> [-p percentile]")
	}

	label := fs.Arg(0)
	score, err := strconv.ParseFloat(fs.Arg(1), 64)
	if err != nil {
		return fmt.Errorf("parse score %q: %w", fs.Arg(1), err)
	}
	percentile, err := parsePercentileFlag(*percentileFlag)
	if err != nil {
		return err
	}

	store, err := loadStore()
	if err != nil {
		return err
	}

	result, err := benchmark.New(store).Resolve(label, score, percentile)
	if err != nil {
		return err
	}

	fmt.Printf("Label:      %s\n", label)
	fmt.Printf("Percentile: %s\n", percentile)
	fmt.Printf("Band:       %d\n", result.Band)
	fmt.Printf("MEG:        %s\n", result.MEGAspiration)
	if result.ExpectedPoints != nil {
		fmt.Printf("Points:     %.2f\n", *result.ExpectedPoints)
	} else {
		fmt.Printf("Points:     n/a\n")
	}

	return nil
}

// cmdBand looks up the A-Level attainment band for a score
func cmdBand(args []string) error {
	fs := flag.NewFlagSet("band", flag.ExitOnError)
	percentileFlag := fs.String("p", "", "benchmark percentile: 60, 75, 90 or 100 (default 75)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		return fmt.Errorf("usage: alpsbench band <score> [-p percentile]")
	}

	score, err := strconv.ParseFloat(fs.Arg(0), 64)
	if err != nil {
		return fmt.Errorf("parse score %q: %w", fs.Arg(0), err)
	}
	percentile, err := parsePercentileFlag(*percentileFlag)
	if err != nil {
		return err
	}

	store, err := loadStore()
	if err != nil {
		return err
	}

	details, err := benchmark.New(store).Engine().AlpsBandDetails(score, percentile)
	if err != nil {
		return err
	}
	if details == nil {
		return fmt.Errorf("invalid score: %v", score)
	}

	fmt.Printf("Score:      %.2f\n", score)
	fmt.Printf("Percentile: %s\n", percentile)
	fmt.Printf("Band:       %d\n", details.AlpsBand)
	fmt.Printf("MEG:        %s\n", details.MEGAspiration)
	fmt.Printf("Points:     %.2f\n", details.MinExpectedPoints)

	return nil
}

// cmdFactor looks up a subject value-added factor
func cmdFactor(args []string) error {
	fs := flag.NewFlagSet("factor", flag.ExitOnError)
	percentileFlag := fs.String("p", "", "benchmark percentile: 60, 75, 90 or 100 (default 75)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		return fmt.Errorf("usage: alpsbench factor <label> [-p percentile]")
	}

	percentile, err := parsePercentileFlag(*percentileFlag)
	if err != nil {
		return err
	}

	store, err := loadStore()
	if err != nil {
		return err
	}

	factor, err := benchmark.New(store).SubjectFactor(fs.Arg(0), percentile)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s): %.2f\n", fs.Arg(0), percentile, factor)
	return nil
}

// cmdPoints converts a BTEC 2010 grade string to points under a size scope
func cmdPoints(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: alpsbench points <scope> <grade>")
	}

	store, err := loadStore()
	if err != nil {
		return err
	}

	points, err := benchmark.New(store).GradePoints(args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Printf("%s %s: %.0f\n", args[0], args[1], points)
	return nil
}

// cmdSummary builds a full academic summary from a student record file
func cmdSummary(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: alpsbench summary <record.json>")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read record: %w", err)
	}

	rec, err := profile.ParseStudentRecord(data)
	if err != nil {
		return fmt.Errorf("parse record: %w", err)
	}

	store, err := loadStore()
	if err != nil {
		return err
	}

	summary := profile.NewSummarizer(store, nil).BuildSummary(rec)

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	fmt.Println(string(out))

	return nil
}
