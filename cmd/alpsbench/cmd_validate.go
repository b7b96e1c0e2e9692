package main

import (
	"fmt"

	"github.com/studentcoach/alpsbench/internal/tables"
)

// cmdValidate runs consistency checks over the loaded benchmark tables
func cmdValidate(args []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	report := tables.NewValidator().Validate(store)

	for _, w := range report.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
	for _, e := range report.Errors {
		fmt.Printf("error:   %s\n", e)
	}

	if !report.Valid {
		return fmt.Errorf("tables failed validation with %d errors", len(report.Errors))
	}

	fmt.Printf("✓ Tables valid (%d warnings)\n", len(report.Warnings))
	return nil
}
