// Command sheetrecon compares spreadsheet and CSV exports that should contain
// the same data, and reports how well they reconcile.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local development; missing files are fine.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
