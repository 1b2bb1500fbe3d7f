//go:build ignore

package main

import (
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// One-off utility: dump every stored collection to pretty-printed JSON
// files, one per key, for inspection or backup.
//
// Usage: go run scripts/export_collections.go -db ~/.fleetdeck/fleetdeck.db -out ./export
func main() {
	dbPath := flag.String("db", "", "path to fleetdeck.db")
	outDir := flag.String("out", "export", "output directory")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: export_collections -db <path> [-out <dir>]")
		os.Exit(1)
	}

	db, err := sql.Open("sqlite3", *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create output dir: %v\n", err)
		os.Exit(1)
	}

	rows, err := db.Query("SELECT key, value FROM collections ORDER BY key")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read collections: %v\n", err)
		os.Exit(1)
	}
	defer rows.Close()

	exported := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			fmt.Fprintf(os.Stderr, "scan failed: %v\n", err)
			os.Exit(1)
		}

		var pretty []byte
		var decoded any
		if err := json.Unmarshal([]byte(value), &decoded); err == nil {
			pretty, _ = json.MarshalIndent(decoded, "", "  ")
		} else {
			// Leave non-JSON values as-is rather than losing them.
			pretty = []byte(value)
		}

		path := filepath.Join(*outDir, key+".json")
		if err := os.WriteFile(path, pretty, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", path)
		exported++
	}
	if err := rows.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "iteration failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("exported %d collection(s)\n", exported)
}
