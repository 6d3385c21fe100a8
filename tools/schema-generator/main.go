// Command schema-generator regenerates config/jsontree.schema.json from the
// Config struct. Run via go generate in the config package after changing
// configuration types.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/grovetools/jsontree/config"
)

func main() {
	data, err := config.GenerateSchema()
	if err != nil {
		fmt.Fprintf(os.Stderr, "schema-generator: %v\n", err)
		os.Exit(1)
	}

	out := filepath.Join("jsontree.schema.json")
	if len(os.Args) > 1 {
		out = os.Args[1]
	}
	if err := os.WriteFile(out, append(data, '\n'), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "schema-generator: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", out)
}
