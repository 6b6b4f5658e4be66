// Copyright 2025 go-numeric Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command numgen generates the named Array aliases of package numeric
// (I8x16, F32x4, ...) and their constructors.
//
// Usage:
//
//	numgen -output aliases.go -pkg numeric
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/numgen -output aliases.go
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputFile = flag.String("output", "aliases.go", "Output file")
	packageOut = flag.String("pkg", "numeric", "Output package name")
	maxBytes   = flag.Int("max-bytes", 64, "Largest array size in bytes")
)

func main() {
	flag.Parse()

	table := Aliases(*maxBytes)
	if len(table) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no aliases fit in %d bytes\n", *maxBytes)
		os.Exit(1)
	}

	src, err := Render(*outputFile, *packageOut, table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outputFile, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: write %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	fmt.Printf("Successfully generated %d aliases in %s\n", len(table), *outputFile)
}
