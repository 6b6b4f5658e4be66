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

package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hikogui/go-numeric/numeric/swizzle"
)

type swizzleDoc struct {
	Pattern  string   `yaml:"pattern"`
	Lanes    int      `yaml:"lanes"`
	Sources  []string `yaml:"sources"`
	Order    string   `yaml:"order,omitempty"`
	Ones     string   `yaml:"ones_mask"`
	Zeros    string   `yaml:"zeros_mask"`
	Strategy string   `yaml:"strategy"`
}

func newSwizzleCmd(v *viper.Viper) *cobra.Command {
	var lanes int
	cmd := &cobra.Command{
		Use:   "swizzle PATTERN",
		Short: "Compile a swizzle pattern and show its encodings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := compileSwizzle(args[0], lanes)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), v, doc, func(w io.Writer) error {
				fmt.Fprintf(w, "Pattern:  %q (%d lanes)\n", doc.Pattern, doc.Lanes)
				fmt.Fprintf(w, "Sources:  %v\n", doc.Sources)
				if doc.Order != "" {
					fmt.Fprintf(w, "Order:    %s\n", doc.Order)
				}
				fmt.Fprintf(w, "Ones:     %s\n", doc.Ones)
				fmt.Fprintf(w, "Zeros:    %s\n", doc.Zeros)
				fmt.Fprintf(w, "Strategy: %s\n", doc.Strategy)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&lanes, "lanes", 4, "lane count the pattern is applied to")
	return cmd
}

func compileSwizzle(s string, lanes int) (swizzleDoc, error) {
	if lanes < 1 || lanes > swizzle.MaxLen || lanes&(lanes-1) != 0 {
		return swizzleDoc{}, fmt.Errorf("--lanes must be a power of two in 1..%d, got %d", swizzle.MaxLen, lanes)
	}
	p, err := swizzle.Compile(s)
	if err != nil {
		return swizzleDoc{}, err
	}
	if err := p.Validate(lanes); err != nil {
		return swizzleDoc{}, err
	}
	doc := swizzleDoc{
		Pattern:  p.String(),
		Lanes:    lanes,
		Ones:     fmt.Sprintf("%#0*b", lanes, p.OnesMask(lanes)),
		Zeros:    fmt.Sprintf("%#0*b", lanes, p.ZerosMask(lanes)),
		Strategy: p.Strategy(lanes).String(),
	}
	for i := range lanes {
		doc.Sources = append(doc.Sources, sourceName(p.Source(i)))
	}
	// Packed orders exist for the shapes a single permute immediate covers.
	switch {
	case lanes <= 4:
		doc.Order = fmt.Sprintf("%#x", p.Order(2, lanes))
	case lanes <= 16:
		doc.Order = fmt.Sprintf("%#x", p.Order(4, lanes))
	}
	return doc, nil
}

func sourceName(s swizzle.Source) string {
	switch s {
	case swizzle.Zero:
		return "0"
	case swizzle.One:
		return "1"
	case swizzle.Keep:
		return "keep"
	}
	return string(rune('a' + s))
}
