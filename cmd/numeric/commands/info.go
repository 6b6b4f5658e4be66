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
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hikogui/go-numeric/numeric/reg"
)

type wrapperInfo struct {
	Name   string `yaml:"name"`
	Elem   string `yaml:"elem"`
	Lanes  int    `yaml:"lanes"`
	Bits   int    `yaml:"bits"`
	Native bool   `yaml:"native"`
}

type infoDoc struct {
	Arch     string        `yaml:"arch"`
	Dispatch string        `yaml:"dispatch"`
	Width    int           `yaml:"width"`
	NoSimd   bool          `yaml:"no_simd"`
	Kernels  bool          `yaml:"kernels"`
	Features []string      `yaml:"features"`
	Wrappers []wrapperInfo `yaml:"wrappers"`
}

func newInfoCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the SIMD dispatch level and the register wrappers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := collectInfo()
			return emit(cmd.OutOrStdout(), v, doc, func(w io.Writer) error {
				return writeInfo(w, doc)
			})
		},
	}
}

func collectInfo() infoDoc {
	f := reg.Features()
	doc := infoDoc{
		Arch:     runtime.GOARCH,
		Dispatch: reg.CurrentName(),
		Width:    reg.CurrentWidth(),
		NoSimd:   reg.NoSimdEnv(),
		Kernels:  f.Kernels,
		Features: []string{},
	}
	for _, feat := range []struct {
		name string
		has  bool
	}{
		{"sse2", f.HasSSE2}, {"sse3", f.HasSSE3}, {"ssse3", f.HasSSSE3}, {"sse4.1", f.HasSSE41},
		{"avx", f.HasAVX}, {"avx2", f.HasAVX2}, {"fma", f.HasFMA}, {"neon", f.HasNEON},
	} {
		if feat.has {
			doc.Features = append(doc.Features, feat.name)
		}
	}
	for _, i := range reg.All() {
		doc.Wrappers = append(doc.Wrappers, wrapperInfo(i))
	}
	return doc
}

func writeInfo(w io.Writer, doc infoDoc) error {
	fmt.Fprintf(w, "Arch:     %s\n", doc.Arch)
	fmt.Fprintf(w, "Dispatch: %s (%d-byte registers)\n", doc.Dispatch, doc.Width)
	fmt.Fprintf(w, "Kernels:  %v\n", doc.Kernels)
	fmt.Fprintf(w, "Features: %v\n", doc.Features)
	fmt.Fprintln(w, "Wrappers:")
	for _, i := range doc.Wrappers {
		state := "portable"
		if i.Native {
			state = "native"
		}
		fmt.Fprintf(w, "  %-6s %2d x %-7s %3d-bit  %s\n", i.Name, i.Lanes, i.Elem, i.Bits, state)
	}
	return nil
}
