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

package main

import (
	"bytes"
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/tools/imports"
)

// Elem describes one lane type.
type Elem struct {
	Go     string // Go type name, e.g. "float32"
	Prefix string // alias prefix, e.g. "F32"
	Size   int    // bytes
}

// Elems lists the lane types in the order their aliases are emitted.
var Elems = []Elem{
	{"int8", "I8", 1},
	{"uint8", "U8", 1},
	{"int16", "I16", 2},
	{"uint16", "U16", 2},
	{"int32", "I32", 4},
	{"uint32", "U32", 4},
	{"float32", "F32", 4},
	{"int64", "I64", 8},
	{"uint64", "U64", 8},
	{"float64", "F64", 8},
}

// Alias is one named Array instantiation.
type Alias struct {
	Name  string
	Elem  string
	Lanes int
}

// Storage returns the backing array type, e.g. "[4]float32".
func (a Alias) Storage() string {
	return fmt.Sprintf("[%d]%s", a.Lanes, a.Elem)
}

// laneCounts returns the powers of two n with n*size <= maxBytes.
func laneCounts(size, maxBytes int) []int {
	var counts []int
	for n := 1; n*size <= maxBytes; n *= 2 {
		counts = append(counts, n)
	}
	return counts
}

// Aliases returns every alias whose array fits in maxBytes.
func Aliases(maxBytes int) []Alias {
	return lo.FlatMap(Elems, func(e Elem, _ int) []Alias {
		return lo.Map(laneCounts(e.Size, maxBytes), func(n int, _ int) Alias {
			return Alias{Name: fmt.Sprintf("%sx%d", e.Prefix, n), Elem: e.Go, Lanes: n}
		})
	})
}

// Render produces the formatted alias file.
func Render(filename, pkg string, table []Alias) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by numgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	for _, a := range table {
		fmt.Fprintf(&buf, "// %s is an Array of %d %s lanes.\n", a.Name, a.Lanes, a.Elem)
		fmt.Fprintf(&buf, "type %s = Array[%s, %s]\n\n", a.Name, a.Elem, a.Storage())
		fmt.Fprintf(&buf, "// New%s builds a %s from up to %d values; missing lanes are zero.\n", a.Name, a.Name, a.Lanes)
		fmt.Fprintf(&buf, "func New%s(v ...%s) %s {\n", a.Name, a.Elem, a.Name)
		fmt.Fprintf(&buf, "\treturn New[%s, %s](v...)\n", a.Elem, a.Storage())
		fmt.Fprintf(&buf, "}\n\n")
	}

	src, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", filename, err)
	}
	return src, nil
}
