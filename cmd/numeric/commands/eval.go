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
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hikogui/go-numeric/internal/logging"
	"github.com/hikogui/go-numeric/numeric"
	"github.com/hikogui/go-numeric/numeric/swizzle"
)

type evalDoc struct {
	Op     string      `yaml:"op"`
	Type   string      `yaml:"type"`
	Result interface{} `yaml:"result"`
	Text   string      `yaml:"text"`
}

// evalOps maps an operation name to its operand count.
var evalOps = map[string]int{
	"add": 2, "sub": 2, "mul": 2, "div": 2, "min": 2, "max": 2,
	"eq": 2, "lt": 2, "hadd": 2, "hsub": 2, "dot": 2, "blend": 2,
	"neg": 1, "abs": 1, "hsum": 1, "swizzle": 1, "permute": 1, "setzero": 1,
}

type evalOptions struct {
	typ     string
	mask    string
	pattern string
}

func newEvalCmd(v *viper.Viper) *cobra.Command {
	var opts evalOptions
	cmd := &cobra.Command{
		Use:   "eval OP A [B]",
		Short: "Evaluate one array operation on comma-separated operands",
		Example: `  numeric eval add 1,2,3,4 0,2,-3,2
  numeric eval dot 1,2,3,4 3,5,-3,-1 --mask 0b0011
  numeric eval swizzle 2,3,4,5 --pattern 1b01`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := evaluate(args, opts)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), v, doc, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, doc.Text)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&opts.typ, "type", "f32x4", "array type (f32x4, f64x4, i32x4, i16x8)")
	cmd.Flags().StringVar(&opts.mask, "mask", "0", "lane mask for dot, blend and setzero (0b, 0x or decimal)")
	cmd.Flags().StringVar(&opts.pattern, "pattern", "", "pattern for swizzle and permute")
	return cmd
}

func evaluate(args []string, opts evalOptions) (evalDoc, error) {
	op := args[0]
	n, ok := evalOps[op]
	if !ok {
		return evalDoc{}, fmt.Errorf("unknown operation %q", op)
	}
	if len(args)-1 != n {
		return evalDoc{}, fmt.Errorf("%s takes %d operands, got %d", op, n, len(args)-1)
	}
	mask, err := strconv.ParseUint(opts.mask, 0, 64)
	if err != nil {
		return evalDoc{}, fmt.Errorf("invalid --mask: %w", err)
	}
	var p swizzle.Pattern
	if op == "swizzle" || op == "permute" {
		if p, err = swizzle.Compile(opts.pattern); err != nil {
			return evalDoc{}, err
		}
	}
	logging.Debugf("eval %s on %s, mask %#b, pattern %q", op, opts.typ, mask, opts.pattern)

	in := evalInput{op: op, operands: args[1:], mask: mask, pattern: p}
	switch opts.typ {
	case "f32x4":
		return run[float32, [4]float32](in, opts.typ, parseFloat[float32](32))
	case "f64x4":
		return run[float64, [4]float64](in, opts.typ, parseFloat[float64](64))
	case "i32x4":
		return run[int32, [4]int32](in, opts.typ, parseInt[int32](32))
	case "i16x8":
		return run[int16, [8]int16](in, opts.typ, parseInt[int16](16))
	}
	return evalDoc{}, fmt.Errorf("unsupported --type %q", opts.typ)
}

type evalInput struct {
	op       string
	operands []string
	mask     uint64
	pattern  swizzle.Pattern
}

func parseFloat[T numeric.Floats](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		f, err := strconv.ParseFloat(s, bits)
		return T(f), err
	}
}

func parseInt[T numeric.SignedInts](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		i, err := strconv.ParseInt(s, 0, bits)
		return T(i), err
	}
}

func parseArray[T numeric.Lanes, S numeric.Storage[T]](s string, parse func(string) (T, error)) (numeric.Array[T, S], error) {
	fields := strings.Split(s, ",")
	vals := make([]T, len(fields))
	for i, f := range fields {
		x, err := parse(strings.TrimSpace(f))
		if err != nil {
			return numeric.Array[T, S]{}, fmt.Errorf("operand %q: %w", s, err)
		}
		vals[i] = x
	}
	var zero S
	if len(vals) > len(zero) {
		return numeric.Array[T, S]{}, fmt.Errorf("operand %q has %d values, the array has %d lanes", s, len(vals), len(zero))
	}
	return numeric.New[T, S](vals...), nil
}

func run[T numeric.Lanes, S numeric.Storage[T]](in evalInput, typ string, parse func(string) (T, error)) (doc evalDoc, err error) {
	ops := make([]numeric.Array[T, S], len(in.operands))
	for i, s := range in.operands {
		if ops[i], err = parseArray[T, S](s, parse); err != nil {
			return evalDoc{}, err
		}
	}
	// Caller errors (mask or pattern out of range, division by zero) panic
	// in package numeric; report them as command errors.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %v", in.op, r)
		}
	}()

	a := ops[0]
	var r numeric.Array[T, S]
	switch in.op {
	case "add":
		r = a.Add(ops[1])
	case "sub":
		r = a.Sub(ops[1])
	case "mul":
		r = a.Mul(ops[1])
	case "div":
		r = a.Div(ops[1])
	case "min":
		r = a.Min(ops[1])
	case "max":
		r = a.Max(ops[1])
	case "eq":
		r = a.Eq(ops[1])
	case "lt":
		r = a.Lt(ops[1])
	case "hadd":
		r = a.HorizontalAdd(ops[1])
	case "hsub":
		r = a.HorizontalSub(ops[1])
	case "dot":
		r = a.DotProduct(ops[1], in.mask)
	case "blend":
		r = a.Blend(ops[1], in.mask)
	case "neg":
		r = a.Neg()
	case "abs":
		r = a.Abs()
	case "hsum":
		r = a.HorizontalSum()
	case "swizzle":
		r = a.Swizzle(in.pattern)
	case "permute":
		r = a.Permute(in.pattern)
	case "setzero":
		r = a.SetZero(in.mask)
	}
	return evalDoc{Op: in.op, Type: typ, Result: r.Slice(), Text: r.String()}, nil
}
