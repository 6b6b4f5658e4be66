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
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hikogui/go-numeric/internal/logging"
	"github.com/hikogui/go-numeric/numeric/reg"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEval(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"add", []string{"eval", "add", "1,2,3,4", "0,2,-3,2"}, "(1; 4; 0; 6)\n"},
		{"dot", []string{"eval", "dot", "1,2,3,4", "3,5,-3,-1", "--mask", "0b0011"}, "(13; 13; 13; 13)\n"},
		{"swizzle reverse", []string{"eval", "swizzle", "2,3,4,5", "--pattern", "wzyx"}, "(5; 4; 3; 2)\n"},
		{"swizzle literals", []string{"eval", "swizzle", "2,3,4,5", "--pattern", "1b01"}, "(1; 3; 0; 1)\n"},
		{"hadd", []string{"eval", "hadd", "2,3,4,5", "12,13,14,15"}, "(5; 9; 25; 29)\n"},
		{"f64", []string{"eval", "mul", "1.5,2", "2,2", "--type", "f64x4"}, "(3; 4; 0; 0)\n"},
		{"i16 wraps", []string{"eval", "add", "32767", "1", "--type", "i16x8"}, "(-32768; 0; 0; 0; 0; 0; 0; 0)\n"},
		{"setzero", []string{"eval", "setzero", "1,2,3,4", "--mask", "0x5", "--type", "i32x4"}, "(0; 2; 0; 4)\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"unknown op", []string{"eval", "frob", "1"}, "unknown operation"},
		{"operand count", []string{"eval", "add", "1,2"}, "takes 2 operands"},
		{"bad mask", []string{"eval", "blend", "1", "2", "--mask", "zz"}, "invalid --mask"},
		{"mask out of range", []string{"eval", "blend", "1", "2", "--mask", "0b10000"}, "lane mask"},
		{"bad pattern", []string{"eval", "swizzle", "1", "--pattern", "q"}, "invalid pattern"},
		{"too many values", []string{"eval", "neg", "1,2,3,4,5"}, "has 5 values"},
		{"integer divide by zero", []string{"eval", "div", "1", "0", "--type", "i32x4"}, "div"},
		{"bad type", []string{"eval", "neg", "1", "--type", "c64"}, "unsupported --type"},
		{"bad format", []string{"eval", "neg", "1", "--format", "xml"}, "invalid --format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestEvalYAML(t *testing.T) {
	out, err := execute(t, "eval", "add", "1,2,3,4", "0,2,-3,2", "--format", "yaml")
	require.NoError(t, err)

	var doc struct {
		Op     string    `yaml:"op"`
		Type   string    `yaml:"type"`
		Result []float32 `yaml:"result"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "add", doc.Op)
	assert.Equal(t, "f32x4", doc.Type)
	assert.Equal(t, []float32{1, 4, 0, 6}, doc.Result)
}

func TestFormatFromEnv(t *testing.T) {
	t.Setenv("NUMERIC_FORMAT", "yaml")
	out, err := execute(t, "eval", "neg", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "op: neg")
}

func TestSwizzle(t *testing.T) {
	out, err := execute(t, "swizzle", "wzyx", "--format", "yaml")
	require.NoError(t, err)

	var doc swizzleDoc
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, swizzleDoc{
		Pattern:  "wzyx",
		Lanes:    4,
		Sources:  []string{"d", "c", "b", "a"},
		Order:    "0x1b",
		Ones:     "0b0000",
		Zeros:    "0b0000",
		Strategy: "permute",
	}, doc)

	out, err = execute(t, "swizzle", "1b0")
	require.NoError(t, err)
	assert.Contains(t, out, "Strategy: permute+blend")
	assert.Contains(t, out, "Ones:     0b0001")
	assert.Contains(t, out, "Zeros:    0b1100")

	_, err = execute(t, "swizzle", "abcde", "--lanes", "4")
	assert.Error(t, err)
	_, err = execute(t, "swizzle", "ab", "--lanes", "3")
	assert.Error(t, err)
}

func TestInfo(t *testing.T) {
	out, err := execute(t, "info", "--format", "yaml")
	require.NoError(t, err)

	var doc infoDoc
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, reg.CurrentName(), doc.Dispatch)
	require.Len(t, doc.Wrappers, len(reg.All()))
	for i, w := range reg.All() {
		assert.Equal(t, w.Name, doc.Wrappers[i].Name)
		assert.Equal(t, w.Native, doc.Wrappers[i].Native)
	}

	out, err = execute(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "Dispatch: "+reg.CurrentName())
	assert.Contains(t, out, "F32x4")
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, "info", NewRootCmd().PersistentFlags().Lookup("log-level").DefValue)

	_, err := execute(t, "swizzle", "xy")
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, logging.Get().GetLevel())

	_, err = execute(t, "swizzle", "xy", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, logrus.ErrorLevel, logging.Get().GetLevel())

	t.Setenv("NUMERIC_LOG_LEVEL", "debug")
	_, err = execute(t, "swizzle", "xy")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logging.Get().GetLevel())

	_, err = execute(t, "swizzle", "xy", "--log-level", "loud")
	assert.ErrorContains(t, err, "invalid --log-level")
}
