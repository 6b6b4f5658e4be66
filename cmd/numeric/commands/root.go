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

// Package commands implements the numeric command tree.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/hikogui/go-numeric/internal/logging"
	"github.com/hikogui/go-numeric/numeric/reg"
)

// NewRootCmd builds the command tree. Flags can also be set through the
// environment with the NUMERIC_ prefix, e.g. NUMERIC_FORMAT=yaml.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:           "numeric",
		Short:         "Inspect and exercise fixed-length SIMD arrays",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.Init(v.GetString("log-level"), cmd.ErrOrStderr()); err != nil {
				return fmt.Errorf("invalid --log-level: %w", err)
			}
			switch f := v.GetString("format"); f {
			case "text", "yaml":
			default:
				return fmt.Errorf("invalid --format %q: want text or yaml", f)
			}
			logging.WithFields(map[string]interface{}{
				"dispatch": reg.CurrentName(),
				"no_simd":  reg.NoSimdEnv(),
			}).Debug("detected SIMD target")
			return nil
		},
	}

	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("format", "text", "output format (text, yaml)")
	for _, name := range []string{"log-level", "format"} {
		// Only fails for a flag that was never defined.
		if err := v.BindPFlag(name, root.PersistentFlags().Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind --%s: %v", name, err))
		}
	}
	v.SetEnvPrefix("NUMERIC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root.AddCommand(newInfoCmd(v), newSwizzleCmd(v), newEvalCmd(v))
	return root
}

// emit writes doc as YAML, or calls text when the format is text.
func emit(w io.Writer, v *viper.Viper, doc interface{}, text func(io.Writer) error) error {
	if v.GetString("format") == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	return text(w)
}
