/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package frame

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-esl/pkg/config"
	"jinr.ru/greenlab/go-esl/pkg/pp16"
)

const (
	PLIDOptionName   = "plid"
	PulsesOptionName = "pulses"
)

// NewCommand creates the frame command group
func NewCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frame",
		Short: "Build PP16 frames and print them",
	}
	cmd.AddCommand(NewWakeupCommand(cfg))
	cmd.AddCommand(NewParamCommand(cfg))
	cmd.AddCommand(NewDataCommand(cfg))
	cmd.AddCommand(NewFinalCommand(cfg))
	return cmd
}

// printFrame writes the frame in hex and, if asked, its pulse items
func printFrame(out io.Writer, cfg *config.Config, name string, frame pp16.Frame, pulses bool) error {
	fmt.Fprintf(out, "%s: %s\n", name, frame)
	if !pulses {
		return nil
	}
	enc, err := pp16.NewEncoder(cfg.TicksPerMicrosecond)
	if err != nil {
		return err
	}
	for i, code := range pp16.Codes(enc.Encode(frame)) {
		if i > 0 {
			fmt.Fprint(out, " ")
		}
		fmt.Fprintf(out, "%08x", code)
	}
	fmt.Fprintln(out)
	return nil
}

func addCommonFlags(cmd *cobra.Command, plid *string, pulses *bool) {
	cmd.Flags().StringVar(plid, PLIDOptionName, "", "Label id, 8 hexadecimal digits, e.g. d039c3de")
	cmd.MarkFlagRequired(PLIDOptionName)
	cmd.Flags().BoolVar(pulses, PulsesOptionName, false, "Also print pulse items")
}

func NewWakeupCommand(cfg *config.Config) *cobra.Command {
	var plidStr string
	var pulses bool
	cmd := &cobra.Command{
		Use:   "wakeup",
		Short: "Build wakeup frame",
		RunE: func(cmd *cobra.Command, args []string) error {
			plid, err := pp16.ParsePLID(plidStr)
			if err != nil {
				return err
			}
			return printFrame(cmd.OutOrStdout(), cfg, "wakeup", pp16.WakeupFrame(plid), pulses)
		},
	}
	addCommonFlags(cmd, &plidStr, &pulses)
	return cmd
}

func NewFinalCommand(cfg *config.Config) *cobra.Command {
	var plidStr string
	var pulses bool
	cmd := &cobra.Command{
		Use:   "final",
		Short: "Build finalize frame",
		RunE: func(cmd *cobra.Command, args []string) error {
			plid, err := pp16.ParsePLID(plidStr)
			if err != nil {
				return err
			}
			return printFrame(cmd.OutOrStdout(), cfg, "final", pp16.FinalFrame(plid), pulses)
		},
	}
	addCommonFlags(cmd, &plidStr, &pulses)
	return cmd
}

func NewParamCommand(cfg *config.Config) *cobra.Command {
	var plidStr string
	var pulses bool
	var width, height, x, y, length uint16
	cmd := &cobra.Command{
		Use:   "param",
		Short: "Build image parameter frame",
		RunE: func(cmd *cobra.Command, args []string) error {
			plid, err := pp16.ParsePLID(plidStr)
			if err != nil {
				return err
			}
			frame := pp16.ImageParameterFrame(plid, width, height, x, y, length)
			return printFrame(cmd.OutOrStdout(), cfg, "param", frame, pulses)
		},
	}
	addCommonFlags(cmd, &plidStr, &pulses)
	cmd.Flags().Uint16Var(&width, "width", 0, "Image width in pixels")
	cmd.Flags().Uint16Var(&height, "height", 0, "Image height in pixels")
	cmd.Flags().Uint16Var(&x, "x", 0, "Horizontal offset")
	cmd.Flags().Uint16Var(&y, "y", 0, "Vertical offset")
	cmd.Flags().Uint16Var(&length, "length", 0, "Image data length in bytes")
	return cmd
}
