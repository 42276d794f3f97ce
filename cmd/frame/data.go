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

	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-esl/pkg/cmd"
	"jinr.ru/greenlab/go-esl/pkg/config"
	"jinr.ru/greenlab/go-esl/pkg/pp16"
)

const (
	ImageOptionName = "image"
	PadOptionName   = "pad"
)

func NewDataCommand(cfg *config.Config) *cobra.Command {
	var plidStr, image string
	var pulses, pad bool
	c := &cobra.Command{
		Use:   "data",
		Short: "Split a bitmap into image data frames",
		RunE: func(c *cobra.Command, args []string) error {
			plid, err := pp16.ParsePLID(plidStr)
			if err != nil {
				return err
			}
			bitmap, err := cmd.LoadBitmap(image, 0, 0)
			if err != nil {
				return err
			}
			data := bitmap.Data
			if pad {
				data = pp16.PadToChunk(data)
			}
			for i, frame := range pp16.DataFrames(plid, data) {
				if err := printFrame(c.OutOrStdout(), cfg, fmt.Sprintf("data/%d", i), frame, pulses); err != nil {
					return err
				}
			}
			return nil
		},
	}
	addCommonFlags(c, &plidStr, &pulses)
	c.Flags().StringVar(&image, ImageOptionName, "", "Picture (png, gif, jpeg) or raw packed bitmap file")
	c.MarkFlagRequired(ImageOptionName)
	c.Flags().BoolVar(&pad, PadOptionName, true, "Pad data with zeros to whole 20-byte chunks")
	return c
}
