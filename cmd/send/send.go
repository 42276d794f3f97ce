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

package send

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-esl/pkg/cmd"
	"jinr.ru/greenlab/go-esl/pkg/config"
	"jinr.ru/greenlab/go-esl/pkg/log"
	"jinr.ru/greenlab/go-esl/pkg/pp16"
	"jinr.ru/greenlab/go-esl/pkg/transmit"
)

const (
	PLIDOptionName     = "plid"
	ImageOptionName    = "image"
	BlackOptionName    = "black"
	WidthOptionName    = "width"
	HeightOptionName   = "height"
	XOptionName        = "x"
	YOptionName        = "y"
	OutOptionName      = "out"
	WakeupsOptionName  = "wakeups"
	IntervalOptionName = "interval"
	BrokerOptionName   = "mqtt-broker"
)

// NewCommand creates the command that encodes a full image update and
// writes the pulse items of every frame to a file, stdout or an MQTT topic
func NewCommand(cfg *config.Config) *cobra.Command {
	var plidStr, image, out, broker string
	var black bool
	var width, height, x, y uint16
	var wakeups int
	var interval time.Duration
	c := &cobra.Command{
		Use:   "send",
		Short: "Encode image update and write pulse items",
		RunE: func(c *cobra.Command, args []string) error {
			plid, err := pp16.ParsePLID(plidStr)
			if err != nil {
				return err
			}
			var bitmap *cmd.Bitmap
			switch {
			case black:
				bitmap = cmd.BlackBitmap(width, height)
			case image != "":
				bitmap, err = cmd.LoadBitmap(image, width, height)
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("either --%s or --%s must be given", ImageOptionName, BlackOptionName)
			}
			if !c.Flags().Changed(WakeupsOptionName) {
				wakeups = cfg.WakeupRepeat
			}
			if !c.Flags().Changed(IntervalOptionName) {
				interval = time.Duration(cfg.FrameIntervalMs) * time.Millisecond
			}

			steps, err := transmit.ImagePlan(transmit.ImageUpdate{
				PLID:   plid,
				Width:  bitmap.Width,
				Height: bitmap.Height,
				X:      x,
				Y:      y,
				Bitmap: bitmap.Data,
			}, wakeups)
			if err != nil {
				return err
			}
			enc, err := pp16.NewEncoder(cfg.TicksPerMicrosecond)
			if err != nil {
				return err
			}

			if broker != "" {
				cfg.Broker = broker
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			if out == "" && cfg.Broker != "" {
				client, err := transmit.NewMQTTClient(cfg.Broker, cfg.ClientID)
				if err != nil {
					return err
				}
				defer client.Disconnect(250)
				timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond
				tx := transmit.NewMQTTTransmitter(client, cfg.Topic, cfg.QoS, timeout)
				sent, err := transmit.NewSequencer(tx, enc, interval).Run(ctx, steps)
				log.Info("Label %s: %d frames published to %s", plid, sent, cfg.Topic)
				return err
			}

			var tx *transmit.WriterTransmitter
			if out == "" || out == "-" {
				tx = transmit.NewWriterTransmitter(c.OutOrStdout())
			} else {
				tx, err = transmit.NewFileTransmitter(out)
				if err != nil {
					return err
				}
			}
			sent, runErr := transmit.NewSequencer(tx, enc, interval).Run(ctx, steps)
			if err := tx.Flush(); err != nil && runErr == nil {
				runErr = err
			}
			log.Info("Label %s: %d frames sent", plid, sent)
			return runErr
		},
	}
	c.Flags().StringVar(&plidStr, PLIDOptionName, "", "Label id, 8 hexadecimal digits, e.g. d039c3de")
	c.MarkFlagRequired(PLIDOptionName)
	c.Flags().StringVar(&image, ImageOptionName, "", "Picture (png, gif, jpeg) or raw packed bitmap file")
	c.Flags().BoolVar(&black, BlackOptionName, false, "Send all black test image of --width x --height")
	c.Flags().Uint16Var(&width, WidthOptionName, 0, "Image width, required for raw bitmaps")
	c.Flags().Uint16Var(&height, HeightOptionName, 0, "Image height, required for raw bitmaps")
	c.Flags().Uint16Var(&x, XOptionName, 0, "Horizontal offset")
	c.Flags().Uint16Var(&y, YOptionName, 0, "Vertical offset")
	c.Flags().StringVar(&out, OutOptionName, "", "File for pulse items, - for stdout. Default stdout unless an MQTT broker is configured")
	c.Flags().StringVar(&broker, BrokerOptionName, "", "Publish pulse items to MQTT broker, e.g. tcp://localhost:1883")
	c.Flags().IntVar(&wakeups, WakeupsOptionName, config.DefaultWakeupRepeat, "Number of wakeup frames")
	c.Flags().DurationVar(&interval, IntervalOptionName, 0, "Minimal gap between frames, e.g. 20ms")
	return c
}
