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

package job

import (
	"fmt"

	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-esl/pkg/cmd"
	"jinr.ru/greenlab/go-esl/pkg/command"
	"jinr.ru/greenlab/go-esl/pkg/config"
	"jinr.ru/greenlab/go-esl/pkg/pp16"
	"jinr.ru/greenlab/go-esl/pkg/srv"
)

const (
	PLIDOptionName    = "plid"
	ImageOptionName   = "image"
	BlackOptionName   = "black"
	WidthOptionName   = "width"
	HeightOptionName  = "height"
	XOptionName       = "x"
	YOptionName       = "y"
	WakeupsOptionName = "wakeups"
)

// NewCommand creates the job command group talking to a running API server
func NewCommand(cfg *config.Config) *cobra.Command {
	c := &cobra.Command{
		Use:   "job",
		Short: "Manage image update jobs on API server",
	}
	c.AddCommand(NewSubmitCommand(cfg))
	c.AddCommand(NewListCommand(cfg))
	c.AddCommand(NewGetCommand(cfg))
	c.AddCommand(NewPlanCommand(cfg))
	c.AddCommand(NewDeleteCommand(cfg))
	return c
}

func NewSubmitCommand(cfg *config.Config) *cobra.Command {
	var plidStr, image string
	var black bool
	var width, height, x, y uint16
	var wakeups int
	c := &cobra.Command{
		Use:   "submit",
		Short: "Submit image update job",
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
			request := &srv.JobRequest{
				PLID:   plid.String(),
				Width:  bitmap.Width,
				Height: bitmap.Height,
				X:      x,
				Y:      y,
				Bitmap: bitmap.Data,
			}
			if c.Flags().Changed(WakeupsOptionName) {
				request.Wakeups = &wakeups
			}
			id, err := command.NewApiClient(cfg).SubmitJob(request)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.OutOrStdout(), id)
			return nil
		},
	}
	c.Flags().StringVar(&plidStr, PLIDOptionName, "", "Label id, 8 hexadecimal digits, e.g. d039c3de")
	c.MarkFlagRequired(PLIDOptionName)
	c.Flags().StringVar(&image, ImageOptionName, "", "Picture (png, gif, jpeg) or raw packed bitmap file")
	c.Flags().BoolVar(&black, BlackOptionName, false, "Submit all black test image of --width x --height")
	c.Flags().Uint16Var(&width, WidthOptionName, 0, "Image width, required for raw bitmaps")
	c.Flags().Uint16Var(&height, HeightOptionName, 0, "Image height, required for raw bitmaps")
	c.Flags().Uint16Var(&x, XOptionName, 0, "Horizontal offset")
	c.Flags().Uint16Var(&y, YOptionName, 0, "Vertical offset")
	c.Flags().IntVar(&wakeups, WakeupsOptionName, 0, "Number of wakeup frames. Default is taken from server config")
	return c
}

func NewListCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List jobs",
		RunE: func(c *cobra.Command, args []string) error {
			jobs, err := command.NewApiClient(cfg).ListJobs()
			if err != nil {
				return err
			}
			for _, job := range jobs {
				printJob(c, job)
			}
			return nil
		},
	}
}

func NewGetCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show job",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			job, err := command.NewApiClient(cfg).GetJob(args[0])
			if err != nil {
				return err
			}
			printJob(c, job)
			return nil
		},
	}
}

func NewPlanCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "plan <id>",
		Short: "Show frames of job in transmission order",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			frames, err := command.NewApiClient(cfg).JobPlan(args[0])
			if err != nil {
				return err
			}
			for _, frame := range frames {
				fmt.Fprintf(c.OutOrStdout(), "%s x%d: %s\n", frame.Name, frame.Repeat, frame.Frame)
			}
			return nil
		},
	}
}

func NewDeleteCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete job",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return command.NewApiClient(cfg).DeleteJob(args[0])
		},
	}
}

func printJob(c *cobra.Command, job *srv.Job) {
	fmt.Fprintf(c.OutOrStdout(), "%s plid: %s size: %dx%d at %d,%d wakeups: %d bitmap: %d bytes created: %s\n",
		job.ID, job.PLID, job.Width, job.Height, job.X, job.Y, job.Wakeups, len(job.Bitmap),
		job.Created.Format("2006-01-02 15:04:05"))
}
