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

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-esl/cmd/completion"
	"jinr.ru/greenlab/go-esl/cmd/config"
	"jinr.ru/greenlab/go-esl/cmd/frame"
	"jinr.ru/greenlab/go-esl/cmd/job"
	"jinr.ru/greenlab/go-esl/cmd/send"
	"jinr.ru/greenlab/go-esl/cmd/serve"
	pkgconfig "jinr.ru/greenlab/go-esl/pkg/config"
	"jinr.ru/greenlab/go-esl/pkg/log"
)

const (
	LogLevelOptionName = "log-level"
	ConfigOptionName   = "config"
)

func NewRootCommand(out io.Writer) *cobra.Command {
	var logLevel, configPath string
	cfg := pkgconfig.NewDefaultConfig()
	cmd := &cobra.Command{
		Use:          "go-esl",
		Short:        "Tool to program graphic electronic shelf labels over PP16",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				cfg.SetPath(configPath)
			}
			if err := cfg.Load(); err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Level = logLevel
			}
			if _, err := log.ParseLevel(cfg.Level); err != nil {
				return err
			}
			log.Init(cmd.ErrOrStderr(), cfg.Level, cfg.LogRotate())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Sync()
		},
	}
	cmd.SetOut(out)
	cmd.AddCommand(config.NewCommand(cfg))
	cmd.AddCommand(frame.NewCommand(cfg))
	cmd.AddCommand(send.NewCommand(cfg))
	cmd.AddCommand(serve.NewCommand(cfg))
	cmd.AddCommand(job.NewCommand(cfg))
	cmd.AddCommand(completion.NewCommand())
	cmd.PersistentFlags().StringVar(&logLevel, LogLevelOptionName, "", fmt.Sprintf("Log level. %s", log.HelpLevels))
	cmd.PersistentFlags().StringVar(&configPath, ConfigOptionName, "", fmt.Sprintf("Config file. Default %s", pkgconfig.DefaultConfigPath()))
	return cmd
}
