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

package serve

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-esl/pkg/config"
	"jinr.ru/greenlab/go-esl/pkg/log"
	"jinr.ru/greenlab/go-esl/pkg/srv"
)

const (
	AddressOptionName = "address"
	PortOptionName    = "port"
	DBOptionName      = "db"
)

func NewCommand(cfg *config.Config) *cobra.Command {
	var address, dbPath string
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if address != "" {
				cfg.Address = address
			}
			if port != 0 {
				cfg.Port = port
			}
			if dbPath != "" {
				cfg.DBPath = dbPath
			}
			state, err := srv.NewJobState(cfg.DBPath)
			if err != nil {
				return err
			}
			defer state.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			server, err := srv.NewApiServer(ctx, cfg, state)
			if err != nil {
				return err
			}
			log.Info("Job state: %s", cfg.DBPath)
			if err := server.Run(); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&address, AddressOptionName, "", fmt.Sprintf("Address to bind. E.g. %s", config.DefaultApiAddress))
	cmd.Flags().IntVar(&port, PortOptionName, 0, fmt.Sprintf("Port number to bind. E.g. %d", config.DefaultApiPort))
	cmd.Flags().StringVar(&dbPath, DBOptionName, "", "Job state database file")
	return cmd
}
