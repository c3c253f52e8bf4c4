package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"os-simulator/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the simulator HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		app := api.NewApp(cfg)
		logrus.Infof("serving simulator api on :%d", cfg.Port)
		return app.Listen(fmt.Sprintf(":%d", cfg.Port))
	},
}
