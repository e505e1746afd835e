package main

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"weather-dashboard/config"
	"weather-dashboard/di"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "weather-dashboard",
		Short:        "Real-time weather dashboard backed by Open-Meteo",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var configPath string
	var env string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(configPath)
			if err != nil {
				return err
			}

			container, err := di.NewContainer(settings, env)
			if err != nil {
				return err
			}
			defer container.Close()

			return container.WeatherDashboardHttpServer.Start()
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a config file (default ./config.yaml)")
	cmd.Flags().StringVar(&env, "env", di.ENV_PROD, "prod calls Open-Meteo, anything else serves fixtures")
	return cmd
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Error loading .env file: %v", err)
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
