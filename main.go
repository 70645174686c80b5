package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bookmarkd/bookmarkd/internal/cli"
	"github.com/bookmarkd/bookmarkd/internal/config"
	"github.com/bookmarkd/bookmarkd/internal/log"
)

const greetingBanner = `
██████   ██████   ██████  ██   ██ ███    ███  █████  ██████  ██   ██ ██████
██   ██ ██    ██ ██    ██ ██  ██  ████  ████ ██   ██ ██   ██ ██  ██  ██   ██
██████  ██    ██ ██    ██ █████   ██ ████ ██ ███████ ██████  █████   ██   ██
██   ██ ██    ██ ██    ██ ██  ██  ██  ██  ██ ██   ██ ██   ██ ██  ██  ██   ██
██████   ██████   ██████  ██   ██ ██      ██ ██   ██ ██   ██ ██   ██ ██████
`

var (
	configFile string

	rootCmd = &cobra.Command{
		Use:          "bookmarkd",
		Short:        "BookMarkd is a reading tracker for your terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.GetConfig(); err != nil {
				return err
			}
			if configFile != "" {
				if _, err := config.ParseFile(configFile); err != nil {
					return err
				}
			}
			log.Logger = log.NewLogger()
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(greetingBanner)
			cmd.Help()
		},
	}
)

func main() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to config file")
	cli.AddCommands(rootCmd)

	defer func() {
		if log.Logger != nil {
			log.Logger.Sync()
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
