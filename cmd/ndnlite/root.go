package main

import (
	"github.com/spf13/cobra"

	"github.com/ghsecuritylab/ndn-lite-go/log"
)

var config = DefaultConfig()
var configPath string

var rootCmd = &cobra.Command{
	Use:     "ndnlite",
	Short:   "NDN-Lite key management and direct-face demo CLI",
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath != "" {
			loaded, err := ReadConfig(configPath)
			if err != nil {
				return err
			}
			config = loaded
		}
		if level, err := log.ParseLevel(config.LogLevel); err == nil {
			log.SetLevel(level)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.AddCommand(keygenCmd)
	rootCmd.AddCommand(signCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(faceDemoCmd)
}
