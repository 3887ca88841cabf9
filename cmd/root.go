package cmd

import (
	"fmt"
	"log"
	"os"

	"soundcheck/server"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "soundcheck",
	Short: "Soundcheck is a live music discovery service.",
	Run: func(cmd *cobra.Command, args []string) {
		log.Println("Starting Soundcheck server...")
		// server.Start now handles its own port and logging for startup.
		server.Start()
	},
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
