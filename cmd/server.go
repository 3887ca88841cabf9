package cmd

import (
	"soundcheck/server"

	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "启动Soundcheck服务器",
	Long:  `启动Soundcheck演出发现系统的HTTP服务器，提供API服务`,
	Run: func(cmd *cobra.Command, args []string) {
		server.Start()
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
