// Package main is the entry point for the recruit gRPC server and its tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dreamshade/recruit-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "recruit-api",
	Short: "Recruit API gRPC Server",
	Long: `Recruit API rolls procedurally generated recruits from tunable stat profiles
and keeps each player's roster over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(rollCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
