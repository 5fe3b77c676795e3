package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

//	@title						Doha Popular API
//	@version					1.0
//	@description				Content and intake API for the Doha Popular Facility Management site.
//	@BasePath					/api
//	@securityDefinitions.apikey	AdminSession
//	@in							header
//	@name						Authorization
//	@description				"Bearer <token>" from /auth/login, or the admin session cookie.
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "dohapopular",
	Short:         "Doha Popular site API and back office",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(workerCmd)
	rootCmd.AddCommand(seedCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dohapopular version %s\n", version)
	},
}
