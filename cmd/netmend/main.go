// Package main provides the netmend command line tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set during build
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "netmend",
	Short: "Repair the connectivity of line networks",
	Long: `netmend ingests line geometries that should form a single connected
network but arrive as disjoint pieces, and synthesizes the minimal
bridge segments needed to connect them. Original geometry is never
modified, only augmented.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("netmend %s (commit: %s, built: %s)\n", Version, Commit, BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
