package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/netmend/netmend/internal/app/dto"
	"github.com/netmend/netmend/pkg/netmend"
)

var (
	statsInput  string
	statsFormat string
	statsJSON   bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Report component and bridge statistics without writing geometry",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsInput, "input", "i", "-", "input file, '-' for stdin")
	statsCmd.Flags().StringVarP(&statsFormat, "format", "f", "wkt", "geometry format: wkt or geojson")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output stats as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	data, err := readInput(statsInput)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	lines, err := decodeLines(data, statsFormat)
	if err != nil {
		return err
	}

	rt := netmend.NewRuntime()
	resp, err := rt.Repair(context.Background(), &dto.RepairRequest{Lines: lines})
	if err != nil {
		return fmt.Errorf("repair failed: %w", err)
	}

	if statsJSON {
		out, err := json.MarshalIndent(resp.Stats, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal stats: %w", err)
		}
		cmd.Println(string(out))
		return nil
	}

	cmd.Printf("input lines:      %d\n", resp.Stats.InputLines)
	cmd.Printf("atomic segments:  %d\n", resp.Stats.AtomicSegments)
	cmd.Printf("nodes:            %d\n", resp.Stats.Nodes)
	cmd.Printf("components:       %d -> %d\n", resp.Stats.ComponentsIn, resp.Stats.ComponentsOut)
	cmd.Printf("bridges added:    %d\n", resp.Stats.BridgesAdded)
	cmd.Printf("bridged length:   %.3f\n", resp.Stats.BridgedLength)
	return nil
}
