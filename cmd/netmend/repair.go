package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/netmend/netmend/internal/core/geometry"
	"github.com/netmend/netmend/pkg/geojsonio"
	"github.com/netmend/netmend/pkg/netmend"
	"github.com/netmend/netmend/pkg/wkt"
)

var (
	repairInput  string
	repairOutput string
	repairFormat string
)

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Connect disjoint line geometries with bridge segments",
	Long: `Reads line geometries (one WKT LINESTRING per line, or a GeoJSON
FeatureCollection), repairs their connectivity, and writes the
augmented segment set in the same format.`,
	RunE: runRepair,
}

func init() {
	repairCmd.Flags().StringVarP(&repairInput, "input", "i", "-", "input file, '-' for stdin")
	repairCmd.Flags().StringVarP(&repairOutput, "output", "o", "-", "output file, '-' for stdout")
	repairCmd.Flags().StringVarP(&repairFormat, "format", "f", "wkt", "geometry format: wkt or geojson")
	rootCmd.AddCommand(repairCmd)
}

func runRepair(cmd *cobra.Command, args []string) error {
	data, err := readInput(repairInput)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	lines, err := decodeLines(data, repairFormat)
	if err != nil {
		return err
	}

	repaired, err := netmend.Repair(lines)
	if err != nil {
		return fmt.Errorf("repair failed: %w", err)
	}

	out, err := encodeLines(repaired, repairFormat)
	if err != nil {
		return err
	}
	if err := writeOutput(repairOutput, out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	cmd.PrintErrf("repaired: %d input lines -> %d segments\n", len(lines), len(repaired))
	return nil
}

func decodeLines(data []byte, format string) ([]geometry.Line, error) {
	switch format {
	case "wkt":
		var lines []geometry.Line
		scanner := bufio.NewScanner(strings.NewReader(string(data)))
		scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
		for scanner.Scan() {
			text := strings.TrimSpace(scanner.Text())
			if text == "" {
				continue
			}
			line, err := wkt.ParseLineString(text)
			if err != nil {
				return nil, err
			}
			lines = append(lines, line)
		}
		return lines, scanner.Err()
	case "geojson":
		return geojsonio.Decode(data)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func encodeLines(lines []geometry.Line, format string) ([]byte, error) {
	switch format {
	case "wkt":
		var sb strings.Builder
		for _, l := range lines {
			sb.WriteString(wkt.EncodeLineString(l))
			sb.WriteByte('\n')
		}
		return []byte(sb.String()), nil
	case "geojson":
		return geojsonio.Encode(lines)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
