package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/netmend/netmend/internal/app/dto"
	"github.com/netmend/netmend/internal/core/bridge"
	"github.com/netmend/netmend/internal/core/geometry"
	"github.com/netmend/netmend/internal/core/topology"
	"github.com/netmend/netmend/internal/infrastructure/metrics"
)

// segmentNamespace seeds the UUIDv5 ids handed to derived segments, so
// the same geometry always maps to the same id.
var segmentNamespace = uuid.MustParse("7b7e6fd2-1f83-4ab0-9a6f-3c2d5e8b1c4a")

// DefaultRepairer implements the NetworkRepairer interface.
//
// The pipeline is: decompose the lines into atomic segments, build the
// topology graph keyed on exact endpoint coordinates, group connected
// components, and, unless a single component already covers the graph,
// run the bridge synthesizer until one remains. Original segments are
// never altered or removed; the output is the input segment set plus
// any bridges.
type DefaultRepairer struct{}

// NewDefaultRepairer creates a repairer.
func NewDefaultRepairer() *DefaultRepairer {
	return &DefaultRepairer{}
}

// Repair runs the full repair pipeline for one request. The call is
// pure computation: no I/O, no retained state, and the graph built for
// the run is discarded before returning.
func (r *DefaultRepairer) Repair(ctx context.Context, req *dto.RepairRequest) (*dto.RepairResponse, error) {
	start := time.Now()
	if err := dto.ValidateStruct(req); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	resp := &dto.RepairResponse{
		JobID:     uuid.New().String(),
		NetworkID: req.NetworkID,
		StartTime: start,
	}

	// Empty in, empty out. Not an error.
	if len(req.Lines) == 0 {
		resp.Status = dto.RepairStatusNoop
		resp.Segments = []geometry.Line{}
		return finish(resp, start), nil
	}

	segments, err := geometry.Decompose(req.Lines)
	if err != nil {
		return nil, fmt.Errorf("decomposition failed: %w", err)
	}

	graph := topology.BuildGraph(segments)
	components := graph.Components()

	resp.Stats = dto.RepairStats{
		InputLines:     len(req.Lines),
		AtomicSegments: len(segments),
		Nodes:          graph.NodeCount(),
		ComponentsIn:   len(components),
		ComponentsOut:  1,
	}
	for _, s := range segments {
		resp.Stats.OriginalLength += s.Length()
	}

	// Success fast-path: already one component, return unchanged.
	if len(components) <= 1 {
		resp.Status = dto.RepairStatusNoop
		resp.Segments = segmentsToLines(segments, !req.Config.StripAttributes)
		metrics.IncRepairs()
		return finish(resp, start), nil
	}

	bridges, err := bridge.NewSynthesizer(graph).Connect()
	if err != nil {
		return nil, fmt.Errorf("bridging failed: %w", err)
	}
	if req.Config.MaxBridges > 0 && len(bridges) > req.Config.MaxBridges {
		return nil, fmt.Errorf("%w: %d bridges needed, %d allowed",
			dto.ErrRepairFailed, len(bridges), req.Config.MaxBridges)
	}

	for i := range bridges {
		bridges[i].Attributes.ID = segmentID(bridges[i])
		resp.Stats.BridgedLength += bridges[i].Length()
	}
	resp.Stats.BridgesAdded = len(bridges)
	resp.Status = dto.RepairStatusCompleted
	resp.Segments = segmentsToLines(segments, !req.Config.StripAttributes)
	resp.Bridges = segmentsToLines(bridges, true)

	metrics.IncRepairs()
	metrics.AddBridges(int64(len(bridges)))
	metrics.AddComponentsMerged(int64(len(components) - 1))
	return finish(resp, start), nil
}

// segmentID derives a stable id from the segment endpoints.
func segmentID(s geometry.Segment) string {
	name := fmt.Sprintf("%v|%v", s.Start, s.End)
	return uuid.NewSHA1(segmentNamespace, []byte(name)).String()
}

// segmentsToLines converts segments back into two-point lines,
// optionally stripping the inherited parent attributes.
func segmentsToLines(segments []geometry.Segment, keepAttrs bool) []geometry.Line {
	out := make([]geometry.Line, len(segments))
	for i, s := range segments {
		line := s.Line()
		if !keepAttrs {
			line.Attributes = geometry.Attributes{Length: s.Length()}
		}
		out[i] = line
	}
	return out
}

func finish(resp *dto.RepairResponse, start time.Time) *dto.RepairResponse {
	resp.EndTime = time.Now()
	resp.DurationMS = resp.EndTime.Sub(start).Milliseconds()
	return resp
}
