package dto

import (
	"time"

	"github.com/netmend/netmend/internal/core/geometry"
)

// RepairRequest asks for one network to be made connected.
type RepairRequest struct {
	NetworkID string          `json:"network_id,omitempty"`
	Lines     []geometry.Line `json:"lines" validate:"dive"`
	Config    RepairConfig    `json:"config"`
}

// RepairConfig tunes a repair run.
type RepairConfig struct {
	// MaxBridges caps the number of synthesized segments; zero means
	// no cap beyond the structural K-1 bound.
	MaxBridges int `json:"max_bridges,omitempty" validate:"gte=0"`
	// StripAttributes drops the inherited parent attributes from the
	// decomposed segments in the response, keeping only the computed
	// length. Originals keep their attributes by default.
	StripAttributes bool `json:"strip_attributes,omitempty"`
	// DebugMode enables verbose logging in the adapters.
	DebugMode bool `json:"debug_mode,omitempty"`
}

// RepairResponse carries the augmented segment set and run statistics.
type RepairResponse struct {
	JobID      string          `json:"job_id"`
	NetworkID  string          `json:"network_id,omitempty"`
	Status     RepairStatus    `json:"status"`
	Segments   []geometry.Line `json:"segments"`
	Bridges    []geometry.Line `json:"bridges,omitempty"`
	Stats      RepairStats     `json:"stats"`
	StartTime  time.Time       `json:"start_time"`
	EndTime    time.Time       `json:"end_time"`
	DurationMS int64           `json:"duration_ms"`
	Error      string          `json:"error,omitempty"`
}

// RepairStatus represents the outcome of a repair run.
type RepairStatus string

const (
	RepairStatusCompleted RepairStatus = "completed"
	RepairStatusNoop      RepairStatus = "noop"
	RepairStatusFailed    RepairStatus = "failed"
)

// RepairStats summarizes what the run did.
type RepairStats struct {
	InputLines     int     `json:"input_lines"`
	AtomicSegments int     `json:"atomic_segments"`
	Nodes          int     `json:"nodes"`
	ComponentsIn   int     `json:"components_in"`
	ComponentsOut  int     `json:"components_out"`
	BridgesAdded   int     `json:"bridges_added"`
	BridgedLength  float64 `json:"bridged_length"`
	OriginalLength float64 `json:"original_length"`
}

// Validate validates the repair request
func (r *RepairRequest) Validate() error {
	if r.Config.MaxBridges < 0 {
		return ErrInvalidConfig
	}
	for i := range r.Lines {
		if err := r.Lines[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
