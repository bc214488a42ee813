// Package usecases drives the core repair pipeline behind application
// interfaces.
package usecases

import (
	"context"

	"github.com/netmend/netmend/internal/app/dto"
)

// NetworkRepairer turns a collection of line geometries into a
// connected one.
type NetworkRepairer interface {
	// Repair decomposes the input, detects disjoint components and
	// synthesizes the bridges needed to reach a single component.
	Repair(ctx context.Context, req *dto.RepairRequest) (*dto.RepairResponse, error)
}
