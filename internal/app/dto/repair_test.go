package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netmend/netmend/internal/core/geometry"
)

func TestRepairRequest_Validate(t *testing.T) {
	valid := RepairRequest{
		Lines: []geometry.Line{
			{Points: []geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}},
		},
	}
	assert.NoError(t, valid.Validate())

	negCap := RepairRequest{Config: RepairConfig{MaxBridges: -1}}
	assert.ErrorIs(t, negCap.Validate(), ErrInvalidConfig)

	badLine := RepairRequest{
		Lines: []geometry.Line{{Points: []geometry.Point{{X: 0, Y: 0}}}},
	}
	assert.ErrorIs(t, badLine.Validate(), geometry.ErrTooFewPoints)
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, ValidateStruct(&RepairRequest{}))

	err := ValidateStruct(&RepairRequest{Config: RepairConfig{MaxBridges: -1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	// Error messages name fields by their JSON tags.
	assert.Contains(t, err.Error(), "max_bridges")
}
