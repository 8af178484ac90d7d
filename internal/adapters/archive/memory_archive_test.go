package archive

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mikey/ops-inbox-processor/internal/core"
)

func TestMemoryArchiveStoreAndFetch(t *testing.T) {
	arch := NewMemoryArchive(zap.NewNop())

	results := []core.ProcessingResult{
		{EmailID: "email_001", UrgencyScore: 5, RoutingQueue: core.RoutingGeneralQueue},
		{EmailID: "email_002", UrgencyScore: 9, RoutingQueue: core.RoutingComplianceTeam},
	}
	require.NoError(t, arch.Store(context.Background(), "run-1", results))

	stored, ok := arch.Run("run-1")
	require.True(t, ok)
	assert.Equal(t, results, stored)

	_, ok = arch.Run("run-2")
	assert.False(t, ok)

	assert.NoError(t, arch.Close())
}

func TestMemoryArchiveStoresACopy(t *testing.T) {
	arch := NewMemoryArchive(nil)

	results := []core.ProcessingResult{{EmailID: "email_001"}}
	require.NoError(t, arch.Store(context.Background(), "run-1", results))

	results[0].EmailID = "mutated"

	stored, ok := arch.Run("run-1")
	require.True(t, ok)
	assert.Equal(t, "email_001", stored[0].EmailID)
}
