package zone

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectTargetHonorsEnvOverride(t *testing.T) {
	t.Setenv("ZONE_TARGET", "fallback")
	tgt := selectTarget()
	assert.Equal(t, "fallback", tgt.name)
}

func TestSelectTargetUnknownEnvFallsBackToProbeOrder(t *testing.T) {
	t.Setenv("ZONE_TARGET", "does-not-exist")
	tgt := selectTarget()
	require.NotEmpty(t, tgt.name)
	assert.True(t, tgt.probe())
}

func TestSelectedTargetMatchesSelectTarget(t *testing.T) {
	os.Unsetenv("ZONE_TARGET")
	assert.Equal(t, selectTarget().name, SelectedTarget())
}
