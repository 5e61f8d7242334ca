package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsDefaults(t *testing.T) {
	d, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", d.APIHost)
	assert.Equal(t, 8000, d.APIPort)
	assert.Equal(t, 4, d.VIPDigestHours)
	assert.False(t, d.Phase2ExtractionEnabled)
	assert.Equal(t, 50, d.Phase2BatchSize)
	assert.Equal(t, 600, d.Phase2LeaseSeconds)
	assert.Equal(t, 540, d.Phase2SchedulerLockSeconds)
	assert.Equal(t, "gpt-4o-mini", d.OpenAIModel)
	assert.Equal(t, 30*time.Second, d.OpenAITimeout)
	assert.Equal(t, 2, d.OpenAIMaxRetries)
}

func TestLoadSettingsOverrides(t *testing.T) {
	t.Setenv("API_PORT", "9000")
	t.Setenv("PHASE2_EXTRACTION_ENABLED", "true")
	t.Setenv("PHASE2_BATCH_SIZE", "10")
	t.Setenv("OPENAI_TIMEOUT_SECONDS", "2.5")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PHASE2_ADMIN_TOKEN", "hunter2")

	d, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, 9000, d.APIPort)
	assert.True(t, d.Phase2ExtractionEnabled)
	assert.Equal(t, 10, d.Phase2BatchSize)
	assert.Equal(t, 2500*time.Millisecond, d.OpenAITimeout)
	assert.Equal(t, "sk-test", d.OpenAIAPIKey)
	assert.Equal(t, "hunter2", d.Phase2AdminToken)
}

func TestLoadSettingsRejectsBadInt(t *testing.T) {
	t.Setenv("API_PORT", "not-a-port")

	_, err := LoadSettings()
	assert.ErrorContains(t, err, "API_PORT")
}

func TestLoadRoutingConfigDefaults(t *testing.T) {
	cfg, err := LoadRoutingConfig("")
	require.NoError(t, err)

	assert.Equal(t, []string{"macro_events"}, cfg.TopicDestinations["macro_econ"])
	assert.False(t, cfg.EvidenceEnabled)
	require.Len(t, cfg.ImpactPriorityThresholds, 4)
}

func TestLoadRoutingConfigOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routing.yaml")
	content := []byte("evidence_enabled: true\ntopic_destinations:\n  crypto: [crypto_hot]\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := LoadRoutingConfig(path)
	require.NoError(t, err)

	assert.True(t, cfg.EvidenceEnabled)
	assert.Equal(t, []string{"crypto_hot"}, cfg.TopicDestinations["crypto"])
	// Untouched topics keep their defaults.
	assert.Equal(t, []string{"macro_events"}, cfg.TopicDestinations["macro_econ"])
	require.Len(t, cfg.ImpactPriorityThresholds, 4)
}

func TestLoadRoutingConfigMissingFile(t *testing.T) {
	_, err := LoadRoutingConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
