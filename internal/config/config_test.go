package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeConfig(t, `{
		"preset": "leadership",
		"experience_tolerance": 1,
		"embed_timeout_seconds": 5
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "leadership", cfg.Preset)
	assert.Equal(t, 1, cfg.ExperienceTolerance)
	assert.Equal(t, 5*time.Second, cfg.EmbedTimeout())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_ExplicitWeights(t *testing.T) {
	path := writeConfig(t, `{
		"category_weights": {"hard_skills": 0.5, "critical_keywords": 0.5},
		"hybrid_weights": {"lexical": 0.6, "semantic": 0.3, "evidence": 0.1}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.CategoryWeights)
	assert.InDelta(t, 0.5, cfg.CategoryWeights.HardSkills, 1e-9)
	require.NotNil(t, cfg.HybridWeights)
	assert.InDelta(t, 0.6, cfg.HybridWeights.Lexical, 1e-9)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_BadJSON(t *testing.T) {
	_, err := Load(writeConfig(t, `{not json`))
	assert.Error(t, err)
}

func TestValidate_RejectsUnknownPreset(t *testing.T) {
	cfg := &Config{Preset: "wizard"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsNegativeTolerance(t *testing.T) {
	cfg := &Config{ExperienceTolerance: -1}
	assert.Error(t, cfg.Validate())
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "technical", cfg.Preset)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 10*time.Second, cfg.EmbedTimeout())
}
