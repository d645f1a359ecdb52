package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdwidth/pkg/config"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MDWIDTH_ROOT", "/srv/book/src")
	t.Setenv("MDWIDTH_FORMAT", "json")
	t.Setenv("MDWIDTH_COLOR", "never")
	t.Setenv("MDWIDTH_JOBS", "8")
	t.Setenv("MDWIDTH_FOLLOW_SYMLINKS", "true")
	t.Setenv("MDWIDTH_IGNORE", " drafts/** , ,vendor/** ")

	cfg := config.NewConfig()
	require.NoError(t, LoadFromEnv(cfg))

	assert.Equal(t, "/srv/book/src", cfg.Root)
	assert.Equal(t, config.FormatJSON, cfg.Format)
	assert.Equal(t, config.ColorNever, cfg.Color)
	assert.Equal(t, 8, cfg.Jobs)
	assert.True(t, cfg.FollowsSymlinks())
	assert.Equal(t, []string{"drafts/**", "vendor/**"}, cfg.Ignore)
}

func TestLoadFromEnv_InvalidValues(t *testing.T) {
	t.Run("bad integer", func(t *testing.T) {
		t.Setenv("MDWIDTH_JOBS", "many")
		err := LoadFromEnv(config.NewConfig())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "MDWIDTH_JOBS")
	})

	t.Run("bad boolean", func(t *testing.T) {
		t.Setenv("MDWIDTH_FOLLOW_SYMLINKS", "maybe")
		err := LoadFromEnv(config.NewConfig())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "MDWIDTH_FOLLOW_SYMLINKS")
	})
}

func TestLoadFromEnv_NilConfig(t *testing.T) {
	assert.NoError(t, LoadFromEnv(nil))
}

func TestListEnvVars(t *testing.T) {
	vars := ListEnvVars()
	assert.Len(t, vars, len(envMappings))
	assert.Contains(t, vars, "MDWIDTH_JOBS")
	assert.Contains(t, vars, "MDWIDTH_IGNORE")
}

func TestMerge(t *testing.T) {
	base := &config.Config{Format: config.FormatText, Jobs: 2, Ignore: []string{"a/**"}}

	assert.Same(t, base, merge(base, nil))
	assert.Equal(t, base, merge(nil, base))

	merged := merge(base, &config.Config{Jobs: 4, FollowSymlinks: boolPtr(true)})
	assert.Equal(t, config.FormatText, merged.Format)
	assert.Equal(t, 4, merged.Jobs)
	assert.True(t, merged.FollowsSymlinks())
	assert.Equal(t, []string{"a/**"}, merged.Ignore)

	merged = merge(base, &config.Config{Ignore: []string{}})
	assert.Empty(t, merged.Ignore)
	assert.Equal(t, []string{"a/**"}, base.Ignore)
}

func boolPtr(b bool) *bool {
	return &b
}

func TestMerge_FalseOverridesTrue(t *testing.T) {
	base := &config.Config{FollowSymlinks: boolPtr(true)}

	merged := merge(base, &config.Config{FollowSymlinks: boolPtr(false)})
	require.NotNil(t, merged.FollowSymlinks)
	assert.False(t, merged.FollowsSymlinks())
	assert.True(t, base.FollowsSymlinks())

	merged = merge(base, &config.Config{Jobs: 3})
	assert.True(t, merged.FollowsSymlinks())
}

func TestLoadFromEnv_FalseDisablesFollowSymlinks(t *testing.T) {
	t.Setenv("MDWIDTH_FOLLOW_SYMLINKS", "false")

	cfg := &config.Config{FollowSymlinks: boolPtr(true)}
	require.NoError(t, LoadFromEnv(cfg))
	require.NotNil(t, cfg.FollowSymlinks)
	assert.False(t, cfg.FollowsSymlinks())
}
