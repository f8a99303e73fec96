package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NoConfigFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	cfg, err := Load(fs)

	require.NoError(t, err)
	assert.Equal(t, DefaultDirectory, cfg.Output.Directory)
	assert.Equal(t, DefaultGraphFormat, cfg.Graph.Format)
	assert.Empty(t, cfg.Aws.Profile)
	assert.Empty(t, cfg.Aws.Regions)
	assert.False(t, cfg.HasStaticCredentials())
}

func TestLoad_FromWorkingDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir, err := os.Getwd()
	require.NoError(t, err)

	content := []byte(`
aws:
  profile: staging
  regions:
    - eu-west-1
    - us-east-1
output:
  directory: /tmp/reports
  placeholder: "-"
graph:
  format: dot
`)
	require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, "awsrc.yml"), content, 0o644))

	cfg, err := Load(fs)

	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.Aws.Profile)
	assert.Equal(t, []string{"eu-west-1", "us-east-1"}, cfg.Aws.Regions)
	assert.Equal(t, "/tmp/reports", cfg.Output.Directory)
	assert.Equal(t, "-", cfg.Output.Placeholder)
	assert.Equal(t, "dot", cfg.Graph.Format)
}

func TestLoad_PrefersYmlOverYaml(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir, err := os.Getwd()
	require.NoError(t, err)

	require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, "awsrc.yml"),
		[]byte("aws:\n  profile: first\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, "awsrc.yaml"),
		[]byte("aws:\n  profile: second\n"), 0o644))

	cfg, err := Load(fs)

	require.NoError(t, err)
	assert.Equal(t, "first", cfg.Aws.Profile)
}

func TestLoad_HomeDirectoryFallback(t *testing.T) {
	fs := afero.NewMemMapFs()
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	require.NoError(t, afero.WriteFile(fs, filepath.Join(home, ".awsrc.yaml"),
		[]byte("aws:\n  profile: homecfg\n"), 0o644))

	cfg, err := Load(fs)

	require.NoError(t, err)
	assert.Equal(t, "homecfg", cfg.Aws.Profile)
}

func TestLoad_InvalidYaml(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir, err := os.Getwd()
	require.NoError(t, err)

	require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, "awsrc.yml"),
		[]byte("aws: [unclosed"), 0o644))

	_, err = Load(fs)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoad_DefaultsAppliedToPartialConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir, err := os.Getwd()
	require.NoError(t, err)

	require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, "awsrc.yml"),
		[]byte("aws:\n  profile: ops\n"), 0o644))

	cfg, err := Load(fs)

	require.NoError(t, err)
	assert.Equal(t, "ops", cfg.Aws.Profile)
	assert.Equal(t, DefaultDirectory, cfg.Output.Directory)
	assert.Equal(t, DefaultGraphFormat, cfg.Graph.Format)
}

func TestHasStaticCredentials(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.HasStaticCredentials())

	cfg.Aws.AccessKeyID = "AKIAEXAMPLE"
	assert.False(t, cfg.HasStaticCredentials())

	cfg.Aws.SecretAccessKey = "secret"
	assert.True(t, cfg.HasStaticCredentials())
}
