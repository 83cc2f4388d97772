package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8000", cfg.Server.Addr())
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, filepath.Join("data", "student_data.json"), cfg.Data.StudentPath())
	assert.Equal(t, 60, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)

	_, err = os.Stat(filepath.Join(dir, "data"))
	assert.NoError(t, err, "data dir should be created")
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	content := `server:
  host: 127.0.0.1
  port: 9000
  mode: debug
data:
  dir: mydata
rate_limit:
  requests_per_minute: 5
  burst: 2
cors:
  allowed_origins:
    - http://localhost:3000
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr())
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "mydata", cfg.Data.Dir)
	assert.Equal(t, 5, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, 2, cfg.RateLimit.Burst)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("STUDYBUDDY_PORT", "8443")
	t.Setenv("STUDYBUDDY_DATA_DIR", "envdata")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 8443, cfg.Server.Port)
	assert.Equal(t, "envdata", cfg.Data.Dir)
}

func TestLoad_InvalidPort(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("STUDYBUDDY_PORT", "70000")

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [broken"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestDataConfig_AbsoluteStudentFile(t *testing.T) {
	d := DataConfig{Dir: "data", StudentFile: "/var/lib/studybuddy/student.json"}
	assert.Equal(t, "/var/lib/studybuddy/student.json", d.StudentPath())
}
