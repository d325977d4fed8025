package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("IMGFLIP_USERNAME", "")
	t.Setenv("IMGFLIP_PASSWORD", "")
	clearOverrides(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "llama3-8b-8192", cfg.LLM.Model)
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.LLM.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "https://api.imgflip.com/caption_image", cfg.Imgflip.Endpoint)
	assert.Equal(t, "https://i.imgflip.com/7f0mne.jpg", cfg.Imgflip.FallbackURL)
	assert.ElementsMatch(t,
		[]string{"GROQ_API_KEY", "IMGFLIP_USERNAME", "IMGFLIP_PASSWORD"},
		cfg.MissingCredentials())
}

func TestLoad_CredentialsFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GROQ_API_KEY", "gsk-test")
	t.Setenv("IMGFLIP_USERNAME", "meme-user")
	t.Setenv("IMGFLIP_PASSWORD", "meme-pass")
	clearOverrides(t)
	t.Setenv("LLM_MODEL", "llama-3.1-8b-instant")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "gsk-test", cfg.LLM.APIKey)
	assert.Equal(t, "meme-user", cfg.Imgflip.Username)
	assert.Equal(t, "meme-pass", cfg.Imgflip.Password)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.LLM.Model)
	assert.Empty(t, cfg.MissingCredentials())
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	clearOverrides(t)
	path := filepath.Join(dir, "moodmeme.yaml")
	content := []byte("server:\n  port: 9090\n  mode: release\nimgflip:\n  timeout: 5s\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, 5*time.Second, cfg.Imgflip.Timeout)
}

// clearOverrides blanks environment variables that would shadow defaults.
func clearOverrides(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "GIN_MODE", "LLM_MODEL", "GROQ_BASE_URL", "CONFIG_PATH"} {
		t.Setenv(key, "")
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
