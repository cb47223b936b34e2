package cli

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/valter-silva-au/umsebenzi/internal/core"
	"github.com/valter-silva-au/umsebenzi/pkg/models"
)

func withConfig(t *testing.T, answers ...string) core.ConfigurationManager {
	t.Helper()
	for _, key := range []string{"UMSEBENZI_HOST", "UMSEBENZI_CREDENTIALS", "UMSEBENZI_AUTH_SCHEME"} {
		t.Setenv(key, "")
	}
	withServices(t, newFakeRemote(), answers...)
	ConfigMgr = core.NewConfigurationManager(filepath.Join(t.TempDir(), "umsebenzi", core.ConfigFileName))
	return ConfigMgr
}

func TestConfigAdd_NewFile(t *testing.T) {
	mgr := withConfig(t, "", "s3cr3t-token")

	out, _, err := run(configAddCmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Configuration saved") {
		t.Errorf("unexpected output: %s", out)
	}

	cfg, err := mgr.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Host != models.DefaultHost || cfg.Credentials != "s3cr3t-token" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestConfigAdd_KeepsExistingHost(t *testing.T) {
	mgr := withConfig(t, "", "new-token")
	if err := mgr.SaveConfig(&models.Config{Host: "https://tasks.example.com/api/v1", Credentials: "old"}); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	if _, _, err := run(configAddCmd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg, _ := mgr.LoadConfig()
	if cfg.Host != "https://tasks.example.com/api/v1" || cfg.Credentials != "new-token" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestConfigAdd_InvalidInput(t *testing.T) {
	withConfig(t, "localhost:8000")
	if _, _, err := run(configAddCmd); !isInputError(err) {
		t.Errorf("expected input error for relative host, got %v", err)
	}

	withConfig(t, "", "")
	_, _, err := run(configAddCmd)
	if !errors.Is(err, core.ErrRequired) {
		t.Errorf("expected required token error, got %v", err)
	}
}

func TestConfigShow_MasksToken(t *testing.T) {
	mgr := withConfig(t)
	if err := mgr.SaveConfig(&models.Config{Host: "http://localhost:8000/api/v1", Credentials: "abcdef123456"}); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	out, _, err := run(configCmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "abcdef123456") {
		t.Error("token must be masked")
	}
	if !strings.Contains(out, "********3456") {
		t.Errorf("masked token missing:\n%s", out)
	}
}

func TestConfigShow_Missing(t *testing.T) {
	withConfig(t)
	_, _, err := run(configCmd)
	if !errors.Is(err, core.ErrConfigUnavailable) {
		t.Errorf("expected ErrConfigUnavailable, got %v", err)
	}
}

func TestConfigTaskStatus(t *testing.T) {
	out, _, err := run(configTaskStatusCmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"IN_PROGRESS", "In Progress", "7"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q:\n%s", want, out)
		}
	}
}
