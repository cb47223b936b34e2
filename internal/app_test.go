package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/valter-silva-au/umsebenzi/internal/cli"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"UMSEBENZI_HOST", "UMSEBENZI_CREDENTIALS", "UMSEBENZI_AUTH_SCHEME", "UMSEBENZI_CONFIG", "UMSEBENZI_DEBUG"} {
		t.Setenv(k, "")
	}
}

func restoreCLI(t *testing.T) {
	t.Helper()
	cfg, api, p, c, b := cli.ConfigMgr, cli.API, cli.Prompter, cli.Capturer, cli.Bootstrap
	t.Cleanup(func() {
		cli.ConfigMgr, cli.API, cli.Prompter, cli.Capturer, cli.Bootstrap = cfg, api, p, c, b
	})
}

func writeConfig(t *testing.T, host string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "umsebenzi.toml")
	content := "host = \"" + host + "\"\ncredentials = \"secret-token\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewApp_WiresServices(t *testing.T) {
	clearEnv(t)
	restoreCLI(t)
	path := writeConfig(t, "http://localhost:8000/api/v1")

	app := NewApp(Options{ConfigPath: path, Stdin: strings.NewReader(""), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})
	if app.ConfigMgr == nil || app.Client == nil || app.Prompter == nil || app.Capturer == nil || app.Logger == nil {
		t.Fatalf("NewApp left a service nil: %+v", app)
	}
	if app.ConfigMgr.Path() != path {
		t.Errorf("config path = %q, want %q", app.ConfigMgr.Path(), path)
	}

	app.Wire()
	if cli.API == nil || cli.ConfigMgr == nil || cli.Prompter == nil || cli.Capturer == nil {
		t.Error("Wire did not publish every service")
	}
}

func TestNewApp_MissingConfigIsNotFatal(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "absent.toml")

	app := NewApp(Options{ConfigPath: path, Stderr: &bytes.Buffer{}})
	if _, err := app.ConfigMgr.LoadConfig(); err == nil {
		t.Error("LoadConfig on a missing file should fail")
	}
}

func TestNewApp_ClientUsesConfiguredHost(t *testing.T) {
	clearEnv(t)
	var gotAuth, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]any{{"id": 1, "title": "Website", "code": "WEB"}})
	}))
	defer srv.Close()

	path := writeConfig(t, srv.URL)
	stderr := &bytes.Buffer{}
	app := NewApp(Options{ConfigPath: path, Verbose: true, Version: "1.2.3", Stderr: stderr})

	projects, err := app.Client.ListProjects(context.Background())
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	if len(projects) != 1 || projects[0].Code != "WEB" {
		t.Errorf("projects = %+v", projects)
	}
	if gotAuth != "Token secret-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotAgent != "umsebenzi/1.2.3" {
		t.Errorf("User-Agent = %q", gotAgent)
	}
	if !strings.Contains(stderr.String(), "response received") {
		t.Errorf("verbose logging missing from stderr: %q", stderr.String())
	}
}

func TestInit_InstallsBootstrap(t *testing.T) {
	clearEnv(t)
	restoreCLI(t)
	cli.API, cli.ConfigMgr = nil, nil

	Init("test")
	if cli.Bootstrap == nil {
		t.Fatal("Init did not install the bootstrap hook")
	}

	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := cli.Bootstrap(path, false); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if cli.ConfigMgr == nil || cli.ConfigMgr.Path() != path {
		t.Errorf("ConfigMgr not wired to %q", path)
	}
	if cli.API == nil {
		t.Error("API not wired")
	}
}

func TestNewApp_QuietByDefault(t *testing.T) {
	clearEnv(t)
	stderr := &bytes.Buffer{}
	app := NewApp(Options{ConfigPath: filepath.Join(t.TempDir(), "x.toml"), Stderr: stderr})
	app.Logger.Debug("hidden")
	if stderr.Len() != 0 {
		t.Errorf("debug output leaked without --verbose: %q", stderr.String())
	}
}
