package install

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestRegisterVerifyUnregisterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Claude", "claude_desktop_config.json")
	entry := ServerEntry{Command: "/usr/local/bin/go_transcript", Args: []string{}}

	if err := registerAt(path, ServerName, entry); err != nil {
		t.Fatalf("registerAt: %v", err)
	}

	ok, err := verifyAt(path, ServerName)
	if err != nil || !ok {
		t.Fatalf("verifyAt after register = %v, %v; want true", ok, err)
	}

	removed, err := unregisterAt(path, ServerName)
	if err != nil || !removed {
		t.Fatalf("unregisterAt = %v, %v; want true", removed, err)
	}

	ok, err = verifyAt(path, ServerName)
	if err != nil || ok {
		t.Fatalf("verifyAt after unregister = %v, %v; want false", ok, err)
	}
}

func TestRegisterPreservesUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	existing := `{
  "theme": "dark",
  "mcpServers": {
    "other-server": {"command": "other", "args": ["--x"]}
  },
  "nested": {"keep": [1, 2, 3]}
}`
	if err := os.WriteFile(path, []byte(existing), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := registerAt(path, ServerName, ServerEntry{Command: "go_transcript"}); err != nil {
		t.Fatalf("registerAt: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var cfg map[string]any
	if err := json.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("rewritten config is not valid JSON: %v", err)
	}

	if cfg["theme"] != "dark" {
		t.Errorf("top-level key lost: theme = %v", cfg["theme"])
	}
	if _, ok := cfg["nested"].(map[string]any); !ok {
		t.Error("nested object lost")
	}
	servers, _ := cfg["mcpServers"].(map[string]any)
	if _, ok := servers["other-server"]; !ok {
		t.Error("sibling server registration lost")
	}
	ours, _ := servers[ServerName].(map[string]any)
	if ours == nil || ours["command"] != "go_transcript" {
		t.Errorf("our registration wrong: %v", servers[ServerName])
	}
	if _, ok := ours["args"].([]any); !ok {
		t.Errorf("args must serialize as an array, got %v", ours["args"])
	}
}

func TestRegisterIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	entry := ServerEntry{Command: "old"}
	if err := registerAt(path, ServerName, entry); err != nil {
		t.Fatal(err)
	}
	if err := registerAt(path, ServerName, ServerEntry{Command: "new"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := readConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	servers := cfg["mcpServers"].(map[string]any)
	if len(servers) != 1 {
		t.Fatalf("expected a single registration, got %v", servers)
	}
	ours := servers[ServerName].(map[string]any)
	if ours["command"] != "new" {
		t.Errorf("re-register must refresh the entry, got %v", ours["command"])
	}
}

func TestUnregisterMissingIsNoOp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	// No config file at all.
	removed, err := unregisterAt(path, ServerName)
	if err != nil {
		t.Fatalf("unregisterAt on missing file: %v", err)
	}
	if removed {
		t.Error("nothing to remove, got removed=true")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no-op unregister must not create the config file")
	}

	// Config present but server not registered.
	if err := os.WriteFile(path, []byte(`{"mcpServers":{"other":{}}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	removed, err = unregisterAt(path, ServerName)
	if err != nil || removed {
		t.Errorf("unregisterAt of absent server = %v, %v; want false, nil", removed, err)
	}
}

func TestReadConfigMissingFile(t *testing.T) {
	cfg, err := readConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file must yield empty config, got %v", err)
	}
	if len(cfg) != 0 {
		t.Errorf("cfg = %v, want empty", cfg)
	}
}

func TestReadConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := readConfig(path); err == nil {
		t.Error("expected parse error for invalid JSON")
	}
}

func TestDetectAt(t *testing.T) {
	dir := t.TempDir()
	exists := filepath.Join(dir, "Claude", "claude_desktop_config.json")
	if err := os.MkdirAll(filepath.Dir(exists), 0o755); err != nil {
		t.Fatal(err)
	}

	d := detectAt(ClaudeDesktop, exists, dirExists)
	if !d.Installed {
		t.Errorf("existing config dir must detect as installed: %+v", d)
	}

	d = detectAt(Cursor, filepath.Join(dir, "Cursor", "User", "mcp.json"), dirExists)
	if d.Installed {
		t.Errorf("missing config dir must not detect as installed: %+v", d)
	}
	if d.Reason == "" {
		t.Error("undetected client must carry a reason")
	}

	d = detectAt(ClientID("mystery"), "", dirExists)
	if d.Installed || d.Reason == "" {
		t.Errorf("unknown client must be uninstalled with a reason: %+v", d)
	}
}
