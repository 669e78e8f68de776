package install

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ServerEntry is the registration payload written under mcpServers.<name>.
type ServerEntry struct {
	Command string   `json:"command"`
	Args    []string `json:"args"`
}

// readConfig loads a client config file. A missing file yields an empty
// config; the rest of the file's keys are preserved as-is, since client
// configs carry plenty of unrelated settings.
func readConfig(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg map[string]any
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg == nil {
		cfg = map[string]any{}
	}
	return cfg, nil
}

// writeConfig writes a client config with pretty formatting, creating the
// parent directory if needed.
func writeConfig(path string, cfg map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir for %s: %w", path, err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config %s: %w", path, err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// mcpServers returns the config's mcpServers object, creating it if absent.
func mcpServers(cfg map[string]any) map[string]any {
	if servers, ok := cfg["mcpServers"].(map[string]any); ok {
		return servers
	}
	servers := map[string]any{}
	cfg["mcpServers"] = servers
	return servers
}

func addServer(cfg map[string]any, name string, entry ServerEntry) {
	args := entry.Args
	if args == nil {
		args = []string{}
	}
	mcpServers(cfg)[name] = map[string]any{
		"command": entry.Command,
		"args":    args,
	}
}

// removeServer deletes a registration; reports whether it was present.
func removeServer(cfg map[string]any, name string) bool {
	servers, ok := cfg["mcpServers"].(map[string]any)
	if !ok {
		return false
	}
	if _, present := servers[name]; !present {
		return false
	}
	delete(servers, name)
	return true
}

func hasServer(cfg map[string]any, name string) bool {
	servers, ok := cfg["mcpServers"].(map[string]any)
	if !ok {
		return false
	}
	_, present := servers[name]
	return present
}
