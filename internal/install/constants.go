// Package install registers the MCP server with locally installed AI client
// applications by editing their JSON configuration files.
package install

import (
	"os"
	"path/filepath"
	"runtime"
)

// ServerName is the key the server is registered under in client configs.
const ServerName = "youtube-transcript"

// ClientID identifies one supported MCP client application.
type ClientID string

const (
	ClaudeCode    ClientID = "claude-code"
	ClaudeDesktop ClientID = "claude-desktop"
	Cursor        ClientID = "cursor"
	Cline         ClientID = "cline"
	RooCline      ClientID = "roo-cline"
	Continue      ClientID = "continue"
)

// AllClients lists every supported client in display order.
var AllClients = []ClientID{ClaudeCode, ClaudeDesktop, Cursor, Cline, RooCline, Continue}

var displayNames = map[ClientID]string{
	ClaudeCode:    "Claude Code",
	ClaudeDesktop: "Claude Desktop",
	Cursor:        "Cursor IDE",
	Cline:         "Cline (VSCode Extension)",
	RooCline:      "Roo-Cline",
	Continue:      "Continue.dev",
}

// DisplayName returns the human-readable client name.
func (c ClientID) DisplayName() string {
	if name, ok := displayNames[c]; ok {
		return name
	}
	return string(c)
}

// vscodeGlobalStorage builds the per-OS path to a VSCode extension's MCP
// settings file.
func vscodeGlobalStorage(home, goos, extension string) string {
	tail := filepath.Join("User", "globalStorage", extension, "settings", "cline_mcp_settings.json")
	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Code", tail)
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "Code", tail)
	default:
		return filepath.Join(home, ".config", "Code", tail)
	}
}

// configPath resolves a client's config file location for the given home
// directory and OS. Parameterized for tests; callers use ConfigPath.
func configPath(id ClientID, home, goos string) string {
	switch id {
	case ClaudeCode:
		return filepath.Join(home, ".claude.json")
	case ClaudeDesktop:
		switch goos {
		case "darwin":
			return filepath.Join(home, "Library", "Application Support", "Claude", "claude_desktop_config.json")
		case "windows":
			return filepath.Join(home, "AppData", "Roaming", "Claude", "claude_desktop_config.json")
		default:
			return filepath.Join(home, ".config", "Claude", "claude_desktop_config.json")
		}
	case Cursor:
		switch goos {
		case "darwin":
			return filepath.Join(home, "Library", "Application Support", "Cursor", "User", "mcp.json")
		case "windows":
			return filepath.Join(home, "AppData", "Roaming", "Cursor", "User", "mcp.json")
		default:
			return filepath.Join(home, ".config", "Cursor", "User", "mcp.json")
		}
	case Cline:
		return vscodeGlobalStorage(home, goos, "saoudrizwan.claude-dev")
	case RooCline:
		return vscodeGlobalStorage(home, goos, "rooveterinaryinc.roo-cline")
	case Continue:
		return filepath.Join(home, ".continue", "config.json")
	}
	return ""
}

// ConfigPath resolves a client's config file location on this machine.
func ConfigPath(id ClientID) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return configPath(id, home, runtime.GOOS), nil
}
