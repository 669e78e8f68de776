package install

import (
	"fmt"
	"path/filepath"
)

// Detection reports whether a client application appears to be installed.
type Detection struct {
	ID         ClientID
	Name       string
	Installed  bool
	ConfigPath string
	Reason     string
}

// Registration is a Detection plus the server's registration state.
type Registration struct {
	Detection
	Registered bool
}

// detectAt checks for the client's config directory. The config file itself
// may not exist yet for a fresh install, so the directory is the signal.
func detectAt(id ClientID, path string, dirExists func(string) bool) Detection {
	d := Detection{ID: id, Name: id.DisplayName(), ConfigPath: path}
	if path == "" {
		d.Reason = "Unknown client"
		return d
	}
	if !dirExists(filepath.Dir(path)) {
		d.Reason = "Client directory not found"
		return d
	}
	d.Installed = true
	return d
}

// Detect checks whether the given client is installed on this machine.
func Detect(id ClientID) Detection {
	path, err := ConfigPath(id)
	if err != nil {
		return Detection{ID: id, Name: id.DisplayName(), Reason: err.Error()}
	}
	return detectAt(id, path, dirExists)
}

// DetectAll checks every supported client.
func DetectAll() []Detection {
	out := make([]Detection, 0, len(AllClients))
	for _, id := range AllClients {
		out = append(out, Detect(id))
	}
	return out
}

// registerAt adds (or refreshes) a server registration in the config file at
// path, preserving everything else in the file.
func registerAt(path, name string, entry ServerEntry) error {
	cfg, err := readConfig(path)
	if err != nil {
		return err
	}
	addServer(cfg, name, entry)
	return writeConfig(path, cfg)
}

// unregisterAt removes a server registration; reports whether it existed.
func unregisterAt(path, name string) (bool, error) {
	cfg, err := readConfig(path)
	if err != nil {
		return false, err
	}
	if !removeServer(cfg, name) {
		return false, nil
	}
	return true, writeConfig(path, cfg)
}

// verifyAt reports whether the server is registered in the config at path.
func verifyAt(path, name string) (bool, error) {
	cfg, err := readConfig(path)
	if err != nil {
		return false, err
	}
	return hasServer(cfg, name), nil
}

// Register adds the server to the given client's config.
func Register(id ClientID, name string, entry ServerEntry) error {
	d := Detect(id)
	if !d.Installed {
		return fmt.Errorf("%s is not installed: %s", d.Name, d.Reason)
	}
	return registerAt(d.ConfigPath, name, entry)
}

// Unregister removes the server from the given client's config.
func Unregister(id ClientID, name string) (bool, error) {
	d := Detect(id)
	if !d.Installed {
		return false, fmt.Errorf("%s is not installed: %s", d.Name, d.Reason)
	}
	return unregisterAt(d.ConfigPath, name)
}

// Verify reports whether the server is registered with the given client.
func Verify(id ClientID, name string) (bool, error) {
	d := Detect(id)
	if !d.Installed {
		return false, nil
	}
	return verifyAt(d.ConfigPath, name)
}

// List returns registration status for every supported client.
func List(name string) []Registration {
	out := make([]Registration, 0, len(AllClients))
	for _, id := range AllClients {
		d := Detect(id)
		reg := Registration{Detection: d}
		if d.Installed {
			if ok, err := verifyAt(d.ConfigPath, name); err == nil {
				reg.Registered = ok
			}
		}
		out = append(out, reg)
	}
	return out
}
