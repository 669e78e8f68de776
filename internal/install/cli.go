package install

import (
	"fmt"
	"os"
)

// Commands accepted by RunCLI.
const (
	cmdRegister   = "register"
	cmdUnregister = "unregister"
	cmdList       = "list"
	cmdVerify     = "verify"
	cmdDetect     = "detect"
	cmdHelp       = "help"
)

// IsCommand reports whether arg is an installer subcommand, so main can
// decide between running the CLI and starting the server.
func IsCommand(arg string) bool {
	switch arg {
	case cmdRegister, cmdUnregister, cmdList, cmdVerify, cmdDetect, cmdHelp:
		return true
	}
	return false
}

// defaultEntry builds the registration payload pointing at this binary.
func defaultEntry() ServerEntry {
	command, err := os.Executable()
	if err != nil {
		command = "go_transcript"
	}
	return ServerEntry{Command: command, Args: []string{}}
}

// RunCLI executes one installer subcommand and returns a process exit code.
func RunCLI(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	switch args[0] {
	case cmdRegister:
		return runRegister(args[1:])
	case cmdUnregister:
		return runUnregister(args[1:])
	case cmdList:
		return runList()
	case cmdVerify:
		return runVerify(args[1:])
	case cmdDetect:
		return runDetect()
	case cmdHelp:
		printUsage()
		return 0
	}
	fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
	printUsage()
	return 1
}

func printUsage() {
	fmt.Print(`go_transcript - YouTube transcript MCP server

USAGE:
  go_transcript [command] [options]

Running without a command starts the MCP server.

COMMANDS:
  register     Register the MCP server
    --to <client>    Register to a specific client
    --all            Register to all installed clients

  unregister   Unregister the MCP server
    --from <client>  Unregister from a specific client
    --all            Unregister from all clients

  list         List registration status for all clients

  verify       Verify registration for a specific client
    --client <name>  Client to verify

  detect       Detect installed MCP clients

  help         Show this help message

CLIENTS:
  claude-code, claude-desktop, cursor, cline, roo-cline, continue
`)
}

// flagValue extracts "--name value" from args; empty when absent.
func flagValue(args []string, name string) string {
	for i, a := range args {
		if a == name && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func hasFlag(args []string, name string) bool {
	for _, a := range args {
		if a == name {
			return true
		}
	}
	return false
}

func runRegister(args []string) int {
	entry := defaultEntry()

	if hasFlag(args, "--all") {
		code := 0
		for _, d := range DetectAll() {
			if !d.Installed {
				continue
			}
			if err := registerAt(d.ConfigPath, ServerName, entry); err != nil {
				fmt.Fprintf(os.Stderr, "✗ %s: %v\n", d.Name, err)
				code = 1
				continue
			}
			fmt.Printf("✓ Registered with %s\n", d.Name)
		}
		return code
	}

	client := flagValue(args, "--to")
	if client == "" {
		fmt.Fprintln(os.Stderr, "register requires --to <client> or --all")
		return 1
	}
	if err := Register(ClientID(client), ServerName, entry); err != nil {
		fmt.Fprintf(os.Stderr, "✗ %v\n", err)
		return 1
	}
	fmt.Printf("✓ Registered with %s\n", ClientID(client).DisplayName())
	return 0
}

func runUnregister(args []string) int {
	if hasFlag(args, "--all") {
		code := 0
		for _, d := range DetectAll() {
			if !d.Installed {
				continue
			}
			removed, err := unregisterAt(d.ConfigPath, ServerName)
			if err != nil {
				fmt.Fprintf(os.Stderr, "✗ %s: %v\n", d.Name, err)
				code = 1
				continue
			}
			if removed {
				fmt.Printf("✓ Unregistered from %s\n", d.Name)
			}
		}
		return code
	}

	client := flagValue(args, "--from")
	if client == "" {
		fmt.Fprintln(os.Stderr, "unregister requires --from <client> or --all")
		return 1
	}
	removed, err := Unregister(ClientID(client), ServerName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ %v\n", err)
		return 1
	}
	if !removed {
		fmt.Printf("%s was not registered with %s\n", ServerName, ClientID(client).DisplayName())
		return 0
	}
	fmt.Printf("✓ Unregistered from %s\n", ClientID(client).DisplayName())
	return 0
}

func runList() int {
	for _, r := range List(ServerName) {
		switch {
		case !r.Installed:
			fmt.Printf("  - %-26s not installed\n", r.Name)
		case r.Registered:
			fmt.Printf("  ✓ %-26s registered\n", r.Name)
		default:
			fmt.Printf("  ✗ %-26s not registered\n", r.Name)
		}
	}
	return 0
}

func runVerify(args []string) int {
	client := flagValue(args, "--client")
	if client == "" {
		fmt.Fprintln(os.Stderr, "verify requires --client <name>")
		return 1
	}
	ok, err := Verify(ClientID(client), ServerName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ %v\n", err)
		return 1
	}
	if !ok {
		fmt.Printf("✗ %s is not registered with %s\n", ServerName, ClientID(client).DisplayName())
		return 1
	}
	fmt.Printf("✓ %s is registered with %s\n", ServerName, ClientID(client).DisplayName())
	return 0
}

func runDetect() int {
	for _, d := range DetectAll() {
		if d.Installed {
			fmt.Printf("  ✓ %-26s %s\n", d.Name, d.ConfigPath)
		} else {
			fmt.Printf("  - %-26s %s\n", d.Name, d.Reason)
		}
	}
	return 0
}
