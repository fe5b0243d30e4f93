package main

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/ngo-tools/grant-forge/pkg/runtime/terminal"
	"github.com/ngo-tools/grant-forge/pkg/services/config"
	"github.com/ngo-tools/grant-forge/pkg/services/generator"
)

func main() {
	// Profiles are optional; the CLI works without a config file.
	var profiles config.Registry
	if usr, err := user.Current(); err == nil {
		if registry, err := config.NewRegistry(filepath.Join(usr.HomeDir, ".grantforgecfg")); err == nil {
			profiles = registry
		}
	}

	cli := terminal.NewCLI(terminal.Options{
		Service:  generator.NewService(generator.Options{}),
		Profiles: profiles,
		Output:   os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
