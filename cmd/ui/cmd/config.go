package cmd

import (
	"fmt"

	"github.com/go-drift/ui/pkg/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "config",
		Short: "Show the resolved configuration",
		Long: `Show the configuration read from ui.yaml with defaults applied.

Without ui.yaml the application name and window class derive from the
module path in go.mod, or from the directory name outside a module.`,
		Usage: "ui config [--dir DIR]",
		Run:   runConfig,
	})
}

func runConfig(args []string) error {
	dir, err := projectDir(args)
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(dir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Fprintf(stdout, "Project:     %s\n", cfg.Root)
	if cfg.ModulePath != "" {
		fmt.Fprintf(stdout, "Module:      %s\n", cfg.ModulePath)
	}
	fmt.Fprintf(stdout, "App:         %s (class %s)\n", cfg.AppName, cfg.Class)
	fmt.Fprintf(stdout, "Window:      %s initial, %s minimum at %g dpi\n",
		cfg.InitialSize(), cfg.MinimumSize(), cfg.Window.DPI)
	fmt.Fprintf(stdout, "Locale:      %s\n", cfg.Locale)
	fmt.Fprintf(stdout, "Hover delay: %s\n", cfg.HoverDelay)
	if cfg.ThemePath != "" {
		fmt.Fprintf(stdout, "Theme:       %s\n", cfg.ThemePath)
	}
	if cfg.StringsPath != "" {
		fmt.Fprintf(stdout, "Strings:     %s\n", cfg.StringsPath)
	}
	if cfg.Debug {
		fmt.Fprintln(stdout, "Debug:       on")
	}
	return nil
}

// projectDir returns the --dir argument, or the enclosing module root,
// or the working directory outside a module.
func projectDir(args []string) (string, error) {
	for i := 0; i < len(args); i++ {
		if args[i] == "--dir" {
			if i+1 >= len(args) {
				return "", fmt.Errorf("--dir requires a directory path")
			}
			return args[i+1], nil
		}
	}
	if root, err := config.FindProjectRoot(); err == nil {
		return root, nil
	}
	return ".", nil
}
