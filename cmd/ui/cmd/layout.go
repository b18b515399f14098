package cmd

import (
	"fmt"
	"strconv"

	"github.com/go-drift/ui/pkg/config"
	"github.com/go-drift/ui/pkg/view"
)

func init() {
	RegisterCommand(&Command{
		Name:  "layout",
		Short: "Run the sample app headless and dump its layout",
		Long: `Run the sample application on a headless window.

Each frame advances the clock by one second; the sample switches to the
next locale every second. After the last frame the view tree is printed
with the bounds of every view.

Flags:
  --dir DIR        Project directory holding ui.yaml (default: module root)
  --frames N       Number of frames to run (default: 1)
  --width W        Client width in pixels (default: window.ini_w)
  --height H       Client height in pixels (default: window.ini_h)
  --fixed          Measure text with fixed 8x16 cells instead of Go fonts
  --list           Also print the drawing operations of the last frame`,
		Usage: "ui layout [--frames N] [--fixed] [--list]",
		Run:   runLayout,
	})
}

type layoutOptions struct {
	sampleOptions
	frames int
	list   bool
}

func parseLayoutArgs(args []string) (layoutOptions, error) {
	opts := layoutOptions{frames: 1}
	intArg := func(i int, name string) (int, error) {
		if i+1 >= len(args) {
			return 0, fmt.Errorf("%s requires a number", name)
		}
		n, err := strconv.Atoi(args[i+1])
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%s requires a non-negative number (got %q)", name, args[i+1])
		}
		return n, nil
	}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--fixed":
			opts.fixed = true
		case "--list":
			opts.list = true
		case "--dir":
			i++
		case "--frames":
			n, err := intArg(i, "--frames")
			if err != nil {
				return opts, err
			}
			opts.frames = n
			i++
		case "--width", "--height":
			n, err := intArg(i, args[i])
			if err != nil {
				return opts, err
			}
			if args[i] == "--width" {
				opts.width = int32(n)
			} else {
				opts.height = int32(n)
			}
			i++
		default:
			return opts, fmt.Errorf("unknown flag %q", args[i])
		}
	}
	return opts, nil
}

func runLayout(args []string) error {
	opts, err := parseLayoutArgs(args)
	if err != nil {
		return err
	}
	dir, err := projectDir(args)
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(dir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	app, err := newSampleApp(cfg, opts.sampleOptions)
	if err != nil {
		return err
	}
	for i := 0; i < opts.frames && !app.engine.Host.Done(); i++ {
		app.step(nil)
	}
	dl := app.snapshot()

	fmt.Fprintf(stdout, "%s\n\n", app.engine.Host)
	fmt.Fprint(stdout, view.Dump(app.engine.Root()))
	if opts.list {
		fmt.Fprintln(stdout)
		fmt.Fprint(stdout, dl.String())
	}
	return nil
}
