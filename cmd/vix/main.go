// Package main is the entry point for the vix editor.
package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"

	"github.com/dshills/vix/internal/app"
	"github.com/dshills/vix/internal/ui"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, showVersion, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vix: %v\n", err)
		return 1
	}
	if showVersion {
		fmt.Printf("vix %s (built %s)\n", version, date)
		return 0
	}

	term, err := ui.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vix: failed to open terminal: %v\n", err)
		return 1
	}

	application, err := app.New(term, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vix: %v\n", err)
		return 1
	}

	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "vix: failed to initialize terminal: %v\n", err)
		return 1
	}
	defer term.Close()

	return application.Run()
}

// parseArgs interprets the command line:
//
//	-v        print version and exit
//	--        end of options
//	+CMD      run CMD after loading (+/pat, +?pat, +:cmd, +N)
//	-         read stdin into a buffer, then reattach fd 0 to the tty
//	NAME      open NAME in a window
func parseArgs(args []string) (app.Options, bool, error) {
	var opts app.Options
	noMoreOptions := false

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case !noMoreOptions && arg == "--":
			noMoreOptions = true
		case !noMoreOptions && arg == "-v":
			return opts, true, nil
		case !noMoreOptions && len(arg) > 1 && arg[0] == '+':
			opts.Commands = append(opts.Commands, arg[1:])
		case !noMoreOptions && arg == "-" && i == len(args)-1:
			data, err := readStdin()
			if err != nil {
				return opts, false, err
			}
			opts.Stdin = data
		case !noMoreOptions && len(arg) > 1 && arg[0] == '-':
			return opts, false, fmt.Errorf("unknown option: %s", arg)
		default:
			opts.Files = append(opts.Files, arg)
		}
	}
	return opts, false, nil
}

// readStdin slurps standard input and points fd 0 back at the
// controlling terminal so interactive input keeps working.
func readStdin() ([]byte, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("opening /dev/tty: %w", err)
	}
	if err := unix.Dup2(int(tty.Fd()), 0); err != nil {
		tty.Close()
		return nil, fmt.Errorf("reattaching terminal: %w", err)
	}
	return data, nil
}
