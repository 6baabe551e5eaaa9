/*
   Copyright 2025 The Echo Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// echo-classes registers the demo classes and inspects them: it prints the
// class tree, saves instances and runs scripts against the registry.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/study-game-engines/echo"
	"github.com/study-game-engines/echo/config"
	"github.com/study-game-engines/echo/internal/demo"
	"github.com/study-game-engines/echo/script"
	"github.com/study-game-engines/echo/serialize"
)

const usageText = `echo-classes - inspect the runtime class registry

Usage:
    echo-classes [options] [command] [args]

Commands:
    classes            print the class tree as YAML (default)
    save <class>       create an instance (or fetch a singleton) and print it
    run <file.go>      run a Go script against the registry
    eval <source>      evaluate Go source against the registry

Options:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("echo-classes", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configFile string
		format     string
		overridden bool
		verbose    bool
		quiet      bool
	)
	fs.StringVar(&configFile, "config", "", "Config file (YAML/TOML)")
	fs.StringVar(&configFile, "c", "", "Config file (shorthand)")
	fs.StringVar(&format, "format", "", "Serialization format: yaml or toml")
	fs.StringVar(&format, "f", "", "Serialization format (shorthand)")
	fs.BoolVar(&overridden, "overridden", false, "Only save properties that differ from the class default")
	fs.BoolVar(&verbose, "v", false, "Verbose logging")
	fs.BoolVar(&quiet, "q", false, "Only log errors")
	fs.Usage = func() {
		fmt.Fprint(stderr, usageText)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	level := slog.LevelInfo
	switch {
	case verbose:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	file := config.NewFile()
	if configFile != "" {
		if err := file.LoadFile(configFile); err != nil {
			fmt.Fprintf(stderr, "error: loading config: %v\n", err)
			return 1
		}
	}
	opts := serialize.FromFile(file)
	if format != "" {
		opts.Format = format
	}
	if overridden {
		opts.OnlyOverridden = true
	}

	binder := script.New(script.WithStdout(stdout), script.WithStderr(stderr))
	cfg := file.Config()
	echo.SetAll(&cfg, binder, nil, nil, nil)
	echo.Clear()
	if err := echo.RegisterPlan(demo.Plan().Filter(file.ModuleEnabled)); err != nil {
		fmt.Fprintf(stderr, "error: registering classes: %v\n", err)
		return 1
	}
	slog.Debug("echo-classes: registered", "classes", echo.Registry().Count())

	cmd, rest := "classes", []string(nil)
	if fs.NArg() > 0 {
		cmd, rest = fs.Arg(0), fs.Args()[1:]
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := dispatch(ctx, cmd, rest, binder, opts, stdout); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func dispatch(ctx context.Context, cmd string, args []string, binder *script.Binder, opts serialize.Options, stdout io.Writer) error {
	reg := echo.Registry()
	switch cmd {
	case "classes":
		data, err := dumpTree(reg)
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err

	case "save":
		if len(args) != 1 {
			return fmt.Errorf("save: expected one class name")
		}
		obj := echo.Create(args[0])
		if obj == nil {
			return fmt.Errorf("save: cannot create %q", args[0])
		}
		data, err := serialize.Marshal(reg, obj, opts)
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err

	case "run":
		if len(args) != 1 {
			return fmt.Errorf("run: expected one script file")
		}
		_, err := binder.EvalPath(args[0])
		return err

	case "eval":
		if len(args) == 0 {
			return fmt.Errorf("eval: expected source")
		}
		v, err := binder.EvalContext(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}
		if v.IsValid() && v.CanInterface() {
			fmt.Fprintln(stdout, v.Interface())
		}
		return nil
	}
	return fmt.Errorf("unknown command %q", cmd)
}
