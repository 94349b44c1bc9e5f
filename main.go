/*
Command trimotion builds the triangle motion graphic scene
and can keep rebuilding it while the config file changes
*/
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/cj-mills/trimotion/mograph"
	"github.com/cj-mills/trimotion/studio"
	"github.com/cj-mills/trimotion/studio/core"
)

type options struct {
	configPath string
	watchMode  bool
	curvesPath string
	verbose    bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "scene config TOML; built-in defaults apply when empty")
	flag.BoolVar(&opts.watchMode, "watch", false, "rebuild whenever the config file changes")
	flag.StringVar(&opts.curvesPath, "curves", "", "write the animation curves to this image after building")
	flag.BoolVar(&opts.verbose, "verbose", false, "log debug detail")
	flag.Parse()

	if opts.watchMode && opts.configPath == "" {
		core.LogFatal("watch mode needs -config, there is nothing to watch otherwise")
	}

	if err := run(opts); err != nil {
		panic(err)
	}
}

func run(opts options) error {
	level := core.InfoLevel
	if opts.verbose {
		level = core.DebugLevel
	}

	project, err := mograph.NewProject(opts.configPath, &studio.ProjectConfig{
		Name:     "triangle-mg",
		LogLevel: level,
	})
	if err != nil {
		return err
	}

	st, err := studio.New(project)
	if err != nil {
		return err
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// start shutdown goroutine
	go func() {
		// capture sigterm and other system call here
		<-sigCh
		_ = st.Shutdown()
	}()

	if _, err := st.Build(); err != nil {
		return err
	}

	if opts.curvesPath != "" {
		if err := st.ExportCurves(opts.curvesPath); err != nil {
			return err
		}
	}

	if opts.watchMode {
		if err := st.Watch(opts.configPath); err != nil {
			return err
		}
	}

	return st.Shutdown()
}
