// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltraverse/avl"
	"github.com/bitmark-inc/avltraverse/background"
	"github.com/bitmark-inc/avltraverse/configuration"
	"github.com/bitmark-inc/avltraverse/fault"
	"github.com/bitmark-inc/avltraverse/traversal"
	"github.com/bitmark-inc/avltraverse/watcher"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "format", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "dump", HasArg: getoptions.NO_ARGUMENT, Short: 'd'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--version] [--config-file=FILE] [--format=text|json|yaml] [--dump] [--watch] traversal input-file", program)
	}

	if 2 != len(arguments) {
		exitwithstatus.Message("%s: %s: traversal and input-file are required", program, fault.ErrInvalidParameters)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}
	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}

	theConfiguration, err := configuration.Get(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if n := len(options["format"]); n > 0 {
		theConfiguration.Format = options["format"][n-1]
	}
	if err := configuration.CheckFormat(theConfiguration.Format); nil != err {
		exitwithstatus.Message("%s: format: %q  error: %s", program, theConfiguration.Format, err)
	}

	// "-" selects the traversal from the configuration
	name := arguments[0]
	if "-" == name {
		name = theConfiguration.Traversal
	}
	inputFile := arguments[1]

	// ------------------
	// start of real main
	// ------------------

	if err := os.MkdirAll(theConfiguration.Logging.Directory, 0o700); nil != err {
		exitwithstatus.Message("%s: log directory: %q  error: %s", program, theConfiguration.Logging.Directory, err)
	}
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	tree, err := load(log, inputFile)
	if nil != err {
		exitwithstatus.Message("%s: input: %q  error: %s", program, inputFile, err)
	}

	registry := traversal.New(tree, time.Duration(theConfiguration.CacheExpiry)*time.Second)

	err = show(log, registry, tree, name, theConfiguration.Format, options)
	if nil != err {
		exitwithstatus.Message("%s: traversal: %q  error: %s", program, name, err)
	}

	if 0 == len(options["watch"]) {
		return
	}

	interval := time.Duration(theConfiguration.WatchInterval) * time.Millisecond
	w, err := watcher.New(inputFile, interval)
	if nil != err {
		exitwithstatus.Message("%s: watch: %q  error: %s", program, inputFile, err)
	}

	processes := background.Processes{w}
	p := background.Start(processes, nil)
	defer p.Stop()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			return

		case <-w.Remove():
			log.Warnf("input: %q  %s", inputFile, fault.ErrInputFileRemoved)
			fmt.Fprintf(os.Stderr, "%s: %s: %q\n", program, fault.ErrInputFileRemoved, inputFile)
			return

		case <-w.Change():
			tree, err := load(log, inputFile)
			if nil != err {
				fmt.Fprintf(os.Stderr, "%s: input: %q  error: %s\n", program, inputFile, err)
				continue
			}
			registry.Load(tree)
			err = show(log, registry, tree, name, theConfiguration.Format, options)
			if nil != err {
				fmt.Fprintf(os.Stderr, "%s: traversal: %q  error: %s\n", program, name, err)
			}
		}
	}
}

// check, dump and print one loaded tree
func show(log *logger.L, registry *traversal.Registry, tree *avl.Tree[int, string], name string, format string, options map[string][]string) error {

	if len(options["verbose"]) > 0 {
		check(log, tree)
	}

	if len(options["dump"]) > 0 {
		dump(os.Stdout, tree)
	}

	if tree.IsEmpty() {
		return outputEmpty(os.Stdout)
	}

	result, err := registry.Run(name)
	if nil != err {
		return err
	}
	return output(os.Stdout, format, name, result)
}
