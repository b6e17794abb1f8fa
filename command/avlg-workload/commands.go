// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlgtree/fault"
	"github.com/bitmark-inc/avlgtree/storage"
)

const (
	defaultHistoryCount = 20
)

// setup command handler
//
// commands that do not need the configuration file
func processSetupCommand(w io.Writer, program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Fprintf(w, "%s\n", version)

	case "help", "h", "?":
		fmt.Fprintf(w, "usage: %s [--help] [--verbose] [--quiet] [--version] --config-file=FILE [[command|help] arguments...]\n", program)
		fmt.Fprintf(w, "\n")
		fmt.Fprintf(w, "supported commands:\n\n")
		fmt.Fprintf(w, "  help                       - display this message\n\n")
		fmt.Fprintf(w, "  version                    - display the program version\n\n")
		fmt.Fprintf(w, "  run                        - run all workloads with their configured imbalance (default)\n\n")
		fmt.Fprintf(w, "  compare N                  - run all workloads with imbalance 1..N\n\n")
		fmt.Fprintf(w, "  print                      - run all workloads and draw the final trees\n\n")
		fmt.Fprintf(w, "  watch                      - run, then re-run whenever the configuration file changes\n\n")
		fmt.Fprintf(w, "  history [NAME [COUNT]]     - list recorded results, optionally for one workload\n\n")
		fmt.Fprintf(w, "  forget NAME                - remove the recorded results of a workload\n\n")

	default:
		return false
	}
	return true
}

// commands that need the configuration
//
// results may be nil, then nothing is recorded
func processConfigCommand(w io.Writer, log *logger.L, arguments []string, configurationFile string, options *Configuration, results *storage.Results) error {

	command := "run"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "run":
		return runAll(w, log, options, results)

	case "compare":
		if 1 != len(arguments) {
			return fault.ErrInvalidCompareBound
		}
		n, err := strconv.Atoi(arguments[0])
		if nil != err || n < 1 {
			return fault.ErrInvalidCompareBound
		}
		return compareAll(w, log, options, n, results)

	case "print":
		return printAll(w, log, options)

	case "watch":
		return watch(w, log, configurationFile, options, results)

	case "history":
		if nil == results {
			return fault.ErrDatabaseIsNotSet
		}
		name := ""
		count := defaultHistoryCount
		if len(arguments) > 0 {
			name = arguments[0]
		}
		if len(arguments) > 1 {
			n, err := strconv.Atoi(arguments[1])
			if nil != err || n < 1 {
				return fault.ErrInvalidCount
			}
			count = n
		}
		return history(w, results, name, count)

	case "forget":
		if nil == results {
			return fault.ErrDatabaseIsNotSet
		}
		if 1 != len(arguments) || "" == arguments[0] {
			return fault.ErrInvalidName
		}
		n, err := results.Delete(arguments[0])
		if nil != err {
			return err
		}
		log.Infof("forget: %q removed: %d", arguments[0], n)
		fmt.Fprintf(w, "removed: %d\n", n)
		return nil

	default:
		log.Errorf("unknown command: %q", command)
		return fault.ErrInvalidCommand
	}
}

func printResultHeader(w io.Writer) {
	fmt.Fprintf(w, "%-16s %3s %8s %8s %8s %6s %8s %8s %8s %8s %8s\n",
		"workload", "G", "inserted", "deleted", "count", "height", "left", "right", "l-r", "r-l", "total")
}

func printResult(w io.Writer, r *Result) {
	s := r.Rotations
	fmt.Fprintf(w, "%-16s %3d %8d %8d %8d %6d %8d %8d %8d %8d %8d\n",
		r.Name, r.Imbalance, r.Inserted, r.Deleted, r.Count, r.Height,
		s.Left, s.Right, s.LeftRight, s.RightLeft, s.Total())
}

// a failed verification means the balancing is broken, so it goes
// to the panic log as well
func reportFailure(log *logger.L, name string, imbalance int, err error) error {
	log.Errorf("%s: G=%d error: %s", name, imbalance, err)
	if fault.ErrVerificationFailed == err {
		fault.Criticalf("workload: %s  G=%d: %s", name, imbalance, err)
	}
	return err
}

// run each workload at its own imbalance
func runAll(w io.Writer, log *logger.L, options *Configuration, results *storage.Results) error {
	printResultHeader(w)
	for _, workload := range options.Workloads {
		result, _, err := runWorkload(log, workload, workload.Imbalance)
		if nil != err {
			return reportFailure(log, workload.Name, workload.Imbalance, err)
		}
		printResult(w, result)
		if err := record(log, results, result); nil != err {
			return err
		}
	}
	return nil
}

// run each workload for every imbalance from 1 to n
func compareAll(w io.Writer, log *logger.L, options *Configuration, n int, results *storage.Results) error {
	printResultHeader(w)
	for _, workload := range options.Workloads {
		for g := 1; g <= n; g += 1 {
			result, _, err := runWorkload(log, workload, g)
			if nil != err {
				return reportFailure(log, workload.Name, g, err)
			}
			printResult(w, result)
			if err := record(log, results, result); nil != err {
				return err
			}
		}
	}
	return nil
}

// store a result in the history
func record(log *logger.L, results *storage.Results, result *Result) error {
	if nil == results {
		return nil
	}
	data, err := json.Marshal(result)
	if nil != err {
		return err
	}
	sequence, err := results.Put(result.Name, data)
	if nil != err {
		log.Errorf("%s: record error: %s", result.Name, err)
		return err
	}
	log.Debugf("%s: recorded as: %d", result.Name, sequence)
	return nil
}

// list stored results
func history(w io.Writer, results *storage.Results, name string, count int) error {
	elements, err := results.Fetch(name, count)
	if nil != err {
		return err
	}
	printResultHeader(w)
	for _, e := range elements {
		var result Result
		if err := json.Unmarshal(e.Value, &result); nil != err {
			return err
		}
		printResult(w, &result)
	}
	return nil
}

// run each workload and draw the resulting tree
func printAll(w io.Writer, log *logger.L, options *Configuration) error {
	for _, workload := range options.Workloads {
		result, tree, err := runWorkload(log, workload, workload.Imbalance)
		if nil != err {
			return reportFailure(log, workload.Name, workload.Imbalance, err)
		}
		fmt.Fprintf(w, "%s: G=%d count: %d\n", result.Name, result.Imbalance, result.Count)
		depth := tree.Fprint(w)
		fmt.Fprintf(w, "levels: %d\n\n", depth)
	}
	return nil
}

// run then repeat on every change to the configuration file
func watch(w io.Writer, log *logger.L, configurationFile string, options *Configuration, results *storage.Results) error {
	if err := runAll(w, log, options, results); nil != err {
		return err
	}

	wlog := logger.New(watcherLoggerPrefix)
	watcher, err := newFileWatcher(configurationFile, wlog)
	if nil != err {
		return err
	}
	if err := watcher.Start(); nil != err {
		return err
	}
	defer watcher.Stop()

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

	return watchLoop(w, log, configurationFile, watcher, ch, results)
}

func watchLoop(w io.Writer, log *logger.L, configurationFile string, watcher FileWatcher, signals <-chan os.Signal, results *storage.Results) error {
	for {
		select {
		case <-watcher.ChangeChannel():
			log.Info("configuration changed, re-running")
			options, err := getConfiguration(configurationFile, nil)
			if nil != err {
				// keep watching, the file may be mid-edit
				log.Errorf("failed to read configuration from: %q  error: %s", configurationFile, err)
				continue
			}
			if err := runAll(w, log, options, results); nil != err {
				return err
			}

		case <-watcher.RemoveChannel():
			if _, err := os.Stat(configurationFile); os.IsNotExist(err) {
				log.Warn("configuration file removed, stopping")
				return nil
			}

		case sig := <-signals:
			log.Infof("received signal: %v", sig)
			return nil
		}
	}
}
