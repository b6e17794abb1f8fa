// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlgtree/fault"
	"github.com/bitmark-inc/avlgtree/storage"
)

func testOptions() *Configuration {
	return &Configuration{
		Imbalance: 1,
		Workloads: []WorkloadType{
			{Name: "zig-zag", Order: orderListed, List: []int{30, 10, 20}, Keys: 3, Imbalance: 1},
			{Name: "up", Order: orderAscending, Keys: 64, Delete: 16, Imbalance: 2},
		},
	}
}

func TestProcessSetupCommand(t *testing.T) {
	buffer := &bytes.Buffer{}
	assert.True(t, processSetupCommand(buffer, "avlg-workload", nil), "default is help")
	assert.True(t, strings.HasPrefix(buffer.String(), "usage: avlg-workload "), "usage line")
	assert.Contains(t, buffer.String(), "compare N", "compare command")

	buffer.Reset()
	assert.True(t, processSetupCommand(buffer, "avlg-workload", []string{"version"}), "version")
	assert.Equal(t, version+"\n", buffer.String(), "version output")

	buffer.Reset()
	assert.False(t, processSetupCommand(buffer, "avlg-workload", []string{"run"}), "run needs configuration")
	assert.Equal(t, "", buffer.String(), "no output for run")
}

func TestProcessConfigCommandRun(t *testing.T) {
	log := logger.New(category)
	buffer := &bytes.Buffer{}

	err := processConfigCommand(buffer, log, nil, "", testOptions(), nil)
	assert.Nil(t, err, "run error")

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	assert.Equal(t, 3, len(lines), "header and two results")
	assert.True(t, strings.HasPrefix(lines[0], "workload"), "header")
	assert.True(t, strings.HasPrefix(lines[1], "zig-zag"), "first workload")
	assert.True(t, strings.HasPrefix(lines[2], "up"), "second workload")

	fields := strings.Fields(lines[1])
	assert.Equal(t, []string{"zig-zag", "1", "3", "0", "3", "1", "0", "0", "1", "0", "1"}, fields, "zig-zag result")
}

func TestProcessConfigCommandCompare(t *testing.T) {
	log := logger.New(category)
	buffer := &bytes.Buffer{}

	err := processConfigCommand(buffer, log, []string{"compare", "3"}, "", testOptions(), nil)
	assert.Nil(t, err, "compare error")

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	assert.Equal(t, 1+2*3, len(lines), "header and three results per workload")
	for i, g := range []string{"1", "2", "3"} {
		assert.Equal(t, g, strings.Fields(lines[1+i])[1], "zig-zag imbalance column")
		assert.Equal(t, g, strings.Fields(lines[4+i])[1], "up imbalance column")
	}
}

func TestProcessConfigCommandPrint(t *testing.T) {
	log := logger.New(category)
	buffer := &bytes.Buffer{}

	options := testOptions()
	options.Workloads = options.Workloads[:1]
	err := processConfigCommand(buffer, log, []string{"print"}, "", options, nil)
	assert.Nil(t, err, "print error")

	expected := "zig-zag: G=1 count: 3\n" +
		"       /------+ 30 h:0 +0\n" +
		"|------+ 20 h:1 +0\n" +
		"       \\------+ 10 h:0 +0\n" +
		"levels: 2\n\n"
	assert.Equal(t, expected, buffer.String(), "print output")
}

func TestProcessConfigCommandErrors(t *testing.T) {
	log := logger.New(category)

	items := []struct {
		arguments []string
		err       error
	}{
		{[]string{"compare"}, fault.ErrInvalidCompareBound},
		{[]string{"compare", "x"}, fault.ErrInvalidCompareBound},
		{[]string{"compare", "0"}, fault.ErrInvalidCompareBound},
		{[]string{"compare", "1", "2"}, fault.ErrInvalidCompareBound},
		{[]string{"balance"}, fault.ErrInvalidCommand},
		{[]string{"history"}, fault.ErrDatabaseIsNotSet},
		{[]string{"forget", "up"}, fault.ErrDatabaseIsNotSet},
	}
	for i, item := range items {
		err := processConfigCommand(ioutil.Discard, log, item.arguments, "", testOptions(), nil)
		assert.Equal(t, item.err, err, "%d: %v", i, item.arguments)
	}
}

func TestHistory(t *testing.T) {
	d, err := ioutil.TempDir("", "avlg-results")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(d)

	results, err := storage.Open(filepath.Join(d, "results.leveldb"), false)
	if nil != err {
		t.Fatalf("open results error: %s", err)
	}
	defer results.Close()

	log := logger.New(category)

	err = processConfigCommand(ioutil.Discard, log, []string{"compare", "2"}, "", testOptions(), results)
	assert.Nil(t, err, "compare error")

	stored, err := results.Fetch("", 10)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 4, len(stored), "two workloads at two bounds")

	buffer := &bytes.Buffer{}
	err = processConfigCommand(buffer, log, []string{"history", "zig-zag"}, "", testOptions(), results)
	assert.Nil(t, err, "history error")
	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	assert.Equal(t, 3, len(lines), "header and two zig-zag results")
	assert.Equal(t, []string{"zig-zag", "2", "3", "0", "3", "2", "0", "0", "0", "0", "0"}, strings.Fields(lines[2]), "G=2 needs no rotation")

	buffer.Reset()
	err = processConfigCommand(buffer, log, []string{"history", "", "1"}, "", testOptions(), results)
	assert.Nil(t, err, "history error")
	assert.Equal(t, 2, len(strings.Split(strings.TrimSpace(buffer.String()), "\n")), "count limit")

	err = processConfigCommand(ioutil.Discard, log, []string{"history", "up", "x"}, "", testOptions(), results)
	assert.Equal(t, fault.ErrInvalidCount, err, "bad count")

	buffer.Reset()
	err = processConfigCommand(buffer, log, []string{"forget", "up"}, "", testOptions(), results)
	assert.Nil(t, err, "forget error")
	assert.Equal(t, "removed: 2\n", buffer.String(), "forget output")

	err = processConfigCommand(ioutil.Discard, log, []string{"forget"}, "", testOptions(), results)
	assert.Equal(t, fault.ErrInvalidName, err, "forget without name")

	stored, err = results.Fetch("", 10)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 2, len(stored), "zig-zag remains")
}

type fakeWatcher struct {
	change chan struct{}
	remove chan struct{}
}

func newFakeWatcher() *fakeWatcher {
	return &fakeWatcher{
		change: make(chan struct{}),
		remove: make(chan struct{}),
	}
}

func (f *fakeWatcher) Start() error                   { return nil }
func (f *fakeWatcher) Stop() error                    { return nil }
func (f *fakeWatcher) ChangeChannel() <-chan struct{} { return f.change }
func (f *fakeWatcher) RemoveChannel() <-chan struct{} { return f.remove }

func TestWatchLoopSignal(t *testing.T) {
	log := logger.New(category)
	signals := make(chan os.Signal, 1)
	signals <- syscall.SIGTERM

	err := watchLoop(ioutil.Discard, log, "", newFakeWatcher(), signals, nil)
	assert.Nil(t, err, "signal should stop the loop")
}

func TestWatchLoopRerun(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, testConfiguration)
	defer cleanup()

	log := logger.New(category)
	watcher := newFakeWatcher()
	signals := make(chan os.Signal)
	buffer := &bytes.Buffer{}

	done := make(chan error)
	go func() {
		done <- watchLoop(buffer, log, fileName, watcher, signals, nil)
	}()

	// unbuffered sends complete only when the loop is waiting again
	watcher.change <- struct{}{}
	watcher.change <- struct{}{}
	signals <- syscall.SIGINT

	select {
	case err := <-done:
		assert.Nil(t, err, "watch loop error")
	case <-time.After(10 * time.Second):
		t.Fatal("watch loop did not stop")
	}

	assert.Equal(t, 2, strings.Count(buffer.String(), "zig-zag"), "two re-runs")
}

func TestWatchLoopRemove(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, testConfiguration)

	log := logger.New(category)
	watcher := newFakeWatcher()
	signals := make(chan os.Signal)

	done := make(chan error)
	go func() {
		done <- watchLoop(ioutil.Discard, log, fileName, watcher, signals, nil)
	}()

	// file still present, so the loop continues
	watcher.remove <- struct{}{}

	cleanup()
	watcher.remove <- struct{}{}

	select {
	case err := <-done:
		assert.Nil(t, err, "watch loop error")
	case <-time.After(10 * time.Second):
		t.Fatal("watch loop did not stop")
	}
}

func TestWatchLoopBadConfiguration(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `return { imbalance = 0 }`)
	defer cleanup()

	log := logger.New(category)
	watcher := newFakeWatcher()
	signals := make(chan os.Signal)
	buffer := &bytes.Buffer{}

	done := make(chan error)
	go func() {
		done <- watchLoop(buffer, log, fileName, watcher, signals, nil)
	}()

	// an unreadable configuration is logged and the loop keeps going
	watcher.change <- struct{}{}
	signals <- syscall.SIGINT

	select {
	case err := <-done:
		assert.Nil(t, err, "watch loop error")
	case <-time.After(10 * time.Second):
		t.Fatal("watch loop did not stop")
	}
	assert.Equal(t, "", buffer.String(), "nothing run")
}
