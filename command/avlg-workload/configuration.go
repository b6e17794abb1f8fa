// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlgtree/configuration"
	"github.com/bitmark-inc/avlgtree/fault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file
	defaultImbalance     = 1

	defaultResultsDatabase = "results.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "avlg-workload.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// key orders
const (
	orderAscending  = "ascending"
	orderDescending = "descending"
	orderRandom     = "random"
	orderListed     = "listed"
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "info",
	}
)

// WorkloadType - one sequence of inserts followed by deletes
type WorkloadType struct {
	Name      string `gluamapper:"name" json:"name"`
	Order     string `gluamapper:"order" json:"order"`
	Keys      int    `gluamapper:"keys" json:"keys"`
	List      []int  `gluamapper:"list" json:"list"`
	Delete    int    `gluamapper:"delete" json:"delete"`
	Seed      int64  `gluamapper:"seed" json:"seed"`
	Imbalance int    `gluamapper:"imbalance" json:"imbalance"`
}

// Configuration - the whole configuration file
type Configuration struct {
	DataDirectory   string               `gluamapper:"data_directory" json:"data_directory"`
	ResultsDatabase string               `gluamapper:"results_database" json:"results_database"`
	Imbalance       int                  `gluamapper:"imbalance" json:"imbalance"`
	Workloads       []WorkloadType       `gluamapper:"workloads" json:"workloads"`
	Logging         logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	// copy so that parsing cannot modify the defaults
	levels := make(LoglevelMap, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	options := &Configuration{

		DataDirectory:   defaultDataDirectory,
		ResultsDatabase: defaultResultsDatabase,
		Imbalance:       defaultImbalance,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	if options.Imbalance < 1 {
		return nil, fault.ErrInvalidImbalance
	}
	if 0 == len(options.Workloads) {
		return nil, fault.ErrNotFoundWorkloads
	}
	for i := range options.Workloads {
		if err := options.Workloads[i].validate(i, options.Imbalance); nil != err {
			return nil, err
		}
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	if "" == options.ResultsDatabase {
		return nil, fmt.Errorf("Files: results database name is empty")
	}
	options.ResultsDatabase = ensureAbsolute(options.DataDirectory, options.ResultsDatabase)

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = ensureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// fill in defaults and check a single workload
func (w *WorkloadType) validate(index int, imbalance int) error {
	if "" == w.Name {
		w.Name = fmt.Sprintf("workload-%d", index+1)
	}
	if 0 == w.Imbalance {
		w.Imbalance = imbalance
	} else if w.Imbalance < 1 {
		return fault.ErrInvalidImbalance
	}

	w.Order = strings.ToLower(w.Order)
	switch w.Order {
	case "":
		if len(w.List) > 0 {
			w.Order = orderListed
		} else {
			w.Order = orderAscending
		}
	case orderAscending, orderDescending, orderRandom, orderListed:
	default:
		return fault.ErrInvalidKeyOrder
	}

	if orderListed == w.Order {
		seen := make(map[int]struct{}, len(w.List))
		for _, k := range w.List {
			if _, ok := seen[k]; ok {
				return fault.ErrKeyAlreadyExists
			}
			seen[k] = struct{}{}
		}
		w.Keys = len(w.List)
	}

	if w.Keys < 0 || w.Delete < 0 {
		return fault.ErrInvalidKeyCount
	}
	if w.Delete > w.Keys {
		return fault.ErrInvalidDeleteCount
	}
	return nil
}

// ensure the path is absolute
// if not, prepend the directory to make absolute path
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
