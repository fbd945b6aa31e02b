// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "avl-soak.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRounds        = 100000
	defaultKeyRange      = 10000
	defaultInsertPercent = 55
	defaultCheckEvery    = 1000
	defaultReportEvery   = 10000
)

// Configuration - contents of the Lua configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Seed          int64                `gluamapper:"seed" json:"seed"`
	Rounds        int                  `gluamapper:"rounds" json:"rounds"`
	KeyRange      int                  `gluamapper:"key_range" json:"key_range"`
	InsertPercent int                  `gluamapper:"insert_percent" json:"insert_percent"`
	CheckEvery    int                  `gluamapper:"check_every" json:"check_every"`
	ReportEvery   int                  `gluamapper:"report_every" json:"report_every"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Seed:          0, // zero selects a time based seed
		Rounds:        defaultRounds,
		KeyRange:      defaultKeyRange,
		InsertPercent: defaultInsertPercent,
		CheckEvery:    defaultCheckEvery,
		ReportEvery:   defaultReportEvery,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				"main":            "info",
				"soak":            "info",
				logger.DefaultTag: "critical",
			},
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if options.Rounds <= 0 {
		return nil, fmt.Errorf("rounds: %d  %w", options.Rounds, fault.ErrInvalidCount)
	}
	if options.KeyRange <= 0 {
		return nil, fmt.Errorf("key_range: %d  %w", options.KeyRange, fault.ErrInvalidCount)
	}
	if options.CheckEvery <= 0 {
		return nil, fmt.Errorf("check_every: %d  %w", options.CheckEvery, fault.ErrInvalidCount)
	}
	if options.ReportEvery <= 0 {
		return nil, fmt.Errorf("report_every: %d  %w", options.ReportEvery, fault.ErrInvalidCount)
	}
	if options.InsertPercent < 0 || options.InsertPercent > 100 {
		return nil, fmt.Errorf("insert_percent: %d  %w", options.InsertPercent, fault.ErrInvalidPercentage)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// log directory is relative to the data directory
	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(options.DataDirectory, options.Logging.Directory)
	}

	return options, nil
}
