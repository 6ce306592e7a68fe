// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltraverse/fault"
)

// output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// basic defaults (directories and files are relative to the directory
// of the configuration file)
const (
	defaultTraversal     = "ascending"
	defaultFormat        = FormatText
	defaultCacheExpiry   = 60  // seconds
	defaultWatchInterval = 500 // milliseconds

	defaultLogDirectory = "log"
	defaultLogFile      = "avltraverse.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - program settings, command line options override
// these
type Configuration struct {
	Traversal     string               `gluamapper:"traversal" json:"traversal"`
	Format        string               `gluamapper:"format" json:"format"`
	CacheExpiry   int                  `gluamapper:"cache_expiry" json:"cache_expiry"`
	WatchInterval int                  `gluamapper:"watch_interval" json:"watch_interval"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Default - the configuration used when no file is given
//
// the log goes to the temporary directory and only critical messages
// are written
func Default() *Configuration {
	levels := make(LoglevelMap, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}
	return &Configuration{
		Traversal:     defaultTraversal,
		Format:        defaultFormat,
		CacheExpiry:   defaultCacheExpiry,
		WatchInterval: defaultWatchInterval,
		Logging: logger.Configuration{
			Directory: os.TempDir(),
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    levels,
		},
	}
}

// Get - read, decode and verify the configuration
// an empty file name gives the defaults
func Get(configurationFileName string) (*Configuration, error) {

	options := Default()
	if "" == configurationFileName {
		return options, nil
	}

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}
	if _, err := os.Stat(configurationFileName); nil != err {
		return nil, fault.ErrMissingConfiguration
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options.Logging.Directory = defaultLogDirectory

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.Logging.Directory = ensureAbsolute(dataDirectory, options.Logging.Directory)

	options.Traversal = strings.ToLower(options.Traversal)
	options.Format = strings.ToLower(options.Format)
	if err := CheckFormat(options.Format); nil != err {
		return nil, err
	}
	if options.CacheExpiry <= 0 {
		options.CacheExpiry = defaultCacheExpiry
	}
	if options.WatchInterval <= 0 {
		options.WatchInterval = defaultWatchInterval
	}

	return options, nil
}

// CheckFormat - error if not a known output format
func CheckFormat(format string) error {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	default:
		return fault.ErrInvalidFormat
	}
}

// ensure the path is absolute
// if not, prepend the directory to make absolute path
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
