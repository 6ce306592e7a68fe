// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package watcher

import (
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avltraverse/fault"
)

const (
	loggerTag = "watcher"
)

// Watcher - a single file watched through its directory
type Watcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	limiter  *rate.Limiter
	change   chan struct{}
	remove   chan struct{}
}

// New - watch a file, signalling changes no more often than interval
func New(fileName string, interval time.Duration) (*Watcher, error) {
	log := logger.New(loggerTag)

	filePath, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		log.Errorf("path: %q  error: %s", fileName, err)
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fault.ErrMissingInputFile
	}

	w, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher error: %s", err)
		return nil, err
	}

	// watch the directory so a replaced file is still seen
	err = w.Add(filepath.Dir(filePath))
	if nil != err {
		log.Errorf("watch: %q  error: %s", filePath, err)
		w.Close()
		return nil, err
	}

	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}

	return &Watcher{
		log:      log,
		watcher:  w,
		filePath: filePath,
		limiter:  rate.NewLimiter(limit, 1),
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
	}, nil
}

// FilePath - absolute path of the watched file
func (w *Watcher) FilePath() string {
	return w.filePath
}

// Change - receives after the file has been written
func (w *Watcher) Change() <-chan struct{} {
	return w.change
}

// Remove - receives once when the file is removed or renamed away
func (w *Watcher) Remove() <-chan struct{} {
	return w.remove
}

// Run - the background loop, returns on shutdown or file removal
func (w *Watcher) Run(args interface{}, shutdown <-chan struct{}) {
	defer w.watcher.Close()

	w.log.Infof("watching: %q", w.filePath)
	base := filepath.Base(w.filePath)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case err := <-w.watcher.Errors:
			w.log.Errorf("watch error: %s", err)

		case event := <-w.watcher.Events:
			if filepath.Base(event.Name) != base {
				continue loop
			}
			w.log.Debugf("file event: %v", event)

			if isRemove(event) {
				w.log.Warnf("file: %q removed, stop", w.filePath)
				signal(w.remove)
				break loop
			}
			if !isChange(event) {
				continue loop
			}

			delay := w.limiter.Reserve().Delay()
			if delay > 0 {
				w.log.Debugf("change delayed: %s", delay)
				select {
				case <-shutdown:
					break loop
				case <-time.After(delay):
				}
			}
			w.log.Info("sending change event")
			signal(w.change)
		}
	}

	w.log.Info("stopped")
	w.log.Flush()
}

// a pending signal already covers any later event
func signal(ch chan<- struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

func isRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func isChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
