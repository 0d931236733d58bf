package internal

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pseudolint/plint/internal/types"
)

var watchableExtensions = map[string]bool{
	".txt":    true,
	".pseudo": true,
	".pc":     true,
}

// StartWatching watches the given files and directories and re-analyzes a
// file whenever it is written, passing the resulting flags to report.
func (e *Engine) StartWatching(paths []string, report func(filename string, flags []types.Flag)) error {
	if e.isWatching {
		return fmt.Errorf("already watching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}
	e.watcher = watcher
	e.report = report

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			e.watcher.Close()
			return fmt.Errorf("error accessing %s: %w", p, err)
		}
		if !info.IsDir() {
			if err := e.watcher.Add(p); err != nil {
				e.watcher.Close()
				return fmt.Errorf("error adding file to watcher: %w", err)
			}
			continue
		}
		err = filepath.Walk(p, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return e.watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			e.watcher.Close()
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}

	e.isWatching = true
	go e.watchLoop()
	return nil
}

// StopWatching stops the watch loop and closes the watcher.
func (e *Engine) StopWatching() error {
	if !e.isWatching {
		log.Println("not watching")
	}
	e.isWatching = false
	return e.watcher.Close()
}

func (e *Engine) watchLoop() {
	for e.isWatching {
		select {
		case event, ok := <-e.watcher.Events:
			if !ok {
				return
			}
			e.handleFileEvent(event)
		case err, ok := <-e.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("error: %v", err)
		}
	}
}

func (e *Engine) handleFileEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}
	if !watchableExtensions[filepath.Ext(event.Name)] {
		return
	}
	// wait for a while after file change to consider multiple changes as one
	time.Sleep(100 * time.Millisecond)
	flags, err := e.Run(event.Name)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if e.report != nil {
		e.report(event.Name, flags)
		return
	}
	log.Printf("found %d flags in %s", len(flags), event.Name)
}
