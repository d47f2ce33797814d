// Package importer loads bookmarks from YAML files and saves them through the bookmark service.
package importer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	apperrors "bookmarks-backend/internal/errors"
	"bookmarks-backend/internal/logger"
	"bookmarks-backend/internal/repository"
	"bookmarks-backend/internal/service"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// BookmarksFile is the layout of one import file:
//
//	bookmarks:
//	  - url: https://go.dev
//	    title: The Go Programming Language
//	    notes: ""
//	    tags: go lang
type BookmarksFile struct {
	Bookmarks []service.SaveBookmarkRequest `yaml:"bookmarks"`
}

// Result counts what an import did
type Result struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

// Importer saves file entries, updating the bookmark with the same URL when one exists
type Importer struct {
	service service.BookmarkServiceInterface
}

// New creates a new Importer
func New(service service.BookmarkServiceInterface) *Importer {
	return &Importer{service: service}
}

// LoadDir reads every .yaml or .yml file below dir, in lexical path order
func LoadDir(dir string) ([]service.SaveBookmarkRequest, error) {
	var entries []service.SaveBookmarkRequest

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		loaded, err := LoadFile(path)
		if err != nil {
			return err
		}
		entries = append(entries, loaded...)
		return nil
	})

	return entries, err
}

// LoadFile reads the bookmarks of a single YAML file
func LoadFile(path string) ([]service.SaveBookmarkRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file BookmarksFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return file.Bookmarks, nil
}

// Import saves entries one by one. Entries that fail validation are skipped
// and logged; any other error stops the import.
func (i *Importer) Import(entries []service.SaveBookmarkRequest) (*Result, error) {
	result := &Result{}
	log := logger.New()

	for n := range entries {
		entry := entries[n]
		entryLog := log.WithFields(map[string]interface{}{"entry": n, "url": entry.URL})

		existing, err := i.existingID(entry.URL)
		if err != nil {
			return result, fmt.Errorf("entry %d: %w", n, err)
		}

		if _, err := i.service.SaveBookmark(&entry, existing); err != nil {
			if apperrors.IsValidation(err) {
				entryLog.WithError(err).Warn("Skipping invalid bookmark")
				result.Skipped++
				continue
			}
			return result, fmt.Errorf("entry %d: %w", n, err)
		}

		if existing != nil {
			result.Updated++
		} else {
			result.Created++
		}
	}

	log.WithFields(map[string]interface{}{
		"created": result.Created,
		"updated": result.Updated,
		"skipped": result.Skipped,
	}).Info("Import finished")
	return result, nil
}

func (i *Importer) existingID(url string) (*uuid.UUID, error) {
	if strings.TrimSpace(url) == "" {
		return nil, nil
	}
	found, err := i.service.FindBookmarks(repository.FindQuery{URL: url})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}
	id := found[0].ID
	return &id, nil
}
