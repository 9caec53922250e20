// Copyright (C) 2025 OnboardSec
//
// This file is part of AzGrant.
//
// AzGrant is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// AzGrant is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package manifest loads the permission manifest for a (client, position)
// pair. A manifest is a CSV file named {client}-{position}-Permissions.csv
// with the header ResourceType,ResourceName,Role,ResourceGroupName.
package manifest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/onboardsec/azgrant/enums"
	"github.com/onboardsec/azgrant/models"
)

// NotFoundError indicates that no manifest exists for the requested client
// and position. Fatal for the run: there is nothing to grant.
type NotFoundError struct {
	Path string
}

func (s NotFoundError) Error() string {
	return fmt.Sprintf("permission manifest not found: %s", s.Path)
}

// MalformedRowError indicates a data row missing a required column. Row-local:
// the row is reported as failed and the rest of the manifest still loads.
type MalformedRowError struct {
	Line   int
	Reason string
}

func (s MalformedRowError) Error() string {
	return fmt.Sprintf("malformed manifest row %d: %s", s.Line, s.Reason)
}

// Entry is one data row of a manifest, in file order. Err is set instead of
// Request when the row was malformed.
type Entry struct {
	Request models.GrantRequest
	Err     error
}

var requiredColumns = []string{"ResourceType", "ResourceName", "Role", "ResourceGroupName"}

// Filename returns the manifest file name for a client and position.
func Filename(client string, position string) string {
	return fmt.Sprintf("%s-%s-Permissions.csv", client, position)
}

// Load reads the manifest for the given client and position from rootDir.
// Row order is preserved; no deduplication or grouping is performed. A row
// with a missing trailing ResourceGroupName parses with an empty group.
func Load(client string, position string, rootDir string) ([]Entry, error) {
	path := filepath.Join(rootDir, Filename(client, position))

	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, NotFoundError{Path: path}
	} else if err != nil {
		return nil, fmt.Errorf("unable to open manifest %s: %w", path, err)
	}
	defer file.Close()

	return parse(file, path)
}

func parse(r io.Reader, path string) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // short rows are padded, not rejected
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("manifest %s is empty", path)
	} else if err != nil {
		return nil, fmt.Errorf("unable to read manifest header: %w", err)
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	var entries []Entry
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			return entries, nil
		} else if err != nil {
			entries = append(entries, Entry{Err: MalformedRowError{Line: line, Reason: err.Error()}})
			continue
		}

		entries = append(entries, newEntry(record, columns, line))
	}
}

// mapColumns resolves each required column name to its index in the header.
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int)
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("manifest header is missing the %s column", name)
		}
	}
	return columns, nil
}

func newEntry(record []string, columns map[string]int, line int) Entry {
	field := func(name string) string {
		if i := columns[name]; i < len(record) {
			return strings.TrimSpace(record[i])
		}
		return ""
	}

	request := models.GrantRequest{
		Kind:          enums.ResourceKind(field("ResourceType")),
		ResourceName:  field("ResourceName"),
		Role:          field("Role"),
		ResourceGroup: field("ResourceGroupName"),
	}

	switch {
	case request.Kind == "":
		return Entry{Err: MalformedRowError{Line: line, Reason: "missing ResourceType"}}
	case request.ResourceName == "":
		return Entry{Err: MalformedRowError{Line: line, Reason: "missing ResourceName"}}
	case request.Role == "":
		return Entry{Err: MalformedRowError{Line: line, Reason: "missing Role"}}
	default:
		return Entry{Request: request}
	}
}
