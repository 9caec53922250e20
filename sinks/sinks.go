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

// Package sinks writes the run report for consumption by surrounding
// tooling: a human readable table on the console or JSON to a results file.
package sinks

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/onboardsec/azgrant/models"
)

// WriteToFile writes the report as indented JSON to path, creating or
// truncating the file.
func WriteToFile(path string, report models.OnboardingReport) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create results file %s: %w", path, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("unable to write results file %s: %w", path, err)
	}
	return nil
}

// WriteToConsole prints one line per outcome, in manifest order, followed by
// the aggregate counts.
func WriteToConsole(w io.Writer, report models.OnboardingReport) {
	for _, outcome := range report.Outcomes {
		if outcome.Status == models.GrantStatusGranted {
			fmt.Fprintf(w, "%-7s %s/%s role=%q scope=%s\n",
				outcome.Status, outcome.Request.Kind, outcome.Request.ResourceName, outcome.Request.Role, outcome.Scope)
		} else {
			fmt.Fprintf(w, "%-7s %s/%s role=%q detail=%s\n",
				outcome.Status, outcome.Request.Kind, outcome.Request.ResourceName, outcome.Request.Role, outcome.Detail)
		}
	}
	fmt.Fprintf(w, "\n%d granted, %d failed\n", report.Granted, report.Failed)
}
