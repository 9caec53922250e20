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

// Package onboarding drives one onboarding run: load the permission manifest
// for the job's client and position, resolve the user once, apply every row
// in manifest order and report one outcome per row.
package onboarding

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/onboardsec/azgrant/client"
	"github.com/onboardsec/azgrant/manifest"
	"github.com/onboardsec/azgrant/models"
)

// InvalidJobError indicates a job with a missing required field. Fatal
// before any manifest or network access.
type InvalidJobError struct {
	Field string
}

func (s InvalidJobError) Error() string {
	return fmt.Sprintf("invalid onboarding job: %s is required", s.Field)
}

type Orchestrator struct {
	azClient    client.AzureClient
	manifestDir string
	log         logr.Logger
}

func NewOrchestrator(azClient client.AzureClient, manifestDir string, log logr.Logger) *Orchestrator {
	return &Orchestrator{
		azClient:    azClient,
		manifestDir: manifestDir,
		log:         log,
	}
}

// Run executes the job and returns the full report. Only an invalid job or
// a missing manifest abort the run; every other failure lands in the
// affected row's outcome and processing continues.
func (s *Orchestrator) Run(ctx context.Context, job models.OnboardingJob) (models.OnboardingReport, error) {
	report := models.OnboardingReport{Job: job}

	if err := validate(job); err != nil {
		return report, err
	}

	entries, err := manifest.Load(job.Client, job.Position, s.manifestDir)
	if err != nil {
		return report, err
	}
	s.log.Info("loaded permission manifest", "file", manifest.Filename(job.Client, job.Position), "rows", len(entries))

	// The principal is resolved once per run; directory lookups have no
	// side effects so every row shares the result.
	principalId := ""
	user, resolveErr := s.azClient.ResolveUser(ctx, job.UserPrincipalName)
	if resolveErr != nil {
		s.log.Error(resolveErr, "unable to resolve principal; all rows will be reported as failed", "userPrincipalName", job.UserPrincipalName)
	} else {
		principalId = user.Id
		s.log.V(1).Info("resolved principal", "userPrincipalName", job.UserPrincipalName, "objectId", principalId)
	}

	exec := executor{azClient: s.azClient, log: s.log}

	for _, entry := range entries {
		var outcome models.GrantOutcome

		switch {
		case entry.Err != nil:
			outcome = models.GrantOutcome{
				Request: entry.Request,
				Status:  models.GrantStatusFailed,
				Detail:  entry.Err.Error(),
			}
		case resolveErr != nil:
			outcome = models.GrantOutcome{
				Request: entry.Request,
				Status:  models.GrantStatusFailed,
				Detail:  resolveErr.Error(),
			}
		default:
			outcome = exec.execute(ctx, entry.Request, principalId, job.SubscriptionId)
		}

		if outcome.Status == models.GrantStatusGranted {
			report.Granted++
		} else {
			report.Failed++
			s.log.Info("grant failed", "resourceType", outcome.Request.Kind, "resourceName", outcome.Request.ResourceName, "detail", outcome.Detail)
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}

	s.log.Info("onboarding run completed", "granted", report.Granted, "failed", report.Failed)
	return report, nil
}

func validate(job models.OnboardingJob) error {
	switch {
	case job.UserPrincipalName == "":
		return InvalidJobError{Field: "userPrincipalName"}
	case job.Position == "":
		return InvalidJobError{Field: "position"}
	case job.Client == "":
		return InvalidJobError{Field: "client"}
	case job.SubscriptionId == "":
		return InvalidJobError{Field: "subscriptionId"}
	default:
		return nil
	}
}
