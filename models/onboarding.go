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

package models

import (
	"github.com/onboardsec/azgrant/enums"
)

// GrantRequest is one row of a permission manifest: the intent to assign one
// role on one resource. Never mutated after parsing.
type GrantRequest struct {
	Kind          enums.ResourceKind `json:"resourceType"`
	ResourceName  string             `json:"resourceName"`
	Role          string             `json:"role"`
	ResourceGroup string             `json:"resourceGroupName,omitempty"`
}

type GrantStatus string

const (
	GrantStatusGranted GrantStatus = "Granted"
	GrantStatusFailed  GrantStatus = "Failed"
)

// GrantOutcome records the result of attempting one GrantRequest. A run
// produces exactly one outcome per manifest row, in manifest order.
type GrantOutcome struct {
	Request GrantRequest `json:"request"`
	Status  GrantStatus  `json:"status"`
	Scope   string       `json:"scope,omitempty"`
	Detail  string       `json:"detail,omitempty"`
}

// OnboardingJob holds the parameters of one onboarding run. All four fields
// are required; the subscription id is treated as opaque and validated by ARM.
type OnboardingJob struct {
	UserPrincipalName string `json:"userPrincipalName"`
	Position          string `json:"position"`
	Client            string `json:"client"`
	SubscriptionId    string `json:"subscriptionId"`
}

// OnboardingReport is the terminal output of a run: every outcome in manifest
// order plus the aggregate counts.
type OnboardingReport struct {
	Job      OnboardingJob  `json:"job"`
	Outcomes []GrantOutcome `json:"outcomes"`
	Granted  int            `json:"granted"`
	Failed   int            `json:"failed"`
}
