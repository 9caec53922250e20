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

package config

import "github.com/onboardsec/azgrant/constants"

var (
	ConfigFile = Option{
		Name:       "config",
		Shorthand:  "c",
		Usage:      "Location of the configuration file",
		Persistent: true,
		Default:    "",
	}
	VerbosityLevel = Option{
		Name:       "verbosity",
		Shorthand:  "v",
		Usage:      "Verbosity level: 0 = info, 1 = debug, 2 = trace",
		Persistent: true,
		Default:    0,
	}
	JsonLogs = Option{
		Name:       "json",
		Usage:      "Output logs as JSON",
		Persistent: true,
		Default:    false,
	}
	LogFile = Option{
		Name:       "log-file",
		Usage:      "Also write logs to this file",
		Persistent: true,
		Default:    "",
	}
	Proxy = Option{
		Name:       "proxy",
		Usage:      "Sets the proxy URL for all requests",
		Persistent: true,
		Default:    "",
	}
)

var (
	AzTenant = Option{
		Name:       "tenant",
		Shorthand:  "t",
		Usage:      "The directory tenant to authenticate to; either the id or the domain suffix",
		Persistent: true,
		Default:    "",
	}
	AzAppId = Option{
		Name:       "app",
		Shorthand:  "a",
		Usage:      "The id of the application registration used to authenticate",
		Persistent: true,
		Default:    "",
	}
	AzSecret = Option{
		Name:       "secret",
		Shorthand:  "s",
		Usage:      "The application secret",
		Persistent: true,
		Default:    "",
	}
	AzCert = Option{
		Name:       "cert",
		Usage:      "Path to the PEM encoded certificate for client assertion authentication",
		Persistent: true,
		Default:    "",
	}
	AzKey = Option{
		Name:       "key",
		Usage:      "Path to the PEM encoded private key for client assertion authentication",
		Persistent: true,
		Default:    "",
	}
	AzKeyPass = Option{
		Name:       "keypass",
		Usage:      "Passphrase for the private key",
		Persistent: true,
		Default:    "",
	}
	AzUsername = Option{
		Name:       "username",
		Shorthand:  "u",
		Usage:      "Username to authenticate with (password grant)",
		Persistent: true,
		Default:    "",
	}
	AzPassword = Option{
		Name:       "password",
		Shorthand:  "p",
		Usage:      "Password to authenticate with (password grant)",
		Persistent: true,
		Default:    "",
	}
	AzRefreshToken = Option{
		Name:       "refresh-token",
		Shorthand:  "r",
		Usage:      "Refresh token to authenticate with",
		Persistent: true,
		Default:    "",
	}
	AzManagedIdentity = Option{
		Name:       "use-managed-identity",
		Usage:      "Authenticate with the managed identity of the Azure host",
		Persistent: true,
		Default:    false,
	}
	AzAuthUrl = Option{
		Name:       "auth-url",
		Usage:      "The authority base URL",
		Persistent: true,
		Default:    constants.AuthorityUrl,
	}
	AzGraphUrl = Option{
		Name:       "graph-url",
		Usage:      "The MS Graph base URL",
		Persistent: true,
		Default:    constants.GraphUrl,
	}
	AzMgmtUrl = Option{
		Name:       "mgmt-url",
		Usage:      "The Azure Resource Manager base URL",
		Persistent: true,
		Default:    constants.ManagementUrl,
	}
)

var (
	OnboardUser = Option{
		Name:     "user",
		Usage:    "User principal name of the identity being onboarded",
		Required: true,
		Default:  "",
	}
	OnboardPosition = Option{
		Name:     "position",
		Usage:    "Position the identity is onboarded into, e.g. Developer",
		Required: true,
		Default:  "",
	}
	OnboardClient = Option{
		Name:     "client",
		Usage:    "Client whose permission manifest applies",
		Required: true,
		Default:  "",
	}
	OnboardSubscriptionId = Option{
		Name:     "subscription-id",
		Usage:    "Target subscription id",
		Required: true,
		Default:  "",
	}
	ManifestDir = Option{
		Name:    "manifest-dir",
		Usage:   "Directory containing the permission manifests",
		Default: "manifests",
	}
	OutputFile = Option{
		Name:      "output",
		Shorthand: "o",
		Usage:     "Also write the run report as JSON to this file",
		Default:   "",
	}
)

// GlobalConfig applies to every command.
var GlobalConfig = []Option{ConfigFile, VerbosityLevel, JsonLogs, LogFile, Proxy}

// AzureConfig covers authentication and endpoint selection.
var AzureConfig = []Option{
	AzTenant, AzAppId, AzSecret, AzCert, AzKey, AzKeyPass,
	AzUsername, AzPassword, AzRefreshToken, AzManagedIdentity,
	AzAuthUrl, AzGraphUrl, AzMgmtUrl,
}

// OnboardConfig covers the onboard command's job parameters.
var OnboardConfig = []Option{
	OnboardUser, OnboardPosition, OnboardClient, OnboardSubscriptionId,
	ManifestDir, OutputFile,
}
