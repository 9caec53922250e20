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

package constants

import "fmt"

const (
	Name    string = "azgrant"
	Version string = "v0.3.1"

	AuthorityUrl  string = "https://login.microsoftonline.com"
	GraphUrl      string = "https://graph.microsoft.com"
	ManagementUrl string = "https://management.azure.com"

	GraphApiVersion string = "v1.0"

	// api-version for Microsoft.Authorization role definitions and assignments
	AuthorizationApiVersion string = "2022-04-01"
)

func UserAgent() string {
	return fmt.Sprintf("%s/%s", Name, Version)
}
