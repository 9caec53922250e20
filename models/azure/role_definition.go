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

package azure

// RoleDefinition represents a Microsoft.Authorization role definition.
// https://learn.microsoft.com/en-us/rest/api/authorization/role-definitions
type RoleDefinition struct {
	Id         string                   `json:"id,omitempty"`
	Name       string                   `json:"name,omitempty"`
	Type       string                   `json:"type,omitempty"`
	Properties RoleDefinitionProperties `json:"properties"`
}

type RoleDefinitionProperties struct {
	RoleName    string `json:"roleName,omitempty"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
}

// RoleDefinitionList is the response envelope for the role definition list
// endpoint.
type RoleDefinitionList struct {
	Value []RoleDefinition `json:"value"`
}
