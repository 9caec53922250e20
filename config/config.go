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

// Package config defines the application options and binds them across
// flags, environment variables and an optional config file, in that order of
// precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/onboardsec/azgrant/constants"
)

const envPrefix = "AZGRANT"

// Option is one named setting with a flag, an environment binding and an
// optional config file entry.
type Option struct {
	Name       string
	Shorthand  string
	Usage      string
	Required   bool
	Persistent bool
	Default    interface{}
}

func (s Option) Value() interface{} {
	return viper.Get(s.Name)
}

func (s Option) Set(value interface{}) {
	viper.Set(s.Name, value)
}

// Init registers the options as flags on cmd and binds them into viper.
func Init(cmd *cobra.Command, options []Option) {
	for _, option := range options {
		var flags *pflag.FlagSet
		if option.Persistent {
			flags = cmd.PersistentFlags()
		} else {
			flags = cmd.Flags()
		}

		switch value := option.Default.(type) {
		case bool:
			flags.BoolP(option.Name, option.Shorthand, value, option.Usage)
		case int:
			flags.IntP(option.Name, option.Shorthand, value, option.Usage)
		default:
			flags.StringP(option.Name, option.Shorthand, fmt.Sprintf("%v", option.Default), option.Usage)
		}

		if option.Required {
			cmd.MarkFlagRequired(option.Name)
		}

		viper.SetDefault(option.Name, option.Default)
		viper.BindPFlag(option.Name, flags.Lookup(option.Name))
	}
}

// LoadValues pulls the environment and the config file into viper. Missing
// config files are fine; a file that exists but does not parse is not.
func LoadValues() error {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if path := viper.GetString(ConfigFile.Name); path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigFile(DefaultConfigFile())
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("unable to read config file: %w", err)
	}
	return nil
}

// ConfigFileUsed returns the path of the config file viper loaded, if any.
func ConfigFileUsed() string {
	return viper.ConfigFileUsed()
}

// DefaultConfigFile is ~/.config/azgrant/config.json.
func DefaultConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", fmt.Sprintf("%s.json", constants.Name))
	}
	return filepath.Join(home, ".config", constants.Name, "config.json")
}
