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

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/onboardsec/azgrant/config"
)

func init() {
	rootCmd.AddCommand(configureCmd)
}

var configureCmd = &cobra.Command{
	Use:               "configure",
	Short:             "Interactively create the configuration file",
	RunE:              configureCmdImpl,
	PersistentPreRunE: persistentPreRunE,
	SilenceUsage:      true,
}

func configureCmdImpl(cmd *cobra.Command, args []string) error {
	prompts := []struct {
		option config.Option
		label  string
		mask   rune
	}{
		{config.AzTenant, "Directory tenant (id or domain suffix)", 0},
		{config.AzAppId, "Application registration id", 0},
		{config.AzSecret, "Application secret (leave empty to use another credential)", '*'},
		{config.ManifestDir, "Permission manifest directory", 0},
	}

	for _, item := range prompts {
		prompt := promptui.Prompt{
			Label: item.label,
			Mask:  item.mask,
		}
		if current, ok := item.option.Value().(string); ok && current != "" && item.mask == 0 {
			prompt.Default = current
		}

		if value, err := prompt.Run(); err != nil {
			return fmt.Errorf("prompt aborted: %w", err)
		} else if value != "" {
			item.option.Set(value)
		}
	}

	path := config.ConfigFileUsed()
	if path == "" {
		path = config.DefaultConfigFile()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("unable to create config directory: %w", err)
	} else if err := viper.WriteConfigAs(path); err != nil {
		return fmt.Errorf("unable to write config file: %w", err)
	} else {
		fmt.Printf("configuration written to %s\n", path)
		return nil
	}
}
