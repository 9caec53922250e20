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
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/onboardsec/azgrant/config"
	"github.com/onboardsec/azgrant/models"
	"github.com/onboardsec/azgrant/onboarding"
	"github.com/onboardsec/azgrant/sinks"
)

func init() {
	config.Init(onboardCmd, config.OnboardConfig)
	rootCmd.AddCommand(onboardCmd)
}

var onboardCmd = &cobra.Command{
	Use:               "onboard",
	Short:             "Apply the permission manifest for a client and position to a user",
	Run:               onboardCmdImpl,
	PersistentPreRunE: persistentPreRunE,
	SilenceUsage:      true,
}

func onboardCmdImpl(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, os.Kill)
	defer stop()

	job := models.OnboardingJob{
		UserPrincipalName: config.OnboardUser.Value().(string),
		Position:          config.OnboardPosition.Value().(string),
		Client:            config.OnboardClient.Value().(string),
		SubscriptionId:    config.OnboardSubscriptionId.Value().(string),
	}

	azClient := connectAndCreateClient(job.SubscriptionId)
	defer azClient.CloseIdleConnections()

	var (
		orchestrator = onboarding.NewOrchestrator(azClient, config.ManifestDir.Value().(string), log)
		start        = time.Now()
	)

	report, err := orchestrator.Run(ctx, job)
	if err != nil {
		exit(err)
	}

	sinks.WriteToConsole(os.Stdout, report)
	if path := config.OutputFile.Value().(string); path != "" {
		if err := sinks.WriteToFile(path, report); err != nil {
			exit(fmt.Errorf("failed to write report: %w", err))
		}
		log.V(1).Info("wrote report", "path", path)
	}

	log.Info("onboarding finished", "duration", time.Since(start).String())

	// surrounding tooling keys off the exit status
	if report.Failed > 0 {
		os.Exit(1)
	}
}
