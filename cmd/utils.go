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

	"golang.org/x/net/proxy"

	"github.com/onboardsec/azgrant/client"
	client_config "github.com/onboardsec/azgrant/client/config"
	"github.com/onboardsec/azgrant/client/rest"
	"github.com/onboardsec/azgrant/config"
)

func init() {
	proxy.RegisterDialerType("http", rest.NewProxyDialer)
	proxy.RegisterDialerType("https", rest.NewProxyDialer)
}

func exit(err error) {
	log.Error(err, "encountered unrecoverable error")
	os.Exit(1)
}

func testConnections() error {
	proxyUrl := config.Proxy.Value().(string)
	if _, err := rest.Dial(log, proxyUrl, config.AzAuthUrl.Value().(string)); err != nil {
		return fmt.Errorf("unable to connect to %s: %w", config.AzAuthUrl.Value(), err)
	} else if _, err := rest.Dial(log, proxyUrl, config.AzGraphUrl.Value().(string)); err != nil {
		return fmt.Errorf("unable to connect to %s: %w", config.AzGraphUrl.Value(), err)
	} else if _, err := rest.Dial(log, proxyUrl, config.AzMgmtUrl.Value().(string)); err != nil {
		return fmt.Errorf("unable to connect to %s: %w", config.AzMgmtUrl.Value(), err)
	} else {
		return nil
	}
}

func newAzureClient(subscriptionId string) (client.AzureClient, error) {
	var (
		certFile   = config.AzCert.Value()
		keyFile    = config.AzKey.Value()
		clientCert string
		clientKey  string
	)

	if file, ok := certFile.(string); ok && file != "" {
		if content, err := os.ReadFile(file); err != nil {
			return nil, fmt.Errorf("unable to read provided certificate: %w", err)
		} else {
			clientCert = string(content)
		}
	}

	if file, ok := keyFile.(string); ok && file != "" {
		if content, err := os.ReadFile(file); err != nil {
			return nil, fmt.Errorf("unable to read provided key file: %w", err)
		} else {
			clientKey = string(content)
		}
	}

	config := client_config.Config{
		ApplicationId:   config.AzAppId.Value().(string),
		Authority:       config.AzAuthUrl.Value().(string),
		ClientSecret:    config.AzSecret.Value().(string),
		ClientCert:      clientCert,
		ClientKey:       clientKey,
		ClientKeyPass:   config.AzKeyPass.Value().(string),
		Graph:           config.AzGraphUrl.Value().(string),
		Management:      config.AzMgmtUrl.Value().(string),
		Password:        config.AzPassword.Value().(string),
		ProxyUrl:        config.Proxy.Value().(string),
		RefreshToken:    config.AzRefreshToken.Value().(string),
		SubscriptionId:  subscriptionId,
		Tenant:          config.AzTenant.Value().(string),
		Username:        config.AzUsername.Value().(string),
		ManagedIdentity: config.AzManagedIdentity.Value().(bool),
	}
	return client.NewClient(config)
}

func connectAndCreateClient(subscriptionId string) client.AzureClient {
	log.V(1).Info("testing connections")
	if err := testConnections(); err != nil {
		exit(fmt.Errorf("failed to test connections: %w", err))
	} else if azClient, err := newAzureClient(subscriptionId); err != nil {
		exit(fmt.Errorf("failed to create new Azure client: %w", err))
	} else {
		return azClient
	}

	panic("unexpectedly failed to create azClient without error")
}
