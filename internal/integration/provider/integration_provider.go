/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package provider

import (
	"github.com/wso2/liftout-marketplace-service/internal/integration/service"
)

// IntegrationProviderInterface defines the interface for the integration provider.
type IntegrationProviderInterface interface {
	GetIntegrationTrackerService() service.IntegrationTrackerServiceInterface
}

// IntegrationProvider is the default implementation of the IntegrationProviderInterface.
type IntegrationProvider struct{}

// NewIntegrationProvider creates a new instance of IntegrationProvider.
func NewIntegrationProvider() IntegrationProviderInterface {
	return &IntegrationProvider{}
}

// GetIntegrationTrackerService returns the integration tracker service instance.
func (ip *IntegrationProvider) GetIntegrationTrackerService() service.IntegrationTrackerServiceInterface {
	return service.GetIntegrationTrackerService()
}
