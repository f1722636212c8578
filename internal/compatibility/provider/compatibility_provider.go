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
	"github.com/wso2/liftout-marketplace-service/internal/compatibility/service"
)

// CompatibilityProviderInterface defines the interface for the compatibility provider.
type CompatibilityProviderInterface interface {
	GetCompatibilityService() service.CompatibilityServiceInterface
}

// CompatibilityProvider is the default implementation of the CompatibilityProviderInterface.
type CompatibilityProvider struct{}

// NewCompatibilityProvider creates a new instance of CompatibilityProvider.
func NewCompatibilityProvider() CompatibilityProviderInterface {
	return &CompatibilityProvider{}
}

// GetCompatibilityService returns the compatibility service instance.
func (cp *CompatibilityProvider) GetCompatibilityService() service.CompatibilityServiceInterface {
	return service.GetCompatibilityService()
}
