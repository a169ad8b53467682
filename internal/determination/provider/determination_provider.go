/*
 * Copyright (c) 2026, WSO2 LLC. (http://www.wso2.com).
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
	"github.com/wso2/identity-corporate-onboarding-service/internal/determination/service"
)

// DeterminationProviderInterface defines the interface for the determination provider.
type DeterminationProviderInterface interface {
	GetDeterminationService() service.DeterminationServiceInterface
}

// DeterminationProvider is the default implementation of the DeterminationProviderInterface.
type DeterminationProvider struct{}

// NewDeterminationProvider creates a new instance of DeterminationProvider.
func NewDeterminationProvider() DeterminationProviderInterface {
	return &DeterminationProvider{}
}

// GetDeterminationService returns the determination service instance.
func (dp *DeterminationProvider) GetDeterminationService() service.DeterminationServiceInterface {
	return service.GetDeterminationService()
}
