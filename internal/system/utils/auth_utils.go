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

package utils

import (
	"net/http"
	"strings"

	"github.com/wso2/identity-corporate-onboarding-service/internal/system/authn"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/config"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/errors"
)

// Authn performs bearer-token authentication for the given HTTP request.
// Authentication is skipped entirely when disabled in the deployment config.
func Authn(r *http.Request) error {

	if !config.GetCOSRuntime().Config.Auth.Enabled {
		return nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.UN_AUTHORIZED.Code,
			Message:     errors.UN_AUTHORIZED.Message,
			Description: "Missing or invalid Authorization header",
		}, http.StatusUnauthorized)
		return clientError
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")

	if _, err := authn.ValidateAuthenticationAndReturnClaims(token); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.UN_AUTHORIZED.Code,
			Message:     errors.UN_AUTHORIZED.Message,
			Description: "Bearer token validation failed",
		}, http.StatusUnauthorized)
		return clientError
	}
	return nil
}
