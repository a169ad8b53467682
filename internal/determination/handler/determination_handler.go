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

package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	detModel "github.com/wso2/identity-corporate-onboarding-service/internal/determination/model"
	"github.com/wso2/identity-corporate-onboarding-service/internal/determination/provider"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/errors"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/utils"
)

type DeterminationHandler struct{}

func NewDeterminationHandler() *DeterminationHandler {
	return &DeterminationHandler{}
}

// Determine handles POST /determinations
func (h *DeterminationHandler) Determine(w http.ResponseWriter, r *http.Request) {

	if err := utils.Authn(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	var req detModel.DeterminationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "determination request"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	service := provider.NewDeterminationProvider().GetDeterminationService()
	response, err := service.Determine(req)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(response)
}

// GetAccountRequests handles GET /determinations
func (h *DeterminationHandler) GetAccountRequests(w http.ResponseWriter, r *http.Request) {

	if err := utils.Authn(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	limit := 20
	offset := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	service := provider.NewDeterminationProvider().GetDeterminationService()
	summaries, err := service.GetAccountRequests(limit, offset)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(summaries)
}

// GetAccountRequest handles GET /determinations/{id}
func (h *DeterminationHandler) GetAccountRequest(w http.ResponseWriter, r *http.Request) {

	if err := utils.Authn(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	requestId := extractLastPathSegment(r.URL.Path)
	if requestId == "" {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: "Request id is required to fetch the account request",
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	service := provider.NewDeterminationProvider().GetDeterminationService()
	detail, err := service.GetAccountRequest(requestId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(detail)
}

func extractLastPathSegment(path string) string {

	trimmed := strings.TrimSuffix(path, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return ""
	}
	return trimmed[idx+1:]
}
