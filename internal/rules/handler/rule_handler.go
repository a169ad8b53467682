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
	"strings"

	ruleModel "github.com/wso2/identity-corporate-onboarding-service/internal/rules/model"
	"github.com/wso2/identity-corporate-onboarding-service/internal/rules/provider"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/errors"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/utils"
)

type RuleHandler struct{}

func NewRuleHandler() *RuleHandler {
	return &RuleHandler{}
}

// GetRules handles GET /rules
func (h *RuleHandler) GetRules(w http.ResponseWriter, r *http.Request) {

	if err := utils.Authn(r); err != nil {
		utils.HandleError(w, err)
		return
	}
	service := provider.NewRuleProvider().GetRuleService()
	rules, err := service.GetRules()
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rules)
}

// AddRule handles POST /rules
func (h *RuleHandler) AddRule(w http.ResponseWriter, r *http.Request) {

	if err := utils.Authn(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	var rule ruleModel.Rule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "decision rule"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	service := provider.NewRuleProvider().GetRuleService()
	created, err := service.AddRule(rule)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(created)
}

// GetRule handles GET /rules/{id}
func (h *RuleHandler) GetRule(w http.ResponseWriter, r *http.Request) {

	if err := utils.Authn(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	ruleId := extractLastPathSegment(r.URL.Path)
	if ruleId == "" {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: "Rule id is required to fetch the decision rule",
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	service := provider.NewRuleProvider().GetRuleService()
	rule, err := service.GetRule(ruleId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rule)
}

// UpdateRule handles PATCH /rules/{id}
func (h *RuleHandler) UpdateRule(w http.ResponseWriter, r *http.Request) {

	if err := utils.Authn(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	ruleId := extractLastPathSegment(r.URL.Path)
	if ruleId == "" {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: "Rule id is required to update the decision rule",
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	var update ruleModel.RuleUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "decision rule update"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	service := provider.NewRuleProvider().GetRuleService()
	updated, err := service.UpdateRule(ruleId, update)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(updated)
}

// DeleteRule handles DELETE /rules/{id}
func (h *RuleHandler) DeleteRule(w http.ResponseWriter, r *http.Request) {

	if err := utils.Authn(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	ruleId := extractLastPathSegment(r.URL.Path)
	if ruleId == "" {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: "Rule id is required to delete the decision rule",
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	service := provider.NewRuleProvider().GetRuleService()
	if err := service.DeleteRule(ruleId); err != nil {
		utils.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func extractLastPathSegment(path string) string {

	trimmed := strings.TrimSuffix(path, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return ""
	}
	return trimmed[idx+1:]
}
