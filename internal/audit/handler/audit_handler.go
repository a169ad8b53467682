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

	model "github.com/wso2/identity-corporate-onboarding-service/internal/audit/model"
	"github.com/wso2/identity-corporate-onboarding-service/internal/audit/provider"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/utils"
)

type AuditHandler struct{}

func NewAuditHandler() *AuditHandler {
	return &AuditHandler{}
}

// GetAuditEvents handles GET /audit-logs
func (h *AuditHandler) GetAuditEvents(w http.ResponseWriter, r *http.Request) {

	if err := utils.Authn(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	filter := model.AuditEventFilter{
		EventType:  r.URL.Query().Get("event_type"),
		TargetType: r.URL.Query().Get("target_type"),
		TargetId:   r.URL.Query().Get("target_id"),
		Limit:      20,
	}
	if raw := r.URL.Query().Get("skip"); raw != "" {
		if skip, err := strconv.ParseInt(raw, 10, 64); err == nil && skip >= 0 {
			filter.Skip = skip
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.ParseInt(raw, 10, 64); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}

	service := provider.NewAuditProvider().GetAuditService()
	events, err := service.GetAuditEvents(filter)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(events)
}
