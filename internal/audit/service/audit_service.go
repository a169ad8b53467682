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

package service

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/gowebpki/jcs"

	model "github.com/wso2/identity-corporate-onboarding-service/internal/audit/model"
	"github.com/wso2/identity-corporate-onboarding-service/internal/audit/store"
	errors2 "github.com/wso2/identity-corporate-onboarding-service/internal/system/errors"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/log"
)

// AuditServiceInterface defines the audit trail service.
type AuditServiceInterface interface {
	RecordEvent(eventType, targetType, targetId string, oldValue, newValue interface{}, reason string) error
	GetAuditEvents(filter model.AuditEventFilter) ([]model.AuditEvent, error)
}

// AuditService is the default implementation.
type AuditService struct{}

// GetAuditService returns a new instance.
func GetAuditService() AuditServiceInterface {
	return &AuditService{}
}

// RecordEvent appends one entry to the audit trail. Old and new values are
// serialized to RFC 8785 canonical JSON before storage.
func (as *AuditService) RecordEvent(eventType, targetType, targetId string,
	oldValue, newValue interface{}, reason string) error {

	oldJSON, err := canonicalJSON(oldValue)
	if err != nil {
		return err
	}
	newJSON, err := canonicalJSON(newValue)
	if err != nil {
		return err
	}

	event := model.AuditEvent{
		EventId:    uuid.New().String(),
		EventType:  eventType,
		TargetType: targetType,
		TargetId:   targetId,
		OldValue:   oldJSON,
		NewValue:   newJSON,
		Reason:     reason,
		RecordedAt: time.Now().Unix(),
	}
	return store.AddAuditEvent(event)
}

// GetAuditEvents lists audit trail entries matching the filter.
func (as *AuditService) GetAuditEvents(filter model.AuditEventFilter) ([]model.AuditEvent, error) {

	events, err := store.GetAuditEvents(filter)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return []model.AuditEvent{}, nil
	}
	return events, nil
}

// RecordEventBestEffort records an event and only logs on failure. Used on
// paths where the primary operation already succeeded and must not be
// rolled back because the trail write failed.
func RecordEventBestEffort(eventType, targetType, targetId string,
	oldValue, newValue interface{}, reason string) {

	if err := GetAuditService().RecordEvent(eventType, targetType, targetId, oldValue, newValue, reason); err != nil {
		log.GetLogger().Error("Failed to record audit event", log.Error(err),
			log.String("event_type", eventType), log.String("target_id", targetId))
	}
}

func canonicalJSON(value interface{}) (string, error) {

	if value == nil {
		return "", nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return "", errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.MARSHAL_JSON.Code,
			Message:     errors2.MARSHAL_JSON.Message,
			Description: "Failed to marshal audit payload.",
		}, err)
	}
	canonical, err := jcs.Transform(raw)
	if err != nil {
		return "", errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.MARSHAL_JSON.Code,
			Message:     errors2.MARSHAL_JSON.Message,
			Description: "Failed to canonicalize audit payload.",
		}, err)
	}
	return string(canonical), nil
}
