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

package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	model "github.com/wso2/identity-corporate-onboarding-service/internal/audit/model"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/config"
	mongodb "github.com/wso2/identity-corporate-onboarding-service/internal/system/database/mongo"
	errors2 "github.com/wso2/identity-corporate-onboarding-service/internal/system/errors"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/log"
)

// AddAuditEvent appends one event to the audit trail collection.
func AddAuditEvent(event model.AuditEvent) error {

	logger := log.GetLogger()
	instance := mongodb.GetInstance()
	if instance == nil {
		errorMsg := "Audit store connection is not initialized."
		logger.Debug(errorMsg)
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_AUDIT_EVENT.Code,
			Message:     errors2.ADD_AUDIT_EVENT.Message,
			Description: errorMsg,
		}, nil)
	}
	collection := instance.Database.Collection(config.GetCOSRuntime().Config.AuditStore.Collection)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := collection.InsertOne(ctx, event); err != nil {
		errorMsg := "Failed to insert audit event."
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_AUDIT_EVENT.Code,
			Message:     errors2.ADD_AUDIT_EVENT.Message,
			Description: errorMsg,
		}, err)
	}
	return nil
}

// GetAuditEvents lists audit trail entries matching the filter, newest first.
func GetAuditEvents(filter model.AuditEventFilter) ([]model.AuditEvent, error) {

	logger := log.GetLogger()
	instance := mongodb.GetInstance()
	if instance == nil {
		errorMsg := "Audit store connection is not initialized."
		logger.Debug(errorMsg)
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_AUDIT_EVENTS.Code,
			Message:     errors2.FETCH_AUDIT_EVENTS.Message,
			Description: errorMsg,
		}, nil)
	}
	collection := instance.Database.Collection(config.GetCOSRuntime().Config.AuditStore.Collection)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.EventType != "" {
		query["event_type"] = filter.EventType
	}
	if filter.TargetType != "" {
		query["target_type"] = filter.TargetType
	}
	if filter.TargetId != "" {
		query["target_id"] = filter.TargetId
	}

	opts := options.Find().SetSort(bson.D{{Key: "recorded_at", Value: -1}})
	if filter.Skip > 0 {
		opts.SetSkip(filter.Skip)
	}
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cursor, err := collection.Find(ctx, query, opts)
	if err != nil {
		errorMsg := "Failed to query audit events."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_AUDIT_EVENTS.Code,
			Message:     errors2.FETCH_AUDIT_EVENTS.Message,
			Description: errorMsg,
		}, err)
	}
	defer cursor.Close(ctx)

	var events []model.AuditEvent
	if err := cursor.All(ctx, &events); err != nil {
		errorMsg := "Failed to decode audit events."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_AUDIT_EVENTS.Code,
			Message:     errors2.FETCH_AUDIT_EVENTS.Message,
			Description: errorMsg,
		}, err)
	}
	return events, nil
}
