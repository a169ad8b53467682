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
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	auditmodel "github.com/wso2/identity-corporate-onboarding-service/internal/audit/model"
	auditservice "github.com/wso2/identity-corporate-onboarding-service/internal/audit/service"
	model "github.com/wso2/identity-corporate-onboarding-service/internal/rules/model"
	"github.com/wso2/identity-corporate-onboarding-service/internal/rules/store"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/constants"
	errors2 "github.com/wso2/identity-corporate-onboarding-service/internal/system/errors"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/log"
)

// RuleServiceInterface defines the decision rule service.
type RuleServiceInterface interface {
	GetRules() ([]model.Rule, error)
	GetEnabledRules() ([]model.Rule, error)
	GetRule(ruleId string) (*model.Rule, error)
	AddRule(rule model.Rule) (*model.Rule, error)
	UpdateRule(ruleId string, update model.RuleUpdateRequest) (*model.Rule, error)
	DeleteRule(ruleId string) error
}

// RuleService is the default implementation.
type RuleService struct{}

// GetRuleService returns a new instance.
func GetRuleService() RuleServiceInterface {
	return &RuleService{}
}

// GetRules retrieves all configured rules.
func (rs *RuleService) GetRules() ([]model.Rule, error) {

	rules, err := store.GetRules()
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return []model.Rule{}, nil
	}
	return rules, nil
}

// GetEnabledRules retrieves the rules the determination engine evaluates.
func (rs *RuleService) GetEnabledRules() ([]model.Rule, error) {

	rules, err := store.GetEnabledRules()
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return []model.Rule{}, nil
	}
	return rules, nil
}

// GetRule retrieves a rule by its id.
func (rs *RuleService) GetRule(ruleId string) (*model.Rule, error) {

	rule, err := store.GetRuleByID(ruleId)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.RULE_NOT_FOUND.Code,
			Message:     errors2.RULE_NOT_FOUND.Message,
			Description: errors2.RULE_NOT_FOUND.Description,
		}, http.StatusNotFound)
	}
	return rule, nil
}

// AddRule validates and stores a new rule.
func (rs *RuleService) AddRule(rule model.Rule) (*model.Rule, error) {

	if err := rs.validateRule(rule); err != nil {
		return nil, err
	}

	if rule.RuleId == "" {
		rule.RuleId = uuid.New().String()
	}
	now := time.Now().Unix()
	rule.CreatedAt = now
	rule.UpdatedAt = now

	if err := store.AddRule(rule); err != nil {
		return nil, err
	}
	log.GetLogger().Audit(log.AuditEvent{
		InitiatorType: log.InitiatorTypeAdmin,
		TargetID:      rule.RuleId,
		TargetType:    log.TargetTypeRule,
		ActionID:      log.ActionAddRule,
	})
	auditservice.RecordEventBestEffort(auditmodel.EventRuleAdded, "rule", rule.RuleId,
		nil, rule, "Decision rule created")
	return &rule, nil
}

// UpdateRule applies a partial update to an existing rule.
func (rs *RuleService) UpdateRule(ruleId string, update model.RuleUpdateRequest) (*model.Rule, error) {

	if ruleId == "" {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: "Rule id is required for update.",
		}, http.StatusBadRequest)
	}

	existing, err := rs.GetRule(ruleId)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if update.RuleName != nil {
		updated.RuleName = *update.RuleName
	}
	if update.Priority != nil {
		updated.Priority = *update.Priority
	}
	if update.Enabled != nil {
		updated.Enabled = *update.Enabled
	}
	if update.Conditions != nil {
		updated.Conditions = *update.Conditions
	}
	if update.RequiredDocuments != nil {
		updated.RequiredDocuments = *update.RequiredDocuments
	}
	if update.OptionalDocuments != nil {
		updated.OptionalDocuments = *update.OptionalDocuments
	}
	if update.BlockedIfMissing != nil {
		updated.BlockedIfMissing = *update.BlockedIfMissing
	}
	if update.EscalateIfTrue != nil {
		updated.EscalateIfTrue = *update.EscalateIfTrue
	}
	if update.OutputStatus != nil {
		updated.OutputStatus = *update.OutputStatus
	}
	if update.OutputCaseTags != nil {
		updated.OutputCaseTags = *update.OutputCaseTags
	}
	if update.ExplanationTemplate != nil {
		updated.ExplanationTemplate = *update.ExplanationTemplate
	}

	if err := rs.validateRule(updated); err != nil {
		return nil, err
	}
	updated.UpdatedAt = time.Now().Unix()

	if err := store.UpdateRule(updated); err != nil {
		return nil, err
	}
	log.GetLogger().Debug("Updated rule", log.String("rule_id", ruleId),
		log.Bool("enabled", updated.Enabled))
	log.GetLogger().Audit(log.AuditEvent{
		InitiatorType: log.InitiatorTypeAdmin,
		TargetID:      ruleId,
		TargetType:    log.TargetTypeRule,
		ActionID:      log.ActionUpdateRule,
	})
	auditservice.RecordEventBestEffort(auditmodel.EventRuleUpdated, "rule", ruleId,
		existing, updated, "Decision rule updated")
	return &updated, nil
}

// DeleteRule removes a rule permanently.
func (rs *RuleService) DeleteRule(ruleId string) error {

	existing, err := rs.GetRule(ruleId)
	if err != nil {
		return err
	}

	if err := store.DeleteRule(ruleId); err != nil {
		return err
	}
	log.GetLogger().Audit(log.AuditEvent{
		InitiatorType: log.InitiatorTypeAdmin,
		TargetID:      ruleId,
		TargetType:    log.TargetTypeRule,
		ActionID:      log.ActionDeleteRule,
	})
	auditservice.RecordEventBestEffort(auditmodel.EventRuleDeleted, "rule", ruleId,
		existing, nil, "Decision rule deleted")
	return nil
}

func (rs *RuleService) validateRule(rule model.Rule) error {

	if rule.RuleName == "" {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.RULE_VALIDATION.Code,
			Message:     errors2.RULE_VALIDATION.Message,
			Description: "rule_name is required.",
		}, http.StatusBadRequest)
	}
	if rule.Priority < 0 {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.RULE_VALIDATION.Code,
			Message:     errors2.RULE_VALIDATION.Message,
			Description: "priority must not be negative.",
		}, http.StatusBadRequest)
	}
	if rule.OutputStatus != "" && !constants.AllowedRequestStatuses[rule.OutputStatus] {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.RULE_VALIDATION.Code,
			Message:     errors2.RULE_VALIDATION.Message,
			Description: fmt.Sprintf("output_status %q is not a valid request status.", rule.OutputStatus),
		}, http.StatusBadRequest)
	}
	if rule.Conditions.IsEmpty() {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.CONDITION_VALIDATION.Code,
			Message:     errors2.CONDITION_VALIDATION.Message,
			Description: "conditions must not be empty; a rule with no conditions never matches.",
		}, http.StatusBadRequest)
	}

	conditionsJSON, err := json.Marshal(rule.Conditions)
	if err != nil {
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.MARSHAL_JSON.Code,
			Message:     errors2.MARSHAL_JSON.Message,
			Description: "Failed to marshal rule conditions for validation.",
		}, err)
	}
	if err := ValidateConditionDocument(conditionsJSON); err != nil {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.CONDITION_VALIDATION.Code,
			Message:     errors2.CONDITION_VALIDATION.Message,
			Description: err.Error(),
		}, http.StatusBadRequest)
	}
	if err := rule.Conditions.Validate(); err != nil {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.CONDITION_VALIDATION.Code,
			Message:     errors2.CONDITION_VALIDATION.Message,
			Description: err.Error(),
		}, http.StatusBadRequest)
	}
	return nil
}
