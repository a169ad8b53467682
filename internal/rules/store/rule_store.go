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
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lib/pq"

	model "github.com/wso2/identity-corporate-onboarding-service/internal/rules/model"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/database/provider"
	errors2 "github.com/wso2/identity-corporate-onboarding-service/internal/system/errors"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/log"
)

const ruleColumns = `rule_id, rule_name, priority, enabled, conditions, required_documents,
	optional_documents, blocked_if_missing, escalate_if_true, output_status, output_case_tags,
	explanation_template, created_at, updated_at`

// AddRule inserts a new decision rule.
func AddRule(rule model.Rule) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for inserting rule: %s", rule.RuleName)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_RULE.Code,
			Message:     errors2.ADD_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	conditionsJSON, err := json.Marshal(rule.Conditions)
	if err != nil {
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.MARSHAL_JSON.Code,
			Message:     errors2.MARSHAL_JSON.Message,
			Description: "Failed to marshal rule conditions.",
		}, err)
	}

	query := `INSERT INTO rules (` + ruleColumns + `)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	tx, err := dbClient.BeginTx()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to begin transaction for inserting rule: %s", rule.RuleName)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_RULE.Code,
			Message:     errors2.ADD_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	_, err = tx.Exec(query, rule.RuleId, rule.RuleName, rule.Priority, rule.Enabled, string(conditionsJSON),
		pq.Array(rule.RequiredDocuments), pq.Array(rule.OptionalDocuments), rule.BlockedIfMissing,
		rule.EscalateIfTrue, rule.OutputStatus, pq.Array(rule.OutputCaseTags), rule.ExplanationTemplate,
		rule.CreatedAt, rule.UpdatedAt)
	if err != nil {
		if errRollback := tx.Rollback(); errRollback != nil {
			errorMsg := fmt.Sprintf("Failed to rollback inserting rule: %s", rule.RuleName)
			logger.Debug(errorMsg, log.Error(errRollback))
			return errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.ADD_RULE.Code,
				Message:     errors2.ADD_RULE.Message,
				Description: errorMsg,
			}, errRollback)
		}
		errorMsg := fmt.Sprintf("Failed to execute query for inserting rule: %s", rule.RuleName)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_RULE.Code,
			Message:     errors2.ADD_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Successfully inserted rule: %s", rule.RuleName))
	return tx.Commit()
}

// GetRules retrieves every configured rule ordered by priority.
func GetRules() ([]model.Rule, error) {

	return queryRules(`SELECT ` + ruleColumns + ` FROM rules ORDER BY priority ASC, rule_name ASC`)
}

// GetEnabledRules retrieves only the rules the engine should evaluate.
func GetEnabledRules() ([]model.Rule, error) {

	return queryRules(`SELECT ` + ruleColumns + ` FROM rules WHERE enabled = TRUE
		ORDER BY priority ASC, rule_name ASC`)
}

func queryRules(query string, args ...interface{}) ([]model.Rule, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get db client for fetching rules."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_RULES.Code,
			Message:     errors2.FETCH_RULES.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	results, err := dbClient.ExecuteQuery(query, args...)
	if err != nil {
		errorMsg := "Failed to execute query for fetching rules."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_RULES.Code,
			Message:     errors2.FETCH_RULES.Message,
			Description: errorMsg,
		}, err)
	}

	rules := make([]model.Rule, 0, len(results))
	for _, row := range results {
		rule, err := scanRule(row)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// GetRuleByID retrieves a rule by its id.
func GetRuleByID(ruleId string) (*model.Rule, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for fetching rule: %s", ruleId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_RULES.Code,
			Message:     errors2.FETCH_RULES.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `SELECT ` + ruleColumns + ` FROM rules WHERE rule_id = $1`
	results, err := dbClient.ExecuteQuery(query, ruleId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to execute query for fetching rule: %s", ruleId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_RULES.Code,
			Message:     errors2.FETCH_RULES.Message,
			Description: errorMsg,
		}, err)
	}
	if len(results) == 0 {
		logger.Debug(fmt.Sprintf("No rule found for id: %s", ruleId))
		return nil, nil
	}
	rule, err := scanRule(results[0])
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// UpdateRule replaces the stored rule row for rule.RuleId.
func UpdateRule(rule model.Rule) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for updating rule: %s", rule.RuleId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_RULE.Code,
			Message:     errors2.UPDATE_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	conditionsJSON, err := json.Marshal(rule.Conditions)
	if err != nil {
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.MARSHAL_JSON.Code,
			Message:     errors2.MARSHAL_JSON.Message,
			Description: "Failed to marshal rule conditions.",
		}, err)
	}

	query := `UPDATE rules SET rule_name = $2, priority = $3, enabled = $4, conditions = $5,
				required_documents = $6, optional_documents = $7, blocked_if_missing = $8,
				escalate_if_true = $9, output_status = $10, output_case_tags = $11,
				explanation_template = $12, updated_at = $13 WHERE rule_id = $1`
	tx, err := dbClient.BeginTx()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to begin transaction for updating rule: %s", rule.RuleId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_RULE.Code,
			Message:     errors2.UPDATE_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	_, err = tx.Exec(query, rule.RuleId, rule.RuleName, rule.Priority, rule.Enabled, string(conditionsJSON),
		pq.Array(rule.RequiredDocuments), pq.Array(rule.OptionalDocuments), rule.BlockedIfMissing,
		rule.EscalateIfTrue, rule.OutputStatus, pq.Array(rule.OutputCaseTags), rule.ExplanationTemplate,
		rule.UpdatedAt)
	if err != nil {
		if errRollback := tx.Rollback(); errRollback != nil {
			errorMsg := fmt.Sprintf("Failed to rollback updating rule: %s", rule.RuleId)
			logger.Debug(errorMsg, log.Error(errRollback))
			return errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.UPDATE_RULE.Code,
				Message:     errors2.UPDATE_RULE.Message,
				Description: errorMsg,
			}, errRollback)
		}
		errorMsg := fmt.Sprintf("Failed to execute query for updating rule: %s", rule.RuleId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_RULE.Code,
			Message:     errors2.UPDATE_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Successfully updated rule: %s", rule.RuleId))
	return tx.Commit()
}

// DeleteRule removes a rule permanently.
func DeleteRule(ruleId string) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for deleting rule: %s", ruleId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_RULE.Code,
			Message:     errors2.DELETE_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	tx, err := dbClient.BeginTx()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to begin transaction for deleting rule: %s", ruleId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_RULE.Code,
			Message:     errors2.DELETE_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	_, err = tx.Exec(`DELETE FROM rules WHERE rule_id = $1`, ruleId)
	if err != nil {
		if errRollback := tx.Rollback(); errRollback != nil {
			errorMsg := fmt.Sprintf("Failed to rollback deleting rule: %s", ruleId)
			logger.Debug(errorMsg, log.Error(errRollback))
			return errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.DELETE_RULE.Code,
				Message:     errors2.DELETE_RULE.Message,
				Description: errorMsg,
			}, errRollback)
		}
		errorMsg := fmt.Sprintf("Failed to execute query for deleting rule: %s", ruleId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_RULE.Code,
			Message:     errors2.DELETE_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Successfully deleted rule: %s", ruleId))
	return tx.Commit()
}

func scanRule(row map[string]interface{}) (model.Rule, error) {

	rule := model.Rule{
		RuleId:              asString(row["rule_id"]),
		RuleName:            asString(row["rule_name"]),
		Priority:            int(asInt64(row["priority"])),
		Enabled:             asBool(row["enabled"]),
		RequiredDocuments:   parseStringArray(row["required_documents"]),
		OptionalDocuments:   parseStringArray(row["optional_documents"]),
		BlockedIfMissing:    asBool(row["blocked_if_missing"]),
		EscalateIfTrue:      asBool(row["escalate_if_true"]),
		OutputStatus:        asString(row["output_status"]),
		OutputCaseTags:      parseStringArray(row["output_case_tags"]),
		ExplanationTemplate: asString(row["explanation_template"]),
		CreatedAt:           asInt64(row["created_at"]),
		UpdatedAt:           asInt64(row["updated_at"]),
	}
	if raw := asString(row["conditions"]); raw != "" {
		if err := json.Unmarshal([]byte(raw), &rule.Conditions); err != nil {
			return model.Rule{}, errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.UNMARSHAL_JSON.Code,
				Message:     errors2.UNMARSHAL_JSON.Message,
				Description: fmt.Sprintf("Failed to unmarshal conditions of rule: %s", rule.RuleId),
			}, err)
		}
	}
	return rule, nil
}

func asString(raw interface{}) string {

	switch v := raw.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	}
	return ""
}

func asInt64(raw interface{}) int64 {

	switch v := raw.(type) {
	case int64:
		return v
	case int32:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}

func asBool(raw interface{}) bool {

	v, ok := raw.(bool)
	return ok && v
}

// parseStringArray converts a postgres text[] column value into a slice.
func parseStringArray(raw interface{}) []string {

	if raw == nil {
		return nil
	}

	var rawStr string
	switch v := raw.(type) {
	case []byte:
		rawStr = string(v)
	case string:
		rawStr = v
	default:
		return nil
	}

	rawStr = strings.Trim(rawStr, "{}")
	if rawStr == "" {
		return nil
	}

	items := strings.Split(rawStr, ",")
	var result []string
	for _, item := range items {
		clean := strings.TrimSpace(item)
		clean = strings.Trim(clean, `"`)
		if clean != "" {
			result = append(result, clean)
		}
	}
	return result
}
