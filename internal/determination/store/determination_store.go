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

	model "github.com/wso2/identity-corporate-onboarding-service/internal/determination/model"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/database/provider"
	errors2 "github.com/wso2/identity-corporate-onboarding-service/internal/system/errors"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/log"
)

// UpsertCustomer finds the customer by business registration number or
// inserts a new record, returning the customer id either way.
func UpsertCustomer(customerId, businessRegNo, corpName, customerType string, domesticFlag bool,
	businessStatus string, createdAt int64) (string, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for upserting customer: %s", businessRegNo)
		logger.Debug(errorMsg, log.Error(err))
		return "", errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPSERT_CUSTOMER.Code,
			Message:     errors2.UPSERT_CUSTOMER.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `SELECT customer_id FROM customers WHERE business_reg_no = $1`
	results, err := dbClient.ExecuteQuery(query, businessRegNo)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to execute query for fetching customer: %s", businessRegNo)
		logger.Debug(errorMsg, log.Error(err))
		return "", errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPSERT_CUSTOMER.Code,
			Message:     errors2.UPSERT_CUSTOMER.Message,
			Description: errorMsg,
		}, err)
	}
	if len(results) > 0 {
		return asString(results[0]["customer_id"]), nil
	}

	insert := `INSERT INTO customers (customer_id, business_reg_no, corp_name, customer_type, domestic_flag,
				business_status, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	tx, err := dbClient.BeginTx()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to begin transaction for inserting customer: %s", businessRegNo)
		logger.Debug(errorMsg, log.Error(err))
		return "", errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPSERT_CUSTOMER.Code,
			Message:     errors2.UPSERT_CUSTOMER.Message,
			Description: errorMsg,
		}, err)
	}
	_, err = tx.Exec(insert, customerId, businessRegNo, corpName, customerType, domesticFlag,
		businessStatus, createdAt)
	if err != nil {
		if errRollback := tx.Rollback(); errRollback != nil {
			errorMsg := fmt.Sprintf("Failed to rollback inserting customer: %s", businessRegNo)
			logger.Debug(errorMsg, log.Error(errRollback))
			return "", errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.UPSERT_CUSTOMER.Code,
				Message:     errors2.UPSERT_CUSTOMER.Message,
				Description: errorMsg,
			}, errRollback)
		}
		errorMsg := fmt.Sprintf("Failed to execute query for inserting customer: %s", businessRegNo)
		logger.Debug(errorMsg, log.Error(err))
		return "", errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPSERT_CUSTOMER.Code,
			Message:     errors2.UPSERT_CUSTOMER.Message,
			Description: errorMsg,
		}, err)
	}
	if err := tx.Commit(); err != nil {
		errorMsg := fmt.Sprintf("Failed to commit inserting customer: %s", businessRegNo)
		logger.Debug(errorMsg, log.Error(err))
		return "", errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPSERT_CUSTOMER.Code,
			Message:     errors2.UPSERT_CUSTOMER.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Successfully inserted customer: %s", businessRegNo))
	return customerId, nil
}

// AddAccountRequest persists one determination outcome against a customer.
func AddAccountRequest(detail model.AccountRequestDetail, customerId string) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for inserting account request: %s", detail.RequestId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.SAVE_DETERMINATION.Code,
			Message:     errors2.SAVE_DETERMINATION.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	riskFlagsJSON, err := json.Marshal(detail.RiskFlags)
	if err != nil {
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.MARSHAL_JSON.Code,
			Message:     errors2.MARSHAL_JSON.Message,
			Description: "Failed to marshal risk flags.",
		}, err)
	}
	resultJSON, err := json.Marshal(detail.Result)
	if err != nil {
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.MARSHAL_JSON.Code,
			Message:     errors2.MARSHAL_JSON.Message,
			Description: "Failed to marshal determination result.",
		}, err)
	}

	query := `INSERT INTO account_requests (request_id, customer_id, account_type, applicant_type, case_code,
				case_tags, account_purpose, fund_source, status, risk_flags, determination_result, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	tx, err := dbClient.BeginTx()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to begin transaction for inserting account request: %s", detail.RequestId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.SAVE_DETERMINATION.Code,
			Message:     errors2.SAVE_DETERMINATION.Message,
			Description: errorMsg,
		}, err)
	}
	_, err = tx.Exec(query, detail.RequestId, customerId, detail.AccountType, detail.ApplicantType,
		detail.CaseCode, pq.Array(detail.CaseTags), detail.AccountPurpose, detail.FundSource,
		detail.Status, string(riskFlagsJSON), string(resultJSON), detail.CreatedAt)
	if err != nil {
		if errRollback := tx.Rollback(); errRollback != nil {
			errorMsg := fmt.Sprintf("Failed to rollback inserting account request: %s", detail.RequestId)
			logger.Debug(errorMsg, log.Error(errRollback))
			return errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.SAVE_DETERMINATION.Code,
				Message:     errors2.SAVE_DETERMINATION.Message,
				Description: errorMsg,
			}, errRollback)
		}
		errorMsg := fmt.Sprintf("Failed to execute query for inserting account request: %s", detail.RequestId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.SAVE_DETERMINATION.Code,
			Message:     errors2.SAVE_DETERMINATION.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Successfully inserted account request: %s", detail.RequestId))
	return tx.Commit()
}

// GetAccountRequests lists stored determinations newest first.
func GetAccountRequests(limit, offset int) ([]model.AccountRequestSummary, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get db client for fetching account requests."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_DETERMINATIONS.Code,
			Message:     errors2.FETCH_DETERMINATIONS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `SELECT ar.request_id, c.business_reg_no, c.corp_name, ar.case_code, ar.status, ar.created_at
				FROM account_requests ar JOIN customers c ON ar.customer_id = c.customer_id
				ORDER BY ar.created_at DESC LIMIT $1 OFFSET $2`
	results, err := dbClient.ExecuteQuery(query, limit, offset)
	if err != nil {
		errorMsg := "Failed to execute query for fetching account requests."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_DETERMINATIONS.Code,
			Message:     errors2.FETCH_DETERMINATIONS.Message,
			Description: errorMsg,
		}, err)
	}

	summaries := make([]model.AccountRequestSummary, 0, len(results))
	for _, row := range results {
		summaries = append(summaries, model.AccountRequestSummary{
			RequestId:     asString(row["request_id"]),
			BusinessRegNo: asString(row["business_reg_no"]),
			CorpName:      asString(row["corp_name"]),
			CaseCode:      asString(row["case_code"]),
			Status:        asString(row["status"]),
			CreatedAt:     asInt64(row["created_at"]),
		})
	}
	return summaries, nil
}

// GetAccountRequestByID fetches a stored determination with its customer.
func GetAccountRequestByID(requestId string) (*model.AccountRequestDetail, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for fetching account request: %s", requestId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_DETERMINATIONS.Code,
			Message:     errors2.FETCH_DETERMINATIONS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `SELECT ar.request_id, c.business_reg_no, c.corp_name, c.customer_type, ar.account_type,
				ar.applicant_type, ar.case_code, ar.case_tags, ar.account_purpose, ar.fund_source, ar.status,
				ar.risk_flags, ar.determination_result, ar.created_at
				FROM account_requests ar JOIN customers c ON ar.customer_id = c.customer_id
				WHERE ar.request_id = $1`
	results, err := dbClient.ExecuteQuery(query, requestId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to execute query for fetching account request: %s", requestId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_DETERMINATIONS.Code,
			Message:     errors2.FETCH_DETERMINATIONS.Message,
			Description: errorMsg,
		}, err)
	}
	if len(results) == 0 {
		logger.Debug(fmt.Sprintf("No account request found for id: %s", requestId))
		return nil, nil
	}

	row := results[0]
	detail := model.AccountRequestDetail{
		RequestId:      asString(row["request_id"]),
		BusinessRegNo:  asString(row["business_reg_no"]),
		CorpName:       asString(row["corp_name"]),
		CustomerType:   asString(row["customer_type"]),
		AccountType:    asString(row["account_type"]),
		ApplicantType:  asString(row["applicant_type"]),
		CaseCode:       asString(row["case_code"]),
		CaseTags:       parseStringArray(row["case_tags"]),
		AccountPurpose: asString(row["account_purpose"]),
		FundSource:     asString(row["fund_source"]),
		Status:         asString(row["status"]),
		CreatedAt:      asInt64(row["created_at"]),
	}
	if raw := asString(row["risk_flags"]); raw != "" {
		if err := json.Unmarshal([]byte(raw), &detail.RiskFlags); err != nil {
			return nil, errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.UNMARSHAL_JSON.Code,
				Message:     errors2.UNMARSHAL_JSON.Message,
				Description: "Failed to unmarshal stored risk flags.",
			}, err)
		}
	}
	if raw := asString(row["determination_result"]); raw != "" {
		var result model.DeterminationResult
		if err := json.Unmarshal([]byte(raw), &result); err != nil {
			return nil, errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.UNMARSHAL_JSON.Code,
				Message:     errors2.UNMARSHAL_JSON.Message,
				Description: "Failed to unmarshal stored determination result.",
			}, err)
		}
		detail.Result = &result
	}
	return &detail, nil
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
