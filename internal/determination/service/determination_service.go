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
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	auditmodel "github.com/wso2/identity-corporate-onboarding-service/internal/audit/model"
	auditservice "github.com/wso2/identity-corporate-onboarding-service/internal/audit/service"
	model "github.com/wso2/identity-corporate-onboarding-service/internal/determination/model"
	"github.com/wso2/identity-corporate-onboarding-service/internal/determination/store"
	rulesprovider "github.com/wso2/identity-corporate-onboarding-service/internal/rules/provider"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/constants"
	errors2 "github.com/wso2/identity-corporate-onboarding-service/internal/system/errors"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/log"
)

// DeterminationServiceInterface defines the document determination service.
type DeterminationServiceInterface interface {
	Determine(req model.DeterminationRequest) (*model.DeterminationResponse, error)
	GetAccountRequests(limit, offset int) ([]model.AccountRequestSummary, error)
	GetAccountRequest(requestId string) (*model.AccountRequestDetail, error)
}

// DeterminationService is the default implementation.
type DeterminationService struct{}

// GetDeterminationService returns a new instance.
func GetDeterminationService() DeterminationServiceInterface {
	return &DeterminationService{}
}

// Determine runs the full determination pipeline: classify the case,
// evaluate the configured rules, resolve the static fallback package,
// merge both, then persist the outcome and record an audit event.
func (ds *DeterminationService) Determine(req model.DeterminationRequest) (*model.DeterminationResponse, error) {

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	facts := req.FactSet()
	caseCode, caseTags := ClassifyCase(facts)

	rules, err := rulesprovider.NewRuleProvider().GetRuleService().GetEnabledRules()
	if err != nil {
		return nil, err
	}
	matches := EvaluateRules(rules, facts)
	result := CompileDetermination(caseCode, caseTags, matches)

	pkg := ResolveDocuments(caseCode, caseTags, req.AccountType)
	result.RequiredDocuments = dedupe(append(result.RequiredDocuments, pkg.Required...))
	result.OptionalDocuments = dedupeExcluding(
		append(result.OptionalDocuments, pkg.Conditional...), result.RequiredDocuments)
	result.Explanations = dedupe(append(result.Explanations, pkg.Explanations...))
	result.DocumentGroups = pkg.Groups

	requestId, err := ds.persist(req, result)
	if err != nil {
		return nil, err
	}

	log.GetLogger().Audit(log.AuditEvent{
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      requestId,
		TargetType:    log.TargetTypeAccountRequest,
		ActionID:      log.ActionCreateDetermination,
	})
	auditservice.RecordEventBestEffort(auditmodel.EventCaseCreated, "account_request", requestId,
		nil, result, "Automatic determination created")

	return &model.DeterminationResponse{
		RequestId:           requestId,
		DeterminationResult: result,
	}, nil
}

// GetAccountRequests lists past determinations newest first.
func (ds *DeterminationService) GetAccountRequests(limit, offset int) ([]model.AccountRequestSummary, error) {

	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	summaries, err := store.GetAccountRequests(limit, offset)
	if err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		return []model.AccountRequestSummary{}, nil
	}
	return summaries, nil
}

// GetAccountRequest fetches one stored determination.
func (ds *DeterminationService) GetAccountRequest(requestId string) (*model.AccountRequestDetail, error) {

	detail, err := store.GetAccountRequestByID(requestId)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.ACCOUNT_REQUEST_NOT_FOUND.Code,
			Message:     errors2.ACCOUNT_REQUEST_NOT_FOUND.Message,
			Description: errors2.ACCOUNT_REQUEST_NOT_FOUND.Description,
		}, http.StatusNotFound)
	}
	return detail, nil
}

func (ds *DeterminationService) persist(req model.DeterminationRequest,
	result model.DeterminationResult) (string, error) {

	now := time.Now().Unix()
	customerId, err := store.UpsertCustomer(uuid.New().String(), req.BusinessRegNo, req.CorpName,
		req.CustomerType, req.DomesticFlag, req.BusinessStatus, now)
	if err != nil {
		return "", err
	}

	detail := model.AccountRequestDetail{
		RequestId:      uuid.New().String(),
		BusinessRegNo:  req.BusinessRegNo,
		CorpName:       req.CorpName,
		CustomerType:   req.CustomerType,
		AccountType:    req.AccountType,
		ApplicantType:  req.ApplicantType,
		CaseCode:       result.CaseCode,
		CaseTags:       result.CaseTags,
		RiskFlags:      req.RiskFlags,
		AccountPurpose: req.AccountPurpose,
		FundSource:     req.FundSource,
		Status:         result.Status,
		Result:         &result,
		CreatedAt:      now,
	}
	if err := store.AddAccountRequest(detail, customerId); err != nil {
		return "", err
	}
	return detail.RequestId, nil
}

func validateRequest(req model.DeterminationRequest) error {

	if req.BusinessRegNo == "" || req.CorpName == "" {
		return validationError("business_reg_no and corp_name are required.")
	}
	if req.CustomerType == "" {
		return validationError("customer_type is required.")
	}
	if !constants.AllowedCustomerTypes[req.CustomerType] {
		return validationError(fmt.Sprintf("customer_type %q is not supported.", req.CustomerType))
	}
	if req.AccountType != "" && !constants.AllowedAccountTypes[req.AccountType] {
		return validationError(fmt.Sprintf("account_type %q is not supported.", req.AccountType))
	}
	if req.ApplicantType != "" && !constants.AllowedApplicantTypes[req.ApplicantType] {
		return validationError(fmt.Sprintf("applicant_type %q is not supported.", req.ApplicantType))
	}
	if req.BusinessStatus != "" && !constants.AllowedBusinessStatuses[req.BusinessStatus] {
		return validationError(fmt.Sprintf("business_status %q is not supported.", req.BusinessStatus))
	}
	return nil
}

func validationError(description string) error {

	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.DETERMINATION_VALIDATION.Code,
		Message:     errors2.DETERMINATION_VALIDATION.Message,
		Description: description,
	}, http.StatusBadRequest)
}
