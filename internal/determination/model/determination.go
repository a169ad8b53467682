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

package model

// RiskFlags carries the boolean risk signals supplied with a
// determination request. All flags default to false.
type RiskFlags struct {
	HighRiskCountry       bool `json:"high_risk_country"`
	PepSanction           bool `json:"pep_sanction"`
	SpecialReview         bool `json:"special_review"`
	DocumentMismatch      bool `json:"document_mismatch"`
	ProxyAuthorityUnclear bool `json:"proxy_authority_unclear"`
	DormantSuspicious     bool `json:"dormant_suspicious"`
}

// DeterminationRequest is the input a staff member submits for a document
// determination.
type DeterminationRequest struct {
	BusinessRegNo        string    `json:"business_reg_no" binding:"required"`
	CorpName             string    `json:"corp_name" binding:"required"`
	CustomerType         string    `json:"customer_type" binding:"required"`
	DomesticFlag         bool      `json:"domestic_flag"`
	BusinessStatus       string    `json:"business_status"`
	AccountType          string    `json:"account_type"`
	ApplicantType        string    `json:"applicant_type"`
	UboConfirmable       *bool     `json:"ubo_confirmable"`
	OwnershipSimple      *bool     `json:"ownership_simple"`
	MultiLayerOwnership  bool      `json:"multi_layer_ownership"`
	UltimateOwnerUnknown bool      `json:"ultimate_owner_unknown"`
	AccountPurpose       string    `json:"account_purpose,omitempty"`
	FundSource           string    `json:"fund_source,omitempty"`
	RiskFlags            RiskFlags `json:"risk_flags"`
	IsNewCorp            bool      `json:"is_new_corp"`
}

// FactSet flattens the request into the map the classifier and rule
// engine evaluate against. Omitted ownership attributes default to the
// benign value so a minimal request classifies as an ordinary case.
func (r DeterminationRequest) FactSet() FactSet {
	return FactSet{
		"customer_type":          r.CustomerType,
		"account_type":           r.AccountType,
		"applicant_type":         r.ApplicantType,
		"business_status":        r.BusinessStatus,
		"domestic_flag":          r.DomesticFlag,
		"ubo_confirmable":        boolOrDefault(r.UboConfirmable, true),
		"ownership_simple":       boolOrDefault(r.OwnershipSimple, true),
		"multi_layer_ownership":  r.MultiLayerOwnership,
		"ultimate_owner_unknown": r.UltimateOwnerUnknown,
		"is_new_corp":            r.IsNewCorp,
		"risk_flags": map[string]interface{}{
			"high_risk_country":       r.RiskFlags.HighRiskCountry,
			"pep_sanction":            r.RiskFlags.PepSanction,
			"special_review":          r.RiskFlags.SpecialReview,
			"document_mismatch":       r.RiskFlags.DocumentMismatch,
			"proxy_authority_unclear": r.RiskFlags.ProxyAuthorityUnclear,
			"dormant_suspicious":      r.RiskFlags.DormantSuspicious,
		},
	}
}

func boolOrDefault(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

// DocumentGroup is an alternative-satisfaction unit: submitting at least
// MinRequired of the listed documents satisfies the group.
type DocumentGroup struct {
	GroupCode   string   `json:"group_code" bson:"group_code"`
	Documents   []string `json:"documents" bson:"documents"`
	MinRequired int      `json:"min_required" bson:"min_required"`
	Description string   `json:"description" bson:"description"`
}

// DeterminationResult is the single output of the determination pipeline,
// safe to serialize and persist verbatim.
type DeterminationResult struct {
	CaseCode          string          `json:"case_code" bson:"case_code"`
	CaseTags          []string        `json:"case_tags" bson:"case_tags"`
	Status            string          `json:"status" bson:"status"`
	RequiredDocuments []string        `json:"required_documents" bson:"required_documents"`
	OptionalDocuments []string        `json:"optional_documents" bson:"optional_documents"`
	DocumentGroups    []DocumentGroup `json:"document_groups" bson:"document_groups"`
	Blocked           bool            `json:"blocked" bson:"blocked"`
	Escalate          bool            `json:"escalate" bson:"escalate"`
	Explanations      []string        `json:"explanations" bson:"explanations"`
	MatchedRules      []string        `json:"matched_rules" bson:"matched_rules"`
}

// DeterminationResponse is the API shape of a fresh determination: the
// result plus the id the outcome was stored under.
type DeterminationResponse struct {
	RequestId string `json:"request_id"`
	DeterminationResult
}

// AccountRequestSummary is one row of the determination history listing.
type AccountRequestSummary struct {
	RequestId     string `json:"request_id"`
	BusinessRegNo string `json:"business_reg_no"`
	CorpName      string `json:"corp_name"`
	CaseCode      string `json:"case_code"`
	Status        string `json:"status"`
	CreatedAt     int64  `json:"created_at"`
}

// AccountRequestDetail is the stored record of one determination.
type AccountRequestDetail struct {
	RequestId      string               `json:"request_id"`
	BusinessRegNo  string               `json:"business_reg_no"`
	CorpName       string               `json:"corp_name"`
	CustomerType   string               `json:"customer_type"`
	AccountType    string               `json:"account_type"`
	ApplicantType  string               `json:"applicant_type"`
	CaseCode       string               `json:"case_code"`
	CaseTags       []string             `json:"case_tags"`
	RiskFlags      RiskFlags            `json:"risk_flags"`
	AccountPurpose string               `json:"account_purpose,omitempty"`
	FundSource     string               `json:"fund_source,omitempty"`
	Status         string               `json:"status"`
	Result         *DeterminationResult `json:"determination_result,omitempty"`
	CreatedAt      int64                `json:"created_at"`
}
