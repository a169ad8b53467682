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
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/identity-corporate-onboarding-service/internal/rules/model"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/constants"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/errors"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/log"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	os.Exit(m.Run())
}

func testRule(t *testing.T) model.Rule {
	t.Helper()
	var cond model.Condition
	require.NoError(t, json.Unmarshal([]byte(`{"field":"risk_flags.pep_sanction","is_true":true}`), &cond))
	return model.Rule{
		RuleName:     "pep-escalation",
		Priority:     20,
		Enabled:      true,
		Conditions:   cond,
		OutputStatus: constants.StatusEscalationRequired,
	}
}

func requireRuleValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	clientErr, ok := err.(*errors.ClientError)
	require.True(t, ok, "expected a ClientError")
	assert.Equal(t, http.StatusBadRequest, clientErr.StatusCode)
}

// ---------------------------------------------------------------------------
// AddRule – early-return validation (no DB required)
// ---------------------------------------------------------------------------

func TestAddRule_MissingName_Rejected(t *testing.T) {
	svc := &RuleService{}
	rule := testRule(t)
	rule.RuleName = ""
	_, err := svc.AddRule(rule)
	requireRuleValidationError(t, err)
}

func TestAddRule_NegativePriority_Rejected(t *testing.T) {
	svc := &RuleService{}
	rule := testRule(t)
	rule.Priority = -5
	_, err := svc.AddRule(rule)
	requireRuleValidationError(t, err)
}

func TestAddRule_UnknownOutputStatus_Rejected(t *testing.T) {
	svc := &RuleService{}
	rule := testRule(t)
	rule.OutputStatus = "ON_HOLD"
	_, err := svc.AddRule(rule)
	requireRuleValidationError(t, err)
}

func TestAddRule_EmptyConditions_Rejected(t *testing.T) {
	svc := &RuleService{}
	rule := testRule(t)
	rule.Conditions = model.Condition{}
	_, err := svc.AddRule(rule)
	requireRuleValidationError(t, err)
}

func TestAddRule_LeafWithoutField_Rejected(t *testing.T) {
	svc := &RuleService{}
	rule := testRule(t)
	rule.Conditions = model.Condition{Operator: "eq", Value: "x"}
	_, err := svc.AddRule(rule)
	requireRuleValidationError(t, err)
}

// ---------------------------------------------------------------------------
// UpdateRule – id guard (no DB required)
// ---------------------------------------------------------------------------

func TestUpdateRule_MissingId_Rejected(t *testing.T) {
	svc := &RuleService{}
	name := "renamed"
	_, err := svc.UpdateRule("", model.RuleUpdateRequest{RuleName: &name})
	requireRuleValidationError(t, err)
}

// ---------------------------------------------------------------------------
// Condition schema validation
// ---------------------------------------------------------------------------

func TestValidateConditionDocument_AcceptsWellFormedTree(t *testing.T) {
	doc := `{"all":[
		{"field":"customer_type","in":["FOREIGN_CORP","FOREIGN_ORG"]},
		{"any":[
			{"field":"is_new_corp","is_true":true},
			{"not":{"field":"business_status","eq":"ACTIVE"}}
		]}
	]}`
	assert.NoError(t, ValidateConditionDocument([]byte(doc)))
}

func TestValidateConditionDocument_RejectsUnknownOperator(t *testing.T) {
	err := ValidateConditionDocument([]byte(`{"field":"a","gte":10}`))
	assert.Error(t, err)
}

func TestValidateConditionDocument_RejectsLeafWithoutField(t *testing.T) {
	err := ValidateConditionDocument([]byte(`{"eq":"x"}`))
	assert.Error(t, err)
}

func TestValidateConditionDocument_RejectsNonArrayIn(t *testing.T) {
	err := ValidateConditionDocument([]byte(`{"field":"a","in":"ACTIVE"}`))
	assert.Error(t, err)
}

func TestValidateConditionDocument_RejectsMultipleOperators(t *testing.T) {
	err := ValidateConditionDocument([]byte(`{"field":"a","eq":1,"neq":2}`))
	assert.Error(t, err)
}

func TestValidateConditionDocument_RejectsCombinatorMixedWithLeaf(t *testing.T) {
	err := ValidateConditionDocument([]byte(`{"all":[],"field":"a","eq":1}`))
	assert.Error(t, err)
}

func TestValidateConditionDocument_RejectsNonBooleanExists(t *testing.T) {
	err := ValidateConditionDocument([]byte(`{"field":"a","exists":"yes"}`))
	assert.Error(t, err)
}
