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

package integration

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/identity-corporate-onboarding-service/internal/rules/model"
	"github.com/wso2/identity-corporate-onboarding-service/internal/rules/service"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/constants"
)

func newTestRule(t *testing.T, name string, priority int, conditionDoc string) model.Rule {
	t.Helper()
	var cond model.Condition
	require.NoError(t, json.Unmarshal([]byte(conditionDoc), &cond))
	return model.Rule{
		RuleName:            name,
		Priority:            priority,
		Enabled:             true,
		Conditions:          cond,
		RequiredDocuments:   []string{"DOC_AML_REVIEW_NOTE"},
		OptionalDocuments:   []string{"DOC_FINANCIAL_STATEMENT"},
		OutputStatus:        constants.StatusNeedsSupplement,
		OutputCaseTags:      []string{constants.TagHighRisk},
		ExplanationTemplate: "integration test rule",
	}
}

func TestRuleLifecycle(t *testing.T) {
	svc := service.GetRuleService()

	created, err := svc.AddRule(newTestRule(t, "lifecycle-rule", 42,
		`{"field":"risk_flags.pep_sanction","is_true":true}`))
	require.NoError(t, err)
	require.NotEmpty(t, created.RuleId)
	assert.NotZero(t, created.CreatedAt)

	// Fetch by id round-trips the condition tree and arrays.
	fetched, err := svc.GetRule(created.RuleId)
	require.NoError(t, err)
	assert.Equal(t, "lifecycle-rule", fetched.RuleName)
	assert.Equal(t, 42, fetched.Priority)
	assert.Equal(t, "risk_flags.pep_sanction", fetched.Conditions.Field)
	assert.Equal(t, "is_true", fetched.Conditions.Operator)
	assert.Equal(t, []string{"DOC_AML_REVIEW_NOTE"}, fetched.RequiredDocuments)
	assert.Equal(t, []string{constants.TagHighRisk}, fetched.OutputCaseTags)

	// Patch priority and enabled state.
	newPriority := 7
	disabled := false
	updated, err := svc.UpdateRule(created.RuleId, model.RuleUpdateRequest{
		Priority: &newPriority,
		Enabled:  &disabled,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Priority)
	assert.False(t, updated.Enabled)
	assert.Equal(t, "lifecycle-rule", updated.RuleName)

	// Disabled rules are excluded from the engine's view.
	enabledRules, err := svc.GetEnabledRules()
	require.NoError(t, err)
	for _, rule := range enabledRules {
		assert.NotEqual(t, created.RuleId, rule.RuleId)
	}

	require.NoError(t, svc.DeleteRule(created.RuleId))
	_, err = svc.GetRule(created.RuleId)
	assert.Error(t, err)
}

func TestGetRules_OrderedByPriority(t *testing.T) {
	svc := service.GetRuleService()

	high, err := svc.AddRule(newTestRule(t, "order-high", 300,
		`{"field":"business_status","eq":"ACTIVE"}`))
	require.NoError(t, err)
	low, err := svc.AddRule(newTestRule(t, "order-low", 100,
		`{"field":"business_status","eq":"ACTIVE"}`))
	require.NoError(t, err)
	defer func() {
		_ = svc.DeleteRule(high.RuleId)
		_ = svc.DeleteRule(low.RuleId)
	}()

	rules, err := svc.GetRules()
	require.NoError(t, err)

	lowIdx, highIdx := -1, -1
	for i, rule := range rules {
		switch rule.RuleId {
		case low.RuleId:
			lowIdx = i
		case high.RuleId:
			highIdx = i
		}
	}
	require.NotEqual(t, -1, lowIdx)
	require.NotEqual(t, -1, highIdx)
	assert.Less(t, lowIdx, highIdx)
}

func TestUpdateRule_InvalidConditionRejected(t *testing.T) {
	svc := service.GetRuleService()

	created, err := svc.AddRule(newTestRule(t, "patch-validation-rule", 50,
		`{"field":"is_new_corp","is_true":true}`))
	require.NoError(t, err)
	defer func() { _ = svc.DeleteRule(created.RuleId) }()

	broken := model.Condition{Operator: "eq", Value: "x"}
	_, err = svc.UpdateRule(created.RuleId, model.RuleUpdateRequest{Conditions: &broken})
	require.Error(t, err)

	// The stored rule is untouched.
	fetched, err := svc.GetRule(created.RuleId)
	require.NoError(t, err)
	assert.Equal(t, "is_new_corp", fetched.Conditions.Field)
}
