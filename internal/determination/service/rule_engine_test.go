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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	rmodel "github.com/wso2/identity-corporate-onboarding-service/internal/rules/model"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/constants"
)

func matchAllRule(t *testing.T, name string, priority int) rmodel.Rule {
	t.Helper()
	return rmodel.Rule{
		RuleId:     name,
		RuleName:   name,
		Priority:   priority,
		Enabled:    true,
		Conditions: mustCondition(t, `{"field":"business_status","exists":true}`),
	}
}

// ---------------------------------------------------------------------------
// EvaluateRules
// ---------------------------------------------------------------------------

func TestEvaluateRules_PriorityOrder(t *testing.T) {
	rules := []rmodel.Rule{
		matchAllRule(t, "third", 30),
		matchAllRule(t, "first", 10),
		matchAllRule(t, "second", 20),
	}
	matches := EvaluateRules(rules, sampleFacts())
	require.Len(t, matches, 3)
	assert.Equal(t, "first", matches[0].RuleName)
	assert.Equal(t, "second", matches[1].RuleName)
	assert.Equal(t, "third", matches[2].RuleName)
}

func TestEvaluateRules_StableOrderForEqualPriority(t *testing.T) {
	rules := []rmodel.Rule{
		matchAllRule(t, "alpha", 10),
		matchAllRule(t, "beta", 10),
		matchAllRule(t, "gamma", 10),
	}
	matches := EvaluateRules(rules, sampleFacts())
	require.Len(t, matches, 3)
	assert.Equal(t, "alpha", matches[0].RuleName)
	assert.Equal(t, "beta", matches[1].RuleName)
	assert.Equal(t, "gamma", matches[2].RuleName)
}

func TestEvaluateRules_SkipsDisabledAndEmpty(t *testing.T) {
	disabled := matchAllRule(t, "disabled", 10)
	disabled.Enabled = false
	empty := rmodel.Rule{RuleId: "empty", RuleName: "empty", Priority: 20, Enabled: true}

	matches := EvaluateRules([]rmodel.Rule{disabled, empty, matchAllRule(t, "live", 30)}, sampleFacts())
	require.Len(t, matches, 1)
	assert.Equal(t, "live", matches[0].RuleName)
}

func TestEvaluateRules_NonMatchingConditionExcluded(t *testing.T) {
	rule := matchAllRule(t, "foreign-only", 10)
	rule.Conditions = mustCondition(t, `{"field":"customer_type","eq":"FOREIGN_CORP"}`)

	matches := EvaluateRules([]rmodel.Rule{rule}, sampleFacts())
	assert.Empty(t, matches)
}

func TestEvaluateRules_DoesNotMutateInput(t *testing.T) {
	rules := []rmodel.Rule{
		matchAllRule(t, "second", 20),
		matchAllRule(t, "first", 10),
	}
	_ = EvaluateRules(rules, sampleFacts())
	assert.Equal(t, "second", rules[0].RuleName)
}

// ---------------------------------------------------------------------------
// CompileDetermination
// ---------------------------------------------------------------------------

func TestCompileDetermination_NoMatches(t *testing.T) {
	result := CompileDetermination("C01", []string{}, nil)
	assert.Equal(t, "C01", result.CaseCode)
	assert.Equal(t, constants.StatusReadyForReview, result.Status)
	assert.Empty(t, result.RequiredDocuments)
	assert.False(t, result.Blocked)
	assert.False(t, result.Escalate)
}

func TestCompileDetermination_MergesDocumentsAndExplanations(t *testing.T) {
	matches := []RuleMatch{
		{
			RuleName:          "rule-a",
			RequiredDocuments: []string{"DOC_A", "DOC_B"},
			OptionalDocuments: []string{"DOC_C"},
			Explanation:       "first explanation",
		},
		{
			RuleName:          "rule-b",
			RequiredDocuments: []string{"DOC_B", "DOC_D"},
			OptionalDocuments: []string{"DOC_C", "DOC_E"},
			Explanation:       "second explanation",
		},
	}
	result := CompileDetermination("C01", []string{}, matches)
	assert.Equal(t, []string{"DOC_A", "DOC_B", "DOC_D"}, result.RequiredDocuments)
	assert.Equal(t, []string{"DOC_C", "DOC_E"}, result.OptionalDocuments)
	assert.Equal(t, []string{"first explanation", "second explanation"}, result.Explanations)
	assert.Equal(t, []string{"rule-a", "rule-b"}, result.MatchedRules)
}

func TestCompileDetermination_OptionalExcludesRequired(t *testing.T) {
	matches := []RuleMatch{
		{RuleName: "a", RequiredDocuments: []string{"DOC_X"}},
		{RuleName: "b", OptionalDocuments: []string{"DOC_X", "DOC_Y"}},
	}
	result := CompileDetermination("C01", []string{}, matches)
	assert.Equal(t, []string{"DOC_X"}, result.RequiredDocuments)
	assert.Equal(t, []string{"DOC_Y"}, result.OptionalDocuments)
}

func TestCompileDetermination_StatusOnlyEscalates(t *testing.T) {
	matches := []RuleMatch{
		{RuleName: "a", OutputStatus: constants.StatusEscalationRequired},
		{RuleName: "b", OutputStatus: constants.StatusNeedsSupplement},
	}
	result := CompileDetermination("C01", []string{}, matches)
	assert.Equal(t, constants.StatusEscalationRequired, result.Status)
}

func TestCompileDetermination_BlockedWinsOverEverything(t *testing.T) {
	matches := []RuleMatch{
		{RuleName: "a", OutputStatus: constants.StatusEscalationRequired, Escalate: true},
		{RuleName: "b", Blocked: true},
	}
	result := CompileDetermination("C01", []string{}, matches)
	assert.Equal(t, constants.StatusBlocked, result.Status)
	assert.True(t, result.Blocked)
	assert.True(t, result.Escalate)
}

func TestCompileDetermination_EscalateRaisesStatusFloor(t *testing.T) {
	matches := []RuleMatch{
		{RuleName: "a", OutputStatus: constants.StatusNeedsSupplement, Escalate: true},
	}
	result := CompileDetermination("C01", []string{}, matches)
	assert.Equal(t, constants.StatusEscalationRequired, result.Status)
}

func TestCompileDetermination_TagUnion(t *testing.T) {
	matches := []RuleMatch{
		{RuleName: "a", OutputCaseTags: []string{constants.TagHighRisk, "CUSTOM_TAG"}},
		{RuleName: "b", OutputCaseTags: []string{constants.TagHighRisk}},
	}
	result := CompileDetermination("C12", []string{constants.TagHighRisk}, matches)
	assert.Equal(t, []string{constants.TagHighRisk, "CUSTOM_TAG"}, result.CaseTags)
}
