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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmodel "github.com/wso2/identity-corporate-onboarding-service/internal/determination/model"
	rmodel "github.com/wso2/identity-corporate-onboarding-service/internal/rules/model"
)

func mustCondition(t *testing.T, doc string) rmodel.Condition {
	t.Helper()
	var cond rmodel.Condition
	require.NoError(t, json.Unmarshal([]byte(doc), &cond))
	return cond
}

func sampleFacts() dmodel.FactSet {
	return dmodel.FactSet{
		"customer_type":   "FOR_PROFIT_CORP_DOMESTIC",
		"applicant_type":  "REPRESENTATIVE_SELF",
		"business_status": "ACTIVE",
		"employee_count":  float64(12),
		"is_new_corp":     true,
		"risk_flags": map[string]interface{}{
			"pep_sanction":      true,
			"high_risk_country": false,
		},
	}
}

// ---------------------------------------------------------------------------
// Leaf operators
// ---------------------------------------------------------------------------

func TestEvaluateCondition_Eq(t *testing.T) {
	facts := sampleFacts()
	assert.True(t, EvaluateCondition(mustCondition(t, `{"field":"customer_type","eq":"FOR_PROFIT_CORP_DOMESTIC"}`), facts))
	assert.False(t, EvaluateCondition(mustCondition(t, `{"field":"customer_type","eq":"FOREIGN_CORP"}`), facts))
}

func TestEvaluateCondition_Neq(t *testing.T) {
	facts := sampleFacts()
	assert.True(t, EvaluateCondition(mustCondition(t, `{"field":"customer_type","neq":"FOREIGN_CORP"}`), facts))
	assert.False(t, EvaluateCondition(mustCondition(t, `{"field":"customer_type","neq":"FOR_PROFIT_CORP_DOMESTIC"}`), facts))
}

func TestEvaluateCondition_In(t *testing.T) {
	facts := sampleFacts()
	cond := mustCondition(t, `{"field":"business_status","in":["ACTIVE","SUSPENDED"]}`)
	assert.True(t, EvaluateCondition(cond, facts))

	cond = mustCondition(t, `{"field":"business_status","in":["SUSPENDED","CLOSED"]}`)
	assert.False(t, EvaluateCondition(cond, facts))
}

func TestEvaluateCondition_NotIn(t *testing.T) {
	facts := sampleFacts()
	cond := mustCondition(t, `{"field":"business_status","not_in":["SUSPENDED","CLOSED"]}`)
	assert.True(t, EvaluateCondition(cond, facts))
}

func TestEvaluateCondition_IsTrueAndIsFalse(t *testing.T) {
	facts := sampleFacts()
	assert.True(t, EvaluateCondition(mustCondition(t, `{"field":"is_new_corp","is_true":true}`), facts))
	assert.False(t, EvaluateCondition(mustCondition(t, `{"field":"is_new_corp","is_false":true}`), facts))

	// A missing field is not truthy, so is_false matches it.
	assert.False(t, EvaluateCondition(mustCondition(t, `{"field":"no_such_field","is_true":true}`), facts))
	assert.True(t, EvaluateCondition(mustCondition(t, `{"field":"no_such_field","is_false":true}`), facts))
}

func TestEvaluateCondition_Exists(t *testing.T) {
	facts := sampleFacts()
	assert.True(t, EvaluateCondition(mustCondition(t, `{"field":"customer_type","exists":true}`), facts))
	assert.False(t, EvaluateCondition(mustCondition(t, `{"field":"no_such_field","exists":true}`), facts))

	// exists:false matches only absent fields.
	assert.True(t, EvaluateCondition(mustCondition(t, `{"field":"no_such_field","exists":false}`), facts))
	assert.False(t, EvaluateCondition(mustCondition(t, `{"field":"customer_type","exists":false}`), facts))
}

func TestEvaluateCondition_NumericEquality(t *testing.T) {
	facts := sampleFacts()
	// Rule literals decode to float64; fact values may be native ints.
	facts["branch_count"] = 3
	assert.True(t, EvaluateCondition(mustCondition(t, `{"field":"branch_count","eq":3}`), facts))
	assert.True(t, EvaluateCondition(mustCondition(t, `{"field":"employee_count","in":[10,12]}`), facts))
}

// ---------------------------------------------------------------------------
// Dotted paths and fail-open behavior
// ---------------------------------------------------------------------------

func TestEvaluateCondition_NestedPath(t *testing.T) {
	facts := sampleFacts()
	assert.True(t, EvaluateCondition(mustCondition(t, `{"field":"risk_flags.pep_sanction","is_true":true}`), facts))
	assert.False(t, EvaluateCondition(mustCondition(t, `{"field":"risk_flags.high_risk_country","is_true":true}`), facts))
}

func TestEvaluateCondition_PathThroughNonMapResolvesNil(t *testing.T) {
	facts := sampleFacts()
	cond := mustCondition(t, `{"field":"customer_type.deeper.path","is_true":true}`)
	assert.False(t, EvaluateCondition(cond, facts))
}

func TestEvaluateCondition_MalformedLeafNeverMatches(t *testing.T) {
	facts := sampleFacts()
	assert.False(t, EvaluateCondition(rmodel.Condition{}, facts))
	assert.False(t, EvaluateCondition(rmodel.Condition{Field: "customer_type"}, facts))
	assert.False(t, EvaluateCondition(rmodel.Condition{Operator: "eq", Value: "FOR_PROFIT_CORP_DOMESTIC"}, facts))
}

// ---------------------------------------------------------------------------
// Combinators
// ---------------------------------------------------------------------------

func TestEvaluateCondition_All(t *testing.T) {
	facts := sampleFacts()
	cond := mustCondition(t, `{"all":[
		{"field":"customer_type","eq":"FOR_PROFIT_CORP_DOMESTIC"},
		{"field":"is_new_corp","is_true":true}
	]}`)
	assert.True(t, EvaluateCondition(cond, facts))

	cond = mustCondition(t, `{"all":[
		{"field":"customer_type","eq":"FOR_PROFIT_CORP_DOMESTIC"},
		{"field":"is_new_corp","is_false":true}
	]}`)
	assert.False(t, EvaluateCondition(cond, facts))
}

func TestEvaluateCondition_Any(t *testing.T) {
	facts := sampleFacts()
	cond := mustCondition(t, `{"any":[
		{"field":"customer_type","eq":"FOREIGN_CORP"},
		{"field":"risk_flags.pep_sanction","is_true":true}
	]}`)
	assert.True(t, EvaluateCondition(cond, facts))

	cond = mustCondition(t, `{"any":[
		{"field":"customer_type","eq":"FOREIGN_CORP"},
		{"field":"risk_flags.high_risk_country","is_true":true}
	]}`)
	assert.False(t, EvaluateCondition(cond, facts))
}

func TestEvaluateCondition_Not(t *testing.T) {
	facts := sampleFacts()
	cond := mustCondition(t, `{"not":{"field":"customer_type","eq":"FOREIGN_CORP"}}`)
	assert.True(t, EvaluateCondition(cond, facts))
}

func TestEvaluateCondition_NestedCombinators(t *testing.T) {
	facts := sampleFacts()
	cond := mustCondition(t, `{"all":[
		{"field":"business_status","eq":"ACTIVE"},
		{"any":[
			{"field":"risk_flags.pep_sanction","is_true":true},
			{"field":"risk_flags.high_risk_country","is_true":true}
		]},
		{"not":{"field":"customer_type","eq":"FOREIGN_CORP"}}
	]}`)
	assert.True(t, EvaluateCondition(cond, facts))
}

func TestEvaluateCondition_EmptyAllMatchesEverything(t *testing.T) {
	cond := mustCondition(t, `{"all":[]}`)
	assert.True(t, EvaluateCondition(cond, sampleFacts()))
}

func TestEvaluateCondition_EmptyAnyMatchesNothing(t *testing.T) {
	cond := mustCondition(t, `{"any":[]}`)
	assert.False(t, EvaluateCondition(cond, sampleFacts()))
}

// ---------------------------------------------------------------------------
// Truthiness coercion
// ---------------------------------------------------------------------------

func TestTruthy(t *testing.T) {
	assert.False(t, truthy(nil))
	assert.False(t, truthy(false))
	assert.False(t, truthy(""))
	assert.False(t, truthy(float64(0)))
	assert.False(t, truthy(0))
	assert.False(t, truthy([]interface{}{}))
	assert.False(t, truthy(map[string]interface{}{}))

	assert.True(t, truthy(true))
	assert.True(t, truthy("ACTIVE"))
	assert.True(t, truthy(float64(1)))
	assert.True(t, truthy([]interface{}{"x"}))
}
