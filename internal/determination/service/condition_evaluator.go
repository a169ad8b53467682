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
	"reflect"

	dmodel "github.com/wso2/identity-corporate-onboarding-service/internal/determination/model"
	rmodel "github.com/wso2/identity-corporate-onboarding-service/internal/rules/model"
)

// EvaluateCondition evaluates a condition tree against a fact set. It is
// pure and total: malformed nodes, unknown fields and unknown operators
// all evaluate to false rather than failing the determination.
func EvaluateCondition(cond rmodel.Condition, facts dmodel.FactSet) bool {

	if cond.All != nil {
		for _, child := range cond.All {
			if !EvaluateCondition(child, facts) {
				return false
			}
		}
		return true
	}
	if cond.Any != nil {
		for _, child := range cond.Any {
			if EvaluateCondition(child, facts) {
				return true
			}
		}
		return false
	}
	if cond.Not != nil {
		return !EvaluateCondition(*cond.Not, facts)
	}

	if cond.Field == "" {
		return false
	}
	value := facts.ResolveField(cond.Field)

	switch cond.Operator {
	case "eq":
		return literalEquals(value, cond.Value)
	case "neq":
		return !literalEquals(value, cond.Value)
	case "in":
		return literalContains(cond.Value, value)
	case "not_in":
		return !literalContains(cond.Value, value)
	case "is_true":
		return truthy(value)
	case "is_false":
		return !truthy(value)
	case "exists":
		if want, ok := cond.Value.(bool); ok && !want {
			return value == nil
		}
		return value != nil
	}
	return false
}

// literalEquals compares a resolved fact value against a rule literal.
// Numbers are normalized to float64 first since JSON-decoded literals
// always arrive as float64 while fact values may be native ints.
func literalEquals(value, literal interface{}) bool {

	if vf, ok := toFloat(value); ok {
		if lf, ok := toFloat(literal); ok {
			return vf == lf
		}
		return false
	}
	if value == nil || literal == nil {
		return value == literal
	}
	return reflect.DeepEqual(value, literal)
}

// literalContains reports membership of value in a rule literal list.
func literalContains(literal, value interface{}) bool {

	list, ok := literal.([]interface{})
	if !ok {
		return false
	}
	for _, item := range list {
		if literalEquals(value, item) {
			return true
		}
	}
	return false
}

// truthy is the boolean coercion applied by is_true / is_false: nil,
// false, zero numbers, empty strings and empty collections are false.
func truthy(value interface{}) bool {

	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	case int:
		return v != 0
	case int64:
		return v != 0
	case []interface{}:
		return len(v) > 0
	case []string:
		return len(v) > 0
	case map[string]interface{}:
		return len(v) > 0
	}
	return true
}

func toFloat(value interface{}) (float64, bool) {

	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
