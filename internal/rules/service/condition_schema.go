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
	"sync"

	"github.com/kaptinlin/jsonschema"

	model "github.com/wso2/identity-corporate-onboarding-service/internal/rules/model"
)

// conditionSchema is the JSON Schema for a rule condition document. A node
// is exactly one of: an "all" list, an "any" list, a "not" wrapper, or a
// leaf comparison on a dotted field.
const conditionSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"$ref": "#/$defs/condition",
	"$defs": {
		"condition": {
			"type": "object",
			"oneOf": [
				{
					"type": "object",
					"required": ["all"],
					"properties": {
						"all": {"type": "array", "items": {"$ref": "#/$defs/condition"}}
					},
					"additionalProperties": false
				},
				{
					"type": "object",
					"required": ["any"],
					"properties": {
						"any": {"type": "array", "items": {"$ref": "#/$defs/condition"}}
					},
					"additionalProperties": false
				},
				{
					"type": "object",
					"required": ["not"],
					"properties": {
						"not": {"$ref": "#/$defs/condition"}
					},
					"additionalProperties": false
				},
				{
					"type": "object",
					"required": ["field"],
					"properties": {
						"field": {"type": "string", "minLength": 1},
						"eq": {},
						"neq": {},
						"in": {"type": "array"},
						"not_in": {"type": "array"},
						"is_true": {},
						"is_false": {},
						"exists": {"type": "boolean"}
					},
					"additionalProperties": false
				}
			]
		}
	}
}`

var (
	compiledSchema    *jsonschema.Schema
	compileSchemaOnce sync.Once
	compileSchemaErr  error
)

func getConditionSchema() (*jsonschema.Schema, error) {

	compileSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiledSchema, compileSchemaErr = compiler.Compile([]byte(conditionSchema))
	})
	return compiledSchema, compileSchemaErr
}

// ValidateConditionDocument checks a raw condition document against the
// condition schema and then against the stricter structural rules the
// schema cannot express, such as one comparison operator per leaf.
func ValidateConditionDocument(data []byte) error {

	schema, err := getConditionSchema()
	if err != nil {
		return fmt.Errorf("condition schema unavailable: %w", err)
	}
	result := schema.ValidateJSON(data)
	if !result.IsValid() {
		return fmt.Errorf("condition document does not match the condition schema: %v", result.Errors)
	}
	return model.ValidateConditionJSON(data)
}
