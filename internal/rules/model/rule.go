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

// Rule is a configured determination rule: a condition tree plus the
// effects it contributes when the condition holds for a fact set.
type Rule struct {
	RuleId              string    `json:"rule_id,omitempty" bson:"rule_id,omitempty"`
	RuleName            string    `json:"rule_name" bson:"rule_name" binding:"required"`
	Priority            int       `json:"priority" bson:"priority"`
	Enabled             bool      `json:"enabled" bson:"enabled"`
	Conditions          Condition `json:"conditions" bson:"conditions"`
	RequiredDocuments   []string  `json:"required_documents" bson:"required_documents"`
	OptionalDocuments   []string  `json:"optional_documents" bson:"optional_documents"`
	BlockedIfMissing    bool      `json:"blocked_if_missing" bson:"blocked_if_missing"`
	EscalateIfTrue      bool      `json:"escalate_if_true" bson:"escalate_if_true"`
	OutputStatus        string    `json:"output_status,omitempty" bson:"output_status,omitempty"`
	OutputCaseTags      []string  `json:"output_case_tags,omitempty" bson:"output_case_tags,omitempty"`
	ExplanationTemplate string    `json:"explanation_template,omitempty" bson:"explanation_template,omitempty"`
	CreatedAt           int64     `json:"created_at,omitempty" bson:"created_at,omitempty"`
	UpdatedAt           int64     `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// RuleUpdateRequest carries the patchable subset of a rule. Pointer fields
// distinguish "leave unchanged" from an explicit zero value.
type RuleUpdateRequest struct {
	RuleName            *string    `json:"rule_name,omitempty"`
	Priority            *int       `json:"priority,omitempty"`
	Enabled             *bool      `json:"enabled,omitempty"`
	Conditions          *Condition `json:"conditions,omitempty"`
	RequiredDocuments   *[]string  `json:"required_documents,omitempty"`
	OptionalDocuments   *[]string  `json:"optional_documents,omitempty"`
	BlockedIfMissing    *bool      `json:"blocked_if_missing,omitempty"`
	EscalateIfTrue      *bool      `json:"escalate_if_true,omitempty"`
	OutputStatus        *string    `json:"output_status,omitempty"`
	OutputCaseTags      *[]string  `json:"output_case_tags,omitempty"`
	ExplanationTemplate *string    `json:"explanation_template,omitempty"`
}
