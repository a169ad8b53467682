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
	"sort"

	dmodel "github.com/wso2/identity-corporate-onboarding-service/internal/determination/model"
	rmodel "github.com/wso2/identity-corporate-onboarding-service/internal/rules/model"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/constants"
)

// RuleMatch is the materialized effect of one matched rule, copied from
// the rule at match time rather than re-derived later.
type RuleMatch struct {
	RuleId            string
	RuleName          string
	RequiredDocuments []string
	OptionalDocuments []string
	Blocked           bool
	Escalate          bool
	OutputStatus      string
	OutputCaseTags    []string
	Explanation       string
}

var statusPriority = map[string]int{
	constants.StatusBlocked:              6,
	constants.StatusEscalationRequired:   5,
	constants.StatusApprovalPending:      4,
	constants.StatusNeedsSupplement:      3,
	constants.StatusReadyForReview:       2,
	constants.StatusApprovedForReception: 1,
}

// EvaluateRules evaluates the configured rules against a fact set in
// ascending priority order and returns the matches in that order. Disabled
// rules and rules with an empty condition tree never match. The sort is
// stable so rules sharing a priority keep their configured order.
func EvaluateRules(rules []rmodel.Rule, facts dmodel.FactSet) []RuleMatch {

	sorted := make([]rmodel.Rule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})

	matches := []RuleMatch{}
	for _, rule := range sorted {
		if !rule.Enabled || rule.Conditions.IsEmpty() {
			continue
		}
		if !EvaluateCondition(rule.Conditions, facts) {
			continue
		}
		matches = append(matches, RuleMatch{
			RuleId:            rule.RuleId,
			RuleName:          rule.RuleName,
			RequiredDocuments: rule.RequiredDocuments,
			OptionalDocuments: rule.OptionalDocuments,
			Blocked:           rule.BlockedIfMissing,
			Escalate:          rule.EscalateIfTrue,
			OutputStatus:      rule.OutputStatus,
			OutputCaseTags:    rule.OutputCaseTags,
			Explanation:       rule.ExplanationTemplate,
		})
	}
	return matches
}

// CompileDetermination folds the matched rules into one result. Document
// lists are order preserving unions, the status only ever moves towards
// the more restrictive value, a blocked match forces BLOCKED and an
// escalating match raises the status to at least ESCALATION_REQUIRED.
func CompileDetermination(caseCode string, caseTags []string, matches []RuleMatch) dmodel.DeterminationResult {

	required := []string{}
	optional := []string{}
	explanations := []string{}
	matchedNames := []string{}
	extraTags := []string{}
	blocked := false
	escalate := false
	finalStatus := constants.StatusReadyForReview

	for _, m := range matches {
		required = append(required, m.RequiredDocuments...)
		optional = append(optional, m.OptionalDocuments...)
		if m.Blocked {
			blocked = true
		}
		if m.Escalate {
			escalate = true
		}
		if m.Explanation != "" {
			explanations = append(explanations, m.Explanation)
		}
		matchedNames = append(matchedNames, m.RuleName)
		extraTags = append(extraTags, m.OutputCaseTags...)
		if m.OutputStatus != "" {
			finalStatus = higherPriorityStatus(finalStatus, m.OutputStatus)
		}
	}

	if blocked {
		finalStatus = constants.StatusBlocked
	} else if escalate {
		finalStatus = higherPriorityStatus(finalStatus, constants.StatusEscalationRequired)
	}

	required = dedupe(required)
	optional = dedupeExcluding(optional, required)
	combinedTags := dedupe(append(append([]string{}, caseTags...), extraTags...))

	return dmodel.DeterminationResult{
		CaseCode:          caseCode,
		CaseTags:          combinedTags,
		Status:            finalStatus,
		RequiredDocuments: required,
		OptionalDocuments: optional,
		DocumentGroups:    []dmodel.DocumentGroup{},
		Blocked:           blocked,
		Escalate:          escalate,
		Explanations:      explanations,
		MatchedRules:      matchedNames,
	}
}

func higherPriorityStatus(current, incoming string) string {

	if statusPriority[incoming] > statusPriority[current] {
		return incoming
	}
	return current
}

// dedupe removes duplicates keeping first occurrence order.
func dedupe(items []string) []string {

	seen := make(map[string]bool, len(items))
	out := []string{}
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

// dedupeExcluding removes duplicates and anything present in excluded.
func dedupeExcluding(items, excluded []string) []string {

	drop := make(map[string]bool, len(excluded))
	for _, item := range excluded {
		drop[item] = true
	}
	seen := make(map[string]bool, len(items))
	out := []string{}
	for _, item := range items {
		if seen[item] || drop[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
