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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	catalogservice "github.com/wso2/identity-corporate-onboarding-service/internal/catalog/service"
	rulesservice "github.com/wso2/identity-corporate-onboarding-service/internal/rules/service"
	"github.com/wso2/identity-corporate-onboarding-service/internal/seed"
)

func TestLoadSeedData(t *testing.T) {
	counts, err := seed.LoadSeedData("../..", "repository/resources/seed")
	require.NoError(t, err)
	assert.Greater(t, counts["document_types"], 0)
	assert.Greater(t, counts["case_types"], 0)
	assert.Greater(t, counts["rules"], 0)

	// Seeded catalog entries are readable through the service layer.
	docTypes, err := catalogservice.GetCatalogService().GetDocumentTypes()
	require.NoError(t, err)
	codes := map[string]bool{}
	for _, docType := range docTypes {
		codes[docType.Code] = true
	}
	assert.True(t, codes["DOC_BUSINESS_REGISTRATION"])
	assert.True(t, codes["DOC_AML_REVIEW_NOTE"])

	caseTypes, err := catalogservice.GetCatalogService().GetCaseTypes()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(caseTypes), 14)

	// Seeded rules pass the same validation as API submitted ones.
	rules, err := rulesservice.GetRuleService().GetEnabledRules()
	require.NoError(t, err)
	names := map[string]bool{}
	for _, rule := range rules {
		names[rule.RuleName] = true
	}
	assert.True(t, names["Blocked business status"])
	assert.True(t, names["PEP or sanction escalation"])
}

func TestLoadSeedData_Idempotent(t *testing.T) {
	_, err := seed.LoadSeedData("../..", "repository/resources/seed")
	require.NoError(t, err)

	counts, err := seed.LoadSeedData("../..", "repository/resources/seed")
	require.NoError(t, err)
	assert.Equal(t, 0, counts["document_types"])
	assert.Equal(t, 0, counts["case_types"])
	assert.Equal(t, 0, counts["case_tags"])
	assert.Equal(t, 0, counts["rules"])
}
