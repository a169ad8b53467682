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
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/constants"
)

func groupCodes(pkg DocumentPackage) []string {
	codes := []string{}
	for _, group := range pkg.Groups {
		codes = append(codes, group.GroupCode)
	}
	return codes
}

func TestResolveDocuments_BaselineCase(t *testing.T) {
	pkg := ResolveDocuments("C01", nil, constants.BrokerageGeneral)
	assert.Equal(t, baseDocuments, pkg.Required)
	assert.Equal(t, baseConditionalDocuments, pkg.Conditional)
	assert.Contains(t, groupCodes(pkg), "OWNERSHIP_PROOF_GROUP")
}

func TestResolveDocuments_EmployeeProxy(t *testing.T) {
	pkg := ResolveDocuments("C02", nil, constants.BrokerageGeneral)
	assert.Contains(t, pkg.Required, "DOC_PROXY_ID")
	assert.Contains(t, pkg.Required, "DOC_POWER_OF_ATTORNEY")
	assert.Contains(t, pkg.Required, "DOC_EMPLOYMENT_CERTIFICATE")
	assert.NotContains(t, pkg.Required, "DOC_AUTHORIZATION_PROOF")
	assert.Contains(t, groupCodes(pkg), "SEAL_CERT_GROUP")
}

func TestResolveDocuments_ExternalProxy(t *testing.T) {
	pkg := ResolveDocuments("C03", nil, constants.BrokerageGeneral)
	assert.Contains(t, pkg.Required, "DOC_AUTHORIZATION_PROOF")
	assert.Contains(t, pkg.Required, "DOC_BOARD_RESOLUTION")
	assert.NotContains(t, pkg.Required, "DOC_EMPLOYMENT_CERTIFICATE")
}

func TestResolveDocuments_JointRepresentation(t *testing.T) {
	pkg := ResolveDocuments("C04", nil, constants.BrokerageGeneral)
	assert.Contains(t, pkg.Required, "DOC_JOINT_REP_AUTH_PROOF")

	// Joint-action-required adds an extra explanation only.
	pkgJoint := ResolveDocuments("C05", nil, constants.BrokerageGeneral)
	assert.Equal(t, pkg.Required, pkgJoint.Required)
	assert.Greater(t, len(pkgJoint.Explanations), len(pkg.Explanations))
}

func TestResolveDocuments_NonProfitProxyGetsBothSets(t *testing.T) {
	pkg := ResolveDocuments("C07", nil, constants.BrokerageGeneral)
	assert.Contains(t, pkg.Required, "DOC_PROXY_ID")
	assert.Contains(t, pkg.Required, "DOC_ARTICLES_OF_INCORPORATION")
	assert.Contains(t, pkg.Required, "DOC_BYLAWS_OR_RULES")
}

func TestResolveDocuments_ForeignCorp(t *testing.T) {
	pkg := ResolveDocuments("C09", []string{constants.TagForeignRelated}, constants.BrokerageGeneral)
	for _, doc := range foreignCorpDocuments {
		assert.Contains(t, pkg.Required, doc)
	}
}

func TestResolveDocuments_NewCorpByCodeOrTag(t *testing.T) {
	byCode := ResolveDocuments("C10", nil, constants.BrokerageGeneral)
	assert.Contains(t, byCode.Required, "DOC_OFFICE_LEASE")
	assert.Contains(t, byCode.Conditional, "DOC_STARTUP_SUPPORT_PROOF")

	// The tag alone triggers the same additions for a case that kept
	// its original code.
	byTag := ResolveDocuments("C03", []string{constants.TagNewCorp}, constants.BrokerageGeneral)
	assert.Contains(t, byTag.Required, "DOC_OFFICE_LEASE")
}

func TestResolveDocuments_UBOComplexSuppressesOwnershipGroup(t *testing.T) {
	pkg := ResolveDocuments("C11", []string{constants.TagUBOComplex}, constants.BrokerageGeneral)
	assert.Contains(t, pkg.Required, "DOC_SHAREHOLDER_REGISTER")
	assert.Contains(t, pkg.Required, "DOC_OWNERSHIP_STRUCTURE_CHART")
	assert.NotContains(t, groupCodes(pkg), "OWNERSHIP_PROOF_GROUP")
}

func TestResolveDocuments_HighRisk(t *testing.T) {
	pkg := ResolveDocuments("C12", []string{constants.TagHighRisk}, constants.BrokerageGeneral)
	assert.Contains(t, pkg.Required, "DOC_AML_REVIEW_NOTE")
	assert.Contains(t, pkg.Required, "DOC_COMPLIANCE_APPROVAL")
}

func TestResolveDocuments_HighRiskForeignCorpKeepsForeignSet(t *testing.T) {
	// High risk overrides the foreign base code, but the FOREIGN_RELATED
	// tag still carries the foreign document requirements.
	caseCode, tags := ClassifyCase(classifierFacts(map[string]interface{}{
		"customer_type": constants.ForeignCorp,
		"risk_flags":    map[string]interface{}{"pep_sanction": true},
	}))
	require.Equal(t, "C12", caseCode)
	require.Contains(t, tags, constants.TagForeignRelated)

	pkg := ResolveDocuments(caseCode, tags, constants.BrokerageGeneral)
	for _, doc := range foreignCorpDocuments {
		assert.Contains(t, pkg.Required, doc)
	}
	assert.Contains(t, pkg.Required, "DOC_AML_REVIEW_NOTE")
	assert.Contains(t, pkg.Required, "DOC_COMPLIANCE_APPROVAL")
}

func TestResolveDocuments_ProductDocuments(t *testing.T) {
	pkg := ResolveDocuments("C01", nil, constants.Derivatives)
	assert.Contains(t, pkg.Required, "DOC_DERIVATIVES_RISK_DISCLOSURE")
	assert.Contains(t, pkg.Required, "DOC_PRODUCT_SUITABILITY_FORM")

	pkg = ResolveDocuments("C01", nil, constants.CMASettlement)
	assert.Contains(t, pkg.Required, "DOC_CMA_ADDITIONAL_TERMS")

	pkg = ResolveDocuments("C01", nil, constants.BrokerageGeneral)
	assert.NotContains(t, pkg.Required, "DOC_CMA_ADDITIONAL_TERMS")
}

func TestResolveDocuments_RequiredListIsDeduplicated(t *testing.T) {
	// C12 with the UBO tag pulls DOC_AML_REVIEW_NOTE from two tables.
	pkg := ResolveDocuments("C12", []string{constants.TagUBOComplex, constants.TagHighRisk},
		constants.BrokerageGeneral)
	count := 0
	for _, doc := range pkg.Required {
		if doc == "DOC_AML_REVIEW_NOTE" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestResolveDocuments_SealGroupShape(t *testing.T) {
	pkg := ResolveDocuments("C02", nil, constants.BrokerageGeneral)
	require.NotEmpty(t, pkg.Groups)
	group := pkg.Groups[0]
	assert.Equal(t, "SEAL_CERT_GROUP", group.GroupCode)
	assert.Equal(t, 1, group.MinRequired)
	assert.Len(t, group.Documents, 2)
}
