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
	"github.com/wso2/identity-corporate-onboarding-service/internal/determination/model"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/constants"
)

func classifierFacts(overrides map[string]interface{}) model.FactSet {
	facts := model.FactSet{
		"customer_type":   constants.ForProfitCorpDomestic,
		"applicant_type":  constants.RepresentativeSelf,
		"account_type":    constants.BrokerageGeneral,
		"business_status": constants.BusinessActive,
		"ubo_confirmable": true,
		"is_new_corp":     false,
		"risk_flags":      map[string]interface{}{},
	}
	for k, v := range overrides {
		facts[k] = v
	}
	return facts
}

// ---------------------------------------------------------------------------
// Base cases
// ---------------------------------------------------------------------------

func TestClassifyCase_DefaultRepresentative(t *testing.T) {
	caseCode, tags := ClassifyCase(classifierFacts(nil))
	assert.Equal(t, "C01", caseCode)
	assert.Empty(t, tags)
}

func TestClassifyCase_InternalEmployeeProxy(t *testing.T) {
	caseCode, _ := ClassifyCase(classifierFacts(map[string]interface{}{
		"applicant_type": constants.InternalEmployeeProxy,
	}))
	assert.Equal(t, "C02", caseCode)
}

func TestClassifyCase_ExternalProxy(t *testing.T) {
	caseCode, _ := ClassifyCase(classifierFacts(map[string]interface{}{
		"applicant_type": constants.ExternalProxy,
	}))
	assert.Equal(t, "C03", caseCode)
}

func TestClassifyCase_JointRepresentation(t *testing.T) {
	caseCode, _ := ClassifyCase(classifierFacts(map[string]interface{}{
		"applicant_type": constants.JointRepSingleActionAllowed,
	}))
	assert.Equal(t, "C04", caseCode)

	caseCode, _ = ClassifyCase(classifierFacts(map[string]interface{}{
		"applicant_type": constants.JointRepJointActionRequired,
	}))
	assert.Equal(t, "C05", caseCode)
}

func TestClassifyCase_NonProfit(t *testing.T) {
	caseCode, _ := ClassifyCase(classifierFacts(map[string]interface{}{
		"customer_type": constants.NonProfitCorp,
	}))
	assert.Equal(t, "C06", caseCode)

	// A proxy applicant moves the non-profit to its proxy variant.
	caseCode, _ = ClassifyCase(classifierFacts(map[string]interface{}{
		"customer_type":  constants.NonProfitCorp,
		"applicant_type": constants.ExternalProxy,
	}))
	assert.Equal(t, "C07", caseCode)
}

func TestClassifyCase_NonCorporateOrg(t *testing.T) {
	caseCode, _ := ClassifyCase(classifierFacts(map[string]interface{}{
		"customer_type": constants.NonCorporateOrg,
	}))
	assert.Equal(t, "C08", caseCode)
}

func TestClassifyCase_ForeignCorp(t *testing.T) {
	caseCode, tags := ClassifyCase(classifierFacts(map[string]interface{}{
		"customer_type": constants.ForeignCorp,
	}))
	assert.Equal(t, "C09", caseCode)
	assert.Contains(t, tags, constants.TagForeignRelated)
}

func TestClassifyCase_NonFaceToFace(t *testing.T) {
	caseCode, _ := ClassifyCase(classifierFacts(map[string]interface{}{
		"applicant_type": constants.NonFaceToFaceRequest,
	}))
	assert.Equal(t, "C14", caseCode)
}

// ---------------------------------------------------------------------------
// Overrides
// ---------------------------------------------------------------------------

func TestClassifyCase_NewCorpOverridesOrdinaryCases(t *testing.T) {
	caseCode, tags := ClassifyCase(classifierFacts(map[string]interface{}{
		"is_new_corp": true,
	}))
	assert.Equal(t, "C10", caseCode)
	assert.Contains(t, tags, constants.TagNewCorp)

	// The proxy employee case is also promoted.
	caseCode, _ = ClassifyCase(classifierFacts(map[string]interface{}{
		"applicant_type": constants.InternalEmployeeProxy,
		"is_new_corp":    true,
	}))
	assert.Equal(t, "C10", caseCode)

	// Other cases keep their code but gain the tag.
	caseCode, tags = ClassifyCase(classifierFacts(map[string]interface{}{
		"applicant_type": constants.ExternalProxy,
		"is_new_corp":    true,
	}))
	assert.Equal(t, "C03", caseCode)
	assert.Contains(t, tags, constants.TagNewCorp)
}

func TestClassifyCase_UBOComplexOverride(t *testing.T) {
	caseCode, tags := ClassifyCase(classifierFacts(map[string]interface{}{
		"ubo_confirmable": false,
	}))
	assert.Equal(t, "C11", caseCode)
	assert.Contains(t, tags, constants.TagUBOComplex)

	caseCode, _ = ClassifyCase(classifierFacts(map[string]interface{}{
		"multi_layer_ownership": true,
	}))
	assert.Equal(t, "C11", caseCode)

	caseCode, _ = ClassifyCase(classifierFacts(map[string]interface{}{
		"ultimate_owner_unknown": true,
	}))
	assert.Equal(t, "C11", caseCode)
}

func TestClassifyCase_ForeignCorpKeepsCodeOnUBOComplex(t *testing.T) {
	caseCode, tags := ClassifyCase(classifierFacts(map[string]interface{}{
		"customer_type":   constants.ForeignCorp,
		"ubo_confirmable": false,
	}))
	assert.Equal(t, "C09", caseCode)
	assert.Contains(t, tags, constants.TagUBOComplex)
}

func TestClassifyCase_HighRiskAlwaysWins(t *testing.T) {
	for _, flag := range []string{"high_risk_country", "pep_sanction", "special_review"} {
		caseCode, tags := ClassifyCase(classifierFacts(map[string]interface{}{
			"risk_flags": map[string]interface{}{flag: true},
		}))
		assert.Equal(t, "C12", caseCode, "flag %s", flag)
		assert.Contains(t, tags, constants.TagHighRisk)
	}

	// High risk overrides even the foreign corporation case.
	caseCode, _ := ClassifyCase(classifierFacts(map[string]interface{}{
		"customer_type": constants.ForeignCorp,
		"risk_flags":    map[string]interface{}{"pep_sanction": true},
	}))
	assert.Equal(t, "C12", caseCode)
}

func TestClassifyCase_UBOOverrideBeforeHighRisk(t *testing.T) {
	caseCode, tags := ClassifyCase(classifierFacts(map[string]interface{}{
		"ubo_confirmable": false,
		"risk_flags":      map[string]interface{}{"special_review": true},
	}))
	assert.Equal(t, "C12", caseCode)
	assert.Contains(t, tags, constants.TagUBOComplex)
	assert.Contains(t, tags, constants.TagHighRisk)
}

// ---------------------------------------------------------------------------
// Product and status tags
// ---------------------------------------------------------------------------

func TestClassifyCase_ProductTags(t *testing.T) {
	caseCode, tags := ClassifyCase(classifierFacts(map[string]interface{}{
		"account_type": constants.Derivatives,
	}))
	assert.Equal(t, "C01", caseCode)
	assert.Contains(t, tags, "DERIVATIVES_PRODUCT")
	assert.Contains(t, tags, constants.TagProductAdditional)
}

func TestClassifyCase_ProductAdditionalSkippedForSpecialCases(t *testing.T) {
	// C14 and other C1x cases carry the product tag without the
	// PRODUCT_ADDITIONAL marker.
	_, tags := ClassifyCase(classifierFacts(map[string]interface{}{
		"applicant_type": constants.NonFaceToFaceRequest,
		"account_type":   constants.ForeignSecurities,
	}))
	assert.Contains(t, tags, "FOREIGN_SECURITIES_PRODUCT")
	assert.NotContains(t, tags, constants.TagProductAdditional)
}

func TestClassifyCase_GeneralBrokerageHasNoProductTag(t *testing.T) {
	_, tags := ClassifyCase(classifierFacts(nil))
	assert.NotContains(t, tags, constants.TagProductAdditional)
}

func TestClassifyCase_StatusAndRiskTags(t *testing.T) {
	_, tags := ClassifyCase(classifierFacts(map[string]interface{}{
		"business_status": constants.BusinessSuspended,
		"risk_flags": map[string]interface{}{
			"document_mismatch":       true,
			"proxy_authority_unclear": true,
		},
	}))
	assert.Contains(t, tags, constants.TagBusinessStatusAbnormal)
	assert.Contains(t, tags, constants.TagDocumentMismatch)
	assert.Contains(t, tags, constants.TagProxyUnclear)
}

func TestClassifyCase_MissingBusinessStatusDefaultsToActive(t *testing.T) {
	facts := classifierFacts(nil)
	delete(facts, "business_status")
	_, tags := ClassifyCase(facts)
	assert.NotContains(t, tags, constants.TagBusinessStatusAbnormal)
}
