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
	"strings"

	"github.com/wso2/identity-corporate-onboarding-service/internal/determination/model"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/constants"
)

// ClassifyCase maps a fact set to a case code (C01 to C14) plus descriptive
// tags. The base case is chosen by customer and applicant type, then the
// override stages may replace it: new corporations move C01/C02 to C10,
// unconfirmable ownership moves anything but C09 to C11, and a high risk
// flag always forces C12. Product and status tags never change the code.
func ClassifyCase(facts model.FactSet) (string, []string) {

	customerType, _ := facts.ResolveField("customer_type").(string)
	applicantType, _ := facts.ResolveField("applicant_type").(string)
	accountType, _ := facts.ResolveField("account_type").(string)
	businessStatus, _ := facts.ResolveField("business_status").(string)
	if businessStatus == "" {
		businessStatus = constants.BusinessActive
	}
	uboConfirmable := factBool(facts, "ubo_confirmable", true)
	riskFlags, _ := facts.ResolveField("risk_flags").(map[string]interface{})

	tags := []string{}
	var caseCode string

	switch {
	case customerType == constants.ForeignCorp || customerType == constants.ForeignOrg:
		caseCode = "C09"
		tags = append(tags, constants.TagForeignRelated)
	case customerType == constants.NonCorporateOrg:
		caseCode = "C08"
	case customerType == constants.NonProfitCorp:
		if applicantType == constants.InternalEmployeeProxy || applicantType == constants.ExternalProxy {
			caseCode = "C07"
		} else {
			caseCode = "C06"
		}
	case applicantType == constants.JointRepSingleActionAllowed:
		caseCode = "C04"
	case applicantType == constants.JointRepJointActionRequired:
		caseCode = "C05"
	case applicantType == constants.NonFaceToFaceRequest:
		caseCode = "C14"
	case applicantType == constants.ExternalProxy:
		caseCode = "C03"
	case applicantType == constants.InternalEmployeeProxy:
		caseCode = "C02"
	default:
		caseCode = "C01"
	}

	if factBool(facts, "is_new_corp", false) {
		tags = append(tags, constants.TagNewCorp)
		if caseCode == "C01" || caseCode == "C02" {
			caseCode = "C10"
		}
	}

	if !uboConfirmable || factBool(facts, "multi_layer_ownership", false) ||
		factBool(facts, "ultimate_owner_unknown", false) {
		tags = append(tags, constants.TagUBOComplex)
		if caseCode != "C09" {
			caseCode = "C11"
		}
	}

	if flagSet(riskFlags, "high_risk_country") || flagSet(riskFlags, "pep_sanction") ||
		flagSet(riskFlags, "special_review") {
		tags = append(tags, constants.TagHighRisk)
		caseCode = "C12"
	}

	if accountType != "" && accountType != constants.BrokerageGeneral {
		tags = append(tags, accountType+"_PRODUCT")
		if !strings.Contains(caseCode, "C1") || caseCode == "C01" || caseCode == "C02" {
			tags = append(tags, constants.TagProductAdditional)
		}
	}

	if businessStatus == constants.BusinessSuspended || businessStatus == constants.BusinessClosed ||
		businessStatus == constants.BusinessUnknown {
		tags = append(tags, constants.TagBusinessStatusAbnormal)
	}
	if flagSet(riskFlags, "document_mismatch") {
		tags = append(tags, constants.TagDocumentMismatch)
	}
	if flagSet(riskFlags, "proxy_authority_unclear") {
		tags = append(tags, constants.TagProxyUnclear)
	}

	return caseCode, tags
}

func factBool(facts model.FactSet, field string, fallback bool) bool {

	if v, ok := facts.ResolveField(field).(bool); ok {
		return v
	}
	return fallback
}

func flagSet(flags map[string]interface{}, name string) bool {

	v, ok := flags[name].(bool)
	return ok && v
}
