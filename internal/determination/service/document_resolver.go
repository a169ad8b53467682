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
	dmodel "github.com/wso2/identity-corporate-onboarding-service/internal/determination/model"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/constants"
)

// DocumentPackage is the static fallback output for a case: documents
// every such case needs regardless of what the configured rules add.
type DocumentPackage struct {
	Required     []string
	Conditional  []string
	Groups       []dmodel.DocumentGroup
	Explanations []string
}

// Baseline documents every corporate account opening requires.
var baseDocuments = []string{
	"DOC_BUSINESS_REGISTRATION",
	"DOC_CORPORATE_REGISTRY",
	"DOC_REPRESENTATIVE_ID",
	"DOC_ACCOUNT_OPENING_FORM",
	"DOC_CUSTOMER_DUE_DILIGENCE_FORM",
	"DOC_CORPORATE_SEAL_OR_SIGNATURE",
	"DOC_BENEFICIAL_OWNER_DECLARATION",
	"DOC_TRANSACTION_PURPOSE_FORM",
}

var baseConditionalDocuments = []string{
	"DOC_FINANCIAL_STATEMENT",
	"DOC_SOURCE_OF_FUNDS_EXPLANATION",
}

var proxyDocuments = []string{
	"DOC_PROXY_ID",
	"DOC_POWER_OF_ATTORNEY",
}

var internalProxyExtraDocuments = []string{
	"DOC_EMPLOYMENT_CERTIFICATE",
}

var externalProxyExtraDocuments = []string{
	"DOC_AUTHORIZATION_PROOF",
	"DOC_BOARD_RESOLUTION",
}

var jointRepDocuments = []string{
	"DOC_JOINT_REP_AUTH_PROOF",
}

var nonProfitDocuments = []string{
	"DOC_ARTICLES_OF_INCORPORATION",
	"DOC_BYLAWS_OR_RULES",
}

var nonCorporateOrgDocuments = []string{
	"DOC_BYLAWS_OR_RULES",
}

var foreignCorpDocuments = []string{
	"DOC_FOREIGN_INCORPORATION_CERT",
	"DOC_FOREIGN_REGISTRY_EXTRACT",
	"DOC_KOREAN_TRANSLATION",
	"DOC_NOTARIZATION_OR_APOSTILLE",
	"DOC_PASSPORT_OR_FOREIGN_ID",
	"DOC_TAX_RESIDENCY_FORM",
}

var newCorpDocuments = []string{
	"DOC_OFFICE_LEASE",
	"DOC_BUSINESS_WEBSITE_OR_PHOTO",
}

var uboComplexDocuments = []string{
	"DOC_OWNERSHIP_STRUCTURE_CHART",
	"DOC_SHAREHOLDER_REGISTER",
	"DOC_CONTROL_PERSON_EXPLANATION",
	"DOC_AML_REVIEW_NOTE",
}

var highRiskDocuments = []string{
	"DOC_AML_REVIEW_NOTE",
	"DOC_COMPLIANCE_APPROVAL",
}

var productDocuments = map[string][]string{
	constants.ForeignSecurities: {"DOC_FOREIGN_SECURITIES_AGREEMENT"},
	constants.Derivatives:       {"DOC_DERIVATIVES_RISK_DISCLOSURE", "DOC_PRODUCT_SUITABILITY_FORM"},
	constants.CMASettlement:     {"DOC_CMA_ADDITIONAL_TERMS"},
	constants.BondRepo:          {"DOC_TRADING_AUTHORITY_FORM"},
	constants.OtherProduct:      {"DOC_OTHER_PRODUCT_SPECIFIC_FORM"},
}

// ResolveDocuments builds the static document package for a case code,
// its tags and the requested account type. The configured rules remain
// authoritative; this fallback guarantees a sane baseline even with an
// empty rule table.
func ResolveDocuments(caseCode string, caseTags []string, accountType string) DocumentPackage {

	pkg := DocumentPackage{
		Required:     append([]string{}, baseDocuments...),
		Conditional:  append([]string{}, baseConditionalDocuments...),
		Groups:       []dmodel.DocumentGroup{},
		Explanations: []string{"Baseline corporate account opening documents are included."},
	}
	tags := make(map[string]bool, len(caseTags))
	for _, tag := range caseTags {
		tags[tag] = true
	}

	if caseCode == "C02" || caseCode == "C03" || caseCode == "C07" {
		pkg.Required = append(pkg.Required, proxyDocuments...)
		pkg.Explanations = append(pkg.Explanations,
			"Proxy application requires the proxy's ID and a power of attorney.")
		pkg.Groups = append(pkg.Groups, dmodel.DocumentGroup{
			GroupCode:   "SEAL_CERT_GROUP",
			Documents:   []string{"DOC_CORPORATE_SEAL_CERTIFICATE", "DOC_USE_OF_SEAL_FORM"},
			MinRequired: 1,
			Description: "At least one of the corporate seal certificate or the registered seal usage form",
		})
	}

	if caseCode == "C02" {
		pkg.Required = append(pkg.Required, internalProxyExtraDocuments...)
		pkg.Explanations = append(pkg.Explanations,
			"Employee proxy application requires a certificate of employment.")
	}

	if caseCode == "C03" {
		pkg.Required = append(pkg.Required, externalProxyExtraDocuments...)
		pkg.Explanations = append(pkg.Explanations,
			"External proxy application requires proof of authority and a board resolution.")
	}

	if caseCode == "C04" || caseCode == "C05" {
		pkg.Required = append(pkg.Required, jointRepDocuments...)
		pkg.Explanations = append(pkg.Explanations,
			"Joint representation requires proof of each representative's authority.")
		if caseCode == "C05" {
			pkg.Explanations = append(pkg.Explanations,
				"Joint action is required, so signatures or seals of all representatives must be verified.")
		}
	}

	if caseCode == "C06" || caseCode == "C07" {
		pkg.Required = append(pkg.Required, nonProfitDocuments...)
		pkg.Explanations = append(pkg.Explanations,
			"Non-profit corporation requires articles of incorporation or bylaws.")
	}

	if caseCode == "C08" {
		pkg.Required = append(pkg.Required, nonCorporateOrgDocuments...)
		pkg.Explanations = append(pkg.Explanations,
			"Unincorporated organization requires its charter or rules.")
	}

	if caseCode == "C09" || tags[constants.TagForeignRelated] {
		pkg.Required = append(pkg.Required, foreignCorpDocuments...)
		pkg.Explanations = append(pkg.Explanations,
			"Foreign corporation requires incorporation evidence, translation and notarization documents.")
	}

	if caseCode == "C10" || tags[constants.TagNewCorp] {
		pkg.Required = append(pkg.Required, newCorpDocuments...)
		pkg.Conditional = append(pkg.Conditional, "DOC_STARTUP_SUPPORT_PROOF")
		pkg.Explanations = append(pkg.Explanations,
			"Newly established corporation requires evidence of business premises.")
	}

	if caseCode == "C11" || tags[constants.TagUBOComplex] {
		pkg.Required = append(pkg.Required, uboComplexDocuments...)
		pkg.Explanations = append(pkg.Explanations,
			"Beneficial owner could not be confirmed, so additional ownership structure documents are required.")
	}

	if caseCode == "C12" || tags[constants.TagHighRisk] {
		pkg.Required = append(pkg.Required, highRiskDocuments...)
		pkg.Explanations = append(pkg.Explanations,
			"High risk flags require enhanced due diligence documents.")
	}

	if accountType != "" && accountType != constants.BrokerageGeneral {
		if docs, ok := productDocuments[accountType]; ok {
			pkg.Required = append(pkg.Required, docs...)
			pkg.Explanations = append(pkg.Explanations,
				"Additional documents are required for the "+accountType+" product.")
		}
	}

	if !contains(pkg.Required, "DOC_SHAREHOLDER_REGISTER") {
		pkg.Groups = append(pkg.Groups, dmodel.DocumentGroup{
			GroupCode:   "OWNERSHIP_PROOF_GROUP",
			Documents:   []string{"DOC_SHAREHOLDER_REGISTER", "DOC_MEMBER_REGISTER"},
			MinRequired: 1,
			Description: "One of the shareholder register or the member/investor register",
		})
	}

	pkg.Required = dedupe(pkg.Required)
	pkg.Conditional = dedupeExcluding(pkg.Conditional, pkg.Required)

	return pkg
}

func contains(items []string, target string) bool {

	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
