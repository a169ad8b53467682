package constants

const ApiBasePath = "/api/v1"
const DeterminationsApiPath = "determinations"
const RulesApiPath = "rules"
const DocumentTypesApiPath = "document-types"
const CaseTypesApiPath = "case-types"
const CaseTagsApiPath = "case-tags"
const AuditLogsApiPath = "audit-logs"
const Filter = "filter"

// Customer types (§6.2 of the onboarding policy).
const (
	ForProfitCorpDomestic = "FOR_PROFIT_CORP_DOMESTIC"
	NonProfitCorp         = "NON_PROFIT_CORP"
	NonCorporateOrg       = "NON_CORPORATE_ORG"
	ForeignCorp           = "FOREIGN_CORP"
	ForeignOrg            = "FOREIGN_ORG"
	SoleProprietor        = "SOLE_PROPRIETOR"
)

var AllowedCustomerTypes = map[string]bool{
	ForProfitCorpDomestic: true,
	NonProfitCorp:         true,
	NonCorporateOrg:       true,
	ForeignCorp:           true,
	ForeignOrg:            true,
	SoleProprietor:        true,
}

// Account types (§6.3).
const (
	BrokerageGeneral  = "BROKERAGE_GENERAL"
	CMASettlement     = "CMA_SETTLEMENT"
	ForeignSecurities = "FOREIGN_SECURITIES"
	Derivatives       = "DERIVATIVES"
	BondRepo          = "BOND_REPO"
	OtherProduct      = "OTHER_PRODUCT"
)

var AllowedAccountTypes = map[string]bool{
	BrokerageGeneral:  true,
	CMASettlement:     true,
	ForeignSecurities: true,
	Derivatives:       true,
	BondRepo:          true,
	OtherProduct:      true,
}

// Applicant types (§6.4).
const (
	RepresentativeSelf          = "REPRESENTATIVE_SELF"
	InternalEmployeeProxy       = "INTERNAL_EMPLOYEE_PROXY"
	ExternalProxy               = "EXTERNAL_PROXY"
	JointRepSingleActionAllowed = "JOINT_REP_SINGLE_ACTION_ALLOWED"
	JointRepJointActionRequired = "JOINT_REP_JOINT_ACTION_REQUIRED"
	NonFaceToFaceRequest        = "NON_FACE_TO_FACE_REQUEST"
)

var AllowedApplicantTypes = map[string]bool{
	RepresentativeSelf:          true,
	InternalEmployeeProxy:       true,
	ExternalProxy:               true,
	JointRepSingleActionAllowed: true,
	JointRepJointActionRequired: true,
	NonFaceToFaceRequest:        true,
}

// Business statuses (§6.1).
const (
	BusinessActive    = "ACTIVE"
	BusinessSuspended = "SUSPENDED"
	BusinessClosed    = "CLOSED"
	BusinessUnknown   = "UNKNOWN"
)

var AllowedBusinessStatuses = map[string]bool{
	BusinessActive:    true,
	BusinessSuspended: true,
	BusinessClosed:    true,
	BusinessUnknown:   true,
}

// Request statuses produced by the determination pipeline.
const (
	StatusReadyForReview       = "READY_FOR_REVIEW"
	StatusNeedsSupplement      = "NEEDS_SUPPLEMENT"
	StatusEscalationRequired   = "ESCALATION_REQUIRED"
	StatusBlocked              = "BLOCKED"
	StatusApprovalPending      = "APPROVAL_PENDING"
	StatusApprovedForReception = "APPROVED_FOR_RECEPTION"
)

var AllowedRequestStatuses = map[string]bool{
	StatusReadyForReview:       true,
	StatusNeedsSupplement:      true,
	StatusEscalationRequired:   true,
	StatusBlocked:              true,
	StatusApprovalPending:      true,
	StatusApprovedForReception: true,
}

// Case tags attached by the classifier alongside the case code.
const (
	TagForeignRelated         = "FOREIGN_RELATED"
	TagNewCorp                = "NEW_CORP"
	TagUBOComplex             = "UBO_COMPLEX"
	TagHighRisk               = "HIGH_RISK"
	TagProductAdditional      = "PRODUCT_ADDITIONAL"
	TagBusinessStatusAbnormal = "BUSINESS_STATUS_ABNORMAL"
	TagDocumentMismatch       = "DOCUMENT_MISMATCH"
	TagProxyUnclear           = "PROXY_UNCLEAR"
)

// Comparison operators accepted in rule condition leaves.
var AllowedConditionOperators = map[string]bool{
	"eq":       true,
	"neq":      true,
	"in":       true,
	"not_in":   true,
	"is_true":  true,
	"is_false": true,
	"exists":   true,
}

var AllowedFieldsForRulePatch = map[string]bool{
	"rule_name":            true,
	"priority":             true,
	"enabled":              true,
	"conditions":           true,
	"required_documents":   true,
	"optional_documents":   true,
	"blocked_if_missing":   true,
	"escalate_if_true":     true,
	"output_status":        true,
	"output_case_tags":     true,
	"explanation_template": true,
}
