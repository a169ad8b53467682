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

package errors

const errorPrefix = "COS-"

var (
	// Server error codes

	ADD_RULE = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Error while adding decision rule.",
	}

	FETCH_RULES = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while fetching decision rule(s).",
	}

	UPDATE_RULE = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while updating decision rule.",
	}

	DELETE_RULE = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while deleting decision rule.",
	}

	SAVE_DETERMINATION = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while persisting determination result.",
	}

	FETCH_DETERMINATIONS = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while fetching account request(s).",
	}

	UPSERT_CUSTOMER = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while upserting customer record.",
	}

	FETCH_DOCUMENT_TYPES = ErrorMessage{
		Code:    errorPrefix + "15008",
		Message: "Error while fetching document types.",
	}

	UPDATE_DOCUMENT_TYPE = ErrorMessage{
		Code:    errorPrefix + "15009",
		Message: "Error while updating document type.",
	}

	FETCH_CASE_TYPES = ErrorMessage{
		Code:    errorPrefix + "15010",
		Message: "Error while fetching case types.",
	}

	ADD_AUDIT_EVENT = ErrorMessage{
		Code:    errorPrefix + "15011",
		Message: "Error while recording audit event.",
	}

	FETCH_AUDIT_EVENTS = ErrorMessage{
		Code:    errorPrefix + "15012",
		Message: "Error while fetching audit events.",
	}

	DB_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15013",
		Message: "Unable to initialize database client.",
	}

	MARSHAL_JSON = ErrorMessage{
		Code:    errorPrefix + "15014",
		Message: "Error while marshalling JSON.",
	}

	UNMARSHAL_JSON = ErrorMessage{
		Code:    errorPrefix + "15015",
		Message: "Error while un-marshalling JSON.",
	}

	SEED_LOAD = ErrorMessage{
		Code:    errorPrefix + "15016",
		Message: "Error while loading seed data.",
	}

	PARSING_ERROR = ErrorMessage{
		Code:    errorPrefix + "15017",
		Message: "Parsing token failed.",
	}

	// Client error codes

	BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "11001",
		Message: "Invalid body format.",
	}

	UN_AUTHORIZED = ErrorMessage{
		Code:        errorPrefix + "11002",
		Message:     "Unauthorized",
		Description: "Authorization failure. Authorization information was invalid or missing from your request.",
	}

	RULE_NOT_FOUND = ErrorMessage{
		Code:        errorPrefix + "11003",
		Message:     "No decision rule found.",
		Description: "No decision rule defined for the provided rule_id.",
	}

	RULE_VALIDATION = ErrorMessage{
		Code:    errorPrefix + "11004",
		Message: "Decision rule validation failed.",
	}

	CONDITION_VALIDATION = ErrorMessage{
		Code:    errorPrefix + "11005",
		Message: "Rule condition validation failed.",
	}

	DETERMINATION_VALIDATION = ErrorMessage{
		Code:    errorPrefix + "11006",
		Message: "Determination request validation failed.",
	}

	ACCOUNT_REQUEST_NOT_FOUND = ErrorMessage{
		Code:        errorPrefix + "11007",
		Message:     "Account request not found.",
		Description: "No account request record found for the given request_id.",
	}

	DOCUMENT_TYPE_NOT_FOUND = ErrorMessage{
		Code:        errorPrefix + "11008",
		Message:     "Document type not found.",
		Description: "No document type record found for the given code.",
	}

	FORBIDDEN = ErrorMessage{
		Code:        errorPrefix + "11009",
		Message:     "Forbidden",
		Description: "You do not have permission to access this resource.",
	}
)
