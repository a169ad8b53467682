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

package store

import (
	"fmt"

	model "github.com/wso2/identity-corporate-onboarding-service/internal/catalog/model"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/database/provider"
	errors2 "github.com/wso2/identity-corporate-onboarding-service/internal/system/errors"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/log"
)

// AddDocumentType inserts a new document type into the catalog.
func AddDocumentType(docType model.DocumentType) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for inserting document type: %s", docType.Code)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_DOCUMENT_TYPE.Code,
			Message:     errors2.UPDATE_DOCUMENT_TYPE.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `INSERT INTO document_types (code, name, category, description, enabled, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`
	tx, err := dbClient.BeginTx()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to begin transaction for inserting document type: %s", docType.Code)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_DOCUMENT_TYPE.Code,
			Message:     errors2.UPDATE_DOCUMENT_TYPE.Message,
			Description: errorMsg,
		}, err)
	}
	_, err = tx.Exec(query, docType.Code, docType.Name, docType.Category, docType.Description,
		docType.Enabled, docType.CreatedAt, docType.UpdatedAt)
	if err != nil {
		if errRollback := tx.Rollback(); errRollback != nil {
			errorMsg := fmt.Sprintf("Failed to rollback inserting document type: %s", docType.Code)
			logger.Debug(errorMsg, log.Error(errRollback))
			return errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.UPDATE_DOCUMENT_TYPE.Code,
				Message:     errors2.UPDATE_DOCUMENT_TYPE.Message,
				Description: errorMsg,
			}, errRollback)
		}
		errorMsg := fmt.Sprintf("Failed to execute query for inserting document type: %s", docType.Code)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_DOCUMENT_TYPE.Code,
			Message:     errors2.UPDATE_DOCUMENT_TYPE.Message,
			Description: errorMsg,
		}, err)
	}
	return tx.Commit()
}

// GetDocumentTypes retrieves the document catalog ordered by code.
func GetDocumentTypes() ([]model.DocumentType, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get db client for fetching document types."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_DOCUMENT_TYPES.Code,
			Message:     errors2.FETCH_DOCUMENT_TYPES.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `SELECT code, name, category, description, enabled, created_at, updated_at
				FROM document_types ORDER BY code ASC`
	results, err := dbClient.ExecuteQuery(query)
	if err != nil {
		errorMsg := "Failed to execute query for fetching document types."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_DOCUMENT_TYPES.Code,
			Message:     errors2.FETCH_DOCUMENT_TYPES.Message,
			Description: errorMsg,
		}, err)
	}

	docTypes := make([]model.DocumentType, 0, len(results))
	for _, row := range results {
		docTypes = append(docTypes, scanDocumentType(row))
	}
	return docTypes, nil
}

// GetDocumentTypeByCode retrieves one document type.
func GetDocumentTypeByCode(code string) (*model.DocumentType, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for fetching document type: %s", code)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_DOCUMENT_TYPES.Code,
			Message:     errors2.FETCH_DOCUMENT_TYPES.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `SELECT code, name, category, description, enabled, created_at, updated_at
				FROM document_types WHERE code = $1`
	results, err := dbClient.ExecuteQuery(query, code)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to execute query for fetching document type: %s", code)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_DOCUMENT_TYPES.Code,
			Message:     errors2.FETCH_DOCUMENT_TYPES.Message,
			Description: errorMsg,
		}, err)
	}
	if len(results) == 0 {
		logger.Debug(fmt.Sprintf("No document type found for code: %s", code))
		return nil, nil
	}
	docType := scanDocumentType(results[0])
	return &docType, nil
}

// UpdateDocumentType replaces the stored catalog entry for docType.Code.
func UpdateDocumentType(docType model.DocumentType) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for updating document type: %s", docType.Code)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_DOCUMENT_TYPE.Code,
			Message:     errors2.UPDATE_DOCUMENT_TYPE.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `UPDATE document_types SET name = $2, category = $3, description = $4, enabled = $5,
				updated_at = $6 WHERE code = $1`
	tx, err := dbClient.BeginTx()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to begin transaction for updating document type: %s", docType.Code)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_DOCUMENT_TYPE.Code,
			Message:     errors2.UPDATE_DOCUMENT_TYPE.Message,
			Description: errorMsg,
		}, err)
	}
	_, err = tx.Exec(query, docType.Code, docType.Name, docType.Category, docType.Description,
		docType.Enabled, docType.UpdatedAt)
	if err != nil {
		if errRollback := tx.Rollback(); errRollback != nil {
			errorMsg := fmt.Sprintf("Failed to rollback updating document type: %s", docType.Code)
			logger.Debug(errorMsg, log.Error(errRollback))
			return errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.UPDATE_DOCUMENT_TYPE.Code,
				Message:     errors2.UPDATE_DOCUMENT_TYPE.Message,
				Description: errorMsg,
			}, errRollback)
		}
		errorMsg := fmt.Sprintf("Failed to execute query for updating document type: %s", docType.Code)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_DOCUMENT_TYPE.Code,
			Message:     errors2.UPDATE_DOCUMENT_TYPE.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Successfully updated document type: %s", docType.Code))
	return tx.Commit()
}

// AddCaseType inserts a case type into the catalog.
func AddCaseType(caseType model.CaseType) error {

	return execCatalogInsert(
		`INSERT INTO case_types (code, name, description) VALUES ($1, $2, $3)`,
		fmt.Sprintf("case type: %s", caseType.Code),
		caseType.Code, caseType.Name, caseType.Description)
}

// GetCaseTypes retrieves all case types ordered by code.
func GetCaseTypes() ([]model.CaseType, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get db client for fetching case types."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_CASE_TYPES.Code,
			Message:     errors2.FETCH_CASE_TYPES.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	results, err := dbClient.ExecuteQuery(`SELECT code, name, description FROM case_types ORDER BY code ASC`)
	if err != nil {
		errorMsg := "Failed to execute query for fetching case types."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_CASE_TYPES.Code,
			Message:     errors2.FETCH_CASE_TYPES.Message,
			Description: errorMsg,
		}, err)
	}

	caseTypes := make([]model.CaseType, 0, len(results))
	for _, row := range results {
		caseTypes = append(caseTypes, model.CaseType{
			Code:        asString(row["code"]),
			Name:        asString(row["name"]),
			Description: asString(row["description"]),
		})
	}
	return caseTypes, nil
}

// AddCaseTag inserts a case tag into the catalog.
func AddCaseTag(tag model.CaseTag) error {

	return execCatalogInsert(
		`INSERT INTO case_tags (code, name) VALUES ($1, $2)`,
		fmt.Sprintf("case tag: %s", tag.Code),
		tag.Code, tag.Name)
}

// GetCaseTags retrieves all case tags ordered by code.
func GetCaseTags() ([]model.CaseTag, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get db client for fetching case tags."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_CASE_TYPES.Code,
			Message:     errors2.FETCH_CASE_TYPES.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	results, err := dbClient.ExecuteQuery(`SELECT code, name FROM case_tags ORDER BY code ASC`)
	if err != nil {
		errorMsg := "Failed to execute query for fetching case tags."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_CASE_TYPES.Code,
			Message:     errors2.FETCH_CASE_TYPES.Message,
			Description: errorMsg,
		}, err)
	}

	tags := make([]model.CaseTag, 0, len(results))
	for _, row := range results {
		tags = append(tags, model.CaseTag{
			Code: asString(row["code"]),
			Name: asString(row["name"]),
		})
	}
	return tags, nil
}

func execCatalogInsert(query, target string, args ...interface{}) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for inserting %s", target)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_CASE_TYPES.Code,
			Message:     errors2.FETCH_CASE_TYPES.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	tx, err := dbClient.BeginTx()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to begin transaction for inserting %s", target)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_CASE_TYPES.Code,
			Message:     errors2.FETCH_CASE_TYPES.Message,
			Description: errorMsg,
		}, err)
	}
	if _, err = tx.Exec(query, args...); err != nil {
		if errRollback := tx.Rollback(); errRollback != nil {
			errorMsg := fmt.Sprintf("Failed to rollback inserting %s", target)
			logger.Debug(errorMsg, log.Error(errRollback))
			return errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.FETCH_CASE_TYPES.Code,
				Message:     errors2.FETCH_CASE_TYPES.Message,
				Description: errorMsg,
			}, errRollback)
		}
		errorMsg := fmt.Sprintf("Failed to execute query for inserting %s", target)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_CASE_TYPES.Code,
			Message:     errors2.FETCH_CASE_TYPES.Message,
			Description: errorMsg,
		}, err)
	}
	return tx.Commit()
}

func scanDocumentType(row map[string]interface{}) model.DocumentType {

	return model.DocumentType{
		Code:        asString(row["code"]),
		Name:        asString(row["name"]),
		Category:    asString(row["category"]),
		Description: asString(row["description"]),
		Enabled:     asBool(row["enabled"]),
		CreatedAt:   asInt64(row["created_at"]),
		UpdatedAt:   asInt64(row["updated_at"]),
	}
}

func asString(raw interface{}) string {

	switch v := raw.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	}
	return ""
}

func asInt64(raw interface{}) int64 {

	switch v := raw.(type) {
	case int64:
		return v
	case int32:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}

func asBool(raw interface{}) bool {

	v, ok := raw.(bool)
	return ok && v
}
