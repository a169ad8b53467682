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
	"net/http"
	"time"

	auditmodel "github.com/wso2/identity-corporate-onboarding-service/internal/audit/model"
	auditservice "github.com/wso2/identity-corporate-onboarding-service/internal/audit/service"
	model "github.com/wso2/identity-corporate-onboarding-service/internal/catalog/model"
	"github.com/wso2/identity-corporate-onboarding-service/internal/catalog/store"
	errors2 "github.com/wso2/identity-corporate-onboarding-service/internal/system/errors"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/log"
)

// CatalogServiceInterface defines the document and case catalog service.
type CatalogServiceInterface interface {
	GetDocumentTypes() ([]model.DocumentType, error)
	GetDocumentType(code string) (*model.DocumentType, error)
	UpdateDocumentType(code string, update model.DocumentTypeUpdateRequest) (*model.DocumentType, error)
	GetCaseTypes() ([]model.CaseType, error)
	GetCaseTags() ([]model.CaseTag, error)
}

// CatalogService is the default implementation.
type CatalogService struct{}

// GetCatalogService returns a new instance.
func GetCatalogService() CatalogServiceInterface {
	return &CatalogService{}
}

// GetDocumentTypes retrieves the document catalog.
func (cs *CatalogService) GetDocumentTypes() ([]model.DocumentType, error) {

	docTypes, err := store.GetDocumentTypes()
	if err != nil {
		return nil, err
	}
	if len(docTypes) == 0 {
		return []model.DocumentType{}, nil
	}
	return docTypes, nil
}

// GetDocumentType retrieves one document type by code.
func (cs *CatalogService) GetDocumentType(code string) (*model.DocumentType, error) {

	docType, err := store.GetDocumentTypeByCode(code)
	if err != nil {
		return nil, err
	}
	if docType == nil {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.DOCUMENT_TYPE_NOT_FOUND.Code,
			Message:     errors2.DOCUMENT_TYPE_NOT_FOUND.Message,
			Description: errors2.DOCUMENT_TYPE_NOT_FOUND.Description,
		}, http.StatusNotFound)
	}
	return docType, nil
}

// UpdateDocumentType applies a partial update to a catalog entry.
func (cs *CatalogService) UpdateDocumentType(code string,
	update model.DocumentTypeUpdateRequest) (*model.DocumentType, error) {

	if code == "" {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: "Document type code is required for update.",
		}, http.StatusBadRequest)
	}

	existing, err := cs.GetDocumentType(code)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if update.Name != nil {
		updated.Name = *update.Name
	}
	if update.Category != nil {
		updated.Category = *update.Category
	}
	if update.Description != nil {
		updated.Description = *update.Description
	}
	if update.Enabled != nil {
		updated.Enabled = *update.Enabled
	}
	if updated.Name == "" {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: "Document type name must not be empty.",
		}, http.StatusBadRequest)
	}
	updated.UpdatedAt = time.Now().Unix()

	if err := store.UpdateDocumentType(updated); err != nil {
		return nil, err
	}
	log.GetLogger().Audit(log.AuditEvent{
		InitiatorType: log.InitiatorTypeAdmin,
		TargetID:      code,
		TargetType:    log.TargetTypeDocumentType,
		ActionID:      log.ActionUpdateDocumentType,
	})
	auditservice.RecordEventBestEffort(auditmodel.EventDocTypeEdit, "document_type", code,
		existing, updated, "Document type updated")
	return &updated, nil
}

// GetCaseTypes retrieves all case types.
func (cs *CatalogService) GetCaseTypes() ([]model.CaseType, error) {

	caseTypes, err := store.GetCaseTypes()
	if err != nil {
		return nil, err
	}
	if len(caseTypes) == 0 {
		return []model.CaseType{}, nil
	}
	return caseTypes, nil
}

// GetCaseTags retrieves all case tags.
func (cs *CatalogService) GetCaseTags() ([]model.CaseTag, error) {

	tags, err := store.GetCaseTags()
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		return []model.CaseTag{}, nil
	}
	return tags, nil
}
