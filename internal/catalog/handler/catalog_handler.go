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

package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	catalogModel "github.com/wso2/identity-corporate-onboarding-service/internal/catalog/model"
	"github.com/wso2/identity-corporate-onboarding-service/internal/catalog/provider"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/errors"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/utils"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// GetDocumentTypes handles GET /document-types
func (h *CatalogHandler) GetDocumentTypes(w http.ResponseWriter, r *http.Request) {

	if err := utils.Authn(r); err != nil {
		utils.HandleError(w, err)
		return
	}
	service := provider.NewCatalogProvider().GetCatalogService()
	docTypes, err := service.GetDocumentTypes()
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(docTypes)
}

// GetDocumentType handles GET /document-types/{code}
func (h *CatalogHandler) GetDocumentType(w http.ResponseWriter, r *http.Request) {

	if err := utils.Authn(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	code := extractLastPathSegment(r.URL.Path)
	if code == "" {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: "Document type code is required to fetch the document type",
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	service := provider.NewCatalogProvider().GetCatalogService()
	docType, err := service.GetDocumentType(code)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(docType)
}

// UpdateDocumentType handles PATCH /document-types/{code}
func (h *CatalogHandler) UpdateDocumentType(w http.ResponseWriter, r *http.Request) {

	if err := utils.Authn(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	code := extractLastPathSegment(r.URL.Path)
	if code == "" {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: "Document type code is required to update the document type",
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	var update catalogModel.DocumentTypeUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "document type update"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	service := provider.NewCatalogProvider().GetCatalogService()
	updated, err := service.UpdateDocumentType(code, update)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(updated)
}

// GetCaseTypes handles GET /case-types
func (h *CatalogHandler) GetCaseTypes(w http.ResponseWriter, r *http.Request) {

	if err := utils.Authn(r); err != nil {
		utils.HandleError(w, err)
		return
	}
	service := provider.NewCatalogProvider().GetCatalogService()
	caseTypes, err := service.GetCaseTypes()
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(caseTypes)
}

// GetCaseTags handles GET /case-tags
func (h *CatalogHandler) GetCaseTags(w http.ResponseWriter, r *http.Request) {

	if err := utils.Authn(r); err != nil {
		utils.HandleError(w, err)
		return
	}
	service := provider.NewCatalogProvider().GetCatalogService()
	tags, err := service.GetCaseTags()
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(tags)
}

func extractLastPathSegment(path string) string {

	trimmed := strings.TrimSuffix(path, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return ""
	}
	return trimmed[idx+1:]
}
