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

package services

import (
	"fmt"
	"net/http"

	"github.com/wso2/identity-corporate-onboarding-service/internal/catalog/handler"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/constants"
)

type CatalogService struct {
	handler *handler.CatalogHandler
}

func NewCatalogService(mux *http.ServeMux, apiBasePath string) *CatalogService {
	instance := &CatalogService{
		handler: handler.NewCatalogHandler(),
	}
	instance.RegisterRoutes(mux, apiBasePath)
	return instance
}

func (s *CatalogService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {
	mux.HandleFunc(fmt.Sprintf("GET %s/%s", apiBasePath, constants.DocumentTypesApiPath), s.handler.GetDocumentTypes)
	mux.HandleFunc(fmt.Sprintf("GET %s/%s/", apiBasePath, constants.DocumentTypesApiPath), s.handler.GetDocumentType)
	mux.HandleFunc(fmt.Sprintf("PATCH %s/%s/", apiBasePath, constants.DocumentTypesApiPath), s.handler.UpdateDocumentType)
	mux.HandleFunc(fmt.Sprintf("GET %s/%s", apiBasePath, constants.CaseTypesApiPath), s.handler.GetCaseTypes)
	mux.HandleFunc(fmt.Sprintf("GET %s/%s", apiBasePath, constants.CaseTagsApiPath), s.handler.GetCaseTags)
}
