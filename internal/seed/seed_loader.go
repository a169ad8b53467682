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

package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	auditmodel "github.com/wso2/identity-corporate-onboarding-service/internal/audit/model"
	auditservice "github.com/wso2/identity-corporate-onboarding-service/internal/audit/service"
	catalogmodel "github.com/wso2/identity-corporate-onboarding-service/internal/catalog/model"
	catalogstore "github.com/wso2/identity-corporate-onboarding-service/internal/catalog/store"
	rulesmodel "github.com/wso2/identity-corporate-onboarding-service/internal/rules/model"
	rulesprovider "github.com/wso2/identity-corporate-onboarding-service/internal/rules/provider"
	errors2 "github.com/wso2/identity-corporate-onboarding-service/internal/system/errors"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/log"
)

type caseCatalogFile struct {
	CaseTypes []catalogmodel.CaseType `json:"case_types"`
	CaseTags  []catalogmodel.CaseTag  `json:"case_tags"`
}

// LoadSeedData loads the JSON seed files from the given directory into the
// database, skipping records that already exist. It returns the number of
// inserted records per seed file.
func LoadSeedData(cosHome, seedDir string) (map[string]int, error) {

	logger := log.GetLogger()
	dir := filepath.Join(cosHome, seedDir)
	counts := map[string]int{}

	inserted, err := loadDocumentTypes(filepath.Join(dir, "document_types.json"))
	if err != nil {
		return nil, err
	}
	counts["document_types"] = inserted

	caseTypes, caseTags, err := loadCaseCatalog(filepath.Join(dir, "case_types.json"))
	if err != nil {
		return nil, err
	}
	counts["case_types"] = caseTypes
	counts["case_tags"] = caseTags

	inserted, err = loadRules(filepath.Join(dir, "rules.json"))
	if err != nil {
		return nil, err
	}
	counts["rules"] = inserted

	logger.Info("Seed data loaded",
		log.Int("document_types", counts["document_types"]),
		log.Int("case_types", counts["case_types"]),
		log.Int("case_tags", counts["case_tags"]),
		log.Int("rules", counts["rules"]))
	logger.Audit(log.AuditEvent{
		InitiatorType: log.InitiatorTypeSystem,
		TargetID:      seedDir,
		TargetType:    log.TargetTypeDocumentType,
		ActionID:      log.ActionSeedLoad,
	})
	auditservice.RecordEventBestEffort(auditmodel.EventSeedLoaded, "seed", seedDir,
		nil, counts, "Seed data loaded at startup")

	return counts, nil
}

func loadDocumentTypes(file string) (int, error) {

	var docTypes []catalogmodel.DocumentType
	if err := readSeedFile(file, &docTypes); err != nil {
		return 0, err
	}

	existing, err := catalogstore.GetDocumentTypes()
	if err != nil {
		return 0, err
	}
	known := make(map[string]bool, len(existing))
	for _, docType := range existing {
		known[docType.Code] = true
	}

	now := time.Now().Unix()
	inserted := 0
	for _, docType := range docTypes {
		if known[docType.Code] {
			continue
		}
		docType.Enabled = true
		docType.CreatedAt = now
		docType.UpdatedAt = now
		if err := catalogstore.AddDocumentType(docType); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

func loadCaseCatalog(file string) (int, int, error) {

	var catalog caseCatalogFile
	if err := readSeedFile(file, &catalog); err != nil {
		return 0, 0, err
	}

	existingTypes, err := catalogstore.GetCaseTypes()
	if err != nil {
		return 0, 0, err
	}
	knownTypes := make(map[string]bool, len(existingTypes))
	for _, caseType := range existingTypes {
		knownTypes[caseType.Code] = true
	}

	insertedTypes := 0
	for _, caseType := range catalog.CaseTypes {
		if knownTypes[caseType.Code] {
			continue
		}
		if err := catalogstore.AddCaseType(caseType); err != nil {
			return insertedTypes, 0, err
		}
		insertedTypes++
	}

	existingTags, err := catalogstore.GetCaseTags()
	if err != nil {
		return insertedTypes, 0, err
	}
	knownTags := make(map[string]bool, len(existingTags))
	for _, tag := range existingTags {
		knownTags[tag.Code] = true
	}

	insertedTags := 0
	for _, tag := range catalog.CaseTags {
		if knownTags[tag.Code] {
			continue
		}
		if err := catalogstore.AddCaseTag(tag); err != nil {
			return insertedTypes, insertedTags, err
		}
		insertedTags++
	}
	return insertedTypes, insertedTags, nil
}

func loadRules(file string) (int, error) {

	var rules []rulesmodel.Rule
	if err := readSeedFile(file, &rules); err != nil {
		return 0, err
	}

	ruleService := rulesprovider.NewRuleProvider().GetRuleService()
	existing, err := ruleService.GetRules()
	if err != nil {
		return 0, err
	}
	known := make(map[string]bool, len(existing))
	for _, rule := range existing {
		known[rule.RuleName] = true
	}

	inserted := 0
	for _, rule := range rules {
		if known[rule.RuleName] {
			continue
		}
		if _, err := ruleService.AddRule(rule); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

func readSeedFile(file string, target interface{}) error {

	data, err := os.ReadFile(file)
	if err != nil {
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.SEED_LOAD.Code,
			Message:     errors2.SEED_LOAD.Message,
			Description: fmt.Sprintf("Failed to read seed file: %s", file),
		}, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.SEED_LOAD.Code,
			Message:     errors2.SEED_LOAD.Message,
			Description: fmt.Sprintf("Failed to parse seed file: %s", file),
		}, err)
	}
	return nil
}
