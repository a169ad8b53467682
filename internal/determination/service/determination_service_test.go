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
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/identity-corporate-onboarding-service/internal/determination/model"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/constants"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/errors"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/log"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	os.Exit(m.Run())
}

func validRequest() model.DeterminationRequest {
	return model.DeterminationRequest{
		BusinessRegNo: "110-81-12345",
		CorpName:      "Acme Trading Co., Ltd.",
		CustomerType:  constants.ForProfitCorpDomestic,
		AccountType:   constants.BrokerageGeneral,
		ApplicantType: constants.RepresentativeSelf,
	}
}

func requireValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	clientErr, ok := err.(*errors.ClientError)
	require.True(t, ok, "expected a ClientError")
	assert.Equal(t, http.StatusBadRequest, clientErr.StatusCode)
}

// ---------------------------------------------------------------------------
// Determine – request validation (no DB required)
// ---------------------------------------------------------------------------

func TestDetermine_MissingBusinessRegNo_Rejected(t *testing.T) {
	svc := &DeterminationService{}
	req := validRequest()
	req.BusinessRegNo = ""
	_, err := svc.Determine(req)
	requireValidationError(t, err)
}

func TestDetermine_MissingCorpName_Rejected(t *testing.T) {
	svc := &DeterminationService{}
	req := validRequest()
	req.CorpName = ""
	_, err := svc.Determine(req)
	requireValidationError(t, err)
}

func TestDetermine_MissingCustomerType_Rejected(t *testing.T) {
	svc := &DeterminationService{}
	req := validRequest()
	req.CustomerType = ""
	_, err := svc.Determine(req)
	requireValidationError(t, err)
}

func TestDetermine_UnknownCustomerType_Rejected(t *testing.T) {
	svc := &DeterminationService{}
	req := validRequest()
	req.CustomerType = "PARTNERSHIP"
	_, err := svc.Determine(req)
	requireValidationError(t, err)
}

func TestDetermine_UnknownAccountType_Rejected(t *testing.T) {
	svc := &DeterminationService{}
	req := validRequest()
	req.AccountType = "SAVINGS"
	_, err := svc.Determine(req)
	requireValidationError(t, err)
}

func TestDetermine_UnknownApplicantType_Rejected(t *testing.T) {
	svc := &DeterminationService{}
	req := validRequest()
	req.ApplicantType = "COURIER"
	_, err := svc.Determine(req)
	requireValidationError(t, err)
}

func TestDetermine_UnknownBusinessStatus_Rejected(t *testing.T) {
	svc := &DeterminationService{}
	req := validRequest()
	req.BusinessStatus = "PENDING"
	_, err := svc.Determine(req)
	requireValidationError(t, err)
}

// ---------------------------------------------------------------------------
// Fact set construction
// ---------------------------------------------------------------------------

func TestFactSet_OwnershipDefaultsToConfirmable(t *testing.T) {
	facts := validRequest().FactSet()
	assert.Equal(t, true, facts.ResolveField("ubo_confirmable"))
	assert.Equal(t, true, facts.ResolveField("ownership_simple"))
}

func TestFactSet_ExplicitOwnershipOverridesDefault(t *testing.T) {
	req := validRequest()
	notConfirmable := false
	req.UboConfirmable = &notConfirmable
	facts := req.FactSet()
	assert.Equal(t, false, facts.ResolveField("ubo_confirmable"))
}

func TestFactSet_RiskFlagsAddressableByDottedPath(t *testing.T) {
	req := validRequest()
	req.RiskFlags.PepSanction = true
	facts := req.FactSet()
	assert.Equal(t, true, facts.ResolveField("risk_flags.pep_sanction"))
	assert.Equal(t, false, facts.ResolveField("risk_flags.high_risk_country"))
}
