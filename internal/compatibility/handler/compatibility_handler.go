/*
 * Copyright (c) 2025-2026, WSO2 LLC. (http://www.wso2.com).
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

	"github.com/wso2/liftout-marketplace-service/internal/compatibility/provider"
	"github.com/wso2/liftout-marketplace-service/internal/system/errors"
	"github.com/wso2/liftout-marketplace-service/internal/system/utils"
)

type CompatibilityHandler struct{}

func NewCompatibilityHandler() *CompatibilityHandler {
	return &CompatibilityHandler{}
}

type assessCompatibilityRequest struct {
	TeamProfileId    string `json:"team_profile_id"`
	CompanyProfileId string `json:"company_profile_id"`
}

// AssessCompatibility handles POST /compatibility-assessments
func (h *CompatibilityHandler) AssessCompatibility(w http.ResponseWriter, r *http.Request) {

	if err := utils.AuthnAndAuthz(r, "compatibility_assessment:create"); err != nil {
		utils.HandleError(w, err)
		return
	}

	var request assessCompatibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.ASSESSMENT_VALIDATION.Code,
			Message:     errors.ASSESSMENT_VALIDATION.Message,
			Description: utils.HandleDecodeError(err, "compatibility assessment"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	service := provider.NewCompatibilityProvider().GetCompatibilityService()
	assessment, err := service.AssessCompatibility(request.TeamProfileId, request.CompanyProfileId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, assessment)
}

// GetAssessment handles GET /compatibility-assessments/{id}
func (h *CompatibilityHandler) GetAssessment(w http.ResponseWriter, r *http.Request) {

	if err := utils.AuthnAndAuthz(r, "compatibility_assessment:view"); err != nil {
		utils.HandleError(w, err)
		return
	}

	assessmentId := r.PathValue("id")
	if assessmentId == "" {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: "Assessment id is required to fetch the assessment.",
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	service := provider.NewCompatibilityProvider().GetCompatibilityService()
	assessment, err := service.GetAssessment(assessmentId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, assessment)
}

// GetAssessments handles GET /compatibility-assessments?team_profile_id=&company_profile_id=
func (h *CompatibilityHandler) GetAssessments(w http.ResponseWriter, r *http.Request) {

	if err := utils.AuthnAndAuthz(r, "compatibility_assessment:view"); err != nil {
		utils.HandleError(w, err)
		return
	}

	teamProfileId := r.URL.Query().Get("team_profile_id")
	companyProfileId := r.URL.Query().Get("company_profile_id")
	if teamProfileId == "" || companyProfileId == "" {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: "Both team_profile_id and company_profile_id query parameters are required.",
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	service := provider.NewCompatibilityProvider().GetCompatibilityService()
	assessments, err := service.GetAssessmentsForPair(teamProfileId, companyProfileId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, assessments)
}
