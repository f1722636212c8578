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

	profileModel "github.com/wso2/liftout-marketplace-service/internal/cultureprofile/model"
	"github.com/wso2/liftout-marketplace-service/internal/cultureprofile/provider"
	"github.com/wso2/liftout-marketplace-service/internal/system/errors"
	"github.com/wso2/liftout-marketplace-service/internal/system/pagination"
	"github.com/wso2/liftout-marketplace-service/internal/system/utils"
)

type CultureProfileHandler struct{}

func NewCultureProfileHandler() *CultureProfileHandler {
	return &CultureProfileHandler{}
}

// GetCultureProfiles handles GET /culture-profiles. Supports filtering by
// entity_id and cursor paging via limit and cursor.
func (h *CultureProfileHandler) GetCultureProfiles(w http.ResponseWriter, r *http.Request) {

	if err := utils.AuthnAndAuthz(r, "culture_profile:view"); err != nil {
		utils.HandleError(w, err)
		return
	}

	limit, err := pagination.ParseLimit(r)
	if err != nil {
		utils.HandleError(w, queryParamError("Invalid limit query parameter."))
		return
	}
	cursor, err := pagination.DecodeCursor(r.URL.Query().Get("cursor"))
	if err != nil {
		utils.HandleError(w, queryParamError("Invalid cursor query parameter."))
		return
	}

	service := provider.NewCultureProfileProvider().GetCultureProfileService()

	var page *profileModel.CultureProfileListResponse
	if entityId := r.URL.Query().Get("entity_id"); entityId != "" {
		page, err = service.GetCultureProfilesByEntity(entityId, limit, cursor)
	} else {
		page, err = service.ListCultureProfiles(limit, cursor)
	}
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, page)
}

func queryParamError(description string) error {
	return errors.NewClientError(errors.ErrorMessage{
		Code:        errors.BAD_REQUEST.Code,
		Message:     errors.BAD_REQUEST.Message,
		Description: description,
	}, http.StatusBadRequest)
}

// AddCultureProfile handles POST /culture-profiles
func (h *CultureProfileHandler) AddCultureProfile(w http.ResponseWriter, r *http.Request) {

	if err := utils.AuthnAndAuthz(r, "culture_profile:create"); err != nil {
		utils.HandleError(w, err)
		return
	}

	var profile profileModel.CultureProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.CULTURE_PROFILE_VALIDATION.Code,
			Message:     errors.CULTURE_PROFILE_VALIDATION.Message,
			Description: utils.HandleDecodeError(err, "culture profile"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	service := provider.NewCultureProfileProvider().GetCultureProfileService()
	created, err := service.AddCultureProfile(profile)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, created)
}

// GetCultureProfile handles GET /culture-profiles/{id}
func (h *CultureProfileHandler) GetCultureProfile(w http.ResponseWriter, r *http.Request) {

	if err := utils.AuthnAndAuthz(r, "culture_profile:view"); err != nil {
		utils.HandleError(w, err)
		return
	}

	profileId := r.PathValue("id")
	if profileId == "" {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: "Profile id is required to fetch the culture profile.",
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	service := provider.NewCultureProfileProvider().GetCultureProfileService()
	profile, err := service.GetCultureProfile(profileId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, profile)
}

// DeleteCultureProfile handles DELETE /culture-profiles/{id}
func (h *CultureProfileHandler) DeleteCultureProfile(w http.ResponseWriter, r *http.Request) {

	if err := utils.AuthnAndAuthz(r, "culture_profile:delete"); err != nil {
		utils.HandleError(w, err)
		return
	}

	profileId := r.PathValue("id")
	service := provider.NewCultureProfileProvider().GetCultureProfileService()
	if err := service.DeleteCultureProfile(profileId); err != nil {
		utils.HandleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
