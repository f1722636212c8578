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

package service

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	model "github.com/wso2/liftout-marketplace-service/internal/compatibility/model"
	"github.com/wso2/liftout-marketplace-service/internal/compatibility/store"
	profileProvider "github.com/wso2/liftout-marketplace-service/internal/cultureprofile/provider"
	"github.com/wso2/liftout-marketplace-service/internal/system/cache"
	"github.com/wso2/liftout-marketplace-service/internal/system/config"
	"github.com/wso2/liftout-marketplace-service/internal/system/constants"
	errors2 "github.com/wso2/liftout-marketplace-service/internal/system/errors"
	"github.com/wso2/liftout-marketplace-service/internal/system/log"
)

const defaultAssessmentCacheTTL = 10 * time.Minute

var (
	assessmentCache     *cache.Cache
	assessmentCacheOnce sync.Once
)

// CompatibilityServiceInterface defines the service interface.
type CompatibilityServiceInterface interface {
	AssessCompatibility(teamProfileId, companyProfileId string) (*model.CompatibilityAssessment, error)
	GetAssessment(assessmentId string) (*model.CompatibilityAssessment, error)
	GetAssessmentsForPair(teamProfileId, companyProfileId string) ([]model.CompatibilityAssessment, error)
}

// CompatibilityService is the default implementation.
type CompatibilityService struct{}

// GetCompatibilityService returns a new instance.
func GetCompatibilityService() CompatibilityServiceInterface {
	return &CompatibilityService{}
}

// AssessCompatibility loads both profile snapshots, runs the assessment engine,
// persists the result, and memoizes it. The engine is deterministic over its
// input snapshots, so the cache is invalidated implicitly: a re-assessed profile
// has a new snapshot id and therefore a new cache key.
func (cs *CompatibilityService) AssessCompatibility(teamProfileId, companyProfileId string) (*model.CompatibilityAssessment, error) {

	if teamProfileId == "" || companyProfileId == "" {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.ASSESSMENT_VALIDATION.Code,
			Message:     errors2.ASSESSMENT_VALIDATION.Message,
			Description: "Both team_profile_id and company_profile_id are required.",
		}, http.StatusBadRequest)
	}

	cacheKey := fmt.Sprintf("assessment:%s:%s", teamProfileId, companyProfileId)
	if cached, found := getAssessmentCache().Get(cacheKey); found {
		if assessment, ok := cached.(model.CompatibilityAssessment); ok {
			return &assessment, nil
		}
	}

	profileService := profileProvider.NewCultureProfileProvider().GetCultureProfileService()

	teamProfile, err := profileService.GetCultureProfile(teamProfileId)
	if err != nil {
		return nil, err
	}
	companyProfile, err := profileService.GetCultureProfile(companyProfileId)
	if err != nil {
		return nil, err
	}

	if teamProfile.EntityType != constants.EntityTypeTeam || companyProfile.EntityType != constants.EntityTypeCompany {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.ASSESSMENT_VALIDATION.Code,
			Message:     errors2.ASSESSMENT_VALIDATION.Message,
			Description: "team_profile_id must reference a team profile and company_profile_id a company profile.",
		}, http.StatusBadRequest)
	}

	assessment := AssessCultureCompatibility(*teamProfile, *companyProfile)

	if err := store.AddAssessment(assessment); err != nil {
		return nil, err
	}

	getAssessmentCache().Set(cacheKey, assessment)
	log.GetLogger().Info(fmt.Sprintf("Assessed compatibility for team profile %s and company profile %s: %s",
		teamProfileId, companyProfileId, assessment.CompatibilityLevel))

	return &assessment, nil
}

// GetAssessment retrieves a stored assessment by id.
func (cs *CompatibilityService) GetAssessment(assessmentId string) (*model.CompatibilityAssessment, error) {

	assessment, err := store.GetAssessmentByID(assessmentId)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.ASSESSMENT_NOT_FOUND.Code,
			Message:     errors2.ASSESSMENT_NOT_FOUND.Message,
			Description: fmt.Sprintf("No compatibility assessment found for id: %s", assessmentId),
		}, http.StatusNotFound)
	}
	return assessment, nil
}

// GetAssessmentsForPair retrieves all assessments recorded for a profile pair,
// newest first.
func (cs *CompatibilityService) GetAssessmentsForPair(teamProfileId, companyProfileId string) ([]model.CompatibilityAssessment, error) {

	assessments, err := store.GetAssessmentsForPair(teamProfileId, companyProfileId)
	if err != nil {
		return nil, err
	}
	if len(assessments) == 0 {
		return []model.CompatibilityAssessment{}, nil
	}
	return assessments, nil
}

func getAssessmentCache() *cache.Cache {

	assessmentCacheOnce.Do(func() {
		ttl := defaultAssessmentCacheTTL
		if configured := config.GetLMSRuntime().Config.Assessment.CacheTTLSeconds; configured > 0 {
			ttl = time.Duration(configured) * time.Second
		}
		assessmentCache = cache.NewCache(ttl)
	})
	return assessmentCache
}
