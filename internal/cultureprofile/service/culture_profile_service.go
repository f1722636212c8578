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
	"time"

	"github.com/google/uuid"
	model "github.com/wso2/liftout-marketplace-service/internal/cultureprofile/model"
	"github.com/wso2/liftout-marketplace-service/internal/cultureprofile/store"
	"github.com/wso2/liftout-marketplace-service/internal/system/constants"
	errors2 "github.com/wso2/liftout-marketplace-service/internal/system/errors"
	"github.com/wso2/liftout-marketplace-service/internal/system/pagination"
)

// CultureProfileServiceInterface defines the service interface.
type CultureProfileServiceInterface interface {
	AddCultureProfile(profile model.CultureProfile) (*model.CultureProfile, error)
	GetCultureProfile(profileId string) (*model.CultureProfile, error)
	GetCultureProfilesByEntity(entityId string, limit int, after *pagination.Cursor) (*model.CultureProfileListResponse, error)
	ListCultureProfiles(limit int, after *pagination.Cursor) (*model.CultureProfileListResponse, error)
	DeleteCultureProfile(profileId string) error
}

// CultureProfileService is the default implementation.
type CultureProfileService struct{}

// GetCultureProfileService returns a new instance.
func GetCultureProfileService() CultureProfileServiceInterface {
	return &CultureProfileService{}
}

// AddCultureProfile validates and stores a new culture profile snapshot.
// Re-assessing an entity inserts a fresh snapshot; earlier snapshots are superseded, not mutated.
func (cs *CultureProfileService) AddCultureProfile(profile model.CultureProfile) (*model.CultureProfile, error) {

	if err := validateCultureProfile(profile); err != nil {
		return nil, err
	}

	if profile.ProfileId == "" {
		profile.ProfileId = uuid.New().String()
	}
	if profile.AssessmentDate == 0 {
		profile.AssessmentDate = time.Now().Unix()
	}

	if err := store.AddCultureProfile(profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetCultureProfile retrieves a profile snapshot by id.
func (cs *CultureProfileService) GetCultureProfile(profileId string) (*model.CultureProfile, error) {

	profile, err := store.GetCultureProfileByID(profileId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.CULTURE_PROFILE_NOT_FOUND.Code,
			Message:     errors2.CULTURE_PROFILE_NOT_FOUND.Message,
			Description: fmt.Sprintf("No culture profile found for id: %s", profileId),
		}, http.StatusNotFound)
	}
	return profile, nil
}

// GetCultureProfilesByEntity retrieves one page of the snapshots recorded for
// an entity, newest first.
func (cs *CultureProfileService) GetCultureProfilesByEntity(entityId string, limit int,
	after *pagination.Cursor) (*model.CultureProfileListResponse, error) {

	profiles, err := store.GetCultureProfilePage(entityId, limit, after)
	if err != nil {
		return nil, err
	}
	return profilePage(profiles, limit), nil
}

// ListCultureProfiles retrieves one page of all stored profiles, newest first.
func (cs *CultureProfileService) ListCultureProfiles(limit int,
	after *pagination.Cursor) (*model.CultureProfileListResponse, error) {

	profiles, err := store.GetCultureProfilePage("", limit, after)
	if err != nil {
		return nil, err
	}
	return profilePage(profiles, limit), nil
}

// profilePage trims the over-fetched row and points the next cursor at the
// last snapshot returned.
func profilePage(profiles []model.CultureProfile, limit int) *model.CultureProfileListResponse {

	page := model.CultureProfileListResponse{Profiles: profiles}
	if len(profiles) > limit {
		page.Profiles = profiles[:limit]
		last := page.Profiles[limit-1]
		page.NextCursor = pagination.EncodeCursor(pagination.Cursor{
			Timestamp: last.AssessmentDate,
			Id:        last.ProfileId,
		})
	}
	if page.Profiles == nil {
		page.Profiles = []model.CultureProfile{}
	}
	page.Count = len(page.Profiles)
	page.PageSize = limit
	return &page
}

// DeleteCultureProfile removes a profile snapshot.
func (cs *CultureProfileService) DeleteCultureProfile(profileId string) error {

	if profileId == "" {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: "Profile id is required for deletion.",
		}, http.StatusBadRequest)
	}
	return store.DeleteCultureProfile(profileId)
}

// validateCultureProfile rejects malformed profiles at the boundary so the
// assessment engine can assume well-formed input.
func validateCultureProfile(profile model.CultureProfile) error {

	if profile.EntityId == "" {
		return validationError("entity_id is required.")
	}
	if !constants.AllowedEntityTypes[profile.EntityType] {
		return validationError("entity_type must be one of: team, company.")
	}

	for name, score := range dimensionScores(profile.Dimensions) {
		if score < 0 || score > 100 {
			return validationError(fmt.Sprintf("Dimension %s must be within [0,100].", name))
		}
	}

	if profile.ConfidenceLevel < 0 || profile.ConfidenceLevel > 100 {
		return validationError("confidence_level must be within [0,100].")
	}

	for _, value := range profile.CoreValues {
		if !constants.AllowedValueCategories[value.Category] {
			return validationError(fmt.Sprintf("Unknown core value category: %s", value.Category))
		}
		if value.Importance < 0 || value.Importance > 100 {
			return validationError(fmt.Sprintf("Importance of core value %s must be within [0,100].", value.Name))
		}
	}

	if !constants.AllowedLeadershipApproaches[profile.Leadership.Approach] {
		return validationError(fmt.Sprintf("Unknown leadership approach: %s", profile.Leadership.Approach))
	}

	if profile.TeamDynamics != nil && profile.EntityType != constants.EntityTypeTeam {
		return validationError("team_dynamics is only valid for team profiles.")
	}

	for name, score := range styleScores(profile) {
		if score < 0 || score > 100 {
			return validationError(fmt.Sprintf("Score %s must be within [0,100].", name))
		}
	}

	return nil
}

// dimensionScores maps the eight dimension fields to their names for validation.
func dimensionScores(d model.CultureDimensions) map[string]float64 {
	return map[string]float64{
		"power_distance":                  d.PowerDistance,
		"individualism_vs_collectivism":   d.IndividualismVsCollectivism,
		"uncertainty_avoidance":           d.UncertaintyAvoidance,
		"long_term_orientation":           d.LongTermOrientation,
		"innovation_vs_stability":         d.InnovationVsStability,
		"process_vs_results":              d.ProcessVsResults,
		"risk_tolerance":                  d.RiskTolerance,
		"transparency_vs_confidentiality": d.TransparencyVsConfidentiality,
	}
}

func styleScores(profile model.CultureProfile) map[string]float64 {
	scores := map[string]float64{
		"communication.directness":         profile.Communication.Directness,
		"communication.formality":          profile.Communication.Formality,
		"communication.frequency":          profile.Communication.Frequency,
		"decision_making.centralization":   profile.DecisionMaking.Centralization,
		"decision_making.speed":            profile.DecisionMaking.Speed,
		"decision_making.data_orientation": profile.DecisionMaking.DataOrientation,
		"conflict_resolution.directness":   profile.ConflictResolution.Directness,
		"conflict_resolution.formality":    profile.ConflictResolution.Formality,
		"work_environment.flexibility":     profile.WorkEnvironment.Flexibility,
		"work_environment.autonomy":        profile.WorkEnvironment.Autonomy,
		"work_environment.collaboration":   profile.WorkEnvironment.Collaboration,
		"leadership.support_level":         profile.Leadership.SupportLevel,
		"leadership.development_focus":     profile.Leadership.DevelopmentFocus,
		"performance.meritocracy":          profile.Performance.Meritocracy,
		"performance.goal_orientation":     profile.Performance.GoalOrientation,
		"performance.accountability_level": profile.Performance.AccountabilityLevel,
	}
	if profile.TeamDynamics != nil {
		scores["team_dynamics.cohesion"] = profile.TeamDynamics.Cohesion
		scores["team_dynamics.trust_level"] = profile.TeamDynamics.TrustLevel
		scores["team_dynamics.communication_quality"] = profile.TeamDynamics.CommunicationQuality
	}
	return scores
}

func validationError(description string) error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.CULTURE_PROFILE_VALIDATION.Code,
		Message:     errors2.CULTURE_PROFILE_VALIDATION.Message,
		Description: description,
	}, http.StatusBadRequest)
}
