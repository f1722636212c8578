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

package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	compatibilityProvider "github.com/wso2/liftout-marketplace-service/internal/compatibility/provider"
	profileModel "github.com/wso2/liftout-marketplace-service/internal/cultureprofile/model"
	profileProvider "github.com/wso2/liftout-marketplace-service/internal/cultureprofile/provider"
	integrationModel "github.com/wso2/liftout-marketplace-service/internal/integration/model"
	integrationProvider "github.com/wso2/liftout-marketplace-service/internal/integration/provider"
	"github.com/wso2/liftout-marketplace-service/internal/system/constants"
	errors2 "github.com/wso2/liftout-marketplace-service/internal/system/errors"
	"github.com/wso2/liftout-marketplace-service/internal/system/pagination"
)

func buildCultureProfile(entityId, entityType string) profileModel.CultureProfile {
	profile := profileModel.CultureProfile{
		EntityId:   entityId,
		EntityType: entityType,
		Dimensions: profileModel.CultureDimensions{
			PowerDistance:                 30,
			IndividualismVsCollectivism:   40,
			UncertaintyAvoidance:          50,
			LongTermOrientation:           60,
			InnovationVsStability:         75,
			ProcessVsResults:              65,
			RiskTolerance:                 70,
			TransparencyVsConfidentiality: 80,
		},
		CoreValues: []profileModel.CoreValue{
			{Name: "Excellence", Importance: 90, Category: "performance"},
		},
		Communication:  profileModel.CommunicationStyle{Directness: 80, Formality: 40, Frequency: 70},
		DecisionMaking: profileModel.DecisionMakingStyle{Centralization: 30, Speed: 75, DataOrientation: 80},
		Leadership: profileModel.LeadershipStyle{
			Approach:     constants.LeadershipDemocratic,
			SupportLevel: 80,
		},
		Performance: profileModel.PerformanceOrientation{
			Meritocracy: 85, GoalOrientation: 80, AccountabilityLevel: 75,
		},
		ConfidenceLevel: 80,
	}
	if entityType == constants.EntityTypeTeam {
		profile.TeamDynamics = &profileModel.TeamDynamics{
			Cohesion: 85, TrustLevel: 90, CommunicationQuality: 80,
		}
	}
	return profile
}

func TestCultureProfileLifecycle(t *testing.T) {

	service := profileProvider.NewCultureProfileProvider().GetCultureProfileService()

	created, err := service.AddCultureProfile(buildCultureProfile("team-lifecycle", constants.EntityTypeTeam))
	require.NoError(t, err)
	require.NotEmpty(t, created.ProfileId)
	assert.NotZero(t, created.AssessmentDate)

	fetched, err := service.GetCultureProfile(created.ProfileId)
	require.NoError(t, err)
	assert.Equal(t, "team-lifecycle", fetched.EntityId)
	assert.Equal(t, constants.EntityTypeTeam, fetched.EntityType)
	assert.Equal(t, 75.0, fetched.Dimensions.InnovationVsStability)
	require.NotNil(t, fetched.TeamDynamics)
	assert.Equal(t, 90.0, fetched.TeamDynamics.TrustLevel)

	byEntity, err := service.GetCultureProfilesByEntity("team-lifecycle", 10, nil)
	require.NoError(t, err)
	require.Len(t, byEntity.Profiles, 1)
	assert.Equal(t, 1, byEntity.Count)
	assert.Empty(t, byEntity.NextCursor)

	require.NoError(t, service.DeleteCultureProfile(created.ProfileId))

	_, err = service.GetCultureProfile(created.ProfileId)
	require.Error(t, err)
	clientError, ok := err.(*errors2.ClientError)
	require.True(t, ok)
	assert.Equal(t, errors2.CULTURE_PROFILE_NOT_FOUND.Code, clientError.Code)
}

func TestAssessmentAndTrackerLifecycle(t *testing.T) {

	profileService := profileProvider.NewCultureProfileProvider().GetCultureProfileService()

	teamProfile, err := profileService.AddCultureProfile(
		buildCultureProfile("team-acme", constants.EntityTypeTeam))
	require.NoError(t, err)

	companyInput := buildCultureProfile("company-globex", constants.EntityTypeCompany)
	// Widen the directness gap so the assessment raises a communication risk.
	companyInput.Communication.Directness = 30
	companyProfile, err := profileService.AddCultureProfile(companyInput)
	require.NoError(t, err)

	assessmentService := compatibilityProvider.NewCompatibilityProvider().GetCompatibilityService()
	assessment, err := assessmentService.AssessCompatibility(teamProfile.ProfileId, companyProfile.ProfileId)
	require.NoError(t, err)
	assert.Greater(t, assessment.OverallScore, 0.0)
	require.NotEmpty(t, assessment.Risks)
	assert.Equal(t, constants.RiskCategoryCommunication, assessment.Risks[0].Category)
	require.NotEmpty(t, assessment.Plan.Milestones)

	stored, err := assessmentService.GetAssessment(assessment.AssessmentId)
	require.NoError(t, err)
	assert.Equal(t, assessment.OverallScore, stored.OverallScore)

	trackerService := integrationProvider.NewIntegrationProvider().GetIntegrationTrackerService()
	tracker, err := trackerService.CreateTracker(integrationModel.CreateTrackerRequest{
		LiftoutId:    "liftout-acme-globex",
		TeamId:       "team-acme",
		CompanyId:    "company-globex",
		AssessmentId: assessment.AssessmentId,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.TrackerStatusPreStart, tracker.Status)
	require.Len(t, tracker.RiskFactors, len(assessment.Risks))
	assert.Equal(t, constants.RiskStatusIdentified, tracker.RiskFactors[0].Status)
	require.Len(t, tracker.Milestones, len(assessment.Plan.Milestones))
	assert.Equal(t, constants.MilestoneStatusPending, tracker.Milestones[0].Status)

	culturalFit := 82.0
	tracker, err = trackerService.RecordPerformanceMetrics(tracker.TrackerId, integrationModel.PerformanceMetricsUpdate{
		Productivity: &integrationModel.ProductivityMetric{Period: "2026-07", VelocityScore: 78},
		Quality:      &integrationModel.QualityMetric{Period: "2026-07", CustomerSatisfactionScore: 8},
		Delivery:     &integrationModel.DeliveryMetric{Period: "2026-07", OnTimeDelivery: 88},
		CulturalFit:  &culturalFit,
	})
	require.NoError(t, err)
	require.Len(t, tracker.Performance.Productivity, 1)
	assert.Equal(t, 82.0, tracker.CulturalIntegration.CulturalFitScore)

	tracker, err = trackerService.RecordBusinessMetrics(tracker.TrackerId, integrationModel.BusinessMetricsUpdate{
		ROI:    &integrationModel.ROIMetric{Period: "2026-07", ROI: 55},
		Client: &integrationModel.ClientMetric{Period: "2026-07", ClientSatisfactionScore: 9},
	})
	require.NoError(t, err)
	require.Len(t, tracker.BusinessResults.ROI, 1)

	// A later snapshot lands at the head of the business series.
	tracker, err = trackerService.RecordBusinessMetrics(tracker.TrackerId, integrationModel.BusinessMetricsUpdate{
		ROI: &integrationModel.ROIMetric{Period: "2026-08", ROI: 70},
	})
	require.NoError(t, err)
	require.Len(t, tracker.BusinessResults.ROI, 2)
	assert.Equal(t, "2026-08", tracker.BusinessResults.ROI[0].Period)

	milestoneId := tracker.Milestones[0].MilestoneId
	tracker, err = trackerService.UpdateMilestoneStatus(tracker.TrackerId, milestoneId,
		constants.MilestoneStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, constants.MilestoneStatusInProgress, tracker.Milestones[0].Status)

	// Completing from in_progress is allowed; jumping straight to completed from
	// pending was not.
	tracker, err = trackerService.UpdateMilestoneStatus(tracker.TrackerId, milestoneId,
		constants.MilestoneStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, constants.MilestoneStatusCompleted, tracker.Milestones[0].Status)
	assert.NotZero(t, tracker.Milestones[0].CompletedDate)
	assert.Equal(t, 100.0, tracker.OverallProgress)

	_, err = trackerService.UpdateMilestoneStatus(tracker.TrackerId, milestoneId,
		constants.MilestoneStatusInProgress)
	require.Error(t, err)
	clientError, ok := err.(*errors2.ClientError)
	require.True(t, ok)
	assert.Equal(t, errors2.INVALID_STATUS_TRANSITION.Code, clientError.Code)

	riskId := tracker.RiskFactors[0].RiskId
	tracker, err = trackerService.UpdateRiskFactorStatus(tracker.TrackerId, riskId, constants.RiskStatusMonitoring)
	require.NoError(t, err)
	assert.Equal(t, constants.RiskStatusMonitoring, tracker.RiskFactors[0].Status)

	tracker, err = trackerService.UpdateTrackerStatus(tracker.TrackerId, integrationModel.TrackerStatusUpdateRequest{
		Status:       constants.TrackerStatusIntegration,
		CurrentPhase: constants.TrackerStatusIntegration,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.TrackerStatusIntegration, tracker.Status)
	assert.Equal(t, constants.TrackerStatusIntegration, tracker.CurrentPhase)
	assert.Equal(t, constants.MilestoneStatusCompleted, tracker.Phases[0].Status)
	assert.Equal(t, constants.MilestoneStatusInProgress, tracker.Phases[1].Status)

	// A phase name the tracker does not know is rejected and nothing is stamped.
	_, err = trackerService.UpdateTrackerStatus(tracker.TrackerId, integrationModel.TrackerStatusUpdateRequest{
		Status:       constants.TrackerStatusIntegration,
		CurrentPhase: "wind_down",
	})
	require.Error(t, err)
	clientError, ok = err.(*errors2.ClientError)
	require.True(t, ok)
	assert.Equal(t, errors2.TRACKER_VALIDATION.Code, clientError.Code)

	untouched, err := trackerService.GetTracker(tracker.TrackerId)
	require.NoError(t, err)
	assert.Equal(t, constants.TrackerStatusIntegration, untouched.CurrentPhase)
	assert.Equal(t, constants.MilestoneStatusPending, untouched.Phases[2].Status)
	assert.Equal(t, constants.MilestoneStatusPending, untouched.Phases[3].Status)

	report, err := trackerService.RecomputeHealth(tracker.TrackerId)
	require.NoError(t, err)
	assert.Greater(t, report.HealthScore, 0)
	assert.NotEmpty(t, report.RetentionRisk)

	persisted, err := trackerService.GetTracker(tracker.TrackerId)
	require.NoError(t, err)
	assert.Equal(t, report.HealthScore, persisted.HealthScore)
	assert.Equal(t, report.RetentionRisk, persisted.RetentionRisk)
}

func TestCultureProfileListPagination(t *testing.T) {

	service := profileProvider.NewCultureProfileProvider().GetCultureProfileService()

	for i := 0; i < 3; i++ {
		_, err := service.AddCultureProfile(buildCultureProfile("team-paging", constants.EntityTypeTeam))
		require.NoError(t, err)
	}

	first, err := service.GetCultureProfilesByEntity("team-paging", 2, nil)
	require.NoError(t, err)
	require.Len(t, first.Profiles, 2)
	assert.Equal(t, 2, first.Count)
	assert.Equal(t, 2, first.PageSize)
	require.NotEmpty(t, first.NextCursor)

	cursor, err := pagination.DecodeCursor(first.NextCursor)
	require.NoError(t, err)

	second, err := service.GetCultureProfilesByEntity("team-paging", 2, cursor)
	require.NoError(t, err)
	require.Len(t, second.Profiles, 1)
	assert.Empty(t, second.NextCursor)

	assert.NotEqual(t, first.Profiles[0].ProfileId, second.Profiles[0].ProfileId)
	assert.NotEqual(t, first.Profiles[1].ProfileId, second.Profiles[0].ProfileId)
}

func TestAssessmentRejectsMismatchedEntityTypes(t *testing.T) {

	profileService := profileProvider.NewCultureProfileProvider().GetCultureProfileService()

	first, err := profileService.AddCultureProfile(
		buildCultureProfile("team-alpha", constants.EntityTypeTeam))
	require.NoError(t, err)
	second, err := profileService.AddCultureProfile(
		buildCultureProfile("team-beta", constants.EntityTypeTeam))
	require.NoError(t, err)

	assessmentService := compatibilityProvider.NewCompatibilityProvider().GetCompatibilityService()
	_, err = assessmentService.AssessCompatibility(first.ProfileId, second.ProfileId)
	require.Error(t, err)
	clientError, ok := err.(*errors2.ClientError)
	require.True(t, ok)
	assert.Equal(t, errors2.ASSESSMENT_VALIDATION.Code, clientError.Code)
}

func TestCreateTrackerRequiresIdentifiers(t *testing.T) {

	trackerService := integrationProvider.NewIntegrationProvider().GetIntegrationTrackerService()

	_, err := trackerService.CreateTracker(integrationModel.CreateTrackerRequest{TeamId: "team-only"})
	require.Error(t, err)
	clientError, ok := err.(*errors2.ClientError)
	require.True(t, ok)
	assert.Equal(t, errors2.TRACKER_VALIDATION.Code, clientError.Code)
}
