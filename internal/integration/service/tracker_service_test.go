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
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	compatibilityModel "github.com/wso2/liftout-marketplace-service/internal/compatibility/model"
	model "github.com/wso2/liftout-marketplace-service/internal/integration/model"
	"github.com/wso2/liftout-marketplace-service/internal/system/constants"
	errors2 "github.com/wso2/liftout-marketplace-service/internal/system/errors"
)

func TestMilestoneStatusTransitions(t *testing.T) {

	testCases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{constants.MilestoneStatusPending, constants.MilestoneStatusInProgress, true},
		{constants.MilestoneStatusPending, constants.MilestoneStatusCompleted, false},
		{constants.MilestoneStatusInProgress, constants.MilestoneStatusCompleted, true},
		{constants.MilestoneStatusDelayed, constants.MilestoneStatusInProgress, true},
		{constants.MilestoneStatusAtRisk, constants.MilestoneStatusCompleted, true},
		{constants.MilestoneStatusCompleted, constants.MilestoneStatusInProgress, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.allowed,
			isAllowedTransition(constants.AllowedMilestoneStatusTransitions, tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestRiskStatusTransitions(t *testing.T) {

	testCases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{constants.RiskStatusIdentified, constants.RiskStatusMonitoring, true},
		{constants.RiskStatusIdentified, constants.RiskStatusResolved, true},
		{constants.RiskStatusMonitoring, constants.RiskStatusIdentified, false},
		{constants.RiskStatusMitigating, constants.RiskStatusEscalated, true},
		{constants.RiskStatusResolved, constants.RiskStatusMonitoring, false},
		{constants.RiskStatusEscalated, constants.RiskStatusMitigating, true},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.allowed,
			isAllowedTransition(constants.AllowedRiskStatusTransitions, tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestSeedRiskFactorsFromAssessmentRisks(t *testing.T) {

	identifiedAt := time.Now().Unix()
	risks := []compatibilityModel.CultureRisk{
		{
			RiskId:      "risk-1",
			Category:    constants.RiskCategoryCommunication,
			Description: "Significant gap in communication directness between team and company.",
			Severity:    constants.SeverityHigh,
			MitigationStrategies: []string{
				"Run a joint communication-norms workshop in the first week.",
				"Assign a cultural liaison to translate feedback styles in both directions.",
			},
		},
		{
			RiskId:   "risk-2",
			Category: constants.RiskCategoryLeadership,
			Severity: constants.SeverityMedium,
		},
	}

	factors := seedRiskFactors(risks, identifiedAt)
	require.Len(t, factors, 2)

	assert.Equal(t, "risk-1", factors[0].RiskId)
	assert.Equal(t, constants.RiskStatusIdentified, factors[0].Status)
	assert.Equal(t, constants.ImpactHigh, factors[0].Impact)
	assert.Contains(t, factors[0].Mitigation, "communication-norms workshop")
	assert.Equal(t, identifiedAt, factors[0].IdentifiedAt)

	assert.Equal(t, constants.ImpactMedium, factors[1].Impact)
}

func TestImpactForSeverity(t *testing.T) {

	assert.Equal(t, constants.ImpactHigh, impactForSeverity(constants.SeverityCritical))
	assert.Equal(t, constants.ImpactHigh, impactForSeverity(constants.SeverityHigh))
	assert.Equal(t, constants.ImpactMedium, impactForSeverity(constants.SeverityMedium))
	assert.Equal(t, constants.ImpactLow, impactForSeverity(constants.SeverityLow))
}

func TestSeedMilestonesFromPlan(t *testing.T) {

	planMilestones := []compatibilityModel.PlanMilestone{
		{Name: "Working norms agreed", Description: "Signed off by both parties.", TargetDate: 1750000000},
	}

	milestones := seedMilestones(planMilestones)
	require.Len(t, milestones, 1)
	assert.NotEmpty(t, milestones[0].MilestoneId)
	assert.Equal(t, "Working norms agreed", milestones[0].Name)
	assert.Equal(t, constants.MilestoneStatusPending, milestones[0].Status)
	assert.Equal(t, int64(1750000000), milestones[0].TargetDate)
}

func TestOverallProgress(t *testing.T) {

	assert.Equal(t, 0.0, overallProgress(nil))

	milestones := []model.IntegrationMilestone{
		{Status: constants.MilestoneStatusCompleted},
		{Status: constants.MilestoneStatusInProgress},
		{Status: constants.MilestoneStatusCompleted},
		{Status: constants.MilestoneStatusPending},
	}
	assert.Equal(t, 50.0, overallProgress(milestones))
}

func TestRefreshDerivedFieldsReplacesHealthWholesale(t *testing.T) {

	tracker := newTrackerFixture()
	tracker.HealthScore = 1
	tracker.RetentionRisk = constants.RetentionRiskHigh
	tracker.EarlyWarnings = []string{"stale warning"}

	refreshDerivedFields(&tracker)

	assert.Equal(t, 75, tracker.HealthScore)
	assert.Equal(t, constants.RetentionRiskLow, tracker.RetentionRisk)
	assert.Empty(t, tracker.EarlyWarnings)
	assert.InDelta(t, 66.667, tracker.OverallProgress, 0.001)
	assert.NotZero(t, tracker.UpdatedAt)
}

func TestAdvancePhasesCompletesEarlierPhases(t *testing.T) {

	tracker := newTrackerFixture()
	tracker.Phases = initialPhases()

	require.True(t, advancePhases(&tracker, constants.TrackerStatusStabilization))

	assert.Equal(t, constants.TrackerStatusStabilization, tracker.CurrentPhase)
	assert.Equal(t, constants.MilestoneStatusCompleted, tracker.Phases[0].Status)
	assert.Equal(t, 100.0, tracker.Phases[0].Progress)
	assert.Equal(t, constants.MilestoneStatusCompleted, tracker.Phases[1].Status)
	assert.Equal(t, constants.MilestoneStatusInProgress, tracker.Phases[2].Status)
	assert.NotZero(t, tracker.Phases[2].StartDate)
	assert.Equal(t, constants.MilestoneStatusPending, tracker.Phases[3].Status)
}

func TestAdvancePhasesUnknownPhaseLeavesTrackerUntouched(t *testing.T) {

	tracker := newTrackerFixture()
	tracker.Phases = initialPhases()
	tracker.CurrentPhase = constants.TrackerStatusOnboarding

	require.False(t, advancePhases(&tracker, "decommissioning"))

	assert.Equal(t, constants.TrackerStatusOnboarding, tracker.CurrentPhase)
	for _, phase := range tracker.Phases {
		assert.Equal(t, constants.MilestoneStatusPending, phase.Status, phase.Phase)
		assert.Equal(t, 0.0, phase.Progress, phase.Phase)
		assert.Zero(t, phase.StartDate, phase.Phase)
		assert.Zero(t, phase.EndDate, phase.Phase)
	}
}

func TestValidatePerformanceUpdate(t *testing.T) {

	err := validatePerformanceUpdate(model.PerformanceMetricsUpdate{})
	requireClientError(t, err, errors2.METRIC_VALIDATION.Code)

	err = validatePerformanceUpdate(model.PerformanceMetricsUpdate{
		Productivity: &model.ProductivityMetric{VelocityScore: 80},
	})
	requireClientError(t, err, errors2.METRIC_VALIDATION.Code)

	err = validatePerformanceUpdate(model.PerformanceMetricsUpdate{
		Productivity: &model.ProductivityMetric{Period: "2026-02", VelocityScore: 120},
	})
	requireClientError(t, err, errors2.METRIC_VALIDATION.Code)

	err = validatePerformanceUpdate(model.PerformanceMetricsUpdate{
		Quality: &model.QualityMetric{Period: "2026-02", CustomerSatisfactionScore: 11},
	})
	requireClientError(t, err, errors2.METRIC_VALIDATION.Code)

	err = validatePerformanceUpdate(model.PerformanceMetricsUpdate{
		Productivity: &model.ProductivityMetric{Period: "2026-02", VelocityScore: 80},
	})
	assert.NoError(t, err)
}

func TestValidateBusinessUpdate(t *testing.T) {

	err := validateBusinessUpdate(model.BusinessMetricsUpdate{})
	requireClientError(t, err, errors2.METRIC_VALIDATION.Code)

	err = validateBusinessUpdate(model.BusinessMetricsUpdate{
		Client: &model.ClientMetric{Period: "2026-02", ClientSatisfactionScore: 12},
	})
	requireClientError(t, err, errors2.METRIC_VALIDATION.Code)

	err = validateBusinessUpdate(model.BusinessMetricsUpdate{
		ROI: &model.ROIMetric{Period: "2026-02", ROI: 45},
	})
	assert.NoError(t, err)
}

func requireClientError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	clientError, ok := err.(*errors2.ClientError)
	require.True(t, ok, "expected a client error, got %T", err)
	assert.Equal(t, code, clientError.Code)
	assert.Equal(t, http.StatusBadRequest, clientError.StatusCode)
}
