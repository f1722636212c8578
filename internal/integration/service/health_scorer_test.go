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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/wso2/liftout-marketplace-service/internal/integration/model"
	"github.com/wso2/liftout-marketplace-service/internal/system/constants"
)

func newTrackerFixture() model.IntegrationTracker {
	return model.IntegrationTracker{
		TrackerId: "tracker-1",
		LiftoutId: "liftout-1",
		TeamId:    "team-1",
		CompanyId: "company-1",
		Performance: model.PerformanceTracker{
			Productivity: []model.ProductivityMetric{
				{Period: "2026-01", VelocityScore: 80},
				{Period: "2026-02", VelocityScore: 85},
			},
			Quality: []model.QualityMetric{
				{Period: "2026-02", CustomerSatisfactionScore: 8},
			},
			Delivery: []model.DeliveryMetric{
				{Period: "2026-02", OnTimeDelivery: 85},
			},
		},
		CulturalIntegration: model.CulturalIntegrationTracker{
			CulturalFitScore: 85,
		},
		BusinessResults: model.BusinessResultsTracker{
			Revenue: []model.RevenueMetric{{Period: "2026-02", RevenueGrowth: 40}},
			ROI:     []model.ROIMetric{{Period: "2026-02", ROI: 60}},
			Client:  []model.ClientMetric{{Period: "2026-02", ClientSatisfactionScore: 9}},
		},
		Milestones: []model.IntegrationMilestone{
			{MilestoneId: "m1", Name: "Working norms agreed", Status: constants.MilestoneStatusCompleted},
			{MilestoneId: "m2", Name: "First joint delivery", Status: constants.MilestoneStatusCompleted},
			{MilestoneId: "m3", Name: "Velocity restored", Status: constants.MilestoneStatusInProgress},
		},
		Status: constants.TrackerStatusIntegration,
	}
}

func TestScoreHealthyTracker(t *testing.T) {

	report := ScoreIntegrationHealth(newTrackerFixture())

	// perf 83, cultural 85, business (60+40+90)/3, milestones 2/3:
	// 83*0.30 + 85*0.25 + 63.33*0.25 + 66.67*0.20 rounds to 75.
	assert.Equal(t, 75, report.HealthScore)
	assert.Equal(t, constants.RetentionRiskLow, report.RetentionRisk)
	assert.Empty(t, report.EarlyWarnings)
}

func TestPerformanceScoreEmptySeriesContributeZero(t *testing.T) {

	assert.Equal(t, 0.0, performanceScore(model.PerformanceTracker{}))

	partial := model.PerformanceTracker{
		Delivery: []model.DeliveryMetric{{OnTimeDelivery: 90}},
	}
	assert.Equal(t, 30.0, performanceScore(partial))
}

func TestPerformanceScoreAveragesEachSeries(t *testing.T) {

	performance := model.PerformanceTracker{
		Productivity: []model.ProductivityMetric{{VelocityScore: 70}, {VelocityScore: 90}},
		Quality:      []model.QualityMetric{{CustomerSatisfactionScore: 8}, {CustomerSatisfactionScore: 6}},
		Delivery:     []model.DeliveryMetric{{OnTimeDelivery: 90}},
	}

	// (80 + 70 + 90) / 3 = 80
	assert.Equal(t, 80.0, performanceScore(performance))
}

func TestBusinessScoreUsesMostRecentSnapshotOnly(t *testing.T) {

	business := model.BusinessResultsTracker{
		Revenue: []model.RevenueMetric{{RevenueGrowth: 120}, {RevenueGrowth: 5}},
		ROI:     []model.ROIMetric{{ROI: 150}, {ROI: 10}},
		Client:  []model.ClientMetric{{ClientSatisfactionScore: 10}, {ClientSatisfactionScore: 1}},
	}

	// Head entries only, ROI and revenue growth capped at 100.
	assert.InDelta(t, 100, businessScore(business), 0.001)
}

func TestBusinessScoreEmptySeries(t *testing.T) {

	assert.Equal(t, 0.0, businessScore(model.BusinessResultsTracker{}))
}

func TestMilestoneScore(t *testing.T) {

	assert.Equal(t, 100.0, milestoneScore(nil))

	milestones := newTrackerFixture().Milestones
	assert.InDelta(t, 66.667, milestoneScore(milestones), 0.001)
}

func TestRetentionRiskHighOnActiveCriticalRisk(t *testing.T) {

	tracker := newTrackerFixture()
	tracker.RiskFactors = []model.RiskFactor{{
		RiskId:   "r1",
		Category: constants.RiskCategoryRetention,
		Severity: constants.SeverityCritical,
		Status:   constants.RiskStatusIdentified,
		Impact:   constants.ImpactMedium,
	}}

	report := ScoreIntegrationHealth(tracker)
	assert.Equal(t, constants.RetentionRiskHigh, report.RetentionRisk)
}

func TestRetentionRiskHighOnWeakCulturalFit(t *testing.T) {

	tracker := newTrackerFixture()
	tracker.CulturalIntegration.CulturalFitScore = 55

	report := ScoreIntegrationHealth(tracker)
	assert.Equal(t, constants.RetentionRiskHigh, report.RetentionRisk)
}

func TestRetentionRiskHighOnWeakPerformance(t *testing.T) {

	tracker := newTrackerFixture()
	tracker.Performance = model.PerformanceTracker{}

	report := ScoreIntegrationHealth(tracker)
	assert.Equal(t, constants.RetentionRiskHigh, report.RetentionRisk)
}

func TestRetentionRiskMediumOnModerateCulturalFit(t *testing.T) {

	tracker := newTrackerFixture()
	tracker.CulturalIntegration.CulturalFitScore = 70

	report := ScoreIntegrationHealth(tracker)
	assert.Equal(t, constants.RetentionRiskMedium, report.RetentionRisk)
}

func TestRetentionRiskMediumOnMultipleHighRisks(t *testing.T) {

	tracker := newTrackerFixture()
	tracker.RiskFactors = []model.RiskFactor{
		{RiskId: "r1", Category: constants.RiskCategoryRetention,
			Severity: constants.SeverityHigh, Status: constants.RiskStatusMonitoring},
		{RiskId: "r2", Category: constants.RiskCategoryRetention,
			Severity: constants.SeverityHigh, Status: constants.RiskStatusMitigating},
	}

	report := ScoreIntegrationHealth(tracker)
	assert.Equal(t, constants.RetentionRiskMedium, report.RetentionRisk)
}

func TestResolvedRetentionRisksAreIgnored(t *testing.T) {

	tracker := newTrackerFixture()
	tracker.RiskFactors = []model.RiskFactor{{
		RiskId:   "r1",
		Category: constants.RiskCategoryRetention,
		Severity: constants.SeverityCritical,
		Status:   constants.RiskStatusResolved,
	}}

	report := ScoreIntegrationHealth(tracker)
	assert.Equal(t, constants.RetentionRiskLow, report.RetentionRisk)
}

func TestDecliningProductivityWarning(t *testing.T) {

	tracker := newTrackerFixture()
	tracker.Performance.Productivity = []model.ProductivityMetric{
		{Period: "2026-01", VelocityScore: 80},
		{Period: "2026-02", VelocityScore: 65},
	}

	report := ScoreIntegrationHealth(tracker)
	assert.Contains(t, report.EarlyWarnings, "Declining productivity trend detected")
}

func TestDropAtThresholdDoesNotWarn(t *testing.T) {

	tracker := newTrackerFixture()
	tracker.Performance.Productivity = []model.ProductivityMetric{
		{Period: "2026-01", VelocityScore: 80},
		{Period: "2026-02", VelocityScore: 70},
	}

	report := ScoreIntegrationHealth(tracker)
	assert.NotContains(t, report.EarlyWarnings, "Declining productivity trend detected")
}

func TestCulturalFitWarningBelowThreshold(t *testing.T) {

	tracker := newTrackerFixture()
	tracker.CulturalIntegration.CulturalFitScore = 69

	report := ScoreIntegrationHealth(tracker)
	assert.Contains(t, report.EarlyWarnings, "Cultural integration concerns identified")

	tracker.CulturalIntegration.CulturalFitScore = 70
	report = ScoreIntegrationHealth(tracker)
	assert.NotContains(t, report.EarlyWarnings, "Cultural integration concerns identified")
}

func TestTroubledMilestonesWarning(t *testing.T) {

	tracker := newTrackerFixture()
	tracker.Milestones = []model.IntegrationMilestone{
		{MilestoneId: "m1", Status: constants.MilestoneStatusDelayed},
		{MilestoneId: "m2", Status: constants.MilestoneStatusAtRisk},
		{MilestoneId: "m3", Status: constants.MilestoneStatusDelayed},
		{MilestoneId: "m4", Status: constants.MilestoneStatusCompleted},
	}

	report := ScoreIntegrationHealth(tracker)
	assert.Contains(t, report.EarlyWarnings, "3 milestones are delayed or at risk")
}

func TestTwoTroubledMilestonesDoNotWarn(t *testing.T) {

	tracker := newTrackerFixture()
	tracker.Milestones = []model.IntegrationMilestone{
		{MilestoneId: "m1", Status: constants.MilestoneStatusDelayed},
		{MilestoneId: "m2", Status: constants.MilestoneStatusAtRisk},
	}

	report := ScoreIntegrationHealth(tracker)
	for _, warning := range report.EarlyWarnings {
		assert.NotContains(t, warning, "milestones are delayed")
	}
}

func TestHighImpactRiskWarningCountsWatchedRisksOnly(t *testing.T) {

	tracker := newTrackerFixture()
	tracker.RiskFactors = []model.RiskFactor{
		{RiskId: "r1", Category: constants.RiskCategoryCommunication,
			Status: constants.RiskStatusIdentified, Impact: constants.ImpactHigh},
		{RiskId: "r2", Category: constants.RiskCategoryLeadership,
			Status: constants.RiskStatusMonitoring, Impact: constants.ImpactHigh},
		{RiskId: "r3", Category: constants.RiskCategoryWorkStyle,
			Status: constants.RiskStatusMitigating, Impact: constants.ImpactHigh},
	}

	report := ScoreIntegrationHealth(tracker)
	assert.Contains(t, report.EarlyWarnings, "2 high-impact risks require attention")
}

func TestWarningsReportedInRuleOrder(t *testing.T) {

	tracker := newTrackerFixture()
	tracker.Performance.Productivity = []model.ProductivityMetric{
		{VelocityScore: 80}, {VelocityScore: 50},
	}
	tracker.CulturalIntegration.CulturalFitScore = 60
	tracker.Milestones = []model.IntegrationMilestone{
		{Status: constants.MilestoneStatusDelayed},
		{Status: constants.MilestoneStatusDelayed},
		{Status: constants.MilestoneStatusAtRisk},
	}
	tracker.RiskFactors = []model.RiskFactor{
		{Status: constants.RiskStatusIdentified, Impact: constants.ImpactHigh},
	}

	report := ScoreIntegrationHealth(tracker)
	require.Len(t, report.EarlyWarnings, 4)
	assert.Equal(t, "Declining productivity trend detected", report.EarlyWarnings[0])
	assert.Equal(t, "Cultural integration concerns identified", report.EarlyWarnings[1])
	assert.Equal(t, "3 milestones are delayed or at risk", report.EarlyWarnings[2])
	assert.Equal(t, "1 high-impact risks require attention", report.EarlyWarnings[3])
}
