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
	"math"

	model "github.com/wso2/liftout-marketplace-service/internal/integration/model"
	"github.com/wso2/liftout-marketplace-service/internal/system/constants"
)

// Weights of the four health factors in the overall health score.
const (
	performanceHealthWeight = 0.30
	culturalHealthWeight    = 0.25
	businessHealthWeight    = 0.25
	milestoneHealthWeight   = 0.20
)

// Velocity drop between the two most recent productivity entries that triggers
// the declining-productivity warning.
const velocityDropThreshold = -10

// earlyWarningRule pairs a trigger predicate with a message builder. Rules are
// evaluated in order and every triggered rule appends one warning.
type earlyWarningRule struct {
	applies func(tracker model.IntegrationTracker) bool
	message func(tracker model.IntegrationTracker) string
}

var earlyWarningRules = []earlyWarningRule{
	{
		applies: func(tracker model.IntegrationTracker) bool {
			return productivityTrend(tracker.Performance.Productivity) < velocityDropThreshold
		},
		message: func(tracker model.IntegrationTracker) string {
			return "Declining productivity trend detected"
		},
	},
	{
		applies: func(tracker model.IntegrationTracker) bool {
			return tracker.CulturalIntegration.CulturalFitScore < 70
		},
		message: func(tracker model.IntegrationTracker) string {
			return "Cultural integration concerns identified"
		},
	},
	{
		applies: func(tracker model.IntegrationTracker) bool {
			return troubledMilestoneCount(tracker.Milestones) > 2
		},
		message: func(tracker model.IntegrationTracker) string {
			return fmt.Sprintf("%d milestones are delayed or at risk", troubledMilestoneCount(tracker.Milestones))
		},
	},
	{
		applies: func(tracker model.IntegrationTracker) bool {
			return highImpactRiskCount(tracker.RiskFactors) > 0
		},
		message: func(tracker model.IntegrationTracker) string {
			return fmt.Sprintf("%d high-impact risks require attention", highImpactRiskCount(tracker.RiskFactors))
		},
	},
}

// ScoreIntegrationHealth derives the overall health score, retention risk
// classification, and early warnings from a tracker snapshot. The computation
// is pure and side-effect free; callers persist the report.
func ScoreIntegrationHealth(tracker model.IntegrationTracker) model.HealthReport {

	performanceScore := performanceScore(tracker.Performance)
	culturalScore := tracker.CulturalIntegration.CulturalFitScore
	businessScore := businessScore(tracker.BusinessResults)
	milestoneScore := milestoneScore(tracker.Milestones)

	healthScore := int(math.Round(performanceScore*performanceHealthWeight +
		culturalScore*culturalHealthWeight +
		businessScore*businessHealthWeight +
		milestoneScore*milestoneHealthWeight))

	return model.HealthReport{
		HealthScore:   healthScore,
		RetentionRisk: retentionRisk(tracker, performanceScore),
		EarlyWarnings: earlyWarnings(tracker),
	}
}

// performanceScore averages the velocity, customer satisfaction (scaled to
// 0-100), and on-time delivery series and takes the mean of the three
// sub-averages. An empty series contributes 0 rather than dividing by zero;
// that degraded-input policy keeps the scorer total over sparse trackers.
func performanceScore(performance model.PerformanceTracker) float64 {

	velocity := 0.0
	if len(performance.Productivity) > 0 {
		total := 0.0
		for _, metric := range performance.Productivity {
			total += metric.VelocityScore
		}
		velocity = total / float64(len(performance.Productivity))
	}

	quality := 0.0
	if len(performance.Quality) > 0 {
		total := 0.0
		for _, metric := range performance.Quality {
			total += metric.CustomerSatisfactionScore * 10
		}
		quality = total / float64(len(performance.Quality))
	}

	delivery := 0.0
	if len(performance.Delivery) > 0 {
		total := 0.0
		for _, metric := range performance.Delivery {
			total += metric.OnTimeDelivery
		}
		delivery = total / float64(len(performance.Delivery))
	}

	return math.Round((velocity + quality + delivery) / 3)
}

// businessScore reads only the first entry of each business series. Business
// metrics are period-stamped snapshots with the most recent kept at the head,
// so the first entry represents current state; unlike performanceScore this
// deliberately does not average across history.
func businessScore(business model.BusinessResultsTracker) float64 {

	roi := 0.0
	if len(business.ROI) > 0 {
		roi = math.Min(business.ROI[0].ROI, 100)
	}

	revenue := 0.0
	if len(business.Revenue) > 0 {
		revenue = math.Min(business.Revenue[0].RevenueGrowth, 100)
	}

	client := 0.0
	if len(business.Client) > 0 {
		client = business.Client[0].ClientSatisfactionScore * 10
	}

	return (roi + revenue + client) / 3
}

// milestoneScore is the completed share of all milestones; a tracker with no
// milestones yet scores a full 100.
func milestoneScore(milestones []model.IntegrationMilestone) float64 {

	if len(milestones) == 0 {
		return 100
	}
	completed := 0
	for _, milestone := range milestones {
		if milestone.Status == constants.MilestoneStatusCompleted {
			completed++
		}
	}
	return float64(completed) / float64(len(milestones)) * 100
}

// retentionRisk classifies the likelihood of the team leaving prematurely from
// the active retention risks and the health indicators.
func retentionRisk(tracker model.IntegrationTracker, performanceScore float64) string {

	criticalCount := 0
	highCount := 0
	for _, risk := range tracker.RiskFactors {
		if risk.Category != constants.RiskCategoryRetention || !isActiveRiskStatus(risk.Status) {
			continue
		}
		switch risk.Severity {
		case constants.SeverityCritical:
			criticalCount++
		case constants.SeverityHigh:
			highCount++
		}
	}

	culturalFit := tracker.CulturalIntegration.CulturalFitScore

	if criticalCount > 0 || culturalFit < 60 || performanceScore < 60 {
		return constants.RetentionRiskHigh
	}
	if highCount > 1 || culturalFit < 75 || performanceScore < 75 {
		return constants.RetentionRiskMedium
	}
	return constants.RetentionRiskLow
}

// earlyWarnings evaluates the warning rules in order and collects the messages
// of every triggered rule.
func earlyWarnings(tracker model.IntegrationTracker) []string {

	warnings := make([]string, 0)
	for _, rule := range earlyWarningRules {
		if rule.applies(tracker) {
			warnings = append(warnings, rule.message(tracker))
		}
	}
	return warnings
}

// productivityTrend is the velocity change between the two most recent
// productivity entries. Fewer than two entries yield no trend.
func productivityTrend(productivity []model.ProductivityMetric) float64 {

	if len(productivity) < 2 {
		return 0
	}
	mostRecent := productivity[len(productivity)-1].VelocityScore
	previous := productivity[len(productivity)-2].VelocityScore
	return mostRecent - previous
}

func troubledMilestoneCount(milestones []model.IntegrationMilestone) int {

	count := 0
	for _, milestone := range milestones {
		if milestone.Status == constants.MilestoneStatusDelayed || milestone.Status == constants.MilestoneStatusAtRisk {
			count++
		}
	}
	return count
}

// highImpactRiskCount counts risks that are still being watched (identified or
// monitoring) and carry a high impact.
func highImpactRiskCount(risks []model.RiskFactor) int {

	count := 0
	for _, risk := range risks {
		if (risk.Status == constants.RiskStatusIdentified || risk.Status == constants.RiskStatusMonitoring) &&
			risk.Impact == constants.ImpactHigh {
			count++
		}
	}
	return count
}

// isActiveRiskStatus reports whether a risk still counts toward retention risk.
func isActiveRiskStatus(status string) bool {

	return status == constants.RiskStatusIdentified ||
		status == constants.RiskStatusMonitoring ||
		status == constants.RiskStatusMitigating
}
