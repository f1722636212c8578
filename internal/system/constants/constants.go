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

package constants

const ApiBasePath = "/api/v1"

const DefaultQueueSize = 100

// Entity types a culture profile can describe.
const (
	EntityTypeTeam    = "team"
	EntityTypeCompany = "company"
)

var AllowedEntityTypes = map[string]bool{
	EntityTypeTeam:    true,
	EntityTypeCompany: true,
}

// AllowedValueCategories defines the fixed set of core value categories.
var AllowedValueCategories = map[string]bool{
	"performance":    true,
	"integrity":      true,
	"innovation":     true,
	"collaboration":  true,
	"customer_focus": true,
	"quality":        true,
	"diversity":      true,
	"sustainability": true,
	"growth":         true,
	"accountability": true,
}

// Leadership approaches recognised by the compatibility matrix.
const (
	LeadershipAutocratic       = "autocratic"
	LeadershipDemocratic       = "democratic"
	LeadershipLaissezFaire     = "laissez_faire"
	LeadershipTransformational = "transformational"
	LeadershipServant          = "servant"
)

var AllowedLeadershipApproaches = map[string]bool{
	LeadershipAutocratic:       true,
	LeadershipDemocratic:       true,
	LeadershipLaissezFaire:     true,
	LeadershipTransformational: true,
	LeadershipServant:          true,
}

// Compatibility levels derived from the overall assessment score.
const (
	CompatibilityExcellent  = "excellent"
	CompatibilityGood       = "good"
	CompatibilityModerate   = "moderate"
	CompatibilityPoor       = "poor"
	CompatibilityMismatched = "mismatched"
)

// Impact tiers for dimension gaps.
const (
	ImpactCritical = "critical"
	ImpactHigh     = "high"
	ImpactMedium   = "medium"
	ImpactLow      = "low"
)

// Culture risk categories.
const (
	RiskCategoryValues        = "values"
	RiskCategoryCommunication = "communication"
	RiskCategoryLeadership    = "leadership"
	RiskCategoryWorkStyle     = "work_style"
	RiskCategoryPerformance   = "performance"
	RiskCategoryRetention     = "retention"
)

// Risk severities.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

var AllowedRiskSeverities = map[string]bool{
	SeverityLow:      true,
	SeverityMedium:   true,
	SeverityHigh:     true,
	SeverityCritical: true,
}

// Mitigation timeframes.
const (
	TimeframeImmediate  = "immediate"
	TimeframeShortTerm  = "short_term"
	TimeframeMediumTerm = "medium_term"
	TimeframeLongTerm   = "long_term"
)

// Risk factor lifecycle statuses.
const (
	RiskStatusIdentified = "identified"
	RiskStatusMonitoring = "monitoring"
	RiskStatusMitigating = "mitigating"
	RiskStatusResolved   = "resolved"
	RiskStatusEscalated  = "escalated"
)

// AllowedRiskStatusTransitions defines the risk factor state machine:
// identified -> monitoring -> mitigating -> resolved|escalated.
var AllowedRiskStatusTransitions = map[string][]string{
	RiskStatusIdentified: {RiskStatusMonitoring, RiskStatusMitigating, RiskStatusResolved, RiskStatusEscalated},
	RiskStatusMonitoring: {RiskStatusMitigating, RiskStatusResolved, RiskStatusEscalated},
	RiskStatusMitigating: {RiskStatusResolved, RiskStatusEscalated},
	RiskStatusResolved:   {},
	RiskStatusEscalated:  {RiskStatusMitigating},
}

// Integration milestone statuses.
const (
	MilestoneStatusPending    = "pending"
	MilestoneStatusInProgress = "in_progress"
	MilestoneStatusCompleted  = "completed"
	MilestoneStatusDelayed    = "delayed"
	MilestoneStatusAtRisk     = "at_risk"
)

// AllowedMilestoneStatusTransitions defines the milestone state machine:
// pending -> in_progress -> completed|delayed|at_risk.
var AllowedMilestoneStatusTransitions = map[string][]string{
	MilestoneStatusPending:    {MilestoneStatusInProgress, MilestoneStatusDelayed, MilestoneStatusAtRisk},
	MilestoneStatusInProgress: {MilestoneStatusCompleted, MilestoneStatusDelayed, MilestoneStatusAtRisk},
	MilestoneStatusDelayed:    {MilestoneStatusInProgress, MilestoneStatusCompleted, MilestoneStatusAtRisk},
	MilestoneStatusAtRisk:     {MilestoneStatusInProgress, MilestoneStatusCompleted, MilestoneStatusDelayed},
	MilestoneStatusCompleted:  {},
}

// Integration tracker statuses over the placement lifecycle.
const (
	TrackerStatusPreStart      = "pre_start"
	TrackerStatusOnboarding    = "onboarding"
	TrackerStatusIntegration   = "integration"
	TrackerStatusStabilization = "stabilization"
	TrackerStatusOptimization  = "optimization"
	TrackerStatusCompleted     = "completed"
)

var AllowedTrackerStatuses = map[string]bool{
	TrackerStatusPreStart:      true,
	TrackerStatusOnboarding:    true,
	TrackerStatusIntegration:   true,
	TrackerStatusStabilization: true,
	TrackerStatusOptimization:  true,
	TrackerStatusCompleted:     true,
}

// Retention risk classifications.
const (
	RetentionRiskLow    = "low"
	RetentionRiskMedium = "medium"
	RetentionRiskHigh   = "high"
)
