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

package model

// DimensionCompatibility is the per-dimension breakdown shown alongside an assessment.
// Its weight is a display weight only and takes no part in the overall score.
type DimensionCompatibility struct {
	Dimension      string  `json:"dimension"`
	TeamScore      float64 `json:"team_score"`
	CompanyScore   float64 `json:"company_score"`
	Gap            float64 `json:"gap"`
	Compatibility  float64 `json:"compatibility"`
	Weight         float64 `json:"weight"`
	Impact         string  `json:"impact"`
	Recommendation string  `json:"recommendation"`
}

// CultureRisk is a generated risk flagged by the assessment rules. Never user-edited.
type CultureRisk struct {
	RiskId               string   `json:"risk_id"`
	Category             string   `json:"category"`
	Description          string   `json:"description"`
	Severity             string   `json:"severity"`
	Probability          float64  `json:"probability"`
	Impact               string   `json:"impact"`
	MitigationStrategies []string `json:"mitigation_strategies"`
	Timeframe            string   `json:"timeframe"`
}

// CultureStrength is a generated synergy flagged by the assessment rules.
type CultureStrength struct {
	StrengthId            string   `json:"strength_id"`
	Description           string   `json:"description"`
	Synergy               float64  `json:"synergy"`
	LeverageOpportunities []string `json:"leverage_opportunities"`
}

// IntegrationPhase is one phase of the generated integration plan.
type IntegrationPhase struct {
	Name            string   `json:"name"`
	DurationDays    int      `json:"duration_days"`
	Activities      []string `json:"activities"`
	SuccessCriteria []string `json:"success_criteria"`
	Risks           []string `json:"risks"`
}

// PlanMilestone is a dated checkpoint within the integration plan.
type PlanMilestone struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	TargetDate  int64  `json:"target_date"`
}

// ResourceEstimate is a budgeted line item supporting the plan.
type ResourceEstimate struct {
	Description  string  `json:"description"`
	CostEstimate float64 `json:"cost_estimate"`
}

// IntegrationPlan is the template-driven onboarding plan attached to an assessment.
type IntegrationPlan struct {
	PlanId            string             `json:"plan_id"`
	Phases            []IntegrationPhase `json:"phases"`
	TotalTimelineDays int                `json:"total_timeline_days"`
	SuccessMetrics    []string           `json:"success_metrics"`
	Milestones        []PlanMilestone    `json:"milestones"`
	Resources         []ResourceEstimate `json:"resources"`
}

// CompatibilityAssessment is the immutable output of assessing a (team, company)
// profile pair. Re-running the assessment produces a new record.
type CompatibilityAssessment struct {
	AssessmentId       string                   `json:"assessment_id"`
	TeamProfileId      string                   `json:"team_profile_id"`
	CompanyProfileId   string                   `json:"company_profile_id"`
	OverallScore       float64                  `json:"overall_score"`
	CompatibilityLevel string                   `json:"compatibility_level"`
	DimensionDetails   []DimensionCompatibility `json:"dimension_details"`
	Risks              []CultureRisk            `json:"risks"`
	Strengths          []CultureStrength        `json:"strengths"`
	Plan               IntegrationPlan          `json:"plan"`
	AssessmentDate     int64                    `json:"assessment_date"`
	ConfidenceLevel    float64                  `json:"confidence_level"`
}
