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

// PhaseTracker records progress through one phase of the integration lifecycle.
type PhaseTracker struct {
	Phase     string  `json:"phase"`
	Status    string  `json:"status"`
	Progress  float64 `json:"progress"`
	StartDate int64   `json:"start_date,omitempty"`
	EndDate   int64   `json:"end_date,omitempty"`
}

// ProductivityMetric is one period's productivity measurement.
type ProductivityMetric struct {
	Period        string  `json:"period"`
	VelocityScore float64 `json:"velocity_score"`
	OutputVolume  float64 `json:"output_volume,omitempty"`
}

// QualityMetric is one period's quality measurement. Customer satisfaction is
// captured on a 0-10 scale.
type QualityMetric struct {
	Period                    string  `json:"period"`
	CustomerSatisfactionScore float64 `json:"customer_satisfaction_score"`
	DefectRate                float64 `json:"defect_rate,omitempty"`
}

// DeliveryMetric is one period's delivery measurement.
type DeliveryMetric struct {
	Period         string  `json:"period"`
	OnTimeDelivery float64 `json:"on_time_delivery"`
	ScopeDelivered float64 `json:"scope_delivered,omitempty"`
}

// PerformanceTracker accumulates the performance metric series, each ordered by
// period with the most recent entry appended last.
type PerformanceTracker struct {
	Productivity []ProductivityMetric `json:"productivity,omitempty"`
	Quality      []QualityMetric      `json:"quality,omitempty"`
	Delivery     []DeliveryMetric     `json:"delivery,omitempty"`
}

// CulturalIntegrationTracker captures the team's cultural adaptation.
type CulturalIntegrationTracker struct {
	CulturalFitScore    float64  `json:"cultural_fit_score"`
	AdaptationLevel     float64  `json:"adaptation_level,omitempty"`
	QualitativeSignals  []string `json:"qualitative_signals,omitempty"`
	LastSurveyDate      int64    `json:"last_survey_date,omitempty"`
	SurveyResponseCount int      `json:"survey_response_count,omitempty"`
}

// RevenueMetric is one period's revenue snapshot.
type RevenueMetric struct {
	Period        string  `json:"period"`
	RevenueGrowth float64 `json:"revenue_growth"`
	Revenue       float64 `json:"revenue,omitempty"`
}

// CostMetric is one period's cost snapshot.
type CostMetric struct {
	Period   string  `json:"period"`
	CostBase float64 `json:"cost_base,omitempty"`
	Savings  float64 `json:"savings,omitempty"`
}

// ROIMetric is one period's return-on-investment snapshot.
type ROIMetric struct {
	Period string  `json:"period"`
	ROI    float64 `json:"roi"`
}

// MarketMetric is one period's market position snapshot.
type MarketMetric struct {
	Period      string  `json:"period"`
	MarketShare float64 `json:"market_share,omitempty"`
}

// InnovationMetric is one period's innovation output snapshot.
type InnovationMetric struct {
	Period            string `json:"period"`
	InitiativesActive int    `json:"initiatives_active,omitempty"`
}

// ClientMetric is one period's client relationship snapshot. Client
// satisfaction is captured on a 0-10 scale.
type ClientMetric struct {
	Period                  string  `json:"period"`
	ClientSatisfactionScore float64 `json:"client_satisfaction_score"`
	ClientRetention         float64 `json:"client_retention,omitempty"`
}

// BusinessResultsTracker accumulates the business metric series. The most
// recent snapshot is kept at the head of each series.
type BusinessResultsTracker struct {
	Revenue    []RevenueMetric    `json:"revenue,omitempty"`
	Cost       []CostMetric       `json:"cost,omitempty"`
	ROI        []ROIMetric        `json:"roi,omitempty"`
	Market     []MarketMetric     `json:"market,omitempty"`
	Innovation []InnovationMetric `json:"innovation,omitempty"`
	Client     []ClientMetric     `json:"client,omitempty"`
}

// RiskFactor is one tracked risk in the integration's risk register.
type RiskFactor struct {
	RiskId       string `json:"risk_id"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	Severity     string `json:"severity"`
	Status       string `json:"status"`
	Impact       string `json:"impact"`
	Mitigation   string `json:"mitigation,omitempty"`
	IdentifiedAt int64  `json:"identified_at,omitempty"`
}

// IntegrationMilestone is one checkpoint in the integration timeline.
type IntegrationMilestone struct {
	MilestoneId   string `json:"milestone_id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Status        string `json:"status"`
	TargetDate    int64  `json:"target_date,omitempty"`
	CompletedDate int64  `json:"completed_date,omitempty"`
}

// IntegrationTracker is the longitudinal record of a placed team's post-liftout
// integration. Metric series are append-only; the derived health fields are
// recomputed wholesale by the health scorer on every update, never patched.
type IntegrationTracker struct {
	TrackerId           string                     `json:"tracker_id"`
	LiftoutId           string                     `json:"liftout_id"`
	TeamId              string                     `json:"team_id"`
	CompanyId           string                     `json:"company_id"`
	CurrentPhase        string                     `json:"current_phase,omitempty"`
	Phases              []PhaseTracker             `json:"phases,omitempty"`
	Performance         PerformanceTracker         `json:"performance"`
	CulturalIntegration CulturalIntegrationTracker `json:"cultural_integration"`
	BusinessResults     BusinessResultsTracker     `json:"business_results"`
	RiskFactors         []RiskFactor               `json:"risk_factors,omitempty"`
	Milestones          []IntegrationMilestone     `json:"milestones,omitempty"`
	HealthScore         int                        `json:"health_score"`
	RetentionRisk       string                     `json:"retention_risk,omitempty"`
	EarlyWarnings       []string                   `json:"early_warnings,omitempty"`
	Status              string                     `json:"status"`
	OverallProgress     float64                    `json:"overall_progress"`
	CreatedAt           int64                      `json:"created_at"`
	UpdatedAt           int64                      `json:"updated_at"`
}

// HealthReport is the output of one health scoring pass over a tracker snapshot.
type HealthReport struct {
	HealthScore   int      `json:"health_score"`
	RetentionRisk string   `json:"retention_risk"`
	EarlyWarnings []string `json:"early_warnings"`
}
