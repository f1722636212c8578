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

import (
	"github.com/wso2/liftout-marketplace-service/internal/system/pagination"
)

// CultureDimensions holds the eight cultural dimension scores, each in [0,100].
type CultureDimensions struct {
	PowerDistance                 float64 `json:"power_distance"`
	IndividualismVsCollectivism   float64 `json:"individualism_vs_collectivism"`
	UncertaintyAvoidance          float64 `json:"uncertainty_avoidance"`
	LongTermOrientation           float64 `json:"long_term_orientation"`
	InnovationVsStability         float64 `json:"innovation_vs_stability"`
	ProcessVsResults              float64 `json:"process_vs_results"`
	RiskTolerance                 float64 `json:"risk_tolerance"`
	TransparencyVsConfidentiality float64 `json:"transparency_vs_confidentiality"`
}

// CoreValue is a single organizational value held by one profile.
type CoreValue struct {
	ValueId        string   `json:"value_id"`
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	Importance     float64  `json:"importance"`
	Category       string   `json:"category"`
	EvidencePoints []string `json:"evidence_points,omitempty"`
}

// CommunicationStyle describes how a party communicates.
type CommunicationStyle struct {
	Directness    float64 `json:"directness"`
	Formality     float64 `json:"formality"`
	Frequency     float64 `json:"frequency"`
	FeedbackStyle string  `json:"feedback_style,omitempty"`
}

// DecisionMakingStyle describes how decisions get made.
type DecisionMakingStyle struct {
	Centralization  float64 `json:"centralization"`
	Speed           float64 `json:"speed"`
	DataOrientation float64 `json:"data_orientation"`
}

// ConflictResolutionStyle describes how disagreements are handled.
type ConflictResolutionStyle struct {
	Directness float64 `json:"directness"`
	Formality  float64 `json:"formality"`
	Approach   string  `json:"approach,omitempty"`
}

// WorkEnvironment describes the day-to-day working setup.
type WorkEnvironment struct {
	Flexibility   float64 `json:"flexibility"`
	Autonomy      float64 `json:"autonomy"`
	Collaboration float64 `json:"collaboration"`
	RemotePolicy  string  `json:"remote_policy,omitempty"`
}

// LeadershipStyle describes the leadership approach and its characteristics.
type LeadershipStyle struct {
	Approach         string  `json:"approach"`
	SupportLevel     float64 `json:"support_level"`
	DevelopmentFocus float64 `json:"development_focus"`
}

// PerformanceOrientation describes how performance is valued and rewarded.
type PerformanceOrientation struct {
	Meritocracy         float64 `json:"meritocracy"`
	GoalOrientation     float64 `json:"goal_orientation"`
	AccountabilityLevel float64 `json:"accountability_level"`
}

// TeamDynamics captures intra-team characteristics. Present only for team profiles.
type TeamDynamics struct {
	Cohesion             float64 `json:"cohesion"`
	TrustLevel           float64 `json:"trust_level"`
	CommunicationQuality float64 `json:"communication_quality"`
}

// CultureProfile is an immutable snapshot of one party's organizational culture.
// Re-assessment inserts a new snapshot; profiles are never mutated in place.
type CultureProfile struct {
	ProfileId          string                  `json:"profile_id"`
	EntityId           string                  `json:"entity_id"`
	EntityType         string                  `json:"entity_type"`
	Dimensions         CultureDimensions       `json:"dimensions"`
	CoreValues         []CoreValue             `json:"core_values,omitempty"`
	Communication      CommunicationStyle      `json:"communication"`
	DecisionMaking     DecisionMakingStyle     `json:"decision_making"`
	ConflictResolution ConflictResolutionStyle `json:"conflict_resolution"`
	WorkEnvironment    WorkEnvironment         `json:"work_environment"`
	Leadership         LeadershipStyle         `json:"leadership"`
	Performance        PerformanceOrientation  `json:"performance"`
	TeamDynamics       *TeamDynamics           `json:"team_dynamics,omitempty"`
	AssessmentDate     int64                   `json:"assessment_date"`
	ConfidenceLevel    float64                 `json:"confidence_level"`
}

// CultureProfileListResponse is one page of profile snapshots.
type CultureProfileListResponse struct {
	pagination.Pagination
	Profiles []CultureProfile `json:"profiles"`
}
