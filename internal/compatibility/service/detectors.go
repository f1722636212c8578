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
	"math"

	"github.com/google/uuid"
	model "github.com/wso2/liftout-marketplace-service/internal/compatibility/model"
	profileModel "github.com/wso2/liftout-marketplace-service/internal/cultureprofile/model"
	"github.com/wso2/liftout-marketplace-service/internal/system/constants"
)

// riskDetector pairs a trigger predicate with the risk it emits. New detectors
// are added to the table without touching the aggregation logic.
type riskDetector struct {
	applies func(team, company profileModel.CultureProfile) bool
	build   func() model.CultureRisk
}

// strengthDetector pairs a trigger predicate with the strength it emits.
type strengthDetector struct {
	applies func(team, company profileModel.CultureProfile) bool
	build   func() model.CultureStrength
}

var riskDetectors = []riskDetector{
	{
		applies: func(team, company profileModel.CultureProfile) bool {
			return math.Abs(team.Communication.Directness-company.Communication.Directness) > 40
		},
		build: func() model.CultureRisk {
			return model.CultureRisk{
				RiskId:      uuid.New().String(),
				Category:    constants.RiskCategoryCommunication,
				Description: "Significant gap in communication directness between team and company.",
				Severity:    constants.SeverityHigh,
				Probability: 75,
				Impact:      "Misread feedback and friction in early interactions between the team and its new colleagues.",
				MitigationStrategies: []string{
					"Run a joint communication-norms workshop in the first week.",
					"Assign a cultural liaison to translate feedback styles in both directions.",
					"Agree on explicit written conventions for decisions and critique.",
				},
				Timeframe: constants.TimeframeImmediate,
			}
		},
	},
	{
		applies: func(team, company profileModel.CultureProfile) bool {
			return math.Abs(team.DecisionMaking.Centralization-company.DecisionMaking.Centralization) > 35
		},
		build: func() model.CultureRisk {
			return model.CultureRisk{
				RiskId:      uuid.New().String(),
				Category:    constants.RiskCategoryLeadership,
				Description: "Mismatch in decision-making centralization between team and company.",
				Severity:    constants.SeverityMedium,
				Probability: 65,
				Impact:      "Stalled decisions and unclear ownership while the team adjusts to a different approval chain.",
				MitigationStrategies: []string{
					"Document decision rights and escalation paths before the start date.",
					"Grant the team a defined autonomy envelope for day-to-day calls.",
					"Review decision turnaround in the first monthly retrospective.",
				},
				Timeframe: constants.TimeframeShortTerm,
			}
		},
	},
}

var strengthDetectors = []strengthDetector{
	{
		applies: func(team, company profileModel.CultureProfile) bool {
			return team.Dimensions.InnovationVsStability > 70 && company.Dimensions.InnovationVsStability > 70
		},
		build: func() model.CultureStrength {
			return model.CultureStrength{
				StrengthId:  uuid.New().String(),
				Description: "Both parties score strongly on innovation, creating natural synergy for experimentation.",
				Synergy:     85,
				LeverageOpportunities: []string{
					"Stand up a joint innovation initiative within the first quarter.",
					"Give the team early access to the company's experimentation budget.",
					"Pair team members with company innovators on a shared prototype.",
				},
			}
		},
	},
	{
		applies: func(team, company profileModel.CultureProfile) bool {
			return team.Performance.Meritocracy > 80 && company.Performance.Meritocracy > 80
		},
		build: func() model.CultureStrength {
			return model.CultureStrength{
				StrengthId:  uuid.New().String(),
				Description: "Shared meritocratic performance culture aligns incentives from day one.",
				Synergy:     90,
				LeverageOpportunities: []string{
					"Map the team onto the company's performance framework before start.",
					"Publish transparent goal and reward criteria for the first review cycle.",
					"Use early wins to showcase the team inside the company's recognition channels.",
				},
			}
		},
	},
}

// detectCultureRisks evaluates every risk rule in order and collects the
// triggered risks.
func detectCultureRisks(team, company profileModel.CultureProfile) []model.CultureRisk {

	risks := make([]model.CultureRisk, 0)
	for _, detector := range riskDetectors {
		if detector.applies(team, company) {
			risks = append(risks, detector.build())
		}
	}
	return risks
}

// detectCultureStrengths evaluates every strength rule in order and collects
// the triggered strengths.
func detectCultureStrengths(team, company profileModel.CultureProfile) []model.CultureStrength {

	strengths := make([]model.CultureStrength, 0)
	for _, detector := range strengthDetectors {
		if detector.applies(team, company) {
			strengths = append(strengths, detector.build())
		}
	}
	return strengths
}
