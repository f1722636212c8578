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

	profileModel "github.com/wso2/liftout-marketplace-service/internal/cultureprofile/model"
	"github.com/wso2/liftout-marketplace-service/internal/system/constants"
)

func newTeamProfile() profileModel.CultureProfile {
	return profileModel.CultureProfile{
		ProfileId:  "team-profile-1",
		EntityId:   "team-1",
		EntityType: constants.EntityTypeTeam,
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
			{ValueId: "v1", Name: "Excellence", Importance: 90, Category: "performance"},
			{ValueId: "v2", Name: "Experimentation", Importance: 85, Category: "innovation"},
		},
		Communication: profileModel.CommunicationStyle{
			Directness: 80,
			Formality:  40,
			Frequency:  70,
		},
		DecisionMaking: profileModel.DecisionMakingStyle{
			Centralization:  30,
			Speed:           75,
			DataOrientation: 80,
		},
		Leadership: profileModel.LeadershipStyle{
			Approach:     constants.LeadershipDemocratic,
			SupportLevel: 80,
		},
		Performance: profileModel.PerformanceOrientation{
			Meritocracy:         85,
			GoalOrientation:     80,
			AccountabilityLevel: 75,
		},
		TeamDynamics: &profileModel.TeamDynamics{
			Cohesion:             85,
			TrustLevel:           90,
			CommunicationQuality: 80,
		},
		ConfidenceLevel: 80,
	}
}

func newCompanyProfile() profileModel.CultureProfile {
	profile := newTeamProfile()
	profile.ProfileId = "company-profile-1"
	profile.EntityId = "company-1"
	profile.EntityType = constants.EntityTypeCompany
	profile.TeamDynamics = nil
	profile.ConfidenceLevel = 90
	return profile
}

func TestAssessIdenticalCulturesScoresExcellent(t *testing.T) {

	team := newTeamProfile()
	company := newCompanyProfile()

	assessment := AssessCultureCompatibility(team, company)

	// All four factors are perfect except leadership, which caps at 90 for the
	// same approach: 100*0.30 + 100*0.25 + 100*0.25 + 90*0.20 = 98.
	assert.InDelta(t, 98, assessment.OverallScore, 0.001)
	assert.Equal(t, constants.CompatibilityExcellent, assessment.CompatibilityLevel)
	assert.Equal(t, "team-profile-1", assessment.TeamProfileId)
	assert.Equal(t, "company-profile-1", assessment.CompanyProfileId)
	assert.NotEmpty(t, assessment.AssessmentId)
	assert.Empty(t, assessment.Risks)
}

func TestAssessDivergentCulturesScoresMismatched(t *testing.T) {

	team := newTeamProfile()
	company := newCompanyProfile()

	team.Dimensions = profileModel.CultureDimensions{}
	company.Dimensions = profileModel.CultureDimensions{
		PowerDistance: 100, IndividualismVsCollectivism: 100, UncertaintyAvoidance: 100,
		LongTermOrientation: 100, InnovationVsStability: 100, ProcessVsResults: 100,
		RiskTolerance: 100, TransparencyVsConfidentiality: 100,
	}
	team.CoreValues = nil
	company.CoreValues = nil
	team.Communication = profileModel.CommunicationStyle{Directness: 100, Formality: 100, Frequency: 100}
	company.Communication = profileModel.CommunicationStyle{}
	team.Leadership.Approach = constants.LeadershipLaissezFaire
	company.Leadership.Approach = constants.LeadershipAutocratic

	assessment := AssessCultureCompatibility(team, company)

	// 0*0.30 + 50*0.25 + 0*0.25 + 20*0.20 = 16.5
	assert.InDelta(t, 16.5, assessment.OverallScore, 0.001)
	assert.Equal(t, constants.CompatibilityMismatched, assessment.CompatibilityLevel)
}

func TestOverallScoreStaysWithinBounds(t *testing.T) {

	team := newTeamProfile()
	company := newCompanyProfile()

	assessment := AssessCultureCompatibility(team, company)
	assert.GreaterOrEqual(t, assessment.OverallScore, 0.0)
	assert.LessOrEqual(t, assessment.OverallScore, 100.0)
}

func TestCompatibilityLevelBoundaries(t *testing.T) {

	testCases := []struct {
		score    float64
		expected string
	}{
		{100, constants.CompatibilityExcellent},
		{85, constants.CompatibilityExcellent},
		{84.9, constants.CompatibilityGood},
		{70, constants.CompatibilityGood},
		{69.9, constants.CompatibilityModerate},
		{55, constants.CompatibilityModerate},
		{54.9, constants.CompatibilityPoor},
		{40, constants.CompatibilityPoor},
		{39.9, constants.CompatibilityMismatched},
		{0, constants.CompatibilityMismatched},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, CompatibilityLevel(tc.score), "score %v", tc.score)
	}
}

func TestLeadershipScoreIsSymmetric(t *testing.T) {

	approaches := []string{
		constants.LeadershipAutocratic,
		constants.LeadershipDemocratic,
		constants.LeadershipLaissezFaire,
		constants.LeadershipTransformational,
		constants.LeadershipServant,
	}

	for _, a := range approaches {
		for _, b := range approaches {
			assert.Equal(t, leadershipCompatibilityScore(a, b), leadershipCompatibilityScore(b, a),
				"pair %s/%s", a, b)
		}
	}
}

func TestLeadershipScorePairings(t *testing.T) {

	assert.Equal(t, 90.0, leadershipCompatibilityScore(constants.LeadershipServant, constants.LeadershipServant))
	assert.Equal(t, 85.0, leadershipCompatibilityScore(constants.LeadershipDemocratic, constants.LeadershipTransformational))
	assert.Equal(t, 20.0, leadershipCompatibilityScore(constants.LeadershipLaissezFaire, constants.LeadershipAutocratic))
	// Approaches outside the matrix fall back to neutral.
	assert.Equal(t, 50.0, leadershipCompatibilityScore("holacratic", constants.LeadershipDemocratic))
}

func TestValueScoreIsNeutralWithoutValues(t *testing.T) {

	assert.Equal(t, 50.0, valueCompatibilityScore(nil, nil))
	assert.Equal(t, 50.0, valueCompatibilityScore(newTeamProfile().CoreValues, nil))
}

func TestValueScoreIsNeutralWithoutCategoryOverlap(t *testing.T) {

	teamValues := []profileModel.CoreValue{{Importance: 90, Category: "performance"}}
	companyValues := []profileModel.CoreValue{{Importance: 90, Category: "sustainability"}}

	assert.Equal(t, 50.0, valueCompatibilityScore(teamValues, companyValues))
}

func TestValueScoreMatchesFirstValueInCategory(t *testing.T) {

	teamValues := []profileModel.CoreValue{{Importance: 80, Category: "performance"}}
	companyValues := []profileModel.CoreValue{
		{Importance: 90, Category: "performance"},
		{Importance: 20, Category: "performance"},
	}

	// Only the first company value in the category participates: 100 - |80-90|.
	assert.InDelta(t, 90, valueCompatibilityScore(teamValues, companyValues), 0.001)
}

func TestCommunicationScoreFromMeanGap(t *testing.T) {

	team := profileModel.CommunicationStyle{Directness: 80, Formality: 60, Frequency: 70}
	company := profileModel.CommunicationStyle{Directness: 60, Formality: 60, Frequency: 40}

	// Gaps 20, 0, 30; mean gap 50/3.
	assert.InDelta(t, 100-50.0/3, communicationCompatibilityScore(team, company), 0.001)
}

func TestDimensionBreakdownShape(t *testing.T) {

	team := newTeamProfile()
	company := newCompanyProfile()
	company.Dimensions.PowerDistance = 85 // gap 55
	company.Dimensions.RiskTolerance = 35 // gap 35

	details := dimensionBreakdown(team.Dimensions, company.Dimensions)
	require.Len(t, details, 6)

	expectedWeights := map[string]float64{
		"Power Distance":           20,
		"Individual vs Team Focus": 20,
		"Uncertainty Avoidance":    15,
		"Innovation vs Stability":  20,
		"Risk Tolerance":           15,
		"Transparency":             15,
	}
	for _, detail := range details {
		assert.Equal(t, expectedWeights[detail.Dimension], detail.Weight, detail.Dimension)
		assert.NotEmpty(t, detail.Recommendation, detail.Dimension)
	}

	assert.Equal(t, constants.ImpactCritical, details[0].Impact)
	assert.Equal(t, 45.0, details[0].Compatibility)
	assert.Equal(t, constants.ImpactHigh, details[4].Impact)
	assert.Equal(t, constants.ImpactLow, details[1].Impact)
}

func TestGapImpactTiers(t *testing.T) {

	assert.Equal(t, constants.ImpactCritical, gapImpact(51))
	assert.Equal(t, constants.ImpactHigh, gapImpact(50))
	assert.Equal(t, constants.ImpactHigh, gapImpact(31))
	assert.Equal(t, constants.ImpactMedium, gapImpact(30))
	assert.Equal(t, constants.ImpactMedium, gapImpact(16))
	assert.Equal(t, constants.ImpactLow, gapImpact(15))
	assert.Equal(t, constants.ImpactLow, gapImpact(0))
}

func TestConfidenceLevelIsTheLowerOfTheTwo(t *testing.T) {

	team := newTeamProfile()
	company := newCompanyProfile()
	team.ConfidenceLevel = 65
	company.ConfidenceLevel = 95

	assessment := AssessCultureCompatibility(team, company)
	assert.Equal(t, 65.0, assessment.ConfidenceLevel)
}
