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
	"time"

	"github.com/google/uuid"
	model "github.com/wso2/liftout-marketplace-service/internal/compatibility/model"
	profileModel "github.com/wso2/liftout-marketplace-service/internal/cultureprofile/model"
	"github.com/wso2/liftout-marketplace-service/internal/system/constants"
)

// Weights of the four compatibility factors in the overall score. These sum to 1
// and are distinct from the per-dimension display weights in dimensionBreakdownSpecs.
const (
	dimensionFactorWeight     = 0.30
	valueFactorWeight         = 0.25
	communicationFactorWeight = 0.25
	leadershipFactorWeight    = 0.20
)

// Score awarded when both parties share the same leadership approach.
const sameApproachLeadershipScore = 90

// Neutral fallback when value lists are missing or no categories overlap,
// and for leadership approach pairs absent from the matrix.
const neutralScore = 50

// leadershipPairScores is the symmetric compatibility matrix for differing
// leadership approaches, keyed by the ordered pair of approach names.
var leadershipPairScores = buildLeadershipPairScores()

func buildLeadershipPairScores() map[string]float64 {
	scores := map[string]float64{}
	pair := func(a, b string, score float64) {
		scores[leadershipPairKey(a, b)] = score
	}
	pair(constants.LeadershipDemocratic, constants.LeadershipTransformational, 85)
	pair(constants.LeadershipDemocratic, constants.LeadershipServant, 80)
	pair(constants.LeadershipDemocratic, constants.LeadershipLaissezFaire, 60)
	pair(constants.LeadershipDemocratic, constants.LeadershipAutocratic, 30)
	pair(constants.LeadershipTransformational, constants.LeadershipServant, 75)
	pair(constants.LeadershipTransformational, constants.LeadershipLaissezFaire, 50)
	pair(constants.LeadershipTransformational, constants.LeadershipAutocratic, 40)
	pair(constants.LeadershipServant, constants.LeadershipLaissezFaire, 65)
	pair(constants.LeadershipServant, constants.LeadershipAutocratic, 25)
	pair(constants.LeadershipLaissezFaire, constants.LeadershipAutocratic, 20)
	return scores
}

// AssessCultureCompatibility compares a team profile with a company profile and
// produces a complete compatibility assessment. The computation is pure and
// total: sparse inputs (missing values, no overlapping categories) degrade to
// neutral scores rather than failing.
func AssessCultureCompatibility(team, company profileModel.CultureProfile) model.CompatibilityAssessment {

	assessmentDate := time.Now().Unix()

	dimensionScore := dimensionCompatibilityScore(team.Dimensions, company.Dimensions)
	valueScore := valueCompatibilityScore(team.CoreValues, company.CoreValues)
	communicationScore := communicationCompatibilityScore(team.Communication, company.Communication)
	leadershipScore := leadershipCompatibilityScore(team.Leadership.Approach, company.Leadership.Approach)

	overallScore := dimensionScore*dimensionFactorWeight +
		valueScore*valueFactorWeight +
		communicationScore*communicationFactorWeight +
		leadershipScore*leadershipFactorWeight

	return model.CompatibilityAssessment{
		AssessmentId:       uuid.New().String(),
		TeamProfileId:      team.ProfileId,
		CompanyProfileId:   company.ProfileId,
		OverallScore:       overallScore,
		CompatibilityLevel: CompatibilityLevel(overallScore),
		DimensionDetails:   dimensionBreakdown(team.Dimensions, company.Dimensions),
		Risks:              detectCultureRisks(team, company),
		Strengths:          detectCultureStrengths(team, company),
		Plan:               buildIntegrationPlan(assessmentDate),
		AssessmentDate:     assessmentDate,
		ConfidenceLevel:    math.Min(team.ConfidenceLevel, company.ConfidenceLevel),
	}
}

// dimensionCompatibilityScore is the unweighted mean of the per-dimension
// compatibilities across all eight culture dimensions.
func dimensionCompatibilityScore(team, company profileModel.CultureDimensions) float64 {

	pairs := dimensionPairs(team, company)
	total := 0.0
	for _, pair := range pairs {
		total += pairCompatibility(pair.teamScore, pair.companyScore)
	}
	return total / float64(len(pairs))
}

// valueCompatibilityScore matches each team core value against the first company
// value in the same category and averages the importance alignment of the
// matched pairs. Missing values or zero category overlap yield the neutral
// score so sparse data neither rewards nor punishes a pairing.
func valueCompatibilityScore(teamValues, companyValues []profileModel.CoreValue) float64 {

	if len(teamValues) == 0 || len(companyValues) == 0 {
		return neutralScore
	}

	total := 0.0
	matched := 0
	for _, teamValue := range teamValues {
		for _, companyValue := range companyValues {
			if companyValue.Category == teamValue.Category {
				total += math.Max(0, 100-math.Abs(teamValue.Importance-companyValue.Importance))
				matched++
				break
			}
		}
	}
	if matched == 0 {
		return neutralScore
	}
	return total / float64(matched)
}

// communicationCompatibilityScore compares directness, formality, and contact
// frequency and converts the mean gap into a compatibility score.
func communicationCompatibilityScore(team, company profileModel.CommunicationStyle) float64 {

	meanGap := (math.Abs(team.Directness-company.Directness) +
		math.Abs(team.Formality-company.Formality) +
		math.Abs(team.Frequency-company.Frequency)) / 3
	return 100 - meanGap
}

// leadershipCompatibilityScore scores the pairing of leadership approaches.
// Identical approaches score a fixed 90; differing approaches are looked up in
// the symmetric pair matrix and unknown pairings fall back to neutral.
func leadershipCompatibilityScore(teamApproach, companyApproach string) float64 {

	if teamApproach == companyApproach {
		return sameApproachLeadershipScore
	}
	if score, ok := leadershipPairScores[leadershipPairKey(teamApproach, companyApproach)]; ok {
		return score
	}
	return neutralScore
}

// CompatibilityLevel classifies an overall score into its categorical level.
func CompatibilityLevel(overallScore float64) string {

	switch {
	case overallScore >= 85:
		return constants.CompatibilityExcellent
	case overallScore >= 70:
		return constants.CompatibilityGood
	case overallScore >= 55:
		return constants.CompatibilityModerate
	case overallScore >= 40:
		return constants.CompatibilityPoor
	default:
		return constants.CompatibilityMismatched
	}
}

type dimensionPair struct {
	name         string
	teamScore    float64
	companyScore float64
}

// dimensionPairs lists all eight dimensions with both parties' scores.
func dimensionPairs(team, company profileModel.CultureDimensions) []dimensionPair {
	return []dimensionPair{
		{"power_distance", team.PowerDistance, company.PowerDistance},
		{"individualism_vs_collectivism", team.IndividualismVsCollectivism, company.IndividualismVsCollectivism},
		{"uncertainty_avoidance", team.UncertaintyAvoidance, company.UncertaintyAvoidance},
		{"long_term_orientation", team.LongTermOrientation, company.LongTermOrientation},
		{"innovation_vs_stability", team.InnovationVsStability, company.InnovationVsStability},
		{"process_vs_results", team.ProcessVsResults, company.ProcessVsResults},
		{"risk_tolerance", team.RiskTolerance, company.RiskTolerance},
		{"transparency_vs_confidentiality", team.TransparencyVsConfidentiality, company.TransparencyVsConfidentiality},
	}
}

func pairCompatibility(teamScore, companyScore float64) float64 {
	return math.Max(0, 100-math.Abs(teamScore-companyScore))
}

// breakdownSpec describes one dimension of the display breakdown. The weight is
// a presentation weight only; the overall score uses the four factor weights.
type breakdownSpec struct {
	displayName string
	weight      float64
	teamScore   func(d profileModel.CultureDimensions) float64
}

// dimensionBreakdownSpecs is the curated subset of dimensions surfaced in the
// detailed breakdown, each with its display weight.
var dimensionBreakdownSpecs = []breakdownSpec{
	{"Power Distance", 20, func(d profileModel.CultureDimensions) float64 { return d.PowerDistance }},
	{"Individual vs Team Focus", 20, func(d profileModel.CultureDimensions) float64 { return d.IndividualismVsCollectivism }},
	{"Uncertainty Avoidance", 15, func(d profileModel.CultureDimensions) float64 { return d.UncertaintyAvoidance }},
	{"Innovation vs Stability", 20, func(d profileModel.CultureDimensions) float64 { return d.InnovationVsStability }},
	{"Risk Tolerance", 15, func(d profileModel.CultureDimensions) float64 { return d.RiskTolerance }},
	{"Transparency", 15, func(d profileModel.CultureDimensions) float64 { return d.TransparencyVsConfidentiality }},
}

// dimensionBreakdown produces the per-dimension display detail for the curated
// dimension subset.
func dimensionBreakdown(team, company profileModel.CultureDimensions) []model.DimensionCompatibility {

	details := make([]model.DimensionCompatibility, 0, len(dimensionBreakdownSpecs))
	for _, spec := range dimensionBreakdownSpecs {
		teamScore := spec.teamScore(team)
		companyScore := spec.teamScore(company)
		gap := math.Abs(teamScore - companyScore)
		details = append(details, model.DimensionCompatibility{
			Dimension:      spec.displayName,
			TeamScore:      teamScore,
			CompanyScore:   companyScore,
			Gap:            gap,
			Compatibility:  math.Max(0, 100-gap),
			Weight:         spec.weight,
			Impact:         gapImpact(gap),
			Recommendation: dimensionRecommendation(spec.displayName, teamScore, companyScore),
		})
	}
	return details
}

// gapImpact tiers a dimension gap by how disruptive it is likely to be.
func gapImpact(gap float64) string {

	switch {
	case gap > 50:
		return constants.ImpactCritical
	case gap > 30:
		return constants.ImpactHigh
	case gap > 15:
		return constants.ImpactMedium
	default:
		return constants.ImpactLow
	}
}

// dimensionRecommendation generates advisory text keyed on which party scores
// higher. Two dimensions carry tailored wording; the rest share a generic template.
func dimensionRecommendation(displayName string, teamScore, companyScore float64) string {

	switch displayName {
	case "Individual vs Team Focus":
		if teamScore > companyScore {
			return "The team leans more individualistic than the company; establish shared goals and team-based recognition early."
		}
		return "The company emphasises individual contribution more than the team; protect the team's collective working style during onboarding."
	case "Innovation vs Stability":
		if teamScore > companyScore {
			return "The team is more experimentation-driven than the company; agree on an innovation sandbox with clear guardrails."
		}
		return "The company pushes innovation harder than the team prefers; pace change initiatives and celebrate incremental wins."
	}

	if teamScore > companyScore {
		return fmt.Sprintf("The team scores higher on %s than the company; set explicit expectations for this area during onboarding.", displayName)
	}
	if companyScore > teamScore {
		return fmt.Sprintf("The company scores higher on %s than the team; brief the team on how this plays out day to day.", displayName)
	}
	return fmt.Sprintf("Both parties are aligned on %s; no targeted intervention required.", displayName)
}

func leadershipPairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}
