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
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	compatibilityModel "github.com/wso2/liftout-marketplace-service/internal/compatibility/model"
	assessmentProvider "github.com/wso2/liftout-marketplace-service/internal/compatibility/provider"
	model "github.com/wso2/liftout-marketplace-service/internal/integration/model"
	"github.com/wso2/liftout-marketplace-service/internal/integration/store"
	"github.com/wso2/liftout-marketplace-service/internal/system/constants"
	errors2 "github.com/wso2/liftout-marketplace-service/internal/system/errors"
	"github.com/wso2/liftout-marketplace-service/internal/system/log"
	"github.com/wso2/liftout-marketplace-service/internal/system/pagination"
)

// IntegrationTrackerServiceInterface defines the service interface.
type IntegrationTrackerServiceInterface interface {
	CreateTracker(request model.CreateTrackerRequest) (*model.IntegrationTracker, error)
	GetTracker(trackerId string) (*model.IntegrationTracker, error)
	ListTrackers(limit int, after *pagination.Cursor) (*model.TrackerListResponse, error)
	RecordPerformanceMetrics(trackerId string, update model.PerformanceMetricsUpdate) (*model.IntegrationTracker, error)
	RecordBusinessMetrics(trackerId string, update model.BusinessMetricsUpdate) (*model.IntegrationTracker, error)
	UpdateMilestoneStatus(trackerId, milestoneId, status string) (*model.IntegrationTracker, error)
	UpdateRiskFactorStatus(trackerId, riskId, status string) (*model.IntegrationTracker, error)
	UpdateTrackerStatus(trackerId string, update model.TrackerStatusUpdateRequest) (*model.IntegrationTracker, error)
	RecomputeHealth(trackerId string) (*model.HealthReport, error)
}

// IntegrationTrackerService is the default implementation.
type IntegrationTrackerService struct{}

// GetIntegrationTrackerService returns a new instance.
func GetIntegrationTrackerService() IntegrationTrackerServiceInterface {
	return &IntegrationTrackerService{}
}

// CreateTracker creates an integration tracker for a placed team. When an
// assessment id is supplied, the assessment's detected culture risks seed the
// risk register and its plan milestones seed the milestone list, so that
// tracking starts from the pre-placement view of the engagement.
func (ts *IntegrationTrackerService) CreateTracker(request model.CreateTrackerRequest) (*model.IntegrationTracker, error) {

	if request.LiftoutId == "" || request.TeamId == "" || request.CompanyId == "" {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.TRACKER_VALIDATION.Code,
			Message:     errors2.TRACKER_VALIDATION.Message,
			Description: "liftout_id, team_id and company_id are required.",
		}, http.StatusBadRequest)
	}

	now := time.Now().Unix()
	tracker := model.IntegrationTracker{
		TrackerId:    uuid.New().String(),
		LiftoutId:    request.LiftoutId,
		TeamId:       request.TeamId,
		CompanyId:    request.CompanyId,
		CurrentPhase: constants.TrackerStatusOnboarding,
		Phases:       initialPhases(),
		Status:       constants.TrackerStatusPreStart,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if request.AssessmentId != "" {
		assessment, err := assessmentProvider.NewCompatibilityProvider().
			GetCompatibilityService().GetAssessment(request.AssessmentId)
		if err != nil {
			return nil, err
		}
		tracker.RiskFactors = seedRiskFactors(assessment.Risks, now)
		tracker.Milestones = seedMilestones(assessment.Plan.Milestones)
	}

	refreshDerivedFields(&tracker)

	if err := store.AddTracker(tracker); err != nil {
		return nil, err
	}
	log.GetLogger().Info(fmt.Sprintf("Created integration tracker %s for liftout %s",
		tracker.TrackerId, tracker.LiftoutId))
	return &tracker, nil
}

// GetTracker retrieves a tracker by id.
func (ts *IntegrationTrackerService) GetTracker(trackerId string) (*model.IntegrationTracker, error) {

	tracker, err := store.GetTrackerByID(trackerId)
	if err != nil {
		return nil, err
	}
	if tracker == nil {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.TRACKER_NOT_FOUND.Code,
			Message:     errors2.TRACKER_NOT_FOUND.Message,
			Description: fmt.Sprintf("No integration tracker found for id: %s", trackerId),
		}, http.StatusNotFound)
	}
	return tracker, nil
}

// ListTrackers retrieves one page of integration trackers, most recently
// updated first.
func (ts *IntegrationTrackerService) ListTrackers(limit int,
	after *pagination.Cursor) (*model.TrackerListResponse, error) {

	trackers, err := store.GetTrackerPage(limit, after)
	if err != nil {
		return nil, err
	}

	page := model.TrackerListResponse{Trackers: trackers}
	if len(trackers) > limit {
		page.Trackers = trackers[:limit]
		last := page.Trackers[limit-1]
		page.NextCursor = pagination.EncodeCursor(pagination.Cursor{
			Timestamp: last.UpdatedAt,
			Id:        last.TrackerId,
		})
	}
	if page.Trackers == nil {
		page.Trackers = []model.IntegrationTracker{}
	}
	page.Count = len(page.Trackers)
	page.PageSize = limit
	return &page, nil
}

// RecordPerformanceMetrics appends the supplied entries to their performance
// series and refreshes the derived health fields.
func (ts *IntegrationTrackerService) RecordPerformanceMetrics(trackerId string,
	update model.PerformanceMetricsUpdate) (*model.IntegrationTracker, error) {

	if err := validatePerformanceUpdate(update); err != nil {
		return nil, err
	}

	tracker, err := ts.GetTracker(trackerId)
	if err != nil {
		return nil, err
	}

	if update.Productivity != nil {
		tracker.Performance.Productivity = append(tracker.Performance.Productivity, *update.Productivity)
	}
	if update.Quality != nil {
		tracker.Performance.Quality = append(tracker.Performance.Quality, *update.Quality)
	}
	if update.Delivery != nil {
		tracker.Performance.Delivery = append(tracker.Performance.Delivery, *update.Delivery)
	}
	if update.CulturalFit != nil {
		tracker.CulturalIntegration.CulturalFitScore = *update.CulturalFit
		tracker.CulturalIntegration.LastSurveyDate = time.Now().Unix()
	}

	return persistRefreshed(tracker)
}

// RecordBusinessMetrics prepends the supplied snapshots to their business
// series, keeping the most recent snapshot at the head, and refreshes the
// derived health fields.
func (ts *IntegrationTrackerService) RecordBusinessMetrics(trackerId string,
	update model.BusinessMetricsUpdate) (*model.IntegrationTracker, error) {

	if err := validateBusinessUpdate(update); err != nil {
		return nil, err
	}

	tracker, err := ts.GetTracker(trackerId)
	if err != nil {
		return nil, err
	}

	if update.Revenue != nil {
		tracker.BusinessResults.Revenue = append([]model.RevenueMetric{*update.Revenue}, tracker.BusinessResults.Revenue...)
	}
	if update.Cost != nil {
		tracker.BusinessResults.Cost = append([]model.CostMetric{*update.Cost}, tracker.BusinessResults.Cost...)
	}
	if update.ROI != nil {
		tracker.BusinessResults.ROI = append([]model.ROIMetric{*update.ROI}, tracker.BusinessResults.ROI...)
	}
	if update.Market != nil {
		tracker.BusinessResults.Market = append([]model.MarketMetric{*update.Market}, tracker.BusinessResults.Market...)
	}
	if update.Innovation != nil {
		tracker.BusinessResults.Innovation = append([]model.InnovationMetric{*update.Innovation}, tracker.BusinessResults.Innovation...)
	}
	if update.Client != nil {
		tracker.BusinessResults.Client = append([]model.ClientMetric{*update.Client}, tracker.BusinessResults.Client...)
	}

	return persistRefreshed(tracker)
}

// UpdateMilestoneStatus transitions one milestone through its lifecycle. Only
// transitions permitted by the milestone state machine are accepted.
func (ts *IntegrationTrackerService) UpdateMilestoneStatus(trackerId, milestoneId,
	status string) (*model.IntegrationTracker, error) {

	tracker, err := ts.GetTracker(trackerId)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range tracker.Milestones {
		if tracker.Milestones[i].MilestoneId != milestoneId {
			continue
		}
		found = true
		current := tracker.Milestones[i].Status
		if !isAllowedTransition(constants.AllowedMilestoneStatusTransitions, current, status) {
			return nil, errors2.NewClientError(errors2.ErrorMessage{
				Code:        errors2.INVALID_STATUS_TRANSITION.Code,
				Message:     errors2.INVALID_STATUS_TRANSITION.Message,
				Description: fmt.Sprintf("Milestone cannot move from %s to %s.", current, status),
			}, http.StatusBadRequest)
		}
		tracker.Milestones[i].Status = status
		if status == constants.MilestoneStatusCompleted {
			tracker.Milestones[i].CompletedDate = time.Now().Unix()
		}
		break
	}
	if !found {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.MILESTONE_NOT_FOUND.Code,
			Message:     errors2.MILESTONE_NOT_FOUND.Message,
			Description: fmt.Sprintf("No milestone found for id: %s", milestoneId),
		}, http.StatusNotFound)
	}

	return persistRefreshed(tracker)
}

// UpdateRiskFactorStatus transitions one risk factor through its lifecycle.
// Only transitions permitted by the risk state machine are accepted.
func (ts *IntegrationTrackerService) UpdateRiskFactorStatus(trackerId, riskId,
	status string) (*model.IntegrationTracker, error) {

	tracker, err := ts.GetTracker(trackerId)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range tracker.RiskFactors {
		if tracker.RiskFactors[i].RiskId != riskId {
			continue
		}
		found = true
		current := tracker.RiskFactors[i].Status
		if !isAllowedTransition(constants.AllowedRiskStatusTransitions, current, status) {
			return nil, errors2.NewClientError(errors2.ErrorMessage{
				Code:        errors2.INVALID_STATUS_TRANSITION.Code,
				Message:     errors2.INVALID_STATUS_TRANSITION.Message,
				Description: fmt.Sprintf("Risk factor cannot move from %s to %s.", current, status),
			}, http.StatusBadRequest)
		}
		tracker.RiskFactors[i].Status = status
		break
	}
	if !found {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.RISK_FACTOR_NOT_FOUND.Code,
			Message:     errors2.RISK_FACTOR_NOT_FOUND.Message,
			Description: fmt.Sprintf("No risk factor found for id: %s", riskId),
		}, http.StatusNotFound)
	}

	return persistRefreshed(tracker)
}

// UpdateTrackerStatus moves the tracker through the placement lifecycle and
// optionally advances the current phase. Phase trackers are stamped as the
// lifecycle passes through them.
func (ts *IntegrationTrackerService) UpdateTrackerStatus(trackerId string,
	update model.TrackerStatusUpdateRequest) (*model.IntegrationTracker, error) {

	if !constants.AllowedTrackerStatuses[update.Status] {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.TRACKER_VALIDATION.Code,
			Message:     errors2.TRACKER_VALIDATION.Message,
			Description: fmt.Sprintf("Unknown tracker status: %s", update.Status),
		}, http.StatusBadRequest)
	}

	tracker, err := ts.GetTracker(trackerId)
	if err != nil {
		return nil, err
	}

	if update.CurrentPhase != "" && !advancePhases(tracker, update.CurrentPhase) {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.TRACKER_VALIDATION.Code,
			Message:     errors2.TRACKER_VALIDATION.Message,
			Description: fmt.Sprintf("Unknown tracker phase: %s", update.CurrentPhase),
		}, http.StatusBadRequest)
	}
	tracker.Status = update.Status

	return persistRefreshed(tracker)
}

// RecomputeHealth re-runs the health scorer over the current tracker snapshot,
// persists the refreshed tracker, and returns the report.
func (ts *IntegrationTrackerService) RecomputeHealth(trackerId string) (*model.HealthReport, error) {

	tracker, err := ts.GetTracker(trackerId)
	if err != nil {
		return nil, err
	}

	report := ScoreIntegrationHealth(*tracker)
	if _, err := persistRefreshed(tracker); err != nil {
		return nil, err
	}
	return &report, nil
}

// persistRefreshed recomputes the derived health fields and stores the tracker.
func persistRefreshed(tracker *model.IntegrationTracker) (*model.IntegrationTracker, error) {

	refreshDerivedFields(tracker)
	if err := store.UpdateTracker(*tracker); err != nil {
		return nil, err
	}
	return tracker, nil
}

// refreshDerivedFields replaces the tracker's health score, retention risk,
// early warnings, and overall progress wholesale from the current snapshot.
func refreshDerivedFields(tracker *model.IntegrationTracker) {

	report := ScoreIntegrationHealth(*tracker)
	tracker.HealthScore = report.HealthScore
	tracker.RetentionRisk = report.RetentionRisk
	tracker.EarlyWarnings = report.EarlyWarnings
	tracker.OverallProgress = overallProgress(tracker.Milestones)
	tracker.UpdatedAt = time.Now().Unix()
}

// overallProgress is the completed share of all milestones. Unlike the health
// milestone factor, a tracker without milestones has made no progress yet.
func overallProgress(milestones []model.IntegrationMilestone) float64 {

	if len(milestones) == 0 {
		return 0
	}
	completed := 0
	for _, milestone := range milestones {
		if milestone.Status == constants.MilestoneStatusCompleted {
			completed++
		}
	}
	return float64(completed) / float64(len(milestones)) * 100
}

func initialPhases() []model.PhaseTracker {

	phaseNames := []string{
		constants.TrackerStatusOnboarding,
		constants.TrackerStatusIntegration,
		constants.TrackerStatusStabilization,
		constants.TrackerStatusOptimization,
	}
	phases := make([]model.PhaseTracker, 0, len(phaseNames))
	for _, name := range phaseNames {
		phases = append(phases, model.PhaseTracker{
			Phase:  name,
			Status: constants.MilestoneStatusPending,
		})
	}
	return phases
}

// seedRiskFactors converts assessment culture risks into tracked risk factors,
// all starting in the identified state.
func seedRiskFactors(risks []compatibilityModel.CultureRisk, identifiedAt int64) []model.RiskFactor {

	factors := make([]model.RiskFactor, 0, len(risks))
	for _, risk := range risks {
		factors = append(factors, model.RiskFactor{
			RiskId:       risk.RiskId,
			Category:     risk.Category,
			Description:  risk.Description,
			Severity:     risk.Severity,
			Status:       constants.RiskStatusIdentified,
			Impact:       impactForSeverity(risk.Severity),
			Mitigation:   strings.Join(risk.MitigationStrategies, "; "),
			IdentifiedAt: identifiedAt,
		})
	}
	return factors
}

// seedMilestones converts plan milestones into tracked milestones, all
// starting in the pending state.
func seedMilestones(planMilestones []compatibilityModel.PlanMilestone) []model.IntegrationMilestone {

	milestones := make([]model.IntegrationMilestone, 0, len(planMilestones))
	for _, planMilestone := range planMilestones {
		milestones = append(milestones, model.IntegrationMilestone{
			MilestoneId: uuid.New().String(),
			Name:        planMilestone.Name,
			Description: planMilestone.Description,
			Status:      constants.MilestoneStatusPending,
			TargetDate:  planMilestone.TargetDate,
		})
	}
	return milestones
}

// impactForSeverity maps a risk severity to the impact tier the warning rules
// count against.
func impactForSeverity(severity string) string {

	switch severity {
	case constants.SeverityCritical, constants.SeverityHigh:
		return constants.ImpactHigh
	case constants.SeverityMedium:
		return constants.ImpactMedium
	default:
		return constants.ImpactLow
	}
}

// advancePhases marks the named phase in progress, completes every phase
// before it, and records start and end timestamps as phases change state. It
// reports whether the named phase exists; an unknown phase name leaves the
// tracker untouched.
func advancePhases(tracker *model.IntegrationTracker, currentPhase string) bool {

	target := -1
	for i := range tracker.Phases {
		if tracker.Phases[i].Phase == currentPhase {
			target = i
			break
		}
	}
	if target < 0 {
		return false
	}

	now := time.Now().Unix()
	for i := 0; i < target; i++ {
		if tracker.Phases[i].Status == constants.MilestoneStatusCompleted {
			continue
		}
		tracker.Phases[i].Status = constants.MilestoneStatusCompleted
		tracker.Phases[i].Progress = 100
		if tracker.Phases[i].EndDate == 0 {
			tracker.Phases[i].EndDate = now
		}
	}
	if tracker.Phases[target].Status == constants.MilestoneStatusPending {
		tracker.Phases[target].Status = constants.MilestoneStatusInProgress
		tracker.Phases[target].StartDate = now
	}
	tracker.CurrentPhase = currentPhase
	return true
}

func isAllowedTransition(transitions map[string][]string, from, to string) bool {

	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func validatePerformanceUpdate(update model.PerformanceMetricsUpdate) error {

	if update.Productivity == nil && update.Quality == nil && update.Delivery == nil && update.CulturalFit == nil {
		return metricValidationError("At least one performance metric is required.")
	}
	if update.Productivity != nil {
		if update.Productivity.Period == "" {
			return metricValidationError("Productivity metric requires a period.")
		}
		if update.Productivity.VelocityScore < 0 || update.Productivity.VelocityScore > 100 {
			return metricValidationError("Velocity score must be between 0 and 100.")
		}
	}
	if update.Quality != nil {
		if update.Quality.Period == "" {
			return metricValidationError("Quality metric requires a period.")
		}
		if update.Quality.CustomerSatisfactionScore < 0 || update.Quality.CustomerSatisfactionScore > 10 {
			return metricValidationError("Customer satisfaction score must be between 0 and 10.")
		}
	}
	if update.Delivery != nil {
		if update.Delivery.Period == "" {
			return metricValidationError("Delivery metric requires a period.")
		}
		if update.Delivery.OnTimeDelivery < 0 || update.Delivery.OnTimeDelivery > 100 {
			return metricValidationError("On-time delivery must be between 0 and 100.")
		}
	}
	if update.CulturalFit != nil && (*update.CulturalFit < 0 || *update.CulturalFit > 100) {
		return metricValidationError("Cultural fit score must be between 0 and 100.")
	}
	return nil
}

func validateBusinessUpdate(update model.BusinessMetricsUpdate) error {

	if update.Revenue == nil && update.Cost == nil && update.ROI == nil &&
		update.Market == nil && update.Innovation == nil && update.Client == nil {
		return metricValidationError("At least one business metric is required.")
	}
	if update.Revenue != nil && update.Revenue.Period == "" {
		return metricValidationError("Revenue metric requires a period.")
	}
	if update.Cost != nil && update.Cost.Period == "" {
		return metricValidationError("Cost metric requires a period.")
	}
	if update.ROI != nil && update.ROI.Period == "" {
		return metricValidationError("ROI metric requires a period.")
	}
	if update.Market != nil && update.Market.Period == "" {
		return metricValidationError("Market metric requires a period.")
	}
	if update.Innovation != nil && update.Innovation.Period == "" {
		return metricValidationError("Innovation metric requires a period.")
	}
	if update.Client != nil {
		if update.Client.Period == "" {
			return metricValidationError("Client metric requires a period.")
		}
		if update.Client.ClientSatisfactionScore < 0 || update.Client.ClientSatisfactionScore > 10 {
			return metricValidationError("Client satisfaction score must be between 0 and 10.")
		}
	}
	return nil
}

func metricValidationError(description string) error {

	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.METRIC_VALIDATION.Code,
		Message:     errors2.METRIC_VALIDATION.Message,
		Description: description,
	}, http.StatusBadRequest)
}
