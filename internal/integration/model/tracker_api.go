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

// CreateTrackerRequest is the payload for creating an integration tracker.
// AssessmentId is optional; when present the assessment's detected risks seed
// the tracker's risk register and its plan milestones seed the milestone list.
type CreateTrackerRequest struct {
	LiftoutId    string `json:"liftout_id"`
	TeamId       string `json:"team_id"`
	CompanyId    string `json:"company_id"`
	AssessmentId string `json:"assessment_id,omitempty"`
}

// PerformanceMetricsUpdate appends one entry to any of the performance series.
type PerformanceMetricsUpdate struct {
	Productivity *ProductivityMetric `json:"productivity,omitempty"`
	Quality      *QualityMetric      `json:"quality,omitempty"`
	Delivery     *DeliveryMetric     `json:"delivery,omitempty"`
	CulturalFit  *float64            `json:"cultural_fit_score,omitempty"`
}

// BusinessMetricsUpdate prepends one snapshot to any of the business series.
type BusinessMetricsUpdate struct {
	Revenue    *RevenueMetric    `json:"revenue,omitempty"`
	Cost       *CostMetric       `json:"cost,omitempty"`
	ROI        *ROIMetric        `json:"roi,omitempty"`
	Market     *MarketMetric     `json:"market,omitempty"`
	Innovation *InnovationMetric `json:"innovation,omitempty"`
	Client     *ClientMetric     `json:"client,omitempty"`
}

// StatusUpdateRequest updates the lifecycle status of a milestone or risk factor.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// TrackerStatusUpdateRequest moves the tracker through its placement lifecycle.
type TrackerStatusUpdateRequest struct {
	Status       string `json:"status"`
	CurrentPhase string `json:"current_phase,omitempty"`
}

// TrackerListResponse is one page of integration trackers.
type TrackerListResponse struct {
	pagination.Pagination
	Trackers []IntegrationTracker `json:"trackers"`
}
