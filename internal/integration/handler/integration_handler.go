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

package handler

import (
	"encoding/json"
	"net/http"

	model "github.com/wso2/liftout-marketplace-service/internal/integration/model"
	"github.com/wso2/liftout-marketplace-service/internal/integration/provider"
	"github.com/wso2/liftout-marketplace-service/internal/system/errors"
	"github.com/wso2/liftout-marketplace-service/internal/system/pagination"
	"github.com/wso2/liftout-marketplace-service/internal/system/utils"
	"github.com/wso2/liftout-marketplace-service/internal/system/workers"
)

type IntegrationHandler struct{}

func NewIntegrationHandler() *IntegrationHandler {
	return &IntegrationHandler{}
}

// CreateTracker handles POST /integration-trackers
func (h *IntegrationHandler) CreateTracker(w http.ResponseWriter, r *http.Request) {

	if err := utils.AuthnAndAuthz(r, "integration_tracker:create"); err != nil {
		utils.HandleError(w, err)
		return
	}

	var request model.CreateTrackerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.TRACKER_VALIDATION.Code,
			Message:     errors.TRACKER_VALIDATION.Message,
			Description: utils.HandleDecodeError(err, "integration tracker"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	service := provider.NewIntegrationProvider().GetIntegrationTrackerService()
	tracker, err := service.CreateTracker(request)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, tracker)
}

// GetTracker handles GET /integration-trackers/{id}
func (h *IntegrationHandler) GetTracker(w http.ResponseWriter, r *http.Request) {

	if err := utils.AuthnAndAuthz(r, "integration_tracker:view"); err != nil {
		utils.HandleError(w, err)
		return
	}

	trackerId := r.PathValue("id")
	if trackerId == "" {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: "Tracker id is required to fetch the tracker.",
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	service := provider.NewIntegrationProvider().GetIntegrationTrackerService()
	tracker, err := service.GetTracker(trackerId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, tracker)
}

// GetTrackers handles GET /integration-trackers with cursor paging via limit
// and cursor.
func (h *IntegrationHandler) GetTrackers(w http.ResponseWriter, r *http.Request) {

	if err := utils.AuthnAndAuthz(r, "integration_tracker:view"); err != nil {
		utils.HandleError(w, err)
		return
	}

	limit, err := pagination.ParseLimit(r)
	if err != nil {
		utils.HandleError(w, listParamError("Invalid limit query parameter."))
		return
	}
	cursor, err := pagination.DecodeCursor(r.URL.Query().Get("cursor"))
	if err != nil {
		utils.HandleError(w, listParamError("Invalid cursor query parameter."))
		return
	}

	service := provider.NewIntegrationProvider().GetIntegrationTrackerService()
	page, err := service.ListTrackers(limit, cursor)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, page)
}

func listParamError(description string) error {
	return errors.NewClientError(errors.ErrorMessage{
		Code:        errors.BAD_REQUEST.Code,
		Message:     errors.BAD_REQUEST.Message,
		Description: description,
	}, http.StatusBadRequest)
}

// RecordPerformanceMetrics handles POST /integration-trackers/{id}/performance-metrics
func (h *IntegrationHandler) RecordPerformanceMetrics(w http.ResponseWriter, r *http.Request) {

	if err := utils.AuthnAndAuthz(r, "integration_tracker:update"); err != nil {
		utils.HandleError(w, err)
		return
	}

	var update model.PerformanceMetricsUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.METRIC_VALIDATION.Code,
			Message:     errors.METRIC_VALIDATION.Message,
			Description: utils.HandleDecodeError(err, "performance metrics"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	trackerId := r.PathValue("id")
	service := provider.NewIntegrationProvider().GetIntegrationTrackerService()
	tracker, err := service.RecordPerformanceMetrics(trackerId, update)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	workers.EnqueueHealthRecompute(trackerId)
	utils.WriteJSONResponse(w, http.StatusOK, tracker)
}

// RecordBusinessMetrics handles POST /integration-trackers/{id}/business-metrics
func (h *IntegrationHandler) RecordBusinessMetrics(w http.ResponseWriter, r *http.Request) {

	if err := utils.AuthnAndAuthz(r, "integration_tracker:update"); err != nil {
		utils.HandleError(w, err)
		return
	}

	var update model.BusinessMetricsUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.METRIC_VALIDATION.Code,
			Message:     errors.METRIC_VALIDATION.Message,
			Description: utils.HandleDecodeError(err, "business metrics"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	trackerId := r.PathValue("id")
	service := provider.NewIntegrationProvider().GetIntegrationTrackerService()
	tracker, err := service.RecordBusinessMetrics(trackerId, update)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	workers.EnqueueHealthRecompute(trackerId)
	utils.WriteJSONResponse(w, http.StatusOK, tracker)
}

// UpdateMilestoneStatus handles PATCH /integration-trackers/{id}/milestones/{milestoneId}
func (h *IntegrationHandler) UpdateMilestoneStatus(w http.ResponseWriter, r *http.Request) {

	if err := utils.AuthnAndAuthz(r, "integration_tracker:update"); err != nil {
		utils.HandleError(w, err)
		return
	}

	var request model.StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "milestone status"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	trackerId := r.PathValue("id")
	milestoneId := r.PathValue("milestoneId")
	service := provider.NewIntegrationProvider().GetIntegrationTrackerService()
	tracker, err := service.UpdateMilestoneStatus(trackerId, milestoneId, request.Status)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	workers.EnqueueHealthRecompute(trackerId)
	utils.WriteJSONResponse(w, http.StatusOK, tracker)
}

// UpdateRiskFactorStatus handles PATCH /integration-trackers/{id}/risks/{riskId}
func (h *IntegrationHandler) UpdateRiskFactorStatus(w http.ResponseWriter, r *http.Request) {

	if err := utils.AuthnAndAuthz(r, "integration_tracker:update"); err != nil {
		utils.HandleError(w, err)
		return
	}

	var request model.StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "risk factor status"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	trackerId := r.PathValue("id")
	riskId := r.PathValue("riskId")
	service := provider.NewIntegrationProvider().GetIntegrationTrackerService()
	tracker, err := service.UpdateRiskFactorStatus(trackerId, riskId, request.Status)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	workers.EnqueueHealthRecompute(trackerId)
	utils.WriteJSONResponse(w, http.StatusOK, tracker)
}

// UpdateTrackerStatus handles PATCH /integration-trackers/{id}/status
func (h *IntegrationHandler) UpdateTrackerStatus(w http.ResponseWriter, r *http.Request) {

	if err := utils.AuthnAndAuthz(r, "integration_tracker:update"); err != nil {
		utils.HandleError(w, err)
		return
	}

	var request model.TrackerStatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "tracker status"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	trackerId := r.PathValue("id")
	service := provider.NewIntegrationProvider().GetIntegrationTrackerService()
	tracker, err := service.UpdateTrackerStatus(trackerId, request)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, tracker)
}

// RecomputeHealth handles POST /integration-trackers/{id}/health
func (h *IntegrationHandler) RecomputeHealth(w http.ResponseWriter, r *http.Request) {

	if err := utils.AuthnAndAuthz(r, "integration_tracker:update"); err != nil {
		utils.HandleError(w, err)
		return
	}

	trackerId := r.PathValue("id")
	service := provider.NewIntegrationProvider().GetIntegrationTrackerService()
	report, err := service.RecomputeHealth(trackerId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, report)
}
