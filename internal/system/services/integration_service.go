/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
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

package services

import (
	"fmt"
	"net/http"

	"github.com/wso2/liftout-marketplace-service/internal/integration/handler"
)

type IntegrationService struct {
	integrationHandler *handler.IntegrationHandler
}

func NewIntegrationService(mux *http.ServeMux, apiBasePath string) *IntegrationService {

	instance := &IntegrationService{
		integrationHandler: handler.NewIntegrationHandler(),
	}
	instance.RegisterRoutes(mux, apiBasePath)

	return instance
}

func (s *IntegrationService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	mux.HandleFunc(fmt.Sprintf("POST %s/integration-trackers", apiBasePath), s.integrationHandler.CreateTracker)
	mux.HandleFunc(fmt.Sprintf("GET %s/integration-trackers", apiBasePath), s.integrationHandler.GetTrackers)
	mux.HandleFunc(fmt.Sprintf("GET %s/integration-trackers/{id}", apiBasePath), s.integrationHandler.GetTracker)
	mux.HandleFunc(fmt.Sprintf("POST %s/integration-trackers/{id}/performance-metrics", apiBasePath),
		s.integrationHandler.RecordPerformanceMetrics)
	mux.HandleFunc(fmt.Sprintf("POST %s/integration-trackers/{id}/business-metrics", apiBasePath),
		s.integrationHandler.RecordBusinessMetrics)
	mux.HandleFunc(fmt.Sprintf("PATCH %s/integration-trackers/{id}/milestones/{milestoneId}", apiBasePath),
		s.integrationHandler.UpdateMilestoneStatus)
	mux.HandleFunc(fmt.Sprintf("PATCH %s/integration-trackers/{id}/risks/{riskId}", apiBasePath),
		s.integrationHandler.UpdateRiskFactorStatus)
	mux.HandleFunc(fmt.Sprintf("PATCH %s/integration-trackers/{id}/status", apiBasePath),
		s.integrationHandler.UpdateTrackerStatus)
	mux.HandleFunc(fmt.Sprintf("POST %s/integration-trackers/{id}/health", apiBasePath),
		s.integrationHandler.RecomputeHealth)
}
