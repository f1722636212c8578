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

package workers

import (
	"fmt"

	"github.com/wso2/liftout-marketplace-service/internal/integration/provider"
	"github.com/wso2/liftout-marketplace-service/internal/system/constants"
	"github.com/wso2/liftout-marketplace-service/internal/system/log"
)

var HealthRecomputeQueue chan string

// StartHealthWorker starts the background goroutine that re-scores tracker
// health after metric and status updates. Updates are applied synchronously by
// the service; the worker only refreshes the derived fields, so a dropped
// recompute is corrected by the next update.
func StartHealthWorker() {

	HealthRecomputeQueue = make(chan string, constants.DefaultQueueSize)

	go func() {
		for trackerId := range HealthRecomputeQueue {
			recomputeHealth(trackerId)
		}
	}()
}

// EnqueueHealthRecompute schedules a health re-score for a tracker.
func EnqueueHealthRecompute(trackerId string) {
	if HealthRecomputeQueue != nil {
		HealthRecomputeQueue <- trackerId
	}
}

func recomputeHealth(trackerId string) {

	logger := log.GetLogger()
	service := provider.NewIntegrationProvider().GetIntegrationTrackerService()
	report, err := service.RecomputeHealth(trackerId)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to recompute health for tracker: %s", trackerId), log.Error(err))
		return
	}
	logger.Debug(fmt.Sprintf("Recomputed health for tracker %s: score %d, retention risk %s",
		trackerId, report.HealthScore, report.RetentionRisk))
}
