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

package store

import (
	"encoding/json"
	"fmt"

	model "github.com/wso2/liftout-marketplace-service/internal/integration/model"
	"github.com/wso2/liftout-marketplace-service/internal/system/database/provider"
	errors2 "github.com/wso2/liftout-marketplace-service/internal/system/errors"
	"github.com/wso2/liftout-marketplace-service/internal/system/log"
	"github.com/wso2/liftout-marketplace-service/internal/system/pagination"
)

// AddTracker inserts a new integration tracker into the database.
func AddTracker(tracker model.IntegrationTracker) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for inserting tracker: %s", tracker.TrackerId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_TRACKER.Code,
			Message:     errors2.ADD_TRACKER.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	document, err := json.Marshal(tracker)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to serialize tracker: %s", tracker.TrackerId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_TRACKER.Code,
			Message:     errors2.ADD_TRACKER.Message,
			Description: errorMsg,
		}, err)
	}

	query := `INSERT INTO integration_trackers
				(tracker_id, liftout_id, team_id, company_id, status, health_score, retention_risk, updated_at, tracker)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	tx, err := dbClient.BeginTx()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to begin transaction for inserting tracker: %s", tracker.TrackerId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_TRACKER.Code,
			Message:     errors2.ADD_TRACKER.Message,
			Description: errorMsg,
		}, err)
	}
	_, err = tx.Exec(query, tracker.TrackerId, tracker.LiftoutId, tracker.TeamId, tracker.CompanyId,
		tracker.Status, tracker.HealthScore, tracker.RetentionRisk, tracker.UpdatedAt, document)
	if err != nil {
		_ = tx.Rollback()
		errorMsg := fmt.Sprintf("Failed to execute query for inserting tracker: %s", tracker.TrackerId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_TRACKER.Code,
			Message:     errors2.ADD_TRACKER.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Successfully inserted tracker: %s", tracker.TrackerId))
	return tx.Commit()
}

// UpdateTracker replaces a stored tracker wholesale, including the derived
// health columns kept alongside the document for querying.
func UpdateTracker(tracker model.IntegrationTracker) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for updating tracker: %s", tracker.TrackerId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_TRACKER.Code,
			Message:     errors2.UPDATE_TRACKER.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	document, err := json.Marshal(tracker)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to serialize tracker: %s", tracker.TrackerId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_TRACKER.Code,
			Message:     errors2.UPDATE_TRACKER.Message,
			Description: errorMsg,
		}, err)
	}

	query := `UPDATE integration_trackers
				SET status = $2, health_score = $3, retention_risk = $4, updated_at = $5, tracker = $6
				WHERE tracker_id = $1`
	tx, err := dbClient.BeginTx()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to begin transaction for updating tracker: %s", tracker.TrackerId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_TRACKER.Code,
			Message:     errors2.UPDATE_TRACKER.Message,
			Description: errorMsg,
		}, err)
	}
	_, err = tx.Exec(query, tracker.TrackerId, tracker.Status, tracker.HealthScore,
		tracker.RetentionRisk, tracker.UpdatedAt, document)
	if err != nil {
		_ = tx.Rollback()
		errorMsg := fmt.Sprintf("Failed to execute query for updating tracker: %s", tracker.TrackerId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_TRACKER.Code,
			Message:     errors2.UPDATE_TRACKER.Message,
			Description: errorMsg,
		}, err)
	}
	return tx.Commit()
}

// GetTrackerByID retrieves a single tracker.
func GetTrackerByID(trackerId string) (*model.IntegrationTracker, error) {

	query := `SELECT tracker FROM integration_trackers WHERE tracker_id = $1`
	trackers, err := queryTrackers(query, trackerId)
	if err != nil {
		return nil, err
	}
	if len(trackers) == 0 {
		return nil, nil
	}
	return &trackers[0], nil
}

// GetTrackerPage retrieves one page of trackers, most recently updated first.
// One row beyond the limit is fetched so the caller can tell whether a further
// page exists.
func GetTrackerPage(limit int, after *pagination.Cursor) ([]model.IntegrationTracker, error) {

	query := `SELECT tracker FROM integration_trackers`
	args := make([]interface{}, 0, 3)
	if after != nil {
		args = append(args, after.Timestamp, after.Id)
		query += " WHERE (updated_at, tracker_id) < ($1, $2)"
	}
	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY updated_at DESC, tracker_id DESC LIMIT $%d", len(args))
	return queryTrackers(query, args...)
}

func queryTrackers(query string, args ...interface{}) ([]model.IntegrationTracker, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get db client for fetching trackers."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_TRACKER.Code,
			Message:     errors2.FETCH_TRACKER.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	results, err := dbClient.ExecuteQuery(query, args...)
	if err != nil {
		errorMsg := "Failed to execute query for fetching trackers."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_TRACKER.Code,
			Message:     errors2.FETCH_TRACKER.Message,
			Description: errorMsg,
		}, err)
	}

	trackers := make([]model.IntegrationTracker, 0, len(results))
	for _, row := range results {
		raw, ok := row["tracker"]
		if !ok || raw == nil {
			continue
		}
		var document []byte
		switch value := raw.(type) {
		case []byte:
			document = value
		case string:
			document = []byte(value)
		default:
			return nil, errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.FETCH_TRACKER.Code,
				Message:     errors2.FETCH_TRACKER.Message,
				Description: fmt.Sprintf("Unexpected type for tracker column: %T", raw),
			}, nil)
		}
		var tracker model.IntegrationTracker
		if err := json.Unmarshal(document, &tracker); err != nil {
			return nil, errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.FETCH_TRACKER.Code,
				Message:     errors2.FETCH_TRACKER.Message,
				Description: "Failed to deserialize tracker.",
			}, err)
		}
		trackers = append(trackers, tracker)
	}
	return trackers, nil
}
