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
	"strings"

	model "github.com/wso2/liftout-marketplace-service/internal/cultureprofile/model"
	"github.com/wso2/liftout-marketplace-service/internal/system/database/provider"
	errors2 "github.com/wso2/liftout-marketplace-service/internal/system/errors"
	"github.com/wso2/liftout-marketplace-service/internal/system/log"
	"github.com/wso2/liftout-marketplace-service/internal/system/pagination"
)

// AddCultureProfile inserts a new culture profile snapshot into the database.
func AddCultureProfile(profile model.CultureProfile) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for inserting culture profile: %s", profile.ProfileId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_CULTURE_PROFILE.Code,
			Message:     errors2.ADD_CULTURE_PROFILE.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	document, err := json.Marshal(profile)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to serialize culture profile: %s", profile.ProfileId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_CULTURE_PROFILE.Code,
			Message:     errors2.ADD_CULTURE_PROFILE.Message,
			Description: errorMsg,
		}, err)
	}

	query := `INSERT INTO culture_profiles (profile_id, entity_id, entity_type, assessment_date, confidence_level, profile)
				VALUES ($1, $2, $3, $4, $5, $6)`
	tx, err := dbClient.BeginTx()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to begin transaction for inserting culture profile: %s", profile.ProfileId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_CULTURE_PROFILE.Code,
			Message:     errors2.ADD_CULTURE_PROFILE.Message,
			Description: errorMsg,
		}, err)
	}
	_, err = tx.Exec(query, profile.ProfileId, profile.EntityId, profile.EntityType, profile.AssessmentDate,
		profile.ConfidenceLevel, document)
	if err != nil {
		if errRollback := tx.Rollback(); errRollback != nil {
			errorMsg := fmt.Sprintf("Failed to rollback inserting culture profile: %s", profile.ProfileId)
			logger.Debug(errorMsg, log.Error(errRollback))
			return errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.ADD_CULTURE_PROFILE.Code,
				Message:     errors2.ADD_CULTURE_PROFILE.Message,
				Description: errorMsg,
			}, errRollback)
		}
		errorMsg := fmt.Sprintf("Failed to execute query for inserting culture profile: %s", profile.ProfileId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_CULTURE_PROFILE.Code,
			Message:     errors2.ADD_CULTURE_PROFILE.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Successfully inserted culture profile: %s", profile.ProfileId))
	return tx.Commit()
}

// GetCultureProfileByID retrieves a single culture profile snapshot.
func GetCultureProfileByID(profileId string) (*model.CultureProfile, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get db client for fetching culture profile."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_CULTURE_PROFILE.Code,
			Message:     errors2.FETCH_CULTURE_PROFILE.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `SELECT profile FROM culture_profiles WHERE profile_id = $1`
	results, err := dbClient.ExecuteQuery(query, profileId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to execute query for fetching culture profile: %s", profileId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_CULTURE_PROFILE.Code,
			Message:     errors2.FETCH_CULTURE_PROFILE.Message,
			Description: errorMsg,
		}, err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	profile, err := rowToCultureProfile(results[0])
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_CULTURE_PROFILE.Code,
			Message:     errors2.FETCH_CULTURE_PROFILE.Message,
			Description: fmt.Sprintf("Failed to deserialize culture profile: %s", profileId),
		}, err)
	}
	return profile, nil
}

// GetCultureProfilePage retrieves one page of snapshots ordered newest first,
// optionally filtered by entity. One row beyond the limit is fetched so the
// caller can tell whether a further page exists.
func GetCultureProfilePage(entityId string, limit int, after *pagination.Cursor) ([]model.CultureProfile, error) {

	query := `SELECT profile FROM culture_profiles`
	conditions := make([]string, 0, 2)
	args := make([]interface{}, 0, 4)
	if entityId != "" {
		args = append(args, entityId)
		conditions = append(conditions, fmt.Sprintf("entity_id = $%d", len(args)))
	}
	if after != nil {
		args = append(args, after.Timestamp, after.Id)
		conditions = append(conditions,
			fmt.Sprintf("(assessment_date, profile_id) < ($%d, $%d)", len(args)-1, len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY assessment_date DESC, profile_id DESC LIMIT $%d", len(args))
	return queryCultureProfiles(query, args...)
}

// DeleteCultureProfile removes a culture profile snapshot.
func DeleteCultureProfile(profileId string) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for deleting culture profile: %s", profileId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_CULTURE_PROFILE.Code,
			Message:     errors2.DELETE_CULTURE_PROFILE.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	tx, err := dbClient.BeginTx()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to begin transaction for deleting culture profile: %s", profileId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_CULTURE_PROFILE.Code,
			Message:     errors2.DELETE_CULTURE_PROFILE.Message,
			Description: errorMsg,
		}, err)
	}
	if _, err = tx.Exec(`DELETE FROM culture_profiles WHERE profile_id = $1`, profileId); err != nil {
		_ = tx.Rollback()
		errorMsg := fmt.Sprintf("Failed to execute query for deleting culture profile: %s", profileId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_CULTURE_PROFILE.Code,
			Message:     errors2.DELETE_CULTURE_PROFILE.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Successfully deleted culture profile: %s", profileId))
	return tx.Commit()
}

func queryCultureProfiles(query string, args ...interface{}) ([]model.CultureProfile, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get db client for fetching culture profiles."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_CULTURE_PROFILE.Code,
			Message:     errors2.FETCH_CULTURE_PROFILE.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	results, err := dbClient.ExecuteQuery(query, args...)
	if err != nil {
		errorMsg := "Failed to execute query for fetching culture profiles."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_CULTURE_PROFILE.Code,
			Message:     errors2.FETCH_CULTURE_PROFILE.Message,
			Description: errorMsg,
		}, err)
	}

	profiles := make([]model.CultureProfile, 0, len(results))
	for _, row := range results {
		profile, err := rowToCultureProfile(row)
		if err != nil {
			return nil, errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.FETCH_CULTURE_PROFILE.Code,
				Message:     errors2.FETCH_CULTURE_PROFILE.Message,
				Description: "Failed to deserialize culture profile.",
			}, err)
		}
		profiles = append(profiles, *profile)
	}
	return profiles, nil
}

// rowToCultureProfile deserializes the jsonb profile column.
func rowToCultureProfile(row map[string]interface{}) (*model.CultureProfile, error) {

	raw, ok := row["profile"]
	if !ok || raw == nil {
		return nil, fmt.Errorf("profile column missing in result row")
	}

	var document []byte
	switch value := raw.(type) {
	case []byte:
		document = value
	case string:
		document = []byte(value)
	default:
		return nil, fmt.Errorf("unexpected type for profile column: %T", raw)
	}

	var profile model.CultureProfile
	if err := json.Unmarshal(document, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
