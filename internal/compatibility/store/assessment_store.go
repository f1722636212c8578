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

	model "github.com/wso2/liftout-marketplace-service/internal/compatibility/model"
	"github.com/wso2/liftout-marketplace-service/internal/system/database/provider"
	errors2 "github.com/wso2/liftout-marketplace-service/internal/system/errors"
	"github.com/wso2/liftout-marketplace-service/internal/system/log"
)

// AddAssessment inserts a new compatibility assessment into the database.
func AddAssessment(assessment model.CompatibilityAssessment) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for inserting assessment: %s", assessment.AssessmentId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_ASSESSMENT.Code,
			Message:     errors2.ADD_ASSESSMENT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	document, err := json.Marshal(assessment)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to serialize assessment: %s", assessment.AssessmentId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_ASSESSMENT.Code,
			Message:     errors2.ADD_ASSESSMENT.Message,
			Description: errorMsg,
		}, err)
	}

	query := `INSERT INTO compatibility_assessments
				(assessment_id, team_profile_id, company_profile_id, overall_score, compatibility_level, assessment_date, assessment)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`
	tx, err := dbClient.BeginTx()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to begin transaction for inserting assessment: %s", assessment.AssessmentId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_ASSESSMENT.Code,
			Message:     errors2.ADD_ASSESSMENT.Message,
			Description: errorMsg,
		}, err)
	}
	_, err = tx.Exec(query, assessment.AssessmentId, assessment.TeamProfileId, assessment.CompanyProfileId,
		assessment.OverallScore, assessment.CompatibilityLevel, assessment.AssessmentDate, document)
	if err != nil {
		_ = tx.Rollback()
		errorMsg := fmt.Sprintf("Failed to execute query for inserting assessment: %s", assessment.AssessmentId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_ASSESSMENT.Code,
			Message:     errors2.ADD_ASSESSMENT.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Successfully inserted assessment: %s", assessment.AssessmentId))
	return tx.Commit()
}

// GetAssessmentByID retrieves a single assessment.
func GetAssessmentByID(assessmentId string) (*model.CompatibilityAssessment, error) {

	query := `SELECT assessment FROM compatibility_assessments WHERE assessment_id = $1`
	assessments, err := queryAssessments(query, assessmentId)
	if err != nil {
		return nil, err
	}
	if len(assessments) == 0 {
		return nil, nil
	}
	return &assessments[0], nil
}

// GetAssessmentsForPair retrieves all assessments for a profile pair, newest first.
func GetAssessmentsForPair(teamProfileId, companyProfileId string) ([]model.CompatibilityAssessment, error) {

	query := `SELECT assessment FROM compatibility_assessments
				WHERE team_profile_id = $1 AND company_profile_id = $2 ORDER BY assessment_date DESC`
	return queryAssessments(query, teamProfileId, companyProfileId)
}

func queryAssessments(query string, args ...interface{}) ([]model.CompatibilityAssessment, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get db client for fetching assessments."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_ASSESSMENT.Code,
			Message:     errors2.FETCH_ASSESSMENT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	results, err := dbClient.ExecuteQuery(query, args...)
	if err != nil {
		errorMsg := "Failed to execute query for fetching assessments."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_ASSESSMENT.Code,
			Message:     errors2.FETCH_ASSESSMENT.Message,
			Description: errorMsg,
		}, err)
	}

	assessments := make([]model.CompatibilityAssessment, 0, len(results))
	for _, row := range results {
		raw, ok := row["assessment"]
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
				Code:        errors2.FETCH_ASSESSMENT.Code,
				Message:     errors2.FETCH_ASSESSMENT.Message,
				Description: fmt.Sprintf("Unexpected type for assessment column: %T", raw),
			}, nil)
		}
		var assessment model.CompatibilityAssessment
		if err := json.Unmarshal(document, &assessment); err != nil {
			return nil, errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.FETCH_ASSESSMENT.Code,
				Message:     errors2.FETCH_ASSESSMENT.Message,
				Description: "Failed to deserialize assessment.",
			}, err)
		}
		assessments = append(assessments, assessment)
	}
	return assessments, nil
}
