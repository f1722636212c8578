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

package errors

const errorPrefix = "LMS-"

var (
	// Server error codes

	ADD_CULTURE_PROFILE = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Error while adding culture profile.",
	}

	FETCH_CULTURE_PROFILE = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while fetching culture profile(s).",
	}

	DELETE_CULTURE_PROFILE = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while deleting culture profile.",
	}

	ADD_ASSESSMENT = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while storing compatibility assessment.",
	}

	FETCH_ASSESSMENT = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while fetching compatibility assessment(s).",
	}

	ADD_TRACKER = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while creating integration tracker.",
	}

	FETCH_TRACKER = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while fetching integration tracker.",
	}

	UPDATE_TRACKER = ErrorMessage{
		Code:    errorPrefix + "15008",
		Message: "Error while updating integration tracker.",
	}

	DB_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15009",
		Message: "Unable to initialize database client.",
	}

	PARSING_ERROR = ErrorMessage{
		Code:    errorPrefix + "15010",
		Message: "Error while parsing token claims.",
	}

	HEALTH_CHECK = ErrorMessage{
		Code:    errorPrefix + "15011",
		Message: "Error while performing health check.",
	}

	// Client error codes

	BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "11001",
		Message: "Invalid request.",
	}

	UN_AUTHORIZED = ErrorMessage{
		Code:    errorPrefix + "11002",
		Message: "Unauthorized request.",
	}

	FORBIDDEN = ErrorMessage{
		Code:    errorPrefix + "11003",
		Message: "Insufficient permissions.",
	}

	CULTURE_PROFILE_VALIDATION = ErrorMessage{
		Code:    errorPrefix + "11004",
		Message: "Invalid culture profile.",
	}

	CULTURE_PROFILE_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "11005",
		Message: "Culture profile not found.",
	}

	ASSESSMENT_VALIDATION = ErrorMessage{
		Code:    errorPrefix + "11006",
		Message: "Invalid compatibility assessment request.",
	}

	ASSESSMENT_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "11007",
		Message: "Compatibility assessment not found.",
	}

	TRACKER_VALIDATION = ErrorMessage{
		Code:    errorPrefix + "11008",
		Message: "Invalid integration tracker request.",
	}

	TRACKER_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "11009",
		Message: "Integration tracker not found.",
	}

	MILESTONE_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "11010",
		Message: "Integration milestone not found.",
	}

	RISK_FACTOR_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "11011",
		Message: "Risk factor not found.",
	}

	INVALID_STATUS_TRANSITION = ErrorMessage{
		Code:    errorPrefix + "11012",
		Message: "Invalid status transition.",
	}

	METRIC_VALIDATION = ErrorMessage{
		Code:    errorPrefix + "11013",
		Message: "Invalid metric payload.",
	}
)
