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

package authn

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wso2/liftout-marketplace-service/internal/system/config"
	errors2 "github.com/wso2/liftout-marketplace-service/internal/system/errors"
	"github.com/wso2/liftout-marketplace-service/internal/system/log"
)

// ValidateAuthenticationAndReturnClaims validates the bearer token and returns its claims.
func ValidateAuthenticationAndReturnClaims(token string) (map[string]interface{}, error) {

	logger := log.GetLogger()

	// Only JWT bearer tokens are accepted.
	if strings.Count(token, ".") != 2 {
		logger.Debug("Expecting a JWT token but received an opaque token.")
		return nil, unauthorizedError()
	}

	claims, err := ParseJWTClaims(token)
	if err != nil {
		return nil, unauthorizedError()
	}

	if !validateClaims(claims) {
		return nil, unauthorizedError()
	}

	return claims, nil
}

// ParseJWTClaims parses claims from a JWT without verifying the signature.
func ParseJWTClaims(tokenString string) (map[string]interface{}, error) {

	logger := log.GetLogger()
	claims := jwt.MapClaims{}
	_, _, err := new(jwt.Parser).ParseUnverified(tokenString, claims)
	if err != nil {
		errMsg := "Error occurred when parsing claims from JWT token."
		logger.Debug(errMsg, log.Error(err))
		serverError := errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.PARSING_ERROR.Code,
			Message:     errors2.PARSING_ERROR.Message,
			Description: errMsg,
		}, err)
		return nil, serverError
	}
	return claims, nil
}

// validateClaims ensures the token carries the expected audience and has not expired.
func validateClaims(claims map[string]interface{}) bool {

	logger := log.GetLogger()
	expectedAudience := config.GetLMSRuntime().Config.Auth.ExpectedAudience
	if expectedAudience != "" {
		audRaw, ok := claims["aud"]
		if !ok || !audienceMatches(audRaw, expectedAudience) {
			logger.Debug("Token does not have the expected audience claim.")
			return false
		}
	}

	expRaw, ok := claims["exp"]
	if !ok {
		logger.Debug("Token does not have an expiry claim.")
		return false
	}
	exp, ok := expRaw.(float64)
	if !ok || time.Now().Unix() >= int64(exp) {
		logger.Debug("Token has expired.")
		return false
	}

	return true
}

func audienceMatches(audRaw interface{}, expected string) bool {
	switch aud := audRaw.(type) {
	case string:
		return aud == expected
	case []interface{}:
		for _, a := range aud {
			if s, ok := a.(string); ok && s == expected {
				return true
			}
		}
	}
	return false
}

func unauthorizedError() error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.UN_AUTHORIZED.Code,
		Message:     errors2.UN_AUTHORIZED.Message,
		Description: "Invalid or expired token.",
	}, http.StatusUnauthorized)
}
