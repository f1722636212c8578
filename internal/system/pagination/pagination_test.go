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

package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {

	token := EncodeCursor(Cursor{Timestamp: 1756600000, Id: "a3f0c9d2"})
	cursor, err := DecodeCursor(token)
	require.NoError(t, err)
	require.NotNil(t, cursor)
	assert.Equal(t, int64(1756600000), cursor.Timestamp)
	assert.Equal(t, "a3f0c9d2", cursor.Id)
}

func TestDecodeCursorEmptyMeansFirstPage(t *testing.T) {

	cursor, err := DecodeCursor("")
	require.NoError(t, err)
	assert.Nil(t, cursor)

	cursor, err = DecodeCursor("   ")
	require.NoError(t, err)
	assert.Nil(t, cursor)
}

func TestDecodeCursorRejectsMalformedTokens(t *testing.T) {

	testCases := []struct {
		name  string
		token string
	}{
		{"not base64", "%%%"},
		{"no separator", "anVzdHRleHQ"},
		{"bad timestamp", "bm90LWEtbnVtYmVyfGlk"},
		{"missing id", EncodeCursor(Cursor{Timestamp: 1756600000})},
	}

	for _, tc := range testCases {
		_, err := DecodeCursor(tc.token)
		assert.Error(t, err, tc.name)
	}
}

func TestParseLimit(t *testing.T) {

	limit, err := ParseLimit(httptest.NewRequest("GET", "/culture-profiles", nil))
	require.NoError(t, err)
	assert.Equal(t, defaultLimit, limit)

	limit, err = ParseLimit(httptest.NewRequest("GET", "/culture-profiles?limit=10", nil))
	require.NoError(t, err)
	assert.Equal(t, 10, limit)

	limit, err = ParseLimit(httptest.NewRequest("GET", "/culture-profiles?limit=100000", nil))
	require.NoError(t, err)
	assert.Equal(t, maxLimit, limit)

	_, err = ParseLimit(httptest.NewRequest("GET", "/culture-profiles?limit=0", nil))
	assert.Error(t, err)

	_, err = ParseLimit(httptest.NewRequest("GET", "/culture-profiles?limit=ten", nil))
	assert.Error(t, err)
}
