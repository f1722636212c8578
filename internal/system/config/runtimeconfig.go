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

package config

import "sync"

// LMSRuntime holds the runtime configuration for the liftout marketplace server.
type LMSRuntime struct {
	LMSHome string `yaml:"lms_home"`
	Config  Config `yaml:"config"`
}

var (
	runtimeConfig *LMSRuntime
	once          sync.Once
)

// InitializeLMSRuntime initializes the LMSRuntime configuration.
func InitializeLMSRuntime(lmsHome string, config *Config) error {

	once.Do(func() {
		runtimeConfig = &LMSRuntime{
			LMSHome: lmsHome,
			Config:  *config,
		}
	})

	return nil
}

// GetLMSRuntime returns the LMSRuntime configuration.
func GetLMSRuntime() *LMSRuntime {

	if runtimeConfig == nil {
		panic("LMSRuntime is not initialized")
	}
	return runtimeConfig
}

// OverrideLMSRuntime replaces the runtime configuration. Used by tests.
func OverrideLMSRuntime(conf Config) {
	runtimeConfig = &LMSRuntime{
		Config: conf,
	}
}
