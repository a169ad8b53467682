/*
 * Copyright (c) 2026, WSO2 LLC. (http://www.wso2.com).
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

// COSRuntime holds the runtime configuration for the onboarding server.
type COSRuntime struct {
	COSHome string `yaml:"cos_home"`
	Config  Config `yaml:"config"`
}

var (
	runtimeConfig *COSRuntime
	once          sync.Once
)

// InitializeCOSRuntime initializes the COSRuntime configuration.
func InitializeCOSRuntime(cosHome string, config *Config) error {

	once.Do(func() {
		runtimeConfig = &COSRuntime{
			COSHome: cosHome,
			Config:  *config,
		}
	})

	return nil
}

// GetCOSRuntime returns the COSRuntime configuration.
func GetCOSRuntime() *COSRuntime {

	if runtimeConfig == nil {
		panic("COSRuntime is not initialized")
	}
	return runtimeConfig
}
