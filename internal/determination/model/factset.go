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

package model

import "strings"

// FactSet is the complete set of input attributes for one determination,
// built once per request and read-only afterwards. Nested attributes such
// as risk flags are sub-maps addressed with dotted paths.
type FactSet map[string]interface{}

// ResolveField walks a dot-separated path through nested maps. A missing
// key or a non-map value mid-path resolves to nil; it never panics, so a
// misconfigured rule condition degrades to a non-match instead of failing
// the determination.
func (fs FactSet) ResolveField(path string) interface{} {

	var current interface{} = map[string]interface{}(fs)
	for _, part := range strings.Split(path, ".") {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil
		}
		current, ok = m[part]
		if !ok {
			return nil
		}
	}
	return current
}
