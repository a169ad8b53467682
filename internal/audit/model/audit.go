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

// Event types recorded in the audit trail.
const (
	EventCaseCreated = "CASE_CREATED"
	EventRuleAdded   = "RULE_ADDED"
	EventRuleUpdated = "RULE_UPDATED"
	EventRuleDeleted = "RULE_DELETED"
	EventDocTypeEdit = "DOCUMENT_TYPE_UPDATED"
	EventSeedLoaded  = "SEED_LOADED"
)

// AuditEvent is one immutable entry of the compliance audit trail. Old and
// new values are stored as canonical JSON so two semantically equal
// payloads always compare byte-equal.
type AuditEvent struct {
	EventId    string `json:"event_id" bson:"event_id"`
	EventType  string `json:"event_type" bson:"event_type"`
	TargetType string `json:"target_type" bson:"target_type"`
	TargetId   string `json:"target_id" bson:"target_id"`
	OldValue   string `json:"old_value,omitempty" bson:"old_value,omitempty"`
	NewValue   string `json:"new_value,omitempty" bson:"new_value,omitempty"`
	Reason     string `json:"reason,omitempty" bson:"reason,omitempty"`
	Actor      string `json:"actor,omitempty" bson:"actor,omitempty"`
	RecordedAt int64  `json:"recorded_at" bson:"recorded_at"`
}

// AuditEventFilter narrows an audit trail listing.
type AuditEventFilter struct {
	EventType  string
	TargetType string
	TargetId   string
	Skip       int64
	Limit      int64
}
