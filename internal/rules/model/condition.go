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

import (
	"encoding/json"
	"fmt"

	"github.com/wso2/identity-corporate-onboarding-service/internal/system/constants"
)

// Condition is one node of a rule condition tree: either a logical
// combinator (All, Any, Not) or a leaf comparison of a dotted fact field
// against a literal. Exactly one variant is populated per node.
type Condition struct {
	All []Condition
	Any []Condition
	Not *Condition

	Field    string
	Operator string
	Value    interface{}
}

// operatorKeyOrder fixes which comparison key wins when a leaf object
// carries more than one; admission-time validation rejects such leaves,
// so the order only matters for documents that bypassed validation.
var operatorKeyOrder = []string{"eq", "neq", "in", "not_in", "is_true", "is_false", "exists"}

// IsEmpty reports whether the node carries neither a combinator nor a leaf.
func (c Condition) IsEmpty() bool {
	return c.All == nil && c.Any == nil && c.Not == nil && c.Field == "" && c.Operator == ""
}

// UnmarshalJSON maps the operator-keyed wire format
// ({"field": ..., "eq": ...}, {"all": [...]}) onto the typed node.
func (c *Condition) UnmarshalJSON(data []byte) error {

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["all"]; ok {
		return json.Unmarshal(v, &c.All)
	}
	if v, ok := raw["any"]; ok {
		return json.Unmarshal(v, &c.Any)
	}
	if v, ok := raw["not"]; ok {
		c.Not = &Condition{}
		return json.Unmarshal(v, c.Not)
	}

	if v, ok := raw["field"]; ok {
		if err := json.Unmarshal(v, &c.Field); err != nil {
			return err
		}
	}
	for _, op := range operatorKeyOrder {
		if v, ok := raw[op]; ok {
			c.Operator = op
			if err := json.Unmarshal(v, &c.Value); err != nil {
				return err
			}
			break
		}
	}
	return nil
}

// MarshalJSON emits the operator-keyed wire format.
func (c Condition) MarshalJSON() ([]byte, error) {

	switch {
	case c.All != nil:
		return json.Marshal(map[string]interface{}{"all": c.All})
	case c.Any != nil:
		return json.Marshal(map[string]interface{}{"any": c.Any})
	case c.Not != nil:
		return json.Marshal(map[string]interface{}{"not": c.Not})
	}

	out := map[string]interface{}{}
	if c.Field != "" {
		out["field"] = c.Field
	}
	if c.Operator != "" {
		out[c.Operator] = c.Value
	}
	return json.Marshal(out)
}

// Validate walks the tree and reports the first structural defect. The
// engine itself treats malformed nodes as non-matching; validation exists
// so defective rules are rejected at admission instead of silently dead.
func (c Condition) Validate() error {

	if c.All != nil {
		for i, child := range c.All {
			if err := child.Validate(); err != nil {
				return fmt.Errorf("all[%d]: %w", i, err)
			}
		}
		return nil
	}
	if c.Any != nil {
		for i, child := range c.Any {
			if err := child.Validate(); err != nil {
				return fmt.Errorf("any[%d]: %w", i, err)
			}
		}
		return nil
	}
	if c.Not != nil {
		if err := c.Not.Validate(); err != nil {
			return fmt.Errorf("not: %w", err)
		}
		return nil
	}

	if c.Field == "" {
		return fmt.Errorf("leaf condition is missing a field")
	}
	if c.Operator == "" {
		return fmt.Errorf("leaf condition on field %q has no recognized operator", c.Field)
	}
	if !constants.AllowedConditionOperators[c.Operator] {
		return fmt.Errorf("operator %q is not supported", c.Operator)
	}
	return nil
}

// ValidateConditionJSON checks the raw wire document for defects that the
// typed node cannot represent, in particular leaves carrying more than one
// comparison operator, whose behavior would otherwise depend on key order.
func ValidateConditionJSON(data []byte) error {

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return validateRawCondition(raw)
}

func validateRawCondition(raw interface{}) error {

	node, ok := raw.(map[string]interface{})
	if !ok {
		return fmt.Errorf("condition node must be a JSON object")
	}

	if children, ok := node["all"]; ok {
		return validateRawChildren("all", children)
	}
	if children, ok := node["any"]; ok {
		return validateRawChildren("any", children)
	}
	if child, ok := node["not"]; ok {
		return validateRawCondition(child)
	}

	found := 0
	for _, op := range operatorKeyOrder {
		if _, ok := node[op]; ok {
			found++
		}
	}
	if found > 1 {
		return fmt.Errorf("leaf condition carries %d comparison operators; exactly one is allowed", found)
	}
	return nil
}

func validateRawChildren(combinator string, children interface{}) error {

	list, ok := children.([]interface{})
	if !ok {
		return fmt.Errorf("%q must hold a JSON array of conditions", combinator)
	}
	for i, child := range list {
		if err := validateRawCondition(child); err != nil {
			return fmt.Errorf("%s[%d]: %w", combinator, i, err)
		}
	}
	return nil
}
