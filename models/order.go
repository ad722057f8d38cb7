// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// Order is a persisted purchase belonging to a user.
type Order struct {
	// ID is assigned by the data store when the order is created.
	ID int64 `json:"id"`

	// UserID references the owner of the order. It is not checked against
	// the users table.
	UserID int64 `json:"userId"`

	// Items is the opaque list of line items supplied by the client.
	Items OrderItems `json:"items"`
}

// OrderItems is the list of line items of an order.
//
// Each element is kept as the raw JSON the client sent, so objects of any
// shape, strings and numbers all survive a round trip through the store.
// The list decodes both from a JSON array and from a string holding a JSON
// array, which is how text columns hand the value back.
type OrderItems []json.RawMessage

// MarshalJSON encodes a nil list as an empty array.
func (items OrderItems) MarshalJSON() ([]byte, error) {
	if items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]json.RawMessage(items))
}

// UnmarshalJSON implements [json.Unmarshaler].
func (items *OrderItems) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*items = nil
		return nil
	}

	var encoded string
	if err := json.Unmarshal(data, &encoded); err == nil {
		if encoded == "" {
			*items = nil
			return nil
		}
		data = []byte(encoded)
	}

	var list []json.RawMessage
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("error decoding order items: %w", err)
	}
	*items = list

	return nil
}
