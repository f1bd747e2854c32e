// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/goccy/go-json"

// DBChangedTimeResponse is returned by GET /api/system/db-changed-time.
type DBChangedTimeResponse struct {
	ChangedTime string `json:"changed_time"`
}

// VolatileResponse is returned by GET /api/stock/volatile. Only the missing
// products are used; the other collections are kept raw.
type VolatileResponse struct {
	DueProducts     json.RawMessage   `json:"due_products,omitempty"`
	ExpiredProducts json.RawMessage   `json:"expired_products,omitempty"`
	MissingProducts []json.RawMessage `json:"missing_products"`
}

// CreatedObjectResponse is returned by POST /api/objects/{entity}.
type CreatedObjectResponse struct {
	CreatedObjectID int `json:"created_object_id"`
}

// ShoppingListRequest is the body of the shopping-list stock actions
// (add-missing-products, clear).
type ShoppingListRequest struct {
	ListID int `json:"list_id"`
}

// ErrorResponse is the body Grocy returns with 4xx/5xx statuses.
type ErrorResponse struct {
	ErrorMessage string `json:"error_message"`
}
