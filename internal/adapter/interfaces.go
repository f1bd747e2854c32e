// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the sync service and
// a Grocy server.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the REST protocol. The package ships an HTTP implementation
// ([NewHTTPServerAdapter]) guarded by a circuit breaker so that an
// unreachable server is detected without waiting for a timeout on every call.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling. Every failure that means "the server could not be reached or
// could not answer" wraps [ErrNetwork].
package adapter

import (
	"context"

	"github.com/MKhiriev/grocy-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the Grocy server. Implementations
// are responsible for serialisation, the API key header and mapping
// transport-level errors to the sentinel values defined in this package.
//
// The Get* methods return full snapshots of one entity type. Records that
// cannot be decoded or fail validation are skipped and logged; they never
// fail the whole fetch.
type ServerAdapter interface {
	// GetDBChangedTime returns the server's database change timestamp. The
	// value is opaque and only ever compared for equality.
	GetDBChangedTime(ctx context.Context) (string, error)

	// GetShoppingListItems returns the items of all shopping lists. Returned
	// items never carry a pending marker.
	GetShoppingListItems(ctx context.Context) ([]models.ShoppingListItem, error)

	// GetShoppingLists returns all shopping lists.
	GetShoppingLists(ctx context.Context) ([]models.ShoppingList, error)

	// GetProductGroups returns all product groups.
	GetProductGroups(ctx context.Context) ([]models.ProductGroup, error)

	// GetQuantityUnits returns all quantity units.
	GetQuantityUnits(ctx context.Context) ([]models.QuantityUnit, error)

	// GetProducts returns the product catalogue.
	GetProducts(ctx context.Context) ([]models.Product, error)

	// GetMissingProducts returns the products below their minimum stock
	// amount.
	GetMissingProducts(ctx context.Context) ([]models.MissingItem, error)

	// CreateObject creates a record of the given entity type and returns the
	// id assigned by the server.
	CreateObject(ctx context.Context, entity models.EntityType, fields map[string]any) (int, error)

	// UpdateObject applies a partial update to one record.
	UpdateObject(ctx context.Context, entity models.EntityType, id int, fields map[string]any) error

	// DeleteObject deletes one record.
	DeleteObject(ctx context.Context, entity models.EntityType, id int) error

	// AddMissingProducts puts all products below their minimum stock amount
	// on the given shopping list.
	AddMissingProducts(ctx context.Context, listID int) error

	// ClearShoppingList removes all items of the given shopping list.
	ClearShoppingList(ctx context.Context, listID int) error
}
