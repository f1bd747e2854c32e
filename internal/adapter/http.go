package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/grocy-sync/internal/config"
	"github.com/MKhiriev/grocy-sync/internal/logger"
	"github.com/MKhiriev/grocy-sync/models"
	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
)

// APIKeyHeader carries the Grocy API key on every request.
const APIKeyHeader = "GROCY-API-KEY"

const (
	pathDBChangedTime      = "/api/system/db-changed-time"
	pathObjects            = "/api/objects/{entity}"
	pathObject             = "/api/objects/{entity}/{id}"
	pathVolatile           = "/api/stock/volatile"
	pathAddMissingProducts = "/api/stock/shoppinglist/add-missing-products"
	pathClearShoppingList  = "/api/stock/shoppinglist/clear"
)

type httpServerAdapter struct {
	client   *resty.Client
	breaker  *gobreaker.CircuitBreaker[any]
	validate *validator.Validate

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress,
// configures the underlying resty client with the resolved base URL, request
// timeout, API key header and JSON codec, and wraps every call in a circuit
// breaker configured from adapterCfg.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal).
		SetHeader("Accept", "application/json")
	if key := strings.TrimSpace(adapterCfg.APIKey); key != "" {
		client.SetHeader(APIKeyHeader, key)
	}

	maxFailures := adapterCfg.BreakerMaxFailures
	if maxFailures == 0 {
		maxFailures = 1
	}

	return &httpServerAdapter{
		client:   client,
		breaker:  newBreaker(maxFailures, adapterCfg.BreakerTimeout, logger),
		validate: validator.New(),
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetDBChangedTime implements [ServerAdapter]. It GETs
// /api/system/db-changed-time and returns the changed_time field verbatim.
func (h *httpServerAdapter) GetDBChangedTime(ctx context.Context) (string, error) {
	return execute(h.breaker, func() (string, error) {
		var out models.DBChangedTimeResponse

		resp, err := h.request(ctx).
			SetResult(&out).
			Get(pathDBChangedTime)
		if err != nil {
			return "", networkError("db changed time request", err)
		}
		if err = mapHTTPError(resp); err != nil {
			return "", err
		}

		return out.ChangedTime, nil
	})
}

// GetShoppingListItems implements [ServerAdapter].
func (h *httpServerAdapter) GetShoppingListItems(ctx context.Context) ([]models.ShoppingListItem, error) {
	items, err := getObjects[models.ShoppingListItem](ctx, h, models.EntityShoppingListItems)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].DoneSynced = models.NotPending
	}
	return items, nil
}

// GetShoppingLists implements [ServerAdapter].
func (h *httpServerAdapter) GetShoppingLists(ctx context.Context) ([]models.ShoppingList, error) {
	return getObjects[models.ShoppingList](ctx, h, models.EntityShoppingLists)
}

// GetProductGroups implements [ServerAdapter].
func (h *httpServerAdapter) GetProductGroups(ctx context.Context) ([]models.ProductGroup, error) {
	return getObjects[models.ProductGroup](ctx, h, models.EntityProductGroups)
}

// GetQuantityUnits implements [ServerAdapter].
func (h *httpServerAdapter) GetQuantityUnits(ctx context.Context) ([]models.QuantityUnit, error) {
	return getObjects[models.QuantityUnit](ctx, h, models.EntityQuantityUnits)
}

// GetProducts implements [ServerAdapter].
func (h *httpServerAdapter) GetProducts(ctx context.Context) ([]models.Product, error) {
	return getObjects[models.Product](ctx, h, models.EntityProducts)
}

// GetMissingProducts implements [ServerAdapter]. It GETs /api/stock/volatile
// and decodes only the missing_products collection.
func (h *httpServerAdapter) GetMissingProducts(ctx context.Context) ([]models.MissingItem, error) {
	raws, err := execute(h.breaker, func() ([]json.RawMessage, error) {
		var out models.VolatileResponse

		resp, err := h.request(ctx).
			SetResult(&out).
			Get(pathVolatile)
		if err != nil {
			return nil, networkError("volatile stock request", err)
		}
		if err = mapHTTPError(resp); err != nil {
			return nil, err
		}

		return out.MissingProducts, nil
	})
	if err != nil {
		return nil, err
	}

	return decodeRecords[models.MissingItem](h.logger, h.validate, models.EntityVolatileMissing, raws), nil
}

// CreateObject implements [ServerAdapter]. It POSTs fields to
// /api/objects/{entity} and returns created_object_id.
func (h *httpServerAdapter) CreateObject(ctx context.Context, entity models.EntityType, fields map[string]any) (int, error) {
	name := entity.ObjectName()
	if name == "" {
		return 0, fmt.Errorf("%w: %s", ErrUnknownEntity, entity)
	}

	return execute(h.breaker, func() (int, error) {
		var out models.CreatedObjectResponse

		resp, err := h.request(ctx).
			SetPathParam("entity", name).
			SetBody(fields).
			SetResult(&out).
			Post(pathObjects)
		if err != nil {
			return 0, networkError("create object request", err)
		}
		if err = mapHTTPError(resp); err != nil {
			return 0, err
		}

		return out.CreatedObjectID, nil
	})
}

// UpdateObject implements [ServerAdapter]. It PUTs the partial fields to
// /api/objects/{entity}/{id}.
func (h *httpServerAdapter) UpdateObject(ctx context.Context, entity models.EntityType, id int, fields map[string]any) error {
	name := entity.ObjectName()
	if name == "" {
		return fmt.Errorf("%w: %s", ErrUnknownEntity, entity)
	}

	_, err := execute(h.breaker, func() (struct{}, error) {
		resp, err := h.request(ctx).
			SetPathParam("entity", name).
			SetPathParam("id", strconv.Itoa(id)).
			SetBody(fields).
			Put(pathObject)
		if err != nil {
			return struct{}{}, networkError("update object request", err)
		}
		return struct{}{}, mapHTTPError(resp)
	})
	return err
}

// DeleteObject implements [ServerAdapter]. It sends DELETE to
// /api/objects/{entity}/{id}.
func (h *httpServerAdapter) DeleteObject(ctx context.Context, entity models.EntityType, id int) error {
	name := entity.ObjectName()
	if name == "" {
		return fmt.Errorf("%w: %s", ErrUnknownEntity, entity)
	}

	_, err := execute(h.breaker, func() (struct{}, error) {
		resp, err := h.request(ctx).
			SetPathParam("entity", name).
			SetPathParam("id", strconv.Itoa(id)).
			Delete(pathObject)
		if err != nil {
			return struct{}{}, networkError("delete object request", err)
		}
		return struct{}{}, mapHTTPError(resp)
	})
	return err
}

// AddMissingProducts implements [ServerAdapter].
func (h *httpServerAdapter) AddMissingProducts(ctx context.Context, listID int) error {
	return h.shoppingListAction(ctx, pathAddMissingProducts, listID)
}

// ClearShoppingList implements [ServerAdapter].
func (h *httpServerAdapter) ClearShoppingList(ctx context.Context, listID int) error {
	return h.shoppingListAction(ctx, pathClearShoppingList, listID)
}

func (h *httpServerAdapter) shoppingListAction(ctx context.Context, path string, listID int) error {
	_, err := execute(h.breaker, func() (struct{}, error) {
		resp, err := h.request(ctx).
			SetBody(models.ShoppingListRequest{ListID: listID}).
			Post(path)
		if err != nil {
			return struct{}{}, networkError("shopping list action request", err)
		}
		return struct{}{}, mapHTTPError(resp)
	})
	return err
}

func getObjects[T any](ctx context.Context, h *httpServerAdapter, entity models.EntityType) ([]T, error) {
	raws, err := execute(h.breaker, func() ([]json.RawMessage, error) {
		var out []json.RawMessage

		resp, err := h.request(ctx).
			SetPathParam("entity", entity.ObjectName()).
			SetResult(&out).
			Get(pathObjects)
		if err != nil {
			return nil, networkError(entity.String()+" request", err)
		}
		if err = mapHTTPError(resp); err != nil {
			return nil, err
		}

		return out, nil
	})
	if err != nil {
		return nil, err
	}

	return decodeRecords[T](h.logger, h.validate, entity, raws), nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
}

func networkError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrNetwork, err)
}
