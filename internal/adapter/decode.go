package adapter

import (
	"fmt"

	"github.com/MKhiriev/grocy-sync/internal/logger"
	"github.com/MKhiriev/grocy-sync/internal/metrics"
	"github.com/MKhiriev/grocy-sync/models"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// decodeRecords decodes every raw record of entity into T. Records that do
// not decode or fail their validate tags are logged, counted and skipped.
func decodeRecords[T any](log *logger.Logger, validate *validator.Validate, entity models.EntityType, raws []json.RawMessage) []T {
	records := make([]T, 0, len(raws))

	for i, raw := range raws {
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			reportMalformed(log, entity, i, raw, err)
			continue
		}
		if err := validate.Struct(rec); err != nil {
			reportMalformed(log, entity, i, raw, err)
			continue
		}
		records = append(records, rec)
	}

	return records
}

func reportMalformed(log *logger.Logger, entity models.EntityType, index int, raw json.RawMessage, cause error) {
	metrics.MalformedRecords.WithLabelValues(entity.String()).Inc()
	log.Warn().
		Err(fmt.Errorf("%w: %w", ErrMalformedServerRecord, cause)).
		Str("func", "adapter.decodeRecords").
		Str("entity", entity.String()).
		Int("index", index).
		RawJSON("record", raw).
		Msg("skipping malformed server record")
}
