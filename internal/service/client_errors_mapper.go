// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/grocy-sync/internal/adapter"
	"github.com/MKhiriev/grocy-sync/internal/app"
	"github.com/MKhiriev/grocy-sync/internal/store"
	"github.com/MKhiriev/grocy-sync/models"
)

// noticeForError translates a failure into the notice shown to the user.
func noticeForError(err error) models.Notice {
	switch {
	case errors.Is(err, adapter.ErrNetwork):
		return models.Notice{Kind: models.NoticeConnectivity, Message: app.MsgNoConnection}
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return models.Notice{Kind: models.NoticeError, Message: app.MsgUnauthorized}
	case errors.Is(err, store.ErrCacheLocked),
		errors.Is(err, store.ErrPreferencesUnavailable),
		errors.Is(err, store.ErrExecutingQuery),
		errors.Is(err, store.ErrExecutingStatement),
		errors.Is(err, store.ErrScanningRows),
		errors.Is(err, store.ErrBeginningTransaction),
		errors.Is(err, store.ErrCommitingTransaction):
		return models.Notice{Kind: models.NoticeError, Message: app.MsgCacheError}
	default:
		return models.Notice{Kind: models.NoticeError, Message: app.MsgUndefinedError}
	}
}

// isConnectivityError reports whether err means the server could not be
// reached at all.
func isConnectivityError(err error) bool {
	return errors.Is(err, adapter.ErrNetwork)
}
