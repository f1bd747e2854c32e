package service

import (
	"github.com/MKhiriev/grocy-sync/internal/adapter"
	"github.com/MKhiriev/grocy-sync/internal/logger"
	"github.com/MKhiriev/grocy-sync/internal/store"
)

type ClientServices struct {
	ShoppingListService ShoppingListService
	SyncJob             ClientSyncJob
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	shoppingList := NewShoppingListService(serverAdapter, storages.ShoppingListRepository, storages.Preferences, logger)

	return &ClientServices{
		ShoppingListService: shoppingList,
		SyncJob:             NewClientSyncJob(shoppingList, logger),
	}
}
