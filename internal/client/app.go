package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/grocy-sync/internal/adapter"
	"github.com/MKhiriev/grocy-sync/internal/config"
	"github.com/MKhiriev/grocy-sync/internal/handler"
	"github.com/MKhiriev/grocy-sync/internal/logger"
	"github.com/MKhiriev/grocy-sync/internal/server"
	"github.com/MKhiriev/grocy-sync/internal/service"
	"github.com/MKhiriev/grocy-sync/internal/store"
	"github.com/MKhiriev/grocy-sync/internal/workers"
	"github.com/MKhiriev/grocy-sync/models"
)

type App struct {
	list     service.ShoppingListService
	syncJob  service.ClientSyncJob
	storages io.Closer

	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo
	printer   *Printer
	logger    *logger.Logger
}

// NewApp opens the local cache, connects the adapter and loads the cached
// state. The cache stays locked until Close.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, out io.Writer, logger *logger.Logger) (Client, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("open local cache: %w", err)
	}

	services := service.NewClientServices(storages, serverAdapter, logger)
	if err = services.ShoppingListService.Load(ctx); err != nil {
		return nil, errors.Join(fmt.Errorf("load local cache: %w", err), storages.Close())
	}

	return newApp(services.ShoppingListService, services.SyncJob, storages, cfg, buildInfo, out, logger), nil
}

func newApp(
	list service.ShoppingListService,
	syncJob service.ClientSyncJob,
	storages io.Closer,
	cfg *config.ClientConfig,
	buildInfo models.AppBuildInfo,
	out io.Writer,
	logger *logger.Logger,
) *App {
	return &App{
		list:      list,
		syncJob:   syncJob,
		storages:  storages,
		cfg:       cfg,
		buildInfo: buildInfo,
		printer:   NewPrinter(out),
		logger:    logger,
	}
}

func (a *App) Sync(ctx context.Context) error {
	return a.finish(a.list.Sync(ctx))
}

func (a *App) Show(_ context.Context, query ViewQuery) error {
	a.narrow(query)
	return a.finish(nil)
}

func (a *App) Toggle(ctx context.Context, query ViewQuery, position int) error {
	a.narrow(query)
	return a.finish(a.list.ToggleItemAt(ctx, position))
}

func (a *App) Delete(ctx context.Context, query ViewQuery, position int) error {
	a.narrow(query)
	return a.finish(a.list.DeleteItemAt(ctx, position))
}

func (a *App) Select(ctx context.Context, listID int) error {
	return a.finish(a.list.SelectList(ctx, listID))
}

func (a *App) ClearDone(ctx context.Context) error {
	return a.finish(a.list.ClearDoneItems(ctx))
}

func (a *App) AddMissing(ctx context.Context) error {
	return a.finish(a.list.AddMissingProducts(ctx))
}

func (a *App) Notes(ctx context.Context, notes string) error {
	return a.finish(a.list.SaveNotes(ctx, notes))
}

func (a *App) Add(ctx context.Context, item models.NewShoppingListItem) error {
	_, err := a.list.AddItem(ctx, item)
	return a.finish(err)
}

func (a *App) DeleteList(ctx context.Context) error {
	return a.finish(a.list.DeleteSelectedList(ctx))
}

// Watch runs the periodic sync job, and the status endpoint when an address
// is configured, and prints every settled view.
func (a *App) Watch(ctx context.Context) error {
	a.printer.PrintBuildInfo(a.buildInfo)

	group := workers.NewWorkers(a.logger,
		workers.NewSyncJobWorker(a.syncJob, a.cfg.Workers.SyncInterval),
		workers.WorkerFunc(a.printUpdates),
	)

	handlers, err := handler.NewHandlers(a.list, a.buildInfo, a.cfg.Server, a.logger)
	if err != nil {
		a.logger.Debug().Err(err).Str("func", "App.Watch").Msg("running without status endpoint")
	} else {
		srv, err := server.NewServer(handlers.HTTP.Init(), a.cfg.Server, a.logger)
		if err != nil {
			return err
		}
		group.Add(workers.NewServerWorker(srv))
	}

	return group.Run(ctx)
}

func (a *App) printUpdates(ctx context.Context) error {
	views, unsubscribe := a.list.Subscribe()
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return nil
		case n := <-a.list.Notices():
			a.printer.PrintNotice(n)
		case v := <-views:
			if v.Loading {
				continue
			}
			a.printer.PrintView(v)
		}
	}
}

func (a *App) Close() error {
	return a.storages.Close()
}

// finish prints what the command produced. Being offline or superseded is
// not a failure of the command: the cached view is still printed.
func (a *App) finish(err error) error {
	a.printNotices()
	a.printer.PrintView(a.list.View())

	switch {
	case err == nil, errors.Is(err, service.ErrOffline), errors.Is(err, service.ErrSuperseded):
		if err != nil {
			a.logger.Debug().Err(err).Str("func", "App.finish").Msg("command finished without the server")
		}
		return nil
	default:
		return err
	}
}

func (a *App) narrow(query ViewQuery) {
	a.list.SetFilter(query.Filter)
	a.list.SetSearch(query.Search)
}

func (a *App) printNotices() {
	for {
		select {
		case n := <-a.list.Notices():
			a.printer.PrintNotice(n)
		default:
			return
		}
	}
}
