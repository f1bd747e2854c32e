package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/grocy-sync/internal/client"
	"github.com/MKhiriev/grocy-sync/models"
)

func (c *cli) syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Sync with the server and print the selected list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd.Context(), func(ctx context.Context, app client.Client) error {
				return app.Sync(ctx)
			})
		},
	}
}

func (c *cli) showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the cached list without contacting the server",
		Args:  cobra.NoArgs,
	}
	query := bindViewFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		q, err := query()
		if err != nil {
			return err
		}
		return c.run(cmd.Context(), func(ctx context.Context, app client.Client) error {
			return app.Show(ctx, q)
		})
	}

	return cmd
}

// bindViewFlags registers --filter and --search on cmd. Commands taking a
// position need the same flags show was run with.
func bindViewFlags(cmd *cobra.Command) func() (client.ViewQuery, error) {
	var filter, search string
	cmd.Flags().StringVar(&filter, "filter", "all", "Filter: all, missing or undone")
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive search in item names")

	return func() (client.ViewQuery, error) {
		state, ok := models.ParseFilterState(filter)
		if !ok {
			return client.ViewQuery{}, fmt.Errorf("unknown filter %q, want all, missing or undone", filter)
		}
		return client.ViewQuery{Filter: state, Search: search}, nil
	}
}

func (c *cli) toggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <position>",
		Short: "Check off or un-check an item",
		Args:  cobra.ExactArgs(1),
	}
	query := bindViewFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		position, err := parseNumber("position", args[0])
		if err != nil {
			return err
		}
		q, err := query()
		if err != nil {
			return err
		}
		return c.run(cmd.Context(), func(ctx context.Context, app client.Client) error {
			return app.Toggle(ctx, q, position)
		})
	}

	return cmd
}

func (c *cli) selectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <list-id>",
		Short: "Switch to another shopping list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listID, err := parseNumber("list id", args[0])
			if err != nil {
				return err
			}
			return c.run(cmd.Context(), func(ctx context.Context, app client.Client) error {
				return app.Select(ctx, listID)
			})
		},
	}
}

func (c *cli) deleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <position>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
	}
	query := bindViewFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		position, err := parseNumber("position", args[0])
		if err != nil {
			return err
		}
		q, err := query()
		if err != nil {
			return err
		}
		return c.run(cmd.Context(), func(ctx context.Context, app client.Client) error {
			return app.Delete(ctx, q, position)
		})
	}

	return cmd
}

func (c *cli) clearDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-done",
		Short: "Delete every checked-off item of the selected list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd.Context(), func(ctx context.Context, app client.Client) error {
				return app.ClearDone(ctx)
			})
		},
	}
}

func (c *cli) addMissingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-missing",
		Short: "Put every product below its minimum stock on the list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd.Context(), func(ctx context.Context, app client.Client) error {
				return app.AddMissing(ctx)
			})
		},
	}
}

func (c *cli) notesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notes <text>",
		Short: "Replace the notes of the selected list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			notes := strings.Join(args, " ")
			return c.run(cmd.Context(), func(ctx context.Context, app client.Client) error {
				return app.Notes(ctx, notes)
			})
		},
	}
}

func (c *cli) addCmd() *cobra.Command {
	var (
		productID int
		unitID    int
		item      models.NewShoppingListItem
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item to the selected list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("product") {
				item.ProductID = &productID
			}
			if cmd.Flags().Changed("unit") {
				item.QuantityUnitID = &unitID
			}
			return c.run(cmd.Context(), func(ctx context.Context, app client.Client) error {
				return app.Add(ctx, item)
			})
		},
	}
	cmd.Flags().IntVar(&productID, "product", 0, "Product id")
	cmd.Flags().StringVar(&item.Note, "note", "", "Free-text note")
	cmd.Flags().Float64Var(&item.Amount, "amount", 1, "Amount")
	cmd.Flags().IntVar(&unitID, "unit", 0, "Quantity unit id")

	return cmd
}

func (c *cli) deleteListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-list",
		Short: "Clear and delete the selected list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd.Context(), func(ctx context.Context, app client.Client) error {
				return app.DeleteList(ctx)
			})
		},
	}
}

func (c *cli) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Sync periodically and print every change until interrupted",
		Long: `watch runs the background sync job and prints the list after every
settled sync. With --metrics-address it also serves the status and metrics
endpoint.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd.Context(), func(ctx context.Context, app client.Client) error {
				if err := app.Sync(ctx); err != nil {
					cmd.PrintErrf("initial sync failed: %v\n", err)
				}
				return app.Watch(ctx)
			})
		},
	}
}

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			client.NewPrinter(os.Stdout).PrintBuildInfo(c.buildInfo)
		},
	}
}

func parseNumber(name, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, arg, err)
	}
	return n, nil
}
