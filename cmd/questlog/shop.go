package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/questlog-api/internal/orchestrators/game"
	"github.com/KirkDiggler/questlog-api/internal/render"
)

type itemFunc func(ctx context.Context, input *game.ItemInput) (*game.ItemOutput, error)

func newShopCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Buy, sell and equip items",
	}
	cmd.AddCommand(
		newShopListCmd(opts),
		newItemCmd(opts, "buy", "Buy an item from the shop", "Bought",
			func(s game.Service) itemFunc { return s.BuyItem }),
		newItemCmd(opts, "sell", "Sell one of an item for half its value", "Sold",
			func(s game.Service) itemFunc { return s.SellItem }),
		newItemCmd(opts, "equip", "Equip an item", "Equipped",
			func(s game.Service) itemFunc { return s.EquipItem }),
		newItemCmd(opts, "unequip", "Unequip an item", "Unequipped",
			func(s game.Service) itemFunc { return s.UnequipItem }),
	)
	return cmd
}

func newShopListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show shop stock",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, opts, func(ctx context.Context, a *app, snap *game.Snapshot) error {
				out, err := a.game.ListShop(ctx, &game.ListShopInput{})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), render.Shop(out.Items, snap.Profile.Character.Gold))
				return nil
			})
		},
	}
}

func newItemCmd(opts *rootOptions, use, short, verb string, action func(game.Service) itemFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <item-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts, func(ctx context.Context, a *app, _ *game.Snapshot) error {
				out, err := action(a.game)(ctx, &game.ItemInput{UserID: a.userID, ItemID: args[0]})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					render.Good.Render(verb), out.Item.Name,
					render.LabelValue("Gold", render.Gold.Render(fmt.Sprintf("%d", out.Gold))))
				return nil
			})
		},
	}
}
