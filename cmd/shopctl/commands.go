package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Gunvolt24/pixelcraft/config"
	"github.com/Gunvolt24/pixelcraft/internal/cartui"
	"github.com/Gunvolt24/pixelcraft/internal/storefront"
	"github.com/Gunvolt24/pixelcraft/internal/terminal"
)

func newRootCmd(cfg *config.Config) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "shopctl",
		Short:        "PixelCraft storefront cart client",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfg.Client.BaseURL, "base-url", cfg.Client.BaseURL, "storefront base URL")
	root.PersistentFlags().StringVar(&cfg.Client.SessionDir, "session-dir", cfg.Client.SessionDir, "directory for session id and offline cart")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")

	// withShop — открывает сессию на время команды.
	withShop := func(fn func(ctx context.Context, cmd *cobra.Command, s *shop, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			s, err := openShop(cfg, cmd.OutOrStdout(), verbose)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			defer s.close(ctx)
			return fn(ctx, cmd, s, args)
		}
	}

	var assumeYes bool
	removeCmd := &cobra.Command{
		Use:   "remove <pc-id>",
		Short: "Remove a PC from the cart (asks for confirmation)",
		Args:  cobra.ExactArgs(1),
		RunE: withShop(func(ctx context.Context, cmd *cobra.Command, s *shop, args []string) error {
			prompt := terminal.NewPrompt(cmd.InOrStdin(), cmd.OutOrStdout(), assumeYes)
			s.controller(ctx, prompt).RemoveItem(ctx, args[0])
			return nil
		}),
	}
	removeCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "do not ask for confirmation")

	root.AddCommand(
		&cobra.Command{
			Use:   "add <pc-id>",
			Short: "Add a PC to the cart (kept offline when the server is unreachable)",
			Args:  cobra.ExactArgs(1),
			RunE: withShop(func(ctx context.Context, _ *cobra.Command, s *shop, args []string) error {
				s.controller(ctx, nil).AddItem(ctx, args[0])
				return nil
			}),
		},
		removeCmd,
		&cobra.Command{
			Use:   "count",
			Short: "Refresh the cart badge from the server",
			Args:  cobra.NoArgs,
			RunE: withShop(func(ctx context.Context, _ *cobra.Command, s *shop, _ []string) error {
				c := s.controller(ctx, nil)
				c.RefreshCount(ctx)
				if c.Source() == cartui.SourceNone {
					return errors.New("cart count unavailable: server unreachable")
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "cart",
			Short: "Show the server cart and the offline cart",
			Args:  cobra.NoArgs,
			RunE: withShop(func(ctx context.Context, _ *cobra.Command, s *shop, _ []string) error {
				terminal.NewCartReloader(s.client, s.out, s.log).Reload(ctx)
				if items := s.controller(ctx, nil).Items(); len(items) > 0 {
					s.out.LocalItems(items)
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "clear-offline",
			Short: "Discard the offline cart",
			Args:  cobra.NoArgs,
			RunE: withShop(func(ctx context.Context, _ *cobra.Command, s *shop, _ []string) error {
				s.controller(ctx, nil).Clear(ctx)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "search <query>",
			Short: "Search the catalog",
			Args:  cobra.MinimumNArgs(1),
			RunE: withShop(func(ctx context.Context, _ *cobra.Command, s *shop, args []string) error {
				srch := cartui.NewSearch(ctx, s.client, s.out, s.log, s.cfg.Client.SearchDebounce)
				defer srch.Close()
				srch.OnSubmit(strings.Join(args, " "))
				srch.Wait()
				return nil
			}),
		},
		&cobra.Command{
			Use:   "type",
			Short: "Search as you type: every stdin line is the current input, EOF submits",
			Args:  cobra.NoArgs,
			RunE: withShop(func(ctx context.Context, cmd *cobra.Command, s *shop, _ []string) error {
				srch := cartui.NewSearch(ctx, s.client, s.out, s.log, s.cfg.Client.SearchDebounce)
				defer srch.Close()

				var last string
				sc := bufio.NewScanner(cmd.InOrStdin())
				for sc.Scan() {
					last = sc.Text()
					srch.OnInput(last)
				}
				if err := sc.Err(); err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				srch.OnSubmit(last)
				srch.Wait()
				return nil
			}),
		},
		&cobra.Command{
			Use:   "cep <postal-code>",
			Short: "Look up an address by CEP",
			Args:  cobra.ExactArgs(1),
			RunE: withShop(func(ctx context.Context, _ *cobra.Command, s *shop, args []string) error {
				lookup := storefront.NewCEPClient(s.cfg.Client.CEPBaseURL, s.cfg.Client.Timeout, nil)
				if !cartui.NewAddressAutofill(lookup, s.out, s.notifier, s.log).Fill(ctx, args[0]) {
					return errors.New("address not filled")
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "subscribe <email>",
			Short: "Subscribe to the newsletter",
			Args:  cobra.ExactArgs(1),
			RunE: withShop(func(ctx context.Context, _ *cobra.Command, s *shop, args []string) error {
				cartui.NewNewsletter(s.client, s.notifier, s.log).Subscribe(ctx, args[0])
				return nil
			}),
		},
	)
	return root
}
