package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"eatsandthinks/internal/adapters/eatsapi"
	"eatsandthinks/internal/app"
	"eatsandthinks/internal/category"
	"eatsandthinks/internal/display"
	"eatsandthinks/internal/images"
	"eatsandthinks/internal/sections"
	"eatsandthinks/internal/shared"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve TYPE...",
	Short: "Show the canonical category for raw place types",
	Example: `  eatsctl resolve pizzería
  eatsctl resolve "comida rapida" piza --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

var imageCmd = &cobra.Command{
	Use:     "image TYPE",
	Short:   "Pick a stock photo for a raw place type",
	Example: `  eatsctl image heladería --seed place-42`,
	Args:    cobra.ExactArgs(1),
	RunE:    runImage,
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List canonical categories and their photo pools",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Build the homepage sections from the places API",
	Example: `  eatsctl home
  eatsctl home --section cheap_eats --city Sevilla`,
	Args: cobra.NoArgs,
	RunE: runHome,
}

var placeCmd = &cobra.Command{
	Use:   "place ID",
	Short: "Show one place as a card",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlace,
}

func newCards(cfg shared.Config) *app.CardService {
	return app.NewCardService(category.DefaultResolver(), images.Stock(), cfg.PhotosKey)
}

func newClient(cfg shared.Config) (*eatsapi.Client, error) {
	c, err := eatsapi.New(cfg.EatsBase, cfg.EatsToken, cfg.UpstreamRPS)
	if err != nil {
		return nil, invalidArgsError(
			fmt.Sprintf("invalid places API base %q: %v", cfg.EatsBase, err),
			"eatsctl home --base http://localhost:8081/api",
		)
	}
	return c, nil
}

func runResolve(cmd *cobra.Command, args []string) error {
	cards := app.NewCardService(category.DefaultResolver(), images.Stock(), "")
	ms := make([]category.Match, 0, len(args))
	for _, a := range args {
		ms = append(ms, cards.Resolve(a))
	}
	if flagJSON {
		return display.PrintMatchesJSON(cmd.OutOrStdout(), ms)
	}
	display.PrintMatches(cmd.OutOrStdout(), ms)
	return nil
}

func runImage(cmd *cobra.Command, args []string) error {
	cards := app.NewCardService(category.DefaultResolver(), images.Stock(), "")
	c, url := cards.Image(args[0], flagSeed)
	img := display.ImageJSON{Type: args[0], Category: string(c), Seed: flagSeed, URL: url}
	if flagJSON {
		return display.PrintImageJSON(cmd.OutOrStdout(), img)
	}
	display.PrintImage(cmd.OutOrStdout(), img)
	return nil
}

func runCategories(cmd *cobra.Command, _ []string) error {
	cats := app.NewCardService(category.DefaultResolver(), images.Stock(), "").Categories()
	if flagJSON {
		return display.PrintCategoriesJSON(cmd.OutOrStdout(), cats)
	}
	display.PrintCategories(cmd.OutOrStdout(), cats)
	return nil
}

func runHome(cmd *cobra.Command, _ []string) error {
	var only sections.Name
	if flagSection != "" {
		n, ok := sections.ParseName(strings.ToLower(strings.TrimSpace(flagSection)))
		if !ok {
			names := make([]string, 0, len(sections.Order))
			for _, n := range sections.Order {
				names = append(names, string(n))
			}
			return invalidArgsError(
				fmt.Sprintf("unknown section %q (use %s)", flagSection, strings.Join(names, ", ")),
				"eatsctl home --section hidden_gems",
			)
		}
		only = n
	}

	cfg := loadConfig()
	client, err := newClient(cfg)
	if err != nil {
		return err
	}
	home := app.NewHomeService(client, client, nil, app.HomeConfig{
		City:         cfg.City,
		QueryTimeout: cfg.QueryTimeout,
		Gems: sections.GemCriteria{
			MinReviews: cfg.GemsMinReviews,
			MaxReviews: cfg.GemsMaxReviews,
			MinRating:  cfg.GemsMinRating,
		},
	})
	cards := newCards(cfg)
	ctx := commandContext(cmd)

	if only != "" {
		sec, err := home.Section(ctx, only)
		if err != nil {
			return notFoundError(err.Error())
		}
		v := cards.View(sec)
		if flagJSON {
			return display.PrintSectionJSON(cmd.OutOrStdout(), v)
		}
		display.PrintSection(cmd.OutOrStdout(), v)
		return nil
	}

	h, err := home.Build(ctx)
	if err != nil {
		return upstreamError("building homepage", err)
	}
	v := cards.HomeView(h)
	if flagJSON {
		return display.PrintHomeJSON(cmd.OutOrStdout(), v)
	}
	display.PrintHome(cmd.OutOrStdout(), v)
	return nil
}

func runPlace(cmd *cobra.Command, args []string) error {
	id := strings.TrimSpace(args[0])
	if id == "" {
		return invalidArgsError("place ID must not be empty", "eatsctl place ChIJ123")
	}

	cfg := loadConfig()
	client, err := newClient(cfg)
	if err != nil {
		return err
	}
	p, err := app.NewQueryService(client, nil, cfg.CacheTTL).GetPlace(commandContext(cmd), id)
	if err != nil {
		return upstreamError(fmt.Sprintf("fetching place %s", id), err)
	}

	card := newCards(cfg).Card(p, "")
	if flagJSON {
		return display.PrintCardJSON(cmd.OutOrStdout(), card)
	}
	display.PrintCard(cmd.OutOrStdout(), card)
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
