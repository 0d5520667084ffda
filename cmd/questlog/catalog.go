package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/questlog-api/internal/entities"
	"github.com/KirkDiggler/questlog-api/internal/errors"
	"github.com/KirkDiggler/questlog-api/internal/pkg/clock"
	"github.com/KirkDiggler/questlog-api/internal/render"
	"github.com/KirkDiggler/questlog-api/internal/repositories/catalog"
)

func newCatalogCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the monster and skill catalog",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "seed",
			Short: "Insert the default monsters and skills",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withCatalog(cmd, opts, false, func(ctx context.Context, repo catalog.Repository) error {
					out, err := repo.Seed(ctx, &catalog.SeedInput{
						Monsters: catalog.DefaultMonsters(),
						Skills:   catalog.DefaultSkills(),
					})
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s %d monsters, %d skills\n",
						render.Good.Render("Seeded"), out.MonstersAdded, out.SkillsAdded)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "monsters",
			Short: "List monsters",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withCatalog(cmd, opts, true, func(ctx context.Context, repo catalog.Repository) error {
					out, err := repo.ListMonsters(ctx, &catalog.ListMonstersInput{})
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), render.Monsters(out.Monsters))
					return nil
				})
			},
		},
		newCatalogSkillsCmd(opts),
	)
	return cmd
}

func newCatalogSkillsCmd(opts *rootOptions) *cobra.Command {
	var class string

	cmd := &cobra.Command{
		Use:   "skills",
		Short: "List skills, optionally those usable by one class",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var filter entities.Class
			if class != "" {
				c, err := entities.ParseClass(class)
				if err != nil {
					return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid class")
				}
				filter = c
			}

			return withCatalog(cmd, opts, true, func(ctx context.Context, repo catalog.Repository) error {
				var skills []*entities.Skill
				if filter != "" {
					out, err := repo.ListSkillsByClass(ctx, &catalog.ListSkillsByClassInput{Class: filter})
					if err != nil {
						return err
					}
					skills = out.Skills
				} else {
					out, err := repo.ListSkills(ctx, &catalog.ListSkillsInput{})
					if err != nil {
						return err
					}
					skills = out.Skills
				}
				fmt.Fprintln(cmd.OutOrStdout(), render.Skills(skills))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&class, "class", "", "only skills this class can use")
	return cmd
}

// withCatalog opens only the catalog database. autoSeed follows the
// catalog.seed setting; explicit seeding passes false.
func withCatalog(cmd *cobra.Command, opts *rootOptions, autoSeed bool, fn func(ctx context.Context, repo catalog.Repository) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	setupLogging(cmd, cfg)
	if !autoSeed {
		cfg.Catalog.Seed = false
	}

	repo, closeDB, err := openCatalog(ctx, cfg, clock.New())
	if err != nil {
		return err
	}
	defer func() { _ = closeDB() }()

	return fn(ctx, repo)
}
