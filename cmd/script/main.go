package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"gradeyour401k/api"
	"gradeyour401k/cmd"
	"gradeyour401k/internal/db/migrations"
	"gradeyour401k/internal/domain"
	"gradeyour401k/internal/logger"
	"gradeyour401k/internal/service"
	"gradeyour401k/internal/util"

	"github.com/spf13/cobra"
)

func withHandler(fn func(ctx context.Context, handler *api.ApiHandler, args []string) error) func(*cobra.Command, []string) error {
	return func(c *cobra.Command, args []string) error {
		handler, _, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(handler)

		ctx := logger.WithLogger(c.Context(), handler.Logger)
		return fn(ctx, handler, args)
	}
}

func printJson(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func main() {
	var asOfStr string

	root := &cobra.Command{
		Use:          "script",
		Short:        "operational commands for gradeyour401k",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&asOfStr, "as-of", "", "as-of date (YYYY-MM-DD); defaults to today")

	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "apply pending database migrations",
		RunE: withHandler(func(ctx context.Context, handler *api.ApiHandler, args []string) error {
			if err := migrations.Up(handler.Db); err != nil {
				return err
			}
			version, dirty, err := migrations.Version(handler.Db)
			if err != nil {
				return err
			}
			handler.Logger.Infow("schema is current", "version", version, "dirty", dirty)
			return nil
		}),
	}

	daily := &cobra.Command{
		Use:   "daily",
		Short: "ingest scores then build every model",
		RunE: withHandler(func(ctx context.Context, handler *api.ApiHandler, args []string) error {
			asOf, err := util.ParseDate(asOfStr)
			if err != nil {
				return err
			}
			result, err := handler.DailyModelApp.Run(ctx, asOf)
			if err != nil {
				return err
			}
			return printJson(result)
		}),
	}

	buildModels := &cobra.Command{
		Use:   "build-models [provider profile]",
		Short: "build one model, or every model when no provider is given",
		Args: cobra.MatchAll(cobra.RangeArgs(0, 2), func(c *cobra.Command, args []string) error {
			if len(args) == 1 {
				return fmt.Errorf("provider and profile must be given together")
			}
			return nil
		}),
		RunE: withHandler(func(ctx context.Context, handler *api.ApiHandler, args []string) error {
			asOf, err := util.ParseDate(asOfStr)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				snapshots, err := handler.ModelService.BuildAll(ctx, asOf)
				if printErr := printJson(snapshots); printErr != nil {
					return printErr
				}
				return err
			}

			provider, err := domain.NewProvider(args[0])
			if err != nil {
				return err
			}
			profile, err := domain.NewProfile(args[1])
			if err != nil {
				return err
			}
			snapshot, err := handler.ModelService.BuildSnapshot(ctx, asOf, provider, profile.ModelProfile())
			if err != nil {
				return err
			}
			return printJson(snapshot)
		}),
	}

	ingestScores := &cobra.Command{
		Use:   "ingest-scores",
		Short: "refresh prices and score every active symbol",
		RunE: withHandler(func(ctx context.Context, handler *api.ApiHandler, args []string) error {
			asOf, err := util.ParseDate(asOfStr)
			if err != nil {
				return err
			}
			result, err := handler.ScoreService.IngestScores(ctx, asOf)
			if err != nil {
				return err
			}
			return printJson(result)
		}),
	}

	var lineupUrl string
	importSymbols := &cobra.Command{
		Use:   "import-symbols provider [file.csv]",
		Short: "import a provider fund lineup from a csv file or --url",
		Args:  cobra.RangeArgs(1, 2),
		RunE: withHandler(func(ctx context.Context, handler *api.ApiHandler, args []string) error {
			provider, err := domain.NewProvider(args[0])
			if err != nil {
				return err
			}

			var result *service.ImportSymbolsResult
			switch {
			case lineupUrl != "":
				result, err = handler.SymbolImportService.ImportFromUrl(ctx, provider, lineupUrl)
			case len(args) == 2:
				data, readErr := os.ReadFile(args[1])
				if readErr != nil {
					return fmt.Errorf("failed to read lineup: %w", readErr)
				}
				result, err = handler.SymbolImportService.ImportCsv(ctx, provider, data)
			default:
				return fmt.Errorf("either a csv file or --url is required")
			}
			if err != nil {
				return err
			}
			return printJson(result)
		}),
	}
	importSymbols.Flags().StringVar(&lineupUrl, "url", "", "fetch the lineup csv from this url")

	var providerStr string
	grade := &cobra.Command{
		Use:   "grade profile holdings.json",
		Short: "grade a holdings file",
		Args:  cobra.ExactArgs(2),
		RunE: withHandler(func(ctx context.Context, handler *api.ApiHandler, args []string) error {
			profile, err := domain.NewProfile(args[0])
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("failed to read holdings: %w", err)
			}
			holdings := []domain.Holding{}
			if err := json.Unmarshal(data, &holdings); err != nil {
				return fmt.Errorf("failed to parse holdings: %w", err)
			}

			req := service.GradeRequest{Profile: profile, Holdings: holdings}
			if providerStr != "" {
				provider, err := domain.NewProvider(providerStr)
				if err != nil {
					return err
				}
				req.Provider = &provider
			}

			result, err := handler.GradeService.Grade(ctx, req)
			if err != nil {
				return err
			}
			return printJson(result)
		}),
	}
	grade.Flags().StringVar(&providerStr, "provider", "", "provider whose model is recommended")

	root.AddCommand(migrate, daily, buildModels, ingestScores, importSymbols, grade)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
