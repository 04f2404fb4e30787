package app

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/orgball2608/insta-extractor/internal/domain"
	"github.com/orgball2608/insta-extractor/internal/downloader"
	"github.com/orgball2608/insta-extractor/internal/downloader/downloaderimpl"
	"github.com/orgball2608/insta-extractor/internal/extractor"
	"github.com/orgball2608/insta-extractor/internal/extractor/extractorimpl"
	"github.com/orgball2608/insta-extractor/internal/instagram"
	"github.com/orgball2608/insta-extractor/internal/instagram/instagramimpl"
	"github.com/orgball2608/insta-extractor/internal/notifier"
	"github.com/orgball2608/insta-extractor/internal/notifier/notifierimpl"
	"github.com/orgball2608/insta-extractor/internal/pgx"
	repositories "github.com/orgball2608/insta-extractor/internal/repositories/fx"
	"github.com/orgball2608/insta-extractor/internal/storage"
	"github.com/orgball2608/insta-extractor/internal/storage/storageimpl"
	"github.com/orgball2608/insta-extractor/pkg/config"
	"github.com/orgball2608/insta-extractor/pkg/formatter"
	"github.com/orgball2608/insta-extractor/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		pgx.New,
	),
	fx.Provide(
		fx.Annotate(
			instagramimpl.New,
			fx.As(new(instagram.Client)),
		),
		fx.Annotate(
			downloaderimpl.New,
			fx.As(new(downloader.Client)),
		),
		fx.Annotate(
			storageimpl.New,
			fx.As(new(storage.Client)),
		),
		fx.Annotate(
			extractorimpl.New,
			fx.As(new(extractor.Client)),
		),
		notifierimpl.New,
	),
	repositories.Module,
	fx.Invoke(run),
)

func run(lc fx.Lifecycle, shutdowner fx.Shutdowner, log logger.Logger, cfg *config.Config,
	igClient instagram.Client, extClient extractor.Client, store storage.Client, notif notifier.Client) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if keepRunning := workflow(log, cfg, igClient, extClient, store, notif); !keepRunning {
					_ = shutdowner.Shutdown()
				}
			}()
			return nil
		},
	})
}

// workflow is the one linear run: login, prompt, extraction, reports,
// summary. It reports whether the app should stay up for scheduled re-runs.
func workflow(log logger.Logger, cfg *config.Config, igClient instagram.Client,
	extClient extractor.Client, store storage.Client, notif notifier.Client) bool {
	if err := cfg.ValidateCredentials(); err != nil {
		log.Error("Missing credentials", "error", err)
		fmt.Println("Failed to login. Please check your credentials.")
		return false
	}

	if err := igClient.Login(); err != nil {
		notif.SendMessageToUser("Instagram login error: " + err.Error())
		fmt.Println("Failed to login. Please check your credentials.")
		return false
	}

	username := promptUsername()
	if username == "" {
		fmt.Println("No username provided.")
		return false
	}

	ctx := context.Background()

	result, err := extClient.ExtractUserData(ctx, username)
	if err != nil {
		notif.SendMessageToUser("Extraction failed for @" + username + ": " + err.Error())
		fmt.Println("Failed to extract data. Check logs for details.")
		return false
	}

	// CSV reports are an independent failure domain, the JSON document is
	// already on disk at this point.
	if err := store.WriteCSVReports(username, result); err != nil {
		log.Error("Failed to generate CSV reports", "username", username, "error", err)
	}

	summary := buildSummary(store.OutputDir(), username, result)
	fmt.Println(summary)
	notif.SendMessageToUser(summary)

	if cfg.Extractor.IntervalMinutes > 0 {
		if err := extClient.ScheduleExtractions(ctx, username); err != nil {
			log.Error("Failed to start extraction scheduler", "error", err)
			return false
		}
		return true
	}

	return false
}

func promptUsername() string {
	fmt.Print("Enter the Instagram username to extract data from: ")

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

func buildSummary(outputDir string, username string, result *domain.ExtractionResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\nData extraction completed for @%s\n", username)
	fmt.Fprintf(&sb, "Results saved in: %s\n", outputDir)
	fmt.Fprintf(&sb, "- Profile info: %d fields\n", reflect.TypeOf(result.UserInfo).NumField())
	fmt.Fprintf(&sb, "- Posts: %s items\n", formatter.FormatNumber(len(result.Posts)))
	fmt.Fprintf(&sb, "- Followers: %s users\n", formatter.FormatNumber(len(result.Followers)))
	fmt.Fprintf(&sb, "- Following: %s users", formatter.FormatNumber(len(result.Following)))
	return sb.String()
}
