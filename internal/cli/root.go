package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	"github.com/court-monitor/scraper/internal/api"
	"github.com/court-monitor/scraper/internal/browser"
	"github.com/court-monitor/scraper/internal/config"
	"github.com/court-monitor/scraper/internal/models"
	"github.com/court-monitor/scraper/internal/scraper"
	"github.com/court-monitor/scraper/internal/storage"
	"github.com/court-monitor/scraper/pkg/logger"
)

var (
	flagStartDate string
	flagEndDate   string
	flagWorkers   int
	flagHeadless  bool
	flagOutput    string
	flagCSV       bool
	flagMongoURI  string
	flagHTTPPort  string
)

var rootCmd = &cobra.Command{
	Use:           "ihc-scraper",
	Short:         "Scrape IHC case records by institution date",
	Long:          "Drives a headless Chrome against the IHC case-search portal, collecting case records for every date from the start date to today.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagStartDate, "start-date", "", "start date (DD/MM/YYYY); prompted when omitted")
	rootCmd.Flags().StringVar(&flagEndDate, "end-date", "", "end date (DD/MM/YYYY); defaults to today")
	rootCmd.Flags().IntVar(&flagWorkers, "workers", 0, "concurrent date-scrape workers")
	rootCmd.Flags().BoolVar(&flagHeadless, "headless", true, "run the browser headless")
	rootCmd.Flags().StringVar(&flagOutput, "output", "", "output directory")
	rootCmd.Flags().BoolVar(&flagCSV, "csv", false, "also write a flattened CSV")
	rootCmd.Flags().StringVar(&flagMongoURI, "mongo-uri", "", "MongoDB URI to mirror cases into")
	rootCmd.Flags().StringVar(&flagHTTPPort, "http-port", "", "port for the status API (disabled when empty)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	applyFlags(cmd, cfg)

	logger.Init(logger.IsDev(), cfg.LogFile)
	log := logger.Log

	startInput := flagStartDate
	if startInput == "" {
		startInput = promptStartDate(os.Stdin)
	}
	start, err := scraper.ParseInputDate(startInput)
	if err != nil {
		return err
	}

	end := time.Now()
	endInput := end.Format(scraper.InputLayout)
	if flagEndDate != "" {
		if end, err = scraper.ParseInputDate(flagEndDate); err != nil {
			return err
		}
		endInput = flagEndDate
	}

	dates := scraper.DateRange(start, end)
	if len(dates) == 0 {
		return fmt.Errorf("empty date range: %s is after %s", startInput, endInput)
	}

	fmt.Printf("\nDate range: %s to %s (%d dates total)\n", startInput, endInput, len(dates))
	log.Info().Int("dates", len(dates)).Str("portal", cfg.PortalURL).Msg("starting scraper")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b := browser.New(ctx, cfg.Headless)
	defer b.Close()

	var sink scraper.Sink
	if cfg.MongoURI != "" {
		repo, err := storage.NewCaseRepo(cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return fmt.Errorf("connect to mongo: %w", err)
		}
		defer repo.Close()
		sink = repo
		log.Info().Str("db", cfg.MongoDatabase).Msg("mongo sink enabled")
	}

	progress := scraper.NewProgress()
	if cfg.HTTPPort != "" {
		app := fiber.New(fiber.Config{DisableStartupMessage: true})
		api.SetupRoutes(app, progress)
		go func() {
			addr := ":" + cfg.HTTPPort
			log.Info().Str("addr", addr).Msg("status API listening")
			if err := app.Listen(addr); err != nil {
				log.Error().Err(err).Msg("status API error")
			}
		}()
		defer func() {
			if err := app.Shutdown(); err != nil {
				log.Error().Err(err).Msg("status API shutdown failed")
			}
		}()
	}

	cases, runErr := scraper.New(cfg, b, sink, progress).Run(ctx, dates)
	if runErr != nil {
		log.Warn().Err(runErr).Msg("run interrupted, saving what was collected")
	}

	if len(cases) == 0 {
		fmt.Println("\nNo cases found across all dates")
		return nil
	}

	status := models.StatusComplete
	if runErr != nil {
		status = models.StatusPartial
	}
	env := models.NewEnvelope(cases, startInput, endInput, cfg.PortalURL, status)

	writer, err := storage.NewWriter(cfg.OutputDir, cfg.OutputPrefix)
	if err != nil {
		return err
	}
	path, err := writer.WriteJSON(env, startInput)
	if err != nil {
		return err
	}
	if cfg.WriteCSV {
		if _, err := writer.WriteCSV(env, startInput); err != nil {
			return err
		}
	}

	fmt.Printf("\nScraping completed, saved to %s\n", path)
	fmt.Printf("Total cases across all dates: %d\n", len(cases))
	return nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("workers") {
		cfg.WorkerCount = flagWorkers
	}
	if cmd.Flags().Changed("headless") {
		cfg.Headless = flagHeadless
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputDir = flagOutput
	}
	if cmd.Flags().Changed("csv") {
		cfg.WriteCSV = flagCSV
	}
	if cmd.Flags().Changed("mongo-uri") {
		cfg.MongoURI = flagMongoURI
	}
	if cmd.Flags().Changed("http-port") {
		cfg.HTTPPort = flagHTTPPort
	}
}

// promptStartDate asks on stdin until it gets a valid DD/MM/YYYY date.
func promptStartDate(in *os.File) string {
	fmt.Println("\n=== IHC Case Scraper ===")
	sc := bufio.NewScanner(in)
	for {
		fmt.Print("\nEnter start date (DD/MM/YYYY): ")
		if !sc.Scan() {
			return ""
		}
		input := strings.TrimSpace(sc.Text())
		if _, err := scraper.ParseInputDate(input); err == nil {
			return input
		}
		fmt.Println("Invalid date format. Please use DD/MM/YYYY")
	}
}
