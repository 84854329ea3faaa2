package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/depeter/chatdeck/assets/icon"
	"github.com/depeter/chatdeck/internal/app"
	"github.com/depeter/chatdeck/internal/cache"
	"github.com/depeter/chatdeck/internal/carousel"
	"github.com/depeter/chatdeck/internal/config"
	"github.com/depeter/chatdeck/internal/feed"
	"github.com/depeter/chatdeck/internal/ui"
)

var (
	configPath string
	feedPath   string
	logLevel   string
	fullscreen bool
	checkWidth float64
)

var rootCmd = &cobra.Command{
	Use:   "chatdeck [feed]",
	Short: "Browse the news and events attached to a chat response",
	Long: `chatdeck shows the news and events of a chat response as swipeable card
carousels. The feed is a JSON or YAML file holding the response's
secondary_output block; it is reloaded whenever it changes on disk.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runViewer,
}

var checkCmd = &cobra.Command{
	Use:   "check <feed>",
	Short: "Validate a feed file and print how its carousels paginate",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/chatdeck/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&feedPath, "feed", "", "Feed file to show")
	rootCmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "Start fullscreen")
	checkCmd.Flags().Float64Var(&checkWidth, "width", 960, "Window width to paginate for")

	rootCmd.AddCommand(checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the config, applies flag overrides and installs the logger.
func setup() (*config.Config, *slog.Logger, error) {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	lvl, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      lvl,
		TimeFormat: "15:04:05.000",
	}))
	slog.SetDefault(logger)

	if err := app.ValidateKeybinds(cfg.Keybinds); err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func runViewer(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Feed.Path = args[0]
	}
	if feedPath != "" {
		cfg.Feed.Path = feedPath
	}
	if cmd.Flags().Changed("fullscreen") {
		cfg.UI.Fullscreen = fullscreen
	}

	if err := ui.InitFonts(goregular.TTF); err != nil {
		return fmt.Errorf("init fonts: %w", err)
	}

	cacheDir := filepath.Join(os.TempDir(), "chatdeck", "images")
	if configDir, err := config.ConfigDir(); err == nil {
		cacheDir = filepath.Join(configDir, "cache", "images")
	}
	imgCache, err := cache.NewImageCache(cacheDir, logger)
	if err != nil {
		return fmt.Errorf("init image cache: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	game := app.NewGame(ctx, cfg, imgCache, logger)

	if cfg.Feed.Path == "" {
		logger.Info("no feed given; pass a file or set feed.path")
	} else {
		game.PostFeed(feed.Load(cfg.Feed.Path))
		if cfg.Feed.Watch {
			if err := feed.Watch(ctx, cfg.Feed.Path, logger, game.PostFeed); err != nil {
				logger.Warn("feed watch disabled", "err", err)
			}
		}
	}

	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("Chat Deck")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	go func() {
		<-ctx.Done()
		// Interrupts end the run loop on the next frame
		game.Quit()
	}()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup()
	if err != nil {
		return err
	}
	out, err := feed.Load(args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	ipp := carousel.ItemsPerPageAt(checkWidth, cfg.Carousel.Breakpoint)
	for _, sec := range []struct {
		name  string
		cards []feed.Card
	}{
		{"news", out.NewsCards()},
		{"events", out.EventCards()},
	} {
		pages := carousel.TotalPages(len(sec.cards), ipp)
		fmt.Fprintf(w, "%-7s %d cards, %d per page, %d pages\n", sec.name, len(sec.cards), ipp, pages)
		for i, c := range sec.cards {
			date := c.Date
			if date == "" {
				date = "-"
			}
			fmt.Fprintf(w, "  %2d  %-12s  %s\n", i, date, c.Title)
		}
	}
	fmt.Fprintf(w, "sources %d\n", len(out.Citations))
	return nil
}
