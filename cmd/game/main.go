// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"go-power-wash/internal/app"
	"go-power-wash/internal/audio"
	"go-power-wash/internal/config"
	"go-power-wash/internal/event"
	"go-power-wash/internal/records"
	"go-power-wash/internal/report"
	"go-power-wash/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	var (
		configPath  = flag.String("config", "", "TOML tuning file")
		recordsPath = flag.String("records", "", "JSON file with records to clean; demo records when empty")
		demoCount   = flag.Int("demo", 9, "number of demo records")
		soundsDir   = flag.String("sounds", "assets/sounds", "directory with cue files")
		feedAddr    = flag.String("feed", "", "address for the destroyed-report websocket feed, e.g. localhost:8090")
		pprofAddr   = flag.String("pprof", "", "address for net/http/pprof, e.g. localhost:6060")
		debug       = flag.Bool("debug", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	tuning, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load tuning", "path", *configPath, "err", err)
		os.Exit(1)
	}

	if *pprofAddr != "" {
		go func() {
			log.Info("pprof stopped", "err", http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	out, err := audio.OpenSpeaker(audio.DefaultSampleRate)
	if err != nil {
		log.Warn("audio device unavailable, running silent", "err", err)
		out = audio.NullOutput{}
	}
	sound := audio.NewDispatcher(audio.Options{
		Output:       out,
		SampleRate:   audio.DefaultSampleRate,
		MasterVolume: tuning.MasterVolume,
		FadeIn:       seconds(tuning.FadeIn),
		FadeOut:      seconds(tuning.FadeOut),
		Synthesize:   tuning.Synthesize,
		Log:          log,
	})
	defer sound.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := sound.Load(ctx, *soundsDir); err != nil {
		log.Warn("audio preload interrupted", "err", err)
	}
	cancel()

	var provider records.Provider = records.DemoProvider{Count: *demoCount}
	if *recordsPath != "" {
		provider = records.FileProvider{Path: *recordsPath, Log: log}
	}

	reporter := func(destroyed []event.Destroyed) {
		log.Info("destroyed report", "count", len(destroyed))
	}
	game := app.NewGame(tuning, sound, reporter, log)

	if *feedAddr != "" {
		feed := report.NewFeed(report.FeedConfig{Log: log})
		game.EventDispatcher.Subscribe(event.SessionStarted, feed)
		game.EventDispatcher.Subscribe(event.ReportUpdated, feed)
		defer feed.Close()

		mux := http.NewServeMux()
		mux.HandleFunc("/report", feed.Handle)
		go func() {
			log.Info("report feed listening", "addr", *feedAddr)
			log.Error("report feed stopped", "err", http.ListenAndServe(*feedAddr, mux))
		}()
	}

	sm := state.NewStateMachine()
	env := &state.Env{Game: game, Provider: provider, Audio: sound, Log: log}
	sm.SetState(state.NextState(sm, env))
	defer sm.Shutdown()

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Power Wash")
	ebiten.SetRunnableOnUnfocused(true)
	if err := ebiten.RunGame(a); err != nil {
		log.Error("game stopped", "err", err)
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
