package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/matt-g-everett/keyline/api"
	"github.com/matt-g-everett/keyline/stream"
	"github.com/matt-g-everett/keyline/timeline"
)

type app struct {
	Config     stream.Config
	Client     mqtt.Client
	Shared     *timeline.Shared
	Controller *stream.Controller
	Streamer   *stream.Streamer
	Control    *stream.Control
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	if err := a.Control.Subscribe(); err != nil {
		log.Printf("Subscribe to %s failed: %v", a.Config.Mqtt.Topics.Control, err)
	}
}

func (a *app) readConfig(configPath string) {
	f, err := os.Open(configPath)
	if err != nil {
		log.Fatalf("Opening config: %v", err)
	}
	defer f.Close()

	a.Config, err = stream.ReadConfig(f)
	if err != nil {
		log.Fatalf("Reading config %s: %v", configPath, err)
	}
}

func (a *app) loadTimeline() {
	tl, err := timeline.LoadFile(a.Config.Timeline.Path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("No timeline at %s, starting empty", a.Config.Timeline.Path)
		tl = timeline.New()
	} else if err != nil {
		log.Fatalf("Loading timeline: %v", err)
	}
	a.Shared = timeline.NewShared(tl)
}

// onReload fades from a frozen copy of the replaced timeline.
func (a *app) onReload(old *timeline.Timeline) {
	a.Controller.FadeFrom(stream.NewTrackAnimation(timeline.NewShared(old), a.Config))
}

func (a *app) run(ctx context.Context) {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalf("Connecting to %s: %v", a.Config.Mqtt.URL, token.Error())
	}
	defer a.Client.Disconnect(250)

	a.Streamer.Run(ctx)
}

func main() {
	// mqtt.DEBUG = log.New(os.Stdout, "", 0)
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	timelinePath := flag.String("timeline", "", "Timeline file, overriding the config.")
	saveOnExit := flag.Bool("save", false, "Save the timeline back to its file on exit.")
	flag.Parse()

	// Read the config
	a := newApp()
	a.readConfig(*configPath)
	if *timelinePath != "" {
		a.Config.Timeline.Path = *timelinePath
	}
	log.Printf("Config: %+v", a.Config)
	a.loadTimeline()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	animation := stream.NewTrackAnimation(a.Shared, a.Config)
	a.Controller = stream.NewController(animation, a.Config.Frame.Rate, a.Config.Animation.FadeSecs)

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID("keyline-" + uuid.NewString()[:8]).
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)
	a.Streamer = stream.NewStreamer(a.Client, a.Config.Mqtt.Topics.Stream, a.Controller, a.Config.Frame.Rate)
	a.Control = stream.NewControl(a.Client, a.Config.Mqtt.Topics.Control, a.Shared)

	go func() {
		if err := api.NewApi(a.Shared, a.Config.Http.Listen).Serve(ctx); err != nil {
			log.Printf("HTTP server: %v", err)
		}
	}()

	if a.Config.Timeline.Watch {
		w := stream.NewWatcher(a.Config.Timeline.Path, a.Shared, a.onReload)
		go func() {
			if err := w.Run(ctx); err != nil {
				log.Printf("Watcher: %v", err)
			}
		}()
	}

	a.run(ctx)

	if *saveOnExit {
		var err error
		a.Shared.View(func(tl *timeline.Timeline) {
			err = timeline.SaveFile(tl, a.Config.Timeline.Path)
		})
		if err != nil {
			log.Printf("Saving timeline: %v", err)
		}
	}
}
