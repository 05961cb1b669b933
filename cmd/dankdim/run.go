package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/AvengeMedia/dankdim/internal/breaks"
	"github.com/AvengeMedia/dankdim/internal/config"
	"github.com/AvengeMedia/dankdim/internal/controller"
	"github.com/AvengeMedia/dankdim/internal/errdefs"
	"github.com/AvengeMedia/dankdim/internal/ipc"
	"github.com/AvengeMedia/dankdim/internal/lockfile"
	"github.com/AvengeMedia/dankdim/internal/log"
	"github.com/AvengeMedia/dankdim/internal/nightlight"
	"github.com/AvengeMedia/dankdim/internal/notify"
	"github.com/AvengeMedia/dankdim/internal/overlay"
	"github.com/AvengeMedia/dankdim/internal/tray"
)

const defaultOverlayBinary = "dankdim-overlay"

var overlayBinary string

// runTray assembles the full instance and blocks in the tray loop.
func runTray() {
	lock, err := lockfile.Acquire()
	if err != nil {
		if errors.Is(err, errdefs.ErrAlreadyRunning) {
			log.Fatal("dankdim is already running")
		}
		log.Fatalf("Failed to acquire instance lock: %v", err)
	}
	defer lock.Release()

	store, err := config.NewStore()
	if err != nil {
		log.Fatalf("Failed to resolve config path: %v", err)
	}

	bridge, err := nightlight.NewBridge()
	if err != nil {
		log.Fatalf("Failed to connect to the session bus: %v", err)
	}
	defer bridge.Close()

	var notifier notify.Notifier
	if n, err := notify.NewNotifier(); err != nil {
		log.Warnf("Notifications unavailable: %v", err)
	} else {
		notifier = n
		defer n.Close()
	}

	supervisor := overlay.NewSupervisor(overlayBinary)
	scheduler := breaks.NewScheduler(notifier, breaks.DefaultInterval)

	ctrl := controller.New(store, supervisor, bridge, scheduler, notifier)
	loop := controller.NewLoop(ctrl)
	defer loop.Close()

	server, err := ipc.NewServer(loop, tray.Quit)
	if err != nil {
		if errors.Is(err, errdefs.ErrAlreadyRunning) {
			log.Fatal("dankdim is already running")
		}
		log.Fatalf("Failed to start the control service: %v", err)
	}
	defer server.Close()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		tray.Quit()
	}()

	log.Infof("dankdim v%s started", Version)
	tray.Run(loop)
}
