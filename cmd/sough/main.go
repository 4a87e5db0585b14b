// Command sough plays ambient soundscapes on the default audio device or
// renders them to WAV files.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/golang/glog"

	"github.com/lozord/sough"
)

var (
	list        = flag.Bool("list", false, "print the available scenes and exit")
	sceneName   = flag.String("scene", "rain", "scene to play")
	volume      = flag.Float64("volume", 0.8, "output volume in [0, 1]")
	duration    = flag.Duration("duration", 0, "how long to play; 0 means until interrupted")
	seed        = flag.Int64("seed", 0, "random seed; 0 seeds from the clock")
	outFile     = flag.String("out", "", "render to this WAV file instead of playing")
	presetsFile = flag.String("presets", "", "TOML file overriding scene tuning")
)

func main() {
	flag.Parse()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := doMain(ctx); err != nil {
		log.Exitf("failed to run: %v", err)
	}
}

func doMain(ctx context.Context) error {
	if *list {
		for _, scene := range sough.Scenes() {
			fmt.Println(scene)
		}
		return nil
	}

	scene, ok := sough.SceneNamed(*sceneName)
	if !ok {
		return fmt.Errorf("unknown scene %q, try -list", *sceneName)
	}

	var presets *sough.Presets
	if *presetsFile != "" {
		p, err := sough.ParsePresetsFile(*presetsFile)
		if err != nil {
			return err
		}
		presets = p
	}

	if *outFile != "" {
		return render(scene, presets)
	}
	return play(ctx, scene, presets)
}

// render writes -duration worth of the scene to -out.
func render(scene sough.Scene, presets *sough.Presets) error {
	if *duration <= 0 {
		return fmt.Errorf("rendering to %q needs a positive -duration", *outFile)
	}

	sd := *seed
	if sd == 0 {
		sd = time.Now().UnixNano()
	}

	f, err := os.Create(*outFile)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", *outFile, err)
	}

	log.Infof("rendering %v of %v (seed %d) to %q", *duration, scene, sd, *outFile)
	stream := sough.NewTuned(scene, sd, presets)
	if err := sough.WriteWAV(f, stream, duration.Seconds()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// play streams the scene to the default output device until the duration
// elapses or the context is canceled.
func play(ctx context.Context, scene sough.Scene, presets *sough.Presets) error {
	sink, err := sough.NewPortAudioSink()
	if err != nil {
		return err
	}
	defer sink.Close()

	session := sough.NewSession(sink)
	defer session.Close()
	session.SetPresets(presets)
	session.SetVolume(*volume)
	if err := session.Select(scene); err != nil {
		return err
	}
	if _, err := session.TogglePlay(); err != nil {
		return fmt.Errorf("failed to start playback: %w", err)
	}
	log.Infof("playing %v at volume %.2f", scene, session.Status().Volume)

	var done <-chan time.Time
	if *duration > 0 {
		timer := time.NewTimer(*duration)
		defer timer.Stop()
		done = timer.C
	}

	tick := time.NewTicker(time.Second)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Info("interrupted, shutting down")
			return nil
		case <-done:
			return nil
		case <-tick.C:
			log.Infof("output level: %.3f", sink.Level())
		}
	}
}
