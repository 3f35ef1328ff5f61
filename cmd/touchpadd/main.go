// Command touchpadd grabs a touchpad evdev node, runs it through the
// gesture/pointer pipeline in internal/touchpad, and replays the result
// onto a virtual uinput mouse and keyboard.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	tpconfig "touchpad/internal/config"
	"touchpad/internal/inputdev"
	"touchpad/internal/peers"
	"touchpad/internal/touchpad"
	"touchpad/internal/uinputsink"
)

var (
	flagConfigPath  string
	flagNameKeyword string
	flagMustContain string
	flagVerbose     bool
)

func main() {
	root := &cobra.Command{
		Use:   "touchpadd",
		Short: "Touchpad gesture daemon",
		RunE:  run,
	}
	root.Flags().StringVar(&flagConfigPath, "config", "", "path to YAML config file")
	root.Flags().StringVar(&flagNameKeyword, "device-keyword", "Touchpad", "substring to match against input device names")
	root.Flags().StringVar(&flagMustContain, "device-must-contain", "Touchpad", "preferred substring among keyword matches")
	root.Flags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	level := zerolog.InfoLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	log.Logger = logger

	cfg := touchpad.DefaultConfig()
	if flagConfigPath != "" {
		f, err := tpconfig.Load(flagConfigPath)
		if err != nil {
			return err
		}
		cfg = f.Apply(cfg)
	}

	path, err := inputdev.Find(flagNameKeyword, flagMustContain)
	if err != nil {
		return fmt.Errorf("find touchpad: %w", err)
	}
	logger.Info().Str("path", path).Msg("found touchpad device")

	dev, err := inputdev.Open(path)
	if err != nil {
		return fmt.Errorf("open touchpad: %w", err)
	}
	defer dev.Close()

	geo, err := inputdev.Probe(dev)
	if err != nil {
		return fmt.Errorf("probe touchpad geometry: %w", err)
	}
	applyGeometry(&cfg, geo)
	logger.Debug().
		Bool("has_mt", geo.HasMT).
		Int("num_slots", geo.NumSlots).
		Int32("x_res", geo.XResolution).
		Int32("y_res", geo.YResolution).
		Msg("probed geometry")

	sink, err := uinputsink.New(dev.Name())
	if err != nil {
		return fmt.Errorf("create virtual devices: %w", err)
	}
	defer sink.Close()

	buttons := peers.NewButtons(cfg, sink, 140, 80, cfg.LowerThumbLine)
	tap := peers.NewTap(cfg, sink)
	var edgeScroll touchpad.EdgeScroll
	if cfg.ScrollMethod == touchpad.ScrollEdge {
		edgeScroll = peers.NewEdgeScroll(cfg, sink, cfg.RightEdge/20)
	}

	pipeline, err := touchpad.NewDevice(cfg, sink, buttons, tap, edgeScroll)
	if err != nil {
		return fmt.Errorf("init touchpad pipeline: %w", err)
	}

	return eventLoop(logger, dev, pipeline)
}

// applyGeometry fills the slot/resolution/edge fields Config needs from
// probed hardware, deriving edges and thumb lines as fractions of the
// reported range the way the teacher's hardcoded zone constants did,
// but scaled to the actual device instead of one vendor's panel.
func applyGeometry(cfg *touchpad.Config, geo inputdev.Geometry) {
	cfg.HasMT = geo.HasMT
	cfg.NumSlots = geo.NumSlots
	cfg.XResolution = geo.XResolution
	cfg.YResolution = geo.YResolution
	cfg.XScaleCoeff = 1000.0 / 25.4 / float64(geo.XResolution)
	cfg.YScaleCoeff = 1000.0 / 25.4 / float64(geo.YResolution)
	cfg.ReportsDistance = geo.ReportsDistance

	width := geo.MaxX - geo.MinX
	height := geo.MaxY - geo.MinY
	cfg.LeftEdge = geo.MinX + width/20
	cfg.RightEdge = geo.MaxX - width/20
	cfg.VertCenter = geo.MinY + height/2
	cfg.UpperThumbLine = geo.MinY + height/10
	cfg.LowerThumbLine = geo.MaxY - height/5
	cfg.ThumbPressureThreshold = 45
	cfg.DetectThumbs = geo.ReportsPressure
	cfg.HysteresisMarginX = geo.XResolution / 8
	cfg.HysteresisMarginY = geo.YResolution / 8
	cfg.IsClickpad = true
}

// eventLoop translates raw device frames into pipeline calls. Single-
// threaded and cooperative per the pipeline's concurrency model: each
// EV_SYN/SYN_REPORT boundary runs exactly one HandleState call before
// the next frame is read.
func eventLoop(logger zerolog.Logger, dev *inputdev.Device, pipeline *touchpad.Device) error {
	for {
		events, err := dev.ReadFrame()
		if err != nil {
			return fmt.Errorf("read event frame: %w", err)
		}
		var now int64
		for _, e := range events {
			now = e.Micros
			switch e.Type {
			case evSYN:
				if e.Code == synReport {
					pipeline.HandleState(now)
				}
			case evABS:
				pipeline.ProcessAbsolute(now, e.Code, e.Value)
			case evKEY:
				pipeline.ProcessKey(now, e.Code, e.Value != 0)
			}
		}
		if now == 0 {
			now = time.Now().UnixMicro()
		}
	}
}

const (
	evSYN      = 0x00
	evKEY      = 0x01
	evABS      = 0x03
	synReport  = 0x00
)
