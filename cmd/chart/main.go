package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/muesli/termenv"

	"github.com/kovidgoyal/colorimetry/colorconv"
	"github.com/kovidgoyal/colorimetry/internal/gen"
	"github.com/kovidgoyal/colorimetry/internal/preview"
)

var _ = fmt.Print

func main() {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()
	animate := flag.Bool("animate", false, "write an animated white balance sweep along the daylight locus")
	config_file := flag.String("config", "", "TOML configuration file")
	scale := flag.Int("scale", 1, "integer magnification of the chart")
	delay := flag.Duration("delay", 400*time.Millisecond, "delay between animation frames")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: chart [flags] output.png")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	cfg, err := gen.LoadConfig(*config_file)
	if err != nil {
		return
	}
	logger := cfg.Logger(os.Stderr)
	chart, err := gen.NewChart(cfg)
	if err != nil {
		return
	}
	rows, err := chart.XYZTable()
	if err != nil {
		return
	}
	m := make([]preview.Measurement, len(rows))
	for i, r := range rows {
		m[i] = preview.Measurement{ID: r.ID, XYZ: r.V.Scale(0.01)}
	}
	white := colorconv.XYToXYZ(chart.Whitepoint)
	swatches, err := preview.ChartSwatches(m, white)
	if err != nil {
		return
	}
	if err = preview.WriteSwatchStrip(os.Stdout, swatches, termenv.EnvColorProfile()); err != nil {
		return
	}
	opts := preview.DefaultChartOptions()
	opts.Scale = *scale
	out, err := os.OpenFile(flag.Arg(0), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return
	}
	defer out.Close()
	if *animate {
		var a *preview.Animation
		if a, err = preview.WhiteBalanceSweep(m, chart.Whitepoint, preview.DefaultSweep, cfg.Adaptation, *delay, opts); err != nil {
			return
		}
		err = a.EncodeAPNG(out)
	} else {
		err = png.Encode(out, preview.RenderChart(swatches, opts))
	}
	if err == nil {
		logger.Info("Chart saved", "file", flag.Arg(0), "checker", chart.Checker.Name, "animated", *animate)
	}
}
