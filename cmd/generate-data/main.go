package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/kovidgoyal/colorimetry/internal/gen"
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
	if len(os.Args) > 3 {
		fmt.Fprintln(os.Stderr, "usage: generate-data [config.toml|-] [output-file]")
		os.Exit(1)
	}
	config_file := ""
	if len(os.Args) > 1 {
		config_file = os.Args[1]
	}
	cfg, err := gen.LoadConfig(config_file)
	if err != nil {
		return
	}
	logger := cfg.Logger(os.Stderr)
	output := bytes.Buffer{}
	if err = gen.GenerateData(&output, cfg, logger); err != nil {
		return
	}
	if len(os.Args) < 3 {
		_, err = os.Stdout.Write(output.Bytes())
		return
	}
	if err = os.WriteFile(os.Args[2], output.Bytes(), 0o666); err == nil {
		logger.Info("Data written", "file", os.Args[2], "bytes", output.Len())
	}
}
