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
		fmt.Fprintln(os.Stderr, "usage: gen-ref [config.toml|-] [output-file]")
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
	output := bytes.Buffer{}
	if err = gen.GenerateReference(&output, cfg, cfg.Swatch, cfg.Logger(os.Stderr)); err != nil {
		return
	}
	if len(os.Args) < 3 {
		_, err = os.Stdout.Write(output.Bytes())
		return
	}
	err = os.WriteFile(os.Args[2], output.Bytes(), 0o666)
}
