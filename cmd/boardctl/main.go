// boardctl manda un comando a la placa y muestra status + body.
//
//	boardctl digital <pin> <0|1>
//	boardctl analog <pin>
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"vet-care-assistant/internal/board"
	"vet-care-assistant/internal/config"
	"vet-care-assistant/internal/platform/logger"
)

func main() {
	log := logger.NewFromEnv()
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Error("invalid config", map[string]any{"error": err})
		os.Exit(1)
	}

	addr := flag.String("addr", cfg.BoardAddr, "board base URL")
	timeout := flag.Duration("timeout", cfg.BoardTimeout, "request timeout")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] digital <pin> <0|1> | analog <pin>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	c, err := board.New(*addr, *timeout)
	if err != nil {
		log.Error("invalid board address", map[string]any{"addr": *addr, "error": err})
		os.Exit(1)
	}

	reading, err := run(context.Background(), c, flag.Args())
	if err != nil {
		log.Error("board request failed", map[string]any{"addr": *addr, "error": err})
		os.Exit(1)
	}

	fmt.Printf("%s\nstatus: %d\n%s\n", reading.URL, reading.StatusCode, reading.Body)
}

func run(ctx context.Context, c *board.Client, args []string) (board.Reading, error) {
	if len(args) < 2 {
		flag.Usage()
		os.Exit(2)
	}

	pin, err := strconv.Atoi(args[1])
	if err != nil {
		return board.Reading{}, fmt.Errorf("pin %q: %w", args[1], board.ErrInvalidPin)
	}

	switch args[0] {
	case "digital":
		if len(args) != 3 || (args[2] != "0" && args[2] != "1") {
			flag.Usage()
			os.Exit(2)
		}
		return c.SetDigital(ctx, pin, args[2] == "1")
	case "analog":
		return c.ReadAnalog(ctx, pin)
	default:
		flag.Usage()
		os.Exit(2)
	}
	return board.Reading{}, nil
}
