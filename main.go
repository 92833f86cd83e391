package main

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"unicode"

	"imgresize/batch"
	"imgresize/logging"
	"imgresize/scan"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Resize batch.CLICmd `cmd:"" default:"withargs" help:"Resize every image of the source folder into JPEG files in the destination folder"`
	Plan   scan.CLICmd  `cmd:"" help:"List images and the size they would be resized to"`
}

func main() {
	if err := logging.Setup("imgresize", os.Stderr); err != nil {
		slog.Error("invalid logging configuration", "error", err)
		os.Exit(1)
	}

	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("imgresize"),
		kong.Description("Batch resize PNG and JPEG images into JPEG copies. Press c then Enter to cancel a running resize."),
		kong.UsageOnError(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	sig := batch.NewSignal(ctx)
	go listenCancelKey(os.Stdin, sig)

	err := kctx.Run(sig)
	kctx.FatalIfErrorf(err)
}

// listenCancelKey cancels sig once a 'c' is read from r.
func listenCancelKey(r io.Reader, sig *batch.Signal) {
	rd := bufio.NewReader(r)
	for {
		ch, _, err := rd.ReadRune()
		if err != nil {
			return
		}
		if unicode.ToLower(ch) == 'c' {
			slog.Info("cancel requested")
			sig.Cancel()
			return
		}
	}
}
