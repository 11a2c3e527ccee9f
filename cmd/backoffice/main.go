package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	ierr "github.com/deespora/backoffice/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", ierr.DisplayMessage(err, err.Error()))
		os.Exit(1)
	}
}
