package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/petmall-admin/internal/adminclient"
	"github.com/petmall-admin/internal/console"
	"github.com/petmall-admin/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(newCLI(os.Stdin, os.Stdout, os.Stderr))
	err := root.ExecuteContext(ctx)
	logger.Sync()
	if err == nil || errors.Is(err, console.ErrDeclined) {
		return
	}
	fmt.Fprintln(os.Stderr, "错误:", adminclient.Message(err))
	if adminclient.IsUnauthorized(err) || errors.Is(err, console.ErrNoSession) {
		fmt.Fprintln(os.Stderr, "请先执行 petadmin login")
	}
	os.Exit(1)
}
