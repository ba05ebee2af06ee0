package main

import (
	"context"
	"os"

	"github.com/dmorgan81/fluxgate/cmd"
	"github.com/dmorgan81/fluxgate/internal/log"
	"github.com/spf13/cobra"
)

func main() {
	ctx := log.NewContext(context.Background(), log.New(os.Stderr))
	cobra.CheckErr(cmd.NewCLI().ExecuteContext(ctx))
}
