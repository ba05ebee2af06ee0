package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmorgan81/fluxgate/internal/config"
	"github.com/dmorgan81/fluxgate/internal/image"
	"github.com/dmorgan81/fluxgate/internal/inject"
	"github.com/dmorgan81/fluxgate/internal/server"
	"github.com/samber/do"
	"github.com/spf13/cobra"
)

func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fluxgate",
		Short: "HTTP gateway to a hosted text-to-image model",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SilenceUsage = true
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "path to YAML config file")
	rootCmd.AddCommand(serveCmd(), checkCmd())

	return rootCmd
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(path)
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
				cfg.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			injector := inject.Setup(ctx, cfg)
			defer func() { _ = injector.Shutdown() }()

			return do.MustInvoke[*server.Server](injector).Run(ctx)
		},
	}
	cmd.Flags().String("addr", "", "listen address (overrides config)")
	return cmd
}

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Generate a small test image to verify gateway access",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			injector := inject.Setup(cmd.Context(), cfg)
			defer func() { _ = injector.Shutdown() }()

			prompt, _ := cmd.Flags().GetString("prompt")
			size, _ := cmd.Flags().GetInt("size")
			out, _ := cmd.Flags().GetString("output")

			generator := do.MustInvoke[image.Generator](injector)
			data, contentType, err := generator.Generate(cmd.Context(), image.Params{
				Prompt: prompt,
				Width:  size,
				Height: size,
			})
			if err != nil {
				return err
			}

			if err := os.WriteFile(out, data, 0600); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bytes (%s) to %s\n", len(data), contentType, out)
			return nil
		},
	}
	cmd.Flags().String("prompt", "test image", "prompt to send")
	cmd.Flags().Int("size", 256, "width and height of the test image")
	cmd.Flags().String("output", "test-output.png", "file to write the image to")
	return cmd
}
