package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"mapca-proposal/logic/contract"
	"mapca-proposal/logic/extract"
	"mapca-proposal/logic/ingestion/loaders"
	"mapca-proposal/logic/shape"
	"mapca-proposal/logs"
	"mapca-proposal/types"
	"mapca-proposal/vars"
)

func newRootCmd() *cobra.Command {
	var debug bool
	root := &cobra.Command{
		Use:           "mapca-proposal",
		Short:         "Gera propostas e contratos de consultoria a partir de diagnósticos",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logs.Init(debug || vars.LOG_DEBUG)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logs.Sync()
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging")

	serveCmd := newServeCmd()
	root.AddCommand(serveCmd, newRenderCmd(), newExtractCmd())
	root.RunE = serveCmd.RunE
	root.Flags().AddFlagSet(serveCmd.Flags())
	return root
}

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Inicia o servidor web e a API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", vars.SERVERADDR, "listen address")
	return cmd
}

func newRenderCmd() *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Renderiza o contrato HTML a partir de um ProposalData em JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(in)
			if err != nil {
				return err
			}
			p, err := shape.Decode[types.ProposalData](raw)
			if err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}
			html := contract.Render(*p, time.Now())
			if out == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), html)
				return err
			}
			return os.WriteFile(out, []byte(html), 0o644)
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "proposal JSON file")
	cmd.Flags().StringVar(&out, "out", "", "output HTML file (default stdout)")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func newExtractCmd() *cobra.Command {
	var in string
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extrai os dados estruturados de um diagnóstico (texto ou PDF)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			text, err := readDiagnosis(ctx, in)
			if err != nil {
				return err
			}
			inv, err := newInvoker(ctx)
			if err != nil {
				return err
			}
			data, err := extract.New(inv).Extract(ctx, text)
			if err != nil {
				return fmt.Errorf("%s%w", vars.ExtractionFailedPrefix, err)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(data)
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "diagnosis file (.txt or .pdf)")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func readDiagnosis(ctx context.Context, path string) (string, error) {
	l, err := loaders.NewFileLoader(ctx)
	if err != nil {
		return "", err
	}
	return loaders.LoadText(ctx, l, path)
}
