package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/flashdeck/internal/app"
	"github.com/abhisek/flashdeck/internal/cardgen"
	"github.com/abhisek/flashdeck/internal/extract"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, startPDF string) error {
	st, cfg, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	opts := app.Options{
		Repo:      st.Sessions(),
		Extractor: extract.PDFExtractor{},
		Generator: cardgen.New(nil),
		Config:    cfg,
		StartPDF:  startPDF,
	}
	return app.Run(opts)
}
