package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/c360studio/semshape/export"
	"github.com/c360studio/semshape/manifest"
)

func exportCmd() *cobra.Command {
	var (
		manifestPath string
		format       string
		outputPath   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the manifest's declarations as RDF or a JSON-LD @context",
		Long: `Export serializes the manifest's ontology classes, properties, and node
shapes to Turtle, N-Triples, or JSON-LD, or generates a JSON-LD @context
document from the ontology declarations.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(manifestPath, format, outputPath)
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "shapes.yaml", "Manifest file (YAML)")
	cmd.Flags().StringVarP(&format, "format", "f", "turtle", "Output format (turtle, ntriples, jsonld, context)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default stdout)")

	return cmd
}

func runExport(manifestPath, formatName, outputPath string) error {
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}

	m, err := manifest.NewLoader(slog.Default()).Load(manifestPath)
	if err != nil {
		return err
	}

	e := export.NewExporter(m.PrefixMap())
	for _, c := range m.Classes() {
		e.AddClass(c)
	}
	for _, p := range m.Properties() {
		e.AddProperty(p)
	}
	for _, ns := range m.NodeShapes() {
		e.AddShape(ns)
	}

	out, err := e.Export(format)
	if err != nil {
		return err
	}

	if outputPath == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(outputPath, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
