package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cirocosta/todo-tracker-go/internal/api"
)

var openapiFlags struct {
	output string
}

var openapiCmd = &cobra.Command{
	Use:   "openapi-gen",
	Short: "Generate the OpenAPI document without starting the server",
	RunE:  runOpenAPI,
}

func init() {
	rootCmd.AddCommand(openapiCmd)

	openapiCmd.Flags().StringVarP(&openapiFlags.output, "output", "o", "openapi.json", "file to write the document to, - for stdout")
}

func runOpenAPI(cmd *cobra.Command, args []string) error {
	// the mock service never handles a request here, routes just need a
	// handler to be registered
	r := api.NewRouter(&api.MockTodoService{}, api.Options{})

	doc, err := json.MarshalIndent(r.OpenAPI(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal openapi document: %w", err)
	}
	doc = append(doc, '\n')

	if openapiFlags.output == "-" {
		_, err := cmd.OutOrStdout().Write(doc)
		return err
	}

	if err := os.WriteFile(openapiFlags.output, doc, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", openapiFlags.output, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", openapiFlags.output)
	return nil
}
