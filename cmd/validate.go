package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/Rorical/TextValidator/internal/client"
	"github.com/Rorical/TextValidator/internal/core"
	"github.com/Rorical/TextValidator/internal/models"
	"github.com/Rorical/TextValidator/ui/components"
)

var errEmptyInput = errors.New(core.EmptyInputAlert)

var validateCmd = &cobra.Command{
	Use:   "validate [text]",
	Short: "Validate text without the interactive form",
	Long: `Send text to the validation service and print the normalized text and
its quality report. The text comes from the argument, from --file, or from
standard input when it is not a terminal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		format, _ := cmd.Flags().GetString("format")
		if err := checkFormat(format); err != nil {
			return err
		}

		text, err := readInput(args, file, os.Stdin, term.IsTerminal(int(os.Stdin.Fd())))
		if err != nil {
			return err
		}

		cfg := loadConfig()
		logger, closer := newLogger()
		defer closer.Close()

		c := newClient(cfg)
		logger.Info("validate request", "endpoint", c.BaseURL(), "length", len(text))

		result, err := c.Validate(cmd.Context(), text)
		if err != nil {
			logger.Error("validate failed", "error", err)
			return errors.New(client.Message(err))
		}
		return writeResult(cmd.OutOrStdout(), result, format)
	},
}

func checkFormat(format string) error {
	switch format {
	case "text", "json", "yaml":
		return nil
	}
	return fmt.Errorf("unknown format %q: use text, json or yaml", format)
}

// readInput resolves the text to validate. Whitespace-only input counts
// as empty.
func readInput(args []string, file string, stdin io.Reader, stdinIsTerminal bool) (string, error) {
	var text string
	switch {
	case len(args) > 0:
		text = args[0]
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", file, err)
		}
		text = string(data)
	case !stdinIsTerminal:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	}

	if strings.TrimSpace(text) == "" {
		return "", errEmptyInput
	}
	return text, nil
}

func writeResult(w io.Writer, result *models.Result, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	}

	var b strings.Builder
	b.WriteString(result.NormalizedText)
	if !strings.HasSuffix(result.NormalizedText, "\n") {
		b.WriteString("\n")
	}
	if r := result.QualityReport; r != nil {
		fmt.Fprintf(&b, "\nScore: %s\n", components.FormatScore(r.HumanQualityScore))
		fmt.Fprintf(&b, "Reasoning: %s\n", r.Reasoning)
	}
	if u := result.Usage; u != nil {
		fmt.Fprintf(&b, "Usage: %d/%d\n", u.Count, u.Limit)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func init() {
	validateCmd.Flags().StringP("file", "f", "", "read the text from a file")
	validateCmd.Flags().StringP("format", "o", "text", "output format: text, json or yaml")
}
