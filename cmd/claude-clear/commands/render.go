package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/claude-clear/internal/engine"
	"github.com/thoreinstein/claude-clear/internal/redact"
)

// Output formats accepted by the -o/--output flag.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// validOutputFormat rejects unknown -o values before a command runs.
func validOutputFormat(format string) error {
	switch format {
	case outputText, outputJSON, outputYAML:
		return nil
	}
	return errors.Newf("invalid output format %q (valid: text, json, yaml)", format)
}

// renderResult writes res to w in the requested format. The text form is
// for humans; json and yaml emit the result structure verbatim for
// scripting.
func renderResult(w io.Writer, res *engine.Result, format string) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(res)
	default:
		renderResultText(w, res)
		return nil
	}
}

func renderResultText(w io.Writer, res *engine.Result) {
	verb := "Cleaned"
	if res.DryRun {
		verb = "Would clean"
	}

	fmt.Fprintf(w, "%s%s%s %s\n", colorBold, verb, colorReset, redact.Path(res.TargetPath))
	fmt.Fprintf(w, "  Size: %s -> %s (%s saved, %.1f%%)\n",
		formatBytes(res.OriginalSize),
		formatBytes(res.CleanedSize),
		formatBytes(res.BytesSaved()),
		res.ReductionPercent())

	if len(res.RemovedPaths) == 0 {
		fmt.Fprintf(w, "  %sNothing to remove%s\n", colorGray, colorReset)
	} else {
		fmt.Fprintf(w, "  Removed fields:\n")
		for _, p := range res.RemovedPaths {
			fmt.Fprintf(w, "    %s-%s %s\n", colorGreen, colorReset, p)
		}
	}

	if len(res.PreservedTopLevelKeys) > 0 {
		fmt.Fprintf(w, "  Preserved:")
		for _, k := range res.PreservedTopLevelKeys {
			fmt.Fprintf(w, " %s%s%s", colorCyan, k, colorReset)
		}
		fmt.Fprintln(w)
	}

	for _, warn := range res.Warnings {
		fmt.Fprintf(w, "  %sWarning:%s %s\n", colorYellow, colorReset, warn)
	}

	if res.Backup != nil {
		fmt.Fprintf(w, "  Backup: %s\n", redact.Path(res.Backup.BackupPath))
	}
}
