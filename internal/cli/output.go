package cli

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/thenoetrevino/studentdb/internal/cli/styles"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Result is what a command prints on success.
// Fields are merged into the JSON object next to "success"; IDs are what quiet
// mode prints, one per line; Human renders the human-readable form.
type Result struct {
	Fields map[string]interface{}
	IDs    []int
	Human  func() string
}

// Success outputs a successful command result in the selected mode
func (f *OutputFormatter) Success(r Result) error {
	if f.Quiet {
		for _, id := range r.IDs {
			fmt.Printf("%d\n", id)
		}
		return nil
	}

	if f.JSON {
		out := map[string]interface{}{"success": true}
		for k, v := range r.Fields {
			out[k] = v
		}
		return json.NewEncoder(os.Stdout).Encode(out)
	}

	if r.Human != nil {
		fmt.Println(r.Human())
	}
	return nil
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(os.Stderr, "%s %s\n", styles.ErrorStyle.Render("Error"), message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "%s %s\n", styles.SubtitleStyle.Render("Suggestion:"), suggestion)
	}
	return nil
}

// Fail prints the error and returns it wrapped with the exit code
func (f *OutputFormatter) Fail(exitCode int, code string, err error, suggestion string) error {
	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		log.Printf("Error formatting error message: %v", fmtErr)
	}
	return Exit(exitCode, err)
}
