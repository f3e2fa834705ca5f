// Package output renders command results as JSON on stdout. Diagnostics go
// to the logger on stderr so stdout stays pipeable.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

var Writer io.Writer = os.Stdout

// Compact switches output to single-line JSON for piping into other tools.
// Set from the root command's --compact flag.
var Compact bool

// JSON writes v to the output writer, indented unless compact output is on.
func JSON(v interface{}) error {
	var (
		data []byte
		err  error
	)
	if Compact {
		data, err = json.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	_, err = fmt.Fprintln(Writer, string(data))
	return err
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func JSONError(msg string, details string) {
	_ = JSON(ErrorResponse{Error: msg, Details: details})
}
