package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// WriteJSON writes v as indented JSON to w. URLs are left unescaped. In
// slack mode the document is wrapped in a code block.
func WriteJSON(w io.Writer, v any, slackMode bool) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	if slackMode {
		fmt.Fprintln(w, "```")
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return err
	}
	if slackMode {
		fmt.Fprintln(w, "```")
	}
	return nil
}
