package typelist

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// FormatOutput writes the response to w according to output format
func FormatOutput(w io.Writer, response *Response, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(response)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		encoder.SetIndent(2)
		return encoder.Encode(response)
	case "table", "":
		return formatTable(w, response)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func formatTable(w io.Writer, response *Response) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MNEMONIC\tTYPE\tLENGTH\tDESCRIPTION")
	for _, entry := range response.Types {
		mnemonic := entry.Mnemonic
		if mnemonic == "" {
			mnemonic = "-"
		}
		fmt.Fprintf(tw, "%s\t0x%04x\t%s\t%s\n", mnemonic, entry.Type, entry.Encoding, entry.Description)
	}
	return tw.Flush()
}
