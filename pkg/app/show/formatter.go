package show

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
		return formatJSON(w, response)
	case "yaml":
		return formatYAML(w, response)
	case "table", "":
		return formatTable(w, response)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// formatTable prints the header one field per line
func formatTable(w io.Writer, response *Response) error {
	h := response.Header

	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)

	description := "unknown"
	if h.KnownType {
		description = h.Description
	}
	name := h.Name
	if h.NameField != "" {
		name = h.NameField
	}
	used := "unknown"
	if h.LengthKnown {
		used = fmt.Sprintf("%d", h.TrueLength)
	}

	fmt.Fprintf(tw, "File name:\t%s\n", name)
	fmt.Fprintf(tw, "File type:\t0x%04x (%s)\n", h.FileType, description)
	fmt.Fprintf(tw, "Start sector:\t%d\n", h.StartSector)
	fmt.Fprintf(tw, "File length:\t%d sectors (%d bytes), %s bytes used\n", h.SectorCount, h.AllocatedBytes, used)
	fmt.Fprintf(tw, "Timestamp:\t%s\n", h.Timestamp)
	fmt.Fprintf(tw, "Volume ID:\t0x%04x\n", h.VolumeID)
	fmt.Fprintf(tw, "Gen. Purpose:\t0x%08x\n", h.GeneralPurpose)

	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// formatJSON formats results as JSON
func formatJSON(w io.Writer, response *Response) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(response)
}

// formatYAML formats results as YAML
func formatYAML(w io.Writer, response *Response) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	encoder.SetIndent(2)
	return encoder.Encode(response)
}
