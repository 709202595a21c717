/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	relay "github.com/allbin/go-relay"
)

// listEntry is one row of list output
type listEntry struct {
	Path         string `yaml:"path"`
	Description  string `yaml:"description"`
	VendorID     string `yaml:"vendor_id,omitempty"`
	ProductID    string `yaml:"product_id,omitempty"`
	SerialNumber string `yaml:"serial,omitempty"`
	Manufacturer string `yaml:"manufacturer,omitempty"`
	Product      string `yaml:"product,omitempty"`
	Supported    bool   `yaml:"supported"`
}

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List relay adapters",
	Long: `List relay adapters attached to the system.

By default only adapters matching the supported USB ID (1a86:7523) are
shown. With --all, every serial port is listed and supported adapters are
marked:
- USB serial adapters (ttyUSB*)
- USB CDC/ACM devices (ttyACM*)
- Standard serial ports (ttyS*)
- ARM/Raspberry Pi ports (ttyAMA*)
- And other platform-specific serial devices

Virtual terminals and pseudo-terminals are excluded from the listing.`,
	Args: exactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		format, _ := cmd.Flags().GetString("format")

		ports, err := relay.SystemEnumerator.Ports()
		if err != nil {
			return fmt.Errorf("listing ports: %w", err)
		}

		entries := buildEntries(ports, relay.NewLocator(relay.SystemEnumerator), all)

		out := cmd.OutOrStdout()
		switch strings.ToLower(format) {
		case "table":
			renderTable(out, entries)
		case "plain":
			renderSimple(out, entries)
		case "yaml":
			return renderYAML(out, entries)
		default:
			return invalidArgument(fmt.Errorf("unknown format %q (valid: table, plain, yaml)", format))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolP("all", "a", false, "List every serial port, not only supported adapters")
	listCmd.Flags().StringP("format", "f", "table", "Output format: table, plain, yaml")
}

// buildEntries keeps supported adapters, or everything when all is set
func buildEntries(ports []relay.PortInfo, locator *relay.Locator, all bool) []listEntry {
	var entries []listEntry
	for _, p := range ports {
		supported := locator.Match(p)
		if !supported && !all {
			continue
		}
		entries = append(entries, listEntry{
			Path:         p.Path,
			Description:  p.Description,
			VendorID:     p.VendorID,
			ProductID:    p.ProductID,
			SerialNumber: p.SerialNumber,
			Manufacturer: p.Manufacturer,
			Product:      p.Product,
			Supported:    supported,
		})
	}
	return entries
}

// renderTable renders the port list in a styled static table format
func renderTable(w io.Writer, entries []listEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No relay adapters found")
		return
	}

	fmt.Fprintf(w, "Found %d port(s):\n\n", len(entries))

	// Define column widths
	portWidth := 15
	idWidth := 11
	descWidth := 30

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("240")).
		PaddingBottom(1)

	cellStyle := lipgloss.NewStyle().
		PaddingRight(2)

	supportedStyle := cellStyle.Foreground(lipgloss.Color("42"))

	header := fmt.Sprintf("%-*s %-*s %-*s %s",
		portWidth, "Port",
		idWidth, "VID:PID",
		descWidth, "Description",
		"Relay")
	fmt.Fprintln(w, headerStyle.Render(header))

	for _, e := range entries {
		id := "-"
		if e.VendorID != "" {
			id = e.VendorID + ":" + e.ProductID
		}
		mark, style := "", cellStyle
		if e.Supported {
			mark, style = "yes", supportedStyle
		}
		row := fmt.Sprintf("%-*s %-*s %-*s %s",
			portWidth, e.Path,
			idWidth, id,
			descWidth, describe(e),
			mark)
		fmt.Fprintln(w, style.Render(row))
	}
}

// describe prefers the USB product string over the generic port type
func describe(e listEntry) string {
	if e.Product != "" {
		return e.Product
	}
	return e.Description
}

// renderSimple renders the port list in simple text format
func renderSimple(w io.Writer, entries []listEntry) {
	for _, e := range entries {
		fmt.Fprintln(w, e.Path)
	}
}

func renderYAML(w io.Writer, entries []listEntry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if entries == nil {
		entries = []listEntry{}
	}
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}
