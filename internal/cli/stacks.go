package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/ade-labs/ade/internal/registry"
	"github.com/spf13/cobra"
)

// stacksListing is the --json shape of the stacks command.
type stacksListing struct {
	Stacks     []stackEntry     `json:"stacks"`
	Extensions []extensionEntry `json:"extensions"`
}

type stackEntry struct {
	Language    string `json:"language"`
	Framework   string `json:"framework"`
	Service     string `json:"service"`
	Description string `json:"description,omitempty"`
}

type extensionEntry struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

var (
	stacksRegistry string
	stacksJSON     bool
)

func init() {
	stacksCmd.Flags().StringVar(&stacksRegistry, "registry", "", "Path to the stack registry document")
	stacksCmd.Flags().BoolVar(&stacksJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(stacksCmd)
}

var stacksCmd = &cobra.Command{
	Use:     "stacks",
	Aliases: []string{"list"},
	Short:   "List registered stacks and extension modules",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry(stacksRegistry)
		if err != nil {
			return err
		}
		listing := buildListing(reg)
		if stacksJSON {
			return printStacksJSON(cmd, listing)
		}
		return printStacksTable(cmd, listing)
	},
}

func buildListing(reg *registry.Registry) stacksListing {
	listing := stacksListing{
		Stacks:     []stackEntry{},
		Extensions: []extensionEntry{},
	}
	for _, key := range reg.Stacks() {
		def, _ := reg.Lookup(key)
		listing.Stacks = append(listing.Stacks, stackEntry{
			Language:    key.Language,
			Framework:   key.Framework,
			Service:     key.Service,
			Description: def.Description,
		})
	}
	for _, name := range reg.Extensions() {
		ext, _ := reg.LookupExtension(name)
		listing.Extensions = append(listing.Extensions, extensionEntry{
			Name:        name,
			Description: ext.Description,
		})
	}
	return listing
}

func printStacksTable(cmd *cobra.Command, listing stacksListing) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "LANGUAGE\tFRAMEWORK\tSERVICE\tDESCRIPTION")
	for _, s := range listing.Stacks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.Language, s.Framework, s.Service, dashIfEmpty(s.Description))
	}
	if len(listing.Extensions) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "EXTENSION\tDESCRIPTION")
		for _, e := range listing.Extensions {
			fmt.Fprintf(w, "%s\t%s\n", e.Name, dashIfEmpty(e.Description))
		}
	}
	return w.Flush()
}

func printStacksJSON(cmd *cobra.Command, listing stacksListing) error {
	data, err := json.MarshalIndent(listing, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
