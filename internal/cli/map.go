package cli

import (
	"github.com/spf13/cobra"

	"github.com/reoring/paywallui/element"
	"github.com/reoring/paywallui/viewconfig"
)

type screenSummary struct {
	Name     string `json:"name" yaml:"name"`
	Root     string `json:"root" yaml:"root"`
	Elements int    `json:"elements" yaml:"elements"`
	Footer   bool   `json:"footer,omitempty" yaml:"footer,omitempty"`
	Overlay  bool   `json:"overlay,omitempty" yaml:"overlay,omitempty"`
}

type mapSummary struct {
	FormatVersion string          `json:"format_version,omitempty" yaml:"format_version,omitempty"`
	Screens       []screenSummary `json:"screens" yaml:"screens"`
	Assets        []string        `json:"assets" yaml:"assets"`
	Localizations []string        `json:"localizations" yaml:"localizations"`
	References    []string        `json:"references,omitempty" yaml:"references,omitempty"`
	Sections      []string        `json:"sections,omitempty" yaml:"sections,omitempty"`
	Elements      int             `json:"elements" yaml:"elements"`
}

func newMapCmd(a *app) *cobra.Command {
	var inputFormat, platform string
	cmd := &cobra.Command{
		Use:   "map <file>",
		Short: "Map a view configuration and print a summary",
		Long:  "Map a view configuration (JSON or YAML, - for stdin) and print a summary of its screens, assets and references. Mapping failures are reported with their JSON Pointer path.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfiguration(cmd.Context(), cmd, args[0], inputFormat, platform)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), a.flags.Output, summarize(cfg))
		},
	}
	cmd.Flags().StringVar(&inputFormat, "input-format", "", "Input format (json, yaml); inferred from the extension by default")
	cmd.Flags().StringVar(&platform, "platform", "", "Platform selecting `if` branches")
	return cmd
}

func summarize(cfg *viewconfig.Configuration) mapSummary {
	s := mapSummary{
		FormatVersion: cfg.FormatVersion,
		Assets:        cfg.Assets.IDs(),
		Localizations: cfg.Localizations.IDs(),
		References:    cfg.References.IDs(),
		Sections:      cfg.References.SectionIDs(),
		Elements:      cfg.Elements,
	}
	for _, name := range cfg.ScreenNames() {
		scr, _ := cfg.Screen(name)
		ss := screenSummary{
			Name:    name,
			Root:    scr.Content.Kind(),
			Footer:  scr.Footer != nil,
			Overlay: scr.Overlay != nil,
		}
		for _, e := range []element.Element{scr.Content, scr.Footer, scr.Overlay} {
			element.Walk(e, func(element.Element) bool {
				ss.Elements++
				return true
			})
		}
		s.Screens = append(s.Screens, ss)
	}
	return s
}
