package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/paywallui/asset"
	"github.com/reoring/paywallui/attr"
	"github.com/reoring/paywallui/render"
	"github.com/reoring/paywallui/viewconfig"
)

type renderFlags struct {
	inputFormat string
	platform    string
	screen      string
	theme       string
	locale      string
	width       float64
	height      float64
}

// renderedScreen is the printed form of one resolved screen.
type renderedScreen struct {
	Screen      string       `json:"screen" yaml:"screen"`
	Locale      string       `json:"locale" yaml:"locale"`
	Theme       string       `json:"theme" yaml:"theme"`
	RightToLeft bool         `json:"right_to_left,omitempty" yaml:"right_to_left,omitempty"`
	Background  string       `json:"background,omitempty" yaml:"background,omitempty"`
	Content     render.Node  `json:"content" yaml:"content"`
	Footer      *render.Node `json:"footer,omitempty" yaml:"footer,omitempty"`
	Overlay     *render.Node `json:"overlay,omitempty" yaml:"overlay,omitempty"`
}

func newRenderCmd(a *app) *cobra.Command {
	var f renderFlags
	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Resolve one screen for a theme, locale and screen size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f.withDefaults(a)
			cfg, err := a.loadConfiguration(cmd.Context(), cmd, args[0], f.inputFormat, f.platform)
			if err != nil {
				return err
			}
			out, err := renderScreen(cfg, f)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), a.flags.Output, out)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.inputFormat, "input-format", "", "Input format (json, yaml); inferred from the extension by default")
	fl.StringVar(&f.platform, "platform", "", "Platform selecting `if` branches")
	fl.StringVar(&f.screen, "screen", "", "Screen name")
	fl.StringVar(&f.theme, "theme", "", "Theme (light, dark)")
	fl.StringVar(&f.locale, "locale", "", "Locale, matched against the configuration's localizations")
	fl.Float64Var(&f.width, "width", 0, "Screen width in points")
	fl.Float64Var(&f.height, "height", 0, "Screen height in points")
	return cmd
}

func (f *renderFlags) withDefaults(a *app) {
	rc := a.cfg.Render
	if f.platform == "" {
		f.platform = rc.Platform
	}
	if f.screen == "" {
		f.screen = rc.Screen
	}
	if f.theme == "" {
		f.theme = rc.Theme
	}
	if f.locale == "" {
		f.locale = rc.Locale
	}
	if f.width <= 0 {
		f.width = rc.Width
	}
	if f.height <= 0 {
		f.height = rc.Height
	}
}

func renderScreen(cfg *viewconfig.Configuration, f renderFlags) (*renderedScreen, error) {
	scr, ok := cfg.Screen(f.screen)
	if !ok {
		return nil, fmt.Errorf("screen %q not found (have %v)", f.screen, cfg.ScreenNames())
	}
	texts := cfg.Localizations.Resolver(f.locale)
	theme := asset.ParseTheme(f.theme)
	r := render.New(cfg.Assets, texts, theme, attr.Screen{Width: f.width, Height: f.height})

	out := &renderedScreen{
		Screen:      scr.Name,
		Locale:      texts.Locale(),
		Theme:       theme.String(),
		RightToLeft: r.RightToLeft(),
	}
	bg, err := r.Fill(scr.Background)
	if err != nil {
		return nil, fmt.Errorf("screen %s background: %w", scr.Name, err)
	}
	out.Background = render.Describe(bg)

	if out.Content, err = r.Tree(scr.Content); err != nil {
		return nil, err
	}
	if scr.Footer != nil {
		n, err := r.Tree(scr.Footer)
		if err != nil {
			return nil, err
		}
		out.Footer = &n
	}
	if scr.Overlay != nil {
		n, err := r.Tree(scr.Overlay)
		if err != nil {
			return nil, err
		}
		out.Overlay = &n
	}
	return out, nil
}
