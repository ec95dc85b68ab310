package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	paywallui "github.com/reoring/paywallui"
	"github.com/reoring/paywallui/logging"
	"github.com/reoring/paywallui/viewconfig"
)

func writeOutput(w io.Writer, format string, v any) error {
	switch format {
	case "json", "":
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported output format %q", format)
}

// readDocument loads path ("-" for stdin). The input format is taken from
// the flag, else from the file extension, else JSON.
func (a *app) readDocument(cmd *cobra.Command, path, format string) (paywallui.Document, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			format = "yaml"
		default:
			format = "json"
		}
	}
	opt := a.cfg.Document.ParseOptions(func(it paywallui.Issue) {
		a.log.Warn("document issue", logging.Fields{"code": it.Code, "path": it.Path})
	})
	switch format {
	case "json":
		return paywallui.ParseJSON(data, opt)
	case "yaml":
		return paywallui.ParseYAML(data, opt)
	}
	return nil, fmt.Errorf("unsupported input format %q", format)
}

func (a *app) loadConfiguration(ctx context.Context, cmd *cobra.Command, path, format, platform string) (*viewconfig.Configuration, error) {
	doc, err := a.readDocument(cmd, path, format)
	if err != nil {
		return nil, err
	}
	if platform == "" {
		platform = a.cfg.Render.Platform
	}
	return viewconfig.Map(ctx, doc, viewconfig.Options{Platform: platform, Logger: a.log})
}
