package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/reoring/paywallui/onboarding"
)

// replayRecord is one output line of `onboarding replay`.
type replayRecord struct {
	Channel string `json:"channel"`
	Type    string `json:"type,omitempty"`
	Message any    `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func newOnboardingCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "onboarding",
		Short: "Work with onboarding web-bridge messages",
	}
	cmd.AddCommand(newReplayCmd(a))
	return cmd
}

func newReplayCmd(a *app) *cobra.Command {
	var sessionID string
	cmd := &cobra.Command{
		Use:   "replay [file]",
		Short: "Feed recorded messages, one per line, through the view model",
		Long:  "Feed recorded onboarding messages (one JSON document per line, stdin when no file is given) through the view model and print what each output channel emits as JSON lines.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			opts := []onboarding.Option{onboarding.WithLogger(a.log)}
			if sessionID != "" {
				opts = append(opts, onboarding.WithSessionID(sessionID))
			}
			vm := onboarding.NewViewModel(opts...)
			defer vm.Close()
			return replay(cmd, vm, in)
		},
	}
	cmd.Flags().StringVar(&sessionID, "session-id", "", "Session id attached to log lines (random by default)")
	return cmd
}

// replay processes each line and drains the channels right after it; every
// message publishes at most one value, so nothing is dropped.
func replay(cmd *cobra.Command, vm *onboarding.ViewModel, in io.Reader) error {
	actions := vm.Actions().Subscribe()
	analytics := vm.Analytics().Subscribe()
	errs := vm.Errors().Subscribe()
	loaded := vm.Loaded().Subscribe()

	enc := json.NewEncoder(cmd.OutOrStdout())
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 64*1024), 4<<20)
	for sc.Scan() {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		vm.ProcessMessage(cmd.Context(), line)

		var rec *replayRecord
		select {
		case m := <-actions.C():
			rec = &replayRecord{Channel: "actions", Type: m.ActionType(), Message: m}
		case m := <-analytics.C():
			rec = &replayRecord{Channel: "analytics", Type: m.EventName(), Message: m}
		case err := <-errs.C():
			rec = &replayRecord{Channel: "errors", Error: err.Error()}
		case m := <-loaded.C():
			rec = &replayRecord{Channel: "loaded", Type: onboarding.TypeOnboardingLoaded, Message: m}
		default:
		}
		if rec == nil {
			continue
		}
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	return sc.Err()
}
