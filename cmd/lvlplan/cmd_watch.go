package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlplan/snapshot"
	"github.com/katalvlaran/lvlplan/validate"
)

const watchDebounce = 200 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch <project>",
	Short: "Re-validate a snapshot whenever it changes",
	Long: `Watches the snapshot file and re-runs the rule catalog after every
write, printing one summary line per run. Events are debounced so a
save that arrives as several writes triggers a single run. Stop with
Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := filepath.Clean(args[0])

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Watch the directory, not the file: editors save by writing a
	// temp file and renaming it over the target, which would leave a
	// file watch pointing at a dead inode.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}

	watchRun(path)

	timer := time.NewTimer(watchDebounce)
	if !timer.Stop() {
		<-timer.C
	}
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(watchDebounce)

		case <-timer.C:
			watchRun(path)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "error", err)

		case <-cmd.Context().Done():
			return nil
		}
	}
}

// watchRun is one load-and-validate pass. Failures are logged, not
// fatal: a half-written file on the next save should not kill the
// watch.
func watchRun(path string) {
	start := time.Now()
	b, err := snapshot.Load(path)
	if err != nil {
		slog.Warn("load failed", "path", path, "error", err)
		return
	}
	rep, err := validate.Validate(b)
	if err != nil {
		slog.Warn("validation failed", "path", path, "error", err)
		return
	}
	fmt.Printf("%s  %s  %s\n",
		time.Now().Format("15:04:05"),
		summaryLine(rep),
		paint(styleMuted, fmt.Sprintf("(%s)", time.Since(start).Round(time.Millisecond))))
}
