package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/hyprisland/internal/cli/styles"
	"github.com/bnema/hyprisland/internal/logging"
)

var (
	logsLines    int
	logsClearAll bool
)

const defaultLogsLines = 50

var logsCmd = &cobra.Command{
	Use:   "logs [session]",
	Short: "View overlay session logs",
	Long: `View the logs written by interactive overlay sessions.

Without arguments, lists all available sessions.
With a session ID (or partial match), shows logs for that session.

Examples:
  hyprisland logs                 # List all sessions
  hyprisland logs a7b3            # View logs for session ending in 'a7b3'
  hyprisland logs -n 100 a7b3     # Show last 100 lines`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogs,
}

var logsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear old log files",
	Long: `Remove old session log files.

By default, removes sessions older than logging.max_age_days.
Use --all to remove all sessions.`,
	RunE: runLogsClear,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(logsClearCmd)

	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
	logsClearCmd.Flags().BoolVar(&logsClearAll, "all", false, "remove all session logs")
}

// sessionInfo describes one session log and its rotated backups.
type sessionInfo struct {
	ID      string
	ShortID string
	// Path is the active log file; empty when only backups remain.
	Path    string
	Backups []string
	// Size and ModTime cover the active file and all backups.
	Size    int64
	ModTime time.Time
}

// files returns every file belonging to the session.
func (s sessionInfo) files() []string {
	if s.Path == "" {
		return s.Backups
	}
	return append([]string{s.Path}, s.Backups...)
}

func runLogs(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	logDir := app.Config.Logging.LogDir
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		return listSessions(out, logDir, app.Theme)
	}

	session, err := findSession(logDir, args[0])
	if err != nil {
		return err
	}
	if session.Path == "" {
		return fmt.Errorf("session '%s' has only rotated backups left: %s", session.ShortID, strings.Join(session.Backups, ", "))
	}
	return showSession(out, session.Path, logsLines, app.Theme)
}

// getSessions returns session log files, newest first.
func getSessions(logDir string) ([]sessionInfo, error) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read log directory: %w", err)
	}

	byID := make(map[string]*sessionInfo)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		id, active := logging.ParseSessionFilename(entry.Name())
		if !active {
			var ok bool
			if id, ok = logging.ParseSessionBackupFilename(entry.Name()); !ok {
				continue
			}
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}

		s, ok := byID[id]
		if !ok {
			s = &sessionInfo{ID: id, ShortID: logging.ShortSessionID(id)}
			byID[id] = s
		}
		path := filepath.Join(logDir, entry.Name())
		if active {
			s.Path = path
		} else {
			s.Backups = append(s.Backups, path)
		}
		s.Size += info.Size()
		if info.ModTime().After(s.ModTime) {
			s.ModTime = info.ModTime()
		}
	}

	sessions := make([]sessionInfo, 0, len(byID))
	for _, s := range byID {
		slices.Sort(s.Backups)
		sessions = append(sessions, *s)
	}

	slices.SortFunc(sessions, func(a, b sessionInfo) int {
		return b.ModTime.Compare(a.ModTime)
	})
	return sessions, nil
}

func listSessions(w io.Writer, logDir string, theme *styles.Theme) error {
	sessions, err := getSessions(logDir)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(w, theme.Subtle.Render("No sessions found. Run 'hyprisland' to create logs."))
		return nil
	}

	fmt.Fprintln(w, theme.Title.Render("Sessions (newest first):"))
	fmt.Fprintln(w)
	for _, s := range sessions {
		fmt.Fprintf(w, "  %s  %s  %s\n",
			theme.Highlight.Render(s.ShortID),
			theme.Subtle.Render(s.ModTime.Format("2006-01-02 15:04:05")),
			theme.Subtle.Render(fmt.Sprintf("(%s)", formatBytes(s.Size))),
		)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, theme.Subtle.Render("Use 'hyprisland logs <id>' to view a session"))
	return nil
}

// findSession matches query against short IDs first, then full IDs.
func findSession(logDir, query string) (*sessionInfo, error) {
	sessions, err := getSessions(logDir)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, fmt.Errorf("no sessions found")
	}

	q := strings.ToLower(strings.TrimSpace(query))
	for i := range sessions {
		if strings.EqualFold(sessions[i].ShortID, q) {
			return &sessions[i], nil
		}
	}

	var matches []sessionInfo
	for _, s := range sessions {
		if strings.Contains(strings.ToLower(s.ID), q) {
			matches = append(matches, s)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no session matching '%s' found", query)
	case 1:
		return &matches[0], nil
	default:
		ids := make([]string, 0, len(matches))
		for _, m := range matches {
			ids = append(ids, m.ShortID)
		}
		return nil, fmt.Errorf("multiple sessions match '%s': %s", query, strings.Join(ids, ", "))
	}
}

// showSession prints the last n lines of a session log.
func showSession(w io.Writer, path string, n int, theme *styles.Theme) (retErr error) {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	start := max(len(lines)-n, 0)
	for _, line := range lines[start:] {
		fmt.Fprintln(w, colorizeLogLine(line, theme))
	}
	return nil
}

// logEntry is the subset of a JSON log line shown by the logs command.
type logEntry struct {
	Level     string `json:"level"`
	Time      string `json:"time"`
	Message   string `json:"message"`
	Component string `json:"component"`
}

func colorizeLogLine(line string, theme *styles.Theme) string {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		return line
	}

	timeStr := entry.Time
	if t, err := time.Parse(time.RFC3339, entry.Time); err == nil {
		timeStr = t.Format("15:04:05")
	}

	var level string
	switch entry.Level {
	case "error", "fatal", "panic":
		level = theme.ErrorStyle.Render("ERR")
	case "warn":
		level = theme.WarningStyle.Render("WRN")
	case "info":
		level = theme.Highlight.Render("INF")
	case "debug":
		level = theme.Subtle.Render("DBG")
	case "trace":
		level = theme.Subtle.Render("TRC")
	default:
		level = entry.Level
	}

	msg := entry.Message
	if entry.Component != "" {
		msg = theme.Subtle.Render(entry.Component+":") + " " + msg
	}
	return fmt.Sprintf("%s %s %s", theme.Subtle.Render(timeStr), level, msg)
}

func runLogsClear(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out := cmd.OutOrStdout()
	sessions, err := getSessions(app.Config.Logging.LogDir)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(out, app.Theme.Subtle.Render("No logs to clear"))
		return nil
	}

	maxAge := app.Config.Logging.MaxAgeDays
	cutoff := time.Now().AddDate(0, 0, -maxAge)

	var removed int
	for _, s := range sessions {
		if !logsClearAll && !s.ModTime.Before(cutoff) {
			continue
		}
		var failed bool
		for _, path := range s.files() {
			if err := os.Remove(path); err != nil {
				fmt.Fprintf(out, "%s %s: %v\n", app.Theme.ErrorStyle.Render(styles.IconX), s.ShortID, err)
				failed = true
			}
		}
		if failed {
			continue
		}
		fmt.Fprintf(out, "%s %s (%s)\n", app.Theme.SuccessStyle.Render(styles.IconCheck), s.ShortID, formatBytes(s.Size))
		removed++
	}

	if removed == 0 {
		fmt.Fprintln(out, app.Theme.Subtle.Render(fmt.Sprintf("No sessions older than %d days", maxAge)))
		return nil
	}
	fmt.Fprintf(out, "\n%s\n", app.Theme.SuccessStyle.Render(fmt.Sprintf("Cleared %d session(s)", removed)))
	return nil
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMG"[exp])
}
