package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"pacwrap/internal/history"
	"pacwrap/internal/ui"
	"pacwrap/pkg/manager"
)

// historyLimit resolves the number of entries to show. The flag's optional
// value only binds with "=", so "--history 3" leaves 3 as a positional
// argument and it takes precedence over the default.
func historyLimit(flagValue int, args []string) (int, error) {
	switch len(args) {
	case 0:
		return flagValue, nil
	case 1:
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return 0, &manager.ConfigError{Key: "--history", Value: args[0], Err: ErrHistoryLimit}
		}
		return n, nil
	default:
		return 0, &manager.ConfigError{Key: "--history", Value: strings.Join(args, " "), Err: ErrHistoryLimit}
	}
}

// showHistory prints the last limit recorded operations.
func (a *App) showHistory(limit int) error {
	store, err := history.Open(a.HistoryPath)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	entries, err := store.List(limit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	ui.HeaderMsg(a.Stdout, "Operation history")
	if err := ui.PrintHistory(a.Stdout, entries); err != nil {
		return err
	}

	if total, err := store.Count(); err == nil && total > len(entries) {
		ui.MutedMsg(a.Stdout, "\nShowing %d of %d entries", len(entries), total)
	}
	return nil
}

func (a *App) clearHistory() error {
	store, err := history.Open(a.HistoryPath)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	n, err := store.Count()
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}
	if err := store.Clear(); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	ui.SuccessMsg(a.Stdout, "Cleared %d history entries", n)
	return nil
}

// record stores a finished entry. Failures are logged and never change the
// outcome of the operation itself.
func (a *App) record(entry *history.Entry) {
	store, err := history.Open(a.HistoryPath)
	if err != nil {
		a.logger.Warn("history not recorded", "err", err)
		return
	}
	defer store.Close()

	if err := store.Record(entry); err != nil {
		a.logger.Warn("history not recorded", "err", err)
		return
	}
	a.logger.Debug("recorded", "entry", entry.Summary())

	if days := a.cfg.General.HistoryDays; days > 0 {
		if n, err := store.Prune(time.Duration(days) * 24 * time.Hour); err != nil {
			a.logger.Warn("history not pruned", "err", err)
		} else if n > 0 {
			a.logger.Debug("pruned history", "removed", n)
		}
	}
}
