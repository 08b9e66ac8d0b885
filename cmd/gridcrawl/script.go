package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samdwyer/gridcrawl/internal/engine"
	"github.com/samdwyer/gridcrawl/internal/errors"
	"github.com/samdwyer/gridcrawl/internal/game"
	"github.com/samdwyer/gridcrawl/internal/ui"
)

var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Play with text commands read from stdin",
	Long: `Reads one command per line from stdin and prints the board after each.
Commands: w a s d (move), inv, eq, e N (equip), u N (unequip), q N (consume),
help, exit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		shutdown := startTelemetry(cmd.Context())
		defer shutdown()

		session, err := engine.NewSession(cmd.Context(), engineConfig())
		if err != nil {
			return fmt.Errorf("failed to start session: %w", err)
		}
		return runScript(cmd.Context(), session, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func runScript(ctx context.Context, session *engine.Session, in io.Reader, out io.Writer) error {
	printBoard(out, session.Snapshot())

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case line == "exit":
			return nil
		case line == "help":
			printHelp(out)
			continue
		}

		command, err := engine.ParseCommand(line)
		if err != nil {
			fmt.Fprintf(out, "! %s\n", errors.GetMessage(err))
			continue
		}

		report, err := session.Submit(ctx, command)
		switch {
		case err == nil:
		case errors.GetCode(err).Recoverable():
			fmt.Fprintf(out, "! %s\n", errors.GetMessage(err))
			continue
		default:
			return err
		}

		for _, msg := range game.Describe(report) {
			fmt.Fprintln(out, msg)
		}
		if report.Ended() {
			for _, msg := range game.GameOver(session.Snapshot()) {
				fmt.Fprintln(out, msg)
			}
			return nil
		}
		if engine.TakesTurn(command) {
			printBoard(out, session.Snapshot())
		}
	}
	return scanner.Err()
}

func printBoard(out io.Writer, snap engine.Snapshot) {
	st := snap.Stats
	fmt.Fprintf(out, "%s  HP %s  DMG %s  ARM %s  Score %d  Turn %d  Room %d\n",
		st.Name, ui.FormatStat(st.HP), ui.FormatStat(st.Damage), ui.FormatStat(st.Armor),
		st.Score, st.Turn, st.Room)
	for _, row := range ui.TextBoard(snap.Snapshot) {
		fmt.Fprintln(out, row)
	}
}

func printHelp(out io.Writer) {
	for _, h := range engine.CommandHelp() {
		fmt.Fprintf(out, "  %-18s %s\n", h.Keys, h.Description)
	}
	fmt.Fprintf(out, "  %-18s %s\n", "help", "show this help in scripts")
	fmt.Fprintf(out, "  %-18s %s\n", "exit", "stop reading commands")
}
