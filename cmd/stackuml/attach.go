package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/gookit/color"
	"github.com/manifoldco/promptui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/stackuml-dev/stackuml/debugger"
	"github.com/stackuml-dev/stackuml/session"
)

var (
	addrFlag   string
	configFlag string
	widthFlag  int
	outFlag    string
	stdoutFlag bool
)

var attachCmd = &cobra.Command{
	Use:   "attach",
	Short: "Attach to a headless Delve server and record call stacks",
	Run:   attachCommand,
}

func init() {
	attachCmd.Flags().StringVar(&addrFlag, "addr", "localhost:2345", "Address of the headless Delve server")
	attachCmd.Flags().StringVar(&configFlag, "config", "", "Path to a stackuml.toml config file")
	attachCmd.Flags().IntVar(&widthFlag, "width", 0, "Maximum diagram line width (overrides config)")
	attachCmd.Flags().StringVar(&outFlag, "out", "", "Write generated diagrams to this file instead of the clipboard")
	attachCmd.Flags().BoolVar(&stdoutFlag, "stdout", false, "Write generated diagrams to stdout instead of the clipboard")
}

func attachCommand(cmd *cobra.Command, args []string) {
	cfg, err := session.LoadConfig(configFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("Couldn't load config file")
	}
	if widthFlag > 0 {
		cfg.MaxLineWidth = widthFlag
	}

	dbg, err := debugger.Dial(addrFlag, cfg.StackDepth)
	if err != nil {
		log.Fatal().Err(err).Msg("Couldn't connect to debugger")
	}
	defer dbg.Close()

	sess := session.New(dbg, pickThread, cfg)
	fmt.Fprintln(os.Stderr, color.Cyan.Sprintf("Attached to %s, session %s", addrFlag, sess.ID()))
	runLoop(sess)
}

// runLoop drives one action at a time. The host serializes commands, so the
// session never sees concurrent calls from here.
func runLoop(sess *session.Session) {
	actions := []string{"record", "generate", "show", "reset", "quit"}
	for {
		prompt := promptui.Select{Label: "stackuml", Items: actions}
		_, action, err := prompt.Run()
		if err != nil {
			// Ctrl-C on the menu ends the session.
			return
		}
		ctx := context.Background()
		switch action {
		case "record":
			if err := sess.Record(ctx); err != nil {
				report(err)
				continue
			}
			fmt.Fprintln(os.Stderr, color.Green.Sprint("Stack recorded."))
		case "generate":
			text, err := sess.Generate(ctx)
			if err != nil {
				report(err)
				continue
			}
			emit(text)
		case "show":
			if sess.Empty() {
				fmt.Fprintln(os.Stderr, color.Yellow.Sprint("Nothing recorded yet."))
				continue
			}
			fmt.Print(sess.Diagram())
		case "reset":
			sess.Reset()
			fmt.Fprintln(os.Stderr, color.Green.Sprint("Tree reset."))
		case "quit":
			return
		}
	}
}

func pickThread(ctx context.Context, threads []debugger.Thread) (debugger.Thread, error) {
	if len(threads) == 1 {
		return threads[0], nil
	}
	items := make([]string, len(threads))
	for i, t := range threads {
		items[i] = fmt.Sprintf("%d: %s", t.ID, t.Name)
	}
	prompt := promptui.Select{Label: "Select a thread", Items: items}
	idx, _, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrAbort) {
			return debugger.Thread{}, session.ErrPickCancelled
		}
		return debugger.Thread{}, err
	}
	return threads[idx], nil
}

func report(err error) {
	if errors.Is(err, session.ErrPickCancelled) {
		fmt.Fprintln(os.Stderr, color.Gray.Sprint("Selection cancelled."))
		return
	}
	fmt.Fprintln(os.Stderr, color.Red.Sprintf("Error: %s", err))
}

// emit delivers one diagram to the configured sink. Clipboard is the default;
// a clipboard failure (e.g. no display server) falls back to stdout so the
// diagram is never lost.
func emit(text string) {
	switch {
	case stdoutFlag:
		fmt.Print(text)
	case outFlag != "":
		if err := os.WriteFile(outFlag, []byte(text), 0o644); err != nil {
			report(fmt.Errorf("writing %s: %w", outFlag, err))
			return
		}
		fmt.Fprintln(os.Stderr, color.Green.Sprintf("Diagram written to %s.", outFlag))
	default:
		if err := clipboard.WriteAll(text); err != nil {
			log.Warn().Err(err).Msg("clipboard unavailable, printing to stdout")
			fmt.Print(text)
			return
		}
		fmt.Fprintln(os.Stderr, color.Green.Sprint("Diagram copied to clipboard."))
	}
}
