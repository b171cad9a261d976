package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rail44/lessons/internal/app"
	"github.com/rail44/lessons/internal/config"
	"github.com/rail44/lessons/internal/log"
	"github.com/rail44/lessons/internal/messages"
	"github.com/rail44/lessons/internal/prompt"
	"github.com/rail44/lessons/internal/ui"
)

var (
	cfgFile string
	cfg     *config.Config

	// logFile is the open --log-file, if any
	logFile *os.File
)

var rootCmd = &cobra.Command{
	Use:   "lessons",
	Short: "Small interactive console exercises",
	Long: `Lessons bundles a handful of beginner console programs: a four-function
calculator, a mortgage calculator, rock paper scissors lizard spock and a
demonstration of variable scope in for loops.

Run without a subcommand on a terminal to pick an exercise from a menu.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE:              runMenu,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is the nearest "+config.FileName+")")
	rootCmd.PersistentFlags().String("lang", "", "message language ("+strings.Join(messages.Names(), ", ")+")")
	rootCmd.PersistentFlags().String("locale", "", "locale for numbers and amounts, e.g. en-US or de-DE")
	rootCmd.PersistentFlags().String("currency", "", "ISO 4217 currency code (default from locale)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (error, warn, info, debug)")
	rootCmd.PersistentFlags().String("log-file", "", "append log lines to this file instead of stderr")

	for _, name := range []string{"lang", "locale", "currency", "log-level", "log-file"} {
		viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}

	viper.SetEnvPrefix("lessons")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// loadConfig reads the config file, then lets environment variables and
// flags override it
func loadConfig(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	loaded, err := config.Load(wd, cfgFile)
	if err != nil {
		return err
	}

	overrides := map[string]*string{
		"lang":      &loaded.Lang,
		"locale":    &loaded.Locale,
		"currency":  &loaded.Currency,
		"log-level": &loaded.LogLevel,
		"log-file":  &loaded.LogFile,
	}
	for key, field := range overrides {
		if viper.IsSet(key) && viper.GetString(key) != "" {
			*field = viper.GetString(key)
		}
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	if err := setupLogging(loaded); err != nil {
		return err
	}
	if loaded.Path != "" {
		log.Debug("using config file", slog.String("path", loaded.Path))
	}

	cfg = loaded
	return nil
}

func setupLogging(cfg *config.Config) error {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	if cfg.LogFile == "" {
		log.SetOutput(os.Stderr)
	} else {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		logFile = f
		log.SetOutput(f)
	}

	return log.SetLevel(level)
}

// newEnv wires a session to the command's input and output. Output is
// styled only when it goes to a terminal.
func newEnv(cmd *cobra.Command) app.Env {
	out := cmd.OutOrStdout()

	var opts []prompt.Option
	if f, ok := out.(*os.File); ok && ui.IsTerminal(f) {
		opts = append(opts, prompt.WithStyles(prompt.DefaultStyles(out)), prompt.WithClearScreen())
	}

	return app.Env{
		Prompter: prompt.New(cmd.InOrStdin(), out, opts...),
		Lang:     cfg.Language(),
		Locale:   cfg.FormatLocale(),
		Logger:   log.Logger(),
	}
}

// exercises lists the subcommands offered by the menu, in order
var exercises = []ui.Item{
	{Key: "calculator", Title: "Calculator", Description: "add, subtract, multiply, divide"},
	{Key: "mortgage", Title: "Mortgage calculator", Description: "monthly payments for a loan"},
	{Key: "rps", Title: "Rock Paper Scissors Lizard Spock", Description: "play against the computer"},
	{Key: "scope", Title: "Loop variable scope", Description: "how for loops scope variables"},
}

// sessions builds the session behind each menu key
var sessions = map[string]func(cmd *cobra.Command) (app.Session, error){}

func runMenu(cmd *cobra.Command, args []string) error {
	in, isFile := cmd.InOrStdin().(*os.File)
	if !isFile || !ui.IsTerminal(in) || !ui.IsTerminal(os.Stdout) {
		return cmd.Help()
	}

	item, ok, err := ui.RunMenu(ui.NewMenu("Lessons", exercises), in, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	build, found := sessions[item.Key]
	if !found {
		return fmt.Errorf("no exercise named %s", item.Key)
	}
	session, err := build(cmd)
	if err != nil {
		return err
	}
	return runSession(cmd.Context(), session)
}

// runSession runs session, treating closed input as a normal end
func runSession(ctx context.Context, session app.Session) error {
	if ctx == nil {
		ctx = context.Background()
	}
	err := session.Run(ctx)
	if errors.Is(err, prompt.ErrInputClosed) {
		log.Debug("input closed, exiting")
		return nil
	}
	return err
}
