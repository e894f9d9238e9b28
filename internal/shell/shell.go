// Package shell implements the interactive category prompt loop.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/courtside/leaderscraper/internal/leaders"
)

// State is the loop position. The shell is either waiting for a selection or
// driving one pipeline run; there is no suspended in-between state.
type State int

// Shell states.
const (
	StatePrompting State = iota
	StateProcessing
)

// Runner executes one scrape run for a category.
type Runner interface {
	Run(ctx context.Context, cat leaders.Category) (leaders.Result, error)
}

// Config controls shell rendering.
type Config struct {
	MaxEntries int
}

// Shell owns the prompt/read/dispatch loop around the pipeline.
type Shell struct {
	runner    Runner
	presenter *leaders.Presenter
	cfg       Config
	in        io.Reader
	out       io.Writer
	logger    *zap.Logger
	state     State
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	menuStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// New constructs a Shell reading selections from in and printing to out.
func New(runner Runner, presenter *leaders.Presenter, cfg Config, in io.Reader, out io.Writer, logger *zap.Logger) *Shell {
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = 15
	}
	return &Shell{
		runner:    runner,
		presenter: presenter,
		cfg:       cfg,
		in:        in,
		out:       out,
		logger:    logger,
		state:     StatePrompting,
	}
}

// State reports the current loop state.
func (s *Shell) State() State { return s.state }

// Run drives the loop until an exit token or input EOF. Every pipeline
// outcome, success or failure, returns the shell to the prompt.
func (s *Shell) Run(ctx context.Context) error {
	s.printf("%s\n", titleStyle.Render("Basketball Reference Top Leaders Scraper"))
	s.printf("%s\n", titleStyle.Render("========================================"))

	scanner := bufio.NewScanner(s.in)
	for {
		s.state = StatePrompting
		s.printMenu()
		s.printf("\nWhat statistic would you like to see? (type 'quit' to exit): ")

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read selection: %w", err)
			}
			break
		}
		selection := strings.TrimSpace(scanner.Text())

		if isExitToken(selection) {
			s.printf("Exiting program. Goodbye!\n")
			break
		}

		cat, ok := leaders.LookupCategory(selection)
		if !ok {
			s.printf("%s\n", errStyle.Render("Invalid choice. Please select from the available statistics."))
			continue
		}

		s.state = StateProcessing
		s.printf("\nFetching top %d leaders for %s...\n", s.cfg.MaxEntries, cat.Label)
		s.dispatch(ctx, cat)
		s.printf("\n%s\n", strings.Repeat("-", 50))
	}

	s.state = StatePrompting
	s.printf("Thank you for using the Basketball Reference Scraper!\n")
	return nil
}

func (s *Shell) dispatch(ctx context.Context, cat leaders.Category) {
	result, err := s.runner.Run(ctx, cat)
	if err != nil {
		s.logger.Error("run failed", zap.String("category", cat.Slug), zap.Error(err))
		s.printf("%s\n", errStyle.Render(userMessage(err)))
		return
	}

	s.printf("%s\n", s.presenter.Render(result.Board))

	switch {
	case result.ExportErr != nil:
		s.logger.Error("export failed",
			zap.String("run_id", result.RunID),
			zap.Error(result.ExportErr),
		)
		s.printf("%s\n", errStyle.Render("The leaderboard could not be saved: "+result.ExportErr.Error()))
	case result.ExportPath != "":
		s.printf("%s\n", okStyle.Render("Data saved to: "+result.ExportPath))
	}
}

func (s *Shell) printMenu() {
	s.printf("\nAvailable Statistics:\n")
	for i, cat := range leaders.Categories() {
		s.printf("%s\n", menuStyle.Render(fmt.Sprintf("%d. %s", i+1, cat.Label)))
	}
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func isExitToken(selection string) bool {
	switch strings.ToLower(selection) {
	case "quit", "exit":
		return true
	}
	return false
}

// userMessage maps stage errors onto the short lines shown at the prompt.
func userMessage(err error) string {
	var netErr *leaders.NetworkError
	if errors.As(err, &netErr) {
		return fmt.Sprintf("Could not reach the leaders page after %d attempts. Check your connection and try again.", netErr.Attempts)
	}
	var parseErr *leaders.ParseError
	if errors.As(err, &parseErr) {
		return fmt.Sprintf("Could not retrieve data for %s.", parseErr.Category.Label)
	}
	return "An error occurred: " + err.Error()
}
