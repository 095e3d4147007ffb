package ledger

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/travigo/routeledger/pkg/config"
	"github.com/travigo/routeledger/pkg/ctdf"
	"github.com/travigo/routeledger/pkg/display"
)

const DefaultPrompt = config.DefaultPrompt

const (
	destinationPrompt = "destination? "
	numberPrompt      = "train number? "
	timePrompt        = "departure time (HH:MM)? "
	cutoffPrompt      = "cutoff time (HH:MM)? "

	loadedMessage = "routes loaded"
)

// Session is the interactive command loop. It owns its Ledger; nothing else
// should modify it while Run is going.
type Session struct {
	Ledger *Ledger
	Prompt string

	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
}

func NewSession(in io.Reader, out io.Writer, errOut io.Writer) *Session {
	return &Session{
		Ledger: NewLedger(),
		Prompt: DefaultPrompt,

		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
	}
}

// Run reads and executes commands until exit or end of input, which both
// return nil. A *ValidationError is returned as soon as any command hits bad
// input; its diagnostic has already been written to the error stream.
func (s *Session) Run() error {
	for {
		fmt.Fprint(s.out, s.Prompt)

		line, err := s.readLine()
		if err == io.EOF {
			fmt.Fprintln(s.out)
			log.Debug().Msg("End of input")
			return nil
		} else if err != nil {
			return err
		}

		command, err := ParseCommand(line)
		if err != nil {
			s.report(err)
			continue
		}
		if command.IsEmpty() {
			continue
		}

		log.Debug().Str("verb", string(command.Verb)).Str("argument", command.Argument).Msg("Executing command")

		if command.Verb == VerbExit {
			return nil
		}

		err = s.Execute(command)
		if err == io.EOF {
			fmt.Fprintln(s.out)
			log.Debug().Msg("End of input")
			return nil
		}

		var validationError *ValidationError
		if errors.As(err, &validationError) {
			s.report(validationError)
			return validationError
		} else if err != nil {
			s.report(err)
		}
	}
}

// Execute runs a single parsed command against the ledger. Exit is left to
// Run, so here it does nothing.
func (s *Session) Execute(command Command) error {
	switch command.Verb {
	case VerbAdd:
		return s.add()
	case VerbList:
		display.RenderRoutes(s.out, s.Ledger.Routes())
		return nil
	case VerbSelect:
		return s.selectRoutes()
	case VerbSave:
		return s.Save(command.Argument)
	case VerbLoad:
		return s.Load(command.Argument)
	case VerbHelp:
		s.help()
	}

	return nil
}

func (s *Session) add() error {
	var route ctdf.Route
	var err error

	if route.Destination, err = s.ask(destinationPrompt); err != nil {
		return err
	}
	if route.Number, err = s.ask(numberPrompt); err != nil {
		return err
	}
	if route.Time, err = s.ask(timePrompt); err != nil {
		return err
	}

	if err := s.Ledger.Add(route); err != nil {
		return &ValidationError{Verb: VerbAdd, Err: err}
	}

	log.Debug().Int("routes", s.Ledger.Len()).Msgf("Added route %s", pretty.Sprint(route))

	return nil
}

func (s *Session) selectRoutes() error {
	value, err := s.ask(cutoffPrompt)
	if err != nil {
		return err
	}

	cutoff, err := ctdf.ParseDepartureTime(value)
	if err != nil {
		return &ValidationError{Verb: VerbSelect, Err: err}
	}

	selected, err := s.Ledger.Select(cutoff)
	if err != nil {
		return &ValidationError{Verb: VerbSelect, Err: err}
	}

	log.Debug().Str("cutoff", cutoff.String()).Int("selected", len(selected)).Msg("Selected routes")

	display.RenderRoutes(s.out, selected)

	return nil
}

// Save writes the whole ledger to path. Failing to write is not fatal.
func (s *Session) Save(path string) error {
	routes := s.Ledger.Routes()

	if err := SaveRoutes(path, routes); err != nil {
		return fmt.Errorf("failed to save routes: %w", err)
	}

	log.Debug().Str("path", path).Int("routes", len(routes)).Msg("Saved routes")

	return nil
}

// Load replaces the ledger with the routes stored at path. A file that cannot
// be read leaves the session running; one with invalid content is a
// *ValidationError. Either way the ledger is only touched on success.
func (s *Session) Load(path string) error {
	routes, err := LoadRoutes(path)

	var schemaError *SchemaError
	if errors.As(err, &schemaError) {
		return &ValidationError{Verb: VerbLoad, Err: err}
	} else if err != nil {
		return fmt.Errorf("failed to load routes: %w", err)
	}

	s.Ledger.Replace(routes)

	log.Debug().Str("path", path).Int("routes", len(routes)).Msg("Loaded routes")
	fmt.Fprintln(s.out, loadedMessage)

	return nil
}

func (s *Session) help() {
	fmt.Fprintln(s.out, "commands:")

	for _, verb := range helpOrder {
		definition := verbs[verb]
		fmt.Fprintf(s.out, "  %-12s %s\n", definition.Usage, definition.Description)
	}
}

func (s *Session) ask(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)

	return s.readLine()
}

// readLine returns io.EOF only when nothing at all was left to read.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Session) report(err error) {
	fmt.Fprintln(s.errOut, err.Error())
}
