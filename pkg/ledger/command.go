package ledger

import (
	"strings"
	"unicode"
)

type Verb string

const (
	VerbAdd    Verb = "add"
	VerbList   Verb = "list"
	VerbSelect Verb = "select"
	VerbSave   Verb = "save"
	VerbLoad   Verb = "load"
	VerbHelp   Verb = "help"
	VerbExit   Verb = "exit"
)

type verbDefinition struct {
	Usage         string
	Description   string
	TakesFilename bool
}

var verbs = map[Verb]verbDefinition{
	VerbAdd:    {Usage: "add", Description: "add a route"},
	VerbList:   {Usage: "list", Description: "list all routes"},
	VerbSelect: {Usage: "select", Description: "list routes departing after a given time"},
	VerbSave:   {Usage: "save <file>", Description: "save all routes to a JSON file", TakesFilename: true},
	VerbLoad:   {Usage: "load <file>", Description: "replace all routes with those in a JSON file", TakesFilename: true},
	VerbHelp:   {Usage: "help", Description: "show this help"},
	VerbExit:   {Usage: "exit", Description: "quit the program"},
}

var helpOrder = []Verb{VerbAdd, VerbList, VerbSelect, VerbSave, VerbLoad, VerbHelp, VerbExit}

type Command struct {
	Verb     Verb
	Argument string
}

func (c Command) IsEmpty() bool {
	return c.Verb == ""
}

// ParseCommand splits a line into a verb and an optional argument on the first
// run of whitespace. The verb is case-insensitive, the argument is kept as
// typed and may contain spaces. Only save and load take an argument; any other
// verb followed by text is an unknown command.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{}, nil
	}

	word, argument := line, ""
	if index := strings.IndexFunc(line, unicode.IsSpace); index >= 0 {
		word = line[:index]
		argument = strings.TrimLeftFunc(line[index:], unicode.IsSpace)
	}

	verb := Verb(strings.ToLower(word))
	definition, exists := verbs[verb]
	if !exists {
		return Command{}, &UnknownCommandError{Text: line}
	}

	if definition.TakesFilename && argument == "" {
		return Command{}, &UsageError{Verb: verb, Message: definition.Usage}
	}
	if !definition.TakesFilename && argument != "" {
		return Command{}, &UnknownCommandError{Text: line}
	}

	return Command{Verb: verb, Argument: argument}, nil
}
