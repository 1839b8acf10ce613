package parser

import (
	"strings"

	"github.com/smileynet/insurabook/internal/command"
)

// Command words.
const (
	WordAdd      = "add"
	WordEdit     = "edit"
	WordTag      = "tag"
	WordDnc      = "dnc"
	WordPriority = "priority"
	WordList     = "list"
	WordFind     = "find"
	WordDelete   = "delete"
	WordClear    = "clear"
	WordHelp     = "help"
	WordExit     = "exit"
)

type parseFunc func(args string) (command.Command, error)

func constant(c command.Command) parseFunc {
	return func(string) (command.Command, error) { return c, nil }
}

var parsers = map[string]parseFunc{
	WordAdd:      parseAdd,
	WordEdit:     parseEdit,
	WordTag:      parseTag,
	WordDnc:      parseDnc,
	WordPriority: parsePriority,
	WordList:     parseList,
	WordFind:     parseFind,
	WordDelete:   parseDelete,
	WordClear:    constant(command.Clear{}),
	WordHelp:     constant(command.Help{}),
	WordExit:     constant(command.Exit{}),
}

// Parse selects a command parser by the line's leading word and hands it
// the rest of the line.
func Parse(line string) (command.Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, formatError(command.HelpUsage, nil)
	}
	word, args := line, ""
	if i := strings.IndexFunc(line, isSpace); i >= 0 {
		word, args = line[:i], line[i:]
	}
	parse, ok := parsers[word]
	if !ok {
		return nil, &Error{Msg: MessageUnknownCommand, Err: ErrUnknownCommand}
	}
	return parse(args)
}

// CommandWord returns the leading word of line, for logging.
func CommandWord(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
