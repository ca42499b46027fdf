package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sandeepkv93/daybook/internal/model"
)

type Type string

const (
	TypeAdd       Type = "add"
	TypeImportant Type = "important"
	TypeDone      Type = "done"
	TypeDelete    Type = "delete"
	TypeFilter    Type = "filter"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Title       string
	Description string
}

// TaskArgs targets a single task by id.
type TaskArgs struct {
	ID int
}

type FilterArgs struct {
	Filter model.Filter
}

type Command struct {
	Type      Type
	Raw       string
	Add       *AddArgs
	Important *TaskArgs
	Done      *TaskArgs
	Delete    *TaskArgs
	Filter    *FilterArgs
}

var aliases = map[string]Type{
	"new":      TypeAdd,
	"star":     TypeImportant,
	"toggle":   TypeDone,
	"complete": TypeDone,
	"rm":       TypeDelete,
	"del":      TypeDelete,
	"show":     TypeFilter,
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	head, rest, _ := strings.Cut(raw, " ")
	head = strings.ToLower(head)
	rest = strings.TrimSpace(rest)
	typ := Type(head)
	if alias, ok := aliases[head]; ok {
		typ = alias
	}

	switch typ {
	case TypeAdd:
		return parseAdd(input, rest)
	case TypeImportant, TypeDone, TypeDelete:
		return parseTaskCommand(input, typ, rest)
	case TypeFilter:
		return parseFilter(input, rest)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

// parseAdd reads "title" or "title | description".
func parseAdd(raw string, rest string) (Command, error) {
	title, description, _ := strings.Cut(rest, "|")
	title = strings.TrimSpace(title)
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Title: title, Description: strings.TrimSpace(description)}}, nil
}

func parseTaskCommand(raw string, typ Type, rest string) (Command, error) {
	fields := strings.Fields(rest)
	if len(fields) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a task id", typ)}
	}
	id, err := strconv.Atoi(strings.TrimPrefix(fields[0], "#"))
	if err != nil || id <= 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid task id: %s", fields[0])}
	}
	cmd := Command{Type: typ, Raw: raw}
	args := &TaskArgs{ID: id}
	switch typ {
	case TypeImportant:
		cmd.Important = args
	case TypeDone:
		cmd.Done = args
	case TypeDelete:
		cmd.Delete = args
	}
	return cmd, nil
}

func parseFilter(raw string, rest string) (Command, error) {
	if rest == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "filter requires a mode (all, important, recent)"}
	}
	f, ok := model.ParseFilter(rest)
	if !ok {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown filter: %s", rest)}
	}
	return Command{Type: TypeFilter, Raw: raw, Filter: &FilterArgs{Filter: f}}, nil
}
