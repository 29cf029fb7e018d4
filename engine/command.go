package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Type identifies the operation a Command performs
type Type int

const (
	Create Type = iota
	Read
	ReadAll
	Update
	Delete
)

var typeNames = map[Type]string{
	Create:  "Create",
	Read:    "Read",
	ReadAll: "ReadAll",
	Update:  "Update",
	Delete:  "Delete",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}

// Valid reports whether t is one of the known command types
func (t Type) Valid() bool {
	_, ok := typeNames[t]
	return ok
}

// ParseType resolves a case-insensitive type name or numeric code
func ParseType(s string) (Type, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return Type(n), nil
	}
	for t, name := range typeNames {
		if strings.EqualFold(name, s) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown command type %q", s)
}

// MarshalJSON encodes the type as its numeric code
func (t Type) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(t))), nil
}

// UnmarshalJSON accepts either the numeric code or the type name. Unknown
// numeric codes are kept so the handler can reject them.
func (t *Type) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = Create
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParseType(s)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("command type must be a number or a name: %w", err)
	}
	*t = Type(n)
	return nil
}

// Command is a single request against the repository. A nil Key or Value
// means the field was not supplied.
type Command struct {
	Type  Type    `json:"type"`
	Key   *string `json:"key,omitempty"`
	Value *string `json:"value,omitempty"`
}

func NewCreate(key, value string) Command {
	return Command{Type: Create, Key: &key, Value: &value}
}

func NewRead(key string) Command {
	return Command{Type: Read, Key: &key}
}

func NewReadAll() Command {
	return Command{Type: ReadAll}
}

func NewUpdate(key, value string) Command {
	return Command{Type: Update, Key: &key, Value: &value}
}

func NewDelete(key string) Command {
	return Command{Type: Delete, Key: &key}
}
