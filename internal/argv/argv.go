package argv

import (
	"strconv"
	"strings"
)

// Kind discriminates the value shapes a flag can carry.
type Kind int

const (
	// KindBool marks a flag given without a value ("--json") or in negated
	// form ("--no-json").
	KindBool Kind = iota
	// KindString marks a flag with exactly one string value.
	KindString
	// KindList marks a flag that appeared more than once; values keep their
	// appearance order.
	KindList
)

// Value is the parsed value of a single flag name.
type Value struct {
	Kind Kind
	Bool bool
	Str  string
	List []string
}

// Args is the result of tokenizing one raw argument vector. It is immutable
// after Parse returns.
type Args struct {
	// Positional holds the non-flag tokens in order.
	Positional []string
	// Tail holds the raw tokens following a "--" separator, if any.
	Tail []string

	flags map[string]*Value
	order []string
}

// Config controls tokenizing. It is the parse-time contract between the
// tokenizer and its caller.
type Config struct {
	// Bools declares flag names that are always boolean: they never consume
	// a following token as their value, so "--list users" keeps "users"
	// positional. An explicit "--name=value" form is still honored and
	// coerced to a bool.
	Bools []string
}

// Parse tokenizes rawArgs with a zero Config. It never fails: malformed
// input degrades to defined fallbacks rather than errors.
func Parse(rawArgs []string) *Args {
	return ParseWith(rawArgs, Config{})
}

// ParseWith tokenizes rawArgs under cfg.
func ParseWith(rawArgs []string, cfg Config) *Args {
	a := &Args{flags: make(map[string]*Value)}
	bools := make(map[string]bool, len(cfg.Bools))
	for _, name := range cfg.Bools {
		bools[name] = true
	}

	for i := 0; i < len(rawArgs); i++ {
		tok := rawArgs[i]

		if tok == "--" {
			a.Tail = append(a.Tail, rawArgs[i+1:]...)
			break
		}

		name, ok := flagName(tok)
		if !ok {
			a.Positional = append(a.Positional, tok)
			continue
		}

		if key, val, found := strings.Cut(name, "="); found {
			if bools[key] {
				a.addBool(key, coerceBool(val))
			} else {
				a.addString(key, val)
			}
			continue
		}
		if rest, found := strings.CutPrefix(name, "no-"); found && rest != "" {
			a.addBool(rest, false)
			continue
		}
		// A declared boolean flag never takes a value; any other bare flag
		// consumes the next token as its value unless that token is itself a
		// flag.
		if bools[name] {
			a.addBool(name, true)
			continue
		}
		if i+1 < len(rawArgs) {
			if _, isFlag := flagName(rawArgs[i+1]); !isFlag && rawArgs[i+1] != "--" {
				a.addString(name, rawArgs[i+1])
				i++
				continue
			}
		}
		a.addBool(name, true)
	}

	return a
}

// coerceBool maps an explicit "--name=value" form of a declared boolean
// flag. Unrecognized values count as presence, i.e. true.
func coerceBool(val string) bool {
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return true
	}
	return parsed
}

// flagName strips the leading dashes from a flag token. Negative numbers are
// not flags.
func flagName(tok string) (string, bool) {
	if !strings.HasPrefix(tok, "-") || tok == "-" || tok == "--" {
		return "", false
	}
	if _, err := strconv.ParseFloat(tok, 64); err == nil {
		return "", false
	}
	return strings.TrimLeft(tok, "-"), true
}

func (a *Args) addString(name, val string) {
	existing, ok := a.flags[name]
	if !ok {
		a.flags[name] = &Value{Kind: KindString, Str: val}
		a.order = append(a.order, name)
		return
	}
	switch existing.Kind {
	case KindList:
		existing.List = append(existing.List, val)
	case KindString:
		existing.Kind = KindList
		existing.List = []string{existing.Str, val}
		existing.Str = ""
	default:
		// A later value replaces an earlier boolean occurrence.
		existing.Kind = KindString
		existing.Str = val
	}
}

func (a *Args) addBool(name string, val bool) {
	if existing, ok := a.flags[name]; ok {
		if existing.Kind == KindBool {
			existing.Bool = val
		}
		// String/list occurrences win over a later bare occurrence.
		return
	}
	a.flags[name] = &Value{Kind: KindBool, Bool: val}
	a.order = append(a.order, name)
}

// Flag returns the parsed value for name.
func (a *Args) Flag(name string) (*Value, bool) {
	v, ok := a.flags[name]
	return v, ok
}

// Names returns all flag names in first-appearance order.
func (a *Args) Names() []string {
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

// Bool reports whether name was given as a truthy boolean flag.
func (a *Args) Bool(name string) bool {
	v, ok := a.flags[name]
	return ok && v.Kind == KindBool && v.Bool
}

// String returns the single string value of name, or the last value when the
// flag was repeated. Boolean and absent flags yield "".
func (a *Args) String(name string) string {
	v, ok := a.flags[name]
	if !ok {
		return ""
	}
	switch v.Kind {
	case KindString:
		return v.Str
	case KindList:
		return v.List[len(v.List)-1]
	}
	return ""
}

// Strings returns every string value given for name, in appearance order.
func (a *Args) Strings(name string) []string {
	v, ok := a.flags[name]
	if !ok {
		return nil
	}
	switch v.Kind {
	case KindString:
		return []string{v.Str}
	case KindList:
		out := make([]string, len(v.List))
		copy(out, v.List)
		return out
	}
	return nil
}

// Command returns the first positional segment, which names the command for
// per-command hook lookup. The second return is false when there are no
// positional segments.
func (a *Args) Command() (string, bool) {
	if len(a.Positional) == 0 {
		return "", false
	}
	return a.Positional[0], true
}
