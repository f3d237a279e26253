// Package urlbuild converts parsed arguments into the URL of an in-process
// request: positional segments become the path, non-reserved flags become
// the query string.
package urlbuild

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/vk/cliwire/internal/argv"
)

// Origin is the placeholder scheme and host of every built URL. The result
// is only ever consumed by an in-process handler, never sent over a network.
const Origin = "http://cli"

// Options configures a single build.
type Options struct {
	// Base is a path prefix joined before the positional segments.
	Base string
	// Reserved names flags that are consumed by the CLI layer and must never
	// be projected into the query string. It is unioned with DefaultReserved.
	Reserved map[string]bool
}

// DefaultReserved returns the flag names the adapter always consumes itself.
func DefaultReserved() map[string]bool {
	return map[string]bool{
		"base": true,
		"env":  true,
	}
}

// Build constructs the request URL from parsed arguments. The pathname is
// the slash-trimmed base followed by each percent-encoded positional
// segment, always with a leading slash; empty positional tokens are skipped
// so the path never contains empty components. Query parameters keep the flags'
// first-appearance order; repeated flags produce repeated entries and
// boolean flags project as "true"/"false".
func Build(args *argv.Args, opts Options) (*url.URL, error) {
	var segments []string
	for _, part := range strings.Split(strings.Trim(opts.Base, "/"), "/") {
		if part != "" {
			segments = append(segments, part)
		}
	}
	for _, pos := range args.Positional {
		if pos == "" {
			continue
		}
		segments = append(segments, url.PathEscape(pos))
	}

	u, err := url.Parse(Origin + "/" + strings.Join(segments, "/"))
	if err != nil {
		return nil, err
	}
	u.RawQuery = encodeQuery(args, reservedSet(opts))
	return u, nil
}

func reservedSet(opts Options) map[string]bool {
	reserved := DefaultReserved()
	for name, ok := range opts.Reserved {
		if ok {
			reserved[name] = true
		}
	}
	return reserved
}

// encodeQuery renders the query string by hand: url.Values.Encode sorts its
// keys, while the contract here is flag-appearance order.
func encodeQuery(args *argv.Args, reserved map[string]bool) string {
	var pairs []string
	appendPair := func(name, value string) {
		pairs = append(pairs, url.QueryEscape(name)+"="+url.QueryEscape(value))
	}

	for _, name := range args.Names() {
		if reserved[name] {
			continue
		}
		v, _ := args.Flag(name)
		switch v.Kind {
		case argv.KindList:
			for _, item := range v.List {
				appendPair(name, item)
			}
		case argv.KindBool:
			appendPair(name, strconv.FormatBool(v.Bool))
		case argv.KindString:
			appendPair(name, v.Str)
		}
	}
	return strings.Join(pairs, "&")
}
