package git

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sqve/ticketguard/internal/errors"
)

// refTokens is the number of fields in a pre-push stdin record:
// <local-ref> <local-sha> <remote-ref> <remote-sha>
const refTokens = 4

// BaseName returns the last "/"-separated component of path.
func BaseName(path string) (string, error) {
	name := path[strings.LastIndex(path, "/")+1:]
	if name == "" {
		return "", errors.ErrMissingData("base name").WithContext("path", path)
	}
	return name, nil
}

// ParseRefPair parses the first record of pre-push input. Refs are reduced to
// their last path segment, so refs/heads/DA-890_fix becomes DA-890_fix.
func ParseRefPair(input string) (RefPair, error) {
	line, _, _ := strings.Cut(input, "\n")
	line = strings.TrimRightFunc(line, unicode.IsSpace)

	tokens := strings.Split(line, " ")
	if len(tokens) < refTokens {
		return RefPair{}, errors.ErrMissingData("push ref tokens").
			WithContext("line", line).
			WithContext("tokens", len(tokens))
	}

	local, err := BaseName(tokens[0])
	if err != nil {
		return RefPair{}, errors.WithOperation(err, "parse local ref")
	}

	remote, err := BaseName(tokens[2])
	if err != nil {
		return RefPair{}, errors.WithOperation(err, "parse remote ref")
	}

	return RefPair{
		Local:     local,
		LocalSHA:  tokens[1],
		Remote:    remote,
		RemoteSHA: tokens[3],
	}, nil
}

// ReadRefPair consumes r to EOF and parses its first record.
func ReadRefPair(r io.Reader) (RefPair, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return RefPair{}, errors.ErrIO("read push refs", err)
	}

	if !utf8.Valid(data) {
		return RefPair{}, errors.ErrEncoding("push refs")
	}

	return ParseRefPair(string(data))
}
