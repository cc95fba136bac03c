// Package mtl reads the texture map statements of MTL material libraries
// that the OBJ decoder leaves out: specular, bump, ambient and alpha maps.
package mtl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrSyntax reports a malformed statement.
var ErrSyntax = errors.New("mtl: syntax error")

// Maps holds the extra texture maps of one material. Paths are as written
// in the library, relative to it.
type Maps struct {
	Specular string
	Normal   string
	Ambient  string
	Alpha    string
}

// optionArgs is the argument count of each texture map option.
var optionArgs = map[string]int{
	"-blendu":  1,
	"-blendv":  1,
	"-boost":   1,
	"-bm":      1,
	"-cc":      1,
	"-clamp":   1,
	"-imfchan": 1,
	"-texres":  1,
	"-mm":      2,
	"-o":       3,
	"-s":       3,
	"-t":       3,
}

// ParseMaps reads a material library and returns the extra maps of every
// material, keyed by name. Materials without extra maps are present with
// empty Maps.
func ParseMaps(r io.Reader) (map[string]Maps, error) {
	maps := make(map[string]Maps)
	current := ""

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		keyword, args := fields[0], fields[1:]
		rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), keyword))

		if keyword == "newmtl" {
			if rest == "" {
				return nil, fmt.Errorf("line %d: %w: newmtl without a name", lineNo, ErrSyntax)
			}
			current = rest
			maps[current] = Maps{}
			continue
		}
		if current == "" {
			continue
		}

		m := maps[current]
		switch keyword {
		case "map_Ks":
			m.Specular = mapPath(args, rest)
		case "map_Bump", "map_bump", "bump", "norm", "map_Kn":
			m.Normal = mapPath(args, rest)
		case "map_Ka":
			m.Ambient = mapPath(args, rest)
		case "map_d":
			m.Alpha = mapPath(args, rest)
		default:
			continue
		}
		maps[current] = m
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mtl: reading: %w", err)
	}
	return maps, nil
}

// mapPath strips texture options and returns the file name.
// Without options the whole remainder is the path so names may contain spaces.
func mapPath(args []string, rest string) string {
	if len(args) == 0 || !strings.HasPrefix(args[0], "-") {
		return CleanPath(rest)
	}

	i := 0
	for i < len(args) && strings.HasPrefix(args[i], "-") {
		n, ok := optionArgs[args[i]]
		if !ok {
			n = 1
		}
		i++
		// The first argument is mandatory; -o, -s and -t take up to three numbers
		for j := 0; j < n && i < len(args); j++ {
			if j > 0 && !isNumber(args[i]) {
				break
			}
			i++
		}
	}
	if i >= len(args) {
		return ""
	}
	return CleanPath(strings.Join(args[i:], " "))
}

// CleanPath turns Windows separators in an exported map path into slashes.
func CleanPath(p string) string {
	return strings.ReplaceAll(strings.TrimSpace(p), "\\", "/")
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 32)
	return err == nil
}
