// jot - JSON tree codec CLI
//
// Usage:
//
//	jot fmt [--sort] [file]   Reformat JSON compactly
//	jot check [file]          Parse only; report structured errors
//	jot demo                  Run the built-in demo walk
//	jot version               Print version info
//
// Files ending in .gz are gzip-decompressed before parsing; use --gzip
// to decompress stdin. If no file is given, reads from stdin.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/pflag"

	"github.com/veldt-io/jot/jot"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]

	flags := pflag.NewFlagSet("jot "+cmd, pflag.ExitOnError)
	sortKeys := flags.Bool("sort", false, "emit object keys in sorted order")
	gzipIn := flags.Bool("gzip", false, "treat stdin as gzip-compressed")
	if err := flags.Parse(os.Args[2:]); err != nil {
		fatal("%v", err)
	}
	fileArg := flags.Arg(0)

	switch cmd {
	case "fmt":
		cmdFmt(fileArg, *gzipIn, *sortKeys)
	case "check":
		cmdCheck(fileArg, *gzipIn)
	case "demo":
		cmdDemo()
	case "version":
		fmt.Printf("jot %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "jot: unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `jot - JSON tree codec

Usage:
  jot fmt [--sort] [file]   Reformat JSON compactly
  jot check [file]          Parse only; report structured errors
  jot demo                  Run the built-in demo walk
  jot version               Print version info

Files ending in .gz are gzip-decompressed before parsing; use --gzip to
decompress stdin. If no file is given, reads from stdin.`)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "jot: "+format+"\n", args...)
	os.Exit(1)
}

// readInput reads the whole document from a file or stdin, transparently
// decompressing gzip input.
func readInput(fileArg string, gzipStdin bool) (string, error) {
	var r io.Reader = os.Stdin
	compressed := gzipStdin

	if fileArg != "" && fileArg != "-" {
		f, err := os.Open(fileArg)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
		compressed = strings.HasSuffix(fileArg, ".gz")
	}

	if compressed {
		zr, err := gzip.NewReader(r)
		if err != nil {
			return "", fmt.Errorf("gzip: %w", err)
		}
		defer zr.Close()
		r = zr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func cmdFmt(fileArg string, gzipStdin, sortKeys bool) {
	input, err := readInput(fileArg, gzipStdin)
	if err != nil {
		fatal("read input: %v", err)
	}

	v, err := jot.Parse(input)
	if err != nil {
		reportParseError(err)
		os.Exit(1)
	}

	fmt.Println(jot.StringifyWithOptions(v, jot.StringifyOptions{SortKeys: sortKeys}))
}

func cmdCheck(fileArg string, gzipStdin bool) {
	input, err := readInput(fileArg, gzipStdin)
	if err != nil {
		fatal("read input: %v", err)
	}

	if _, err := jot.Parse(input); err != nil {
		reportParseError(err)
		os.Exit(1)
	}
	fmt.Println("ok")
}

func reportParseError(err error) {
	var perr *jot.ParseError
	if errors.As(err, &perr) && perr.Kind != jot.ErrUnexpectedChar {
		// The unexpected-character message already carries its offset.
		fmt.Fprintf(os.Stderr, "jot: %v (offset %d)\n", perr, perr.Pos)
		return
	}
	fmt.Fprintf(os.Stderr, "jot: %v\n", err)
}

// cmdDemo exercises the parse/stringify pair on a fixed document set.
func cmdDemo() {
	fmt.Println("=== JSON Parser and Stringifier Demo ===")
	fmt.Println()

	examples := []string{
		"null",
		"true",
		"false",
		"42",
		"3.14",
		`"Hello, World!"`,
		"[1, 2, 3, 4, 5]",
		`{"name": "Alice", "age": 30}`,
		`{"users": [{"name": "Alice", "age": 30}, {"name": "Bob", "age": 25}]}`,
		"{invalid}",
	}

	fmt.Println("Parsing examples:")
	for _, example := range examples {
		v, err := jot.Parse(example)
		if err != nil {
			fmt.Printf("  ✗ %s -> %v\n", example, err)
			continue
		}
		fmt.Printf("  ✓ %s -> %s\n", example, jot.Stringify(v))
	}

	fmt.Println()
	fmt.Println("Stringifying constructed values:")
	values := []*jot.Value{
		jot.Null(),
		jot.Bool(true),
		jot.Number(42),
		jot.Str("Hello, World!"),
		jot.Array(jot.Number(1), jot.Number(2), jot.Number(3)),
	}
	for _, v := range values {
		fmt.Printf("  ✓ %s: %s\n", v.Kind(), jot.Stringify(v))
	}

	fmt.Println()
	fmt.Println("Complex object:")
	person := jot.Object(map[string]*jot.Value{
		"name":   jot.Str("Alice"),
		"age":    jot.Number(30),
		"active": jot.Bool(true),
		"scores": jot.Object(map[string]*jot.Value{
			"math":    jot.Number(95),
			"science": jot.Number(87),
		}),
	})
	text := jot.StringifyWithOptions(person, jot.StringifyOptions{SortKeys: true})
	fmt.Printf("  %s\n", text)

	fmt.Println()
	fmt.Println("Round-trip:")
	back, err := jot.Parse(text)
	if err != nil {
		fatal("round-trip parse failed: %v", err)
	}
	if !back.Equal(person) {
		fatal("round-trip changed the tree")
	}
	fmt.Printf("  ✓ %s\n", jot.Stringify(back))
}
