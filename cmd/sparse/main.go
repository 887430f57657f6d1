// Command sparse applies map, foreach, filter or reduce to an array literal
// that may contain holes, using one of the built-in named callbacks.
//
//	sparse map -fn double "[10, 2, , 4]"      # [ 20, 4, <1 empty item>, 8 ]
//	sparse filter -fn even "[10, 2, , 4]"     # [ 10, 2, 4 ]
//	sparse reduce -fn sum "[10, 2, , 4]"      # 16
//	echo "[1, , 3]" | sparse foreach -fn print -
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/hasbyte1/go-sparse/sparse"
)

const (
	ERROR_STATUS_CODE = 1

	COMMAND_NAME = "sparse"

	MAP_SUBCMD     = "map"
	FOREACH_SUBCMD = "foreach"
	FILTER_SUBCMD  = "filter"
	REDUCE_SUBCMD  = "reduce"
	FUNCS_SUBCMD   = "funcs"
	HELP_SUBCMD    = "help"
)

const HELP = `usage: sparse <command> [options] <array literal | ->

commands:
  map      call -fn on every present element, keep holes in place
  foreach  call -fn on every present element, print nothing
  filter   keep the present elements for which -fn is truthy
  reduce   fold the present elements with -fn, optionally from -init
  funcs    list the callbacks usable with -fn
  help     show this message

The array literal uses empty positions for holes: "[1, , 3]".
Pass - to read it from standard input.
`

func main() {
	statusCode := _main(os.Args, os.Stdin, os.Stdout, os.Stderr)
	if statusCode != 0 {
		os.Exit(statusCode)
	}
}

func _main(args []string, inR io.Reader, outW io.Writer, errW io.Writer) (statusCode int) {
	if len(args) < 2 {
		fmt.Fprint(errW, HELP)
		return ERROR_STATUS_CODE
	}
	subcommand, subcommandArgs := args[1], args[2:]

	if err := registerBuiltins(outW); err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}

	switch subcommand {
	case HELP_SUBCMD, "-h", "--help":
		fmt.Fprint(outW, HELP)
		return 0
	case FUNCS_SUBCMD:
		for _, b := range builtins(outW) {
			fmt.Fprintf(outW, "%-10s %s\n", b.name, b.desc)
		}
		return 0
	case MAP_SUBCMD, FOREACH_SUBCMD, FILTER_SUBCMD, REDUCE_SUBCMD:
	default:
		fmt.Fprintf(errW, "unknown command '%s'\n%s", subcommand, HELP)
		return ERROR_STATUS_CODE
	}

	cfg := DefaultConfig()
	flags := flag.NewFlagSet(subcommand, flag.ContinueOnError)
	flags.SetOutput(errW)
	cfg.bind(flags, subcommand == MAP_SUBCMD || subcommand == FOREACH_SUBCMD, subcommand == REDUCE_SUBCMD)

	if err := flags.Parse(subcommandArgs); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return ERROR_STATUS_CODE
	}
	cfg.afterParse(flags)

	if err := cfg.validate(); err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}

	logger := newLogger(cfg, errW)

	src, err := readLiteral(flags.Arg(0), inR)
	if err != nil {
		logger.Err(err).Msg("failed to read array literal")
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}

	start := time.Now()
	result, err := run(subcommand, cfg, src, logger)
	if err != nil {
		logger.Err(err).Str("command", subcommand).Str("fn", cfg.Function).Msg("operation failed")
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}
	logger.Info().Str("command", subcommand).Str("fn", cfg.Function).Dur("took", time.Since(start)).Msg("done")

	if subcommand == FOREACH_SUBCMD {
		return 0
	}
	if err := printResult(outW, result, cfg.JSON); err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}
	return 0
}

// run parses the literal and applies the subcommand's operation.
func run(subcommand string, cfg Config, src string, logger zerolog.Logger) (any, error) {
	arr, err := sparse.Parse(src)
	if err != nil {
		return nil, err
	}
	fn, err := sparse.Lookup(cfg.Function)
	if err != nil {
		return nil, err
	}

	var this any
	if cfg.This != "" {
		if err := json.Unmarshal([]byte(cfg.This), &this); err != nil {
			return nil, fmt.Errorf("invalid -this: %w", err)
		}
	}

	logger.Debug().
		Str("command", subcommand).
		Str("fn", cfg.Function).
		Int("length", arr.Len()).
		Int("present", arr.Count()).
		Msg("applying")

	switch subcommand {
	case MAP_SUBCMD:
		return sparse.MapValue(arr, fn, this)
	case FOREACH_SUBCMD:
		return nil, sparse.ForEachValue(arr, fn, this)
	case FILTER_SUBCMD:
		return sparse.FilterValue(arr, fn)
	case REDUCE_SUBCMD:
		initial := sparse.None[any]()
		if cfg.HasInit {
			var v any
			if err := json.Unmarshal([]byte(cfg.Init), &v); err != nil {
				return nil, fmt.Errorf("invalid -init: %w", err)
			}
			initial = sparse.Some(v)
		}
		return sparse.ReduceValue(arr, fn, initial)
	}
	return nil, fmt.Errorf("unknown command '%s'", subcommand)
}

func newLogger(cfg Config, errW io.Writer) zerolog.Logger {
	level, _ := zerolog.ParseLevel(cfg.LogLevel)

	var w io.Writer = errW
	if strings.EqualFold(cfg.LogFormat, "console") {
		w = zerolog.ConsoleWriter{Out: errW, NoColor: true}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Str("cmd", COMMAND_NAME).Logger()
}

func readLiteral(arg string, inR io.Reader) (string, error) {
	if arg != "" && arg != "-" {
		return arg, nil
	}
	b, err := io.ReadAll(inR)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func printResult(outW io.Writer, result any, asJSON bool) error {
	if asJSON {
		b, err := json.Marshal(result)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(outW, string(b))
		return err
	}
	_, err := fmt.Fprintln(outW, sparse.Format(result))
	return err
}
