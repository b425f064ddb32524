package randgen

import (
	"encoding/base64"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	csrand "github.com/reddit/csrand.go"
)

const (
	defaultBytes = 32
	defaultCount = 1
)

// Run runs randgen.
//
// It returns 0 to indicate success,
// and non-zero to indicate failure.
//
// Your main function usually should look like:
//
//     func main() {
//       os.Exit(randgen.Run())
//     }
func Run() (ret int) {
	if err := runArgs(os.Args, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}
	return 0
}

// Actual value type: emitter
var formats = map[string]interface{}{
	"hex":      emitter(emitHex),
	"base64":   emitter(emitBase64),
	"uuid":     emitter(emitUUID),
	"int":      emitter(emitInt),
	"float":    emitter(emitFloat),
	"fraction": emitter(emitFraction),
	"decimal":  emitter(emitDecimal),
}

// runArgs is the more customizable/testable version of Run.
//
// In production code it expects you to pass in os.Args as the args.
func runArgs(args []string, out io.Writer) error {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	format := oneof{
		choices: formats,
		value:   "hex",
	}
	fs.Var(
		&format,
		"format",
		fmt.Sprintf("The output format, one of %s.", format.choicesString()),
	)
	size := fs.Int(
		"bytes",
		defaultBytes,
		`The number of random bytes to draw, for "hex" and "base64" formats.`,
	)
	count := fs.Int(
		"count",
		defaultCount,
		"The number of values to emit, one per line.",
	)
	min := fs.String(
		"min",
		"0",
		`The lower bound (inclusive), for "int" and "decimal" formats.`,
	)
	max := fs.String(
		"max",
		"100",
		`The upper bound (exclusive), for "int" and "decimal" formats.`,
	)
	verbose := fs.Bool(
		"verbose",
		false,
		"Log diagnostics to stderr.",
	)
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("failed to parse args: %w", err)
	}

	logger, err := newLogger(*verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	src := csrand.NewCountingSource(nil)
	sampler := csrand.New(src)
	emit := format.getValue().(emitter)
	for i := 0; i < *count; i++ {
		if err := emit(out, sampler, emitArgs{
			size: *size,
			min:  *min,
			max:  *max,
		}); err != nil {
			return err
		}
	}
	logger.Debugw(
		"emitted random values",
		"format", format.String(),
		"count", *count,
		"entropyBytes", src.Size(),
	)
	return nil
}

func newLogger(verbose bool) (*zap.SugaredLogger, error) {
	if !verbose {
		return zap.NewNop().Sugar(), nil
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	config.Encoding = "console"
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	l, err := config.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

type emitArgs struct {
	size     int
	min, max string
}

type emitter func(w io.Writer, s csrand.Sampler, args emitArgs) error

func emitHex(w io.Writer, s csrand.Sampler, args emitArgs) error {
	buf, err := s.Bytes(args.size)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, hex.EncodeToString(buf))
	return err
}

func emitBase64(w io.Writer, s csrand.Sampler, args emitArgs) error {
	buf, err := s.Bytes(args.size)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, base64.StdEncoding.EncodeToString(buf))
	return err
}

func emitUUID(w io.Writer, s csrand.Sampler, args emitArgs) error {
	id, err := s.UUID4()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, id)
	return err
}

func emitInt(w io.Writer, s csrand.Sampler, args emitArgs) error {
	min, err := strconv.ParseInt(args.min, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid min %q: %w", args.min, err)
	}
	max, err := strconv.ParseInt(args.max, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid max %q: %w", args.max, err)
	}
	v, err := s.Int64(min, max)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, v)
	return err
}

func emitFloat(w io.Writer, s csrand.Sampler, args emitArgs) error {
	v, err := s.Float64()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, v)
	return err
}

func emitFraction(w io.Writer, s csrand.Sampler, args emitArgs) error {
	v, err := s.Fraction()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, v)
	return err
}

func emitDecimal(w io.Writer, s csrand.Sampler, args emitArgs) error {
	min, err := decimal.NewFromString(args.min)
	if err != nil {
		return fmt.Errorf("invalid min %q: %w", args.min, err)
	}
	max, err := decimal.NewFromString(args.max)
	if err != nil {
		return fmt.Errorf("invalid max %q: %w", args.max, err)
	}
	v, err := s.Decimal(min, max)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, v)
	return err
}
