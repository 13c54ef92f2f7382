package cobaltcli

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"cdr.dev/slog"
	"github.com/spf13/pflag"

	"oss.terrastruct.com/util-go/go2"
	"oss.terrastruct.com/util-go/xmain"

	"github.com/libcobalt/cobaltgen/lib/log"
	"github.com/libcobalt/cobaltgen/lib/version"
)

// NUMBER_OF_WORDS is declared uint16_t in cobalt.h, so the count a run may
// be configured with is bounded by it.
const maxWords = 1<<16 - 1

const defaultWords = 50000

func Run(ctx context.Context, ms *xmain.State) (err error) {
	wordsFlag, err := ms.Opts.Int64("COBALT_WORDS", "words", "n", defaultWords, "number of words to read from the word list")
	if err != nil {
		return err
	}
	tableFlag := ms.Opts.String("COBALT_TABLE", "table", "t", "wordtable.bin", "path of the binary word table output")
	sizesFlag := ms.Opts.String("COBALT_SIZES", "sizes", "s", "sizes.c", "path of the generated sizes fragment")
	wordmapFlag := ms.Opts.String("COBALT_WORDMAP", "wordmap", "", "", "path of the generated wordmap fragment. Pass an empty string to skip it")
	guidetableFlag := ms.Opts.String("COBALT_GUIDETABLE", "guidetable", "", "", "path of the generated guide table fragment. Pass an empty string to skip it")
	endianFlag := ms.Opts.String("COBALT_ENDIAN", "endian", "", "little", "byte order of guide table keys (little or big). Must match the machine that compiles libcobalt")
	debugFlag, err := ms.Opts.Bool("DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		ms.Log.Warn.Printf("Invalid DEBUG flag value ignored")
		debugFlag = go2.Pointer(false)
	}
	versionFlag, err := ms.Opts.Bool("", "version", "v", false, "get the version")
	if err != nil {
		return err
	}

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if !errors.Is(err, pflag.ErrHelp) && err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}
	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}

	ctx = log.Stderr(ctx)
	defer log.Sync(ctx)
	if *debugFlag {
		ctx = log.Leveled(ctx, slog.LevelDebug)
		ms.Env.Setenv("DEBUG", "1")
	}

	if len(ms.Opts.Flags.Args()) > 0 && ms.Opts.Flags.Arg(0) == "version" {
		if len(ms.Opts.Flags.Args()) > 1 {
			return xmain.UsageErrorf("version subcommand accepts no arguments")
		}
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	}

	if len(ms.Opts.Flags.Args()) == 0 {
		if versionFlag != nil && *versionFlag {
			fmt.Fprintln(ms.Stdout, version.Version)
			return nil
		}
		help(ms)
		return nil
	} else if len(ms.Opts.Flags.Args()) >= 2 {
		return xmain.UsageErrorf("too many arguments passed")
	}

	if *wordsFlag < 1 || *wordsFlag > maxWords {
		return xmain.UsageErrorf("--words must be between 1 and %d, got %d", maxWords, *wordsFlag)
	}
	order, err := parseByteOrder(*endianFlag)
	if err != nil {
		return xmain.UsageErrorf("%v", err)
	}

	inputPath := ms.Opts.Flags.Arg(0)
	if inputPath != "-" {
		inputPath = ms.AbsPath(inputPath)
	}

	gc := genConfig{
		words:     int(*wordsFlag),
		inputPath: inputPath,
		tablePath: ms.AbsPath(*tableFlag),
		sizesPath: ms.AbsPath(*sizesFlag),
		order:     order,
	}
	if *wordmapFlag != "" {
		gc.wordmapPath = ms.AbsPath(*wordmapFlag)
	}
	if *guidetableFlag != "" {
		gc.guidetablePath = ms.AbsPath(*guidetableFlag)
	}

	ctx, cancel := log.WithTimeout(ctx, time.Minute)
	defer cancel()
	return gen(ctx, ms, gc)
}

func parseByteOrder(s string) (binary.ByteOrder, error) {
	switch s {
	case "little":
		return binary.LittleEndian, nil
	case "big":
		return binary.BigEndian, nil
	default:
		return nil, fmt.Errorf(`invalid --endian value %q. Expected "little" or "big"`, s)
	}
}
