package cobaltcli

import (
	"context"
	"encoding/binary"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/multierr"

	"oss.terrastruct.com/util-go/xdefer"
	"oss.terrastruct.com/util-go/xmain"

	"github.com/libcobalt/cobaltgen/csrc"
	"github.com/libcobalt/cobaltgen/wordtable"
)

type genConfig struct {
	words     int
	inputPath string // "-" reads the word list from stdin

	tablePath string
	sizesPath string

	// Empty paths skip the fragment.
	wordmapPath    string
	guidetablePath string
	order          binary.ByteOrder
}

func gen(ctx context.Context, ms *xmain.State, gc genConfig) (err error) {
	defer xdefer.Errorf(&err, "failed to generate word table")

	var src io.Reader
	if gc.inputPath == "-" {
		src = ms.Stdin
	} else {
		f, err := os.Open(gc.inputPath)
		if err != nil {
			return err
		}
		defer func() {
			err = multierr.Append(err, f.Close())
		}()
		src = f
	}

	err = os.MkdirAll(filepath.Dir(gc.tablePath), 0755)
	if err != nil {
		return err
	}
	dst, err := os.Create(gc.tablePath)
	if err != nil {
		return err
	}
	tbl, cerr := wordtable.Convert(ctx, dst, src, gc.words)
	err = multierr.Append(cerr, dst.Close())
	if err != nil {
		if errors.Is(cerr, wordtable.ErrTruncated) {
			// A partial table looks like a complete one. Don't leave it
			// behind for a later build step to pick up.
			err = multierr.Append(err, os.Remove(gc.tablePath))
		}
		return err
	}

	err = writePath(ms, gc.sizesPath, csrc.Sizes(tbl.Words, tbl.StrLen()))
	if err != nil {
		return err
	}
	ms.Log.Success.Printf("wrote %s (%d words, %d bytes) and %s",
		ms.HumanPath(gc.tablePath), tbl.Words, tbl.Len, ms.HumanPath(gc.sizesPath))

	if gc.wordmapPath != "" {
		err = writePath(ms, gc.wordmapPath, csrc.Wordmap(tbl.Offsets))
		if err != nil {
			return err
		}
		ms.Log.Success.Printf("wrote %s", ms.HumanPath(gc.wordmapPath))
	}
	if gc.guidetablePath != "" {
		blob, err := os.ReadFile(gc.tablePath)
		if err != nil {
			return err
		}
		guide := wordtable.BuildGuide(wordtable.Split(blob), gc.order)
		err = writePath(ms, gc.guidetablePath, csrc.Guidetable(guide))
		if err != nil {
			return err
		}
		ms.Log.Success.Printf("wrote %s", ms.HumanPath(gc.guidetablePath))
	}
	return nil
}

func writePath(ms *xmain.State, fp string, p []byte) error {
	err := os.MkdirAll(filepath.Dir(fp), 0755)
	if err != nil {
		return err
	}
	return ms.WritePath(fp, p)
}
