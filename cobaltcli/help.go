package cobaltcli

import (
	"fmt"
	"path/filepath"

	"oss.terrastruct.com/util-go/xmain"

	"github.com/libcobalt/cobaltgen/lib/version"
)

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `%[1]s %[2]s
Usage:
  %[1]s [--words=50000] wordlist.txt
  %[1]s version

%[1]s converts a sorted newline-separated word list into the null-separated
word table binary and the generated C fragments that the libcobalt build
compiles in. Every word in the table is null-terminated, the last one
included; WORDTABLE_STRLEN excludes that final terminator.

Use - to have %[1]s read the word list from stdin.

Flags:
%[3]s

Subcommands:
  %[1]s version - Print the version
`, filepath.Base(ms.Name), version.Version, ms.Opts.Defaults())
}
