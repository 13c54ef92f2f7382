package main

import (
	"oss.terrastruct.com/util-go/xmain"

	"github.com/libcobalt/cobaltgen/cobaltcli"
)

func main() {
	xmain.Main(cobaltcli.Run)
}
