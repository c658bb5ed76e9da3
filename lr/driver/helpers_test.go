package driver

import (
	"io"
	"strings"

	"github.com/npillmayer/lrstep/lr/sppf"
)

func stringsReader(s string) io.Reader {
	return strings.NewReader(s)
}

func sppfLabels(nodes []*sppf.Node) []string {
	return sppf.Forest(nodes).Labels()
}
