package plain

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiDim    = "\x1b[2m"
	ansiGreen  = "\x1b[32m"
	ansiRed    = "\x1b[31m"
	ansiBlue   = "\x1b[34m"
	ansiYellow = "\x1b[33m"
)

type style int

const (
	styleDefault style = iota
	styleTitle
	styleCorrect
	styleIncorrect
	styleNotice
	styleMuted
)

type palette struct {
	enabled bool
}

func paletteFor(writer io.Writer, noColor bool) palette {
	if noColor {
		return palette{enabled: false}
	}
	return palette{enabled: shouldUseStyling(writer)}
}

func shouldUseStyling(writer io.Writer) bool {
	if writer == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	if strings.EqualFold(os.Getenv("CLICOLOR"), "0") {
		return false
	}
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := writer.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}

func (p palette) apply(s style, text string) string {
	if !p.enabled {
		return text
	}
	switch s {
	case styleTitle:
		return ansiBold + ansiBlue + text + ansiReset
	case styleCorrect:
		return ansiBold + ansiGreen + text + ansiReset
	case styleIncorrect:
		return ansiBold + ansiRed + text + ansiReset
	case styleNotice:
		return ansiYellow + text + ansiReset
	case styleMuted:
		return ansiDim + text + ansiReset
	default:
		return text
	}
}
