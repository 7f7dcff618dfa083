package encode

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/canonform/flattree/token"
)

type Colorable struct {
	Type token.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	TagColor ColorAttr = iota
	AttrColor
	ValueColor
	SepColor
	CommentColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range []token.Type{token.TElement, token.TText, token.TComment, token.TProcInst} {
		able := Colorable{Type: t, Attr: TagColor}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = CommentColor
		colors.Map[able] = color.BlueString
	}
	colors.Map[Colorable{Type: token.TElement, Attr: AttrColor}] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[Colorable{Type: token.TElement, Attr: ValueColor}] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[Colorable{Type: token.TText, Attr: ValueColor}] = colorDefault
	colors.Map[Colorable{Type: token.TProcInst, Attr: ValueColor}] = color.RGB(128, 216, 236).SprintfFunc()
	return colors
}

func (c *Colors) Sprint(t token.Type, attr ColorAttr, s string) string {
	f, ok := c.Map[Colorable{Type: t, Attr: attr}]
	if !ok {
		f = c.Default
	}
	return f("%s", s)
}

func colorDefault(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// CanColor reports whether w looks like a terminal worth coloring.
func CanColor(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
