package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Renderer draws the board as rows of cells separated by '|'.
type Renderer struct {
	out    io.Writer
	output *termenv.Output
	colors map[entity.Mark]termenv.Color
}

// NewRenderer - marks are coloured when color is true and the writer supports it.
func NewRenderer(out io.Writer, color bool) *Renderer {
	var opts []termenv.OutputOption
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	output := termenv.NewOutput(out, opts...)

	return &Renderer{
		out:    out,
		output: output,
		colors: map[entity.Mark]termenv.Color{
			entity.PlayerX: output.Color("1"),
			entity.PlayerO: output.Color("4"),
		},
	}
}

func (that *Renderer) Render(board *entity.Board) {
	var sb strings.Builder
	for _, row := range board.Rows() {
		for _, mark := range row {
			sb.WriteString("|")
			sb.WriteString(that.Mark(mark))
		}
		sb.WriteString("|\n")
	}

	fmt.Fprint(that.out, sb.String())
}

// Mark - returns the styled symbol of the mark.
func (that *Renderer) Mark(mark entity.Mark) string {
	color, ok := that.colors[mark]
	if !ok {
		return mark.String()
	}

	return that.output.String(mark.String()).Foreground(color).Bold().String()
}
