// Package report renders scored results as a LaTeX tabular.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/okian/guessboard/internal/domain/model"
)

// Table frame and row formats. Columns: guess, position, guesser, comment
// number, Suraj points, Umesh points, bonus annotation.
const (
	header = "\\begin{tabular}{|l|rl|r|r|rc|}\n" +
		"\\hline\n" +
		"\\textbf{Guess} & \\multicolumn{2}{c|}{\\textbf{Guesser}} & \\textbf{\\#}" +
		" & \\multicolumn{3}{c|}{\\textbf{Points}} \\\\\n" +
		"\\cline{5-7}\n" +
		"& & &  & \\textbf{Suraj} & \\multicolumn{2}{c|}{\\textbf{Umesh}} \\\\\n"
	footer = "\\hline\n" +
		"\\end{tabular}\n"
	groupRule = "\\hline\n"

	rowFormat      = "%-25s & %2d & %-10s & %2d & %2d & %2d & \\\\\n"
	bonusRowFormat = "%-25s & %2d & %-10s & %2d & %2d & %2d & (%d + %d)\\\\\n"

	// blankLabel fills the guess column on all but the first row of a group.
	blankLabel = " "
)

// Renderer writes result rows as a LaTeX table meant to be \input into a
// larger document.
type Renderer struct{}

// NewRenderer creates a LaTeX renderer.
func NewRenderer() *Renderer { return &Renderer{} }

// Render writes the full table for rows to w.
func (r *Renderer) Render(w io.Writer, rows []model.ResultRow) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(header); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	for _, row := range rows {
		if err := writeRow(bw, row); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrWrite, row.Participant, err)
		}
	}
	if _, err := bw.WriteString(footer); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

func writeRow(w io.Writer, row model.ResultRow) error {
	label := blankLabel
	if row.GroupStart {
		if _, err := io.WriteString(w, groupRule); err != nil {
			return err
		}
		label = Label(row)
	}

	var err error
	if row.HasBonus() {
		_, err = fmt.Fprintf(w, bonusRowFormat,
			label, row.Position, row.Participant, row.Rank, row.SurajPoints, row.UmeshPoints, *row.BonusOriginal, row.UmeshPoints-*row.BonusOriginal)
	} else {
		_, err = fmt.Fprintf(w, rowFormat,
			label, row.Position, row.Participant, row.Rank, row.SurajPoints, row.UmeshPoints)
	}
	return err
}

// Label returns the group label for a row, bolded for the correct guess.
func Label(row model.ResultRow) string {
	if row.Correct {
		return "\\textbf{" + row.Guess + "}"
	}
	return row.Guess
}
