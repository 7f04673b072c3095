package report_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/okian/guessboard/internal/adapters/report"
	"github.com/okian/guessboard/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

const wantHeader = `\begin{tabular}{|l|rl|r|r|rc|}
\hline
\textbf{Guess} & \multicolumn{2}{c|}{\textbf{Guesser}} & \textbf{\#} & \multicolumn{3}{c|}{\textbf{Points}} \\
\cline{5-7}
& & &  & \textbf{Suraj} & \multicolumn{2}{c|}{\textbf{Umesh}} \\
`

const wantFooter = `\hline
\end{tabular}
`

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func intPtr(v int) *int { return &v }

func TestRender(t *testing.T) {
	Convey("Given a LaTeX renderer", t, func() {
		r := report.NewRenderer()
		var buf bytes.Buffer

		Convey("When rendering rows with a revealed answer", func() {
			rows := []model.ResultRow{
				{Guess: "dog", Position: 1, Participant: "bob", Rank: 2, SurajPoints: 5, UmeshPoints: 11, BonusOriginal: intPtr(10), GroupStart: true, Correct: true},
				{Guess: "dog", Position: 2, Participant: "alice", Rank: 3, SurajPoints: 2, UmeshPoints: 9, Correct: true},
				{Guess: "cat", Position: 1, Participant: "carol", Rank: 4, GroupStart: true},
			}
			err := r.Render(&buf, rows)

			Convey("Then the table should match the expected markup", func() {
				So(err, ShouldBeNil)
				want := wantHeader +
					"\\hline\n" +
					"\\textbf{dog}              &  1 & bob        &  2 &  5 & 11 & (10 + 1)\\\\\n" +
					"                          &  2 & alice      &  3 &  2 &  9 & \\\\\n" +
					"\\hline\n" +
					"cat                       &  1 & carol      &  4 &  0 &  0 & \\\\\n" +
					wantFooter
				So(buf.String(), ShouldEqual, want)
			})
		})

		Convey("When rendering no rows", func() {
			err := r.Render(&buf, nil)

			Convey("Then only the frame is written", func() {
				So(err, ShouldBeNil)
				So(buf.String(), ShouldEqual, wantHeader+wantFooter)
			})
		})

		Convey("When the writer fails", func() {
			err := r.Render(brokenWriter{}, []model.ResultRow{{Guess: "cat", Position: 1, Participant: "carol", GroupStart: true}})

			Convey("Then the error should be wrapped", func() {
				So(errors.Is(err, report.ErrWrite), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "disk full")
			})
		})
	})
}

func TestLabel(t *testing.T) {
	Convey("Given group labels", t, func() {
		Convey("Then the correct guess is bold", func() {
			So(report.Label(model.ResultRow{Guess: "dog", Correct: true}), ShouldEqual, `\textbf{dog}`)
			So(report.Label(model.ResultRow{Guess: "cat"}), ShouldEqual, "cat")
			So(strings.Contains(report.Label(model.ResultRow{Guess: "cat"}), "textbf"), ShouldBeFalse)
		})
	})
}
