package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteTable renders the ranking as a terminal table, colorizing each
// final score by how close it is to the top of the scale. Color output
// honors the fatih/color NO_COLOR handling, so piped output stays plain.
func WriteTable(w io.Writer, r *Report) error {
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Choice", r.Final})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var rows [][]string
	for i, e := range r.Ranking {
		score := percent(e.Score)
		switch {
		case e.Score >= 0.75:
			score = green(score)
		case e.Score >= 0.4:
			score = yellow(score)
		default:
			score = red(score)
		}
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), e.Choice, score})
	}

	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("failed to build ranking table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render ranking table: %w", err)
	}
	return nil
}

// WriteBreakdown renders the full score matrix as a terminal table: one
// row per choice, one column per node in display order.
func WriteBreakdown(w io.Writer, r *Report) error {
	table := tablewriter.NewWriter(w)
	table.Header(append([]string{"Choice"}, r.Nodes...))
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var rows [][]string
	for _, choice := range r.Choices {
		row := make([]string, 0, len(r.Nodes)+1)
		row = append(row, choice)
		for _, node := range r.Nodes {
			row = append(row, percent(r.Score(choice, node)))
		}
		rows = append(rows, row)
	}

	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("failed to build breakdown table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render breakdown table: %w", err)
	}
	return nil
}
