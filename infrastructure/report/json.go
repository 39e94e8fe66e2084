package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/kriterhq/kriter/internal/domain"
)

// jsonReport is the wire shape of a report. Scores are keyed by choice
// then node so consumers can index without knowing the display order.
type jsonReport struct {
	GeneratedAt time.Time                     `json:"generated_at"`
	Final       string                        `json:"final"`
	Ranking     []domain.RankEntry            `json:"ranking"`
	Scores      map[string]map[string]float64 `json:"scores"`
}

// WriteJSON renders the report as an indented JSON document.
func WriteJSON(w io.Writer, r *Report) error {
	out := jsonReport{
		GeneratedAt: r.GeneratedAt,
		Final:       r.Final,
		Ranking:     r.Ranking,
		Scores:      make(map[string]map[string]float64, len(r.Choices)),
	}
	for _, choice := range r.Choices {
		row := make(map[string]float64, len(r.Nodes))
		for _, node := range r.Nodes {
			row[node] = r.Score(choice, node)
		}
		out.Scores[choice] = row
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return nil
}
