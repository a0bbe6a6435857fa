package scenario

import (
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlsearch/astar"
)

// Report summarizes one scenario run. Cost is −1 and Path is empty unless
// Status is "success".
type Report struct {
	Name           string   `yaml:"name" json:"name"`
	Status         string   `yaml:"status" json:"status"`
	Cost           float64  `yaml:"cost" json:"cost"`
	Path           []string `yaml:"path,omitempty" json:"path,omitempty"`
	Visited        int      `yaml:"visited" json:"visited"`
	Expanded       int      `yaml:"expanded" json:"expanded"`
	ElapsedSeconds float64  `yaml:"elapsed_seconds" json:"elapsed_seconds"`

	Outcome astar.Status `yaml:"-" json:"-"`
}

func newReport[N comparable](name string, res astar.Result[N], path []string) Report {
	return Report{
		Name:           name,
		Status:         res.Status.String(),
		Cost:           res.Cost,
		Path:           path,
		Visited:        res.Visited,
		Expanded:       res.Expanded,
		ElapsedSeconds: res.Elapsed.Seconds(),
		Outcome:        res.Status,
	}
}

// Elapsed returns ElapsedSeconds as a duration.
func (r Report) Elapsed() time.Duration {
	return time.Duration(r.ElapsedSeconds * float64(time.Second))
}

// WriteText prints one line per report:
//
//	name: status cost=3 visited=4 expanded=4 path=A>B>C>D
func WriteText(w io.Writer, reports ...Report) error {
	for _, r := range reports {
		line := fmt.Sprintf("%s: %s cost=%g visited=%d expanded=%d", r.Name, r.Status, r.Cost, r.Visited, r.Expanded)
		if len(r.Path) > 0 {
			line += " path=" + strings.Join(r.Path, ">")
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

// WriteYAML encodes the reports as one YAML sequence.
func WriteYAML(w io.Writer, reports ...Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(reports); err != nil {
		return fmt.Errorf("encode reports: %w", err)
	}

	return enc.Close()
}
