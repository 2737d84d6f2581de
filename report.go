package hamweave

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hamweave/certify"
	"github.com/katalvlaran/hamweave/lattice"
)

// Report summarises a Run: the lattice, the common solution and the elapsed
// time of every repetition.
type Report struct {
	Order   int
	Extents [3]int
	Solution
	Elapsed []time.Duration
}

// Mean returns the average elapsed time, or zero for an empty report.
func (r *Report) Mean() time.Duration {
	if len(r.Elapsed) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range r.Elapsed {
		sum += d
	}
	return sum / time.Duration(len(r.Elapsed))
}

// WriteText writes the report as "key: value" lines, one line per repetition,
// with the tour last.
func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "nodes: %d\n", r.Order)
	fmt.Fprintf(&b, "extents: %dx%dx%d\n", r.Extents[0], r.Extents[1], r.Extents[2])
	fmt.Fprintf(&b, "class: %s\n", r.Kind)
	fmt.Fprintf(&b, "loops: %d\n", r.Loops)
	fmt.Fprintf(&b, "rounds: %d\n", r.Rounds)
	fmt.Fprintf(&b, "joins: %d\n", r.Joins)
	for i, d := range r.Elapsed {
		fmt.Fprintf(&b, "run %d: %s\n", i+1, d)
	}
	fmt.Fprintf(&b, "mean: %s\n", r.Mean())
	fmt.Fprintf(&b, "tour: %s\n", joinNodes(r.Tour))

	_, err := io.WriteString(w, b.String())
	return err
}

func joinNodes(tour []lattice.Node) string {
	parts := make([]string, len(tour))
	for i, n := range tour {
		parts[i] = strconv.Itoa(int(n))
	}
	return strings.Join(parts, " ")
}

// yamlReport is the YAML document layout of a Report.
type yamlReport struct {
	Nodes   int            `yaml:"nodes"`
	Extents [3]int         `yaml:"extents,flow"`
	Class   certify.Kind   `yaml:"class"`
	Loops   int            `yaml:"loops"`
	Rounds  int            `yaml:"rounds"`
	Joins   int            `yaml:"joins"`
	Elapsed []string       `yaml:"elapsed"`
	Mean    string         `yaml:"mean"`
	Tour    []lattice.Node `yaml:"tour,flow"`
}

// WriteYAML writes the report as a YAML document.
func (r *Report) WriteYAML(w io.Writer) error {
	doc := yamlReport{
		Nodes:   r.Order,
		Extents: r.Extents,
		Class:   r.Kind,
		Loops:   r.Loops,
		Rounds:  r.Rounds,
		Joins:   r.Joins,
		Elapsed: make([]string, len(r.Elapsed)),
		Mean:    r.Mean().String(),
		Tour:    r.Tour,
	}
	for i, d := range r.Elapsed {
		doc.Elapsed[i] = d.String()
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("hamweave: encode report: %w", err)
	}
	return enc.Close()
}
