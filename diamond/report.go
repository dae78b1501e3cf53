package diamond

import (
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Report writes the entities as a table to w, ranked by combined
// normalized value. Notable entities are marked with a star.
func (f *Figure) Report(w io.Writer) error {
	ranked := f.Entities()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Sum > ranked[j].Sum
	})

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Name", f.Left.Name(), f.Right.Name(), "Combined", "Notable"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, e := range ranked {
		mark := ""
		if e.Notable {
			mark = "*"
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			e.Name,
			formatValue(e.Left),
			formatValue(e.Right),
			strconv.FormatFloat(e.Sum, 'f', 3, 64),
			mark,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
