// Package report renders the farm store as a report. The text format is the
// canonical plain-text contract; JSON and XML are machine-readable exports.
// Styling applies only when explicitly enabled so piped output stays
// byte-exact.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/fieldworks/farmgate/pkg/errors"
	"github.com/fieldworks/farmgate/pkg/store"
)

// Format selects the report output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// ParseFormat parses a format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON, FormatXML:
		return Format(s), nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown report format %q", s)
	}
}

// ScheduleEntry is one schedule line in a snapshot.
type ScheduleEntry struct {
	Article string `json:"article"`
	Date    string `json:"date"`
}

// InventoryEntry is one inventory line in a snapshot.
type InventoryEntry struct {
	Article  string `json:"article"`
	Quantity int    `json:"quantity"`
}

// Snapshot is a plain-value copy of the store's contents, in report order.
type Snapshot struct {
	Articles  []string         `json:"articles"`
	Farmers   []string         `json:"farmers"`
	Schedules []ScheduleEntry  `json:"schedules"`
	Inventory []InventoryEntry `json:"inventory"`
}

// Snap captures the store's contents.
func Snap(sys *store.FarmStore) Snapshot {
	snap := Snapshot{
		Articles:  []string{},
		Farmers:   []string{},
		Schedules: []ScheduleEntry{},
		Inventory: []InventoryEntry{},
	}
	for _, a := range sys.Articles() {
		snap.Articles = append(snap.Articles, a.Name)
	}
	for _, f := range sys.Farmers() {
		snap.Farmers = append(snap.Farmers, f.Name)
	}
	for _, s := range sys.Schedules() {
		snap.Schedules = append(snap.Schedules, ScheduleEntry{
			Article: s.Article.Name,
			Date:    s.Date,
		})
	}
	for _, item := range sys.Inventory() {
		snap.Inventory = append(snap.Inventory, InventoryEntry{
			Article:  item.Article.Name,
			Quantity: item.Quantity,
		})
	}
	return snap
}

// Options controls rendering.
type Options struct {
	Format Format

	// Styled enables terminal styling for the text format. It has no
	// effect on JSON or XML output.
	Styled bool
}

// Render writes the store report to w in the requested format.
func Render(sys *store.FarmStore, w io.Writer, opts Options) error {
	snap := Snap(sys)
	switch opts.Format {
	case FormatJSON:
		return renderJSON(snap, w)
	case FormatXML:
		return renderXML(snap, w)
	case FormatText, "":
		return renderText(snap, w, opts.Styled)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown report format %q", opts.Format)
	}
}

// renderText writes the canonical plain-text report: one section per
// collection, sections separated by a blank line.
func renderText(snap Snapshot, w io.Writer, styling bool) error {
	var err error
	write := func(format string, args ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	write("%s\n", styled(styling, "Header", "Articles:"))
	for _, name := range snap.Articles {
		write("%s\n", name)
	}

	write("\n%s\n", styled(styling, "Header", "Farmers:"))
	for _, name := range snap.Farmers {
		write("%s\n", name)
	}

	write("\n%s\n", styled(styling, "Header", "Schedules:"))
	for _, s := range snap.Schedules {
		write("%s @ %s\n", s.Article, s.Date)
	}

	write("\n%s\n", styled(styling, "Header", "Inventory:"))
	for _, item := range snap.Inventory {
		qty := fmt.Sprintf("%d", item.Quantity)
		if item.Quantity < 0 {
			qty = styled(styling, "Negative", qty)
		}
		write("%s: %s\n", item.Article, qty)
	}

	if err != nil {
		return errors.Wrap(err, errors.ErrReportRender, "failed to write text report")
	}
	return nil
}

func renderJSON(snap Snapshot, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return errors.Wrap(err, errors.ErrReportRender, "failed to encode JSON report")
	}
	return nil
}

// StylingEnabled reports whether styled text output is appropriate for the
// writer: only when it is a real terminal and color is not disabled.
func StylingEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if termenv.EnvNoColor() {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
