package report

import (
	"io"
	"strconv"

	"github.com/beevik/etree"

	"github.com/fieldworks/farmgate/pkg/errors"
)

// renderXML writes the snapshot as an XML document rooted at <farmstore>.
func renderXML(snap Snapshot, w io.Writer) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("farmstore")

	articles := root.CreateElement("articles")
	for _, name := range snap.Articles {
		articles.CreateElement("article").CreateAttr("name", name)
	}

	farmers := root.CreateElement("farmers")
	for _, name := range snap.Farmers {
		farmers.CreateElement("farmer").CreateAttr("name", name)
	}

	schedules := root.CreateElement("schedules")
	for _, s := range snap.Schedules {
		e := schedules.CreateElement("schedule")
		e.CreateAttr("article", s.Article)
		e.CreateAttr("date", s.Date)
	}

	inventory := root.CreateElement("inventory")
	for _, item := range snap.Inventory {
		e := inventory.CreateElement("item")
		e.CreateAttr("article", item.Article)
		e.CreateAttr("quantity", strconv.Itoa(item.Quantity))
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return errors.Wrap(err, errors.ErrReportRender, "failed to write XML report")
	}
	return nil
}
