package catalog

import (
	"encoding/csv"
	"io"

	"github.com/bylickilabs/GithubRepoCatalog/internal/model"
)

// DefaultExportName is the CSV filename used when the caller gives none.
const DefaultExportName = "repositories.csv"

var csvHeader = []string{"Name", "Path", "Size (MB)", "Last Modified", "Remote"}

// ExportCSV writes repos as CSV in the order given, so exporting a
// filtered view produces exactly the visible rows.
func ExportCSV(w io.Writer, repos []model.Repository) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range repos {
		row := []string{r.Name, r.Path, r.SizeMB(), r.ModifiedString(), r.RemoteURL}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
