package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"cinematch/internal/catalog"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(writer io.Writer, headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	if isTerminal(writer) {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleLight)
	}

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

var movieTableHeaders = []string{"Title", "Year", "Genres", "Rating", "Votes", "Score"}

var movieTableAligns = []columnAlignment{
	alignLeft, alignRight, alignLeft, alignRight, alignRight, alignRight,
}

func movieTableRows(movies []catalog.Movie) [][]string {
	rows := make([][]string, 0, len(movies))
	for _, movie := range movies {
		year := ""
		if movie.ReleaseYear > 0 {
			year = strconv.Itoa(movie.ReleaseYear)
		}
		rows = append(rows, []string{
			movie.Title,
			year,
			movie.Genres,
			fmt.Sprintf("%.1f", movie.Rating),
			strconv.FormatInt(movie.RatingCount, 10),
			fmt.Sprintf("%.2f", movie.FinalScore),
		})
	}
	return rows
}
