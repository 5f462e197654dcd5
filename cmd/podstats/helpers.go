package main

import (
	"fmt"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

func speakerLabel(name string) string {
	return titleCaser.String(name)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}

func episodeLabel(id int, title string) string {
	return fmt.Sprintf("%d %s", id, title)
}
