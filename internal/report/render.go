package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/russross/blackfriday/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatPDF      = "pdf"
)

// Extension returns the file extension conventionally used for format.
func Extension(format string) string {
	switch format {
	case FormatMarkdown:
		return ".md"
	case FormatText:
		return ".txt"
	default:
		return "." + format
	}
}

// Write renders doc in format to w.
func Write(w io.Writer, doc Document, format string) error {
	switch strings.ToLower(format) {
	case FormatText, "":
		return writeText(w, doc)
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(doc)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(doc); err != nil {
			return err
		}
		return encoder.Close()
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(doc))
		return err
	case FormatHTML:
		_, err := w.Write(HTML(doc))
		return err
	case FormatPDF:
		return PDF(w, doc)
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}
}

func writeText(w io.Writer, doc Document) error {
	for _, ep := range doc.Episodes {
		if err := ep.WriteText(w); err != nil {
			return err
		}
	}
	return nil
}

var titleCaser = cases.Title(language.Und)

func speakerLabel(name string) string {
	return titleCaser.String(name)
}

func percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}

func decimal(v float64) string {
	return fmt.Sprintf("%.4f", v)
}

// Markdown renders doc as a Markdown document with one table per episode.
func Markdown(doc Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", doc.Title)
	fmt.Fprintf(&b, "Generated %s from %d episodes.\n\n", doc.GeneratedAt.Format("2006-01-02 15:04 MST"), len(doc.Episodes))

	if len(doc.Speakers) > 0 {
		b.WriteString("## Speakers\n\n")
		b.WriteString("| Speaker | Lines | Words | Compound avg | Compound var | Profane sentences |\n")
		b.WriteString("|---|---:|---:|---:|---:|---:|\n")
		for _, sp := range doc.Speakers {
			fmt.Fprintf(&b, "| %s | %d | %d | %s | %s | %d |\n",
				speakerLabel(sp.Name), sp.Lines, sp.WordCount,
				decimal(sp.Sentiment.CompoundAverage), decimal(sp.Sentiment.CompoundVariance),
				sp.Profanity.ProfaneSentenceCount)
		}
		b.WriteString("\n")
		for _, sp := range doc.Speakers {
			if len(sp.Collocations) == 0 {
				continue
			}
			fmt.Fprintf(&b, "%s collocations: %s\n\n", speakerLabel(sp.Name), strings.Join(sp.Collocations, "; "))
		}
	}

	for _, ep := range doc.Episodes {
		fmt.Fprintf(&b, "## Episode %d: %s\n\n", ep.ID, ep.Title)
		fmt.Fprintf(&b, "%s. %d lines, %d words.\n\n", ep.Date, ep.LineCount, ep.TotalWords)
		b.WriteString("| Speaker | Words | Share | Compound avg | Compound var |\n")
		b.WriteString("|---|---:|---:|---:|---:|\n")
		for _, sp := range ep.Speakers {
			fmt.Fprintf(&b, "| %s | %d | %s | %s | %s |\n",
				speakerLabel(sp.Name), sp.WordCount, percent(sp.Share),
				decimal(sp.Sentiment.CompoundAverage), decimal(sp.Sentiment.CompoundVariance))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// HTML renders the Markdown report as a standalone HTML page.
func HTML(doc Document) []byte {
	body := blackfriday.Run([]byte(Markdown(doc)), blackfriday.WithExtensions(blackfriday.CommonExtensions))
	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&buf, "<title>%s</title>\n", html.EscapeString(doc.Title))
	buf.WriteString("</head>\n<body>\n")
	buf.Write(body)
	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes()
}

// PDF renders doc as an A4 PDF with one table per episode.
func PDF(w io.Writer, doc Document) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(doc.Title, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr(doc.Title))
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s from %d episodes", doc.GeneratedAt.Format("2006-01-02 15:04 MST"), len(doc.Episodes)))
	pdf.Ln(10)

	if len(doc.Speakers) > 0 {
		heading(pdf, "Speakers")
		table(pdf, tr,
			[]string{"Speaker", "Lines", "Words", "Compound avg", "Compound var"},
			[]float64{50, 25, 30, 40, 40},
			speakerRows(doc.Speakers))
		for _, sp := range doc.Speakers {
			if len(sp.Collocations) == 0 {
				continue
			}
			pdf.MultiCell(0, 5, tr(speakerLabel(sp.Name)+" collocations: "+strings.Join(sp.Collocations, "; ")), "", "", false)
			pdf.Ln(2)
		}
		pdf.Ln(4)
	}

	for _, ep := range doc.Episodes {
		heading(pdf, tr(fmt.Sprintf("Episode %d: %s", ep.ID, ep.Title)))
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, tr(fmt.Sprintf("%s. %d lines, %d words.", ep.Date, ep.LineCount, ep.TotalWords)), "", "", false)
		pdf.Ln(2)
		rows := make([][]string, 0, len(ep.Speakers))
		for _, sp := range ep.Speakers {
			rows = append(rows, []string{
				speakerLabel(sp.Name),
				fmt.Sprint(sp.WordCount),
				percent(sp.Share),
				decimal(sp.Sentiment.CompoundAverage),
				decimal(sp.Sentiment.CompoundVariance),
			})
		}
		table(pdf, tr, []string{"Speaker", "Words", "Share", "Compound avg", "Compound var"}, []float64{50, 25, 30, 40, 40}, rows)
		pdf.Ln(6)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return pdf.Output(w)
}

func speakerRows(speakers []SpeakerTotals) [][]string {
	rows := make([][]string, 0, len(speakers))
	for _, sp := range speakers {
		rows = append(rows, []string{
			speakerLabel(sp.Name),
			fmt.Sprint(sp.Lines),
			fmt.Sprint(sp.WordCount),
			decimal(sp.Sentiment.CompoundAverage),
			decimal(sp.Sentiment.CompoundVariance),
		})
	}
	return rows
}

func heading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, text)
	pdf.Ln(10)
}

func table(pdf *gofpdf.Fpdf, tr func(string) string, header []string, widths []float64, rows [][]string) {
	pdf.SetFont("Arial", "B", 10)
	for i, h := range header {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, row := range rows {
		for i, cell := range row {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 6, tr(cell), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
}
