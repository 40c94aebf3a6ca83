package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"travelnello/pkg/diary"
	"travelnello/pkg/trip"
)

type PrettyPrint struct {
	ShowID bool
}

// Bold makes the text bold for terminal output.
func Bold(text string) string {
	return color.New(color.Bold).Sprint(text)
}

// Underline underlines the text for terminal output.
func Underline(text string) string {
	return color.New(color.Underline).Sprint(text)
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" trip")
	default:
		_, _ = c.Println(" trips")
	}
}

// Trips renders the trip list as a table.
func (pp *PrettyPrint) Trips(trips ...*trip.Trip) {
	if len(trips) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow(Bold("ID"), Bold("Title"), Bold("Dates"), Bold("Location"), Bold("Category"), Bold("Fav"))
	} else {
		tbl.AddRow(Bold("Title"), Bold("Dates"), Bold("Location"), Bold("Category"), Bold("Fav"))
	}
	for _, t := range trips {
		dates := fmt.Sprintf("%s → %s", t.DepartureDate, t.ReturnDate)
		fav := ""
		if t.Favorite {
			fav = "★"
		}
		if pp.ShowID {
			tbl.AddRow(t.ID, t.Title, dates, t.Location, t.Category, fav)
		} else {
			tbl.AddRow(t.Title, dates, t.Location, t.Category, fav)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Trip renders one trip in full.
func (pp *PrettyPrint) Trip(t *trip.Trip) {
	pp.Title(t.Title)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Departure:", t.DepartureDate.String())
	tbl.AddRow("Return:", t.ReturnDate.String())
	tbl.AddRow("Location:", t.Location)
	tbl.AddRow("Category:", t.Category)
	if t.ImageURI != "" {
		tbl.AddRow("Image:", t.ImageURI)
	}
	if t.Favorite {
		tbl.AddRow("Favorite:", "★")
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	if t.Description != "" {
		fmt.Println(Markdown(t.Description))
	}
}

// Notes renders a diary's notes, oldest reference date first.
func (pp *PrettyPrint) Notes(notes ...*diary.Note) {
	if len(notes) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no notes\n\n")
		return
	}

	d := color.New(color.FgHiYellow, color.Italic)
	for _, n := range notes {
		if pp.ShowID {
			_, _ = d.Printf("%d  ", n.ID)
		}
		_, _ = d.Print(n.Date.String(), "  ")
		fmt.Println(Bold(n.Title))
		if n.Content != "" {
			fmt.Println(Markdown(n.Content))
		}
		for _, img := range n.Images {
			fmt.Printf("  [img] %s\n", img)
		}
		fmt.Println("")
	}
}

// Categories renders the category catalog.
func (pp *PrettyPrint) Categories(infos ...trip.CategoryInfo) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(Bold("Category"), Bold("Icon"), Bold("Color"))
	for _, c := range infos {
		tbl.AddRow(c.Name, c.Icon, c.Color)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Markdown renders the note formatting markers (**bold**, *italic*, and
// "• " bullets) with terminal attributes, leaving anything else untouched.
func Markdown(content string) string {
	var out strings.Builder
	for i, line := range strings.Split(content, "\n") {
		if i > 0 {
			out.WriteString("\n")
		}
		if strings.HasPrefix(line, "• ") {
			out.WriteString("  ")
		}
		out.WriteString(renderSpans(line))
	}
	return out.String()
}

func renderSpans(line string) string {
	bold := color.New(color.Bold)
	italic := color.New(color.Italic)

	var out strings.Builder
	rest := line
	for {
		switch {
		case strings.HasPrefix(rest, "**"):
			if end := strings.Index(rest[2:], "**"); end >= 0 {
				out.WriteString(bold.Sprint(rest[2 : 2+end]))
				rest = rest[4+end:]
				continue
			}
		case strings.HasPrefix(rest, "*"):
			if end := strings.Index(rest[1:], "*"); end >= 0 {
				out.WriteString(italic.Sprint(rest[1 : 1+end]))
				rest = rest[2+end:]
				continue
			}
		}
		if rest == "" {
			return out.String()
		}
		out.WriteByte(rest[0])
		rest = rest[1:]
	}
}
