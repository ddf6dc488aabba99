package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"eatsandthinks/internal/app"
	"eatsandthinks/internal/category"
	"eatsandthinks/internal/sections"
)

// Styles for terminal output.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")) // green
	ratingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))            // yellow
	badgeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")) // magenta
	cyanStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

var sectionTitles = map[sections.Name]string{
	sections.NameFeatured:   "Featured",
	sections.NameTrending:   "Trending now",
	sections.NameHiddenGems: "Hidden gems",
	sections.NameCheapEats:  "Cheap eats",
	sections.NameCommunity:  "From the community",
}

var emptyLines = map[sections.Name]string{
	sections.NameFeatured:   "No featured places yet.",
	sections.NameTrending:   "No trending places found.",
	sections.NameHiddenGems: "No hidden gems found.",
	sections.NameCheapEats:  "No cheap eats found.",
	sections.NameCommunity:  "No community places yet.",
}

// SectionTitle returns the heading shown for a section.
func SectionTitle(n sections.Name) string {
	if t, ok := sectionTitles[n]; ok {
		return t
	}
	return string(n)
}

// PrintHome renders every section in homepage order.
func PrintHome(w io.Writer, h app.HomeView) {
	for _, v := range []app.SectionView{h.Featured, h.Trending, h.HiddenGems, h.CheapEats, h.Community} {
		PrintSection(w, v)
	}
}

// PrintSection renders one section. Empty and unavailable sections get an
// explicit line instead of silently printing nothing.
func PrintSection(w io.Writer, v app.SectionView) {
	fmt.Fprintf(w, "\n%s\n\n", headerStyle.Render(SectionTitle(v.Name)))

	switch {
	case v.Status == sections.StatusUnavailable:
		fmt.Fprintf(w, "  %s\n", errorStyle.Render("Could not load "+strings.ToLower(SectionTitle(v.Name))+"."))
		return
	case len(v.Cards) == 0:
		fmt.Fprintf(w, "  %s\n", warningStyle.Render(emptyLines[v.Name]))
		return
	}

	for _, c := range v.Cards {
		printCard(w, c)
		fmt.Fprintln(w)
	}
}

func printCard(w io.Writer, c app.Card) {
	p := c.Place
	name := p.Name
	if name == "" {
		name = p.ID
	}

	line := "  " + titleStyle.Render(name)
	if p.Rating != nil {
		line += "  " + ratingStyle.Render(fmt.Sprintf("★ %.1f", *p.Rating))
	}
	if c.Badge != "" {
		line += "  " + badgeStyle.Render(strings.ToUpper(strings.ReplaceAll(string(c.Badge), "_", " ")))
	}
	fmt.Fprintln(w, line)

	meta := []string{cyanStyle.Render(string(c.Category))}
	if p.ReviewCount != nil {
		meta = append(meta, fmt.Sprintf("%d reviews", *p.ReviewCount))
	}
	if p.PriceLevel != nil && *p.PriceLevel > 0 {
		meta = append(meta, strings.Repeat("€", *p.PriceLevel))
	}
	if p.OpenNow != nil {
		if *p.OpenNow {
			meta = append(meta, "open now")
		} else {
			meta = append(meta, "closed")
		}
	}
	fmt.Fprintf(w, "    %s\n", strings.Join(meta, " · "))

	if p.Address != "" {
		fmt.Fprintf(w, "    %s\n", p.Address)
	}
	fmt.Fprintf(w, "    %s\n", dimStyle.Render(c.ImageURL))
}

// PrintCard renders a single place card.
func PrintCard(w io.Writer, c app.Card) {
	fmt.Fprintln(w)
	printCard(w, c)
	p := c.Place
	if p.Phone != nil && *p.Phone != "" {
		fmt.Fprintf(w, "    tel. %s\n", *p.Phone)
	}
	if p.Website != nil && *p.Website != "" {
		fmt.Fprintf(w, "    %s\n", *p.Website)
	}
	for _, h := range p.OpeningHours {
		fmt.Fprintf(w, "    %s\n", dimStyle.Render(h))
	}
	fmt.Fprintln(w)
}

// PrintCardJSON renders a single place card as JSON.
func PrintCardJSON(w io.Writer, c app.Card) error {
	return json.NewEncoder(w).Encode(c)
}

// PrintHomeJSON renders the homepage as JSON.
func PrintHomeJSON(w io.Writer, h app.HomeView) error {
	return json.NewEncoder(w).Encode(h)
}

// PrintSectionJSON renders one section as JSON.
func PrintSectionJSON(w io.Writer, v app.SectionView) error {
	return json.NewEncoder(w).Encode(v)
}

// PrintMatches renders resolver explanations, one per input.
func PrintMatches(w io.Writer, ms []category.Match) {
	fmt.Fprintln(w)
	for _, m := range ms {
		in := m.Input
		if in == "" {
			in = `""`
		}
		detail := string(m.Phase)
		switch m.Phase {
		case category.PhaseExact:
			detail = "exact alias"
		case category.PhaseFuzzy:
			detail = fmt.Sprintf("fuzzy: %q, distance %.2f", m.Alias, m.Score)
		case category.PhaseFallback:
			detail = fmt.Sprintf("no alias within threshold (closest %.2f)", m.Score)
		case category.PhaseEmpty:
			detail = "empty input"
		}
		fmt.Fprintf(w, "  %s → %s  %s\n", titleStyle.Render(in), cyanStyle.Render(string(m.Category)), dimStyle.Render(detail))
	}
	fmt.Fprintln(w)
}

// PrintMatchesJSON renders resolver explanations as JSON.
func PrintMatchesJSON(w io.Writer, ms []category.Match) error {
	if ms == nil {
		ms = []category.Match{}
	}
	return json.NewEncoder(w).Encode(ms)
}

// ImageJSON is the JSON output shape for an image pick.
type ImageJSON struct {
	Type     string `json:"type"`
	Category string `json:"category"`
	Seed     string `json:"seed,omitempty"`
	URL      string `json:"url"`
}

// PrintImage renders one image pick.
func PrintImage(w io.Writer, img ImageJSON) {
	fmt.Fprintf(w, "%s %s\n%s\n",
		cyanStyle.Render(img.Category),
		dimStyle.Render(fmt.Sprintf("(from %q)", img.Type)),
		img.URL,
	)
}

// PrintImageJSON renders one image pick as JSON.
func PrintImageJSON(w io.Writer, img ImageJSON) error {
	return json.NewEncoder(w).Encode(img)
}

// PrintCategories renders every category with its photo pool size.
func PrintCategories(w io.Writer, cats []app.CategoryInfo) {
	fmt.Fprintf(w, "\n%s\n\n", titleStyle.Render(fmt.Sprintf("%d categories:", len(cats))))
	for _, c := range cats {
		pool := fmt.Sprintf("%d photos", c.PoolSize)
		if !c.OwnPool {
			pool += " (default pool)"
		}
		fmt.Fprintf(w, "  %s: %s\n", cyanStyle.Render(string(c.Category)), pool)
	}
	fmt.Fprintln(w)
}

// PrintCategoriesJSON renders categories as JSON.
func PrintCategoriesJSON(w io.Writer, cats []app.CategoryInfo) error {
	return json.NewEncoder(w).Encode(cats)
}
