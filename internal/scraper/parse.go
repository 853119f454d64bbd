package scraper

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"cinematch/internal/catalog"
)

var yearRegex = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// parseListPage extracts movie records from one IMDb advanced-search result
// page. Items missing a title are skipped; every other field degrades to its
// zero value.
func parseListPage(r io.Reader) ([]catalog.Movie, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse list page: %w", err)
	}

	var movies []catalog.Movie
	doc.Find("div.lister-item").Each(func(_ int, item *goquery.Selection) {
		title := normalizeTitle(item.Find("h3.lister-item-header a").First().Text())
		if title == "" {
			return
		}

		movie := catalog.Movie{
			Title:       title,
			ReleaseYear: parseYear(item.Find("span.lister-item-year").First().Text()),
			Rating:      parseFloat(item.Find("div.ratings-imdb-rating strong").First().Text()),
			Genres:      normalizeTags(item.Find("span.genre").First().Text()),
			RatingCount: parseVotes(item),
		}
		movie.Director, movie.Stars = parseCredits(item)
		movies = append(movies, movie)
	})
	return movies, nil
}

// parseCredits splits the credits paragraph at the ghost separator: links
// before it are directors, links after it are stars.
func parseCredits(item *goquery.Selection) (director, stars string) {
	credits := item.Find("p.text-muted.text-small").FilterFunction(func(_ int, p *goquery.Selection) bool {
		return strings.Contains(p.Text(), "Director")
	}).First()
	if credits.Length() == 0 {
		return "", ""
	}

	var directors, cast []string
	afterSeparator := false
	credits.Children().Each(func(_ int, child *goquery.Selection) {
		if child.Is("span.ghost") {
			afterSeparator = true
			return
		}
		if !child.Is("a") {
			return
		}
		name := strings.TrimSpace(child.Text())
		if name == "" {
			return
		}
		if afterSeparator {
			cast = append(cast, name)
		} else {
			directors = append(directors, name)
		}
	})
	return strings.Join(directors, ", "), strings.Join(cast, ", ")
}

func parseVotes(item *goquery.Selection) int64 {
	value, ok := item.Find(`span[name="nv"]`).First().Attr("data-value")
	if !ok {
		return 0
	}
	votes, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0
	}
	return votes
}

// parseYear pulls the release year out of strings like "(2010)" or
// "(I) (2010)".
func parseYear(text string) int {
	match := yearRegex.FindString(text)
	if match == "" {
		return 0
	}
	year, _ := strconv.Atoi(match)
	return year
}

func parseFloat(text string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0
	}
	return value
}

// normalizeTags collapses a scraped tag list onto single-space comma
// separators.
func normalizeTags(text string) string {
	parts := strings.Split(text, ",")
	var tags []string
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return strings.Join(tags, ", ")
}

var titleCaser = cases.Title(language.Und)

// normalizeTitle trims scraped whitespace and restores title casing for
// entries that arrive all lowercase or all uppercase.
func normalizeTitle(text string) string {
	title := strings.Join(strings.Fields(text), " ")
	if title == "" {
		return ""
	}
	if title == strings.ToLower(title) || title == strings.ToUpper(title) {
		return titleCaser.String(strings.ToLower(title))
	}
	return title
}
