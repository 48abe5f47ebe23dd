package scraper

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ytget/shockbase/internal/model"
)

var captionYear = regexp.MustCompile(`\((\d{4})\)`)

// ParseSeriesIndex extracts series links from the overview page
func ParseSeriesIndex(r io.Reader, baseURL string) ([]model.Link, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse series index: %w", err)
	}

	var links []model.Link
	doc.Find(SeriesLinkSelector).Each(func(_ int, a *goquery.Selection) {
		if link, ok := linkFrom(a, baseURL); ok {
			links = append(links, link)
		}
	})
	return links, nil
}

// ParseSeriesPage extracts subseries links: the first link in the bold title
// of each box
func ParseSeriesPage(r io.Reader, baseURL string) ([]model.Link, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse series page: %w", err)
	}

	var links []model.Link
	doc.Find(SubseriesBoxSelector).Each(func(_ int, box *goquery.Selection) {
		a := box.Find("b").First().Find("a").First()
		if a.Length() == 0 {
			return
		}
		if link, ok := linkFrom(a, baseURL); ok {
			links = append(links, link)
		}
	})
	return links, nil
}

// ParseSubseriesPage extracts one record per figure that has both a picture
// and a caption
func ParseSubseriesPage(r io.Reader, series, subseries, imageBaseURL string) ([]model.WatchRecord, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse subseries page: %w", err)
	}

	var records []model.WatchRecord
	doc.Find(FigureSelector).Each(func(_ int, figure *goquery.Selection) {
		img := figure.Find(FigureImageSelector).First()
		caption := figure.Find(FigureCaptionSelector).First()
		if img.Length() == 0 || caption.Length() == 0 {
			return
		}

		src, ok := img.Attr("src")
		if !ok {
			return
		}

		name, year := CleanName(caption.Text())
		records = append(records, model.WatchRecord{
			Series:    series,
			Subseries: subseries,
			Model:     name,
			Year:      parseCaptionYear(year),
			ImageURL:  FullImageURL(imageBaseURL, src),
		})
	})
	return records, nil
}

// CleanName splits a caption such as "GA-100 (2012)" into the model name and
// the four-digit year. The year is empty when the caption has none.
func CleanName(caption string) (string, string) {
	loc := captionYear.FindStringSubmatchIndex(caption)
	if loc == nil {
		return strings.TrimSpace(caption), ""
	}
	return strings.TrimSpace(caption[:loc[0]]), caption[loc[2]:loc[3]]
}

// FullImageURL maps a thumbnail src to the full-size picture location
func FullImageURL(imageBaseURL, src string) string {
	src = strings.ReplaceAll(src, thumbnailPrefix, "")
	return imageBaseURL + strings.ReplaceAll(src, thumbnailSuffix, fullSuffix)
}

func linkFrom(a *goquery.Selection, baseURL string) (model.Link, bool) {
	href, ok := a.Attr("href")
	if !ok {
		return model.Link{}, false
	}
	return model.Link{Name: strings.TrimSpace(a.Text()), URL: baseURL + href}, true
}

func parseCaptionYear(year string) int {
	if year == "" {
		return model.UnknownYear
	}
	value, err := strconv.Atoi(year)
	if err != nil {
		return model.UnknownYear
	}
	return value
}
