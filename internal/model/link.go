package model

// Link is a named page discovered while crawling the catalog site
type Link struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// CrawlStats summarizes a finished crawl
type CrawlStats struct {
	RunID            string `json:"run_id"`
	Series           int    `json:"series"`
	Subseries        int    `json:"subseries"`
	Records          int    `json:"records"`
	SkippedSeries    int    `json:"skipped_series"`
	SkippedSubseries int    `json:"skipped_subseries"`
}

// Skipped returns the number of pages that failed and were left out
func (s CrawlStats) Skipped() int {
	return s.SkippedSeries + s.SkippedSubseries
}
