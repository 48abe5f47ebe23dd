// Package scraper crawls the shockbase.org catalog (series index, series
// pages, subseries pages) and writes the watch dataset as CSV.
package scraper
