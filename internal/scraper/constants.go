package scraper

// Site locations
const (
	DefaultBaseURL      = "https://shockbase.org/watches/"
	DefaultIndexURL     = DefaultBaseURL + "series_overview.php/"
	DefaultImageBaseURL = "https://shockbase.org/pics2/"
)

// CSS selectors for the three page levels
const (
	SeriesLinkSelector    = "ul.ul-clean li a"
	SubseriesBoxSelector  = "div.box"
	FigureSelector        = "figure"
	FigureImageSelector   = "img"
	FigureCaptionSelector = "figcaption"
)

// Image source rewriting from thumbnails to full pictures
const (
	thumbnailPrefix = "../pics2/"
	thumbnailSuffix = "_small.webp"
	fullSuffix      = ".png"
)
