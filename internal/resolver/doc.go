// Package resolver turns an image reference into a display-ready bitmap. A
// resolved image is cached for the rest of the session keyed by reference;
// concurrent misses for one reference share a single fetch.
package resolver
