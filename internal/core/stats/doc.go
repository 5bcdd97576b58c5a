// Package stats computes the aggregate statistics over a people.Dataset.
//
// Every aggregator is a pure function of the dataset:
// - AverageSiblings rounds the real-valued mean up, never to nearest
// - TopFavouriteFoods ranks by count descending then name ascending and truncates
// - BirthMonthCount reads the month in each person's own birth timezone
//
// Summarize runs all three, concurrently by default, and fails as a whole
package stats
