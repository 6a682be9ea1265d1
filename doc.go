// Package chart is a declarative chart layout engine. A chart is described
// by a dataset and a flat option object; the engine resolves the options,
// computes scales, axes and the legend and places primitive shapes into a
// Surface such as a scene.Scene.
//
// Datasets
//
// A dataset is a table given row by row. Row 0 holds the labels, column 0
// the category (or numeric x value) of each row and every further column
// one series:
//
//	data.Dataset{
//	    {"Quarter", "2019", "2020"},
//	    {"1st", 10, 12},
//	    {"2nd", -5, 3},
//	}
//
// The caller's dataset is copied and never modified.
//
// Options
//
// Options are merged over the defaults. Families like "margin" or
// "axisColor" set all four sides at once; the side specific keys
// ("marginTop", "axisColorLeft", ...) only apply if the family key is
// absent. Malformed options fail with a *ConfigError, out of range
// fractions are clamped and reported in Config.Warnings.
//
// Variants
//
// The chart types live in package geom: bars (simple, grouped, stacked,
// horizontal), sortable bars, lines with dots, scatter plots and
// histograms. Each implements Variant and selects which scales, axes and
// shapes are drawn.
//
// Redraws
//
// A Chart redraws from scratch after every Update, legend toggle or sort
// change: everything below the chart group is removed first. Redraws are
// serialized and requests arriving during a redraw are coalesced into one
// more redraw.
package chart
