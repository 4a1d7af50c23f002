// Package formats provides parsers for the asset file formats the viewer loads.
package formats
