/*
Package experiment extracts typed properties from ReSpecTh-style
ignition-delay experiment documents.

A document is consumed as a parsed element tree (an xmlquery.Node) and
threaded through four stages, each filling fields of one Properties
value:

	Classify            the apparatus kind (shock tube or RCM)
	CommonProperties    pressure, pressure rise, initial composition
	IgnitionDescriptor  ignition detection target and type
	DataGroups          aligned measurement series across data groups

Stages fail fast; a partially filled Properties is never usable. The
Read and ReadFile conveniences run all four stages over one document.

Data group handling

Each dataGroup element declares unit-tagged columns and holds zero or
more dataPoint rows. Column values are accumulated per canonical name
across all groups of the document, so a group of scalar conditions and
a separate multi-row time/volume history merge into one Properties
without any row-count comparison. A column with a single value across
the whole document collapses to a scalar quantity. Unrecognized column
names are ignored for forward compatibility. Row order is preserved
exactly as written; no re-sorting or monotonicity validation happens
here.
*/
package experiment
