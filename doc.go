/*
Package respecth is a set of libraries for reading ReSpecTh-style
ignition-delay experiment descriptions.

Shock tube and rapid compression machine measurements are published as
small XML documents bundling initial conditions, an ignition detection
definition and one or more groups of aligned measurement columns.
These libraries classify such a document, extract its unit-tagged
properties and data series, and fan a multi-point document out into
one fully specified simulation case per data point, ready to hand to a
kinetic simulation driver.

The pipeline runs leaf to root: experiment.Classify determines the
experiment kind, experiment.CommonProperties and
experiment.IgnitionDescriptor fill the scalar conditions,
experiment.DataGroups collects the measurement series, and
simulation.Build materializes the per-point records. The
experiment.ReadFile convenience runs all extraction stages over one
file.

Units are carried as opaque tags exactly as written in the source
document; no conversion or normalization is performed here.

See the cmd/respecth sub-directory for a batch conversion tool.
*/
package respecth
