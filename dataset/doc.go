/*
Package dataset provides the labeled records and datasets from which binary
decision trees are grown, along with the statistics on them that growing a
tree requires: response counts, distinct attribute values and subsets.

Loaders for different record sources live in its subpackages.
*/
package dataset
