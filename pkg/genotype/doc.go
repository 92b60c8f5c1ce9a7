// Package genotype reads genotype calls from tab-delimited text.
//
// Each non-blank, non-comment line is one record. By default the call is
// taken from the fourth column (index 3), which matches raw consumer
// genotyping exports:
//
//	# rsid	chromosome	position	genotype
//	rs4477212	1	82154	AA
//	rs3094315	1	752566	AG
//
// Lines starting with '#' are comments. Use [WithField] for other layouts.
package genotype
