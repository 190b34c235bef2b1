// Package testutils provides testing utilities for vocab-drill.
//
// It builds dataset fixtures and drill controllers so that service, API and
// terminal tests share one vocabulary:
//
//	// Two groups of two cards, ids 1-4:
//	ds := testutils.SmallDataset()
//
//	// A custom entry:
//	e := testutils.NewTestEntry(7, "lucid",
//	    testutils.WithMeaning("<b>clear</b>"),
//	)
//
//	// A controller with a fixed shuffle seed:
//	c := testutils.MustNewController(t, ds, 42)
package testutils
