/*
Package status describes how a candidate file relates to its backup copy and
renders that for the console.

	+-----------+   Stale()   +-----------+
	|  New      +------------>+  copy     |
	|  Modified |             +-----+-----+
	|  Error    |                   |
	+-----------+             Copied / Failed
	|  Unchanged|  (skipped)
	+-----------+

🎯 Purpose:
- FileStatus values for the planner and the copy stage
- FormatFileOperation for aligned, colored plan listings
- FileFormatter for progress and end of run messages
*/
package status
