/*
Package config parses and validates ubackup configuration files.

	   configuration.ini
	          |
	    +-----+-----+        +--------------+
	    |   Parse   +------->+  Diagnostics |
	    +-----+-----+        |  [?] / [!]   |
	          |              +------+-------+
	    +-----+-----+               ^
	    | Validate  +---------------+
	    +-----+-----+
	          |
	     *Config  ----> plan.Build

🎯 Purpose:
- Reads the INI-like grammar: [label] headers and key[:=]value lines
- Resolves signed filter keys (exts, +files, -dirs, masks) to a category and polarity
- Merges re-declared filters: include lists extend, exclude lists toggle
- Checks sections against the filesystem and drops the ones that cannot be backed up

⚡ Errors come in two kinds. A *FatalError aborts the run; everything else is
recorded as a Diagnostic on Config.Diagnostics and the run goes on.

🔄 Flow:
1. Locate picks the file (flag, working directory, XDG config dirs)
2. Load opens it and Parse builds the model
3. Validate creates the backup root and section destinations, expands
   wildcards and removes missing paths and unusable patterns
4. Render and Dump write the model back out for debugging
*/
package config
