/*
Package clone implements the substitution-copy engine.

	+-------------+
	|   Cloner    |
	| (tree walk) |
	+------+------+
	       |
	+------+------+
	|    text     |
	| (substitute)|
	+------+------+
	       |
	+------+------+
	|   status    |
	| (file I/O)  |
	+-------------+

🎯 Purpose:
- Orchestrates the full clone: validate, prepare destination, walk
- Applies name substitution to path components and text-file contents
- Delegates file I/O and run-log bookkeeping to the status package

🔄 Flow:
1. Validate the request (lengths, existence, nesting)
2. Clear or create the destination directory
3. Depth-first pass over the source tree, lexicographic per level
4. Per file: raw copy, classify, substitute text contents in place
5. Return the accumulated statistics and ordered run log

⚡ Key Responsibilities:
- Ordered name substitution (caller-controlled pair order)
- Binary-vs-text classification before content rewriting
- Containing per-file failures so siblings keep going
- Fatal aborts only for request validation and destination prep

📝 Design Philosophy:
The cloner is a single linear pipeline, not a multi-stage architecture.
Each recursion frame carries its own (source, destination) path pair, so
there is no shared traversal state. The engine never prompts: the
overwrite decision arrives validated inside the request, and everything
the engine did comes back as an ordered run log.
*/
package clone
