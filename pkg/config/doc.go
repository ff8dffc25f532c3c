/*
Package config defines the clone request and its validation rules.

	            +-------------+
	            |   Request   |
	            | (one clone) |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   YAML    |           |   HCL   |
	| Parser    |           | Parser  |
	+-----------+           +---------+

🎯 Purpose:
- Holds the five validated inputs of a clone: source directory,
  destination directory, ordered source names, ordered destination
  names, and the overwrite decision (Force)
- Parses request files in YAML or HCL via a small parser registry
- Validates everything the driver must be able to assume: matching
  name-list lengths, existing source directory, and no nesting between
  source and destination

🔄 Flow:
1. CLI args or a request file produce a Request
2. Validate normalizes paths and rejects malformed requests
3. Rules() hands the ordered name pairs to the text package

📝 Design Philosophy:
A Request is immutable for the duration of a clone. Validation is the
single gate: once a Request passes Validate, the clone driver never
re-checks the inputs. Name pairs keep their caller-supplied order
because overlapping names make results order-dependent on purpose.
*/
package config
