// Package catalog builds status domains from YAML code tables.
//
// A catalog document declares one or more domains, each with a table of
// integer codes:
//
//	domains:
//	  - name: file_errors
//	    uuid: 5f2b9a8e-33c1-4d6a-9b0e-7c1d2e3f4a5b
//	    codes:
//	      - value: 0
//	        name: ok
//	        message: success
//	        success: true
//	      - value: 1
//	        name: file_not_found
//	        message: file not found
//	        generic: no_such_file_or_directory
//	        equivalents:
//	          - domain: posix
//	            value: 2
//
// Documents are decoded with yaml.v3 and validated against an embedded CUE
// schema before any domain is created. Every table domain has the value type
// Value, a 32-bit integer, so its codes can be erased.
//
// Equivalents name other domains by name and compare integer values, which
// lets a table declare equality with codes of domains it cannot import.
package catalog
