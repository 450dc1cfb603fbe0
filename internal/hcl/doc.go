// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It reads bag capacity files such as:
//
//	bag {
//	  red   = 12
//	  green = default.green
//	  blue  = default.blue + 1
//	}
//
// Attribute values are arbitrary HCL expressions evaluated against a
// `default` object holding the built-in capacity. Omitted colors keep their
// default count.
package hcl
