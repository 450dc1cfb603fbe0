package hcl

import "github.com/hashicorp/hcl/v2"

// findUniqueBlock returns the single block of the given type, or nil when
// there is none. Every repeated block produces an error diagnostic.
func findUniqueBlock(blocks hcl.Blocks, blockType string) (*hcl.Block, hcl.Diagnostics) {
	var found *hcl.Block
	var diags hcl.Diagnostics

	for _, block := range blocks {
		if block.Type != blockType {
			continue
		}
		if found != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate \"" + blockType + "\" block",
				Detail:   "Only one \"" + blockType + "\" block is allowed; the first was defined at " + found.DefRange.String() + ".",
				Subject:  block.DefRange.Ptr(),
			})
			continue
		}
		found = block
	}

	return found, diags
}
