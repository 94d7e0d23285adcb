// Package classifier detects which token standards a contract's function
// surface satisfies.
package classifier

// Standard names a token interface standard.
type Standard string

const (
	ERC20   Standard = "ERC20"
	ERC721  Standard = "ERC721"
	ERC1155 Standard = "ERC1155"
)

// A contract satisfies a standard when its exposed function-name set is a
// superset of the standard's required set. The sets are intentionally the
// minimal distinguishing surface, not the full ABI of each standard.
var requiredFunctions = map[Standard][]string{
	ERC20:   {"balanceOf", "transfer", "approve", "allowance", "transferFrom"},
	ERC721:  {"ownerOf", "approve", "transferFrom", "safeTransferFrom"},
	ERC1155: {"balanceOfBatch", "safeTransferFrom", "safeBatchTransferFrom", "setApprovalForAll"},
}

// Classify returns every standard whose required function set is covered by
// functionNames. Multiple standards may match; none matching yields an empty
// slice. The function is pure; callers persist results themselves.
func Classify(functionNames []string) []Standard {
	exposed := make(map[string]struct{}, len(functionNames))
	for _, name := range functionNames {
		exposed[name] = struct{}{}
	}

	var matched []Standard
	for _, standard := range []Standard{ERC20, ERC721, ERC1155} {
		if satisfies(exposed, requiredFunctions[standard]) {
			matched = append(matched, standard)
		}
	}
	return matched
}

func satisfies(exposed map[string]struct{}, required []string) bool {
	for _, name := range required {
		if _, ok := exposed[name]; !ok {
			return false
		}
	}
	return true
}
