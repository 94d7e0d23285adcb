// Package verify handles contract source verification requests. Compilation
// is performed by an external collaborator; this package persists the request
// lifecycle and derives interface tags once an ABI is known.
package verify

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// FunctionNames extracts the exposed function names from contract ABI JSON.
// Overloaded functions contribute their raw name once per overload.
func FunctionNames(abiJSON string) ([]string, error) {
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return nil, fmt.Errorf("parse contract abi: %w", err)
	}

	names := make([]string, 0, len(parsed.Methods))
	for _, method := range parsed.Methods {
		names = append(names, method.RawName)
	}
	return names, nil
}
