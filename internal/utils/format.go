package utils

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// FormatAddress shortens an Ethereum address for display: 0x1234...abcd
func FormatAddress(address string) string {
	if len(address) < 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}

// FormatEther converts a wei amount to a human readable ETH string with up
// to 6 decimal places.
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0 ETH"
	}
	eth := new(big.Float).SetInt(wei)
	eth.Quo(eth, big.NewFloat(1e18))
	text := eth.Text('f', 6)
	text = strings.TrimRight(text, "0")
	text = strings.TrimSuffix(text, ".")
	if text == "" || text == "-" {
		text = "0"
	}
	return text + " ETH"
}

// FormatOwnershipPercentage renders an ownership share for display, keeping
// two decimal places for small holdings.
func FormatOwnershipPercentage(pct float64) string {
	return strconv.FormatFloat(pct, 'f', 2, 64) + "%"
}

// IsValidAddress checks if an Ethereum address is well formed.
func IsValidAddress(address string) bool {
	if !strings.HasPrefix(address, "0x") {
		return false
	}
	hexPart := strings.TrimPrefix(address, "0x")
	if len(hexPart) != 40 {
		return false
	}
	for _, c := range hexPart {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return false
		}
	}
	return true
}

// ParseWei parses a decimal wei string as stored on transaction records.
func ParseWei(s string) (*big.Int, error) {
	wei, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid wei amount: %q", s)
	}
	return wei, nil
}
