package utils_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finsterfurz/coinestateV2/internal/utils"
)

func TestFormatAddress(t *testing.T) {
	assert.Equal(t, "0x1111...1111", utils.FormatAddress("0x1111111111111111111111111111111111111111"))
	assert.Equal(t, "0xabc", utils.FormatAddress("0xabc"))
}

func TestFormatEther(t *testing.T) {
	assert.Equal(t, "0 ETH", utils.FormatEther(nil))
	assert.Equal(t, "0 ETH", utils.FormatEther(big.NewInt(0)))
	assert.Equal(t, "1 ETH", utils.FormatEther(big.NewInt(1e18)))
	assert.Equal(t, "1.5 ETH", utils.FormatEther(big.NewInt(15e17)))
	assert.Equal(t, "0.000001 ETH", utils.FormatEther(big.NewInt(1e12)))
}

func TestFormatOwnershipPercentage(t *testing.T) {
	assert.Equal(t, "0.12%", utils.FormatOwnershipPercentage(0.12))
	assert.Equal(t, "100.00%", utils.FormatOwnershipPercentage(100))
}

func TestIsValidAddress(t *testing.T) {
	assert.True(t, utils.IsValidAddress("0x1111111111111111111111111111111111111111"))
	assert.True(t, utils.IsValidAddress("0xAbCd111111111111111111111111111111111111"))
	assert.False(t, utils.IsValidAddress("1111111111111111111111111111111111111111"))
	assert.False(t, utils.IsValidAddress("0x1111"))
	assert.False(t, utils.IsValidAddress("0xzz11111111111111111111111111111111111111"))
}

func TestParseWei(t *testing.T) {
	wei, err := utils.ParseWei("3000")
	assert.NoError(t, err)
	assert.Equal(t, int64(3000), wei.Int64())

	_, err = utils.ParseWei("not-a-number")
	assert.Error(t, err)
}
