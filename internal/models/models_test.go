package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finsterfurz/coinestateV2/internal/models"
)

func TestDeployedAddress(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		deployed bool
	}{
		{"valid address", "0x1111111111111111111111111111111111111111", true},
		{"empty", "", false},
		{"zero address placeholder", "0x0000000000000000000000000000000000000000", false},
		{"malformed", "0x1234", false},
		{"not hex", "hello", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			network := models.Network{ChainID: 1, Name: "Test", ContractAddress: tt.address}
			address, deployed := network.DeployedAddress()
			assert.Equal(t, tt.deployed, deployed)
			if deployed {
				assert.Equal(t, tt.address, address.Hex())
			}
		})
	}
}
