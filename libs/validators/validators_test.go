package validators

import (
	"testing"
)

func TestIsETHAddress(t *testing.T) {
	if !IsETHAddress("0xF1A61415e12DB93ABACE8704855A4795934ff992") {
		t.Error("Unexpected error on valid ETH address")
	}
	if IsETHAddress("0xf1a61415e12db93abace8704855a4795934ff992") {
		t.Error("Expected error on ETH address missing checksum")
	}
	if IsETHAddress("0xF1A61415e12DB93ABACE8704855A4795934FF992") {
		t.Error("Unexpected error on ETH address with invalid checksum")
	}
	if IsETHAddress("F1A61415e12DB93ABACE8704855A4795934ff992") {
		t.Error("Expected error on ETH address missing 0x prefix")
	}
}

func TestIsETHAddressNoChecksum(t *testing.T) {
	if !IsETHAddressNoChecksum("0xf1a61415e12db93abace8704855a4795934ff992") {
		t.Error("Unexpected error on valid lowercase ETH address")
	}
	if IsETHAddressNoChecksum("0xf1a61415e12db93abace8704855a4795934ff99") {
		t.Error("Expected error on short ETH address")
	}
}

func TestToChecksumETHAddress(t *testing.T) {
	checksummed := ToChecksumETHAddress("0xf1a61415e12db93abace8704855a4795934ff992")
	if checksummed != "0xF1A61415e12DB93ABACE8704855A4795934ff992" {
		t.Errorf("Unexpected checksum address: %s", checksummed)
	}
}

func TestIsZeroETHAddress(t *testing.T) {
	if !IsZeroETHAddress("0x0000000000000000000000000000000000000000") {
		t.Error("Unexpected error on zero address")
	}
	if IsZeroETHAddress("0xF1A61415e12DB93ABACE8704855A4795934ff992") {
		t.Error("Expected error on nonzero address")
	}
}

func TestIsHexHash(t *testing.T) {
	if !IsHexHash("0x52eccc5b025b0f67cbd12895a805142f2b2e9c4d1b9e2bac4a8afcbbcb1b7844") {
		t.Error("Unexpected error on valid hash")
	}
	if IsHexHash("52eccc5b025b0f67cbd12895a805142f2b2e9c4d1b9e2bac4a8afcbbcb1b7844") {
		t.Error("Expected error on hash missing 0x prefix")
	}
	if IsHexHash("0x52eccc5b") {
		t.Error("Expected error on short hash")
	}
}

func TestIsZeroHexHash(t *testing.T) {
	if !IsZeroHexHash("0x0000000000000000000000000000000000000000000000000000000000000000") {
		t.Error("Unexpected error on zero hash")
	}
	if IsZeroHexHash("0x52eccc5b025b0f67cbd12895a805142f2b2e9c4d1b9e2bac4a8afcbbcb1b7844") {
		t.Error("Expected error on nonzero hash")
	}
}
