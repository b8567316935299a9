package distribution

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/brave-intl/airdrop-go/airdrop"
	"github.com/brave-intl/airdrop-go/libs/merkle"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testReport = `claimee,token,amount
0x70997970C51812dc3A010C7d01b50e0d17dc79C8,0x5FbDB2315678afecb367f032d93F642f64180aa3,150
0x70997970C51812dc3A010C7d01b50e0d17dc79C8,0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512,250
0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC,0x5FbDB2315678afecb367f032d93F642f64180aa3,100
`

func TestReadRows(t *testing.T) {
	rows, err := ReadRows(strings.NewReader(testReport))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", rows[0].Token)
	assert.True(t, rows[1].Amount.Equal(decimal.NewFromInt(250)))
}

func TestBuildGroupsRowsByClaimee(t *testing.T) {
	rows, err := ReadRows(strings.NewReader(testReport))
	require.NoError(t, err)

	report, err := Build(rows)
	require.NoError(t, err)
	require.Len(t, report.Entries, 2)

	alice := report.Entries[0]
	assert.Equal(t, "0x70997970c51812dc3a010c7d01b50e0d17dc79c8", alice.Claimee)
	require.Len(t, alice.Allocations, 2)
	assert.Equal(t, "0x5fbdb2315678afecb367f032d93f642f64180aa3", alice.Allocations[0].Token)
	assert.True(t, alice.Allocations[1].Amount.Equal(decimal.NewFromInt(250)))

	bob := report.Entries[1]
	assert.Equal(t, "0x3c44cdddb6a900fa2b585dd299e03d12fa4293bc", bob.Claimee)
	require.Len(t, bob.Allocations, 1)
}

func TestBuildProofsVerify(t *testing.T) {
	rows, err := ReadRows(strings.NewReader(testReport))
	require.NoError(t, err)

	report, err := Build(rows)
	require.NoError(t, err)

	root, err := hex.DecodeString(strings.TrimPrefix(report.MerkleRoot, "0x"))
	require.NoError(t, err)

	for _, entry := range report.Entries {
		leaf, err := airdrop.EncodeLeaf(entry.Claimee, entry.Allocations)
		require.NoError(t, err)

		proof := make([][]byte, len(entry.Proof))
		for i, node := range entry.Proof {
			proof[i], err = hex.DecodeString(strings.TrimPrefix(node, "0x"))
			require.NoError(t, err)
		}
		assert.True(t, merkle.Verify(root, leaf, proof), "proof for %s must verify", entry.Claimee)
	}
}

func TestVerifyEntry(t *testing.T) {
	rows, err := ReadRows(strings.NewReader(testReport))
	require.NoError(t, err)

	report, err := Build(rows)
	require.NoError(t, err)

	require.NoError(t, VerifyEntry(report, "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"))

	assert.Error(t, VerifyEntry(report, "0x000000000000000000000000000000000000dEaD"))

	tampered := *report
	tampered.Entries = append([]Entry{}, report.Entries...)
	tampered.Entries[0].Allocations = append([]airdrop.TokenAmount{}, report.Entries[0].Allocations...)
	tampered.Entries[0].Allocations[0].Amount = decimal.NewFromInt(9999)
	assert.Error(t, VerifyEntry(&tampered, tampered.Entries[0].Claimee),
		"a tampered allocation must not verify")
}

func TestBuildRejectsBadRows(t *testing.T) {
	_, err := Build([]Row{})
	assert.Error(t, err)

	_, err = Build([]Row{
		{Claimee: "0x70997970C51812dc3A010C7d01b50e0d17dc79C8", Token: "0x5FbDB2315678afecb367f032d93F642f64180aa3", Amount: decimal.NewFromInt(100)},
		{Claimee: "0x70997970c51812dc3a010c7d01b50e0d17dc79c8", Token: "0x5fbdb2315678afecb367f032d93f642f64180aa3", Amount: decimal.NewFromInt(200)},
	})
	assert.Error(t, err, "case variants of the same pair are duplicates")

	_, err = Build([]Row{
		{Claimee: "0x70997970C51812dc3A010C7d01b50e0d17dc79C8", Token: "0x5FbDB2315678afecb367f032d93F642f64180aa3", Amount: decimal.NewFromFloat(1.5)},
	})
	assert.Error(t, err)

	_, err = Build([]Row{
		{Claimee: "0x70997970C51812dc3A010C7d01b50e0d17dc79C8", Token: "0x5FbDB2315678afecb367f032d93F642f64180aa3", Amount: decimal.NewFromInt(-1)},
	})
	assert.Error(t, err)

	_, err = Build([]Row{
		{Claimee: "nothex", Token: "0x5FbDB2315678afecb367f032d93F642f64180aa3", Amount: decimal.NewFromInt(1)},
	})
	assert.Error(t, err)
}
