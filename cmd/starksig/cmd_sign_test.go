package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/iov-one/starksig"
	"github.com/iov-one/starksig/sigtest"
	"github.com/iov-one/starksig/x/multisig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdHash(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, cmdHash(nil, &out, []string{"-text", "transfer"}))
	assert.Equal(t, "0x83afd3f4caedc6eebf44246fe54e38c95e3179a5ec9ea81740eca5b482d12e\n", out.String())

	out.Reset()
	require.NoError(t, cmdHash(strings.NewReader("transfer"), &out, nil))
	assert.Equal(t, "0x83afd3f4caedc6eebf44246fe54e38c95e3179a5ec9ea81740eca5b482d12e\n", out.String())
}

func TestCmdSignAndBundle(t *testing.T) {
	keys := sigtest.NewKeys(t, 2)
	hash := starksig.FeltFromUint64(424242)

	// Sign with the second key first, bundle must sort the output.
	var lines bytes.Buffer
	for _, k := range []int{1, 0} {
		keyPath := mustCreateFile(t, strings.NewReader(keys[k].Scalar().String()))
		require.NoError(t, cmdSign(nil, &lines, []string{"-key", keyPath, "-hash", "424242"}))
	}

	var out bytes.Buffer
	require.NoError(t, cmdBundle(&lines, &out, nil))

	var bundle []starksig.Felt
	require.NoError(t, json.Unmarshal(out.Bytes(), &bundle))
	require.Len(t, bundle, 6)
	assert.Equal(t, keys[0].PublicKey().Felt(), bundle[0])
	assert.Equal(t, keys[1].PublicKey().Felt(), bundle[3])

	set := multisig.MustNewOwnerSet(2, sigtest.StarkKeys(sigtest.Signers(keys...)...)...)
	assert.NoError(t, multisig.NewVerifier(set).Verify(hash, bundle))
}

func TestCmdBundleErrors(t *testing.T) {
	cases := map[string]struct {
		input   string
		wantErr string
	}{
		"missing value": {
			input:   "0x1 0x2\n",
			wantErr: "line 1",
		},
		"malformed felt": {
			input:   "0x1 0x2 0xzz\n",
			wantErr: "line 1",
		},
		"repeated signer": {
			input:   "0x1 0x2 0x3\n# comment\n0x1 0x4 0x5\n",
			wantErr: "signatures-not-sorted",
		},
		"no signatures": {
			input:   "\n",
			wantErr: "invalid-signature-length",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var out bytes.Buffer
			err := cmdBundle(strings.NewReader(tc.input), &out, nil)
			require.Error(t, err)
			assert.Contains(t, fmt.Sprint(err), tc.wantErr)
		})
	}
}

func TestCmdInspect(t *testing.T) {
	keys := sigtest.NewKeys(t, 2)
	hash := starksig.FeltFromUint64(424242)
	bundle := sigtest.SignBundle(t, hash, sigtest.Signers(keys...)...)
	raw, err := json.Marshal(bundle)
	require.NoError(t, err)

	var lines bytes.Buffer
	require.NoError(t, cmdInspect(bytes.NewReader(raw), &lines, nil))
	assert.Equal(t, 2, strings.Count(lines.String(), "\n"))
	assert.True(t, strings.HasPrefix(lines.String(), keys[0].PublicKey().String()+" "), lines.String())

	// Inspected lines build the same bundle again.
	var out bytes.Buffer
	require.NoError(t, cmdBundle(&lines, &out, nil))
	var rebuilt []starksig.Felt
	require.NoError(t, json.Unmarshal(out.Bytes(), &rebuilt))
	assert.Equal(t, bundle, rebuilt)

	err = cmdInspect(strings.NewReader(`["0x1", "0x2"]`), &bytes.Buffer{}, nil)
	if !multisig.ErrInvalidSignatureLength.Is(err) {
		t.Fatalf("want invalid signature length error, got %+v", err)
	}
}
