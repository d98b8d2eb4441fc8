package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cr "github.com/ghsecuritylab/ndn-lite-go/crypto"
	"github.com/ghsecuritylab/ndn-lite-go/data"
	enc "github.com/ghsecuritylab/ndn-lite-go/encoding"
	"github.com/ghsecuritylab/ndn-lite-go/keystore"
	"github.com/ghsecuritylab/ndn-lite-go/ndn"
)

var signKeyID uint32
var signOutPath string

var signCmd = &cobra.Command{
	Use:   "sign NAME CONTENT",
	Short: "Sign content as a Data packet using a registered ECDSA key",
	Args:  cobra.ExactArgs(2),
	RunE:  runSign,
}

func init() {
	signCmd.Flags().Uint32Var(&signKeyID, "key-id", 0, "Key registry id to sign with")
	signCmd.Flags().StringVar(&signOutPath, "out", "", "Write the encoded Data packet to this file instead of stdout")
}

func runSign(cmd *cobra.Command, args []string) error {
	name, err := enc.NameFromStr(args[0])
	if err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}
	content := []byte(args[1])

	reg, err := keystore.Open(config.KeystorePath)
	if err != nil {
		return fmt.Errorf("open keystore: %w", err)
	}
	defer reg.Close()

	rec, err := reg.Get(signKeyID)
	if err != nil {
		return fmt.Errorf("load key %d: %w", signKeyID, err)
	}
	if rec.SigType != ndn.SigEcdsaSha256 {
		return fmt.Errorf("key %d is not an ECDSA key", signKeyID)
	}

	backend := cr.NewSoftwareBackend()
	keyHandle, err := backend.EcdsaLoadPrivateKey(rec.Secret)
	if err != nil {
		return fmt.Errorf("load private key: %w", err)
	}

	meta := &ndn.MetaInfo{ContentType: ndn.Some(ndn.ContentTypeBlob)}
	buf := make([]byte, data.EstimateEcdsaBufferSize(name, meta, content))
	n, _, err := data.SignEcdsa(buf, backend, keyHandle, name, rec.KeyName, meta, content)
	if err != nil {
		return fmt.Errorf("sign: %w", err)
	}

	if signOutPath != "" {
		return os.WriteFile(signOutPath, buf[:n], 0o644)
	}
	_, err = os.Stdout.Write(buf[:n])
	return err
}
