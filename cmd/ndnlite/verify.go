package main

import (
	"crypto/elliptic"
	"crypto/x509"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	cr "github.com/ghsecuritylab/ndn-lite-go/crypto"
	"github.com/ghsecuritylab/ndn-lite-go/data"
	"github.com/ghsecuritylab/ndn-lite-go/keystore"
	"github.com/ghsecuritylab/ndn-lite-go/ndn"
)

var verifyKeyID uint32
var verifyInPath string

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a Data packet's ECDSA-SHA256 signature",
	Args:  cobra.NoArgs,
	RunE:  runVerify,
}

func init() {
	verifyCmd.Flags().Uint32Var(&verifyKeyID, "key-id", 0, "Key registry id to verify against")
	verifyCmd.Flags().StringVar(&verifyInPath, "in", "", "Read the encoded Data packet from this file instead of stdin")
}

func runVerify(cmd *cobra.Command, args []string) error {
	var wire []byte
	var err error
	if verifyInPath != "" {
		wire, err = os.ReadFile(verifyInPath)
	} else {
		wire, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("read packet: %w", err)
	}

	reg, err := keystore.Open(config.KeystorePath)
	if err != nil {
		return fmt.Errorf("open keystore: %w", err)
	}
	defer reg.Close()

	rec, err := reg.Get(verifyKeyID)
	if err != nil {
		return fmt.Errorf("load key %d: %w", verifyKeyID, err)
	}
	if rec.SigType != ndn.SigEcdsaSha256 {
		return fmt.Errorf("key %d is not an ECDSA key", verifyKeyID)
	}

	privKey, err := x509.ParseECPrivateKey(rec.Secret)
	if err != nil {
		return fmt.Errorf("parse stored key: %w", err)
	}
	pubBytes := elliptic.Marshal(elliptic.P256(), privKey.PublicKey.X, privKey.PublicKey.Y)

	backend := cr.NewSoftwareBackend()
	pubHandle, err := backend.EcdsaLoadPublicKey(pubBytes)
	if err != nil {
		return fmt.Errorf("load public key: %w", err)
	}

	d, err := data.VerifyEcdsa(wire, backend, pubHandle)
	if err != nil {
		fmt.Fprintln(os.Stderr, "INVALID:", err)
		os.Exit(1)
	}
	fmt.Printf("VALID name=%s content=%q\n", d.Name.String(), d.Content)
	return nil
}
