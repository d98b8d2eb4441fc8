package main

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/binary"
	"fmt"

	"github.com/spf13/cobra"

	enc "github.com/ghsecuritylab/ndn-lite-go/encoding"
	"github.com/ghsecuritylab/ndn-lite-go/keystore"
	"github.com/ghsecuritylab/ndn-lite-go/log"
	"github.com/ghsecuritylab/ndn-lite-go/ndn"
)

var keygenCmd = &cobra.Command{
	Use:   "keygen KEY_ID",
	Short: "Generate an ECDSA-SHA256 key and store it in the key registry",
	Args:  cobra.ExactArgs(1),
	RunE:  runKeygen,
}

func runKeygen(cmd *cobra.Command, args []string) error {
	var keyID uint32
	if _, err := fmt.Sscanf(args[0], "%d", &keyID); err != nil {
		return fmt.Errorf("invalid key id %q: %w", args[0], err)
	}

	identity, err := enc.NameFromStr(config.Identity)
	if err != nil {
		return fmt.Errorf("invalid identity name in config: %w", err)
	}

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return fmt.Errorf("generate key: %w", err)
	}
	der, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		return fmt.Errorf("marshal key: %w", err)
	}

	var idBytes [4]byte
	binary.BigEndian.PutUint32(idBytes[:], keyID)
	keyName := identity.Clone()
	keyName = append(keyName, enc.NewGenericComponent("KEY"))
	keyName = append(keyName, enc.NewGenericComponent(string(idBytes[:])))

	reg, err := keystore.Open(config.KeystorePath)
	if err != nil {
		return fmt.Errorf("open keystore: %w", err)
	}
	defer reg.Close()

	rec := keystore.Record{
		KeyID:            keyID,
		KeyName:          keyName,
		SigType:          ndn.SigEcdsaSha256,
		EnableKeyLocator: true,
		Secret:           der,
	}
	if err := reg.Put(rec); err != nil {
		return fmt.Errorf("store key: %w", err)
	}

	log.Info("generated key", "key_id", keyID, "name", keyName.String())
	fmt.Println(keyName.String())
	return nil
}
