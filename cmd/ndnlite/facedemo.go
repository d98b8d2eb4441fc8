package main

import (
	"fmt"

	"github.com/spf13/cobra"

	enc "github.com/ghsecuritylab/ndn-lite-go/encoding"
	"github.com/ghsecuritylab/ndn-lite-go/face"
)

var faceDemoCmd = &cobra.Command{
	Use:   "face-demo PREFIX INTEREST_NAME",
	Short: "Demonstrate direct-face prefix dispatch with a stub forwarder",
	Args:  cobra.ExactArgs(2),
	RunE:  runFaceDemo,
}

// loopbackForwarder plays the part of the local forwarder for the demo:
// it accepts FaceReceive and FibInsert calls and does nothing with them.
// The demo delivers its Interest to the face by calling Send directly.
type loopbackForwarder struct{}

func (loopbackForwarder) FaceReceive(f *face.Face, bytes []byte) error {
	return nil
}

func (loopbackForwarder) FibInsert(prefix enc.Name, f *face.Face, cost int) error {
	return nil
}

func runFaceDemo(cmd *cobra.Command, args []string) error {
	prefix, err := enc.NameFromStr(args[0])
	if err != nil {
		return fmt.Errorf("invalid prefix: %w", err)
	}
	interestName, err := enc.NameFromStr(args[1])
	if err != nil {
		return fmt.Errorf("invalid interest name: %w", err)
	}

	f := face.New(1, loopbackForwarder{})
	f.Construct()

	matched := false
	if err := f.RegisterPrefix(prefix, func(bytes []byte) {
		matched = true
		fmt.Printf("on_interest fired: %d bytes\n", len(bytes))
	}); err != nil {
		return err
	}

	buf := make([]byte, interestName.ProbeBlockSize()+8)
	e := enc.NewEncoder(buf)
	if err := e.WriteTL(enc.TypeInterest, interestName.ProbeBlockSize()); err != nil {
		return err
	}
	if err := interestName.EncodeInto(e); err != nil {
		return err
	}

	if err := f.Send(interestName, e.Bytes()); err != nil {
		fmt.Println("no match:", err)
		return nil
	}
	if !matched {
		fmt.Println("dispatched without invoking callback (unexpected)")
	}
	return nil
}
