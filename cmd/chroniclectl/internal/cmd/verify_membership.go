package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chronicle-sys/chronicle-go/cli"
	"github.com/chronicle-sys/chronicle-go/merkletree"
)

var verifyMembershipCmd = cli.NewActionCommand("verify-membership <proof.json> <root-digest>",
	"Check a membership proof against a trusted root digest.",
	`Read a JSON membership proof written by prove-membership and check
it against a root digest supplied on the command line, independently
of whatever process generated the proof.`,
	runVerifyMembership, nil)

func runVerifyMembership(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("verify-membership requires exactly 2 arguments: <proof.json> <root-digest>")
	}
	blob, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	var in membershipProofOutput
	if err := json.Unmarshal(blob, &in); err != nil {
		return err
	}
	root, err := merkletree.DigestFromHex(args[1])
	if err != nil {
		return fmt.Errorf("bad root digest: %v", err)
	}
	leaf, err := merkletree.DigestFromHex(in.LeafDigest)
	if err != nil {
		return fmt.Errorf("bad leaf digest in proof: %v", err)
	}
	proof := &merkletree.MembershipProof{Index: in.Index}
	for _, hs := range in.Hashes {
		h, err := merkletree.DigestFromHex(hs)
		if err != nil {
			return fmt.Errorf("bad sibling digest in proof: %v", err)
		}
		proof.Hashes = append(proof.Hashes, h)
	}
	if merkletree.VerifyMembership(proof, root, in.Index, leaf) {
		fmt.Println("OK")
		return nil
	}
	fmt.Println("FAIL")
	os.Exit(1)
	return nil
}
